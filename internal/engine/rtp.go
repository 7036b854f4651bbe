package engine

import (
	"gonum.org/v1/gonum/stat"
)

// Report - оценка игровой математики методом Монте-Карло.
// Множители в таблицах - конфигурация, а не выверенная вероятностная
// модель, поэтому фактический RTP считается независимо от них
type Report struct {
	// Средний возврат игроку в долях ставки
	RTP float64
	// Доля выигрышных спинов
	HitRate float64
	// Дисперсия множителя выплаты
	Variance float64
	// Количество сыгранных раундов
	Rounds int
}

// Analyze прогоняет rounds спинов со ставкой 1 и собирает статистику выплат
func (e *Engine) Analyze(rounds int) Report {
	payouts := make([]float64, rounds)
	hits := 0

	for i := 0; i < rounds; i++ {
		res := e.Evaluate(e.GenerateOutcome(), 1)
		payouts[i] = float64(res.Payout)
		if res.Won {
			hits++
		}
	}

	return Report{
		RTP:      stat.Mean(payouts, nil),
		HitRate:  float64(hits) / float64(rounds),
		Variance: stat.Variance(payouts, nil),
		Rounds:   rounds,
	}
}
