package engine

import "scroggy_backend/internal/model"

// GenerateOutcome генерирует исход спина в три этапа:
// сначала разыгрывается полоса формы (три одинаковых / принудительная пара /
// свободная), затем внутри полосы символы выбираются взвешенной выборкой
func (e *Engine) GenerateOutcome() model.Outcome {
	band := e.rng.Float64()

	switch {
	case band < e.tables.TripleChance:
		// Три одинаковых: один взвешенный розыгрыш, символ повторяется трижды
		s := e.drawWeighted()
		return model.Outcome{s, s, s}

	case band < e.tables.TripleChance+e.tables.PairChance:
		// Принудительная пара: пара и отличный от нее третий символ.
		// Пара встает спереди {0,1} или сзади {1,2} с вероятностью 50/50
		pair := e.drawWeighted()
		third := e.drawWeightedExcept(pair)
		if e.rng.Float64() < 0.5 {
			return model.Outcome{pair, pair, third}
		}
		return model.Outcome{third, pair, pair}

	default:
		// Свободная полоса: три независимых взвешенных розыгрыша.
		// Случайные совпадения допустимы, небольшой перекос в сторону
		// повторов уже выпавших символов
		var out model.Outcome
		for i := range out {
			if i > 0 && e.rng.Float64() < e.tables.RepeatBias {
				out[i] = out[e.rng.Intn(i)]
				continue
			}
			out[i] = e.drawWeighted()
		}
		return out
	}
}

// drawWeighted - взвешенная выборка символа: равномерное вещественное
// в [0, totalWeight), вычитаем веса в порядке таблицы до остатка <= 0
func (e *Engine) drawWeighted() model.Symbol {
	remainder := e.rng.Float64() * float64(e.tables.TotalWeight())
	for _, sw := range e.tables.Symbols {
		remainder -= float64(sw.Weight)
		if remainder <= 0 {
			return sw.Symbol
		}
	}
	return e.tables.Symbols[len(e.tables.Symbols)-1].Symbol
}

// drawWeightedExcept - та же выборка, но с исключением одного символа
func (e *Engine) drawWeightedExcept(excluded model.Symbol) model.Symbol {
	total := e.tables.TotalWeight()
	for _, sw := range e.tables.Symbols {
		if sw.Symbol == excluded {
			total -= sw.Weight
			break
		}
	}

	remainder := e.rng.Float64() * float64(total)
	var last model.Symbol
	for _, sw := range e.tables.Symbols {
		if sw.Symbol == excluded {
			continue
		}
		last = sw.Symbol
		remainder -= float64(sw.Weight)
		if remainder <= 0 {
			return sw.Symbol
		}
	}
	return last
}
