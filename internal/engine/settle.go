package engine

import "scroggy_backend/internal/model"

// Settle рассчитывает один раунд: валидация ставки, генерация исхода,
// оценка выплаты и новый снапшот игрока.
// Снапшот передается по значению и не мутируется при ошибке валидации.
// Функция намеренно переигрываема: при конфликте версий в хранилище
// вызывающий перечитывает игрока и вызывает Settle заново, со свежим
// розыгрышем случайности
func (e *Engine) Settle(player model.Player, bet int) (model.RoundResult, model.Player, error) {
	if err := e.ValidateBet(bet, player.Balance); err != nil {
		return model.RoundResult{}, player, err
	}

	outcome := e.GenerateOutcome()
	res := e.Evaluate(outcome, bet)

	// Баланс не может уйти в минус: bet <= balance проверен выше, payout >= 0
	player.Balance = player.Balance - bet + res.Payout
	player.GamesPlayed++
	if res.Won {
		player.TotalWins++
		if res.Payout > player.BiggestWin {
			player.BiggestWin = res.Payout
		}
	} else {
		player.TotalLosses++
	}
	player.LastPlayedAt = e.clock.Now()

	return res, player, nil
}

// Restart сбрасывает баланс к стартовому, счетчики не трогает.
// Предусловие balance == 0 не проверяется - когда предлагать рестарт,
// решает вызывающий
func (e *Engine) Restart(player model.Player) model.Player {
	player.Balance = e.tables.InitialBalance
	return player
}
