package model

// Symbol - символ барабана
type Symbol string

// Outcome - результат одного спина: три барабана слева направо
type Outcome [3]Symbol

// RoundResult - вердикт по одному спину.
// Label пустой тогда и только тогда, когда Won == false и Payout == 0
type RoundResult struct {
	Outcome Outcome
	Won     bool
	Payout  int
	Label   string
}

type SpinRequest struct {
	Bet int
}

// SpinResult - результат раунда вместе с новым снапшотом игрока
type SpinResult struct {
	Result RoundResult
	Player Player
}

type DepositRequest struct {
	Amount int
	// Подпись внешней транзакции. Принимается как непрозрачная ссылка,
	// верификация в цепочке не выполняется
	TxSignature string
}
