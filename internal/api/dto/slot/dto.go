package slot

import "time"

type SpinRequest struct {
	Bet int `json:"bet"` // Размер ставки (1-10)
}

type RoundResult struct {
	Symbols [3]string `json:"symbols"`         // Символы барабанов слева направо
	Won     bool      `json:"won"`             // Выигрыш или нет
	Payout  int       `json:"payout"`          // Выплата
	Label   string    `json:"label,omitempty"` // Имя комбинации, пусто при проигрыше
}

type PlayerResponse struct {
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	Balance      int       `json:"balance"`
	TotalWins    int       `json:"total_wins"`
	TotalLosses  int       `json:"total_losses"`
	BiggestWin   int       `json:"biggest_win"`
	GamesPlayed  int       `json:"games_played"`
	CreatedAt    time.Time `json:"created_at"`
	LastPlayedAt time.Time `json:"last_played_at"`
}

type SpinResponse struct {
	Result RoundResult    `json:"result"`
	Player PlayerResponse `json:"player"`
}

type DepositRequest struct {
	Amount      int    `json:"amount"`                // Количество токенов
	TxSignature string `json:"transaction_signature"` // Подпись внешней транзакции
}
