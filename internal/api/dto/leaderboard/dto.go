package leaderboard

type Entry struct {
	Rank      int    `json:"rank"`
	UserID    int    `json:"user_id"`
	Name      string `json:"name"`
	Balance   int    `json:"balance"`
	TotalWins int    `json:"total_wins"`
}
