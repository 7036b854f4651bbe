package model

import "time"

// Player - игровой профиль пользователя.
// Version используется для оптимистичной блокировки при записи:
// сохранение проходит только если версия в хранилище совпадает с той,
// что была прочитана.
type Player struct {
	UserID       int
	Name         string
	Balance      int
	TotalWins    int
	TotalLosses  int
	BiggestWin   int
	GamesPlayed  int
	CreatedAt    time.Time
	LastPlayedAt time.Time
	Version      int
}

type LeaderboardEntry struct {
	Rank      int
	UserID    int
	Name      string
	Balance   int
	TotalWins int
}
