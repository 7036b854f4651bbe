package repository

import (
	"context"

	"scroggy_backend/internal/model"
)

// PlayerRepository - хранилище игровых профилей.
// SavePlayer выполняет compare-and-swap по player.Version:
// при несовпадении версии возвращается model.ErrVersionConflict,
// при успехе версия в переданной структуре инкрементируется
type PlayerRepository interface {
	GetPlayer(ctx context.Context, userID int) (*model.Player, error)
	CreatePlayer(ctx context.Context, player *model.Player) error
	SavePlayer(ctx context.Context, player *model.Player) error

	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}
