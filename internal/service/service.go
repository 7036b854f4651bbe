package service

import (
	"context"

	"scroggy_backend/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	Restart(ctx context.Context) (*model.Player, error)
	Deposit(ctx context.Context, req model.DepositRequest) (*model.Player, error)
	CheckData(ctx context.Context) (*model.Player, error)
}

type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
