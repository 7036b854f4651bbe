package auth

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"scroggy_backend/internal/config"
	"scroggy_backend/internal/repository"
	"scroggy_backend/internal/service"
)

type serv struct {
	txManager      trm.Manager
	userRepo       repository.UserRepository
	authRepo       repository.AuthRepository
	playerRepo     repository.PlayerRepository
	jwtConfig      config.JWTConfig
	clock          quartz.Clock
	initialBalance int
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	playerRepo repository.PlayerRepository,
	jwtConfig config.JWTConfig,
	clock quartz.Clock,
	initialBalance int,
) service.AuthService {
	return &serv{
		txManager:      txManager,
		userRepo:       userRepo,
		authRepo:       authRepo,
		playerRepo:     playerRepo,
		jwtConfig:      jwtConfig,
		clock:          clock,
		initialBalance: initialBalance,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
