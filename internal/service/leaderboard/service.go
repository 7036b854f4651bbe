package leaderboard

import (
	"context"

	"scroggy_backend/internal/model"
	"scroggy_backend/internal/repository"
	"scroggy_backend/internal/service"
)

const defaultLimit = 10

type serv struct {
	playerRepo repository.PlayerRepository
}

func NewLeaderboardService(playerRepo repository.PlayerRepository) service.LeaderboardService {
	return &serv{
		playerRepo: playerRepo,
	}
}

// Top возвращает лучших игроков по балансу
func (s *serv) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.playerRepo.Leaderboard(ctx, limit)
}
