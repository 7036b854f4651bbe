package slot

import (
	"context"
	"errors"

	"scroggy_backend/internal/middleware"
	"scroggy_backend/internal/model"
)

// CheckData возвращает текущий игровой профиль.
// При первом обращении профиль создается со стартовым балансом
func (s *serv) CheckData(ctx context.Context) (*model.Player, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	player, err := s.playerRepo.GetPlayer(ctx, userID)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fresh := &model.Player{
		UserID:       userID,
		Name:         user.Name,
		Balance:      s.eng.Tables().InitialBalance,
		CreatedAt:    now,
		LastPlayedAt: now,
	}
	if err := s.playerRepo.CreatePlayer(ctx, fresh); err != nil {
		return nil, err
	}

	s.log.WithField("user_id", userID).Info("player provisioned")

	return fresh, nil
}
