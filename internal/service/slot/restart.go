package slot

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"scroggy_backend/internal/middleware"
	"scroggy_backend/internal/model"
)

// Restart сбрасывает баланс игрока к стартовому, счетчики сохраняются.
// Предусловие balance == 0 здесь не проверяется - клиент показывает
// кнопку рестарта только при нулевом балансе
func (s *serv) Restart(ctx context.Context) (*model.Player, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var player *model.Player
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		player, err = s.mutate(txCtx, userID, func(p model.Player) (model.Player, error) {
			return s.eng.Restart(p), nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"balance": player.Balance,
	}).Info("player restarted")

	return player, nil
}
