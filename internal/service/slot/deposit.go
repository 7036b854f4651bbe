package slot

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"scroggy_backend/internal/middleware"
	"scroggy_backend/internal/model"
)

// Deposit начисляет купленные токены на баланс.
// Подпись внешней транзакции принимается как непрозрачная ссылка
// и только логируется
func (s *serv) Deposit(ctx context.Context, req model.DepositRequest) (*model.Player, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	if req.Amount <= 0 {
		return nil, model.NewValidationError("deposit must be positive")
	}

	var player *model.Player
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		player, err = s.mutate(txCtx, userID, func(p model.Player) (model.Player, error) {
			p.Balance += req.Amount
			return p, nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":      userID,
		"amount":       req.Amount,
		"tx_signature": req.TxSignature,
		"balance":      player.Balance,
	}).Info("deposit credited")

	return player, nil
}
