package slot

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"scroggy_backend/internal/middleware"
	"scroggy_backend/internal/model"
)

// Spin выполняет один оплачиваемый спин.
// Расчет раунда - чистая функция от снапшота игрока и ставки, поэтому
// при устаревшем снапшоте раунд пересчитывается заново целиком,
// со свежим розыгрышем случайности
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var (
		res    model.RoundResult
		player *model.Player
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		player, err = s.mutate(txCtx, userID, func(p model.Player) (model.Player, error) {
			roundRes, next, err := s.eng.Settle(p, req.Bet)
			if err != nil {
				return p, err
			}
			res = roundRes
			return next, nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"bet":     req.Bet,
		"won":     res.Won,
		"payout":  res.Payout,
		"balance": player.Balance,
	}).Info("spin settled")

	return &model.SpinResult{
		Result: res,
		Player: *player,
	}, nil
}
