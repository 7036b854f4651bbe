package slot

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"scroggy_backend/internal/engine"
	"scroggy_backend/internal/model"
	"scroggy_backend/internal/repository"
	"scroggy_backend/internal/service"
)

// maxSettleAttempts - сколько раз целиком пересчитывать раунд при
// конфликте версий, прежде чем отдать конфликт наверх
const maxSettleAttempts = 3

type serv struct {
	playerRepo repository.PlayerRepository
	userRepo   repository.UserRepository
	eng        *engine.Engine
	txManager  trm.Manager
	clock      quartz.Clock
	log        *logrus.Logger
}

// NewSlotService Создать новый слот 3x1
func NewSlotService(
	playerRepo repository.PlayerRepository,
	userRepo repository.UserRepository,
	eng *engine.Engine,
	txManager trm.Manager,
	clock quartz.Clock,
	log *logrus.Logger,
) service.SlotService {
	return &serv{
		playerRepo: playerRepo,
		userRepo:   userRepo,
		eng:        eng,
		txManager:  txManager,
		clock:      clock,
		log:        log,
	}
}

// mutate применяет fn к свежему снапшоту игрока и сохраняет результат.
// При конфликте версий весь цикл повторяется со свежепрочитанным
// снапшотом - fn при этом выполняется заново
func (s *serv) mutate(ctx context.Context, userID int, fn func(model.Player) (model.Player, error)) (*model.Player, error) {
	for attempt := 1; ; attempt++ {
		player, err := s.playerRepo.GetPlayer(ctx, userID)
		if err != nil {
			return nil, err
		}

		next, err := fn(*player)
		if err != nil {
			return nil, err
		}

		err = s.playerRepo.SavePlayer(ctx, &next)
		if errors.Is(err, model.ErrVersionConflict) {
			if attempt >= maxSettleAttempts {
				return nil, err
			}
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"attempt": attempt,
			}).Warn("stale player snapshot, recomputing")
			continue
		}
		if err != nil {
			return nil, err
		}

		return &next, nil
	}
}
