package player_mem_repo

import (
	"context"
	"sort"
	"sync"

	"scroggy_backend/internal/model"
	"scroggy_backend/internal/repository"
)

// Хранилище игроков в памяти с тем же CAS-контрактом, что и у
// постгресовой реализации. Используется в тестах и при локальном запуске
// без базы
type Repo struct {
	mtx     sync.Mutex
	players map[int]model.Player
}

func NewPlayerRepository() *Repo {
	return &Repo{
		players: make(map[int]model.Player),
	}
}

var _ repository.PlayerRepository = (*Repo)(nil)

func (r *Repo) GetPlayer(_ context.Context, userID int) (*model.Player, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.players[userID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &p, nil
}

func (r *Repo) CreatePlayer(_ context.Context, player *model.Player) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	player.Version = 1
	r.players[player.UserID] = *player
	return nil
}

func (r *Repo) SavePlayer(_ context.Context, player *model.Player) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	current, ok := r.players[player.UserID]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if current.Version != player.Version {
		return model.ErrVersionConflict
	}

	player.Version++
	r.players[player.UserID] = *player
	return nil
}

func (r *Repo) Leaderboard(_ context.Context, limit int) ([]model.LeaderboardEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	all := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Balance != all[j].Balance {
			return all[i].Balance > all[j].Balance
		}
		return all[i].UserID < all[j].UserID
	})

	if limit < len(all) {
		all = all[:limit]
	}

	entries := make([]model.LeaderboardEntry, 0, len(all))
	for i, p := range all {
		entries = append(entries, model.LeaderboardEntry{
			Rank:      i + 1,
			UserID:    p.UserID,
			Name:      p.Name,
			Balance:   p.Balance,
			TotalWins: p.TotalWins,
		})
	}

	return entries, nil
}
