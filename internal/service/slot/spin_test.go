package slot

import (
	"context"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroggy_backend/internal/engine"
	"scroggy_backend/internal/middleware"
	"scroggy_backend/internal/model"
	"scroggy_backend/internal/repository"
	"scroggy_backend/internal/repository/player_mem_repo"
	"scroggy_backend/internal/service"
)

// nopTxManager выполняет функцию без транзакции - хранилище в памяти
// транзакций не поддерживает
type nopTxManager struct{}

func (nopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (nopTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	users map[int]*model.User
}

func (s *userRepoStub) CreateUser(_ context.Context, user *model.User) (int, error) {
	return user.ID, nil
}

func (s *userRepoStub) GetUserByLogin(_ context.Context, _ string) (*model.User, error) {
	return nil, model.ErrPlayerNotFound
}

func (s *userRepoStub) GetUserByID(_ context.Context, id int) (*model.User, error) {
	return s.users[id], nil
}

// conflictRepo подкладывает заданное число конфликтов версий перед тем,
// как пустить запись в настоящее хранилище
type conflictRepo struct {
	repository.PlayerRepository
	conflicts int
}

func (r *conflictRepo) SavePlayer(ctx context.Context, player *model.Player) error {
	if r.conflicts > 0 {
		r.conflicts--
		return model.ErrVersionConflict
	}
	return r.PlayerRepository.SavePlayer(ctx, player)
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(t *testing.T, repo repository.PlayerRepository, seed int64) (service.SlotService, *engine.Engine) {
	t.Helper()
	eng := engine.New(engine.DefaultTables(), rand.New(rand.NewSource(seed)), quartz.NewMock(t))
	srv := NewSlotService(
		repo,
		&userRepoStub{users: map[int]*model.User{1: {ID: 1, Name: "scroggy"}}},
		eng,
		nopTxManager{},
		quartz.NewMock(t),
		silentLogger(),
	)
	return srv, eng
}

func playerCtx(userID int) context.Context {
	return middleware.WithUserID(context.Background(), userID)
}

func seedPlayer(t *testing.T, repo repository.PlayerRepository, balance int) {
	t.Helper()
	err := repo.CreatePlayer(context.Background(), &model.Player{
		UserID:    1,
		Name:      "scroggy",
		Balance:   balance,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestSpin_SettlesAndPersists(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)
	seedPlayer(t, repo, 10)

	res, err := srv.Spin(playerCtx(1), model.SpinRequest{Bet: 5})
	require.NoError(t, err)

	assert.Equal(t, 10-5+res.Result.Payout, res.Player.Balance)
	assert.Equal(t, 1, res.Player.GamesPlayed)

	// Новый снапшот действительно записан
	stored, err := repo.GetPlayer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, res.Player.Balance, stored.Balance)
	assert.Equal(t, 1, stored.GamesPlayed)
}

func TestSpin_InsufficientBalanceRejected(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)
	seedPlayer(t, repo, 3)

	_, err := srv.Spin(playerCtx(1), model.SpinRequest{Bet: 5})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "insufficient balance", verr.Reason)

	// Отклоненный раунд не меняет состояние
	stored, err := repo.GetPlayer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Balance)
	assert.Zero(t, stored.GamesPlayed)
}

func TestSpin_PlayerNotFound(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)

	_, err := srv.Spin(playerCtx(1), model.SpinRequest{Bet: 5})
	require.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestSpin_NoUserInContext(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)

	_, err := srv.Spin(context.Background(), model.SpinRequest{Bet: 5})
	require.Error(t, err)
}

func TestSpin_RetriesOnVersionConflict(t *testing.T) {
	mem := player_mem_repo.NewPlayerRepository()
	wrapped := &conflictRepo{PlayerRepository: mem, conflicts: 2}
	srv, _ := newTestService(t, wrapped, 21)
	seedPlayer(t, mem, 10)

	res, err := srv.Spin(playerCtx(1), model.SpinRequest{Bet: 5})
	require.NoError(t, err)
	assert.Zero(t, wrapped.conflicts)
	assert.Equal(t, 1, res.Player.GamesPlayed)
}

func TestSpin_ConflictsExhausted(t *testing.T) {
	mem := player_mem_repo.NewPlayerRepository()
	wrapped := &conflictRepo{PlayerRepository: mem, conflicts: 100}
	srv, _ := newTestService(t, wrapped, 21)
	seedPlayer(t, mem, 10)

	_, err := srv.Spin(playerCtx(1), model.SpinRequest{Bet: 5})
	require.ErrorIs(t, err, model.ErrVersionConflict)
}

// Двойная трата: два расчета от одного устаревшего снапшота balance=10,
// оба со ставкой 10. Коммитит ровно один; второй получает конфликт и при
// повторе валидируется уже против нового баланса
func TestConcurrentSettlement_ExactlyOneCommits(t *testing.T) {
	ctx := context.Background()
	repo := player_mem_repo.NewPlayerRepository()
	_, eng := newTestService(t, repo, 77)
	seedPlayer(t, repo, 10)

	stale1, err := repo.GetPlayer(ctx, 1)
	require.NoError(t, err)
	stale2, err := repo.GetPlayer(ctx, 1)
	require.NoError(t, err)

	resA, nextA, err := eng.Settle(*stale1, 10)
	require.NoError(t, err)
	require.NoError(t, repo.SavePlayer(ctx, &nextA))

	// Второй расчет от того же устаревшего снапшота - запись отклоняется
	_, nextB, err := eng.Settle(*stale2, 10)
	require.NoError(t, err)
	require.ErrorIs(t, repo.SavePlayer(ctx, &nextB), model.ErrVersionConflict)

	// Повтор против закоммиченного состояния
	fresh, err := repo.GetPlayer(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 10-10+resA.Payout, fresh.Balance)

	retryErr := eng.ValidateBet(10, fresh.Balance)
	if fresh.Balance < 10 {
		var verr *model.ValidationError
		require.ErrorAs(t, retryErr, &verr)
		assert.Equal(t, "insufficient balance", verr.Reason)
	} else {
		require.NoError(t, retryErr)
	}
}

func TestRestart_ResetsBalanceKeepsCounters(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)

	err := repo.CreatePlayer(context.Background(), &model.Player{
		UserID:      1,
		Name:        "scroggy",
		Balance:     0,
		GamesPlayed: 12,
		TotalWins:   4,
		TotalLosses: 8,
		BiggestWin:  150,
	})
	require.NoError(t, err)

	player, err := srv.Restart(playerCtx(1))
	require.NoError(t, err)

	assert.Equal(t, 10, player.Balance)
	assert.Equal(t, 12, player.GamesPlayed)
	assert.Equal(t, 4, player.TotalWins)
	assert.Equal(t, 8, player.TotalLosses)
	assert.Equal(t, 150, player.BiggestWin)
}

func TestDeposit_CreditsBalance(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)
	seedPlayer(t, repo, 2)

	player, err := srv.Deposit(playerCtx(1), model.DepositRequest{Amount: 25, TxSignature: "sig"})
	require.NoError(t, err)
	assert.Equal(t, 27, player.Balance)
}

func TestDeposit_RejectsNonPositive(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)
	seedPlayer(t, repo, 2)

	for _, amount := range []int{0, -5} {
		_, err := srv.Deposit(playerCtx(1), model.DepositRequest{Amount: amount})
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
	}
}

func TestCheckData_ProvisionsNewPlayer(t *testing.T) {
	repo := player_mem_repo.NewPlayerRepository()
	srv, _ := newTestService(t, repo, 21)

	player, err := srv.CheckData(playerCtx(1))
	require.NoError(t, err)

	assert.Equal(t, 1, player.UserID)
	assert.Equal(t, "scroggy", player.Name)
	assert.Equal(t, 10, player.Balance)
	assert.Zero(t, player.GamesPlayed)

	// Повторный вызов возвращает существующий профиль
	again, err := srv.CheckData(playerCtx(1))
	require.NoError(t, err)
	assert.Equal(t, player.UserID, again.UserID)
	assert.Equal(t, player.Version, again.Version)
}
