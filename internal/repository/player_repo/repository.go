package player_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scroggy_backend/internal/model"
	"scroggy_backend/internal/repository"
)

const (
	table           = "players"
	colUserID       = "user_id"
	colName         = "name"
	colBalance      = "balance"
	colTotalWins    = "total_wins"
	colTotalLosses  = "total_losses"
	colBiggestWin   = "biggest_win"
	colGamesPlayed  = "games_played"
	colCreatedAt    = "created_at"
	colLastPlayedAt = "last_played_at"
	colVersion      = "version"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetPlayer - возвращает игровой профиль вместе с текущей версией записи
func (r *repo) GetPlayer(ctx context.Context, userID int) (*model.Player, error) {
	query := sq.Select(colUserID, colName, colBalance, colTotalWins, colTotalLosses,
		colBiggestWin, colGamesPlayed, colCreatedAt, colLastPlayedAt, colVersion).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Player
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&p.UserID, &p.Name, &p.Balance, &p.TotalWins, &p.TotalLosses,
		&p.BiggestWin, &p.GamesPlayed, &p.CreatedAt, &p.LastPlayedAt, &p.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return &p, nil
}

// CreatePlayer - создает игровой профиль с первой версией записи
func (r *repo) CreatePlayer(ctx context.Context, player *model.Player) error {
	player.Version = 1

	query := sq.Insert(table).
		Columns(colUserID, colName, colBalance, colTotalWins, colTotalLosses,
			colBiggestWin, colGamesPlayed, colCreatedAt, colLastPlayedAt, colVersion).
		Values(player.UserID, player.Name, player.Balance, player.TotalWins, player.TotalLosses,
			player.BiggestWin, player.GamesPlayed, player.CreatedAt, player.LastPlayedAt, player.Version).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// SavePlayer - записывает новый снапшот игрока с проверкой версии.
// UPDATE проходит только если версия в БД совпадает с player.Version;
// иначе определяем, устарел снапшот или записи нет вовсе
func (r *repo) SavePlayer(ctx context.Context, player *model.Player) error {
	query := sq.Update(table).
		Set(colName, player.Name).
		Set(colBalance, player.Balance).
		Set(colTotalWins, player.TotalWins).
		Set(colTotalLosses, player.TotalLosses).
		Set(colBiggestWin, player.BiggestWin).
		Set(colGamesPlayed, player.GamesPlayed).
		Set(colLastPlayedAt, player.LastPlayedAt).
		Set(colVersion, player.Version+1).
		Where(sq.Eq{colUserID: player.UserID, colVersion: player.Version}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		_, err := r.GetPlayer(ctx, player.UserID)
		if err != nil {
			return err
		}
		return model.ErrVersionConflict
	}

	player.Version++
	return nil
}

// Leaderboard - топ игроков по балансу
func (r *repo) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	query := sq.Select(colUserID, colName, colBalance, colTotalWins).
		From(table).
		OrderBy(colBalance+" DESC", colUserID+" ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Balance, &e.TotalWins); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
