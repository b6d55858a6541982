package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const ensureAccountsQuery = `
	INSERT INTO accounts (user_id, points, level)
	SELECT id, $2, $3 FROM unnest($1::text[]) AS id
	ORDER BY id
	ON CONFLICT (user_id) DO NOTHING
`

const selectAccountColumns = `user_id, points, level, experience, wins, games_played, last_daily_claim`

const applyDeltaQuery = `
	UPDATE accounts
	SET points = points + $2, updated_at = NOW()
	WHERE user_id = $1 AND points + $2 >= 0
	RETURNING points
`

const updateProfileQuery = `
	UPDATE accounts
	SET experience       = COALESCE($2, experience),
	    wins             = COALESCE($3, wins),
	    games_played     = COALESCE($4, games_played),
	    level            = COALESCE($5, level),
	    last_daily_claim = COALESCE($6, last_daily_claim),
	    updated_at       = NOW()
	WHERE user_id = $1
`

const addInventoryQuery = `
	INSERT INTO inventory (user_id, item_id, quantity)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, item_id) DO UPDATE
	SET quantity = inventory.quantity + EXCLUDED.quantity
`

func ensureAccounts(ctx context.Context, q querier, ids []string) error {
	if _, err := q.Exec(ctx, ensureAccountsQuery, ids, domain.StartingPoints, domain.StartingLevel); err != nil {
		return unavailable(ErrMsgFailedToEnsureAccount, err)
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		acc       domain.Account
		lastClaim *time.Time
	)
	if err := row.Scan(&acc.ID, &acc.Points, &acc.Level, &acc.Experience, &acc.Wins, &acc.GamesPlayed, &lastClaim); err != nil {
		return nil, err
	}
	if lastClaim != nil {
		acc.LastDailyClaim = lastClaim.UTC()
	}
	return &acc, nil
}

func getAccount(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	acc, err := scanAccount(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgAccountNotFound)
		}
		return nil, unavailable(ErrMsgFailedToGetAccount, err)
	}
	return acc, nil
}

func applyDelta(ctx context.Context, q querier, userID string, delta int64) (int64, error) {
	var balance int64
	err := q.QueryRow(ctx, applyDeltaQuery, userID, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: "+ErrMsgBalanceTooLow, domain.ErrInsufficientFunds, -delta)
		}
		return 0, unavailable(ErrMsgFailedToApplyDelta, err)
	}
	return balance, nil
}

func updateProfile(ctx context.Context, q querier, userID string, u domain.ProfileUpdate) error {
	_, err := q.Exec(ctx, updateProfileQuery, userID, u.Experience, u.Wins, u.GamesPlayed, u.Level, u.LastDailyClaim)
	if err != nil {
		return unavailable(ErrMsgFailedToUpdateProfile, err)
	}
	return nil
}

// unavailable wraps an infrastructure failure so callers can classify it
func unavailable(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrUnavailable, msg, err)
}
