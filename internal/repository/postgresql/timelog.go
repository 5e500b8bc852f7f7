package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/interntrack/interntrack-backend-go/internal/domain/timelog"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeLogRepositoryImpl struct {
	db *database.DB
}

// NewTimeLogRepository creates the remote keyed log collection backed by
// the time_logs table, one row per (user, derived key).
func NewTimeLogRepository(db *database.DB) timelog.LogRepository {
	return &timeLogRepositoryImpl{db: db}
}

func (r *timeLogRepositoryImpl) Set(ctx context.Context, userID, key string, log timelog.TimeLog) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO time_logs (user_id, key, log_date, clock_in, clock_out, hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, key) DO UPDATE
		SET log_date = EXCLUDED.log_date,
		    clock_in = EXCLUDED.clock_in,
		    clock_out = EXCLUDED.clock_out,
		    hours = EXCLUDED.hours,
		    updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, userID, key, log.Date, log.ClockIn, log.ClockOut, log.Hours)
	if err != nil {
		return fmt.Errorf("failed to write time log: %w", err)
	}
	return nil
}

// Rename moves a log to a new key in one transaction so a failure cannot
// leave both the old and the new document behind.
func (r *timeLogRepositoryImpl) Rename(ctx context.Context, userID, oldKey, newKey string, log timelog.TimeLog) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(txCtx, `DELETE FROM time_logs WHERE user_id = $1 AND key = $2`, userID, oldKey)
		if err != nil {
			return fmt.Errorf("failed to remove old time log: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return timelog.ErrLogNotFound
		}
		return r.Set(txCtx, userID, newKey, log)
	})
}

func (r *timeLogRepositoryImpl) Get(ctx context.Context, userID, key string) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT log_date, clock_in, clock_out, hours
		FROM time_logs
		WHERE user_id = $1 AND key = $2
	`

	var log timelog.TimeLog
	err := q.QueryRow(ctx, query, userID, key).Scan(&log.Date, &log.ClockIn, &log.ClockOut, &log.Hours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, timelog.ErrLogNotFound
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to read time log: %w", err)
	}
	return log, nil
}

func (r *timeLogRepositoryImpl) Delete(ctx context.Context, userID, key string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_logs WHERE user_id = $1 AND key = $2`, userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete time log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timelog.ErrLogNotFound
	}
	return nil
}

func (r *timeLogRepositoryImpl) List(ctx context.Context, userID string) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT log_date, clock_in, clock_out, hours
		FROM time_logs
		WHERE user_id = $1
		ORDER BY log_date DESC, clock_in DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	defer rows.Close()

	logs := make([]timelog.TimeLog, 0)
	for rows.Next() {
		var log timelog.TimeLog
		if err := rows.Scan(&log.Date, &log.ClockIn, &log.ClockOut, &log.Hours); err != nil {
			return nil, fmt.Errorf("%w: %v", timelog.ErrMalformedRemote, err)
		}
		if log.Date == "" || log.ClockIn == "" {
			return nil, fmt.Errorf("%w: row missing date or clock-in", timelog.ErrMalformedRemote)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	return logs, nil
}
