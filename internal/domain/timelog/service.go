package timelog

import (
	"context"
)

// LogService owns the authoritative log list for each user and mediates all
// mutation through the remote gateway, keeping an in-memory mirror for
// read paths.
type LogService interface {
	// Upsert validates a candidate log, derives its key, writes it through
	// the gateway and reloads the mirror from confirmed remote state. On
	// gateway failure the mirror is left at its pre-mutation value and the
	// editor may retry the identical call.
	Upsert(ctx context.Context, userID string, req UpsertLogRequest) (LogResponse, error)

	// Delete removes a log by derived key, then reloads the mirror.
	Delete(ctx context.Context, userID, key string) (Progress, error)

	// List paginates over the already-loaded, date-descending mirror. No
	// network call is made once the mirror is warm.
	List(ctx context.Context, userID string, filter ListLogsFilter) (ListLogsResponse, error)

	// Snapshot returns a copy of the user's full mirror, newest date first,
	// loading it from the gateway on first access.
	Snapshot(ctx context.Context, userID string) ([]TimeLog, error)

	// Progress recomputes the aggregate for the current collection.
	Progress(ctx context.Context, userID string) (Progress, error)

	// Refresh forces a full reload of the mirror from the gateway.
	Refresh(ctx context.Context, userID string) error
}
