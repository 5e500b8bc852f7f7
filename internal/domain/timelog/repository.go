package timelog

import "context"

// LogRepository is the keyed remote collection of logs for one user. Every
// entry's key is DeriveKey(date, clockIn); the transport behind it is
// opaque to the core. Implementations must decode remote rows through the
// strict TimeLog schema and fail fast on malformed data.
type LogRepository interface {
	// Set writes a log under its derived key, overwriting any existing
	// document with the same key.
	Set(ctx context.Context, userID, key string, log TimeLog) error

	// Rename atomically moves an edited log from its old key to its new
	// derived key. Both writes succeed or neither does.
	Rename(ctx context.Context, userID, oldKey, newKey string, log TimeLog) error

	// Get fetches a single log by key.
	Get(ctx context.Context, userID, key string) (TimeLog, error)

	// Delete removes the document under key. Deleting an absent key
	// returns ErrLogNotFound.
	Delete(ctx context.Context, userID, key string) error

	// List returns the user's full collection, newest date first.
	List(ctx context.Context, userID string) ([]TimeLog, error)
}
