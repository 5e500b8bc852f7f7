package timelog

import "errors"

// Time log domain errors
var (
	ErrDuplicateLog    = errors.New("a log for this date and clock-in time already exists")
	ErrLogNotFound     = errors.New("time log not found")
	ErrMalformedRemote = errors.New("remote log record is malformed")
)

// SyncError reports a failed exchange with the remote log collection. The
// in-memory list is rolled back to its last known good state before this is
// returned, so re-issuing the same call is always safe.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return "sync " + e.Op + ": " + e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
