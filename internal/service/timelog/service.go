package timelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/interntrack/interntrack-backend-go/internal/domain/profile"
	"github.com/interntrack/interntrack-backend-go/internal/domain/timelog"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/timecalc"
)

// LogServiceImpl keeps an in-memory mirror of each user's log collection
// and writes every mutation through the remote gateway. The mirror is only
// ever replaced by a full reload of confirmed remote state, or rolled back
// to its pre-mutation snapshot when a gateway call fails; it is never left
// half-applied.
type LogServiceImpl struct {
	repo        timelog.LogRepository
	profiles    profile.Repository
	defaultGoal int

	mu     sync.Mutex
	mirror map[string][]timelog.TimeLog
	loaded map[string]bool
}

func NewLogService(repo timelog.LogRepository, profiles profile.Repository, defaultGoal int) timelog.LogService {
	if defaultGoal <= 0 {
		defaultGoal = profile.DefaultRequiredHours
	}
	return &LogServiceImpl{
		repo:        repo,
		profiles:    profiles,
		defaultGoal: defaultGoal,
		mirror:      make(map[string][]timelog.TimeLog),
		loaded:      make(map[string]bool),
	}
}

// Upsert implements timelog.LogService.
func (s *LogServiceImpl) Upsert(ctx context.Context, userID string, req timelog.UpsertLogRequest) (timelog.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.LogResponse{}, err
	}

	log, err := req.ToTimeLog()
	if err != nil {
		return timelog.LogResponse{}, err
	}
	key := log.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx, userID); err != nil {
		return timelog.LogResponse{}, err
	}
	snapshot := s.mirror[userID]

	// Dedup on the natural key. An edit may keep its own key; any other
	// collision is rejected before the gateway sees the write.
	for _, existing := range snapshot {
		if existing.Key() == key && key != req.EditKey {
			return timelog.LogResponse{}, timelog.ErrDuplicateLog
		}
	}

	if req.EditKey != "" && req.EditKey != key {
		// The edit changed date or clock-in, so the record moves to a new
		// document key and the old one must go in the same unit.
		err = s.repo.Rename(ctx, userID, req.EditKey, key, log)
	} else {
		err = s.repo.Set(ctx, userID, key, log)
	}
	if err != nil {
		// A stale edit key is an ordinary not-found, not a remote failure.
		if errors.Is(err, timelog.ErrLogNotFound) {
			return timelog.LogResponse{}, timelog.ErrLogNotFound
		}
		s.mirror[userID] = snapshot
		s.recordSyncNote(ctx, userID, fmt.Sprintf("write %s: %v", key, err))
		return timelog.LogResponse{}, &timelog.SyncError{Op: "write", Err: err}
	}

	if err := s.reloadLocked(ctx, userID); err != nil {
		s.mirror[userID] = snapshot
		s.recordSyncNote(ctx, userID, fmt.Sprintf("reload after write %s: %v", key, err))
		return timelog.LogResponse{}, &timelog.SyncError{Op: "reload", Err: err}
	}

	prog := s.pushProgressLocked(ctx, userID)

	return timelog.LogResponse{
		Key:      key,
		Log:      log,
		Progress: prog,
	}, nil
}

// Delete implements timelog.LogService.
func (s *LogServiceImpl) Delete(ctx context.Context, userID, key string) (timelog.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx, userID); err != nil {
		return timelog.Progress{}, err
	}
	snapshot := s.mirror[userID]

	if err := s.repo.Delete(ctx, userID, key); err != nil {
		if errors.Is(err, timelog.ErrLogNotFound) {
			return timelog.Progress{}, timelog.ErrLogNotFound
		}
		s.mirror[userID] = snapshot
		s.recordSyncNote(ctx, userID, fmt.Sprintf("delete %s: %v", key, err))
		return timelog.Progress{}, &timelog.SyncError{Op: "delete", Err: err}
	}

	if err := s.reloadLocked(ctx, userID); err != nil {
		s.mirror[userID] = snapshot
		s.recordSyncNote(ctx, userID, fmt.Sprintf("reload after delete %s: %v", key, err))
		return timelog.Progress{}, &timelog.SyncError{Op: "reload", Err: err}
	}

	return s.pushProgressLocked(ctx, userID), nil
}

// List implements timelog.LogService.
func (s *LogServiceImpl) List(ctx context.Context, userID string, filter timelog.ListLogsFilter) (timelog.ListLogsResponse, error) {
	if err := filter.Validate(); err != nil {
		return timelog.ListLogsResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx, userID); err != nil {
		return timelog.ListLogsResponse{}, err
	}
	logs := s.mirror[userID]

	total := len(logs)
	offset := (filter.Page - 1) * filter.Limit
	if offset > total {
		offset = total
	}
	end := offset + filter.Limit
	if end > total {
		end = total
	}

	items := make([]timelog.LogListItem, 0, end-offset)
	for _, l := range logs[offset:end] {
		items = append(items, timelog.LogListItem{Key: l.Key(), Log: l})
	}

	return timelog.ListLogsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Logs:       items,
	}, nil
}

// Snapshot implements timelog.LogService.
func (s *LogServiceImpl) Snapshot(ctx context.Context, userID string) ([]timelog.TimeLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx, userID); err != nil {
		return nil, err
	}

	logs := s.mirror[userID]
	out := make([]timelog.TimeLog, len(logs))
	copy(out, logs)
	return out, nil
}

// Progress implements timelog.LogService.
func (s *LogServiceImpl) Progress(ctx context.Context, userID string) (timelog.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx, userID); err != nil {
		return timelog.Progress{}, err
	}

	return timelog.Recompute(s.mirror[userID], s.goalFor(ctx, userID)), nil
}

// Refresh implements timelog.LogService.
func (s *LogServiceImpl) Refresh(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reloadLocked(ctx, userID)
}

// ensureLoadedLocked performs the one initial load of a user's collection.
// Callers must hold s.mu.
func (s *LogServiceImpl) ensureLoadedLocked(ctx context.Context, userID string) error {
	if s.loaded[userID] {
		return nil
	}
	return s.reloadLocked(ctx, userID)
}

// reloadLocked replaces the mirror with the gateway's current collection.
// Callers must hold s.mu.
func (s *LogServiceImpl) reloadLocked(ctx context.Context, userID string) error {
	logs, err := s.repo.List(ctx, userID)
	if err != nil {
		return &timelog.SyncError{Op: "list", Err: err}
	}
	sortLogsDescending(logs)
	s.mirror[userID] = logs
	s.loaded[userID] = true
	return nil
}

// pushProgressLocked recomputes the aggregate and merge-writes the total to
// the profile sink. The push is best-effort: a failure is logged and the
// fresh aggregate still returned. Callers must hold s.mu.
func (s *LogServiceImpl) pushProgressLocked(ctx context.Context, userID string) timelog.Progress {
	prog := timelog.Recompute(s.mirror[userID], s.goalFor(ctx, userID))

	if err := s.profiles.MergeTotalHours(ctx, userID, prog.TotalHours); err != nil {
		slog.Warn("failed to push total hours to profile", "user_id", userID, "error", err)
	}
	return prog
}

func (s *LogServiceImpl) goalFor(ctx context.Context, userID string) int {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			slog.Warn("failed to load profile goal, using default", "user_id", userID, "error", err)
		}
		return s.defaultGoal
	}
	if p.RequiredHours <= 0 {
		return s.defaultGoal
	}
	return p.RequiredHours
}

// recordSyncNote attaches a diagnostic describing a failed remote exchange
// to the user's profile. Failures here are swallowed: a diagnostic must
// never mask the error it describes.
func (s *LogServiceImpl) recordSyncNote(ctx context.Context, userID, note string) {
	if err := s.profiles.RecordSyncNote(ctx, userID, note); err != nil {
		slog.Debug("failed to record sync note", "user_id", userID, "error", err)
	}
}

// sortLogsDescending orders newest date first, then latest clock-in first
// within a day. Clock-in ties cannot happen: the pair is the natural key.
func sortLogsDescending(logs []timelog.TimeLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Date != logs[j].Date {
			return logs[i].Date > logs[j].Date
		}
		return clockInMinutes(logs[i]) > clockInMinutes(logs[j])
	})
}

func clockInMinutes(l timelog.TimeLog) int {
	clock, meridiem := timecalc.SplitStored(l.ClockIn)
	mins, err := timecalc.ClockMinutes(clock, meridiem)
	if err != nil {
		return 0
	}
	return mins
}
