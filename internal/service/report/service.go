package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/report"
	"github.com/interntrack/interntrack-backend-go/internal/domain/timelog"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/scheduler"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/timecalc"
)

const defaultSaveDelay = 1 * time.Second

type ReportServiceImpl struct {
	logService timelog.LogService
	draftRepo  report.DraftRepository
	saveDelay  time.Duration

	mu         sync.Mutex
	pending    map[string]report.Draft
	debouncers map[string]*scheduler.Debouncer
}

func NewReportService(
	logService timelog.LogService,
	draftRepo report.DraftRepository,
	saveDelay time.Duration,
) report.ReportService {
	if saveDelay <= 0 {
		saveDelay = defaultSaveDelay
	}
	return &ReportServiceImpl{
		logService: logService,
		draftRepo:  draftRepo,
		saveDelay:  saveDelay,
		pending:    make(map[string]report.Draft),
		debouncers: make(map[string]*scheduler.Debouncer),
	}
}

func (s *ReportServiceImpl) Assemble(ctx context.Context, userID string, req report.AssembleRequest) ([]report.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.logService.Snapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load time logs: %w", err)
	}

	byKey := make(map[string]timelog.TimeLog, len(logs))
	for _, log := range logs {
		byKey[log.Key()] = log
	}

	entries := make([]report.Entry, 0, len(req.Keys))
	for _, key := range req.Keys {
		log, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("log %s: %w", key, timelog.ErrLogNotFound)
		}
		entries = append(entries, report.Entry{
			Date:    log.Date,
			TimeIn:  log.ClockIn,
			TimeOut: log.ClockOut,
			Hours:   log.Hours,
		})
	}

	// Reports read chronologically, oldest day first, earliest clock-in
	// first within a day.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return clockMinutes(entries[i].TimeIn) < clockMinutes(entries[j].TimeIn)
	})

	return entries, nil
}

func clockMinutes(stored string) int {
	clock, meridiem := timecalc.SplitStored(stored)
	minutes, err := timecalc.ClockMinutes(clock, meridiem)
	if err != nil {
		return 0
	}
	return minutes
}

func (s *ReportServiceImpl) LoadDraft(ctx context.Context, userID string) (report.Draft, error) {
	s.mu.Lock()
	if draft, ok := s.pending[userID]; ok {
		s.mu.Unlock()
		return draft, nil
	}
	s.mu.Unlock()

	draft, err := s.draftRepo.Load(ctx, userID)
	if err != nil {
		return report.Draft{}, err
	}
	return draft, nil
}

func (s *ReportServiceImpl) SaveDraft(ctx context.Context, userID string, req report.SaveDraftRequest) {
	s.mu.Lock()
	s.pending[userID] = report.Draft{FormInfo: req.FormInfo, Entries: req.Entries}
	d, ok := s.debouncers[userID]
	if !ok {
		d = scheduler.NewDebouncer(s.saveDelay, func() { s.persist(userID) })
		s.debouncers[userID] = d
	}
	s.mu.Unlock()

	d.Trigger()
}

func (s *ReportServiceImpl) Flush(userID string) {
	s.mu.Lock()
	d, ok := s.debouncers[userID]
	s.mu.Unlock()
	if ok {
		d.Flush()
	}
}

func (s *ReportServiceImpl) FlushAll() {
	s.mu.Lock()
	debouncers := make([]*scheduler.Debouncer, 0, len(s.debouncers))
	for _, d := range s.debouncers {
		debouncers = append(debouncers, d)
	}
	s.mu.Unlock()

	for _, d := range debouncers {
		d.Flush()
	}
}

// persist writes the latest pending draft to the cache. Failures are
// logged, never surfaced: the in-memory copy survives for the next tick.
func (s *ReportServiceImpl) persist(userID string) {
	s.mu.Lock()
	draft, ok := s.pending[userID]
	if ok {
		delete(s.pending, userID)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	if err := s.draftRepo.Save(context.Background(), userID, draft); err != nil {
		slog.Warn("failed to persist report draft",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		s.mu.Lock()
		if _, superseded := s.pending[userID]; !superseded {
			s.pending[userID] = draft
		}
		s.mu.Unlock()
	}
}

func (s *ReportServiceImpl) Submit(ctx context.Context, userID string, req report.SubmitRequest) (report.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SubmitResponse{}, err
	}

	finalized := report.Finalize(req.Entries)
	if len(finalized) == 0 {
		return report.SubmitResponse{}, report.ErrNoExportableEntries
	}

	s.mu.Lock()
	delete(s.pending, userID)
	if d, ok := s.debouncers[userID]; ok {
		d.Stop()
		delete(s.debouncers, userID)
	}
	s.mu.Unlock()

	if err := s.draftRepo.Clear(ctx, userID); err != nil {
		return report.SubmitResponse{}, fmt.Errorf("failed to clear draft cache: %w", err)
	}

	return report.SubmitResponse{
		FormInfo: req.FormInfo,
		Entries:  finalized,
		Excluded: len(req.Entries) - len(finalized),
	}, nil
}
