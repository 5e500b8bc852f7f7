package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/export"
	"github.com/interntrack/interntrack-backend-go/internal/domain/profile"
	"github.com/interntrack/interntrack-backend-go/internal/domain/timelog"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/storage"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/timecalc"
)

// utf8BOM keeps spreadsheet tools from misreading the encoding.
const utf8BOM = "\xEF\xBB\xBF"

const csvHeader = "Student Name, Student Email, Company Name, Date, Clock In, Clock Out, Hours"

type ExportServiceImpl struct {
	logService  timelog.LogService
	profileRepo profile.Repository
	fileStorage storage.FileStorage
}

func NewExportService(
	logService timelog.LogService,
	profileRepo profile.Repository,
	fileStorage storage.FileStorage,
) export.ExportService {
	return &ExportServiceImpl{
		logService:  logService,
		profileRepo: profileRepo,
		fileStorage: fileStorage,
	}
}

// ToCSV renders logs as an RFC 4180 table, oldest entry first, with the
// identity block repeated on every row and a UTF-8 BOM prefix.
func ToCSV(logs []timelog.TimeLog, id export.Identity) ([]byte, error) {
	sorted := make([]timelog.TimeLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return clockMinutes(sorted[i].ClockIn) < clockMinutes(sorted[j].ClockIn)
	})

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	buf.WriteString(csvHeader)
	buf.WriteString("\r\n")

	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	for _, log := range sorted {
		record := []string{
			id.StudentName,
			id.StudentEmail,
			id.CompanyName,
			log.Date,
			log.ClockIn,
			log.ClockOut,
			strconv.Itoa(log.Hours),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func clockMinutes(stored string) int {
	clock, meridiem := timecalc.SplitStored(stored)
	minutes, err := timecalc.ClockMinutes(clock, meridiem)
	if err != nil {
		return 0
	}
	return minutes
}

func (s *ExportServiceImpl) RenderCSV(ctx context.Context, userID string) (*export.CSVDocument, error) {
	logs, err := s.logService.Snapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load time logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, export.ErrNothingToExport
	}

	identity, err := s.identityFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := ToCSV(logs, identity)
	if err != nil {
		return nil, err
	}

	return &export.CSVDocument{
		FileName:    fmt.Sprintf("time-logs-%s.csv", time.Now().Format("20060102")),
		ContentType: "text/csv; charset=utf-8",
		RowCount:    len(logs),
		Data:        data,
	}, nil
}

func (s *ExportServiceImpl) ArchiveCSV(ctx context.Context, userID string) (*export.ArchiveResponse, error) {
	doc, err := s.RenderCSV(ctx, userID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("exports/%s/%s", userID, doc.FileName)
	storedPath, err := s.fileStorage.Save(ctx, bytes.NewReader(doc.Data), path, doc.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to persist csv export: %w", err)
	}

	slog.Info("archived csv export",
		slog.String("user_id", userID),
		slog.String("path", storedPath),
		slog.Int("rows", doc.RowCount))

	return &export.ArchiveResponse{
		Path:     storedPath,
		FileName: doc.FileName,
		RowCount: doc.RowCount,
	}, nil
}

func (s *ExportServiceImpl) identityFor(ctx context.Context, userID string) (export.Identity, error) {
	p, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return export.Identity{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if p.Name == "" || p.Email == "" || p.Company == "" {
		return export.Identity{}, profile.ErrIdentityIncomplete
	}
	return export.Identity{
		StudentName:  p.Name,
		StudentEmail: p.Email,
		CompanyName:  p.Company,
	}, nil
}
