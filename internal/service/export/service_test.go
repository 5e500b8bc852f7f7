package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/interntrack/interntrack-backend-go/internal/domain/export"
	"github.com/interntrack/interntrack-backend-go/internal/domain/profile"
	"github.com/interntrack/interntrack-backend-go/internal/domain/timelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogService struct {
	logs []timelog.TimeLog
	err  error
}

func (f *fakeLogService) Upsert(ctx context.Context, userID string, req timelog.UpsertLogRequest) (timelog.LogResponse, error) {
	return timelog.LogResponse{}, errors.New("not implemented")
}

func (f *fakeLogService) Delete(ctx context.Context, userID, key string) (timelog.Progress, error) {
	return timelog.Progress{}, errors.New("not implemented")
}

func (f *fakeLogService) List(ctx context.Context, userID string, filter timelog.ListLogsFilter) (timelog.ListLogsResponse, error) {
	return timelog.ListLogsResponse{}, errors.New("not implemented")
}

func (f *fakeLogService) Snapshot(ctx context.Context, userID string) ([]timelog.TimeLog, error) {
	return f.logs, f.err
}

func (f *fakeLogService) Progress(ctx context.Context, userID string) (timelog.Progress, error) {
	return timelog.Progress{}, errors.New("not implemented")
}

func (f *fakeLogService) Refresh(ctx context.Context, userID string) error {
	return nil
}

type fakeProfileRepo struct {
	profile profile.Profile
	err     error
}

func (f *fakeProfileRepo) Get(ctx context.Context, userID string) (profile.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p profile.Profile) error { return nil }

func (f *fakeProfileRepo) MergeTotalHours(ctx context.Context, userID string, totalHours int) error {
	return nil
}

func (f *fakeProfileRepo) SetRequiredHours(ctx context.Context, userID string, hours int) error {
	return nil
}

func (f *fakeProfileRepo) RecordSyncNote(ctx context.Context, userID, note string) error {
	return nil
}

type fakeFileStorage struct {
	saved map[string][]byte
	err   error
}

func (f *fakeFileStorage) Save(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[path] = data
	return path, nil
}

func (f *fakeFileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFileStorage) Remove(ctx context.Context, path string) error { return nil }

func (f *fakeFileStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

var testIdentity = export.Identity{
	StudentName:  "Ada Intern",
	StudentEmail: "ada@example.com",
	CompanyName:  "Acme, Inc.",
}

func sampleLogs() []timelog.TimeLog {
	return []timelog.TimeLog{
		{Date: "2024/05/02", ClockIn: "08:00 AM", ClockOut: "17:00 PM", Hours: 8},
		{Date: "2024/05/01", ClockIn: "09:00 AM", ClockOut: "11:00 AM", Hours: 2},
	}
}

func TestToCSV_RoundTrip(t *testing.T) {
	logs := sampleLogs()

	data, err := ToCSV(logs, testIdentity)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte(utf8BOM)), "payload must start with a UTF-8 BOM")
	body := string(bytes.TrimPrefix(data, []byte(utf8BOM)))
	assert.True(t, strings.Contains(body, "\r\n"), "rows must be CRLF-terminated")

	r := csv.NewReader(strings.NewReader(body))
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(logs)+1, "header plus one row per log")

	assert.Equal(t, []string{"Student Name", "Student Email", "Company Name", "Date", "Clock In", "Clock Out", "Hours"}, rows[0])

	// Oldest date first, identity repeated, embedded comma preserved.
	assert.Equal(t, []string{"Ada Intern", "ada@example.com", "Acme, Inc.", "2024/05/01", "09:00 AM", "11:00 AM", "2"}, rows[1])
	assert.Equal(t, []string{"Ada Intern", "ada@example.com", "Acme, Inc.", "2024/05/02", "08:00 AM", "17:00 PM", "8"}, rows[2])
}

func TestToCSV_EscapesQuotesAndNewlines(t *testing.T) {
	logs := []timelog.TimeLog{
		{Date: "2024/05/01", ClockIn: "09:00 AM", ClockOut: "11:00 AM", Hours: 2},
	}
	id := export.Identity{
		StudentName:  `Ada "The Machine" Intern`,
		StudentEmail: "ada@example.com",
		CompanyName:  "Line\nBreak Co",
	}

	data, err := ToCSV(logs, id)
	require.NoError(t, err)

	body := string(bytes.TrimPrefix(data, []byte(utf8BOM)))
	r := csv.NewReader(strings.NewReader(body))
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, id.StudentName, rows[1][0])
	assert.Equal(t, id.CompanyName, rows[1][2])
}

func TestToCSV_DoesNotMutateInput(t *testing.T) {
	logs := sampleLogs()
	first := logs[0]

	_, err := ToCSV(logs, testIdentity)
	require.NoError(t, err)

	assert.Equal(t, first, logs[0])
}

func TestExportService_RenderCSV(t *testing.T) {
	svc := NewExportService(
		&fakeLogService{logs: sampleLogs()},
		&fakeProfileRepo{profile: profile.Profile{
			UserID:  "intern-1",
			Name:    testIdentity.StudentName,
			Email:   testIdentity.StudentEmail,
			Company: testIdentity.CompanyName,
		}},
		&fakeFileStorage{},
	)

	doc, err := svc.RenderCSV(context.Background(), "intern-1")

	require.NoError(t, err)
	assert.Equal(t, 2, doc.RowCount)
	assert.Equal(t, "text/csv; charset=utf-8", doc.ContentType)
	assert.True(t, strings.HasSuffix(doc.FileName, ".csv"))
	assert.True(t, bytes.HasPrefix(doc.Data, []byte(utf8BOM)))
}

func TestExportService_RenderCSV_EmptyCollection(t *testing.T) {
	svc := NewExportService(&fakeLogService{}, &fakeProfileRepo{}, &fakeFileStorage{})

	_, err := svc.RenderCSV(context.Background(), "intern-1")

	assert.ErrorIs(t, err, export.ErrNothingToExport)
}

func TestExportService_RenderCSV_IncompleteIdentity(t *testing.T) {
	svc := NewExportService(
		&fakeLogService{logs: sampleLogs()},
		&fakeProfileRepo{profile: profile.Profile{UserID: "intern-1", Name: "Ada Intern"}},
		&fakeFileStorage{},
	)

	_, err := svc.RenderCSV(context.Background(), "intern-1")

	assert.ErrorIs(t, err, profile.ErrIdentityIncomplete)
}

func TestExportService_ArchiveCSV(t *testing.T) {
	files := &fakeFileStorage{}
	svc := NewExportService(
		&fakeLogService{logs: sampleLogs()},
		&fakeProfileRepo{profile: profile.Profile{
			UserID:  "intern-1",
			Name:    testIdentity.StudentName,
			Email:   testIdentity.StudentEmail,
			Company: testIdentity.CompanyName,
		}},
		files,
	)

	resp, err := svc.ArchiveCSV(context.Background(), "intern-1")

	require.NoError(t, err)
	assert.Equal(t, 2, resp.RowCount)
	require.Contains(t, files.saved, resp.Path)
	assert.True(t, bytes.HasPrefix(files.saved[resp.Path], []byte(utf8BOM)))
}
