package profile

import (
	"context"
	"testing"

	"github.com/interntrack/interntrack-backend-go/internal/domain/profile"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	profiles map[string]profile.Profile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[string]profile.Profile)}
}

func (f *fakeRepo) Get(ctx context.Context, userID string) (profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return profile.Profile{}, profile.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, p profile.Profile) error {
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeRepo) MergeTotalHours(ctx context.Context, userID string, totalHours int) error {
	p := f.profiles[userID]
	p.UserID = userID
	p.TotalHours = totalHours
	f.profiles[userID] = p
	return nil
}

func (f *fakeRepo) SetRequiredHours(ctx context.Context, userID string, hours int) error {
	p := f.profiles[userID]
	p.UserID = userID
	p.RequiredHours = hours
	f.profiles[userID] = p
	return nil
}

func (f *fakeRepo) RecordSyncNote(ctx context.Context, userID, note string) error { return nil }

func TestProfileService_Get_DefaultsWhenMissing(t *testing.T) {
	svc := NewProfileService(newFakeRepo())

	resp, err := svc.Get(context.Background(), "intern-1")

	require.NoError(t, err)
	assert.Equal(t, "intern-1", resp.UserID)
	assert.Equal(t, profile.DefaultRequiredHours, resp.RequiredHours)
	assert.Zero(t, resp.TotalHours)
}

func TestProfileService_Update(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProfileService(repo)

	resp, err := svc.Update(context.Background(), "intern-1", profile.UpdateProfileRequest{
		Name:    "Ada Intern",
		Email:   "ada@example.com",
		Company: "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Intern", resp.Name)
	assert.Equal(t, profile.DefaultRequiredHours, resp.RequiredHours)

	stored, err := repo.Get(context.Background(), "intern-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Company)
}

func TestProfileService_Update_KeepsGoalAndTotal(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["intern-1"] = profile.Profile{UserID: "intern-1", RequiredHours: 480, TotalHours: 42}
	svc := NewProfileService(repo)

	resp, err := svc.Update(context.Background(), "intern-1", profile.UpdateProfileRequest{
		Name:    "Ada Intern",
		Email:   "ada@example.com",
		Company: "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, 480, resp.RequiredHours)
	assert.Equal(t, 42, resp.TotalHours)
}

func TestProfileService_Update_Invalid(t *testing.T) {
	svc := NewProfileService(newFakeRepo())

	_, err := svc.Update(context.Background(), "intern-1", profile.UpdateProfileRequest{Name: "Ada"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "company")
}

func TestProfileService_UpdateGoal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProfileService(repo)

	resp, err := svc.UpdateGoal(context.Background(), "intern-1", profile.UpdateGoalRequest{RequiredHours: 480})

	require.NoError(t, err)
	assert.Equal(t, 480, resp.RequiredHours)
}

func TestProfileService_UpdateGoal_OutOfRange(t *testing.T) {
	svc := NewProfileService(newFakeRepo())

	_, err := svc.UpdateGoal(context.Background(), "intern-1", profile.UpdateGoalRequest{RequiredHours: 0})
	assert.Error(t, err)

	_, err = svc.UpdateGoal(context.Background(), "intern-1", profile.UpdateGoalRequest{RequiredHours: 20000})
	assert.Error(t, err)
}
