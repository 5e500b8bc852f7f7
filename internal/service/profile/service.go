package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/profile"
)

type ProfileServiceImpl struct {
	profileRepo profile.Repository
}

func NewProfileService(profileRepo profile.Repository) profile.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) Get(ctx context.Context, userID string) (profile.ProfileResponse, error) {
	p, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return toResponse(profile.Profile{
				UserID:        userID,
				RequiredHours: profile.DefaultRequiredHours,
			}), nil
		}
		return profile.ProfileResponse{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if p.RequiredHours == 0 {
		p.RequiredHours = profile.DefaultRequiredHours
	}
	return toResponse(p), nil
}

func (s *ProfileServiceImpl) Update(ctx context.Context, userID string, req profile.UpdateProfileRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	current, err := s.profileRepo.Get(ctx, userID)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return profile.ProfileResponse{}, fmt.Errorf("failed to load profile: %w", err)
	}

	updated := profile.Profile{
		UserID:        userID,
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		RequiredHours: current.RequiredHours,
		TotalHours:    current.TotalHours,
		UpdatedAt:     time.Now(),
	}
	if updated.RequiredHours == 0 {
		updated.RequiredHours = profile.DefaultRequiredHours
	}

	if err := s.profileRepo.Upsert(ctx, updated); err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return toResponse(updated), nil
}

func (s *ProfileServiceImpl) UpdateGoal(ctx context.Context, userID string, req profile.UpdateGoalRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	if err := s.profileRepo.SetRequiredHours(ctx, userID, req.RequiredHours); err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to update goal: %w", err)
	}

	return s.Get(ctx, userID)
}

func toResponse(p profile.Profile) profile.ProfileResponse {
	resp := profile.ProfileResponse{
		UserID:        p.UserID,
		Name:          p.Name,
		Email:         p.Email,
		Company:       p.Company,
		RequiredHours: p.RequiredHours,
		TotalHours:    p.TotalHours,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
