package profile

import "context"

type ProfileService interface {
	// Get returns the user's profile, falling back to a default-goal
	// skeleton when no document exists yet.
	Get(ctx context.Context, userID string) (ProfileResponse, error)

	// Update overwrites the identity block of the profile.
	Update(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)

	// UpdateGoal changes the internship-hours goal.
	UpdateGoal(ctx context.Context, userID string, req UpdateGoalRequest) (ProfileResponse, error)
}
