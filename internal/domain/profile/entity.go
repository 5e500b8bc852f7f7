package profile

import "time"

// DefaultRequiredHours is the internship-hours goal applied to a profile
// that has never set its own.
const DefaultRequiredHours = 300

// Profile is the per-user document mirroring the intern's identity, goal
// and the aggregate pushed back after every log mutation.
type Profile struct {
	UserID        string
	Name          string
	Email         string
	Company       string
	RequiredHours int
	TotalHours    int
	UpdatedAt     time.Time
}
