package profile

import "errors"

// Profile domain errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrIdentityIncomplete = errors.New("profile is missing name, email or company")
)
