package store

import "errors"

// Sentinel errors returned by store operations. Handlers map these to HTTP
// statuses with errors.Is; anything else is a storage failure and surfaces
// as a generic 500.
var (
	ErrDuplicateCredential = errors.New("username or email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNotFound            = errors.New("not found")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
)
