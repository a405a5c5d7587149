package models

import "errors"

// Sentinel errors shared by the repository and service layers. Handlers map
// each kind to exactly one HTTP status; repositories wrap driver errors into
// these so the taxonomy is decided in one place.
var (
	ErrEmployeeNotFound   = errors.New("employee: not found")
	ErrDuplicateEmail     = errors.New("employee: email already exists")
	ErrStatusNotFound     = errors.New("status: not found")
	ErrIntervalNotFound   = errors.New("interval: no matching open interval")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
)
