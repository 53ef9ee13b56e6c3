package service

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid_input")
	ErrNotFound         = errors.New("not_found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidState     = errors.New("invalid_state")
	ErrMissingSessionID = errors.New("missing session id")
	ErrNoPreferences    = errors.New("profile has no preferences")
)
