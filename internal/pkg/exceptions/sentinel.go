package exceptions

import "errors"

var (
	ErrIdentityMismatch     = errors.New("identity mismatch")
	ErrContentTooLong       = errors.New("content too long")
	ErrLinksNotAllowed      = errors.New("links not allowed")
	ErrInappropriateContent = errors.New("inappropriate content")
	ErrEmptyAfterFiltering  = errors.New("empty after filtering")
	ErrInvalidTimeFormat    = errors.New("invalid time format")
	ErrNotFound             = errors.New("not found")
	ErrBookingConflict      = errors.New("booking conflict")
	ErrLockNotAcquired      = errors.New("lock not acquired")
)
