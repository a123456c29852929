package contacts

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrMissingDate     = errors.New("reminder date is required")
	ErrMissingTime     = errors.New("reminder time is required")
)
