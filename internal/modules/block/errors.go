package block

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("block not found")
	ErrDateHasBookings = errors.New("date has active reservations")
)
