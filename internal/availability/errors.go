package availability

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrVenueNotFound      = errors.New("venue not found")
	ErrPastDate           = errors.New("date is in the past")
	ErrDateBlocked        = errors.New("date is blocked by the venue owner")
	ErrCapacityOutOfRange = errors.New("guest count outside venue capacity")
	ErrInvalidTimeRange   = errors.New("invalid time range")
	ErrSlotTaken          = errors.New("time slot is already taken")
	ErrDateFullyBooked    = errors.New("date is fully booked")
	ErrSlotConflict       = errors.New("slot was taken by a concurrent booking")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
