package domain

import "time"

// BlockedInterval is an owner-imposed unavailability window for a venue,
// independent of reservations. A date with any block on it is not bookable.
type BlockedInterval struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	IsFullDay bool      `json:"is_full_day"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
	Reason    string    `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
