package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type BookingType string

const (
	BookingHourly  BookingType = "hourly"
	BookingFullDay BookingType = "full_day"
)

// Full-day reservations are stored with this sentinel time pair.
const (
	FullDayStart = "00:00"
	FullDayEnd   = "23:59"
)

// Reservation occupies a venue for one civil date and a half-open
// [StartTime, EndTime) wall-clock range. Only pending and confirmed rows
// count against capacity; cancelled rows are inert and never deleted.
type Reservation struct {
	ID                 int64             `json:"id"`
	Reference          string            `json:"reference"`
	VenueID            int64             `json:"venue_id" validate:"required"`
	UserID             int64             `json:"user_id" validate:"required"`
	Date               string            `json:"date" validate:"required"`
	StartTime          string            `json:"start_time"`
	EndTime            string            `json:"end_time"`
	BookingType        BookingType       `json:"booking_type"`
	Guests             int               `json:"guests" validate:"required,gt=0"`
	TotalPrice         float64           `json:"total_price"`
	Status             ReservationStatus `json:"status"`
	CancellationReason string            `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}

func (r Reservation) IsFullDay() bool {
	return r.StartTime == FullDayStart && r.EndTime == FullDayEnd
}

func (r Reservation) IsActive() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}
