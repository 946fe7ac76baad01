package availability

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"venuehub/internal/domain"

	"gorm.io/gorm"
)

// BookingStore is the read side of the reservation collection. Both listing
// methods return only non-cancelled rows.
type BookingStore interface {
	ListActiveByVenue(ctx context.Context, venueID int64) ([]domain.Reservation, error)
	ListActiveByVenueDate(ctx context.Context, venueID int64, date string) ([]domain.Reservation, error)
}

// BlockStore reads owner-defined blocked intervals.
type BlockStore interface {
	ListByVenue(ctx context.Context, venueID int64) ([]domain.BlockedInterval, error)
	ExistsForDate(ctx context.Context, venueID int64, date string) (bool, error)
}

type VenueStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Policy holds the business-rule knobs carried over from the product:
// neither value is an invariant, both are configuration.
type Policy struct {
	FullyBookedHourThreshold int
	FullDayPriceMultiplier   float64
}

func DefaultPolicy() Policy {
	return Policy{
		FullyBookedHourThreshold: DefaultFullyBookedHourThreshold,
		FullDayPriceMultiplier:   10,
	}
}

// Service resolves venue availability and validates booking requests against
// the booking and block stores before any write happens.
type Service struct {
	bookings BookingStore
	blocks   BlockStore
	venues   VenueStore
	policy   Policy
	now      func() time.Time
}

func NewService(bookings BookingStore, blocks BlockStore, venues VenueStore, policy Policy) *Service {
	if policy.FullyBookedHourThreshold <= 0 {
		policy.FullyBookedHourThreshold = DefaultFullyBookedHourThreshold
	}
	if policy.FullDayPriceMultiplier <= 0 {
		policy.FullDayPriceMultiplier = 10
	}
	return &Service{
		bookings: bookings,
		blocks:   blocks,
		venues:   venues,
		policy:   policy,
		now:      time.Now,
	}
}

// Availability is the loaded calendar state for one venue.
type Availability struct {
	ReservationsByDate map[string][]domain.Reservation
	BlockedDates       map[string]bool
}

// LoadAvailability fetches all active reservations and blocked intervals for
// a venue and groups reservations by date. Read-only.
func (s *Service) LoadAvailability(ctx context.Context, venueID int64) (*Availability, error) {
	if venueID <= 0 {
		return nil, ErrValidation
	}

	reservations, err := s.bookings.ListActiveByVenue(ctx, venueID)
	if err != nil {
		return nil, storeErr(err)
	}
	blocks, err := s.blocks.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, storeErr(err)
	}

	byDate := make(map[string][]domain.Reservation, len(reservations))
	for _, r := range reservations {
		byDate[r.Date] = append(byDate[r.Date], r)
	}
	blocked := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		blocked[b.Date] = true
	}

	return &Availability{ReservationsByDate: byDate, BlockedDates: blocked}, nil
}

// ClassifyDate applies the service policy to the pure classifier.
func (s *Service) ClassifyDate(date string, av *Availability, bookingType domain.BookingType) DateClassification {
	return ClassifyDate(date, av.ReservationsByDate, av.BlockedDates, bookingType, s.policy.FullyBookedHourThreshold)
}

// DateStatus is one calendar cell: classification plus whether the caller may
// book it at all (past dates never are).
type DateStatus struct {
	Date           string             `json:"date"`
	Classification DateClassification `json:"classification"`
	Bookable       bool               `json:"bookable"`
}

// MonthAvailability classifies every date of a "YYYY-MM" month for a venue.
func (s *Service) MonthAvailability(ctx context.Context, venueID int64, month string, bookingType domain.BookingType) ([]DateStatus, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, ErrValidation
	}

	av, err := s.LoadAvailability(ctx, venueID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	out := make([]DateStatus, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		cls := s.ClassifyDate(date, av, bookingType)
		bookable := date >= today && (cls == DateAvailable ||
			(cls == DatePartiallyBooked && bookingType == domain.BookingHourly))
		out = append(out, DateStatus{Date: date, Classification: cls, Bookable: bookable})
	}
	return out, nil
}

// FreeSlots lists the free hour-start labels for one date.
func (s *Service) FreeSlots(ctx context.Context, venueID int64, date string) ([]string, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrValidation
	}
	av, err := s.LoadAvailability(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if av.BlockedDates[date] {
		return []string{}, nil
	}
	return AvailableSlots(date, av.ReservationsByDate), nil
}

// BookingRequest is a candidate booking to validate. Identity is explicit:
// the resolver reads no ambient session state.
type BookingRequest struct {
	VenueID     int64
	UserID      int64
	Date        string
	BookingType domain.BookingType
	StartTime   string
	EndTime     string
	Guests      int
}

// Quote is the outcome of a successful validation: the resolved time range,
// price, and the status the reservation should be inserted with.
type Quote struct {
	Venue      *domain.Venue
	StartTime  string
	EndTime    string
	TotalPrice float64
	Status     domain.ReservationStatus
}

// ValidateBooking runs the full pre-write check sequence, short-circuiting on
// the first failure. Every rejection is a typed sentinel the caller can map
// to a specific user-facing message. The block store is re-read here rather
// than trusted from an earlier LoadAvailability, and checked once more
// immediately before the caller writes (a block inserted mid-validation must
// still win).
func (s *Service) ValidateBooking(ctx context.Context, req BookingRequest) (*Quote, error) {
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return nil, ErrValidation
	}
	if req.Date < s.today() {
		return nil, ErrPastDate
	}

	blocked, err := s.blocks.ExistsForDate(ctx, req.VenueID, req.Date)
	if err != nil {
		return nil, storeErr(err)
	}
	if blocked {
		return nil, ErrDateBlocked
	}

	venue, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, storeErr(err)
	}
	if req.Guests < venue.MinCapacity || req.Guests > venue.MaxCapacity {
		return nil, ErrCapacityOutOfRange
	}

	q := &Quote{Venue: venue}

	switch req.BookingType {
	case domain.BookingHourly:
		start, okS := minuteOf(req.StartTime)
		end, okE := minuteOf(req.EndTime)
		if !okS || !okE || start >= end {
			return nil, ErrInvalidTimeRange
		}
		day, err := s.bookings.ListActiveByVenueDate(ctx, req.VenueID, req.Date)
		if err != nil {
			return nil, storeErr(err)
		}
		for _, r := range day {
			rs, okRS := minuteOf(r.StartTime)
			re, okRE := minuteOf(r.EndTime)
			if okRS && okRE && overlaps(start, end, rs, re) {
				return nil, ErrSlotTaken
			}
		}
		q.StartTime = req.StartTime
		q.EndTime = req.EndTime
		q.TotalPrice = round2(float64(end-start) / 60 * venue.PricePerHour)

	case domain.BookingFullDay:
		day, err := s.bookings.ListActiveByVenueDate(ctx, req.VenueID, req.Date)
		if err != nil {
			return nil, storeErr(err)
		}
		if len(day) > 0 {
			return nil, ErrDateFullyBooked
		}
		q.StartTime = domain.FullDayStart
		q.EndTime = domain.FullDayEnd
		q.TotalPrice = round2(venue.PricePerHour * s.policy.FullDayPriceMultiplier)

	default:
		return nil, ErrValidation
	}

	// Final existence check right before the write: defends against a block
	// inserted since the check above.
	blocked, err = s.blocks.ExistsForDate(ctx, req.VenueID, req.Date)
	if err != nil {
		return nil, storeErr(err)
	}
	if blocked {
		return nil, ErrDateBlocked
	}

	q.Status = domain.ReservationPending
	if venue.AutoConfirm {
		q.Status = domain.ReservationConfirmed
	}
	return q, nil
}

func (s *Service) today() string {
	return s.now().Format(DateLayout)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
