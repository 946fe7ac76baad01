package booking

import (
	"context"

	"venuehub/internal/availability"
	"venuehub/internal/domain"
	"venuehub/internal/repository"
)

// BookingRepository is the write/read surface this module needs from the
// booking store.
type BookingRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]repository.UserReservationRow, error)
	ListByVenue(ctx context.Context, venueID int64) ([]domain.Reservation, error)
	GetVenueOwnerForReservation(ctx context.Context, reservationID int64) (ownerID int64, status string, err error)
	UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) error
	CancelWithReason(ctx context.Context, reservationID int64, reason string) error
}

// BookingValidator runs the pre-write validation sequence and prices the
// booking. Implemented by availability.Service.
type BookingValidator interface {
	ValidateBooking(ctx context.Context, req availability.BookingRequest) (*availability.Quote, error)
}

type VenueReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// AvailabilityNotifier pushes calendar changes to subscribed clients.
// Best-effort: failures are invisible to the booking flow.
type AvailabilityNotifier interface {
	BookingCreated(venueID int64, res *domain.Reservation)
	BookingCancelled(venueID int64, res *domain.Reservation)
}
