package booking

import (
	"context"
	"errors"

	"venuehub/internal/availability"
	"venuehub/internal/domain"
	"venuehub/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	bookings BookingRepository
	resolver BookingValidator
	venues   VenueReader
	notifs   AvailabilityNotifier
}

func NewService(bookings BookingRepository, resolver BookingValidator, venues VenueReader, notifs AvailabilityNotifier) *Service {
	return &Service{
		bookings: bookings,
		resolver: resolver,
		venues:   venues,
		notifs:   notifs,
	}
}

// Create validates the request through the availability resolver and, on
// success, appends the reservation. The insert itself is still guarded by
// the store's unique index: a concurrent booking that slipped past
// validation surfaces as ErrSlotConflict, not as a silent double-booking.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Reservation, error) {
	quote, err := s.resolver.ValidateBooking(ctx, availability.BookingRequest{
		VenueID:     req.VenueID,
		UserID:      userID,
		Date:        req.Date,
		BookingType: domain.BookingType(req.BookingType),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Guests:      req.Guests,
	})
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		Reference:   uuid.NewString(),
		VenueID:     req.VenueID,
		UserID:      userID,
		Date:        req.Date,
		StartTime:   quote.StartTime,
		EndTime:     quote.EndTime,
		BookingType: domain.BookingType(req.BookingType),
		Guests:      req.Guests,
		TotalPrice:  quote.TotalPrice,
		Status:      quote.Status,
	}

	if err := s.bookings.Create(ctx, res); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, availability.ErrSlotConflict
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.BookingCreated(res.VenueID, res)
	}
	return res, nil
}

// Confirm moves a pending reservation to confirmed. Only the venue owner may
// confirm, and only from pending.
func (s *Service) Confirm(ctx context.Context, reservationID, actorID int64) (*domain.Reservation, error) {
	ownerID, status, err := s.bookings.GetVenueOwnerForReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if ownerID == 0 && status == "" {
		return nil, ErrNotFound
	}
	if ownerID != actorID {
		return nil, ErrForbidden
	}
	if status != string(domain.ReservationPending) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, reservationID, domain.ReservationConfirmed); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, reservationID)
}

// Cancel cancels a reservation with a mandatory reason. The booking's user
// and the venue owner may both cancel; a cancelled reservation frees its
// slot and is never deleted.
func (s *Service) Cancel(ctx context.Context, reservationID, actorID int64, reason string) (*domain.Reservation, error) {
	if reason == "" {
		return nil, ErrValidation
	}

	res, err := s.bookings.GetByID(ctx, reservationID)
	if err != nil {
		return nil, ErrNotFound
	}
	if res.Status == domain.ReservationCancelled {
		return nil, ErrInvalidStatusTransition
	}

	if res.UserID != actorID {
		ownerID, _, err := s.bookings.GetVenueOwnerForReservation(ctx, reservationID)
		if err != nil {
			return nil, err
		}
		if ownerID != actorID {
			return nil, ErrForbidden
		}
	}

	if err := s.bookings.CancelWithReason(ctx, reservationID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.BookingCancelled(res.VenueID, res)
	}
	return s.bookings.GetByID(ctx, reservationID)
}

func (s *Service) MyBookings(ctx context.Context, userID int64, limit, offset int) ([]repository.UserReservationRow, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

// VenueBookings lists all reservations of a venue for its owner.
func (s *Service) VenueBookings(ctx context.Context, venueID, actorID int64) ([]domain.Reservation, error) {
	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return nil, ErrNotFound
	}
	if venue.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return s.bookings.ListByVenue(ctx, venueID)
}
