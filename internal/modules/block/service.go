package block

import (
	"context"
	"time"

	"venuehub/internal/availability"
	"venuehub/internal/domain"
)

type BlockRepository interface {
	ListByVenue(ctx context.Context, venueID int64) ([]domain.BlockedInterval, error)
	Create(ctx context.Context, block *domain.BlockedInterval) error
	GetByID(ctx context.Context, id int64) (*domain.BlockedInterval, error)
	Delete(ctx context.Context, venueID, blockID int64) error
}

type BookingReader interface {
	ListActiveByVenueDate(ctx context.Context, venueID int64, date string) ([]domain.Reservation, error)
}

type VenueReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

type AvailabilityNotifier interface {
	DateBlocked(venueID int64, date string)
	DateUnblocked(venueID int64, date string)
}

// Service manages owner-defined blocked intervals. Blocks always win over
// reservations in classification, so creating one on a date that already
// holds active reservations is refused rather than left to the UI.
type Service struct {
	blocks   BlockRepository
	bookings BookingReader
	venues   VenueReader
	notifs   AvailabilityNotifier
}

func NewService(blocks BlockRepository, bookings BookingReader, venues VenueReader, notifs AvailabilityNotifier) *Service {
	return &Service{
		blocks:   blocks,
		bookings: bookings,
		venues:   venues,
		notifs:   notifs,
	}
}

func (s *Service) Create(ctx context.Context, venueID, actorID int64, req CreateBlockRequest) (*domain.BlockedInterval, error) {
	if _, err := time.Parse(availability.DateLayout, req.Date); err != nil {
		return nil, ErrValidation
	}
	if !req.IsFullDay && (req.StartTime == "" || req.EndTime == "") {
		return nil, ErrValidation
	}

	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return nil, ErrNotFound
	}
	if venue.OwnerID != actorID {
		return nil, ErrForbidden
	}

	active, err := s.bookings.ListActiveByVenueDate(ctx, venueID, req.Date)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, ErrDateHasBookings
	}

	b := &domain.BlockedInterval{
		VenueID:   venueID,
		Date:      req.Date,
		IsFullDay: req.IsFullDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}
	if req.IsFullDay {
		b.StartTime = ""
		b.EndTime = ""
	}

	if err := s.blocks.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.DateBlocked(venueID, b.Date)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, venueID, blockID, actorID int64) error {
	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return ErrNotFound
	}
	if venue.OwnerID != actorID {
		return ErrForbidden
	}

	b, err := s.blocks.GetByID(ctx, blockID)
	if err != nil || b.VenueID != venueID {
		return ErrNotFound
	}

	if err := s.blocks.Delete(ctx, venueID, blockID); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.DateUnblocked(venueID, b.Date)
	}
	return nil
}

func (s *Service) List(ctx context.Context, venueID, actorID int64) ([]domain.BlockedInterval, error) {
	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return nil, ErrNotFound
	}
	if venue.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return s.blocks.ListByVenue(ctx, venueID)
}
