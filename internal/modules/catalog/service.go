package catalog

import (
	"context"
	"errors"

	"venuehub/internal/domain"
	"venuehub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("venue not found")
	ErrForbidden = errors.New("forbidden")
)

type VenueRepository interface {
	GetAll(ctx context.Context, f repository.VenueFilters) ([]domain.Venue, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	Create(ctx context.Context, venue *domain.Venue) error
	Update(ctx context.Context, venue *domain.Venue) error
}

type Service struct {
	venues VenueRepository
}

func NewService(venues VenueRepository) *Service {
	return &Service{venues: venues}
}

func (s *Service) List(ctx context.Context, f repository.VenueFilters) ([]domain.Venue, int64, error) {
	return s.venues.GetAll(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req UpsertVenueRequest) (*domain.Venue, error) {
	venue := &domain.Venue{
		OwnerID:      ownerID,
		Name:         req.Name,
		Description:  req.Description,
		City:         req.City,
		Category:     domain.VenueCategory(req.Category),
		Address:      req.Address,
		MinCapacity:  req.MinCapacity,
		MaxCapacity:  req.MaxCapacity,
		PricePerHour: req.PricePerHour,
		AutoConfirm:  req.AutoConfirm,
		Amenities:    req.Amenities,
		IsActive:     true,
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *Service) Update(ctx context.Context, venueID, ownerID int64, req UpsertVenueRequest) (*domain.Venue, error) {
	venue, err := s.Get(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	venue.Name = req.Name
	venue.Description = req.Description
	venue.City = req.City
	venue.Category = domain.VenueCategory(req.Category)
	venue.Address = req.Address
	venue.MinCapacity = req.MinCapacity
	venue.MaxCapacity = req.MaxCapacity
	venue.PricePerHour = req.PricePerHour
	venue.AutoConfirm = req.AutoConfirm
	venue.Amenities = req.Amenities

	if err := s.venues.Update(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}
