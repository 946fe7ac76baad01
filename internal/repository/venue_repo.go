package repository

import (
	"context"

	"venuehub/internal/domain"

	"gorm.io/gorm"
)

type VenueFilters struct {
	City        string
	Category    string
	MinCapacity int
	MaxPrice    float64
	Limit       int
	Offset      int
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// GetAll returns active venues with optional filters
func (r *VenueRepository) GetAll(ctx context.Context, f VenueFilters) ([]domain.Venue, int64, error) {
	var venues []domain.Venue
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Venue{}).
		Where("deleted_at IS NULL AND is_active = ?", true)

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinCapacity > 0 {
		q = q.Where("max_capacity >= ?", f.MinCapacity)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_hour <= ?", f.MaxPrice)
	}

	q.Count(&total)

	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	err := q.
		Order("rating DESC, id").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&venues).Error

	return venues, total, err
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var venue domain.Venue
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *VenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}
