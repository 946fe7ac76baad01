package domain

import "time"

type VenueCategory string

const (
	VenueEventHall  VenueCategory = "event_hall"
	VenueConference VenueCategory = "conference"
	VenueStudio     VenueCategory = "studio"
	VenueOutdoor    VenueCategory = "outdoor"
	VenueRestaurant VenueCategory = "restaurant"
)

type Venue struct {
	ID           int64         `json:"id"`
	OwnerID      int64         `json:"owner_id"`
	Name         string        `json:"name" validate:"required"`
	Description  string        `json:"description,omitempty" gorm:"type:text"`
	City         string        `json:"city" validate:"required"`
	Category     VenueCategory `json:"category" validate:"required"`
	Address      string        `json:"address,omitempty"`
	MinCapacity  int           `json:"min_capacity" validate:"required,gt=0"`
	MaxCapacity  int           `json:"max_capacity" validate:"required,gtefield=MinCapacity"`
	PricePerHour float64       `json:"price_per_hour" validate:"required,gte=0"`
	AutoConfirm  bool          `json:"auto_confirm"`
	Rating       float64       `json:"rating"`
	TotalReviews int           `json:"total_reviews"`
	Amenities    []string      `json:"amenities,omitempty" gorm:"serializer:json"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"-"`
}
