package catalog

type UpsertVenueRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	City         string   `json:"city" validate:"required"`
	Category     string   `json:"category" validate:"required,oneof=event_hall conference studio outdoor restaurant"`
	Address      string   `json:"address"`
	MinCapacity  int      `json:"min_capacity" validate:"required,gt=0"`
	MaxCapacity  int      `json:"max_capacity" validate:"required,gtefield=MinCapacity"`
	PricePerHour float64  `json:"price_per_hour" validate:"required,gte=0"`
	AutoConfirm  bool     `json:"auto_confirm"`
	Amenities    []string `json:"amenities"`
}
