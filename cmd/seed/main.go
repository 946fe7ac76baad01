package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"venuehub/internal/database"
	"venuehub/internal/domain"
)

// Seeds a local database with demo users, venues, a block and a booking.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "venuehub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	owner := &domain.User{
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		Name:         "Demo Owner",
		Role:         domain.RoleVenueOwner,
	}
	client := &domain.User{
		Email:        "client@example.com",
		PasswordHash: string(hash),
		Name:         "Demo Client",
		Role:         domain.RoleClient,
	}
	for _, u := range []*domain.User{owner, client} {
		if err := db.Create(u).Error; err != nil {
			log.Fatal(err)
		}
	}

	venues := []*domain.Venue{
		{
			OwnerID:      owner.ID,
			Name:         "Riverside Loft",
			Description:  "Bright loft space for events and shoots",
			City:         "Almaty",
			Category:     domain.VenueEventHall,
			Address:      "12 Riverside Ave",
			MinCapacity:  10,
			MaxCapacity:  100,
			PricePerHour: 15000,
			AutoConfirm:  false,
			Amenities:    []string{"wifi", "projector", "parking"},
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Garden Pavilion",
			Description:  "Open-air pavilion with a garden view",
			City:         "Astana",
			Category:     domain.VenueOutdoor,
			MinCapacity:  20,
			MaxCapacity:  200,
			PricePerHour: 25000,
			AutoConfirm:  true,
			Amenities:    []string{"catering", "sound_system"},
			IsActive:     true,
		},
	}
	for _, v := range venues {
		if err := db.Create(v).Error; err != nil {
			log.Fatal(err)
		}
	}

	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	booking := &domain.Reservation{
		Reference:   uuid.NewString(),
		VenueID:     venues[0].ID,
		UserID:      client.ID,
		Date:        nextWeek,
		StartTime:   "14:00",
		EndTime:     "16:00",
		BookingType: domain.BookingHourly,
		Guests:      40,
		TotalPrice:  30000,
		Status:      domain.ReservationConfirmed,
	}
	if err := db.Create(booking).Error; err != nil {
		log.Fatal(err)
	}

	blockDate := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	blocked := &domain.BlockedInterval{
		VenueID:   venues[1].ID,
		Date:      blockDate,
		IsFullDay: true,
		Reason:    "maintenance",
	}
	if err := db.Create(blocked).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("seed complete")
}
