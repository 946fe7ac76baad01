package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"venuehub/internal/availability"
	"venuehub/internal/config"
	"venuehub/internal/database"
	"venuehub/internal/middleware"
	"venuehub/internal/modules/auth"
	"venuehub/internal/modules/block"
	"venuehub/internal/modules/booking"
	"venuehub/internal/modules/catalog"
	jwtsvc "venuehub/internal/pkg/jwt"
	"venuehub/internal/realtime"
	"venuehub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	blockRepo := repository.NewBlockRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLH)*time.Hour)
	hub := realtime.NewHub()

	resolver := availability.NewService(bookingRepo, blockRepo, venueRepo, availability.Policy{
		FullyBookedHourThreshold: cfg.Booking.FullyBookedHourThreshold,
		FullDayPriceMultiplier:   cfg.Booking.FullDayPriceMultiplier,
	})

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(venueRepo)
	catalogHandler := catalog.NewHandler(catalogService, resolver)

	bookingService := booking.NewService(bookingRepo, resolver, venueRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	blockService := block.NewService(blockRepo, bookingRepo, venueRepo, hub)
	blockHandler := block.NewHandler(blockService)

	realtimeHandler := realtime.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := gocache.New(cacheTTL, 2*cacheTTL)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		cached := v1.Group("/")
		cached.Use(middleware.Cache(cacheStore, cacheTTL))
		{
			catalogHandler.RegisterPublicRoutes(cached)
		}

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			blockHandler.RegisterRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			realtimeHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
