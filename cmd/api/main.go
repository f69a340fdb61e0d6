package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/xyz1481/turf-booking/internal/database"
	"github.com/xyz1481/turf-booking/internal/middleware"
	"github.com/xyz1481/turf-booking/internal/modules/admin"
	"github.com/xyz1481/turf-booking/internal/modules/auth"
	"github.com/xyz1481/turf-booking/internal/modules/booking"
	"github.com/xyz1481/turf-booking/internal/modules/catalog"
	"github.com/xyz1481/turf-booking/internal/modules/notify"
	"github.com/xyz1481/turf-booking/internal/modules/review"
	jwtsvc "github.com/xyz1481/turf-booking/internal/pkg/jwt"
	"github.com/xyz1481/turf-booking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "turf.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	turfRepo := repository.NewTurfRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notify.NewHub()
	defer hub.Close()
	sender := notify.NewSender(hub)
	notifyHandler := notify.NewHandler(hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(turfRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, turfRepo, userRepo, sender)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(bookingRepo, turfRepo, userRepo, sender)
	adminHandler := admin.NewHandler(adminService)

	reviewService := review.NewService(reviewRepo, turfRepo)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterRoutes(v1, nil)

		// protected
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(nil, protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
				notifyHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
