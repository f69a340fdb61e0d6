package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/xyz1481/turf-booking/internal/database"
	"github.com/xyz1481/turf-booking/internal/domain"
	"github.com/xyz1481/turf-booking/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "turf.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (bookings/reviews reference turfs and users)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM turfs")

	ctx := context.Background()
	turfRepo := repository.NewTurfRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	log.Println("Creating turfs...")
	turfs := []domain.Turf{
		{
			ID:           "turf-1",
			Name:         "Green Field Turf",
			Location:     "123 Sport St, Cityville",
			PricePerHour: 1500,
			AvailableHours: []string{
				"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
				"15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
			},
			Description: "A state-of-the-art turf perfect for football and cricket. Features floodlights for night games.",
		},
		{
			ID:           "turf-2",
			Name:         "Silver Golf Course",
			Location:     "456 Central Ave, Townburg",
			PricePerHour: 1200,
			AvailableHours: []string{
				"07:00", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
				"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
			},
			Description: "Versatile turf suitable for various sports, with easy access and ample parking.",
		},
		{
			ID:           "turf-3",
			Name:         "Camp Nou Field",
			Location:     "789 Stadium Rd, Metro City",
			PricePerHour: 1800,
			AvailableHours: []string{
				"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00",
				"16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00", "23:00",
			},
			Description: "Premium turf with excellent facilities, ideal for professional training and matches.",
		},
		{
			ID:           "turf-4",
			Name:         "Green Field Turf",
			Location:     "123 Sport St, Cityville",
			PricePerHour: 1600,
			AvailableHours: []string{
				"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
				"15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
			},
			Description: "A state-of-the-art turf perfect for football and cricket. Features floodlights for night games.",
		},
		{
			ID:           "turf-5",
			Name:         "Basketball Court",
			Location:     "456 Central Ave, Townburg",
			PricePerHour: 900,
			AvailableHours: []string{
				"07:00", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
				"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
			},
			Description: "Versatile turf suitable for various sports, with easy access and ample parking.",
		},
		{
			ID:           "turf-6",
			Name:         "Eagletown Pool",
			Location:     "789 Stadium Rd, Metro City",
			PricePerHour: 2500,
			AvailableHours: []string{
				"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00",
				"16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00", "23:00",
			},
			Description: "Premium turf with excellent facilities, ideal for professional training and matches.",
		},
	}
	for i := range turfs {
		if err := turfRepo.Create(ctx, &turfs[i]); err != nil {
			log.Fatal("Seeding turf failed:", err)
		}
	}

	log.Println("Creating users...")
	player := domain.User{
		ID:        "user-1",
		Name:      "Player One",
		Email:     "playerone@example.com",
		ContactNo: "9876543210",
		DOB:       "15/05/1995",
		Role:      domain.RolePlayer,
	}
	admin := domain.User{
		ID:        "admin-1",
		Name:      "Turf Owner",
		Email:     "admin@example.com",
		ContactNo: "9123456789",
		DOB:       "10/03/1980",
		Role:      domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, &player); err != nil {
		log.Fatal("Seeding player failed:", err)
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("Seeding admin failed:", err)
	}
	log.Println("Player: playerone@example.com / 9876543210")
	log.Println("Admin:  admin@example.com / 9123456789")

	log.Println("Creating bookings...")
	bookings := []domain.Booking{
		{
			ID:            uuid.NewString(),
			TurfID:        "turf-1",
			Date:          "2025-07-25",
			TimeSlot:      "10:00",
			UserID:        player.ID,
			Status:        domain.BookingConfirmed,
			PaymentStatus: domain.PaymentPaid,
		},
		{
			ID:            uuid.NewString(),
			TurfID:        "turf-2",
			Date:          "2025-07-26",
			TimeSlot:      "14:00",
			UserID:        player.ID,
			Status:        domain.BookingPending,
			PaymentStatus: domain.PaymentUnpaid,
		},
		{
			ID:            uuid.NewString(),
			TurfID:        "turf-1",
			Date:          "2025-07-27",
			TimeSlot:      "18:00",
			UserID:        player.ID,
			Status:        domain.BookingConfirmed,
			PaymentStatus: domain.PaymentPaid,
		},
		{
			ID:            uuid.NewString(),
			TurfID:        "turf-3",
			Date:          "2025-07-25",
			TimeSlot:      "11:00",
			UserID:        admin.ID,
			Status:        domain.BookingBlocked,
			PaymentStatus: domain.PaymentNotApplicable,
			Notes:         domain.DefaultBlockNotes,
		},
	}
	for i := range bookings {
		if err := bookingRepo.Create(ctx, &bookings[i]); err != nil {
			log.Fatal("Seeding booking failed:", err)
		}
	}

	log.Println("Creating reviews...")
	reviews := []domain.Review{
		{
			ID:      uuid.NewString(),
			TurfID:  "turf-1",
			UserID:  player.ID,
			Rating:  4,
			Comment: "Great turf with excellent lighting. Could use better parking.",
			Date:    "2025-07-20",
		},
		{
			ID:      uuid.NewString(),
			TurfID:  "turf-2",
			UserID:  player.ID,
			Rating:  3,
			Comment: "Good for casual games, but the surface needs maintenance.",
			Date:    "2025-07-22",
		},
	}
	for i := range reviews {
		if err := reviewRepo.Create(ctx, &reviews[i]); err != nil {
			log.Fatal("Seeding review failed:", err)
		}
	}

	log.Println("Seed complete:", len(turfs), "turfs,", len(bookings), "bookings,", len(reviews), "reviews")
}
