package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"hotelier/internal/database"
	"hotelier/internal/domain"

	"gorm.io/gorm/clause"
)

// Seeds a local database with rooms and discounts for development. Bookings
// and payments are created through the API, never seeded.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelier.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM room_status_history")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM discounts")
	db.Exec("DELETE FROM rooms")

	now := time.Now().UTC()

	rooms := make([]domain.Room, 0, 20)
	types := []string{"single", "double", "suite", "deluxe"}
	prices := []float64{80.00, 120.00, 250.00, 400.00}
	id := int64(1)
	for floor := 1; floor <= 5; floor++ {
		for i := 0; i < 4; i++ {
			rooms = append(rooms, domain.Room{
				ID:         id,
				HotelID:    1,
				RoomNumber: fmt.Sprintf("%d%02d", floor, i+1),
				RoomType:   types[i],
				Floor:      floor,
				Status:     domain.RoomAvailable,
				Price:      prices[i],
			})
			id++
		}
	}

	// Upsert by primary key ID
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"hotel_id", "room_number", "room_type", "floor", "status", "price"}),
	}).Create(&rooms).Error; err != nil {
		log.Fatal("seed rooms:", err)
	}

	discounts := []domain.Discount{
		{ID: 1, Code: "WELCOME10", Percentage: 10, ValidFrom: now.AddDate(0, -1, 0), ValidTo: now.AddDate(1, 0, 0), IsActive: true},
		{ID: 2, Code: "SUMMER25", Percentage: 25, ValidFrom: now.AddDate(0, 0, -7), ValidTo: now.AddDate(0, 3, 0), IsActive: true},
		{ID: 3, Code: "EXPIRED", Percentage: 50, ValidFrom: now.AddDate(-1, 0, 0), ValidTo: now.AddDate(0, -1, 0), IsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "percentage", "valid_from", "valid_to", "is_active"}),
	}).Create(&discounts).Error; err != nil {
		log.Fatal("seed discounts:", err)
	}

	log.Printf("Seeded %d rooms and %d discounts", len(rooms), len(discounts))
}
