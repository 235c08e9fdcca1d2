package database

import (
	"log"
	"strings"

	"hotelier/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema. On PostgreSQL it additionally installs the
// exclusion constraint that rejects overlapping pending/confirmed bookings on
// the same room at the storage level, so the admission transaction's
// availability check has a hard backstop under concurrent writers.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.Room{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.RoomStatusHistory{},
		&domain.Discount{},
	)
	if err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				daterange(check_in_date, check_out_date, '[)') WITH &&
			)
			WHERE (status IN ('pending', 'confirmed'))`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
