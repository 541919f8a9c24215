package database

import (
	"log"

	"github.com/kasemsan/travelstay/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
		&models.Payment{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	if err := EnsureOverlapConstraint(db); err != nil {
		log.Fatalf("failed to install overlap constraint: %v", err)
	}

	return db
}

// EnsureOverlapConstraint installs the storage-level guard against
// overlapping confirmed bookings on the same listing. The advisory
// availability check runs first, but under concurrency this constraint is
// what actually preserves the non-overlap invariant; violations surface as
// SQLSTATE 23P01 at commit time.
func EnsureOverlapConstraint(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
		DO $$
		BEGIN
			ALTER TABLE travel_bookings
			ADD CONSTRAINT travel_bookings_confirmed_no_overlap
			EXCLUDE USING gist (
				listing_id WITH =,
				tstzrange(check_in_date, check_out_date) WITH &&
			) WHERE (booking_status = 'confirmed');
		EXCEPTION
			WHEN duplicate_object THEN NULL;
			WHEN duplicate_table THEN NULL;
		END $$
	`).Error
}
