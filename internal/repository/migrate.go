package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table the repositories
// own, including the partial unique index that backs slot exclusivity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&turfModel{},
		&userModel{},
		&bookingModel{},
		&reviewModel{},
	)
}
