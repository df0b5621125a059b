package repository

import "gorm.io/gorm"

// Migrate creates or updates every table the service persists to,
// including the stall_claims unique index behind the double-booking guard.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&exhibitionModel{},
		&hallModel{},
		&fixtureModel{},
		&stallModel{},
		&bookingModel{},
		&stallClaimModel{},
		&invoiceModel{},
	)
}
