package database

import (
	"fmt"

	bidModel "catering-booking/models/bid"
	bookingModel "catering-booking/models/booking"
	calendarModel "catering-booking/models/calendar"
	customerModel "catering-booking/models/customer"
	logModel "catering-booking/models/log"
	userModel "catering-booking/models/user"

	"gorm.io/gorm"
)

// Migrate runs auto migration for all models in dependency order, then adds
// the indexes the route layer relies on.
func Migrate(db *gorm.DB) error {
	// Stage 1: foundation models with no references
	stage1Models := []interface{}{
		&customerModel.Customer{},
		&userModel.User{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing customers/users
	stage2Models := []interface{}{
		&bookingModel.Booking{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: models referencing bookings
	stage3Models := []interface{}{
		&calendarModel.Event{},
		&bidModel.MealPrepBid{},
		&bidModel.CateringBid{},
	}

	for _, model := range stage3Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Remaining models
	if err := db.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return createIndexes(db)
}

// createIndexes creates additional indexes for better performance
func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_customers_email", "CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email)"},
		{"idx_customers_is_active", "CREATE INDEX IF NOT EXISTS idx_customers_is_active ON customers(is_active)"},
		{"idx_users_username", "CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)"},
		{"idx_bookings_customer_id", "CREATE INDEX IF NOT EXISTS idx_bookings_customer_id ON bookings(customer_id)"},
		{"idx_bookings_requested_date", "CREATE INDEX IF NOT EXISTS idx_bookings_requested_date ON bookings(requested_date)"},
		{"idx_calendar_events_booking_id", "CREATE INDEX IF NOT EXISTS idx_calendar_events_booking_id ON events(booking_id)"},
		{"idx_meal_prep_bids_booking_id", "CREATE INDEX IF NOT EXISTS idx_meal_prep_bids_booking_id ON meal_prep_bids(booking_id)"},
		{"idx_catering_bids_booking_id", "CREATE INDEX IF NOT EXISTS idx_catering_bids_booking_id ON catering_bids(booking_id)"},
		{"idx_logs_status_code", "CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
