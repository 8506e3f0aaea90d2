package booking

import (
	"time"

	customerModel "catering-booking/models/customer"
)

// Booking is the central entity: a requested catering or meal-prep service.
// EventID back-references the calendar event created alongside the booking.
//
// StartTime and EndTime are stored as naive wall-clock values: the wire time
// is combined with RequestedDate in America/Chicago and the offset is then
// discarded. See utils.CombineClock.
type Booking struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"booking_id"`
	RequestedDate time.Time `gorm:"not null" json:"requested_date"`
	EventLocation string    `gorm:"type:varchar(255);not null" json:"event_location"`
	EventType     string    `gorm:"type:varchar(100);not null" json:"event_type"`

	CustomerID uint                   `gorm:"not null;index" json:"customer_id"`
	Customer   customerModel.Customer `gorm:"foreignKey:CustomerID" json:"-"`

	NumberOfGuests int    `gorm:"not null" json:"number_of_guests"`
	BidStatus      string `gorm:"type:varchar(50);not null" json:"bid_status"`
	UserID         uint   `gorm:"not null" json:"user_id"`
	ServiceType    string `gorm:"type:varchar(50);not null" json:"service_type"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	// Set once the calendar event for this booking exists.
	EventID *uint `gorm:"index" json:"event_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
