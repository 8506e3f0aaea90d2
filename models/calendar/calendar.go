package calendar

import (
	"time"

	bookingModel "catering-booking/models/booking"
)

// Event statuses. New events created through the booking path always start
// as Pending.
const (
	EventStatusPending   = "Pending"
	EventStatusConfirmed = "Confirmed"
	EventStatusCancelled = "Cancelled"
)

// Event is the schedule-facing projection of a booking: its date, times and
// status. It is created, updated and deleted together with its booking.
type Event struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"event_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	EventDate   time.Time `gorm:"not null" json:"event_date"`
	EventStatus string    `gorm:"type:varchar(50);not null" json:"event_status"`
	EventType   string    `gorm:"type:varchar(100);not null" json:"event_type"`

	BookingID uint                 `gorm:"not null;index" json:"booking_id"`
	Booking   bookingModel.Booking `gorm:"foreignKey:BookingID" json:"-"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
