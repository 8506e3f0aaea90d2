package bid

import (
	"time"

	bookingModel "catering-booking/models/booking"
	customerModel "catering-booking/models/customer"
)

// MealPrepBid is a priced meal-prep offer attached to exactly one booking.
// Canonical addressing is the composite (id, customer_id, booking_id);
// update and delete queries filter on every key part the caller provides.
type MealPrepBid struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"meal_bid_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	BidStatus          string  `gorm:"type:varchar(50);not null" json:"bid_status"`
	Miles              float64 `gorm:"not null" json:"miles"`
	ServiceFee         float64 `gorm:"type:decimal(10,2);not null" json:"service_fee"`
	EstimatedGroceries float64 `gorm:"type:decimal(10,2);not null" json:"estimated_groceries"`
	EstimatedBidPrice  float64 `gorm:"type:decimal(10,2)" json:"estimated_bid_price"`
	Supplies           float64 `gorm:"type:decimal(10,2);default:0" json:"supplies"`

	BookingID uint                 `gorm:"not null;index" json:"booking_id"`
	Booking   bookingModel.Booking `gorm:"foreignKey:BookingID" json:"-"`

	CustomerID uint                   `gorm:"not null;index" json:"customer_id"`
	Customer   customerModel.Customer `gorm:"foreignKey:CustomerID" json:"-"`
}
