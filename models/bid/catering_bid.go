package bid

import (
	"time"

	bookingModel "catering-booking/models/booking"
	customerModel "catering-booking/models/customer"
)

// CateringBid is a priced catering offer attached to exactly one booking.
// Structurally a sibling of MealPrepBid with catering-specific terms.
type CateringBid struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"catering_bid_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	BidStatus          string  `gorm:"type:varchar(50);not null" json:"bid_status"`
	Miles              float64 `gorm:"not null" json:"miles"`
	ServiceFee         float64 `gorm:"type:decimal(10,2);not null" json:"service_fee"`
	CleanUp            bool    `gorm:"default:false" json:"clean_up"`
	Decorations        bool    `gorm:"default:false" json:"decorations"`
	EstimatedGroceries float64 `gorm:"type:decimal(10,2);not null" json:"estimated_groceries"`
	Foods              string  `gorm:"type:text" json:"foods"`
	EstimatedBidPrice  float64 `gorm:"type:decimal(10,2)" json:"estimated_bid_price"`

	BookingID uint                 `gorm:"not null;index" json:"booking_id"`
	Booking   bookingModel.Booking `gorm:"foreignKey:BookingID" json:"-"`

	CustomerID uint                   `gorm:"not null;index" json:"customer_id"`
	Customer   customerModel.Customer `gorm:"foreignKey:CustomerID" json:"-"`
}
