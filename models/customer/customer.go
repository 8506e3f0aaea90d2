package customer

import (
	"time"
)

// Customer represents a catering customer account. Customers are never hard
// deleted; IsActive is flipped instead so historical bookings keep a valid
// reference.
type Customer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	IsActive    bool      `gorm:"type:bool;not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
