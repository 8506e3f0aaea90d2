// Package bid serves the meal-prep and catering bid endpoints. The two bid
// types are structural siblings and share the one-bid-per-booking rule:
// a booking holds at most one bid across both tables.
package bid

import (
	"errors"

	"catering-booking/apperrors"
	"catering-booking/logger"
	bidModel "catering-booking/models/bid"
	bookingModel "catering-booking/models/booking"
	customerModel "catering-booking/models/customer"
	"catering-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func respondError(c *fiber.Ctx, context string, err error) error {
	logger.Error(context, err)
	return c.Status(apperrors.Status(err)).JSON(types.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

// checkBidPreconditions verifies the customer and booking a new bid points at,
// and enforces one bid per booking across both bid types.
func checkBidPreconditions(db *gorm.DB, customerID, bookingID uint) error {
	var customer customerModel.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("Customer not found")
		}
		return apperrors.Internal("Failed to load customer", err)
	}
	if !customer.IsActive {
		return apperrors.Validation("Cannot create a bid for an inactive customer")
	}

	var b bookingModel.Booking
	if err := db.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("Booking not found")
		}
		return apperrors.Internal("Failed to load booking", err)
	}

	var mealCount int64
	if err := db.Model(&bidModel.MealPrepBid{}).
		Where("booking_id = ?", bookingID).Count(&mealCount).Error; err != nil {
		return apperrors.Internal("Failed to count existing bids", err)
	}
	var cateringCount int64
	if err := db.Model(&bidModel.CateringBid{}).
		Where("booking_id = ?", bookingID).Count(&cateringCount).Error; err != nil {
		return apperrors.Internal("Failed to count existing bids", err)
	}
	if mealCount+cateringCount > 0 {
		return apperrors.Conflict("A bid already exists for this booking")
	}

	return nil
}

// compositeScope narrows a bid query by the id plus whichever additional key
// parts the route carries. The optional customer_id and booking_id segments
// make the lookup addressable by the full composite key.
func compositeScope(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, apperrors.Validation("Invalid bid id")
	}
	q = q.Where("id = ?", id)

	if raw := c.Params("customer_id"); raw != "" {
		customerID, err := c.ParamsInt("customer_id")
		if err != nil {
			return nil, apperrors.Validation("Invalid customer id")
		}
		q = q.Where("customer_id = ?", customerID)
	}
	if raw := c.Params("booking_id"); raw != "" {
		bookingID, err := c.ParamsInt("booking_id")
		if err != nil {
			return nil, apperrors.Validation("Invalid booking id")
		}
		q = q.Where("booking_id = ?", bookingID)
	}
	return q, nil
}
