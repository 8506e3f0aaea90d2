package bid

import (
	"errors"
	"fmt"

	"catering-booking/apperrors"
	"catering-booking/logger"
	bidModel "catering-booking/models/bid"
	"catering-booking/types"
	bidTypes "catering-booking/types/bid"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MealPrepController handles meal-prep bid HTTP requests.
type MealPrepController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewMealPrepController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *MealPrepController {
	return &MealPrepController{DB: db, Logger: asyncLogger}
}

// Index returns all meal-prep bids.
func (mc *MealPrepController) Index(c *fiber.Ctx) error {
	var bids []bidModel.MealPrepBid
	if err := mc.DB.Order("id").Find(&bids).Error; err != nil {
		return respondError(c, "Failed to list meal prep bids", apperrors.Internal("Failed to list meal prep bids", err))
	}
	return c.Status(fiber.StatusOK).JSON(bids)
}

// Store creates a meal-prep bid for a booking.
func (mc *MealPrepController) Store(c *fiber.Ctx) error {
	var req bidTypes.MealPrepCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return respondError(c, "Meal prep bid validation failed", err)
	}

	if err := checkBidPreconditions(mc.DB, *req.CustomerID, *req.BookingID); err != nil {
		return respondError(c, "Meal prep bid preconditions failed", err)
	}

	b := bidModel.MealPrepBid{
		BidStatus:          req.BidStatus,
		Miles:              *req.Miles,
		ServiceFee:         *req.ServiceFee,
		EstimatedGroceries: *req.EstimatedGroceries,
		BookingID:          *req.BookingID,
		CustomerID:         *req.CustomerID,
	}
	if req.EstimatedBidPrice != nil {
		b.EstimatedBidPrice = *req.EstimatedBidPrice
	}
	if req.Supplies != nil {
		b.Supplies = *req.Supplies
	}

	if err := mc.DB.Create(&b).Error; err != nil {
		return respondError(c, "Failed to create meal prep bid",
			apperrors.FromDB(err, "Failed to add meal prep bid."))
	}

	logger.Success(fmt.Sprintf("Meal prep bid created successfully with ID: %d", b.ID))
	return c.Status(fiber.StatusCreated).JSON(b)
}

// Update applies a partial update to a meal-prep bid addressed by id and any
// composite key parts present in the route.
func (mc *MealPrepController) Update(c *fiber.Ctx) error {
	var req bidTypes.MealPrepUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	q, err := compositeScope(c, mc.DB.Model(&bidModel.MealPrepBid{}))
	if err != nil {
		return respondError(c, "Invalid meal prep bid key", err)
	}

	var b bidModel.MealPrepBid
	if err := q.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Meal prep bid not found", apperrors.NotFound("Meal prep bid not found"))
		}
		return respondError(c, "Failed to load meal prep bid", apperrors.Internal("Failed to load meal prep bid", err))
	}

	if req.BidStatus != nil {
		b.BidStatus = *req.BidStatus
	}
	if req.Miles != nil {
		b.Miles = *req.Miles
	}
	if req.ServiceFee != nil {
		b.ServiceFee = *req.ServiceFee
	}
	if req.EstimatedGroceries != nil {
		b.EstimatedGroceries = *req.EstimatedGroceries
	}
	if req.EstimatedBidPrice != nil {
		b.EstimatedBidPrice = *req.EstimatedBidPrice
	}
	if req.Supplies != nil {
		b.Supplies = *req.Supplies
	}
	if req.BookingID != nil {
		b.BookingID = *req.BookingID
	}

	if err := mc.DB.Save(&b).Error; err != nil {
		return respondError(c, "Failed to update meal prep bid",
			apperrors.FromDB(err, "Failed to update meal prep bid."))
	}

	return c.Status(fiber.StatusOK).JSON(b)
}

// Destroy deletes a meal-prep bid addressed by id and any composite key parts
// present in the route.
func (mc *MealPrepController) Destroy(c *fiber.Ctx) error {
	q, err := compositeScope(c, mc.DB.Model(&bidModel.MealPrepBid{}))
	if err != nil {
		return respondError(c, "Invalid meal prep bid key", err)
	}

	var b bidModel.MealPrepBid
	if err := q.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Meal prep bid not found", apperrors.NotFound("Meal prep bid not found"))
		}
		return respondError(c, "Failed to load meal prep bid", apperrors.Internal("Failed to load meal prep bid", err))
	}

	if err := mc.DB.Delete(&b).Error; err != nil {
		return respondError(c, "Failed to delete meal prep bid", apperrors.Internal("Failed to delete meal prep bid", err))
	}

	logger.Success(fmt.Sprintf("Meal prep bid %d deleted", b.ID))
	return c.Status(fiber.StatusOK).JSON(types.MessageResponse{Message: "Meal prep bid deleted successfully"})
}
