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

// CateringController handles catering bid HTTP requests.
type CateringController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewCateringController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *CateringController {
	return &CateringController{DB: db, Logger: asyncLogger}
}

// Index returns all catering bids.
func (cc *CateringController) Index(c *fiber.Ctx) error {
	var bids []bidModel.CateringBid
	if err := cc.DB.Order("id").Find(&bids).Error; err != nil {
		return respondError(c, "Failed to list catering bids", apperrors.Internal("Failed to list catering bids", err))
	}
	return c.Status(fiber.StatusOK).JSON(bids)
}

// Store creates a catering bid for a booking.
func (cc *CateringController) Store(c *fiber.Ctx) error {
	var req bidTypes.CateringCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return respondError(c, "Catering bid validation failed", err)
	}

	if err := checkBidPreconditions(cc.DB, *req.CustomerID, *req.BookingID); err != nil {
		return respondError(c, "Catering bid preconditions failed", err)
	}

	b := bidModel.CateringBid{
		BidStatus:          req.BidStatus,
		Miles:              *req.Miles,
		ServiceFee:         *req.ServiceFee,
		EstimatedGroceries: *req.EstimatedGroceries,
		Foods:              req.Foods,
		BookingID:          *req.BookingID,
		CustomerID:         *req.CustomerID,
	}
	if req.CleanUp != nil {
		b.CleanUp = *req.CleanUp
	}
	if req.Decorations != nil {
		b.Decorations = *req.Decorations
	}
	if req.EstimatedBidPrice != nil {
		b.EstimatedBidPrice = *req.EstimatedBidPrice
	}

	if err := cc.DB.Create(&b).Error; err != nil {
		return respondError(c, "Failed to create catering bid",
			apperrors.FromDB(err, "Failed to add catering bid."))
	}

	logger.Success(fmt.Sprintf("Catering bid created successfully with ID: %d", b.ID))
	return c.Status(fiber.StatusCreated).JSON(b)
}

// Update applies a partial update to a catering bid addressed by id and any
// composite key parts present in the route.
func (cc *CateringController) Update(c *fiber.Ctx) error {
	var req bidTypes.CateringUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	q, err := compositeScope(c, cc.DB.Model(&bidModel.CateringBid{}))
	if err != nil {
		return respondError(c, "Invalid catering bid key", err)
	}

	var b bidModel.CateringBid
	if err := q.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Catering bid not found", apperrors.NotFound("Catering bid not found"))
		}
		return respondError(c, "Failed to load catering bid", apperrors.Internal("Failed to load catering bid", err))
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
	if req.CleanUp != nil {
		b.CleanUp = *req.CleanUp
	}
	if req.Decorations != nil {
		b.Decorations = *req.Decorations
	}
	if req.EstimatedGroceries != nil {
		b.EstimatedGroceries = *req.EstimatedGroceries
	}
	if req.Foods != nil {
		b.Foods = *req.Foods
	}
	if req.EstimatedBidPrice != nil {
		b.EstimatedBidPrice = *req.EstimatedBidPrice
	}
	if req.BookingID != nil {
		b.BookingID = *req.BookingID
	}

	if err := cc.DB.Save(&b).Error; err != nil {
		return respondError(c, "Failed to update catering bid",
			apperrors.FromDB(err, "Failed to update catering bid."))
	}

	return c.Status(fiber.StatusOK).JSON(b)
}

// Destroy deletes a catering bid addressed by id and any composite key parts
// present in the route.
func (cc *CateringController) Destroy(c *fiber.Ctx) error {
	q, err := compositeScope(c, cc.DB.Model(&bidModel.CateringBid{}))
	if err != nil {
		return respondError(c, "Invalid catering bid key", err)
	}

	var b bidModel.CateringBid
	if err := q.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Catering bid not found", apperrors.NotFound("Catering bid not found"))
		}
		return respondError(c, "Failed to load catering bid", apperrors.Internal("Failed to load catering bid", err))
	}

	if err := cc.DB.Delete(&b).Error; err != nil {
		return respondError(c, "Failed to delete catering bid", apperrors.Internal("Failed to delete catering bid", err))
	}

	logger.Success(fmt.Sprintf("Catering bid %d deleted", b.ID))
	return c.Status(fiber.StatusOK).JSON(types.MessageResponse{Message: "Catering bid deleted successfully"})
}
