package booking

import (
	"errors"
	"fmt"

	"catering-booking/apperrors"
	"catering-booking/logger"
	bookingModel "catering-booking/models/booking"
	customerModel "catering-booking/models/customer"
	"catering-booking/services/schedule"
	"catering-booking/types"
	bookingTypes "catering-booking/types/booking"
	"catering-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests. All writes that
// touch the calendar event go through the schedule service so both rows stay
// consistent.
type BookingController struct {
	DB       *gorm.DB
	Schedule *schedule.Service
	Logger   *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, scheduleService *schedule.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{DB: db, Schedule: scheduleService, Logger: asyncLogger}
}

func respondError(c *fiber.Ctx, context string, err error) error {
	logger.Error(context, err)
	return c.Status(apperrors.Status(err)).JSON(types.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

// Index returns all bookings.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.DB.Order("id").Find(&bookings).Error; err != nil {
		return respondError(c, "Failed to list bookings", apperrors.Internal("Failed to list bookings", err))
	}
	return c.Status(fiber.StatusOK).JSON(bookings)
}

// Show returns a single booking by id.
func (bc *BookingController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, "Invalid booking id", apperrors.Validation("Invalid booking id"))
	}

	var b bookingModel.Booking
	if err := bc.DB.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Booking not found", apperrors.NotFound("Booking not found"))
		}
		return respondError(c, "Failed to load booking", apperrors.Internal("Failed to load booking", err))
	}
	return c.Status(fiber.StatusOK).JSON(b)
}

// Store creates a booking and its Pending calendar event atomically.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return respondError(c, "Booking validation failed", err)
	}

	var customer customerModel.Customer
	if err := bc.DB.First(&customer, *req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Customer not found", apperrors.Validation("Customer not found"))
		}
		return respondError(c, "Failed to load customer", apperrors.Internal("Failed to load customer", err))
	}
	if !customer.IsActive {
		return respondError(c, fmt.Sprintf("Customer %d is inactive", customer.ID),
			apperrors.Forbidden("Customer account is inactive"))
	}

	requestedDate, err := utils.ParseDate(req.RequestedDate)
	if err != nil {
		return respondError(c, "Failed to parse requested_date", err)
	}
	startTime, err := utils.CombineClock(requestedDate, req.StartTime)
	if err != nil {
		return respondError(c, "Failed to parse start_time", err)
	}
	endTime, err := utils.CombineClock(requestedDate, req.EndTime)
	if err != nil {
		return respondError(c, "Failed to parse end_time", err)
	}

	b := bookingModel.Booking{
		RequestedDate:  requestedDate,
		EventLocation:  req.EventLocation,
		EventType:      req.EventType,
		CustomerID:     *req.CustomerID,
		NumberOfGuests: *req.NumberOfGuests,
		BidStatus:      req.BidStatus,
		UserID:         *req.UserID,
		ServiceType:    req.ServiceType,
		StartTime:      &startTime,
		EndTime:        &endTime,
	}

	if err := bc.Schedule.CreateBookingWithEvent(&b); err != nil {
		return respondError(c, "Failed to create booking with calendar event", err)
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", b.ID))

	var created bookingModel.Booking
	if err := bc.DB.First(&created, b.ID).Error; err != nil {
		return respondError(c, "Failed to load created booking",
			apperrors.Internal("Booking created but failed to retrieve complete data", err))
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update applies a partial update to a booking and propagates date/time/type
// changes to its calendar event.
func (bc *BookingController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, "Invalid booking id", apperrors.Validation("Invalid booking id"))
	}

	var req bookingTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, "Booking validation failed", err)
	}

	var b bookingModel.Booking
	if err := bc.DB.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Booking not found", apperrors.NotFound("Booking not found."))
		}
		return respondError(c, "Failed to load booking", apperrors.Internal("Failed to load booking", err))
	}

	dateChanged := false
	if req.RequestedDate != nil {
		requestedDate, err := utils.ParseDate(*req.RequestedDate)
		if err != nil {
			return respondError(c, "Failed to parse requested_date", err)
		}
		b.RequestedDate = requestedDate
		dateChanged = true
	}
	if req.EventLocation != nil {
		b.EventLocation = *req.EventLocation
	}
	if req.EventType != nil {
		b.EventType = *req.EventType
	}
	if req.CustomerID != nil {
		b.CustomerID = *req.CustomerID
	}
	if req.NumberOfGuests != nil {
		b.NumberOfGuests = *req.NumberOfGuests
	}
	if req.BidStatus != nil {
		b.BidStatus = *req.BidStatus
	}
	if req.UserID != nil {
		b.UserID = *req.UserID
	}
	if req.ServiceType != nil {
		b.ServiceType = *req.ServiceType
	}

	// Times are recombined against the (possibly updated) event date; a date
	// change alone rebases the stored wall-clock values onto the new day.
	if req.StartTime != nil {
		startTime, err := utils.CombineClock(b.RequestedDate, *req.StartTime)
		if err != nil {
			return respondError(c, "Failed to parse start_time", err)
		}
		b.StartTime = &startTime
	} else if dateChanged && b.StartTime != nil {
		startTime, err := utils.CombineClock(b.RequestedDate, b.StartTime.Format("15:04:05"))
		if err != nil {
			return respondError(c, "Failed to rebase start_time", err)
		}
		b.StartTime = &startTime
	}
	if req.EndTime != nil {
		endTime, err := utils.CombineClock(b.RequestedDate, *req.EndTime)
		if err != nil {
			return respondError(c, "Failed to parse end_time", err)
		}
		b.EndTime = &endTime
	} else if dateChanged && b.EndTime != nil {
		endTime, err := utils.CombineClock(b.RequestedDate, b.EndTime.Format("15:04:05"))
		if err != nil {
			return respondError(c, "Failed to rebase end_time", err)
		}
		b.EndTime = &endTime
	}

	if err := bc.Schedule.SaveBookingAndSyncEvent(&b); err != nil {
		return respondError(c, "Failed to update booking", err)
	}

	return c.Status(fiber.StatusOK).JSON(b)
}

// Destroy deletes a booking and its calendar event together.
func (bc *BookingController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, "Invalid booking id", apperrors.Validation("Invalid booking id"))
	}

	if err := bc.Schedule.DeleteBookingCascade(uint(id)); err != nil {
		return respondError(c, fmt.Sprintf("Failed to delete booking %d", id), err)
	}

	logger.Success(fmt.Sprintf("Booking %d deleted with its calendar event", id))
	return c.Status(fiber.StatusOK).JSON(types.MessageResponse{
		Message: "Booking and associated calendar event deleted successfully",
	})
}

// DestroyWithCalendar is the combined all-or-nothing deletion endpoint.
func (bc *BookingController) DestroyWithCalendar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, "Invalid booking id", apperrors.Validation("Invalid booking id"))
	}

	logger.Info(fmt.Sprintf("Attempting to delete booking with ID %d", id))
	if err := bc.Schedule.DeleteBookingAndCalendar(uint(id)); err != nil {
		return respondError(c, fmt.Sprintf("Failed to delete booking %d and calendar events", id), err)
	}

	logger.Success(fmt.Sprintf("Booking %d and its calendar events deleted", id))
	return c.Status(fiber.StatusOK).JSON(types.MessageResponse{
		Message: "Booking and associated calendar events deleted successfully",
	})
}
