package calendar

import (
	"errors"
	"fmt"

	"catering-booking/apperrors"
	"catering-booking/logger"
	bookingModel "catering-booking/models/booking"
	calendarModel "catering-booking/models/calendar"
	"catering-booking/services/schedule"
	"catering-booking/types"
	calendarTypes "catering-booking/types/calendar"
	"catering-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CalendarController handles calendar event HTTP requests. Its Store endpoint
// doubles as the receiving side of the split deployment: a sibling booking
// service posts here and reads back the event_id.
type CalendarController struct {
	DB       *gorm.DB
	Schedule *schedule.Service
	Logger   *logger.AsyncLogger
}

func NewCalendarController(db *gorm.DB, scheduleService *schedule.Service, asyncLogger *logger.AsyncLogger) *CalendarController {
	return &CalendarController{DB: db, Schedule: scheduleService, Logger: asyncLogger}
}

func respondError(c *fiber.Ctx, context string, err error) error {
	logger.Error(context, err)
	return c.Status(apperrors.Status(err)).JSON(types.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

// Index returns all calendar events.
func (cc *CalendarController) Index(c *fiber.Ctx) error {
	var events []calendarModel.Event
	if err := cc.DB.Order("id").Find(&events).Error; err != nil {
		return respondError(c, "Failed to list calendar events", apperrors.Internal("Failed to list calendar events", err))
	}
	return c.Status(fiber.StatusOK).JSON(events)
}

// ShowByBooking returns the calendar events attached to a booking.
func (cc *CalendarController) ShowByBooking(c *fiber.Ctx) error {
	bookingID, err := c.ParamsInt("booking_id")
	if err != nil {
		return respondError(c, "Invalid booking id", apperrors.Validation("Invalid booking id"))
	}

	var events []calendarModel.Event
	if err := cc.DB.Where("booking_id = ?", bookingID).Order("id").Find(&events).Error; err != nil {
		return respondError(c, "Failed to load calendar events", apperrors.Internal("Failed to load calendar events", err))
	}
	if len(events) == 0 {
		return respondError(c, fmt.Sprintf("No calendar events for booking %d", bookingID),
			apperrors.NotFound("No calendar events found for this booking"))
	}
	return c.Status(fiber.StatusOK).JSON(events)
}

// Store creates a calendar event for an existing booking and links it back
// via the booking's event_id column.
func (cc *CalendarController) Store(c *fiber.Ctx) error {
	var req calendarTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return respondError(c, "Calendar event validation failed", err)
	}

	var b bookingModel.Booking
	if err := cc.DB.First(&b, *req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Booking not found", apperrors.Validation("Booking not found"))
		}
		return respondError(c, "Failed to load booking", apperrors.Internal("Failed to load booking", err))
	}

	eventDate, err := utils.ParseDate(req.EventDate)
	if err != nil {
		return respondError(c, "Failed to parse event_date", err)
	}
	startTime, err := utils.CombineClock(eventDate, req.StartTime)
	if err != nil {
		return respondError(c, "Failed to parse start_time", err)
	}
	endTime, err := utils.CombineClock(eventDate, req.EndTime)
	if err != nil {
		return respondError(c, "Failed to parse end_time", err)
	}

	event := calendarModel.Event{
		EventDate:   eventDate,
		EventStatus: req.EventStatus,
		EventType:   req.EventType,
		BookingID:   *req.BookingID,
		StartTime:   &startTime,
		EndTime:     &endTime,
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return apperrors.FromDB(err, "Failed to create calendar event")
		}
		if err := tx.Model(&bookingModel.Booking{}).Where("id = ?", event.BookingID).
			Update("event_id", event.ID).Error; err != nil {
			return apperrors.FromDB(err, "Failed to link calendar event to booking")
		}
		return nil
	})
	if err != nil {
		return respondError(c, "Failed to create calendar event", err)
	}

	logger.Success(fmt.Sprintf("Calendar event created successfully with ID: %d", event.ID))
	return c.Status(fiber.StatusCreated).JSON(event)
}

// Update applies a partial update to a calendar event.
func (cc *CalendarController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("event_id")
	if err != nil {
		return respondError(c, "Invalid event id", apperrors.Validation("Invalid event id"))
	}

	var req calendarTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	var event calendarModel.Event
	if err := cc.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Event not found", apperrors.NotFound("Event not found"))
		}
		return respondError(c, "Failed to load calendar event", apperrors.Internal("Failed to load calendar event", err))
	}

	dateChanged := false
	if req.EventDate != nil {
		eventDate, err := utils.ParseDate(*req.EventDate)
		if err != nil {
			return respondError(c, "Failed to parse event_date", err)
		}
		event.EventDate = eventDate
		dateChanged = true
	}
	if req.EventStatus != nil {
		event.EventStatus = *req.EventStatus
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}

	if req.StartTime != nil {
		startTime, err := utils.CombineClock(event.EventDate, *req.StartTime)
		if err != nil {
			return respondError(c, "Failed to parse start_time", err)
		}
		event.StartTime = &startTime
	} else if dateChanged && event.StartTime != nil {
		startTime, err := utils.CombineClock(event.EventDate, event.StartTime.Format("15:04:05"))
		if err != nil {
			return respondError(c, "Failed to rebase start_time", err)
		}
		event.StartTime = &startTime
	}
	if req.EndTime != nil {
		endTime, err := utils.CombineClock(event.EventDate, *req.EndTime)
		if err != nil {
			return respondError(c, "Failed to parse end_time", err)
		}
		event.EndTime = &endTime
	} else if dateChanged && event.EndTime != nil {
		endTime, err := utils.CombineClock(event.EventDate, event.EndTime.Format("15:04:05"))
		if err != nil {
			return respondError(c, "Failed to rebase end_time", err)
		}
		event.EndTime = &endTime
	}

	if err := cc.DB.Save(&event).Error; err != nil {
		return respondError(c, "Failed to update calendar event",
			apperrors.FromDB(err, "Failed to update calendar event"))
	}

	return c.Status(fiber.StatusOK).JSON(event)
}

// Destroy deletes a calendar event and its booking together.
func (cc *CalendarController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("event_id")
	if err != nil {
		return respondError(c, "Invalid event id", apperrors.Validation("Invalid event id"))
	}

	if err := cc.Schedule.DeleteEventCascade(uint(id)); err != nil {
		return respondError(c, fmt.Sprintf("Failed to delete calendar event %d", id), err)
	}

	logger.Success(fmt.Sprintf("Calendar event %d deleted with its booking", id))
	return c.Status(fiber.StatusOK).JSON(types.MessageResponse{
		Message: "Calendar event and associated booking deleted successfully",
	})
}
