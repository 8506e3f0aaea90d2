// Package schedule keeps a booking and its calendar event consistent. Every
// write path that touches both rows goes through here, inside a single
// transaction, so callers never observe one without the other.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"catering-booking/apperrors"
	calendarClient "catering-booking/httpServices/calendar"
	"catering-booking/logger"
	bookingModel "catering-booking/models/booking"
	calendarModel "catering-booking/models/calendar"
	"catering-booking/utils"

	"gorm.io/gorm"
)

// Service implements the booking–calendar synchronization protocol.
// When remote is set, event creation goes through the sibling deployment's
// /calendar endpoint; the call happens inside the booking transaction, so a
// remote failure rolls the booking insert back.
type Service struct {
	db     *gorm.DB
	remote *calendarClient.Client
}

func NewService(db *gorm.DB, remote *calendarClient.Client) *Service {
	return &Service{db: db, remote: remote}
}

// CreateBookingWithEvent inserts the booking and its Pending calendar event
// atomically, and stores the event id back on the booking.
func (s *Service) CreateBookingWithEvent(b *bookingModel.Booking) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return apperrors.FromDB(err, "Failed to add booking.")
		}

		var eventID uint
		if s.remote != nil {
			id, err := s.remote.CreateEvent(calendarClient.CreateEventRequest{
				EventDate:   utils.FormatDate(b.RequestedDate),
				EventStatus: calendarModel.EventStatusPending,
				EventType:   b.EventType,
				BookingID:   b.ID,
				StartTime:   clockString(b.StartTime),
				EndTime:     clockString(b.EndTime),
			})
			if err != nil {
				return apperrors.Dependency("Failed to create calendar event", err)
			}
			eventID = id
		} else {
			event := calendarModel.Event{
				EventDate:   b.RequestedDate,
				EventStatus: calendarModel.EventStatusPending,
				EventType:   b.EventType,
				BookingID:   b.ID,
				StartTime:   b.StartTime,
				EndTime:     b.EndTime,
			}
			if err := tx.Create(&event).Error; err != nil {
				return apperrors.FromDB(err, "Failed to create calendar event")
			}
			eventID = event.ID
		}

		b.EventID = &eventID
		if err := tx.Model(&bookingModel.Booking{}).Where("id = ?", b.ID).
			Update("event_id", eventID).Error; err != nil {
			return apperrors.FromDB(err, "Failed to link calendar event to booking")
		}

		return nil
	})
}

// SaveBookingAndSyncEvent persists booking changes and applies the same
// date/time/type changes to the associated calendar event. A booking without
// an event still updates successfully; that partial consistency is a known
// gap kept on purpose.
func (s *Service) SaveBookingAndSyncEvent(b *bookingModel.Booking) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(b).Error; err != nil {
			return apperrors.FromDB(err, "Failed to update booking.")
		}

		var event calendarModel.Event
		if err := tx.Where("booking_id = ?", b.ID).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warning(fmt.Sprintf("No calendar event found for booking %d during update", b.ID))
				return nil
			}
			return apperrors.FromDB(err, "Failed to load calendar event")
		}

		event.EventDate = b.RequestedDate
		event.EventType = b.EventType
		event.StartTime = b.StartTime
		event.EndTime = b.EndTime

		if err := tx.Save(&event).Error; err != nil {
			return apperrors.FromDB(err, "Failed to update calendar event")
		}
		return nil
	})
}

// DeleteBookingCascade removes a booking together with every calendar event
// referencing it.
func (s *Service) DeleteBookingCascade(bookingID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Booking not found")
			}
			return apperrors.FromDB(err, "Failed to load booking")
		}

		if err := tx.Where("booking_id = ?", bookingID).
			Delete(&calendarModel.Event{}).Error; err != nil {
			return apperrors.FromDB(err, "Failed to delete calendar event")
		}

		if err := tx.Delete(&b).Error; err != nil {
			return apperrors.FromDB(err, "Failed to delete booking")
		}
		return nil
	})
}

// DeleteEventCascade removes a calendar event together with its booking.
func (s *Service) DeleteEventCascade(eventID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var event calendarModel.Event
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Event not found")
			}
			return apperrors.FromDB(err, "Failed to load calendar event")
		}

		if err := tx.Delete(&event).Error; err != nil {
			return apperrors.FromDB(err, "Failed to delete calendar event")
		}

		if err := tx.Where("id = ?", event.BookingID).
			Delete(&bookingModel.Booking{}).Error; err != nil {
			return apperrors.FromDB(err, "Failed to delete associated booking")
		}
		return nil
	})
}

// DeleteBookingAndCalendar is the combined endpoint's path: within one
// transaction, delete every calendar event referencing the booking, then the
// booking row. Any failure rolls everything back and the error names the
// step that failed.
func (s *Service) DeleteBookingAndCalendar(bookingID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Booking not found")
			}
			return apperrors.FromDB(err, "Failed to load booking")
		}

		var events []calendarModel.Event
		if err := tx.Where("booking_id = ?", bookingID).Find(&events).Error; err != nil {
			return apperrors.FromDB(err, "Failed to load calendar events")
		}
		if len(events) == 0 {
			return apperrors.NotFound("No associated calendar events found")
		}

		for _, event := range events {
			if err := tx.Delete(&calendarModel.Event{}, event.ID).Error; err != nil {
				return apperrors.Internal(
					fmt.Sprintf("Error deleting calendar event %d", event.ID), err)
			}
		}

		if err := tx.Delete(&b).Error; err != nil {
			return apperrors.Internal(
				fmt.Sprintf("Error deleting booking %d", bookingID), err)
		}
		return nil
	})
}

func clockString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04:05")
}
