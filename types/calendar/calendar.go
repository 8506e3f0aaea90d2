package calendar

import (
	"catering-booking/apperrors"
)

// CreateRequest is the payload for POST /calendar.
type CreateRequest struct {
	EventDate   string `json:"event_date"`
	EventStatus string `json:"event_status"`
	EventType   string `json:"event_type"`
	BookingID   *uint  `json:"booking_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (r CreateRequest) Validate() error {
	if r.EventDate == "" {
		return apperrors.Validation("Missing required field: event_date")
	}
	if r.EventStatus == "" {
		return apperrors.Validation("Missing required field: event_status")
	}
	if r.EventType == "" {
		return apperrors.Validation("Missing required field: event_type")
	}
	if r.BookingID == nil {
		return apperrors.Validation("Missing required field: booking_id")
	}
	if r.StartTime == "" {
		return apperrors.Validation("Missing required field: start_time")
	}
	if r.EndTime == "" {
		return apperrors.Validation("Missing required field: end_time")
	}
	return nil
}

// UpdateRequest is the payload for PUT /calendar/:event_id. Nil fields are
// left unchanged.
type UpdateRequest struct {
	EventDate   *string `json:"event_date"`
	EventStatus *string `json:"event_status"`
	EventType   *string `json:"event_type"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}
