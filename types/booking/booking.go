package booking

import (
	"catering-booking/apperrors"
	bookingModel "catering-booking/models/booking"
)

// CreateRequest is the payload for POST /bookings. Dates arrive as
// YYYY-MM-DD, times as HH:MM:SS (ISO-8601 timestamps are also accepted, as
// older clients send those on create).
type CreateRequest struct {
	RequestedDate  string `json:"requested_date"`
	EventLocation  string `json:"event_location"`
	EventType      string `json:"event_type"`
	CustomerID     *uint  `json:"customer_id"`
	NumberOfGuests *int   `json:"number_of_guests"`
	BidStatus      string `json:"bid_status"`
	UserID         *uint  `json:"user_id"`
	ServiceType    string `json:"service_type"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

func (r CreateRequest) Validate() error {
	if r.RequestedDate == "" {
		return apperrors.Validation("Missing required field: requested_date")
	}
	if r.EventLocation == "" {
		return apperrors.Validation("Missing required field: event_location")
	}
	if r.EventType == "" {
		return apperrors.Validation("Missing required field: event_type")
	}
	if r.CustomerID == nil {
		return apperrors.Validation("Missing required field: customer_id")
	}
	if r.NumberOfGuests == nil {
		return apperrors.Validation("Missing required field: number_of_guests")
	}
	if r.BidStatus == "" {
		return apperrors.Validation("Missing required field: bid_status")
	}
	if r.UserID == nil {
		return apperrors.Validation("Missing required field: user_id")
	}
	if r.ServiceType == "" {
		return apperrors.Validation("Missing required field: service_type")
	}
	if !bookingModel.ServiceType(r.ServiceType).IsValid() {
		return apperrors.Validation("service_type must be either 'meal_prep' or 'catering'")
	}
	if r.StartTime == "" {
		return apperrors.Validation("Missing required field: start_time")
	}
	if r.EndTime == "" {
		return apperrors.Validation("Missing required field: end_time")
	}
	return nil
}

// UpdateRequest is the payload for PUT /bookings/:id. Nil fields are left
// unchanged; date and time changes propagate to the calendar event.
type UpdateRequest struct {
	RequestedDate  *string `json:"requested_date"`
	EventLocation  *string `json:"event_location"`
	EventType      *string `json:"event_type"`
	CustomerID     *uint   `json:"customer_id"`
	NumberOfGuests *int    `json:"number_of_guests"`
	BidStatus      *string `json:"bid_status"`
	UserID         *uint   `json:"user_id"`
	ServiceType    *string `json:"service_type"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
}

func (r UpdateRequest) Validate() error {
	if r.ServiceType != nil && !bookingModel.ServiceType(*r.ServiceType).IsValid() {
		return apperrors.Validation("service_type must be either 'meal_prep' or 'catering'")
	}
	return nil
}
