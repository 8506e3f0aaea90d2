package bid

import (
	"catering-booking/apperrors"
)

// MealPrepCreateRequest is the payload for POST /meal_prep_bids.
type MealPrepCreateRequest struct {
	BidStatus          string   `json:"bid_status"`
	Miles              *float64 `json:"miles"`
	ServiceFee         *float64 `json:"service_fee"`
	EstimatedGroceries *float64 `json:"estimated_groceries"`
	EstimatedBidPrice  *float64 `json:"estimated_bid_price"`
	Supplies           *float64 `json:"supplies"`
	BookingID          *uint    `json:"booking_id"`
	CustomerID         *uint    `json:"customer_id"`
}

func (r MealPrepCreateRequest) Validate() error {
	if r.BidStatus == "" {
		return apperrors.Validation("Missing required field: bid_status")
	}
	if r.Miles == nil {
		return apperrors.Validation("Missing required field: miles")
	}
	if r.ServiceFee == nil {
		return apperrors.Validation("Missing required field: service_fee")
	}
	if r.EstimatedGroceries == nil {
		return apperrors.Validation("Missing required field: estimated_groceries")
	}
	if r.BookingID == nil {
		return apperrors.Validation("Missing required field: booking_id")
	}
	if r.CustomerID == nil {
		return apperrors.Validation("Missing required field: customer_id")
	}
	return nil
}

// MealPrepUpdateRequest is the payload for PUT /meal_prep_bids/:id. Nil
// fields are left unchanged.
type MealPrepUpdateRequest struct {
	BidStatus          *string  `json:"bid_status"`
	Miles              *float64 `json:"miles"`
	ServiceFee         *float64 `json:"service_fee"`
	EstimatedGroceries *float64 `json:"estimated_groceries"`
	EstimatedBidPrice  *float64 `json:"estimated_bid_price"`
	Supplies           *float64 `json:"supplies"`
	BookingID          *uint    `json:"booking_id"`
}

// CateringCreateRequest is the payload for POST /catering_bids.
type CateringCreateRequest struct {
	BidStatus          string   `json:"bid_status"`
	Miles              *float64 `json:"miles"`
	ServiceFee         *float64 `json:"service_fee"`
	CleanUp            *bool    `json:"clean_up"`
	Decorations        *bool    `json:"decorations"`
	EstimatedGroceries *float64 `json:"estimated_groceries"`
	Foods              string   `json:"foods"`
	EstimatedBidPrice  *float64 `json:"estimated_bid_price"`
	BookingID          *uint    `json:"booking_id"`
	CustomerID         *uint    `json:"customer_id"`
}

func (r CateringCreateRequest) Validate() error {
	if r.BidStatus == "" {
		return apperrors.Validation("Missing required field: bid_status")
	}
	if r.Miles == nil {
		return apperrors.Validation("Missing required field: miles")
	}
	if r.ServiceFee == nil {
		return apperrors.Validation("Missing required field: service_fee")
	}
	if r.EstimatedGroceries == nil {
		return apperrors.Validation("Missing required field: estimated_groceries")
	}
	if r.BookingID == nil {
		return apperrors.Validation("Missing required field: booking_id")
	}
	if r.CustomerID == nil {
		return apperrors.Validation("Missing required field: customer_id")
	}
	return nil
}

// CateringUpdateRequest is the payload for PUT /catering_bids/:id. Nil
// fields are left unchanged.
type CateringUpdateRequest struct {
	BidStatus          *string  `json:"bid_status"`
	Miles              *float64 `json:"miles"`
	ServiceFee         *float64 `json:"service_fee"`
	CleanUp            *bool    `json:"clean_up"`
	Decorations        *bool    `json:"decorations"`
	EstimatedGroceries *float64 `json:"estimated_groceries"`
	Foods              *string  `json:"foods"`
	EstimatedBidPrice  *float64 `json:"estimated_bid_price"`
	BookingID          *uint    `json:"booking_id"`
}
