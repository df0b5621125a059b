package booking

import "expofloor/internal/modules/pricing"

type CreateBookingRequest struct {
	ExhibitionID int64   `json:"exhibition_id" binding:"required"`
	StallIDs     []int64 `json:"stall_ids" binding:"required,min=1"`
	CustomerName string  `json:"customer_name" binding:"required"`
	CompanyName  string  `json:"company_name"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone"`

	DiscountName string                   `json:"discount_name"`
	Extras       []pricing.ExtraSelection `json:"extras"`
}

// QuoteRequest prices a stall set without creating anything. Stalls do not
// have to be available to be quoted.
type QuoteRequest struct {
	ExhibitionID int64                    `json:"exhibition_id" binding:"required"`
	StallIDs     []int64                  `json:"stall_ids" binding:"required,min=1"`
	DiscountName string                   `json:"discount_name"`
	Extras       []pricing.ExtraSelection `json:"extras"`
}

type TransitionRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

type HoldRequest struct {
	StallIDs []int64 `json:"stall_ids" binding:"required,min=1"`
}
