package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further transitions are allowed out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingRejected || s == BookingCancelled
}

// Booking locks a set of stalls to an exhibitor. Calculations is a frozen
// snapshot taken at creation time; it is stored verbatim and never
// re-derived from current rates.
type Booking struct {
	ID              int64         `json:"id"`
	Reference       string        `json:"reference"`
	ExhibitionID    int64         `json:"exhibition_id" validate:"required"`
	StallIDs        []int64       `json:"stall_ids" validate:"required,min=1"`
	CustomerName    string        `json:"customer_name" validate:"required"`
	CompanyName     string        `json:"company_name,omitempty"`
	Email           string        `json:"email" validate:"required,email"`
	Phone           string        `json:"phone,omitempty"`
	Calculations    PricedBooking `json:"calculations"`
	Status          BookingStatus `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// AppliedDiscount records the single discount applied to a booking.
type AppliedDiscount struct {
	Name   string       `json:"name"`
	Type   DiscountType `json:"type"`
	Value  float64      `json:"value"`
	Amount float64      `json:"amount"`
}

// AppliedTax records one tax line. Each tax is computed independently on
// the amount after discount, never compounded on another tax.
type AppliedTax struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// ResolvedBasicAmenity is a bundled amenity with its quantity derived from
// the total booked stall area.
type ResolvedBasicAmenity struct {
	Name               string  `json:"name"`
	PerSqm             float64 `json:"per_sqm"`
	Quantity           int     `json:"quantity"`
	CalculatedQuantity int     `json:"calculated_quantity"`
}

// BookedExtraAmenity is a paid add-on line. Extra amenity cost is tracked
// for display and settled out-of-band; it is not part of TotalAmount.
type BookedExtraAmenity struct {
	AmenityID int64   `json:"amenity_id"`
	Name      string  `json:"name"`
	Rate      float64 `json:"rate"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// PricedBooking is the frozen output of one pricing calculation.
type PricedBooking struct {
	BaseAmount          float64                `json:"base_amount"`
	Discount            *AppliedDiscount       `json:"discount,omitempty"`
	AmountAfterDiscount float64                `json:"amount_after_discount"`
	BasicAmenities      []ResolvedBasicAmenity `json:"basic_amenities"`
	ExtraAmenities      []BookedExtraAmenity   `json:"extra_amenities"`
	ExtraTotal          float64                `json:"extra_total"`
	Taxes               []AppliedTax           `json:"taxes"`
	TotalTaxAmount      float64                `json:"total_tax_amount"`
	TotalAmount         float64                `json:"total_amount"`
}

// Invoice is the idempotency record behind invoice generation: at most one
// invoice exists per booking, enforced by a unique constraint.
type Invoice struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	Number    string    `json:"number"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
