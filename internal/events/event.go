// Package events defines the payloads published to the message broker and
// the publisher that delivers them. Downstream consumers (invoice
// renderer, mailers) get enough context to act without querying the
// primary database.
package events

// InvoiceRequestedEvent is published when a booking enters approved or
// confirmed status. Consumers must treat it idempotently per booking:
// the same booking can pass through both statuses.
type InvoiceRequestedEvent struct {
	BookingID     int64   `json:"booking_id"`
	Reference     string  `json:"reference"`
	InvoiceNumber string  `json:"invoice_number"`
	ExhibitionID  int64   `json:"exhibition_id"`
	CustomerName  string  `json:"customer_name"`
	Email         string  `json:"email"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	RequestedAt   string  `json:"requested_at"`
}

// StallStatusChangedEvent is published whenever a booking transition moves
// stalls between available/reserved/booked.
type StallStatusChangedEvent struct {
	ExhibitionID int64   `json:"exhibition_id"`
	BookingID    int64   `json:"booking_id"`
	StallIDs     []int64 `json:"stall_ids"`
	Status       string  `json:"status"`
	ChangedAt    string  `json:"changed_at"`
}

const (
	QueueInvoiceRequested   = "invoice.requested"
	QueueStallStatusChanged = "stall.status_changed"
)
