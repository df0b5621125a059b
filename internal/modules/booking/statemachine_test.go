package booking

import (
	"testing"

	"expofloor/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
		want bool
	}{
		{"pending to approved", domain.BookingPending, domain.BookingApproved, true},
		{"pending to rejected", domain.BookingPending, domain.BookingRejected, true},
		{"pending to cancelled", domain.BookingPending, domain.BookingCancelled, true},
		{"pending to confirmed skips approval", domain.BookingPending, domain.BookingConfirmed, false},
		{"approved to confirmed", domain.BookingApproved, domain.BookingConfirmed, true},
		{"approved to cancelled", domain.BookingApproved, domain.BookingCancelled, true},
		{"approved reverts to pending", domain.BookingApproved, domain.BookingPending, true},
		{"approved to rejected", domain.BookingApproved, domain.BookingRejected, false},
		{"confirmed to cancelled", domain.BookingConfirmed, domain.BookingCancelled, true},
		{"confirmed to pending", domain.BookingConfirmed, domain.BookingPending, false},
		{"rejected is terminal", domain.BookingRejected, domain.BookingPending, false},
		{"cancelled is terminal", domain.BookingCancelled, domain.BookingApproved, false},
		{"no self loop", domain.BookingPending, domain.BookingPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStallEffect(t *testing.T) {
	status, release := stallEffect(domain.BookingConfirmed)
	assert.Equal(t, domain.StallBooked, status)
	assert.False(t, release)

	status, release = stallEffect(domain.BookingCancelled)
	assert.Equal(t, domain.StallAvailable, status)
	assert.True(t, release)

	status, release = stallEffect(domain.BookingRejected)
	assert.Equal(t, domain.StallAvailable, status)
	assert.True(t, release)

	// approval and the revert to pending keep the stalls reserved
	status, release = stallEffect(domain.BookingApproved)
	assert.Equal(t, domain.StallReserved, status)
	assert.False(t, release)

	status, release = stallEffect(domain.BookingPending)
	assert.Equal(t, domain.StallReserved, status)
	assert.False(t, release)
}

func TestInvoiceTrigger(t *testing.T) {
	assert.True(t, invoiceTrigger(domain.BookingApproved))
	assert.True(t, invoiceTrigger(domain.BookingConfirmed))
	assert.False(t, invoiceTrigger(domain.BookingPending))
	assert.False(t, invoiceTrigger(domain.BookingRejected))
	assert.False(t, invoiceTrigger(domain.BookingCancelled))
}
