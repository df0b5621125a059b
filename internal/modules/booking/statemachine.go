package booking

import "expofloor/internal/domain"

// transitions is the whole booking lifecycle as data. Rejected and
// cancelled have no outgoing edges; they are terminal.
var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:   {domain.BookingApproved, domain.BookingRejected, domain.BookingCancelled},
	domain.BookingApproved:  {domain.BookingConfirmed, domain.BookingCancelled, domain.BookingPending},
	domain.BookingConfirmed: {domain.BookingCancelled},
}

// CanTransition reports whether the lifecycle allows moving from one
// status to another.
func CanTransition(from, to domain.BookingStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// stallEffect maps a target booking status to the stall status it implies
// and whether the booking's stall claims are released. A revert from
// approved back to pending keeps the stalls reserved; only terminal
// statuses free them.
func stallEffect(to domain.BookingStatus) (status domain.StallStatus, release bool) {
	switch to {
	case domain.BookingConfirmed:
		return domain.StallBooked, false
	case domain.BookingRejected, domain.BookingCancelled:
		return domain.StallAvailable, true
	default:
		return domain.StallReserved, false
	}
}

// invoiceTrigger reports whether entering this status requests an invoice.
func invoiceTrigger(to domain.BookingStatus) bool {
	return to == domain.BookingApproved || to == domain.BookingConfirmed
}
