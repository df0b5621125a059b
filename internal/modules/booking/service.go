package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"expofloor/internal/domain"
	"expofloor/internal/events"
	"expofloor/internal/modules/pricing"
	"expofloor/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	bookings    BookingRepository
	stalls      StallRepository
	halls       HallRepository
	exhibitions ExhibitionRepository
	invoices    InvoiceRepository
	publisher   EventPublisher
	notifier    FloorNotifier
	holds       HoldStore
}

func NewService(
	bookings BookingRepository,
	stalls StallRepository,
	halls HallRepository,
	exhibitions ExhibitionRepository,
	invoices InvoiceRepository,
	publisher EventPublisher,
	notifier FloorNotifier,
	holds HoldStore,
) *Service {
	return &Service{
		bookings:    bookings,
		stalls:      stalls,
		halls:       halls,
		exhibitions: exhibitions,
		invoices:    invoices,
		publisher:   publisher,
		notifier:    notifier,
		holds:       holds,
	}
}

// CreateBooking prices the requested stall set against the exhibition's
// current rate card, freezes the result on the booking and claims every
// stall in one transaction. The booking starts pending with its stalls
// reserved. userID is the authenticated caller if any; their advisory
// holds on these stalls are released once the claim is authoritative.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	stalls, err := s.loadExhibitionStalls(ctx, req.ExhibitionID, req.StallIDs)
	if err != nil {
		return nil, err
	}
	for _, st := range stalls {
		if st.Status != domain.StallAvailable {
			return nil, ErrStallUnavailable
		}
	}

	ex, err := s.exhibitions.GetByID(ctx, req.ExhibitionID)
	if err != nil {
		return nil, err
	}

	priced := pricing.Quote(stalls, ex.RateCard, req.DiscountName, req.Extras)

	b := &domain.Booking{
		Reference:    uuid.NewString(),
		ExhibitionID: req.ExhibitionID,
		StallIDs:     req.StallIDs,
		CustomerName: req.CustomerName,
		CompanyName:  req.CompanyName,
		Email:        req.Email,
		Phone:        req.Phone,
		Calculations: priced,
		Status:       domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrStallNotFound):
			return nil, ErrStallNotFound
		case errors.Is(err, repository.ErrStallUnavailable):
			return nil, ErrStallUnavailable
		}
		return nil, err
	}

	if s.holds != nil && userID != 0 {
		s.holds.Release(ctx, userID, req.StallIDs)
	}
	s.notifyStallChange(ctx, b, domain.StallReserved)

	return b, nil
}

// Quote runs the pricing calculation without touching any state.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*domain.PricedBooking, error) {
	stalls, err := s.loadExhibitionStalls(ctx, req.ExhibitionID, req.StallIDs)
	if err != nil {
		return nil, err
	}
	ex, err := s.exhibitions.GetByID(ctx, req.ExhibitionID)
	if err != nil {
		return nil, err
	}
	priced := pricing.Quote(stalls, ex.RateCard, req.DiscountName, req.Extras)
	return &priced, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListByExhibition(ctx context.Context, exhibitionID int64) ([]domain.Booking, error) {
	return s.bookings.ListByExhibition(ctx, exhibitionID)
}

// Transition moves a booking along the lifecycle. The status write is a
// compare-and-set against the status the booking was read at, so two
// concurrent transitions cannot both win. Entering approved or confirmed
// triggers the idempotent invoice record and an invoice.requested event.
// Invoice and event failures are logged, never returned: the transition
// itself already committed.
func (s *Service) Transition(ctx context.Context, bookingID int64, to domain.BookingStatus, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, to) {
		return nil, ErrInvalidTransition
	}
	if to == domain.BookingRejected && reason == "" {
		return nil, ErrMissingRejectionReason
	}
	if to != domain.BookingRejected {
		// the reason column is rewritten on every transition, so a revert
		// out of rejected-adjacent states clears it
		reason = ""
	}

	stallStatus, release := stallEffect(to)
	err = s.bookings.UpdateStatusGuarded(ctx, bookingID, b.Status, to, reason, stallStatus, b.StallIDs, release)
	if err != nil {
		if errors.Is(err, repository.ErrTransitionConflict) {
			return nil, ErrTransitionConflict
		}
		return nil, err
	}

	b.Status = to
	b.RejectionReason = reason

	if invoiceTrigger(to) {
		s.requestInvoice(ctx, b)
	}
	s.notifyStallChange(ctx, b, stallStatus)

	return b, nil
}

// HoldStalls takes advisory redis holds for the caller while they fill in
// the booking form.
func (s *Service) HoldStalls(ctx context.Context, userID int64, stallIDs []int64) error {
	if s.holds == nil {
		return nil
	}
	return s.holds.Acquire(ctx, userID, stallIDs)
}

func (s *Service) ReleaseHolds(ctx context.Context, userID int64, stallIDs []int64) {
	if s.holds == nil {
		return
	}
	s.holds.Release(ctx, userID, stallIDs)
}

// loadExhibitionStalls fetches the stall set and verifies every stall
// belongs to the named exhibition, walking stall -> hall -> exhibition.
func (s *Service) loadExhibitionStalls(ctx context.Context, exhibitionID int64, stallIDs []int64) ([]domain.Stall, error) {
	stalls, err := s.stalls.GetByIDs(ctx, stallIDs)
	if err != nil {
		return nil, err
	}
	if len(stalls) != len(stallIDs) {
		return nil, ErrStallNotFound
	}

	checked := make(map[int64]bool)
	for _, st := range stalls {
		if checked[st.HallID] {
			continue
		}
		hall, err := s.halls.GetByID(ctx, st.HallID)
		if err != nil {
			return nil, err
		}
		if hall.ExhibitionID != exhibitionID {
			return nil, ErrExhibitionMismatch
		}
		checked[st.HallID] = true
	}
	return stalls, nil
}

func (s *Service) requestInvoice(ctx context.Context, b *domain.Booking) {
	inv, created, err := s.invoices.EnsureForBooking(ctx, b.ID, b.Calculations.TotalAmount)
	if err != nil {
		log.Printf("booking %d: invoice record failed: %v", b.ID, err)
		return
	}
	if !created {
		// the same booking passed through approved before confirmed
		return
	}

	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishInvoiceRequested(ctx, events.InvoiceRequestedEvent{
		BookingID:     b.ID,
		Reference:     b.Reference,
		InvoiceNumber: inv.Number,
		ExhibitionID:  b.ExhibitionID,
		CustomerName:  b.CustomerName,
		Email:         b.Email,
		TotalAmount:   b.Calculations.TotalAmount,
		Status:        string(b.Status),
		RequestedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) notifyStallChange(ctx context.Context, b *domain.Booking, status domain.StallStatus) {
	if s.publisher != nil {
		_ = s.publisher.PublishStallStatusChanged(ctx, events.StallStatusChangedEvent{
			ExhibitionID: b.ExhibitionID,
			BookingID:    b.ID,
			StallIDs:     b.StallIDs,
			Status:       string(status),
			ChangedAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}
	if s.notifier != nil {
		s.notifier.Broadcast(b.ExhibitionID, map[string]any{
			"type":      "stall.status_changed",
			"stall_ids": b.StallIDs,
			"status":    string(status),
		})
	}
}
