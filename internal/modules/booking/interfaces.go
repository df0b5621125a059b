package booking

import (
	"context"

	"expofloor/internal/domain"
	"expofloor/internal/events"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByExhibition(ctx context.Context, exhibitionID int64) ([]domain.Booking, error)
	UpdateStatusGuarded(ctx context.Context, bookingID int64, from, to domain.BookingStatus, reason string, stallStatus domain.StallStatus, stallIDs []int64, releaseClaims bool) error
}

type StallRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Stall, error)
}

type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

type ExhibitionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Exhibition, error)
}

type InvoiceRepository interface {
	EnsureForBooking(ctx context.Context, bookingID int64, amount float64) (*domain.Invoice, bool, error)
}

type EventPublisher interface {
	PublishInvoiceRequested(ctx context.Context, e events.InvoiceRequestedEvent) error
	PublishStallStatusChanged(ctx context.Context, e events.StallStatusChangedEvent) error
}

// FloorNotifier pushes stall status changes to live floor watchers.
type FloorNotifier interface {
	Broadcast(exhibitionID int64, message interface{})
}

// HoldStore is the advisory redis-side stall hold. Release never fails;
// a lost hold costs nothing but user convenience.
type HoldStore interface {
	Acquire(ctx context.Context, userID int64, stallIDs []int64) error
	Release(ctx context.Context, userID int64, stallIDs []int64)
}
