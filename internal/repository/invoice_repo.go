package repository

import (
	"context"
	"time"

	"expofloor/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type invoiceModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex"`
	Number    string    `gorm:"column:number;uniqueIndex"`
	Amount    float64   `gorm:"column:amount"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (invoiceModel) TableName() string { return "invoices" }

func toDomainInvoice(m invoiceModel) *domain.Invoice {
	return &domain.Invoice{
		ID:        m.ID,
		BookingID: m.BookingID,
		Number:    m.Number,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// EnsureForBooking creates the invoice record for a booking if none exists
// yet and returns it either way. The unique index on booking_id makes the
// operation idempotent under concurrent transitions.
func (r *InvoiceRepository) EnsureForBooking(ctx context.Context, bookingID int64, amount float64) (*domain.Invoice, bool, error) {
	m := invoiceModel{
		BookingID: bookingID,
		Number:    uuid.NewString(),
		Amount:    amount,
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "booking_id"}},
			DoNothing: true,
		}).
		Create(&m)
	if tx.Error != nil {
		return nil, false, tx.Error
	}
	created := tx.RowsAffected > 0
	if !created {
		var existing invoiceModel
		if err := r.db.WithContext(ctx).
			Where("booking_id = ?", bookingID).
			First(&existing).Error; err != nil {
			return nil, false, err
		}
		m = existing
	}
	return toDomainInvoice(m), created, nil
}

func (r *InvoiceRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	var m invoiceModel
	if tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInvoice(m), nil
}
