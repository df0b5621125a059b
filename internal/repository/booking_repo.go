package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"expofloor/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Reference       string    `gorm:"column:reference;uniqueIndex"`
	ExhibitionID    int64     `gorm:"column:exhibition_id;index"`
	CustomerName    string    `gorm:"column:customer_name"`
	CompanyName     string    `gorm:"column:company_name"`
	Email           string    `gorm:"column:email"`
	Phone           string    `gorm:"column:phone"`
	StallIDs        []byte    `gorm:"column:stall_ids;type:json"`
	Calculations    []byte    `gorm:"column:calculations;type:json"`
	Status          string    `gorm:"column:status;index"`
	RejectionReason string    `gorm:"column:rejection_reason"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// stallClaimModel rows exist only while the owning booking is active
// (non-terminal); terminal transitions delete them. The unique index on
// stall_id is the database-level double-booking guard behind the
// transactional claim. The booking's own stall_ids column keeps the
// historical stall list either way.
type stallClaimModel struct {
	ID        int64 `gorm:"column:id;primaryKey"`
	BookingID int64 `gorm:"column:booking_id;index"`
	StallID   int64 `gorm:"column:stall_id;uniqueIndex:idx_one_active_claim_per_stall"`
}

func (stallClaimModel) TableName() string { return "stall_claims" }

func toDomainBooking(m bookingModel) (*domain.Booking, error) {
	b := &domain.Booking{
		ID:              m.ID,
		Reference:       m.Reference,
		ExhibitionID:    m.ExhibitionID,
		CustomerName:    m.CustomerName,
		CompanyName:     m.CompanyName,
		Email:           m.Email,
		Phone:           m.Phone,
		Status:          domain.BookingStatus(m.Status),
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if len(m.StallIDs) > 0 {
		if err := json.Unmarshal(m.StallIDs, &b.StallIDs); err != nil {
			return nil, err
		}
	}
	if len(m.Calculations) > 0 {
		if err := json.Unmarshal(m.Calculations, &b.Calculations); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Create persists a new pending booking and claims its stall set in one
// transaction: every stall is locked, checked to be available, flipped to
// reserved, and claimed through stall_claims. If any stall fails the
// availability check the whole transaction rolls back and
// ErrStallUnavailable is returned, so no partial booking can exist.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	calc, err := json.Marshal(b.Calculations)
	if err != nil {
		return err
	}
	ids, err := json.Marshal(b.StallIDs)
	if err != nil {
		return err
	}
	m := bookingModel{
		Reference:    b.Reference,
		ExhibitionID: b.ExhibitionID,
		CustomerName: b.CustomerName,
		CompanyName:  b.CompanyName,
		Email:        b.Email,
		Phone:        b.Phone,
		StallIDs:     ids,
		Calculations: calc,
		Status:       string(domain.BookingPending),
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stalls []stallModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", b.StallIDs).
			Find(&stalls).Error; err != nil {
			return err
		}
		if len(stalls) != len(b.StallIDs) {
			return ErrStallNotFound
		}
		for _, s := range stalls {
			if s.Status != string(domain.StallAvailable) {
				return ErrStallUnavailable
			}
		}

		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		claims := make([]stallClaimModel, 0, len(b.StallIDs))
		for _, sid := range b.StallIDs {
			claims = append(claims, stallClaimModel{BookingID: m.ID, StallID: sid})
		}
		if err := tx.Create(&claims).Error; err != nil {
			return err
		}

		return tx.Model(&stallModel{}).
			Where("id IN ?", b.StallIDs).
			Update("status", string(domain.StallReserved)).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// another transaction claimed one of these stalls first
			return ErrStallUnavailable
		}
		return err
	}

	mapped, err := toDomainBooking(m)
	if err != nil {
		return err
	}
	*b = *mapped
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m)
}

func (r *BookingRepository) ListByExhibition(ctx context.Context, exhibitionID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("exhibition_id = ?", exhibitionID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		b, err := toDomainBooking(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}

// UpdateStatusGuarded performs a compare-and-set status transition and the
// stall status write it implies as a single transaction. The WHERE on the
// source status linearizes concurrent transitions on the same booking: the
// loser of a race sees zero affected rows and gets ErrTransitionConflict.
// releaseClaims additionally drops the stall_claims rows, freeing the
// stalls for new bookings.
func (r *BookingRepository) UpdateStatusGuarded(
	ctx context.Context,
	bookingID int64,
	from, to domain.BookingStatus,
	reason string,
	stallStatus domain.StallStatus,
	stallIDs []int64,
	releaseClaims bool,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&bookingModel{}).
			Where("id = ? AND status = ?", bookingID, string(from)).
			Updates(map[string]any{
				"status":           string(to),
				"rejection_reason": reason,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTransitionConflict
		}

		if len(stallIDs) > 0 {
			if err := tx.Model(&stallModel{}).
				Where("id IN ?", stallIDs).
				Update("status", string(stallStatus)).Error; err != nil {
				return err
			}
		}

		if releaseClaims {
			if err := tx.Where("booking_id = ?", bookingID).
				Delete(&stallClaimModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
