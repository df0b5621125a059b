package repository

import (
	"context"
	"time"

	"expofloor/internal/domain"

	"gorm.io/gorm"
)

type StallRepository struct {
	db *gorm.DB
}

func NewStallRepository(db *gorm.DB) *StallRepository {
	return &StallRepository{db: db}
}

type stallModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	HallID     int64     `gorm:"column:hall_id;index"`
	Name       string    `gorm:"column:name"`
	StallType  string    `gorm:"column:stall_type"`
	RatePerSqm float64   `gorm:"column:rate_per_sqm"`
	Status     string    `gorm:"column:status"`
	X          float64   `gorm:"column:x"`
	Y          float64   `gorm:"column:y"`
	Width      float64   `gorm:"column:width"`
	Height     float64   `gorm:"column:height"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (stallModel) TableName() string { return "stalls" }

func toDomainStall(m stallModel) *domain.Stall {
	return &domain.Stall{
		ID:         m.ID,
		HallID:     m.HallID,
		Name:       m.Name,
		StallType:  m.StallType,
		RatePerSqm: m.RatePerSqm,
		Status:     domain.StallStatus(m.Status),
		Bounds:     domain.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toStallModel(s *domain.Stall) stallModel {
	return stallModel{
		ID:         s.ID,
		HallID:     s.HallID,
		Name:       s.Name,
		StallType:  s.StallType,
		RatePerSqm: s.RatePerSqm,
		Status:     string(s.Status),
		X:          s.Bounds.X,
		Y:          s.Bounds.Y,
		Width:      s.Bounds.Width,
		Height:     s.Bounds.Height,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (r *StallRepository) Create(ctx context.Context, s *domain.Stall) error {
	m := toStallModel(s)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainStall(m)
	return nil
}

func (r *StallRepository) GetByID(ctx context.Context, id int64) (*domain.Stall, error) {
	var m stallModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainStall(m), nil
}

func (r *StallRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Stall, error) {
	var ms []stallModel
	if tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Stall, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainStall(m))
	}
	return out, nil
}

func (r *StallRepository) ListByHall(ctx context.Context, hallID int64) ([]domain.Stall, error) {
	var ms []stallModel
	tx := r.db.WithContext(ctx).Where("hall_id = ?", hallID).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Stall, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainStall(m))
	}
	return out, nil
}

// Update persists layout edits (name, type, rate, bounds). Status is
// deliberately excluded: stall status only moves through the booking
// transition handler.
func (r *StallRepository) Update(ctx context.Context, s *domain.Stall) error {
	return r.db.WithContext(ctx).Model(&stallModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":         s.Name,
			"stall_type":   s.StallType,
			"rate_per_sqm": s.RatePerSqm,
			"x":            s.Bounds.X,
			"y":            s.Bounds.Y,
			"width":        s.Bounds.Width,
			"height":       s.Bounds.Height,
		}).Error
}

func (r *StallRepository) Delete(ctx context.Context, id int64) error {
	var m stallModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return tx.Error
	}
	if m.Status != string(domain.StallAvailable) {
		return ErrStallUnavailable
	}
	return r.db.WithContext(ctx).Delete(&stallModel{}, id).Error
}

// SetStatusOverride is the direct admin override path around the booking
// state machine. Normal status flow goes through BookingRepository.
func (r *StallRepository) SetStatusOverride(ctx context.Context, id int64, status domain.StallStatus) error {
	tx := r.db.WithContext(ctx).Model(&stallModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
