package repository

import (
	"context"
	"errors"
	"time"

	"expofloor/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type HallRepository struct {
	db *gorm.DB
}

func NewHallRepository(db *gorm.DB) *HallRepository {
	return &HallRepository{db: db}
}

type hallModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	ExhibitionID int64     `gorm:"column:exhibition_id;uniqueIndex:idx_hall_name_per_exhibition"`
	Name         string    `gorm:"column:name;uniqueIndex:idx_hall_name_per_exhibition"`
	X            float64   `gorm:"column:x"`
	Y            float64   `gorm:"column:y"`
	Width        float64   `gorm:"column:width"`
	Height       float64   `gorm:"column:height"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (hallModel) TableName() string { return "halls" }

type fixtureModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	HallID    int64     `gorm:"column:hall_id;index"`
	Name      string    `gorm:"column:name"`
	Type      string    `gorm:"column:type"`
	X         float64   `gorm:"column:x"`
	Y         float64   `gorm:"column:y"`
	Width     float64   `gorm:"column:width"`
	Height    float64   `gorm:"column:height"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (fixtureModel) TableName() string { return "fixtures" }

func toDomainHall(m hallModel) *domain.Hall {
	return &domain.Hall{
		ID:           m.ID,
		ExhibitionID: m.ExhibitionID,
		Name:         m.Name,
		Bounds:       domain.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toHallModel(h *domain.Hall) hallModel {
	return hallModel{
		ID:           h.ID,
		ExhibitionID: h.ExhibitionID,
		Name:         h.Name,
		X:            h.Bounds.X,
		Y:            h.Bounds.Y,
		Width:        h.Bounds.Width,
		Height:       h.Bounds.Height,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

func toDomainFixture(m fixtureModel) *domain.Fixture {
	return &domain.Fixture{
		ID:        m.ID,
		HallID:    m.HallID,
		Name:      m.Name,
		Type:      domain.FixtureType(m.Type),
		Bounds:    domain.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a hall. Name uniqueness per exhibition is checked up
// front for a clean error and enforced by idx_hall_name_per_exhibition
// for the concurrent case, the same two-layer guard as stall claims.
func (r *HallRepository) Create(ctx context.Context, h *domain.Hall) error {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&hallModel{}).
		Where("exhibition_id = ? AND name = ?", h.ExhibitionID, h.Name).
		Count(&cnt)
	if tx.Error != nil {
		return tx.Error
	}
	if cnt > 0 {
		return ErrDuplicateName
	}

	m := toHallModel(h)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateName
		}
		return tx.Error
	}
	*h = *toDomainHall(m)
	return nil
}

func (r *HallRepository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	var m hallModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHall(m), nil
}

func (r *HallRepository) ListByExhibition(ctx context.Context, exhibitionID int64) ([]domain.Hall, error) {
	var ms []hallModel
	tx := r.db.WithContext(ctx).
		Where("exhibition_id = ?", exhibitionID).
		Order("name").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Hall, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHall(m))
	}
	return out, nil
}

func (r *HallRepository) Update(ctx context.Context, h *domain.Hall) error {
	m := toHallModel(h)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *HallRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&hallModel{}, id).Error
}

func (r *HallRepository) CreateFixture(ctx context.Context, f *domain.Fixture) error {
	m := fixtureModel{
		HallID: f.HallID,
		Name:   f.Name,
		Type:   string(f.Type),
		X:      f.Bounds.X,
		Y:      f.Bounds.Y,
		Width:  f.Bounds.Width,
		Height: f.Bounds.Height,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFixture(m)
	return nil
}

func (r *HallRepository) ListFixturesByHall(ctx context.Context, hallID int64) ([]domain.Fixture, error) {
	var ms []fixtureModel
	tx := r.db.WithContext(ctx).Where("hall_id = ?", hallID).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Fixture, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainFixture(m))
	}
	return out, nil
}
