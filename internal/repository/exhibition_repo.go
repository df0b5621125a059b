package repository

import (
	"context"
	"encoding/json"
	"time"

	"expofloor/internal/domain"

	"gorm.io/gorm"
)

type ExhibitionRepository struct {
	db *gorm.DB
}

func NewExhibitionRepository(db *gorm.DB) *ExhibitionRepository {
	return &ExhibitionRepository{db: db}
}

type exhibitionModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Venue       string    `gorm:"column:venue"`
	City        string    `gorm:"column:city"`
	Width       float64   `gorm:"column:width"`
	Height      float64   `gorm:"column:height"`
	StartsAt    time.Time `gorm:"column:starts_at"`
	EndsAt      time.Time `gorm:"column:ends_at"`
	RateCard    []byte    `gorm:"column:rate_card;type:json"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (exhibitionModel) TableName() string { return "exhibitions" }

func toDomainExhibition(m exhibitionModel) (*domain.Exhibition, error) {
	e := &domain.Exhibition{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Venue:       m.Venue,
		City:        m.City,
		Width:       m.Width,
		Height:      m.Height,
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if len(m.RateCard) > 0 {
		if err := json.Unmarshal(m.RateCard, &e.RateCard); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func toExhibitionModel(e *domain.Exhibition) (exhibitionModel, error) {
	card, err := json.Marshal(e.RateCard)
	if err != nil {
		return exhibitionModel{}, err
	}
	return exhibitionModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Venue:       e.Venue,
		City:        e.City,
		Width:       e.Width,
		Height:      e.Height,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		RateCard:    card,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, nil
}

func (r *ExhibitionRepository) Create(ctx context.Context, e *domain.Exhibition) error {
	m, err := toExhibitionModel(e)
	if err != nil {
		return err
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	mapped, err := toDomainExhibition(m)
	if err != nil {
		return err
	}
	*e = *mapped
	return nil
}

func (r *ExhibitionRepository) GetByID(ctx context.Context, id int64) (*domain.Exhibition, error) {
	var m exhibitionModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainExhibition(m)
}

func (r *ExhibitionRepository) List(ctx context.Context) ([]domain.Exhibition, error) {
	var ms []exhibitionModel
	if tx := r.db.WithContext(ctx).Order("starts_at DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Exhibition, 0, len(ms))
	for _, m := range ms {
		e, err := toDomainExhibition(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *ExhibitionRepository) Update(ctx context.Context, e *domain.Exhibition) error {
	m, err := toExhibitionModel(e)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(&m).Error
}

// UpdateRateCard replaces the whole pricing configuration atomically.
// Bookings never read it back; they carry their own frozen snapshot.
func (r *ExhibitionRepository) UpdateRateCard(ctx context.Context, id int64, card domain.RateCard) error {
	raw, err := json.Marshal(card)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Model(&exhibitionModel{}).
		Where("id = ?", id).
		Update("rate_card", raw)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
