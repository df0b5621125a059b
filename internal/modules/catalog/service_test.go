package catalog

import (
	"context"
	"testing"

	"expofloor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExhibitionRepository struct {
	mock.Mock
}

func (m *MockExhibitionRepository) Create(ctx context.Context, e *domain.Exhibition) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockExhibitionRepository) GetByID(ctx context.Context, id int64) (*domain.Exhibition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) List(ctx context.Context) ([]domain.Exhibition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) Update(ctx context.Context, e *domain.Exhibition) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExhibitionRepository) UpdateRateCard(ctx context.Context, id int64, card domain.RateCard) error {
	args := m.Called(ctx, id, card)
	return args.Error(0)
}

func TestService_CreateExhibition_Success(t *testing.T) {
	mockRepo := new(MockExhibitionRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo)

	ex, err := service.CreateExhibition(context.Background(), CreateExhibitionRequest{
		Name:  "Tech Expo 2026",
		City:  "Almaty",
		Width: 200, Height: 150,
		RateCard: &domain.RateCard{
			StallRates: []domain.StallRate{{StallType: "standard", RatePerSqm: 100}},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), ex.ID)
	assert.Equal(t, 100.0, ex.RateCard.StallRates[0].RatePerSqm)
}

func TestService_CreateExhibition_InvalidBounds(t *testing.T) {
	mockRepo := new(MockExhibitionRepository)
	service := NewService(mockRepo)

	_, err := service.CreateExhibition(context.Background(), CreateExhibitionRequest{
		Name:  "Flat Expo",
		Width: 200, Height: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidBounds)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateExhibition_BadRateCardEntry(t *testing.T) {
	mockRepo := new(MockExhibitionRepository)
	service := NewService(mockRepo)

	_, err := service.CreateExhibition(context.Background(), CreateExhibitionRequest{
		Name:  "Bad Card Expo",
		Width: 100, Height: 100,
		RateCard: &domain.RateCard{
			StallRates: []domain.StallRate{{StallType: "", RatePerSqm: 100}},
		},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStallRates_PatchesOnlyThatSection(t *testing.T) {
	mockRepo := new(MockExhibitionRepository)

	existing := &domain.Exhibition{
		ID: 1, Name: "Expo", Width: 100, Height: 100,
		RateCard: domain.RateCard{
			StallRates: []domain.StallRate{{StallType: "standard", RatePerSqm: 100}},
			Taxes:      []domain.TaxConfig{{Name: "VAT", Rate: 18, IsActive: true}},
		},
	}
	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)

	var saved domain.RateCard
	mockRepo.On("UpdateRateCard", mock.Anything, int64(1), mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(domain.RateCard) }).
		Return(nil)

	service := NewService(mockRepo)

	card, err := service.UpdateStallRates(context.Background(), 1, UpdateStallRatesRequest{
		StallRates: []domain.StallRate{
			{StallType: "standard", RatePerSqm: 120},
			{StallType: "premium", RatePerSqm: 300},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, card.StallRates, 2)
	// Taxes survive a stall-rate update untouched.
	assert.Equal(t, "VAT", saved.Taxes[0].Name)
	assert.Equal(t, 120.0, saved.StallRates[0].RatePerSqm)
}

func TestService_UpdateTaxes_RejectsNegativeRate(t *testing.T) {
	mockRepo := new(MockExhibitionRepository)
	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Exhibition{ID: 1}, nil)

	service := NewService(mockRepo)

	_, err := service.UpdateTaxes(context.Background(), 1, UpdateTaxesRequest{
		Taxes: []domain.TaxConfig{{Name: "VAT", Rate: -5, IsActive: true}},
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "UpdateRateCard", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateDiscounts_KeepsOtherListWhenOmitted(t *testing.T) {
	mockRepo := new(MockExhibitionRepository)

	existing := &domain.Exhibition{
		ID: 1,
		RateCard: domain.RateCard{
			PublicDiscounts: []domain.DiscountConfig{
				{Name: "EARLYBIRD", Type: domain.DiscountPercentage, Value: 10, IsActive: true},
			},
		},
	}
	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)

	var saved domain.RateCard
	mockRepo.On("UpdateRateCard", mock.Anything, int64(1), mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(domain.RateCard) }).
		Return(nil)

	service := NewService(mockRepo)

	_, err := service.UpdateDiscounts(context.Background(), 1, UpdateDiscountsRequest{
		Discounts: []domain.DiscountConfig{
			{Name: "PARTNER", Type: domain.DiscountFixed, Value: 500, IsActive: true},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, saved.Discounts, 1)
	assert.Len(t, saved.PublicDiscounts, 1)
}

func TestService_RateCardSnapshot(t *testing.T) {
	mockRepo := new(MockExhibitionRepository)
	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Exhibition{
		ID: 7,
		RateCard: domain.RateCard{
			StallRates: []domain.StallRate{{StallType: "standard", RatePerSqm: 100}},
		},
	}, nil)

	service := NewService(mockRepo)

	card, err := service.RateCardSnapshot(context.Background(), 7)

	assert.NoError(t, err)
	rate, ok := card.RateFor("standard")
	assert.True(t, ok)
	assert.Equal(t, 100.0, rate)
}
