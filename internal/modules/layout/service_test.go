package layout

import (
	"context"
	"testing"

	"expofloor/internal/domain"
	"expofloor/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockExhibitionRepository struct {
	mock.Mock
}

func (m *MockExhibitionRepository) GetByID(ctx context.Context, id int64) (*domain.Exhibition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exhibition), args.Error(1)
}

type MockHallRepository struct {
	mock.Mock
}

func (m *MockHallRepository) Create(ctx context.Context, h *domain.Hall) error {
	args := m.Called(ctx, h)
	if h != nil {
		h.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockHallRepository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

func (m *MockHallRepository) ListByExhibition(ctx context.Context, exhibitionID int64) ([]domain.Hall, error) {
	args := m.Called(ctx, exhibitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hall), args.Error(1)
}

func (m *MockHallRepository) Update(ctx context.Context, h *domain.Hall) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHallRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHallRepository) CreateFixture(ctx context.Context, f *domain.Fixture) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockHallRepository) ListFixturesByHall(ctx context.Context, hallID int64) ([]domain.Fixture, error) {
	args := m.Called(ctx, hallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fixture), args.Error(1)
}

type MockStallRepository struct {
	mock.Mock
}

func (m *MockStallRepository) Create(ctx context.Context, s *domain.Stall) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 77
	}
	return args.Error(0)
}

func (m *MockStallRepository) GetByID(ctx context.Context, id int64) (*domain.Stall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stall), args.Error(1)
}

func (m *MockStallRepository) ListByHall(ctx context.Context, hallID int64) ([]domain.Stall, error) {
	args := m.Called(ctx, hallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stall), args.Error(1)
}

func (m *MockStallRepository) Update(ctx context.Context, s *domain.Stall) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStallRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testExhibition() *domain.Exhibition {
	return &domain.Exhibition{
		ID:     1,
		Name:   "Spring Expo",
		Width:  100,
		Height: 100,
		RateCard: domain.RateCard{
			StallRates: []domain.StallRate{
				{StallType: "standard", RatePerSqm: 100},
				{StallType: "premium", RatePerSqm: 250},
			},
		},
	}
}

func testHall() *domain.Hall {
	return &domain.Hall{
		ID:           5,
		ExhibitionID: 1,
		Name:         "Hall A",
		Bounds:       domain.Rect{X: 0, Y: 0, Width: 20, Height: 20},
	}
}

func TestService_CreateHall_Success(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)
	mockHalls.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	hall, err := service.CreateHall(context.Background(), CreateHallRequest{
		ExhibitionID: 1,
		Name:         "Hall A",
		X:            10, Y: 10, Width: 40, Height: 30,
	})

	assert.NoError(t, err)
	assert.NotNil(t, hall)
	assert.Equal(t, int64(11), hall.ID)
	mockHalls.AssertExpectations(t)
}

func TestService_CreateHall_OutsideExhibition(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	_, err := service.CreateHall(context.Background(), CreateHallRequest{
		ExhibitionID: 1,
		Name:         "Hall B",
		X:            90, Y: 0, Width: 20, Height: 20,
	})

	assert.ErrorIs(t, err, ErrInvalidGeometry)
	mockHalls.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateHall_DuplicateName(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)
	mockHalls.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateName)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	_, err := service.CreateHall(context.Background(), CreateHallRequest{
		ExhibitionID: 1,
		Name:         "Hall A",
		X:            0, Y: 0, Width: 20, Height: 20,
	})

	assert.ErrorIs(t, err, ErrDuplicateHallName)
}

func TestService_CreateStall_ExplicitPosition(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(5)).Return(testHall(), nil)
	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)
	mockStalls.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	x, y := 2.0, 3.0
	stall, err := service.CreateStall(context.Background(), 5, CreateStallRequest{
		Name:      "A-01",
		StallType: "premium",
		X:         &x, Y: &y,
		Width: 4, Height: 4,
	})

	assert.NoError(t, err)
	assert.Equal(t, 250.0, stall.RatePerSqm)
	assert.Equal(t, domain.StallAvailable, stall.Status)
	assert.Equal(t, domain.Rect{X: 2, Y: 3, Width: 4, Height: 4}, stall.Bounds)
}

func TestService_CreateStall_AutoPlaceAvoidsFixtures(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(5)).Return(testHall(), nil)
	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)
	mockStalls.On("ListByHall", mock.Anything, int64(5)).Return([]domain.Stall{}, nil)
	// A pillar parked at the origin pushes the first placement sideways.
	mockHalls.On("ListFixturesByHall", mock.Anything, int64(5)).Return([]domain.Fixture{
		{ID: 1, HallID: 5, Type: domain.FixturePillar, Bounds: domain.Rect{X: 0, Y: 0, Width: 5, Height: 5}},
	}, nil)
	mockStalls.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	stall, err := service.CreateStall(context.Background(), 5, CreateStallRequest{
		Name:      "A-02",
		StallType: "standard",
		Width:     4, Height: 4,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.Rect{X: 6, Y: 0, Width: 4, Height: 4}, stall.Bounds)
}

func TestService_CreateStall_HalfSpecifiedPosition(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	x := 2.0
	_, err := service.CreateStall(context.Background(), 5, CreateStallRequest{
		Name:      "A-05",
		StallType: "standard",
		X:         &x, // Y missing
		Width:     4, Height: 4,
	})

	assert.ErrorIs(t, err, ErrInvalidGeometry)
	mockStalls.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateStall_NoSpace(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(5)).Return(testHall(), nil)
	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)
	mockStalls.On("ListByHall", mock.Anything, int64(5)).Return([]domain.Stall{
		{ID: 1, HallID: 5, Bounds: domain.Rect{X: 0, Y: 0, Width: 20, Height: 20}},
	}, nil)
	mockHalls.On("ListFixturesByHall", mock.Anything, int64(5)).Return([]domain.Fixture{}, nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	_, err := service.CreateStall(context.Background(), 5, CreateStallRequest{
		Name:      "A-03",
		StallType: "standard",
		Width:     4, Height: 4,
	})

	assert.ErrorIs(t, err, ErrNoSpace)
	mockStalls.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateStall_UnknownType(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(5)).Return(testHall(), nil)
	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	_, err := service.CreateStall(context.Background(), 5, CreateStallRequest{
		Name:      "A-04",
		StallType: "vip",
		Width:     4, Height: 4,
	})

	assert.ErrorIs(t, err, ErrUnknownStallType)
}

func TestService_UpdateStall_TypeChangeRecopiesRate(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	existing := &domain.Stall{
		ID: 77, HallID: 5,
		Name: "A-01", StallType: "standard", RatePerSqm: 100,
		Status: domain.StallAvailable,
		Bounds: domain.Rect{X: 0, Y: 0, Width: 4, Height: 4},
	}
	mockStalls.On("GetByID", mock.Anything, int64(77)).Return(existing, nil)
	mockHalls.On("GetByID", mock.Anything, int64(5)).Return(testHall(), nil)
	mockExhibitions.On("GetByID", mock.Anything, int64(1)).Return(testExhibition(), nil)
	mockStalls.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	newType := "premium"
	stall, err := service.UpdateStall(context.Background(), 77, UpdateStallRequest{StallType: &newType})

	assert.NoError(t, err)
	assert.Equal(t, "premium", stall.StallType)
	assert.Equal(t, 250.0, stall.RatePerSqm)
}

func TestService_UpdateStall_MovedOutsideHall(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	existing := &domain.Stall{
		ID: 77, HallID: 5,
		Name: "A-01", StallType: "standard", RatePerSqm: 100,
		Bounds: domain.Rect{X: 0, Y: 0, Width: 4, Height: 4},
	}
	mockStalls.On("GetByID", mock.Anything, int64(77)).Return(existing, nil)
	mockHalls.On("GetByID", mock.Anything, int64(5)).Return(testHall(), nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	x := 18.0
	_, err := service.UpdateStall(context.Background(), 77, UpdateStallRequest{X: &x})

	assert.ErrorIs(t, err, ErrInvalidGeometry)
	mockStalls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_DeleteStall_InUse(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockStalls.On("Delete", mock.Anything, int64(77)).Return(repository.ErrStallUnavailable)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	err := service.DeleteStall(context.Background(), 77)
	assert.ErrorIs(t, err, ErrStallInUse)
}

func TestService_GetFloor(t *testing.T) {
	mockExhibitions := new(MockExhibitionRepository)
	mockHalls := new(MockHallRepository)
	mockStalls := new(MockStallRepository)

	mockHalls.On("GetByID", mock.Anything, int64(5)).Return(testHall(), nil)
	mockStalls.On("ListByHall", mock.Anything, int64(5)).Return([]domain.Stall{
		{ID: 1, HallID: 5, Name: "A-01"},
	}, nil)
	mockHalls.On("ListFixturesByHall", mock.Anything, int64(5)).Return([]domain.Fixture{
		{ID: 2, HallID: 5, Type: domain.FixtureEntrance},
	}, nil)

	service := NewService(mockExhibitions, mockHalls, mockStalls)

	floor, err := service.GetFloor(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, "Hall A", floor.Hall.Name)
	assert.Len(t, floor.Stalls, 1)
	assert.Len(t, floor.Fixtures, 1)
}
