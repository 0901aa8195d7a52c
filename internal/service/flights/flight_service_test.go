package flights

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/Domenick1991/flynow/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListPassengerIDs(ctx context.Context, flightID string) ([]string, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]string), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() CreateFlightInput {
	return CreateFlightInput{
		FromDate: time.Now().AddDate(0, 0, 7).Format(domain.DateLayout),
		ToDate:   time.Now().AddDate(0, 0, 8).Format(domain.DateLayout),
		Legs: []LegInput{
			{IATA: "LGW", Order: 1},
			{IATA: "IST", Order: 2},
			{IATA: "SVO", Order: 3},
			{IATA: "SGN", Order: 4},
		},
	}
}

func TestFlightService_Create_Success(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil).Once()

	flight, err := service.Create(ctx, validInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, flight.ID)
	assert.Len(t, flight.Legs, 4)
	assert.Equal(t, "LGW", flight.Legs[0].IATA)
	assert.Equal(t, "SGN", flight.Legs[3].IATA)

	mockRepo.AssertExpectations(t)
}

func TestFlightService_Create_PublishesEventAndInvalidatesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	service := NewFlightService(mockRepo, mockCache, mockProducer, "record-events", logger.NewNop())

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockProducer.On("Publish", ctx, "record-events", mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	_, err := service.Create(ctx, validInput())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestFlightService_Create_SortsLegsByOrder(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil).Once()

	input := validInput()
	input.Legs = []LegInput{
		{IATA: "SGN", Order: 4},
		{IATA: "LGW", Order: 1},
		{IATA: "SVO", Order: 3},
		{IATA: "IST", Order: 2},
	}

	flight, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Leg{
		{IATA: "LGW", Order: 1},
		{IATA: "IST", Order: 2},
		{IATA: "SVO", Order: 3},
		{IATA: "SGN", Order: 4},
	}, flight.Legs)
}

func TestFlightService_Create_InvalidFromDate(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	input := validInput()
	input.FromDate = "0000-00-00"

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "Outbound date is invalid.")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_FromDateInPast(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	input := validInput()
	input.FromDate = time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "Outbound date cannot be in past.")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_ToDateBeforeFromDate(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	input := validInput()
	input.ToDate = time.Now().AddDate(0, 0, 6).Format(domain.DateLayout)

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "Inbound date cannot be prior outbound date.")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_OrderOutOfRange(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	input := validInput()
	input.Legs[2].Order = 100

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "Flight record has an error in the order index.")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_DuplicateOrder(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	input := validInput()
	input.Legs[1].Order = 1

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "Flight record has an error in the order index.")
}

func TestFlightService_Create_NoLegs(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	input := validInput()
	input.Legs = nil

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "Flight record has an error in the order index.")
}

func TestFlightService_Create_UnknownIATACode(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	input := validInput()
	input.Legs[1].IATA = "ISTX"

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "Provided IATA code for leg index ISTX is not valid.")
	mockRepo.AssertNotCalled(t, "Create")
}

func storedFlight() *domain.Flight {
	return &domain.Flight{
		ID: "f-1",
		Legs: []domain.Leg{
			{IATA: "LGW", Order: 1},
			{IATA: "IST", Order: 2},
			{IATA: "SVO", Order: 3},
			{IATA: "SGN", Order: 4},
		},
		FromDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestFlightService_GetByID_DerivedFields(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "f-1").Return(storedFlight(), nil).Once()
	mockRepo.On("ListPassengerIDs", ctx, "f-1").Return([]string{}, nil).Once()

	view, err := service.GetByID(ctx, "f-1")

	assert.NoError(t, err)
	assert.Equal(t, "f-1", view.FlightRecordID)
	assert.Equal(t, "Flying from LGW to SGN", view.Title)
	assert.Equal(t, "1 day", view.LengthOfFlight)
	assert.Equal(t, "Flying from LGW to IST, then to SVO and finally to SGN.", view.ConnectingFlights)
	assert.Equal(t, []string{""}, view.Passengers)

	mockRepo.AssertExpectations(t)
}

func TestFlightService_GetByID_WithPassengers(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "f-1").Return(storedFlight(), nil).Once()
	mockRepo.On("ListPassengerIDs", ctx, "f-1").Return([]string{"p-1", "p-2"}, nil).Once()

	view, err := service.GetByID(ctx, "f-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2"}, view.Passengers)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	view, err := service.GetByID(ctx, "missing")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, nil, "", logger.NewNop())

	ctx := context.Background()
	stored := []domain.Flight{*storedFlight()}

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockRepo.On("List", ctx).Return(stored, nil).Once()
	mockCache.On("SetFlights", ctx, stored).Return(nil).Once()
	mockRepo.On("ListPassengerIDs", ctx, "f-1").Return([]string{}, nil).Once()

	views, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Flying from LGW to SGN", views[0].Title)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, nil, "", logger.NewNop())

	ctx := context.Background()
	cached := []domain.Flight{*storedFlight()}

	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()
	mockRepo.On("ListPassengerIDs", ctx, "f-1").Return([]string{}, nil).Once()

	views, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, views, 1)

	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "List")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_List_NoCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, "", logger.NewNop())

	ctx := context.Background()
	mockRepo.On("List", ctx).Return([]domain.Flight{}, nil).Once()

	views, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Empty(t, views)
	mockRepo.AssertExpectations(t)
}
