package flights

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Domenick1991/flynow/internal/airports"
	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/Domenick1991/flynow/internal/kafka"
	"github.com/Domenick1991/flynow/internal/repository"
	"github.com/Domenick1991/flynow/pkg/logger"
	"github.com/google/uuid"
)

type FlightUseCase interface {
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	GetByID(ctx context.Context, id string) (*FlightView, error)
	List(ctx context.Context) ([]FlightView, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateFlightInput struct {
	FromDate string
	ToDate   string
	Legs     []LegInput
}

type LegInput struct {
	IATA  string
	Order int
}

// FlightView is the read shape of a flight record. Title, length and
// connecting-flights text are derived from stored leg data on every read.
type FlightView struct {
	FlightRecordID    string   `json:"flightRecordId"`
	Title             string   `json:"title"`
	LengthOfFlight    string   `json:"lengthOfFlight"`
	ConnectingFlights string   `json:"connectingFlights"`
	Passengers        []string `json:"passengers"`
}

type FlightService struct {
	repo         repository.FlightRepository
	cache        Cache
	producer     Producer
	recordsTopic string
	log          logger.Logger
}

func NewFlightService(repo repository.FlightRepository, cache Cache, producer Producer, recordsTopic string, log logger.Logger) *FlightService {
	return &FlightService{
		repo:         repo,
		cache:        cache,
		producer:     producer,
		recordsTopic: recordsTopic,
		log:          log,
	}
}

// Create validates the submission and persists it. The guards run in a fixed
// order and the first failure is the only one reported.
func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	fromDate, err := time.Parse(domain.DateLayout, input.FromDate)
	if err != nil {
		return nil, domain.NewValidationError("Outbound date is invalid.")
	}
	if fromDate.Before(startOfDay(time.Now())) {
		return nil, domain.NewValidationError("Outbound date cannot be in past.")
	}
	toDate, err := time.Parse(domain.DateLayout, input.ToDate)
	if err != nil {
		return nil, domain.NewValidationError("Inbound date is invalid.")
	}
	if toDate.Before(fromDate) {
		return nil, domain.NewValidationError("Inbound date cannot be prior outbound date.")
	}
	legs, err := orderedLegs(input.Legs)
	if err != nil {
		return nil, err
	}
	for _, l := range input.Legs {
		if !airports.Valid(l.IATA) {
			return nil, domain.NewValidationError(fmt.Sprintf("Provided IATA code for leg index %s is not valid.", l.IATA))
		}
	}

	flight := &domain.Flight{
		ID:       uuid.NewString(),
		Legs:     legs,
		FromDate: fromDate,
		ToDate:   toDate,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	s.publish(ctx, kafka.RecordEvent{
		Type:     "flight_created",
		RecordID: flight.ID,
		Title:    flightTitle(flight.Legs),
	})

	s.log.Info("flight record created", "flight_id", flight.ID, "legs", len(flight.Legs))
	return flight, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*FlightView, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view, err := s.buildView(ctx, flight)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *FlightService) List(ctx context.Context) ([]FlightView, error) {
	var flights []domain.Flight
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			flights = cached
		}
	}
	if flights == nil {
		loaded, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		flights = loaded
		if s.cache != nil {
			_ = s.cache.SetFlights(ctx, flights)
		}
	}

	views := make([]FlightView, 0, len(flights))
	for i := range flights {
		view, err := s.buildView(ctx, &flights[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *FlightService) buildView(ctx context.Context, flight *domain.Flight) (*FlightView, error) {
	passengerIDs, err := s.repo.ListPassengerIDs(ctx, flight.ID)
	if err != nil {
		return nil, err
	}
	if len(passengerIDs) == 0 {
		// Historical response contract: an empty-string placeholder, not an
		// empty array.
		passengerIDs = []string{""}
	}
	return &FlightView{
		FlightRecordID:    flight.ID,
		Title:             flightTitle(flight.Legs),
		LengthOfFlight:    lengthOfFlight(flight.FromDate, flight.ToDate),
		ConnectingFlights: connectingFlights(flight.Legs),
		Passengers:        passengerIDs,
	}, nil
}

func (s *FlightService) publish(ctx context.Context, event kafka.RecordEvent) {
	if s.producer == nil || s.recordsTopic == "" {
		return
	}
	event.CreatedAt = time.Now()
	if err := s.producer.Publish(ctx, s.recordsTopic, event.RecordID, event); err != nil {
		s.log.Warn("failed to publish record event", "type", event.Type, "record_id", event.RecordID, "error", err)
	}
}

// orderedLegs checks that the submitted order values form the contiguous
// sequence 1..N and returns the legs sorted into that order.
func orderedLegs(inputs []LegInput) ([]domain.Leg, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError("Flight record has an error in the order index.")
	}

	legs := make([]domain.Leg, 0, len(inputs))
	for _, l := range inputs {
		legs = append(legs, domain.Leg{IATA: l.IATA, Order: l.Order})
	}
	sort.Slice(legs, func(i, j int) bool { return legs[i].Order < legs[j].Order })
	for i, l := range legs {
		if l.Order != i+1 {
			return nil, domain.NewValidationError("Flight record has an error in the order index.")
		}
	}
	return legs, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var _ FlightUseCase = (*FlightService)(nil)
