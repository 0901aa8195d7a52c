package passengers

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/Domenick1991/flynow/internal/kafka"
	"github.com/Domenick1991/flynow/internal/repository"
	"github.com/Domenick1991/flynow/pkg/logger"
	"github.com/google/uuid"
)

type PassengerUseCase interface {
	Create(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error)
	GetByID(ctx context.Context, id string) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreatePassengerInput struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Flight      string
}

// nameRe accepts words of unicode letters joined by single spaces, hyphens
// or apostrophes. Symbol-only input never matches.
var nameRe = regexp.MustCompile(`^[\p{L}]+(?:[ '-][\p{L}]+)*$`)

type PassengerService struct {
	repo         repository.PassengerRepository
	flights      repository.FlightRepository
	producer     Producer
	recordsTopic string
	log          logger.Logger
}

func NewPassengerService(repo repository.PassengerRepository, flights repository.FlightRepository, producer Producer, recordsTopic string, log logger.Logger) *PassengerService {
	return &PassengerService{
		repo:         repo,
		flights:      flights,
		producer:     producer,
		recordsTopic: recordsTopic,
		log:          log,
	}
}

// Create validates the submission and persists it, attaching the referenced
// flight when one is supplied. Guards run in order; first failure wins.
func (s *PassengerService) Create(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error) {
	if !nameRe.MatchString(input.FirstName) {
		return nil, domain.NewValidationError("Passenger first name is not valid.")
	}
	if !nameRe.MatchString(input.LastName) {
		return nil, domain.NewValidationError("Passenger last name is not valid.")
	}
	dateOfBirth, err := time.Parse(domain.DateLayout, input.DateOfBirth)
	if err != nil {
		return nil, domain.NewValidationError("Passenger date of birth is not valid.")
	}
	if dateOfBirth.After(startOfDay(time.Now())) {
		return nil, domain.NewValidationError("Passenger date of birth cannot be in future.")
	}

	var flightIDs []string
	if input.Flight != "" {
		if _, err := s.flights.GetByID(ctx, input.Flight); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("Provided flight record does not exist.")
			}
			return nil, err
		}
		flightIDs = []string{input.Flight}
	}

	passenger := &domain.Passenger{
		ID:          uuid.NewString(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: dateOfBirth,
		FlightIDs:   flightIDs,
	}
	if err := s.repo.Create(ctx, passenger); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.RecordEvent{
		Type:      "passenger_created",
		RecordID:  passenger.ID,
		Passenger: passenger.FirstName + " " + passenger.LastName,
	})

	s.log.Info("passenger record created", "passenger_id", passenger.ID, "flights", len(passenger.FlightIDs))
	return passenger, nil
}

func (s *PassengerService) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.repo.List(ctx)
}

func (s *PassengerService) publish(ctx context.Context, event kafka.RecordEvent) {
	if s.producer == nil || s.recordsTopic == "" {
		return
	}
	event.CreatedAt = time.Now()
	if err := s.producer.Publish(ctx, s.recordsTopic, event.RecordID, event); err != nil {
		s.log.Warn("failed to publish record event", "type", event.Type, "record_id", event.RecordID, "error", err)
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var _ PassengerUseCase = (*PassengerService)(nil)
