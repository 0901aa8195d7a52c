package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id string) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO passengers (id, first_name, last_name, date_of_birth) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		passenger.ID, passenger.FirstName, passenger.LastName, passenger.DateOfBirth).Scan(&passenger.CreatedAt); err != nil {
		return err
	}
	for _, flightID := range passenger.FlightIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO passenger_flights (passenger_id, flight_id) VALUES ($1, $2)`,
			passenger.ID, flightID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, date_of_birth, created_at FROM passengers WHERE id=$1`, id)
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	flightIDs, err := r.flightIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.FlightIDs = flightIDs
	return &p, nil
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, date_of_birth, created_at FROM passengers ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.CreatedAt); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range passengers {
		flightIDs, err := r.flightIDs(ctx, passengers[i].ID)
		if err != nil {
			return nil, err
		}
		passengers[i].FlightIDs = flightIDs
	}
	return passengers, nil
}

func (r *PGPassengerRepository) flightIDs(ctx context.Context, passengerID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_id FROM passenger_flights WHERE passenger_id=$1`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
