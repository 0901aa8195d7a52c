package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	ListPassengerIDs(ctx context.Context, flightID string) ([]string, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (id, from_date, to_date) VALUES ($1, $2, $3) RETURNING created_at`,
		flight.ID, flight.FromDate, flight.ToDate).Scan(&flight.CreatedAt); err != nil {
		return err
	}
	for _, leg := range flight.Legs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_legs (flight_id, leg_order, iata) VALUES ($1, $2, $3)`,
			flight.ID, leg.Order, leg.IATA); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, from_date, to_date, created_at FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FromDate, &f.ToDate, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	legs, err := r.legs(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	f.Legs = legs
	return &f, nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, from_date, to_date, created_at FROM flights ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.FromDate, &f.ToDate, &f.CreatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range flights {
		legs, err := r.legs(ctx, flights[i].ID)
		if err != nil {
			return nil, err
		}
		flights[i].Legs = legs
	}
	return flights, nil
}

func (r *PGFlightRepository) ListPassengerIDs(ctx context.Context, flightID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT passenger_id FROM passenger_flights WHERE flight_id=$1 ORDER BY passenger_id`, flightID)
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

func (r *PGFlightRepository) legs(ctx context.Context, flightID string) ([]domain.Leg, error) {
	rows, err := r.db.Query(ctx, `SELECT iata, leg_order FROM flight_legs WHERE flight_id=$1 ORDER BY leg_order`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	legs := make([]domain.Leg, 0)
	for rows.Next() {
		var l domain.Leg
		if err := rows.Scan(&l.IATA, &l.Order); err != nil {
			return nil, err
		}
		legs = append(legs, l)
	}
	return legs, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
