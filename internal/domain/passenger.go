package domain

import "time"

type Passenger struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	FlightIDs   []string
	CreatedAt   time.Time
}
