package domain

import "time"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// Leg is one segment of a multi-stop itinerary. Order is 1-based and
// contiguous within a flight.
type Leg struct {
	IATA  string
	Order int
}

type Flight struct {
	ID        string
	Legs      []Leg
	FromDate  time.Time
	ToDate    time.Time
	CreatedAt time.Time
}
