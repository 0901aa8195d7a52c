package flights

import (
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flynow/internal/domain"
)

func flightTitle(legs []domain.Leg) string {
	if len(legs) == 0 {
		return ""
	}
	return fmt.Sprintf("Flying from %s to %s", legs[0].IATA, legs[len(legs)-1].IATA)
}

func lengthOfFlight(from, to time.Time) string {
	days := int(to.Sub(from).Hours() / 24)
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// connectingFlights describes the intermediate stops of a multi-leg
// itinerary, e.g. "Flying from LGW to IST, then to SVO and finally to SGN."
// An itinerary with fewer than three legs has no intermediate stop.
func connectingFlights(legs []domain.Leg) string {
	if len(legs) < 3 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Flying from %s to %s", legs[0].IATA, legs[1].IATA)
	for _, leg := range legs[2 : len(legs)-1] {
		fmt.Fprintf(&b, ", then to %s", leg.IATA)
	}
	fmt.Fprintf(&b, " and finally to %s.", legs[len(legs)-1].IATA)
	return b.String()
}
