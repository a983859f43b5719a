// README: Fare domain types: trip request, leg price, quote.
package fare

import (
	"charter/internal/modules/tariff"
	"charter/internal/types"
)

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripDayTrip   TripType = "day-trip"
	TripMultiStop TripType = "multi-stop"
)

// Request is the wizard's transient trip state. The wizard mutates it field
// by field and re-quotes on every change, so any subset of fields may be
// blank at quote time.
type Request struct {
	From     string
	To       string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	TripType TripType

	// Return leg fields; blank values default to the swapped outbound pair
	// on the outbound date.
	ReturnFrom string
	ReturnTo   string
	ReturnDate string
	ReturnTime string

	// DayTripHours is the charter duration for day trips: 10 or 12.
	DayTripHours int

	PaxAdults        int
	PaxChildren      int
	LuggageLarge     int
	LuggageMedium    int
	LuggageSmall     int
	LuggageHandCarry int

	Vehicle tariff.VehicleClass
}

// LegPrice is the outcome of pricing one directed leg.
type LegPrice struct {
	Price         types.Money
	Tags          []string
	QuoteRequired bool
}

// Quote is the composed trip price shown on a vehicle card. QuoteRequired is
// a first-class result, not a failure: it means the business quotes manually.
type Quote struct {
	Display       string
	Tags          []string
	QuoteRequired bool
}
