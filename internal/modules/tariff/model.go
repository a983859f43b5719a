// README: Tariff domain types: vehicle classes, route tariffs, peak dates.
package tariff

// VehicleClass is the fixed fleet enumeration. The catalog is immutable after
// startup and always presented in declared order.
type VehicleClass string

const (
	Sedan    VehicleClass = "Sedan (4 Pax)"
	MPVStd   VehicleClass = "Standard MPV (7 Pax)"
	MPVLux   VehicleClass = "Luxury MPV (Alphard)"
	MultiMPV VehicleClass = "Large Multi MPV (9 Pax)"
)

type VehicleSpec struct {
	Class  VehicleClass
	MaxPax int
	// MaxLuggage is denominated in large-bag equivalents.
	MaxLuggage  int
	Description string
	Image       string
}

// Route is one row of the published rate card. Prices are ringgit-equivalent
// base magnitudes; display currency is decided at quote time.
type Route struct {
	From   string
	To     string
	Prices map[VehicleClass]int64
}

// PeakCalendar is a set of ISO dates (YYYY-MM-DD) that trigger surcharge or
// quote-required treatment.
type PeakCalendar map[string]struct{}

func (p PeakCalendar) Contains(date string) bool {
	_, ok := p[date]
	return ok
}
