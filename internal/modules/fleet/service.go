// README: Fleet service: luggage scoring and vehicle eligibility.
package fleet

import (
	"charter/internal/modules/fare"
	"charter/internal/modules/tariff"
)

// Bag weights approximate volumetric trunk space; empirically chosen, not a
// physical unit.
const (
	weightLarge     = 1.5
	weightMedium    = 1.0
	weightSmall     = 0.5
	weightHandCarry = 0.2

	// A vehicle's ceiling is maxLuggage large-bag units scaled by the same
	// 1.5 factor. The duplication is intentional headroom; keep it exact.
	capacityHeadroom = 1.5
)

type Pricer interface {
	PriceTrip(req fare.Request, class tariff.VehicleClass) fare.Quote
}

type Service struct {
	tariffs *tariff.Service
	pricer  Pricer
}

func NewService(tariffs *tariff.Service, pricer Pricer) *Service {
	return &Service{tariffs: tariffs, pricer: pricer}
}

// LuggageScore reduces the bag counts to a single scalar demand figure.
func LuggageScore(req fare.Request) float64 {
	return float64(req.LuggageLarge)*weightLarge +
		float64(req.LuggageMedium)*weightMedium +
		float64(req.LuggageSmall)*weightSmall +
		float64(req.LuggageHandCarry)*weightHandCarry
}

// EligibleVehicles returns every catalog class in catalog order, each with an
// advisory capacity flag and its trip quote. Classes are never filtered out.
func (s *Service) EligibleVehicles(req fare.Request) []Option {
	score := LuggageScore(req)
	totalPax := req.PaxAdults + req.PaxChildren

	options := make([]Option, 0, len(s.tariffs.Vehicles()))
	for _, spec := range s.tariffs.Vehicles() {
		ceiling := float64(spec.MaxLuggage) * capacityHeadroom
		ok := totalPax <= spec.MaxPax && score <= ceiling
		options = append(options, Option{
			Spec:       spec,
			CapacityOk: ok,
			Quote:      s.pricer.PriceTrip(req, spec.Class),
		})
	}
	return options
}
