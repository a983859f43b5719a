// README: Tariff service: catalog access and route lookup with fallback rules.
package tariff

import (
	"context"
	"log"
	"strings"
)

// Service holds the immutable tariff tables. All methods are read-only and
// safe for concurrent use.
type Service struct {
	locations []string
	vehicles  []VehicleSpec
	routes    []Route
	peak      PeakCalendar
}

// NewService builds a Service from the embedded defaults, overridden by rows
// from the store when one is supplied and reachable. A store failure falls
// back to the embedded tables rather than blocking startup.
func NewService(ctx context.Context, store *Store) *Service {
	s := &Service{
		locations: defaultLocations,
		vehicles:  defaultVehicles,
		routes:    defaultRoutes,
		peak:      newPeakCalendar(defaultPeakDates),
	}
	if store == nil {
		return s
	}
	routes, err := store.LoadRoutes(ctx)
	if err != nil {
		log.Printf("tariff: loading routes from db failed, using embedded defaults: %v", err)
		return s
	}
	if len(routes) > 0 {
		s.routes = routes
	}
	if dates, err := store.LoadPeakDates(ctx); err == nil && len(dates) > 0 {
		s.peak = newPeakCalendar(dates)
	}
	return s
}

func newPeakCalendar(dates []string) PeakCalendar {
	p := make(PeakCalendar, len(dates))
	for _, d := range dates {
		p[d] = struct{}{}
	}
	return p
}

func (s *Service) Locations() []string { return s.locations }

func (s *Service) Vehicles() []VehicleSpec { return s.vehicles }

func (s *Service) Routes() []Route { return s.routes }

func (s *Service) IsPeak(date string) bool { return s.peak.Contains(date) }

// Vehicle returns the spec for a class, or false when the class is unknown.
func (s *Service) Vehicle(class VehicleClass) (VehicleSpec, bool) {
	for _, v := range s.vehicles {
		if v.Class == class {
			return v, true
		}
	}
	return VehicleSpec{}, false
}

// FindRoute resolves a tariff row for a directed leg. Matching is by
// case-insensitive substring containment against the stored route names, in
// table order: forward first, then with origin/destination swapped (a route
// stored A->B also prices B->A), then one hard fallback for any naming
// variant of the Singapore-Johor Bahru pair. Returns false when no row
// matches, which callers surface as a quote-required result.
func (s *Service) FindRoute(from, to string) (Route, bool) {
	f := strings.ToLower(from)
	t := strings.ToLower(to)

	for _, r := range s.routes {
		if strings.Contains(f, strings.ToLower(r.From)) && strings.Contains(t, strings.ToLower(r.To)) {
			return r, true
		}
	}
	for _, r := range s.routes {
		if strings.Contains(t, strings.ToLower(r.From)) && strings.Contains(f, strings.ToLower(r.To)) {
			return r, true
		}
	}

	isSgJb := (strings.Contains(f, "singapore") && strings.Contains(t, "johor")) ||
		(strings.Contains(f, "johor") && strings.Contains(t, "singapore"))
	if isSgJb {
		for _, r := range s.routes {
			if r.From == "Singapore" && r.To == "Johor Bahru" {
				return r, true
			}
		}
	}
	return Route{}, false
}
