// README: Fare service: leg pricing and trip total composition.
package fare

import (
	"fmt"
	"math"
	"strings"

	"charter/internal/config"
	"charter/internal/modules/tariff"
	"charter/internal/types"
)

const (
	TagPeakSeason       = "Peak Season"
	TagPeakSeasonDemand = "Peak Season Demand"

	displayQuoteRequired = "Quote Required"
	displayCustomQuote   = "Custom Quote"
	displayContactQuote  = "Contact for Quote"

	defaultReturnTime = "12:00"
)

// longDistanceNames mark the far destinations whose peak-season demand is too
// variable to price automatically.
var longDistanceNames = []string{"genting", "malacca", "kuala lumpur"}

// Service prices trips against the tariff tables. Stateless and safe for
// concurrent use; the wizard calls it on every field change.
type Service struct {
	tariffs *tariff.Service
	cfg     config.FareConfig
}

func NewService(tariffs *tariff.Service, cfg config.FareConfig) *Service {
	return &Service{tariffs: tariffs, cfg: cfg}
}

// PriceLeg prices a single directed leg. A blank endpoint yields a neutral
// zero price so the wizard can quote incomplete forms without erroring.
func (s *Service) PriceLeg(from, to, date string, class tariff.VehicleClass) LegPrice {
	if from == "" || to == "" {
		return LegPrice{Price: types.Money{Currency: types.CurrencyMYR}}
	}

	// A trip touching Singapore on either end is displayed in SGD,
	// regardless of direction.
	currency := types.CurrencyMYR
	if containsSingapore(from) || containsSingapore(to) {
		currency = types.CurrencySGD
	}

	route, found := s.tariffs.FindRoute(from, to)
	var base int64
	if found {
		base = route.Prices[class]
	}
	if base == 0 {
		// No published rate for this route or vehicle class.
		return LegPrice{Price: types.Money{Currency: currency}, QuoteRequired: true}
	}

	isPeak := s.tariffs.IsPeak(date)
	if isPeak && isLongDistance(from, to) {
		// High variability: the business negotiates these manually.
		return LegPrice{
			Price:         types.Money{Currency: currency},
			Tags:          []string{TagPeakSeasonDemand},
			QuoteRequired: true,
		}
	}

	final := float64(base)
	var tags []string
	if isPeak {
		final *= s.cfg.PeakMultiplier
		tags = append(tags, TagPeakSeason)
	}

	// Rounding is always ceiling, never nearest, to avoid under-quoting.
	if currency == types.CurrencySGD {
		final = final / s.cfg.ExchangeRate
	}
	return LegPrice{
		Price: types.Money{Amount: int64(math.Ceil(final)), Currency: currency},
		Tags:  tags,
	}
}

// PriceTrip composes the legs of a request into a single displayable quote
// for the given vehicle class.
func (s *Service) PriceTrip(req Request, class tariff.VehicleClass) Quote {
	switch req.TripType {
	case TripDayTrip:
		hours := req.DayTripHours
		if hours != 12 {
			hours = 10
		}
		return Quote{
			Display:       displayContactQuote,
			Tags:          []string{fmt.Sprintf("%d Hour Charter", hours)},
			QuoteRequired: true,
		}
	case TripMultiStop:
		// Itineraries the rate card cannot represent are quoted manually.
		return Quote{Display: displayCustomQuote, QuoteRequired: true}
	}

	outbound := s.PriceLeg(req.From, req.To, req.Date, class)
	if outbound.QuoteRequired {
		return Quote{Display: displayQuoteRequired, Tags: mergeTags(outbound.Tags), QuoteRequired: true}
	}

	if req.TripType != TripRoundTrip {
		return Quote{Display: outbound.Price.Display(), Tags: mergeTags(outbound.Tags)}
	}

	returnFrom := req.ReturnFrom
	if returnFrom == "" {
		returnFrom = req.To
	}
	returnTo := req.ReturnTo
	if returnTo == "" {
		returnTo = req.From
	}
	returnDate := req.ReturnDate
	if returnDate == "" {
		returnDate = req.Date
	}

	inbound := s.PriceLeg(returnFrom, returnTo, returnDate, class)
	if inbound.QuoteRequired {
		return Quote{
			Display:       displayQuoteRequired,
			Tags:          mergeTags(outbound.Tags, inbound.Tags),
			QuoteRequired: true,
		}
	}

	tags := mergeTags(outbound.Tags, inbound.Tags)
	if outbound.Price.Currency == inbound.Price.Currency {
		total := types.Money{
			Amount:   outbound.Price.Amount + inbound.Price.Amount,
			Currency: outbound.Price.Currency,
		}
		return Quote{Display: total.Display(), Tags: tags}
	}
	// Never sum across currencies; show both legs side by side.
	return Quote{
		Display: outbound.Price.Display() + " + " + inbound.Price.Display(),
		Tags:    tags,
	}
}

// ReturnTime resolves the effective return pickup time for a round trip.
func (s *Service) ReturnTime(req Request) string {
	if req.ReturnTime != "" {
		return req.ReturnTime
	}
	return defaultReturnTime
}

func containsSingapore(name string) bool {
	return strings.Contains(strings.ToLower(name), "singapore")
}

func isLongDistance(from, to string) bool {
	f := strings.ToLower(from)
	t := strings.ToLower(to)
	for _, name := range longDistanceNames {
		if strings.Contains(f, name) || strings.Contains(t, name) {
			return true
		}
	}
	return false
}

// mergeTags concatenates tag lists preserving order and dropping duplicates.
func mergeTags(lists ...[]string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, list := range lists {
		for _, tag := range list {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
