// README: Published rate card rows with display-currency conversion.
package fare

import (
	"math"

	"charter/internal/modules/tariff"
	"charter/internal/types"
)

// RateRow is one row of the public price table: base prices converted to the
// display currency of the route, before any surcharge.
type RateRow struct {
	From     string
	To       string
	Currency string
	Prices   map[tariff.VehicleClass]int64
}

// RateCard renders every published route with the same currency and ceiling
// rules used for leg pricing.
func (s *Service) RateCard() []RateRow {
	routes := s.tariffs.Routes()
	rows := make([]RateRow, 0, len(routes))
	for _, r := range routes {
		currency := types.CurrencyMYR
		if containsSingapore(r.From) || containsSingapore(r.To) {
			currency = types.CurrencySGD
		}
		prices := make(map[tariff.VehicleClass]int64, len(r.Prices))
		for class, base := range r.Prices {
			if currency == types.CurrencySGD {
				prices[class] = int64(math.Ceil(float64(base) / s.cfg.ExchangeRate))
			} else {
				prices[class] = base
			}
		}
		rows = append(rows, RateRow{From: r.From, To: r.To, Currency: currency, Prices: prices})
	}
	return rows
}
