// README: Common money value object used across modules.
package types

import "strconv"

// Currency is the display currency of a quoted price. Tariff tables store
// ringgit-equivalent magnitudes regardless of the display currency.
const (
	CurrencySGD = "SGD"
	CurrencyMYR = "RM"
)

type Money struct {
	Amount   int64
	Currency string
}

// Display renders the price the way the widget shows it, e.g. "SGD 90".
func (m Money) Display() string {
	return m.Currency + " " + strconv.FormatInt(m.Amount, 10)
}
