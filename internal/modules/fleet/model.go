// README: Fleet domain types: per-vehicle option presented on the wizard.
package fleet

import (
	"charter/internal/modules/fare"
	"charter/internal/modules/tariff"
)

// Option is one selectable vehicle card. CapacityOk is advisory: classes that
// do not fit are still listed so the wizard can show them disabled.
type Option struct {
	Spec       tariff.VehicleSpec
	CapacityOk bool
	Quote      fare.Quote
}
