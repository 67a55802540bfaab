package providers

import (
	"github.com/poindexter12/maxwells-wallet/internal/importer"
)

// Default builds the registry of known provider formats. Registration
// happens once at process start; a duplicate key is a programming error and
// panics here rather than surfacing on a request.
func Default() *importer.Registry {
	reg := importer.NewRegistry()

	reg.MustRegister(amex())
	reg.MustRegister(capitalone())
	reg.MustRegister(chase())
	reg.MustRegister(discover())
	reg.MustRegister(paypal())
	reg.MustRegister(venmo())

	return reg
}
