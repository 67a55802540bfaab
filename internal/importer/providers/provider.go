// Package providers holds the registered provider formats: thin declarative
// parsers that know their exact layout and ride on the shared generic row
// parser. Adding a provider means declaring a config, probe indicators, and
// optionally a hook or two.
package providers

import (
	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/format/detect"
	"github.com/poindexter12/maxwells-wallet/internal/format/generic"
	"github.com/poindexter12/maxwells-wallet/internal/transaction"
)

// Provider is a fixed-format statement parser.
type Provider struct {
	key        format.Key
	confidence float64
	// indicators are header tokens that must all appear in one line for the
	// probe to claim the file. They double as the parser's header landmarks.
	indicators []string
	cfg        *format.Config
	hooks      generic.Hooks
}

func (p *Provider) Key() format.Key {
	return p.key
}

func (p *Provider) Probe(raw string) (bool, float64) {
	_, _, ok := detect.FindHeader(raw, p.indicators, p.cfg.Comma())
	if !ok {
		return false, 0
	}

	return true, p.confidence
}

func (p *Provider) Parse(raw, accountSource string) ([]transaction.Transaction, error) {
	parser, err := generic.NewWithHooks(p.cfg, p.hooks)
	if err != nil {
		return nil, err
	}

	return parser.Parse(raw, accountSource)
}

// rows builds the standard row handling for a provider: find the header by
// its landmarks and skip rows missing required fields.
func rows(indicators []string, skipPatterns ...string) format.RowHandling {
	return format.RowHandling{
		AutoFindHeader:      true,
		HeaderIndicators:    indicators,
		SkipTextPatterns:    skipPatterns,
		SkipMissingRequired: true,
	}
}
