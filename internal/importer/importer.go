package importer

import (
	"fmt"
	"sort"

	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/transaction"
)

//go:generate mockgen -source=importer.go -destination=importer_mock.go -package=importer

// FormatParser is a statement format the engine knows how to parse: either a
// registered provider format with a fixed layout, or the generic parser
// wrapped around a synthesized config. Parse never fails on malformed
// individual rows; those are skipped.
type FormatParser interface {
	Key() format.Key
	// Probe inspects raw text and reports whether this parser recognizes
	// the file, with a 0.0-1.0 confidence used to rank competing claims.
	Probe(raw string) (bool, float64)
	Parse(raw, accountSource string) ([]transaction.Transaction, error)
}

// Registry holds the known format parsers. It is populated once at startup
// and read-only afterwards, so it is safe to share across concurrent parse
// requests without locking.
type Registry struct {
	parsers []FormatParser
	byKey   map[format.Key]FormatParser
}

func NewRegistry() *Registry {
	return &Registry{byKey: make(map[format.Key]FormatParser)}
}

// Register adds a parser. Duplicate or empty keys are programming errors and
// are rejected here, at startup, not on the request path.
func (r *Registry) Register(p FormatParser) error {
	key := p.Key()
	if key == "" {
		return fmt.Errorf("format parser has no key")
	}

	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("format parser %q already registered", key)
	}

	r.parsers = append(r.parsers, p)
	r.byKey[key] = p

	return nil
}

func (r *Registry) MustRegister(p FormatParser) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the parser registered under key.
func (r *Registry) Lookup(key format.Key) (FormatParser, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// Keys lists registered format keys in sorted order.
func (r *Registry) Keys() []format.Key {
	keys := make([]format.Key, 0, len(r.parsers))
	for _, p := range r.parsers {
		keys = append(keys, p.Key())
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// Probe asks every registered parser whether it can handle the file and
// returns the highest-confidence claimant. Equal confidence resolves to the
// first-registered parser, which keeps selection deterministic.
func (r *Registry) Probe(raw string) (FormatParser, bool) {
	var (
		best     FormatParser
		bestConf float64
	)

	for _, p := range r.parsers {
		ok, conf := p.Probe(raw)
		if !ok {
			continue
		}

		if best == nil || conf > bestConf {
			best = p
			bestConf = conf
		}
	}

	return best, best != nil
}
