package importer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/poindexter12/maxwells-wallet/internal/encoding"
	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/format/detect"
	"github.com/poindexter12/maxwells-wallet/internal/format/generic"
	"github.com/poindexter12/maxwells-wallet/internal/transaction"
)

// Result is the outcome of a parse request. Detected distinguishes "this
// file parsed to zero transactions" (Detected true, a legitimately empty
// statement) from "no format could be detected at all" (Detected false,
// KeyUnknown).
type Result struct {
	Transactions []transaction.Transaction
	Format       format.Key
	Detected     bool
}

// Service is the engine façade: format detection plus parsing. It holds no
// mutable state, so a single instance serves concurrent requests.
type Service struct {
	registry *Registry
}

func NewService(registry *Registry) *Service {
	return &Service{registry: registry}
}

// Parse turns raw statement text into normalized transactions.
//
// With a format hint, detection is skipped and the named parser is used
// directly; an unknown hint is an error. Without one, the registry's
// highest-confidence probe wins, then the auto-detection pipeline, and
// finally an explicit undetected result (never an error).
func (s *Service) Parse(raw, accountSource string, hint format.Key) (*Result, error) {
	if hint != "" {
		p, ok := s.registry.Lookup(hint)
		if !ok {
			return nil, fmt.Errorf("unknown format %q", hint)
		}

		txs, err := p.Parse(raw, accountSource)
		if err != nil {
			return nil, err
		}

		return &Result{Transactions: txs, Format: hint, Detected: true}, nil
	}

	if p, ok := s.registry.Probe(raw); ok {
		txs, err := p.Parse(raw, accountSource)
		if err != nil {
			return nil, err
		}

		slog.Debug("format claimed by registered parser", "format", p.Key())

		return &Result{Transactions: txs, Format: p.Key(), Detected: true}, nil
	}

	analysis, ok := detect.Analyze(raw)
	if !ok || analysis.Config == nil {
		slog.Debug("format detection failed", "header_found", ok)

		return &Result{Format: format.KeyUnknown}, nil
	}

	return s.ParseConfig(raw, analysis.Config, accountSource)
}

// ParseReader decodes an arbitrary byte stream to UTF-8 first, then parses.
func (s *Service) ParseReader(r io.Reader, accountSource string, hint format.Key) (*Result, error) {
	raw, err := encoding.DecodeString(r)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	return s.Parse(raw, accountSource, hint)
}

// ParseConfig parses with a caller-supplied config, e.g. a saved user
// customization. Behavior is identical to a config synthesized by detection.
func (s *Service) ParseConfig(raw string, cfg *format.Config, accountSource string) (*Result, error) {
	p, err := generic.New(cfg)
	if err != nil {
		return nil, err
	}

	txs, err := p.Parse(raw, accountSource)
	if err != nil {
		return nil, err
	}

	key := cfg.Key
	if key == "" {
		key = format.KeyCustom
	}

	return &Result{Transactions: txs, Format: key, Detected: true}, nil
}

// DetectHeaderRow exposes header location on its own, for callers that let a
// user preview and adjust the detected layout before parsing.
func (s *Service) DetectHeaderRow(raw string) (skip int, header string, ok bool) {
	return detect.FindHeaderAuto(raw)
}

// AnalyzeColumns classifies the table below a known header offset and
// returns per-column hints plus a suggested config (nil when synthesis
// failed). Recomputed on every call; nothing is cached.
func (s *Service) AnalyzeColumns(raw string, skipRows int) *detect.Analysis {
	lines := detect.SplitLines(raw)
	if skipRows >= len(lines) {
		return &detect.Analysis{SkipRows: skipRows}
	}

	return detect.AnalyzeFrom(raw, skipRows, detect.SniffDelimiter(lines[skipRows]))
}

// Formats lists the registered format keys.
func (s *Service) Formats() []format.Key {
	return s.registry.Keys()
}
