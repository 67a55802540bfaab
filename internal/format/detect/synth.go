package detect

import (
	"encoding/csv"
	"strings"

	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// Analysis is the outcome of running the full detection pipeline over a
// table. Config is nil when synthesis failed (no date or amount column could
// be classified with non-zero confidence, or the date encoding stayed
// ambiguous); that is a reportable result, not an error.
type Analysis struct {
	SkipRows int
	Header   []string
	Hints    []Hint
	Config   *format.Config
}

// Analyze locates the header heuristically and classifies the table below
// it, trying each known delimiter in a fixed order. Returns false when no
// header row could be found at all; an Analysis with a nil Config means a
// header was found but no usable date and amount columns.
func Analyze(raw string) (*Analysis, bool) {
	var fallback *Analysis

	for _, comma := range delimiters {
		skip, _, ok := FindHeader(raw, nil, comma)
		if !ok {
			continue
		}

		a := AnalyzeFrom(raw, skip, comma)
		if a.Config != nil {
			return a, true
		}

		if fallback == nil {
			fallback = a
		}
	}

	return fallback, fallback != nil
}

// AnalyzeFrom classifies a table whose header sits at a known line offset,
// then synthesizes a parse config from the hints. Used directly by
// configuration-assistance callers that let the user adjust the skip count.
func AnalyzeFrom(raw string, skip int, comma rune) *Analysis {
	header, rows := readTable(raw, skip, comma)

	a := &Analysis{
		SkipRows: skip,
		Header:   header,
		Hints:    ClassifyColumns(header, rows),
	}

	a.Config = synthesize(a, rows, comma)

	return a
}

// synthesize combines the classifier hints and the format detectors into a
// complete parse config. Date and amount are mandatory: rather than guess a
// column and silently corrupt the output, synthesis reports failure by
// returning nil.
func synthesize(a *Analysis, rows [][]string, comma rune) *format.Config {
	best := bestByRole(a.Hints)

	dateHint, ok := best[format.RoleDate]
	if !ok {
		return nil
	}

	amountHint, ok := best[format.RoleAmount]
	if !ok {
		return nil
	}

	dateCol := hintPosition(a.Hints, dateHint)
	amountCol := hintPosition(a.Hints, amountHint)

	dates, ok := DetectDateFormat(columnSamples(rows, dateCol))
	if !ok {
		return nil
	}

	amounts := DetectAmountFormat(columnSamples(rows, amountCol))

	cfg := &format.Config{
		Key:     format.KeyCustom,
		Dates:   dates,
		Amounts: amounts,
		Rows: format.RowHandling{
			SkipHeaderRows:      a.SkipRows,
			SkipMissingRequired: true,
		},
	}

	if comma != ',' {
		cfg.Delimiter = string(comma)
	}

	cfg.Columns.Date = dateHint.Ref
	cfg.Columns.Amount = amountHint.Ref

	if h, ok := best[format.RoleDescription]; ok {
		cfg.Columns.Description = h.Ref
	}

	if h, ok := best[format.RoleReference]; ok {
		cfg.Columns.Reference = h.Ref
	}

	if h, ok := best[format.RoleCategory]; ok {
		cfg.Columns.Category = h.Ref
	}

	if h, ok := best[format.RoleAccount]; ok {
		cfg.Columns.Account = h.Ref
	}

	if h, ok := best[format.RoleMerchant]; ok {
		cfg.Columns.Merchant = h.Ref
		cfg.Merchant = format.MerchantStrategy{Mode: format.MerchantColumn, Column: h.Ref}
	}
	// Without a dedicated merchant column the parser falls back to
	// truncating the description, so no strategy is declared here.

	return cfg
}

// bestByRole keeps the highest-confidence hint per role. Earlier columns win
// ties, keeping selection deterministic.
func bestByRole(hints []Hint) map[format.Role]Hint {
	best := make(map[format.Role]Hint)

	for _, h := range hints {
		if h.Role == format.RoleUnknown || h.Confidence <= 0 {
			continue
		}

		if cur, ok := best[h.Role]; !ok || h.Confidence > cur.Confidence {
			best[h.Role] = h
		}
	}

	return best
}

func hintPosition(hints []Hint, target Hint) int {
	for i, h := range hints {
		if h.Ref == target.Ref {
			return i
		}
	}

	return -1
}

// readTable parses the delimited lines at and below the header offset.
func readTable(raw string, skip int, comma rune) (header []string, rows [][]string) {
	lines := SplitLines(raw)
	if skip >= len(lines) {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[skip:], "\n")))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return nil, nil
	}

	return records[0], records[1:]
}
