package detect

import (
	"encoding/csv"
	"strings"
)

// headerSearchWindow bounds the header scan. Real headers sit near the top;
// the further down a match is found, the more likely it is a false positive
// (a date cell containing "Date", a footer repeating column names).
const headerSearchWindow = 20

// delimiters are the field separators detection will consider, in fixed
// priority order.
var delimiters = []rune{',', ';', '\t', '|'}

// SniffDelimiter picks the candidate delimiter that splits the line into the
// most fields, falling back to a comma.
func SniffDelimiter(line string) rune {
	best := ','
	bestFields := 1

	for _, d := range delimiters {
		fields, err := SplitRow(line, d)
		if err == nil && len(fields) > bestFields {
			best = d
			bestFields = len(fields)
		}
	}

	return best
}

// SplitLines breaks raw statement text into lines, tolerating CRLF endings
// and dropping a trailing empty line.
func SplitLines(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// FindHeader locates the header row inside noisy leading metadata.
//
// With indicators, the first line within the search window containing every
// indicator token (case-sensitive substrings) is the header. Without
// indicators it falls back to the first line that splits into more than one
// delimited column. The returned skip count is the header's 0-based index.
// Not finding a header is a normal outcome, not an error.
func FindHeader(raw string, indicators []string, comma rune) (skip int, header string, ok bool) {
	lines := SplitLines(raw)

	limit := len(lines)
	if limit > headerSearchWindow {
		limit = headerSearchWindow
	}

	for i := 0; i < limit; i++ {
		if matchesHeader(lines[i], indicators, comma) {
			return i, lines[i], true
		}
	}

	return 0, "", false
}

func matchesHeader(line string, indicators []string, comma rune) bool {
	if len(indicators) > 0 {
		for _, token := range indicators {
			if !strings.Contains(line, token) {
				return false
			}
		}

		return true
	}

	fields, err := SplitRow(line, comma)
	if err != nil {
		return false
	}

	nonEmpty := 0

	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			nonEmpty++
		}
	}

	return nonEmpty > 1
}

// FindHeaderAuto locates the header without knowing the delimiter, trying
// each candidate in priority order.
func FindHeaderAuto(raw string) (skip int, header string, ok bool) {
	for _, comma := range delimiters {
		if skip, header, ok = FindHeader(raw, nil, comma); ok {
			return skip, header, true
		}
	}

	return 0, "", false
}

// SplitRow parses a single delimited line, tolerating sloppy quoting.
func SplitRow(line string, comma rune) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	return r.Read()
}
