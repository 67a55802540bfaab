package detect

import (
	"strings"
	"time"

	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// dateCandidates is the ordered list of date encodings detection will try,
// most specific and least ambiguous first. The order is fixed so detection
// stays deterministic across runs.
var dateCandidates = []format.DateConvention{
	{Layout: format.LayoutISO, DisplayName: "ISO date-time"},
	{Layout: "01/02/2006", DisplayName: "MM/DD/YYYY"},
	{Layout: "01/02/06", DisplayName: "MM/DD/YY"},
	{Layout: "2006-01-02", DisplayName: "YYYY-MM-DD"},
	{Layout: "01-02-2006", DisplayName: "MM-DD-YYYY"},
	{Layout: "02/01/2006", DisplayName: "DD/MM/YYYY"},
	{Layout: "02-01-2006", DisplayName: "DD-MM-YYYY"},
}

// DetectDateFormat returns the first candidate under which every sample
// parses. A candidate that fails even one sample is rejected outright: a
// month/day-swapped "best guess" would silently corrupt every date in the
// file, so mixed or unrecognized samples yield no result instead.
func DetectDateFormat(samples []string) (format.DateConvention, bool) {
	if len(samples) == 0 {
		return format.DateConvention{}, false
	}

	for _, candidate := range dateCandidates {
		if parsesAll(candidate, samples) {
			return candidate, true
		}
	}

	return format.DateConvention{}, false
}

func parsesAll(c format.DateConvention, samples []string) bool {
	for _, s := range samples {
		s = strings.TrimSpace(s)
		if s == "" {
			return false
		}

		// Combined date-times are recognized by their literal "T" separator
		// and decoded whole; a printf-style layout would mismatch the
		// trailing time-of-day.
		if c.Layout == format.LayoutISO && !strings.Contains(s, "T") {
			return false
		}

		if _, err := c.Parse(s); err != nil {
			return false
		}
	}

	return true
}

// looksLikeDate reports whether a single value parses under any candidate.
// Used by the column classifier for value-shape sampling.
func looksLikeDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	for _, c := range dateCandidates {
		if c.Layout == format.LayoutISO {
			if strings.Contains(s, "T") {
				if _, err := c.Parse(s); err == nil {
					return true
				}
			}

			continue
		}

		if _, err := time.Parse(c.Layout, s); err == nil {
			return true
		}
	}

	return false
}
