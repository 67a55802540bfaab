package generic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/poindexter12/maxwells-wallet/internal/format"
)

type merchantExtractor struct {
	strat format.MerchantStrategy
	re    *regexp.Regexp
}

func newMerchantExtractor(strat format.MerchantStrategy) (*merchantExtractor, error) {
	e := &merchantExtractor{strat: strat}

	if strat.Mode == format.MerchantRegex {
		re, err := regexp.Compile(strat.Pattern)
		if err != nil {
			return nil, fmt.Errorf("merchant pattern: %w", err)
		}

		e.re = re
	}

	return e, nil
}

// extract derives the merchant from the description (or a dedicated column
// value, already resolved by the caller). The zero strategy truncates the
// description, which is also the fallback whenever a mode yields nothing.
func (e *merchantExtractor) extract(description, columnValue string) string {
	out := ""

	switch e.strat.Mode {
	case format.MerchantColumn:
		out = columnValue
	case format.MerchantRegex:
		if m := e.re.FindStringSubmatch(description); len(m) > 1 {
			out = m[1]
		}
	case format.MerchantFirstWords:
		words := strings.Fields(description)
		if len(words) > e.strat.WordCount {
			words = words[:e.strat.WordCount]
		}

		out = strings.Join(words, " ")
	case format.MerchantSplit:
		out = description
		if i := strings.IndexAny(description, e.strat.SplitChars); i >= 0 {
			out = description[:i]
		}
	}

	if out == "" {
		out = description
	}

	return e.cap(strings.TrimSpace(out))
}

func (e *merchantExtractor) cap(s string) string {
	maxLen := e.strat.MaxLength
	if maxLen <= 0 {
		maxLen = format.DefaultMerchantMaxLen
	}

	runes := []rune(s)
	if len(runes) > maxLen {
		s = strings.TrimSpace(string(runes[:maxLen]))
	}

	return s
}
