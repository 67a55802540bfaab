package detect

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/poindexter12/maxwells-wallet/internal/format"
)

var (
	plusMinusPrefixRe = regexp.MustCompile(`^[+-]\s`)
	usThousandsRe     = regexp.MustCompile(`\d,\d{3}`)
	euThousandsRe     = regexp.MustCompile(`\d\.\d{3}`)
	euDecimalRe       = regexp.MustCompile(`,\d{1,2}$`)
)

// DetectAmountFormat infers how a column encodes monetary values. The three
// inferences (sign style, currency prefix, thousands separator) are
// independent and each degrades to a safe default when the samples carry no
// signal.
//
// InvertSign is deliberately never inferred: a file where every value is an
// inflow is indistinguishable from a provider that encodes charges as
// positive. Only provider knowledge (a registered format) or an explicit
// user config can set it.
func DetectAmountFormat(samples []string) format.AmountConvention {
	conv := format.AmountConvention{
		SignStyle:          format.SignNegativePrefix,
		ThousandsSeparator: ",",
	}

	trimmed := make([]string, 0, len(samples))

	for _, s := range samples {
		if s = strings.TrimSpace(s); s != "" {
			trimmed = append(trimmed, s)
		}
	}

	if len(trimmed) == 0 {
		return conv
	}

	conv.SignStyle = detectSignStyle(trimmed)
	conv.CurrencyPrefix = detectCurrencyPrefix(trimmed)
	conv.ThousandsSeparator = detectThousandsSeparator(trimmed)

	return conv
}

func detectSignStyle(samples []string) format.SignStyle {
	for _, s := range samples {
		if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
			return format.SignParentheses
		}
	}

	for _, s := range samples {
		if plusMinusPrefixRe.MatchString(s) {
			return format.SignPlusMinusPrefix
		}
	}

	return format.SignNegativePrefix
}

// detectCurrencyPrefix returns the longest symbol run shared by every
// sample's leading edge, e.g. "$" for {"$4.50", "($29.44)"}.
func detectCurrencyPrefix(samples []string) string {
	common := ""

	for i, s := range samples {
		run := symbolRun(s)
		if i == 0 {
			common = run
			continue
		}

		common = commonPrefix(common, run)
		if common == "" {
			return ""
		}
	}

	return common
}

// symbolRun strips sign decorations and returns the leading run of
// non-digit, non-space characters.
func symbolRun(s string) string {
	s = strings.TrimPrefix(s, "(")
	s = plusMinusPrefixRe.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, "+- ")

	var run []rune

	for _, r := range s {
		if unicode.IsDigit(r) || unicode.IsSpace(r) {
			break
		}

		run = append(run, r)
	}

	return string(run)
}

func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}

	return a[:i]
}

func detectThousandsSeparator(samples []string) string {
	euStyle := false

	for _, s := range samples {
		if usThousandsRe.MatchString(s) {
			return ","
		}

		if euThousandsRe.MatchString(s) && euDecimalRe.MatchString(s) {
			euStyle = true
		}
	}

	if euStyle {
		return "."
	}

	return ","
}

// looksLikeAmount reports whether a value resembles money under any
// recognized convention. Used by the column classifier.
func looksLikeAmount(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimLeft(s, "+- ")
	s = symbolTrim(s)

	if euDecimalRe.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	s = strings.TrimSpace(s)

	if s == "" {
		return false
	}

	_, err := decimal.NewFromString(s)

	return err == nil
}

// symbolTrim removes a leading currency-symbol run.
func symbolTrim(s string) string {
	return strings.TrimPrefix(s, symbolRun(s))
}
