package generic

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// parseAmount decodes a raw amount cell under the configured convention into
// a signed decimal, positive meaning money in. Inversion, when configured,
// is applied last.
func parseAmount(s string, conv format.AmountConvention) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	neg := false

	if conv.SignStyle == format.SignParentheses &&
		strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// A leading sign is honored under every style; plus_minus_prefix merely
	// allows whitespace between the sign and the value.
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	} else if strings.HasPrefix(s, "+") {
		s = strings.TrimSpace(s[1:])
	}

	if conv.CurrencyPrefix != "" {
		s = strings.TrimSpace(strings.TrimPrefix(s, conv.CurrencyPrefix))
	}

	if conv.ThousandsSeparator == "." {
		// European notation: dots group thousands, the comma is the decimal
		// separator.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		sep := conv.ThousandsSeparator
		if sep == "" {
			sep = ","
		}

		s = strings.ReplaceAll(s, sep, "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}

	if neg {
		d = d.Neg()
	}

	if conv.InvertSign {
		d = d.Neg()
	}

	return d, nil
}
