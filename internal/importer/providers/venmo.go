package providers

import (
	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// Venmo statements carry several metadata lines above the header, combined
// ISO date-times, and amounts written as "+ $20.00" / "- $18.00".
func venmo() *Provider {
	indicators := []string{"ID", "Datetime", "Note", "Amount (total)"}

	return &Provider{
		key:        "venmo",
		confidence: 0.95,
		indicators: indicators,
		cfg: &format.Config{
			Key: "venmo",
			Columns: format.Columns{
				Date:        format.Col("Datetime"),
				Amount:      format.Col("Amount (total)"),
				Description: format.Col("Note"),
				Reference:   format.Col("ID"),
			},
			Dates: format.DateConvention{Layout: format.LayoutISO, DisplayName: "ISO date-time"},
			Amounts: format.AmountConvention{
				SignStyle:          format.SignPlusMinusPrefix,
				CurrencyPrefix:     "$",
				ThousandsSeparator: ",",
			},
			Rows: rows(indicators),
		},
	}
}
