package providers

import (
	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// Capital One card exports use ISO dates and split amounts across separate
// debit and credit columns instead of signing a single column.
func capitalone() *Provider {
	indicators := []string{"Transaction Date", "Card No.", "Debit", "Credit"}

	return &Provider{
		key:        "capitalone",
		confidence: 0.9,
		indicators: indicators,
		cfg: &format.Config{
			Key: "capitalone",
			Columns: format.Columns{
				Date:        format.Col("Transaction Date"),
				Debit:       format.Col("Debit"),
				Credit:      format.Col("Credit"),
				Description: format.Col("Description"),
				Category:    format.Col("Category"),
				Account:     format.Col("Card No."),
			},
			Dates: format.DateConvention{Layout: "2006-01-02", DisplayName: "YYYY-MM-DD"},
			Amounts: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
			},
			Rows: rows(indicators),
		},
	}
}
