package providers

import (
	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// Chase checking exports: signed amounts, a transaction-type column, and a
// check number column that is empty for card activity.
func chase() *Provider {
	indicators := []string{"Posting Date", "Description", "Amount", "Check or Slip #"}

	return &Provider{
		key:        "chase",
		confidence: 0.9,
		indicators: indicators,
		cfg: &format.Config{
			Key: "chase",
			Columns: format.Columns{
				Date:        format.Col("Posting Date"),
				Amount:      format.Col("Amount"),
				Description: format.Col("Description"),
				Reference:   format.Col("Check or Slip #"),
			},
			Dates: format.DateConvention{Layout: "01/02/2006", DisplayName: "MM/DD/YYYY"},
			Amounts: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
			},
			Rows: rows(indicators),
		},
	}
}
