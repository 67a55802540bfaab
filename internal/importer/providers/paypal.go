package providers

import (
	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// PayPal activity exports: counterparty in the Name column, frequently empty
// receipt ids (the composite reference fallback covers those), and pending
// or denied rows that should not become transactions.
func paypal() *Provider {
	indicators := []string{"Date", "TimeZone", "Currency", "Receipt ID"}

	return &Provider{
		key:        "paypal",
		confidence: 0.85,
		indicators: indicators,
		cfg: &format.Config{
			Key: "paypal",
			Columns: format.Columns{
				Date:        format.Col("Date"),
				Amount:      format.Col("Amount"),
				Description: format.Col("Name"),
				Merchant:    format.Col("Name"),
				Reference:   format.Col("Receipt ID"),
			},
			Dates: format.DateConvention{Layout: "01/02/2006", DisplayName: "MM/DD/YYYY"},
			Amounts: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
			},
			Rows: rows(indicators, "Pending", "Denied"),
			Merchant: format.MerchantStrategy{
				Mode:   format.MerchantColumn,
				Column: format.Col("Name"),
			},
		},
	}
}
