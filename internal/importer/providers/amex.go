package providers

import (
	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// Amex card exports report charges as positive and credits as negative, the
// opposite of the normalized convention, hence the sign inversion. The card
// member column identifies which cardholder made the charge.
func amex() *Provider {
	indicators := []string{"Date", "Description", "Card Member", "Amount"}

	return &Provider{
		key:        "amex",
		confidence: 0.95,
		indicators: indicators,
		cfg: &format.Config{
			Key: "amex",
			Columns: format.Columns{
				Date:        format.Col("Date"),
				Amount:      format.Col("Amount"),
				Description: format.Col("Description"),
				CardMember:  format.Col("Card Member"),
				Account:     format.Col("Account #"),
			},
			Dates: format.DateConvention{Layout: "01/02/2006", DisplayName: "MM/DD/YYYY"},
			Amounts: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
				InvertSign:         true,
			},
			Rows: rows(indicators),
			Merchant: format.MerchantStrategy{
				Mode:      format.MerchantFirstWords,
				WordCount: 4,
			},
		},
	}
}
