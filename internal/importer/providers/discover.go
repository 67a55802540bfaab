package providers

import (
	"strings"

	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/format/generic"
)

// discoverCategories maps Discover's statement categories onto suggested
// internal ones. Unmapped categories pass through lowercased.
var discoverCategories = map[string]string{
	"Supermarkets":          "groceries",
	"Gasoline":              "transport",
	"Restaurants":           "dining",
	"Travel/ Entertainment": "travel",
	"Services":              "services",
	"Payments and Credits":  "payment",
}

// Discover card exports: purchases positive (inverted), plus a source
// category column worth keeping.
func discover() *Provider {
	indicators := []string{"Trans. Date", "Post Date", "Description", "Amount", "Category"}

	return &Provider{
		key:        "discover",
		confidence: 0.9,
		indicators: indicators,
		cfg: &format.Config{
			Key: "discover",
			Columns: format.Columns{
				Date:        format.Col("Trans. Date"),
				Amount:      format.Col("Amount"),
				Description: format.Col("Description"),
				Category:    format.Col("Category"),
			},
			Dates: format.DateConvention{Layout: "01/02/2006", DisplayName: "MM/DD/YYYY"},
			Amounts: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
				InvertSign:         true,
			},
			Rows: rows(indicators),
		},
		hooks: generic.Hooks{
			MapCategory: func(sourceCategory, _ string) string {
				if mapped, ok := discoverCategories[sourceCategory]; ok {
					return mapped
				}

				return strings.ToLower(sourceCategory)
			},
		},
	}
}
