package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/format/detect"
)

func TestDetectAmountFormat(t *testing.T) {
	tests := []struct {
		name    string
		samples []string
		want    format.AmountConvention
	}{
		{
			name:    "PlainNegativePrefix",
			samples: []string{"-4.50", "2500.00"},
			want: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
			},
		},
		{
			name:    "ParenthesesWithCurrency",
			samples: []string{"($29.44)", "$102.27"},
			want: format.AmountConvention{
				SignStyle:          format.SignParentheses,
				CurrencyPrefix:     "$",
				ThousandsSeparator: ",",
			},
		},
		{
			name:    "SpacedPlusMinusPrefix",
			samples: []string{"+ $20.00", "- $18.00"},
			want: format.AmountConvention{
				SignStyle:          format.SignPlusMinusPrefix,
				CurrencyPrefix:     "$",
				ThousandsSeparator: ",",
			},
		},
		{
			name:    "USThousands",
			samples: []string{"1,234.56", "-987.65"},
			want: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
			},
		},
		{
			name:    "EuropeanSeparators",
			samples: []string{"1.234,56", "-588,74"},
			want: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ".",
			},
		},
		{
			name:    "MixedCurrencyYieldsNoPrefix",
			samples: []string{"$4.50", "4.50"},
			want: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
			},
		},
		{
			name:    "EmptySamplesUseDefaults",
			samples: []string{"", "  "},
			want: format.AmountConvention{
				SignStyle:          format.SignNegativePrefix,
				ThousandsSeparator: ",",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detect.DetectAmountFormat(tt.samples)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectAmountFormat_NeverInfersInversion(t *testing.T) {
	// All-positive charge exports look identical to all-inflow files, so
	// inversion must come from provider knowledge, never from samples.
	got := detect.DetectAmountFormat([]string{"12.50", "45.00", "102.27"})
	assert.False(t, got.InvertSign)
}
