package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poindexter12/maxwells-wallet/internal/format"
)

func validConfig() *format.Config {
	return &format.Config{
		Key: "custom",
		Columns: format.Columns{
			Date:        format.Col("Date"),
			Amount:      format.Col("Amount"),
			Description: format.Col("Description"),
		},
		Dates: format.DateConvention{Layout: "01/02/2006", DisplayName: "MM/DD/YYYY"},
		Amounts: format.AmountConvention{
			SignStyle:          format.SignNegativePrefix,
			ThousandsSeparator: ",",
		},
		Rows: format.RowHandling{SkipMissingRequired: true},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *format.Config)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(c *format.Config) {},
		},
		{
			name: "MissingDate",
			mutate: func(c *format.Config) {
				c.Columns.Date = format.ColumnRef{}
			},
			wantErr: "date column",
		},
		{
			name: "MissingAmount",
			mutate: func(c *format.Config) {
				c.Columns.Amount = format.ColumnRef{}
			},
			wantErr: "amount column",
		},
		{
			name: "SplitAmountIsValid",
			mutate: func(c *format.Config) {
				c.Columns.Amount = format.ColumnRef{}
				c.Columns.Debit = format.Col("Debit")
				c.Columns.Credit = format.Col("Credit")
			},
		},
		{
			name: "SingleAndSplitConflict",
			mutate: func(c *format.Config) {
				c.Columns.Debit = format.Col("Debit")
				c.Columns.Credit = format.Col("Credit")
			},
			wantErr: "mutually exclusive",
		},
		{
			name: "MissingDateLayout",
			mutate: func(c *format.Config) {
				c.Dates.Layout = ""
			},
			wantErr: "date layout",
		},
		{
			name: "UnknownSignStyle",
			mutate: func(c *format.Config) {
				c.Amounts.SignStyle = "weird"
			},
			wantErr: "sign style",
		},
		{
			name: "RegexMerchantWithoutPattern",
			mutate: func(c *format.Config) {
				c.Merchant = format.MerchantStrategy{Mode: format.MerchantRegex}
			},
			wantErr: "pattern",
		},
		{
			name: "MultiCharDelimiter",
			mutate: func(c *format.Config) {
				c.Delimiter = ";;"
			},
			wantErr: "delimiter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDateConvention_Parse(t *testing.T) {
	mdY := format.DateConvention{Layout: "01/02/2006"}

	got, err := mdY.Parse("01/15/2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = mdY.Parse("15/01/2025")
	assert.Error(t, err)
}

func TestDateConvention_ParseISO(t *testing.T) {
	iso := format.DateConvention{Layout: format.LayoutISO}

	got, err := iso.Parse("2025-01-05T00:13:58")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = iso.Parse("2025-01-05T22:13:58Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = iso.Parse("01/15/2025")
	assert.Error(t, err)
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.Columns.Reference = format.ColIndex(4)
	cfg.Rows.SkipTextPatterns = []string{"Totals", "regex:^Page \\d+"}
	cfg.Merchant = format.MerchantStrategy{Mode: format.MerchantFirstWords, WordCount: 3}

	out, err := format.EncodeYAML(cfg)
	require.NoError(t, err)

	back, err := format.DecodeYAML(out)
	require.NoError(t, err)

	assert.Equal(t, cfg, back)
}

func TestColumnRef_YAMLShapes(t *testing.T) {
	cfg := validConfig()
	cfg.Columns.Date = format.ColIndex(0)

	out, err := format.EncodeYAML(cfg)
	require.NoError(t, err)

	assert.Contains(t, string(out), "date: 0")
	assert.Contains(t, string(out), "amount: Amount")

	back, err := format.DecodeYAML(out)
	require.NoError(t, err)

	idx, ok := back.Columns.Date.Index()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	name, ok := back.Columns.Amount.Name()
	require.True(t, ok)
	assert.Equal(t, "Amount", name)
}

func TestDecodeYAML_Invalid(t *testing.T) {
	_, err := format.DecodeYAML([]byte("columns:\n  description: Note\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date column")
}
