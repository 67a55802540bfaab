package format

import (
	"errors"
	"fmt"
	"time"
)

// Key identifies a statement format.
type Key string

const (
	// KeyUnknown is reported when neither a registered parser nor
	// auto-detection could make sense of a file.
	KeyUnknown Key = "unknown"
	// KeyCustom marks configs synthesized by auto-detection or supplied by a
	// caller, as opposed to a registered provider format.
	KeyCustom Key = "custom"
)

// SignStyle is the textual encoding a provider uses for negative amounts.
type SignStyle string

const (
	// SignNegativePrefix is a plain leading minus: "-18.00".
	SignNegativePrefix SignStyle = "negative_prefix"
	// SignParentheses wraps outflows: "($29.44)".
	SignParentheses SignStyle = "parentheses"
	// SignPlusMinusPrefix is a leading sign separated from the value by a
	// space, usually before a currency symbol: "+ $20.00".
	SignPlusMinusPrefix SignStyle = "plus_minus_prefix"
)

// AmountConvention describes how monetary values are encoded.
type AmountConvention struct {
	SignStyle          SignStyle `yaml:"sign_style"`
	CurrencyPrefix     string    `yaml:"currency_prefix,omitempty"`
	ThousandsSeparator string    `yaml:"thousands_separator,omitempty"`
	// InvertSign flips the parsed sign. Some providers report charges as
	// positive; inversion maps them onto the normalized convention
	// (positive = money in). Never set by detection, only by provider
	// knowledge or an explicit user config.
	InvertSign bool `yaml:"invert_sign,omitempty"`
}

// LayoutISO is the sentinel layout for combined date-time values such as
// "2025-01-05T00:13:58". These must be decoded as a whole date-time and then
// truncated, not matched field by field.
const LayoutISO = "iso"

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// DateConvention describes how dates are encoded.
type DateConvention struct {
	// Layout is a Go reference layout, or LayoutISO for combined date-times.
	Layout      string `yaml:"layout"`
	DisplayName string `yaml:"display_name,omitempty"`
}

// Parse decodes a raw date cell and truncates it to midnight UTC.
func (d DateConvention) Parse(s string) (time.Time, error) {
	if d.Layout == LayoutISO {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
			}
		}

		return time.Time{}, fmt.Errorf("value %q is not a combined date-time", s)
	}

	t, err := time.Parse(d.Layout, s)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// RowHandling controls which raw lines are fed to the row parser.
type RowHandling struct {
	SkipHeaderRows int `yaml:"skip_header_rows,omitempty"`
	SkipFooterRows int `yaml:"skip_footer_rows,omitempty"`
	// SkipTextPatterns drops rows whose joined text matches any entry.
	// Entries are case-insensitive substrings unless prefixed with "regex:".
	SkipTextPatterns    []string `yaml:"skip_text_patterns,omitempty"`
	SkipMissingRequired bool     `yaml:"skip_rows_with_missing_required_fields,omitempty"`
	// AutoFindHeader scans for the header row at parse time instead of
	// trusting SkipHeaderRows, using HeaderIndicators as landmarks.
	AutoFindHeader   bool     `yaml:"auto_find_header,omitempty"`
	HeaderIndicators []string `yaml:"header_indicator_tokens,omitempty"`
}

// MerchantMode selects how the merchant field is derived.
type MerchantMode string

const (
	// MerchantColumn reads a dedicated column.
	MerchantColumn MerchantMode = "column"
	// MerchantRegex applies a pattern with one capture group to the description.
	MerchantRegex MerchantMode = "regex"
	// MerchantFirstWords keeps the first N words of the description.
	MerchantFirstWords MerchantMode = "first_words"
	// MerchantSplit cuts the description at the first occurrence of any
	// character in SplitChars.
	MerchantSplit MerchantMode = "split"
)

// DefaultMerchantMaxLen caps merchant strings when a config does not say otherwise.
const DefaultMerchantMaxLen = 50

// MerchantStrategy describes how to extract a merchant name from a row.
type MerchantStrategy struct {
	Mode       MerchantMode `yaml:"mode,omitempty"`
	Column     ColumnRef    `yaml:"column,omitempty"`
	Pattern    string       `yaml:"pattern,omitempty"`
	WordCount  int          `yaml:"word_count,omitempty"`
	SplitChars string       `yaml:"split_chars,omitempty"`
	MaxLength  int          `yaml:"max_length,omitempty"`
}

// Columns maps semantic roles to column references. Date plus either Amount
// or the Debit/Credit pair are mandatory; everything else is optional.
type Columns struct {
	Date        ColumnRef `yaml:"date"`
	Amount      ColumnRef `yaml:"amount,omitempty"`
	Debit       ColumnRef `yaml:"debit,omitempty"`
	Credit      ColumnRef `yaml:"credit,omitempty"`
	Description ColumnRef `yaml:"description,omitempty"`
	Merchant    ColumnRef `yaml:"merchant,omitempty"`
	Reference   ColumnRef `yaml:"reference,omitempty"`
	Category    ColumnRef `yaml:"category,omitempty"`
	Account     ColumnRef `yaml:"account,omitempty"`
	CardMember  ColumnRef `yaml:"card_member,omitempty"`
}

// Config is the complete description of how to parse one file. It is built
// once (synthesized by detection, declared by a provider parser, or loaded
// from a saved customization) and never mutated afterwards.
type Config struct {
	Key       Key              `yaml:"key,omitempty"`
	Delimiter string           `yaml:"delimiter,omitempty"`
	Columns   Columns          `yaml:"columns"`
	Dates     DateConvention   `yaml:"date_format"`
	Amounts   AmountConvention `yaml:"amount_format"`
	Rows      RowHandling      `yaml:"rows,omitempty"`
	Merchant  MerchantStrategy `yaml:"merchant,omitempty"`
}

// Comma returns the field delimiter, defaulting to a comma.
func (c *Config) Comma() rune {
	if c.Delimiter == "" {
		return ','
	}

	return []rune(c.Delimiter)[0]
}

// Validate checks the config for structural defects. A bad config is a
// programming or input error and fails here, before any row is touched.
func (c *Config) Validate() error {
	if !c.Columns.Date.IsSet() {
		return errors.New("config: date column is required")
	}

	hasSingle := c.Columns.Amount.IsSet()
	hasSplit := c.Columns.Debit.IsSet() && c.Columns.Credit.IsSet()

	if !hasSingle && !hasSplit {
		return errors.New("config: amount column (or debit/credit pair) is required")
	}

	if hasSingle && hasSplit {
		return errors.New("config: amount and debit/credit columns are mutually exclusive")
	}

	if c.Dates.Layout == "" {
		return errors.New("config: date layout is required")
	}

	switch c.Amounts.SignStyle {
	case SignNegativePrefix, SignParentheses, SignPlusMinusPrefix, "":
	default:
		return fmt.Errorf("config: unknown sign style %q", c.Amounts.SignStyle)
	}

	switch c.Merchant.Mode {
	case MerchantColumn:
		if !c.Merchant.Column.IsSet() {
			return errors.New("config: merchant mode column needs a column ref")
		}
	case MerchantRegex:
		if c.Merchant.Pattern == "" {
			return errors.New("config: merchant mode regex needs a pattern")
		}
	case MerchantFirstWords:
		if c.Merchant.WordCount <= 0 {
			return errors.New("config: merchant mode first_words needs a positive word count")
		}
	case MerchantSplit:
		if c.Merchant.SplitChars == "" {
			return errors.New("config: merchant mode split needs split chars")
		}
	case "":
	default:
		return fmt.Errorf("config: unknown merchant mode %q", c.Merchant.Mode)
	}

	if len(c.Delimiter) > 1 {
		return fmt.Errorf("config: delimiter must be a single character, got %q", c.Delimiter)
	}

	return nil
}
