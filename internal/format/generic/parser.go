package generic

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/format/detect"
	"github.com/poindexter12/maxwells-wallet/internal/transaction"
)

// Hooks let format-specific parsers override individual extraction steps
// without re-implementing the row loop. Every hook is optional.
type Hooks struct {
	// ExtractMerchant replaces the configured merchant strategy.
	ExtractMerchant func(description string) string
	// MapCategory derives a suggested category from the source category
	// column (possibly empty) and the description.
	MapCategory func(sourceCategory, description string) string
	// ShouldSkipRow drops a raw row before any field is parsed.
	ShouldSkipRow func(cells []string) bool
}

// Parser turns raw delimited text into normalized transactions according to
// a parse config. It is the single row-parsing code path: synthesized
// configs, saved user configs, and registered provider formats all run
// through it.
//
// Row-level defects (unparseable date or amount, missing required fields,
// configured skip patterns) drop the row and never fail the parse.
type Parser struct {
	cfg      *format.Config
	hooks    Hooks
	merchant *merchantExtractor
	skipRes  []*regexp.Regexp
	skipSubs []string
}

func New(cfg *format.Config) (*Parser, error) {
	return NewWithHooks(cfg, Hooks{})
}

func NewWithHooks(cfg *format.Config, hooks Hooks) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	merchant, err := newMerchantExtractor(cfg.Merchant)
	if err != nil {
		return nil, err
	}

	p := &Parser{cfg: cfg, hooks: hooks, merchant: merchant}

	for _, pat := range cfg.Rows.SkipTextPatterns {
		if expr, ok := strings.CutPrefix(pat, "regex:"); ok {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("skip pattern %q: %w", pat, err)
			}

			p.skipRes = append(p.skipRes, re)

			continue
		}

		p.skipSubs = append(p.skipSubs, strings.ToLower(pat))
	}

	return p, nil
}

// Parse processes the raw text and returns transactions in input order.
// accountSource overrides any account column value when non-empty.
func (p *Parser) Parse(raw, accountSource string) ([]transaction.Transaction, error) {
	lines := detect.SplitLines(raw)

	skip := p.cfg.Rows.SkipHeaderRows

	if p.cfg.Rows.AutoFindHeader {
		found, _, ok := detect.FindHeader(raw, p.cfg.Rows.HeaderIndicators, p.cfg.Comma())
		if !ok {
			return nil, nil
		}

		skip = found
	}

	if skip >= len(lines) {
		return nil, nil
	}

	lines = lines[skip:]

	if f := p.cfg.Rows.SkipFooterRows; f > 0 {
		if f >= len(lines) {
			return nil, nil
		}

		lines = lines[:len(lines)-f]
	}

	records, err := readAll(lines, p.cfg.Comma())
	if err != nil {
		return nil, fmt.Errorf("read delimited text: %w", err)
	}

	cols, rows, err := p.resolveColumns(records)
	if err != nil {
		return nil, err
	}

	var txs []transaction.Transaction

	for _, row := range rows {
		tx, ok := p.parseRow(row, cols, accountSource)
		if !ok {
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// columns holds the resolved positional index per role, -1 when absent.
type columns struct {
	date, amount, debit, credit      int
	description, merchant, reference int
	category, account, cardMember    int
}

// resolveColumns turns the config's name-or-index refs into positional
// accessors, once for the whole parse. When any ref is name-addressed the
// first record is treated as the header and consumed; a purely positional
// config parses every record as data.
func (p *Parser) resolveColumns(records [][]string) (columns, [][]string, error) {
	c := p.cfg.Columns

	byName := false

	for _, ref := range []format.ColumnRef{
		c.Date, c.Amount, c.Debit, c.Credit, c.Description,
		c.Merchant, c.Reference, c.Category, c.Account, c.CardMember,
	} {
		if _, ok := ref.Name(); ok {
			byName = true
			break
		}
	}

	index := map[string]int{}
	rows := records

	if byName {
		if len(records) == 0 {
			return columns{}, nil, nil
		}

		for i, cell := range records[0] {
			name := strings.TrimSpace(cell)
			if name != "" {
				index[name] = i
			}
		}

		rows = records[1:]
	}

	resolve := func(ref format.ColumnRef) int {
		if i, ok := ref.Index(); ok {
			return i
		}

		if name, ok := ref.Name(); ok {
			if i, found := index[name]; found {
				return i
			}
		}

		return -1
	}

	cols := columns{
		date:        resolve(c.Date),
		amount:      resolve(c.Amount),
		debit:       resolve(c.Debit),
		credit:      resolve(c.Credit),
		description: resolve(c.Description),
		merchant:    resolve(c.Merchant),
		reference:   resolve(c.Reference),
		category:    resolve(c.Category),
		account:     resolve(c.Account),
		cardMember:  resolve(c.CardMember),
	}

	if cols.date < 0 {
		return columns{}, nil, fmt.Errorf("date column %s not found", c.Date)
	}

	if cols.amount < 0 && (cols.debit < 0 || cols.credit < 0) {
		return columns{}, nil, fmt.Errorf("amount column %s not found", c.Amount)
	}

	return cols, rows, nil
}

func (p *Parser) parseRow(row []string, cols columns, accountSource string) (transaction.Transaction, bool) {
	if blankRow(row) || p.shouldSkip(row) {
		return transaction.Transaction{}, false
	}

	if p.hooks.ShouldSkipRow != nil && p.hooks.ShouldSkipRow(row) {
		return transaction.Transaction{}, false
	}

	dateCell := cell(row, cols.date)
	if dateCell == "" && p.cfg.Rows.SkipMissingRequired {
		return transaction.Transaction{}, false
	}

	date, err := p.cfg.Dates.Parse(dateCell)
	if err != nil {
		return transaction.Transaction{}, false
	}

	amount, ok := p.rowAmount(row, cols)
	if !ok {
		return transaction.Transaction{}, false
	}

	description := cell(row, cols.description)

	merchant := ""
	if p.hooks.ExtractMerchant != nil {
		merchant = p.hooks.ExtractMerchant(description)
	} else {
		merchant = p.merchant.extract(description, cell(row, cols.merchant))
	}

	reference := cell(row, cols.reference)
	if reference == "" {
		// Downstream dedup needs a non-empty reference; fall back to a
		// composite that is stable across re-parses of the same file.
		reference = fmt.Sprintf("%s|%s|%s", p.key(), date.Format("2006-01-02"), amount.String())
	}

	account := accountSource
	if account == "" {
		account = cell(row, cols.account)
	}

	sourceCategory := cell(row, cols.category)

	suggested := ""
	if p.hooks.MapCategory != nil {
		suggested = p.hooks.MapCategory(sourceCategory, description)
	}

	return transaction.Transaction{
		Date:              date,
		Amount:            amount,
		Description:       description,
		Merchant:          merchant,
		AccountSource:     account,
		ReferenceID:       reference,
		CardMember:        cell(row, cols.cardMember),
		SuggestedCategory: suggested,
		SourceCategory:    sourceCategory,
	}, true
}

func (p *Parser) rowAmount(row []string, cols columns) (decimal.Decimal, bool) {
	if cols.amount >= 0 {
		d, err := parseAmount(cell(row, cols.amount), p.cfg.Amounts)
		if err != nil {
			return decimal.Zero, false
		}

		return d, true
	}

	// Split debit/credit pair: debit is money out, credit money in.
	if s := cell(row, cols.debit); s != "" {
		d, err := parseAmount(s, p.cfg.Amounts)
		if err == nil && !d.IsZero() {
			return d.Abs().Neg(), true
		}
	}

	if s := cell(row, cols.credit); s != "" {
		d, err := parseAmount(s, p.cfg.Amounts)
		if err == nil && !d.IsZero() {
			return d.Abs(), true
		}
	}

	return decimal.Zero, false
}

func (p *Parser) shouldSkip(row []string) bool {
	if len(p.skipSubs) == 0 && len(p.skipRes) == 0 {
		return false
	}

	joined := strings.Join(row, " ")
	lower := strings.ToLower(joined)

	for _, sub := range p.skipSubs {
		if strings.Contains(lower, sub) {
			return true
		}
	}

	for _, re := range p.skipRes {
		if re.MatchString(joined) {
			return true
		}
	}

	return false
}

func (p *Parser) key() format.Key {
	if p.cfg.Key == "" {
		return format.KeyCustom
	}

	return p.cfg.Key
}

func readAll(lines []string, comma rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	return r.ReadAll()
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
