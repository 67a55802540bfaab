package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a normalized statement row. Amounts follow a fixed sign
// convention: positive means money in, negative means money out, regardless
// of how the source file encoded it.
type Transaction struct {
	Date              time.Time
	Amount            decimal.Decimal
	Description       string
	Merchant          string
	AccountSource     string
	ReferenceID       string
	CardMember        string
	SuggestedCategory string
	SourceCategory    string
}
