package quote

import (
	"math"

	"quote_service/internal/domain/entities"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	hundred   = decimal.NewFromInt(100)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Totals are the derived monetary fields of a quote, in yen.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	TaxAmount   int64 `json:"tax_amount"`
	TotalAmount int64 `json:"total_amount"`
}

// ComputeTotals recomputes the totals from scratch. Tax is floored, never
// rounded: 999 yen at 10% is 99 yen of tax.
//
// Arithmetic is exact; ErrAmountOutOfRange is returned when a result does not
// fit in int64. Negative quantities or prices are not guarded here; Assemble
// rejects them.
func ComputeTotals(items []entities.QuoteItem, taxRate int64) (Totals, error) {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromInt(it.Quantity).Mul(decimal.NewFromInt(it.UnitPrice)))
	}
	tax := subtotal.Mul(decimal.NewFromInt(taxRate)).Div(hundred).Floor()
	total := subtotal.Add(tax)

	for _, v := range []decimal.Decimal{subtotal, tax, total} {
		if v.GreaterThan(maxAmount) || v.LessThan(minAmount) {
			return Totals{}, ErrAmountOutOfRange
		}
	}
	return Totals{
		Subtotal:    subtotal.IntPart(),
		TaxAmount:   tax.IntPart(),
		TotalAmount: total.IntPart(),
	}, nil
}

// FormatYen renders an amount like "¥1,234".
func FormatYen(amount int64) string {
	return money.New(amount, money.JPY).Display()
}
