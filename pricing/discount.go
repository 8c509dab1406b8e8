package pricing

import "github.com/shopspring/decimal"

// DiscountKind selects how a discount value is applied.
type DiscountKind int

const (
	// DiscountPercent applies Value as a percentage of the pre-discount
	// total.
	DiscountPercent DiscountKind = iota
	// DiscountFixed subtracts Value directly.
	DiscountFixed
)

// Discount is one entry of a discount table.
type Discount struct {
	Kind  DiscountKind
	Value decimal.Decimal
}

// DiscountTable maps discount codes to their discounts. Loaded from
// configuration at startup and read-only afterwards.
type DiscountTable map[string]Discount

var hundred = decimal.NewFromInt(100)

// amountFor resolves code against base, the pre-discount order total. An
// empty code means no discount was requested. An unknown code yields zero
// and a DiscountError. The returned amount is capped at base so the grand
// total can never go negative.
func (t DiscountTable) amountFor(code string, base decimal.Decimal) (decimal.Decimal, error) {
	if code == "" {
		return decimal.Zero, nil
	}
	d, ok := t[code]
	if !ok {
		return decimal.Zero, DiscountError{Code: code}
	}
	var amount decimal.Decimal
	switch d.Kind {
	case DiscountPercent:
		amount = base.Mul(d.Value).Div(hundred)
	case DiscountFixed:
		amount = d.Value
	}
	if amount.GreaterThan(base) {
		amount = base
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return amount, nil
}
