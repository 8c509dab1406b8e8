// Package pricing computes order totals for furniture rentals. It is
// side-effect free: the clock and invoice number source are injected, and
// nothing here touches storage or the network.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// deliveryLeadDays is added to the issue date when the customer did not
// pick a delivery date.
const deliveryLeadDays = 3

// TenureOption is one rental duration a product offers. A LineItem copies
// the selected option's price at checkout time, so later catalog edits
// cannot change a placed order.
type TenureOption struct {
	Months       int
	MonthlyPrice decimal.Decimal
}

// LineItem is one cart entry with its tenure selection already resolved.
type LineItem struct {
	ProductID        string
	Name             string
	UnitMonthlyPrice decimal.Decimal
	Quantity         int
	TenureMonths     int
}

// Total is the item's monthly contribution: unit price times quantity.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitMonthlyPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// FeeConfig carries the process-wide fee knobs. It is loaded once and
// never mutated while orders are in flight.
type FeeConfig struct {
	DepositMonths      int
	TransportationFee  decimal.Decimal
	AdvanceTokenAmount decimal.Decimal
}

// DefaultFees returns the production fee schedule.
func DefaultFees() FeeConfig {
	return FeeConfig{
		DepositMonths:      2,
		TransportationFee:  decimal.NewFromInt(750),
		AdvanceTokenAmount: decimal.NewFromInt(1000),
	}
}

// Order is the immutable result of pricing a cart.
type Order struct {
	LineItems         []LineItem
	MonthlySubtotal   decimal.Decimal
	DepositTotal      decimal.Decimal
	TransportationFee decimal.Decimal
	Discount          decimal.Decimal
	GrandTotal        decimal.Decimal
	InvoiceNumber     string
	IssueDate         time.Time
	DeliveryDate      time.Time
}

// Engine prices carts. One engine serves any number of concurrent orders;
// it holds only read-only state.
type Engine struct {
	now       func() time.Time
	invoices  InvoiceSource
	discounts DiscountTable
}

// NewEngine builds a pricing engine. A nil clock falls back to time.Now.
func NewEngine(clock func() time.Time, invoices InvoiceSource, discounts DiscountTable) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{now: clock, invoices: invoices, discounts: discounts}
}

// PriceOrder prices the cart and mints an invoice number.
//
// The deposit is DepositMonths times the monthly subtotal, so it always
// tracks the tenure the customer most recently selected. The grand total is
// subtotal plus deposit plus transportation fee minus discount, clamped at
// zero.
//
// An unknown discount code does not abort pricing: the order comes back
// fully priced with zero discount alongside a DiscountError, and the caller
// decides whether to block checkout. Every other non-nil error means no
// usable order was produced.
func (e *Engine) PriceOrder(items []LineItem, fees FeeConfig, discountCode string) (Order, error) {
	if len(items) == 0 {
		return Order{}, EmptyCartError{}
	}
	for i, li := range items {
		if li.Quantity < 1 {
			return Order{}, InvalidLineItemError{Index: i, Reason: "quantity must be at least 1"}
		}
		if li.UnitMonthlyPrice.IsNegative() {
			return Order{}, InvalidLineItemError{Index: i, Reason: "unit price must not be negative"}
		}
		if li.TenureMonths < 1 {
			return Order{}, InvalidLineItemError{Index: i, Reason: "tenure must be at least 1 month"}
		}
	}

	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.Total())
	}
	deposit := subtotal.Mul(decimal.NewFromInt(int64(fees.DepositMonths)))
	base := subtotal.Add(deposit).Add(fees.TransportationFee)

	discount, discountErr := e.discounts.amountFor(discountCode, base)

	grand := base.Sub(discount)
	if grand.IsNegative() {
		grand = decimal.Zero
	}

	issued := e.now()
	order := Order{
		LineItems:         append([]LineItem(nil), items...),
		MonthlySubtotal:   subtotal,
		DepositTotal:      deposit,
		TransportationFee: fees.TransportationFee,
		Discount:          discount,
		GrandTotal:        grand,
		InvoiceNumber:     e.invoices.Next(),
		IssueDate:         issued,
		DeliveryDate:      issued.AddDate(0, 0, deliveryLeadDays),
	}
	return order, discountErr
}
