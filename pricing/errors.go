package pricing

import "fmt"

// EmptyCartError reports an order with no line items. Pricing is not
// defined for an empty cart.
type EmptyCartError struct{}

func (EmptyCartError) Error() string { return "cart is empty" }

// InvalidLineItemError reports a line item that fails validation. Index is
// the item's position in the cart.
type InvalidLineItemError struct {
	Index  int
	Reason string
}

func (e InvalidLineItemError) Error() string {
	return fmt.Sprintf("line item %d: %s", e.Index, e.Reason)
}

// DiscountError reports an unrecognized discount code. It is non-fatal:
// PriceOrder still returns a fully priced order with zero discount, and the
// caller decides whether the unknown code blocks checkout.
type DiscountError struct {
	Code string
}

func (e DiscountError) Error() string {
	return fmt.Sprintf("unknown discount code %q", e.Code)
}
