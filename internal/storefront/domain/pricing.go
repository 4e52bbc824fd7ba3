package domain

import "github.com/shopspring/decimal"

var (
	// FreeShippingThreshold is the subtotal from which shipping is waived.
	FreeShippingThreshold = decimal.NewFromInt(100)
	// FlatShipping is charged below FreeShippingThreshold.
	FlatShipping = decimal.RequireFromString("5.00")
)

// Quote is the priced breakdown of a set of line items.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// FreeShipping reports whether the quote carries no shipping charge.
func (q Quote) FreeShipping() bool {
	return q.Shipping.IsZero()
}

func PriceQuote(subtotal decimal.Decimal) Quote {
	shipping := FlatShipping
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// LineTotal is price times quantity.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// FormatPrice renders an amount the way the storefront displays it.
func FormatPrice(amount decimal.Decimal) string {
	return "RM" + amount.StringFixed(2)
}
