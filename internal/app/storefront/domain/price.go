package domain

import "github.com/shopspring/decimal"

// Price is the value shown next to a catalog item. The upstream API sends
// either a numeric amount or an already-formatted string ("₺1.325,00");
// formatted strings pass through display unchanged.
type Price struct {
	amount    decimal.Decimal
	formatted string
	numeric   bool
}

// PriceFromAmount builds a numeric price in TRY.
func PriceFromAmount(amount decimal.Decimal) Price {
	return Price{amount: amount, numeric: true}
}

// PriceFromInt builds a numeric price from a whole-lira amount.
func PriceFromInt(amount int64) Price {
	return PriceFromAmount(decimal.NewFromInt(amount))
}

// PriceFromString builds a pass-through price from upstream formatted text.
func PriceFromString(s string) Price {
	return Price{formatted: s}
}

// IsNumeric reports whether the price carries a numeric amount.
func (p Price) IsNumeric() bool {
	return p.numeric
}

// Amount returns the numeric amount; zero for pass-through prices.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Display renders the price for the storefront: numeric amounts get the
// trailing lira sign ("1325₺"), formatted strings are returned as-is.
func (p Price) Display() string {
	if !p.numeric {
		return p.formatted
	}
	return p.amount.String() + "₺"
}

// Equal compares two prices by their displayed value, which is the identity
// the storefront cares about (a struck-through original price equal to the
// current one is hidden).
func (p Price) Equal(other Price) bool {
	if p.numeric && other.numeric {
		return p.amount.Equal(other.amount)
	}
	return p.Display() == other.Display()
}
