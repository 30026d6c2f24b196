package repository

import "github.com/shopspring/decimal"

// FormatPrice fixes a decimal price at two fraction digits, truncating the
// excess rather than rounding it up. The store has no arbitrary-precision
// decimal type, so precision is fixed here at the boundary and the value is
// persisted as a fixed-point string.
func FormatPrice(d decimal.Decimal) string {
	return d.Truncate(2).StringFixed(2)
}
