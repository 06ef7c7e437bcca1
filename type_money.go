package wishlist

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value together with the currency it was quoted
// in. Its zero value is a zero amount with no currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a float amount and a currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

func (m Money) Currency() string      { return m.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: mcur(m, n)} }
func (m Money) AsFloat() float64      { return m.value.InexactFloat64() }
func (m Money) Value() decimal.Decimal { return m.value }

// makes the "" currency totally weak.
func mcur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// In converts the money into the given display currency, using the fixed
// exchange-rate table. Converting into the money's own currency is the
// identity.
func (m Money) In(currency string) Money {
	if m.cur == currency {
		return m
	}
	return M(Convert(m.AsFloat(), m.cur, currency), currency)
}

// String renders the money in its own currency display convention.
func (m Money) String() string { return Format(m.AsFloat(), m.cur) }
