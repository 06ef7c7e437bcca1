package wishlist

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the common unit the fixed exchange rates are expressed in.
const BaseCurrency = money.USD

// DefaultCurrency is the display currency used until the user picks one.
const DefaultCurrency = money.INR

// exchangeRates holds the value of one base-currency unit in each supported
// currency. The table is static: rates are approximations good enough for a
// wishlist, not a trading book.
var exchangeRates = map[string]decimal.Decimal{
	money.USD: decimal.NewFromInt(1),
	money.EUR: decimal.NewFromFloat(0.92),
	money.INR: decimal.NewFromFloat(83.12),
}

// Currencies returns the supported currency codes, in display order.
func Currencies() []string {
	return []string{money.INR, money.USD, money.EUR}
}

// IsSupportedCurrency reports whether code is one of the supported currencies.
func IsSupportedCurrency(code string) bool {
	_, ok := exchangeRates[code]
	return ok
}

// ParseCurrency validates a currency code.
func ParseCurrency(code string) (string, error) {
	if !IsSupportedCurrency(code) {
		return "", fmt.Errorf("unsupported currency %q, want one of %v", code, Currencies())
	}
	return code, nil
}

// Convert converts an amount from one currency to another using the fixed
// exchange-rate table, going through the base currency, and rounds the result
// half-up at the cent boundary.
//
// Malformed input never fails: a non-finite amount or an unknown currency
// code converts to 0. When both currencies are equal the amount is returned
// unchanged.
func Convert(amount float64, fromCurrency, toCurrency string) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	if fromCurrency == toCurrency {
		return amount
	}
	from, ok := exchangeRates[fromCurrency]
	if !ok {
		return 0
	}
	to, ok := exchangeRates[toCurrency]
	if !ok {
		return 0
	}
	inBase := decimal.NewFromFloat(amount).Div(from)
	return inBase.Mul(to).Round(2).InexactFloat64()
}

// formatter returns the display formatter for a currency code.
func formatter(code string) *money.Formatter {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(BaseCurrency)
	}
	return cur.Formatter()
}

// Format renders an amount with exactly two decimal places, digit grouping,
// and the currency symbol placed per that currency's convention, e.g.
// "$1,234.50", "€99.00", "₹ 1,23,456.78". Rupee amounts follow the en-IN
// convention: lakh/crore grouping and a space after the symbol.
//
// A non-finite amount formats as zero.
func Format(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	d := decimal.NewFromFloat(amount).Round(2)
	if currency == money.INR {
		return formatINR(d)
	}
	// go-money formatters work on minor units.
	return formatter(currency).Format(d.Shift(2).IntPart())
}

// formatINR renders a rupee amount with en-IN digit grouping: the last three
// integer digits form a group, then pairs ("1,23,456.78"). go-money only
// groups by threes, so the grouping is done here.
func formatINR(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	grouped := intPart
	if len(intPart) > 3 {
		grouped = "," + intPart[len(intPart)-3:]
		rest := intPart[:len(intPart)-3]
		for len(rest) > 2 {
			grouped = "," + rest[len(rest)-2:] + grouped
			rest = rest[:len(rest)-2]
		}
		grouped = rest + grouped
	}
	return money.GetCurrency(money.INR).Grapheme + " " + sign + grouped + "." + frac
}
