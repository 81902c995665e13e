package types

import "github.com/shopspring/decimal"

// MoneyPrecision is the number of decimal places amounts are stored with
const MoneyPrecision int32 = 2

// MoneyEpsilon is the smallest representable amount; anything smaller in
// magnitude is treated as zero.
var MoneyEpsilon = decimal.New(1, -MoneyPrecision)

// RoundMoney rounds an amount to the cent
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPrecision)
}

// NormalizeMoney rounds to the cent and snaps sub-cent magnitudes to zero
func NormalizeMoney(d decimal.Decimal) decimal.Decimal {
	rounded := RoundMoney(d)
	if d.Abs().LessThan(MoneyEpsilon) || rounded.IsZero() {
		return decimal.Zero
	}
	return rounded
}

// WithinTolerance reports whether a and b differ by at most one cent
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(MoneyEpsilon)
}
