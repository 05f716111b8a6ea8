package analytics

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatNumber abbreviates large values: 1500 -> "1.5K",
// 2300000 -> "2.3M". Smaller values are printed as is.
func FormatNumber(v float64) string {
	switch {
	case v >= 1_000_000:
		return strconv.FormatFloat(v/1_000_000, 'f', 1, 64) + "M"
	case v >= 1_000:
		return strconv.FormatFloat(v/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// FormatChartValue labels a chart axis. Revenue is always shown in
// thousands of dollars.
func FormatChartValue(m Metric, v float64) string {
	if m == MetricRevenue {
		return "$" + strconv.FormatFloat(v/1_000, 'f', 1, 64) + "K"
	}
	return FormatNumber(v)
}

// FormatPercent renders a signed percentage with one decimal: "+3.2%".
// The sign follows v, so a small decline reads "-0.0%".
func FormatPercent(v float64) string {
	abs := decimalFromFloat(v).Abs().StringFixed(1)
	if v < 0 && !math.IsInf(v, 0) {
		return "-" + abs + "%"
	}
	return "+" + abs + "%"
}

// FormatCurrency renders v as US dollars, e.g. "$1,234.50".
func FormatCurrency(v float64) string {
	cur := money.GetCurrency(money.USD)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := decimalFromFloat(v).Mul(factor).Round(0)
	return money.New(minor.IntPart(), money.USD).Display()
}

// decimalFromFloat maps NaN and infinities to zero; decimal.NewFromFloat
// panics on them.
func decimalFromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
