// Package valueobject contains domain value objects for the reporting system.
package valueobject

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// monthKeyRegex matches the "YYYY-MM" report identifier.
var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonthKey reports whether key is a well-formed "YYYY-MM" month key.
func ValidMonthKey(key string) bool {
	return monthKeyRegex.MatchString(key)
}

// CurrentMonthKey returns the month key for the current UTC month.
func CurrentMonthKey() string {
	return time.Now().UTC().Format("2006-01")
}

// FormatMonthKey renders a month key for display, e.g. "2025-03" -> "Martie 2025".
// An unparseable key is returned unchanged.
func FormatMonthKey(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", romanianMonths[t.Month()-1], t.Year())
}

var romanianMonths = [12]string{
	"Ianuarie", "Februarie", "Martie", "Aprilie", "Mai", "Iunie",
	"Iulie", "August", "Septembrie", "Octombrie", "Noiembrie", "Decembrie",
}

// FormatRON renders an amount in Romanian lei with thousands separators,
// e.g. 16200 -> "16.200,00 RON".
func FormatRON(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	negative := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	formatted := strings.Join(groups, ".") + "," + fracPart + " RON"
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatPercent renders a ratio as a percentage with one decimal,
// e.g. 0.125 -> "12.5%".
func FormatPercent(ratio float64) string {
	return decimal.NewFromFloat(ratio).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		String() + "%"
}

// PercentChange returns the relative change from previous to current as a
// ratio, e.g. 100 -> 125 yields 0.25. A zero previous value yields 0 when
// current is also 0, and 1 (a full step up or down) otherwise, so charts
// never divide by zero.
func PercentChange(previous, current float64) float64 {
	prev := decimal.NewFromFloat(previous)
	cur := decimal.NewFromFloat(current)
	if prev.IsZero() {
		if cur.IsZero() {
			return 0
		}
		if cur.IsNegative() {
			return -1
		}
		return 1
	}
	return cur.Sub(prev).Div(prev.Abs()).InexactFloat64()
}
