package builder

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// approxCharWidth is the average glyph width in mm at 9pt Helvetica.
const approxCharWidth = 1.8

func formatInt(n int64) string {
	return groupThousands(strconv.FormatInt(n, 10))
}

// formatMoney renders d with two decimals and thousands separators, e.g. $1,234.50.
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + groupThousands(intPart) + "." + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	if len(digits) <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func truncate(s string, width float64) string {
	limit := int(width/approxCharWidth) - 1
	r := []rune(s)
	if limit < 4 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
