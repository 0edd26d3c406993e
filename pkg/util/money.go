package util

import (
	"fmt"
	"strings"
)

// FormatMoney formats an amount with thousands separators and two decimals,
// e.g. 10497.83 -> "10,497.83".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatQuantity formats an integer count with thousands separators,
// e.g. 5000 -> "5,000".
func FormatQuantity(n int) string {
	s := FormatMoney(float64(n))
	return strings.TrimSuffix(s, ".00")
}
