package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatDate renders a date the way the quotation prints it, e.g.
// "2nd Jan 2026".
func FormatDate(t time.Time) string {
	day := t.Day()
	return fmt.Sprintf("%d%s %s %d", day, ordinalSuffix(day), t.Format("Jan"), t.Year())
}

func ordinalSuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatINR renders a rupee amount with Indian digit grouping: the last
// three digits together, then groups of two, e.g. "₹12,34,567". Fractional
// paise are dropped; quotation amounts are whole rupees.
func FormatINR(amount decimal.Decimal) string {
	s := amount.Truncate(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2 + 2)
	if neg {
		b.WriteString("-₹")
	} else {
		b.WriteString("₹")
	}

	if len(s) <= 3 {
		b.WriteString(s)
		return b.String()
	}

	head := s[:len(s)-3]
	rem := len(head) % 2
	if rem == 0 {
		rem = 2
	}
	b.WriteString(head[:rem])
	for i := rem; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(s[len(s)-3:])
	return b.String()
}
