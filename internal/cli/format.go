package cli

import (
	"fmt"
	"math"
	"time"
)

// FormatCurrency formats an amount in the account currency with thousands
// separators.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	frac := int64(math.Round((amount - float64(whole)) * 100))
	if frac == 100 {
		whole++
		frac = 0
	}

	result := fmt.Sprintf("$%s.%02d", groupThousands(whole), frac)
	if negative {
		result = "-" + result
	}
	return result
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// FormatPrice formats a price with more precision for small values.
func FormatPrice(price float64) string {
	if math.Abs(price) >= 10 {
		return fmt.Sprintf("%.2f", price)
	}
	return fmt.Sprintf("%.4f", price)
}

// FormatSize formats a position size, trimming to a sensible precision.
func FormatSize(size float64) string {
	if size == math.Trunc(size) {
		return fmt.Sprintf("%.0f", size)
	}
	return fmt.Sprintf("%.4f", size)
}

// FormatDate formats a date.
func FormatDate(t time.Time) string {
	return t.Local().Format("02-Jan-2006")
}

// FormatTime formats a clock time.
func FormatTime(t time.Time) string {
	return t.Local().Format("15:04:05")
}

// FormatDateTime formats a full timestamp.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("02-Jan-2006 15:04:05")
}

// FormatRiskReward formats a risk-reward ratio, guarding the unguarded
// ratio the sizing engine hands back.
func FormatRiskReward(rr float64) string {
	if math.IsNaN(rr) || math.IsInf(rr, 0) {
		return "n/a"
	}
	return fmt.Sprintf("1:%.2f", rr)
}

// TruncateString shortens a string to maxLen with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
