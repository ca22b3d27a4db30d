package cli

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$1,000,000.00", FormatCurrency(1000000))
	assert.Equal(t, "-$250.75", FormatCurrency(-250.75))
	// Rounding carries into the whole part.
	assert.Equal(t, "$2.00", FormatCurrency(1.999))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1.0921", FormatPrice(1.0921))
	assert.Equal(t, "149.31", FormatPrice(149.31))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "100", FormatSize(100))
	assert.Equal(t, "0.2000", FormatSize(0.2))
}

func TestFormatRiskReward(t *testing.T) {
	assert.Equal(t, "1:2.50", FormatRiskReward(2.5))
	assert.Equal(t, "n/a", FormatRiskReward(math.NaN()))
	assert.Equal(t, "n/a", FormatRiskReward(math.Inf(1)))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "very lo...", TruncateString("very long string", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, d.Local().Format("02-Jan-2006"), FormatDate(d))
}
