package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportUSD(t *testing.T) {
	assert.Equal(t, "$15,480.50", reportUSD(d("15480.50")))
	assert.Equal(t, "$0.00", reportUSD(d("0")))
	assert.Equal(t, "$999.99", reportUSD(d("999.99")))
	assert.Equal(t, "-$1,234.00", reportUSD(d("-1234")))
}

func TestReportUSD_ExactAboveFloatPrecision(t *testing.T) {
	// 2^53+1 is not representable as a float64; the exact decimal must
	// survive formatting digit for digit.
	assert.Equal(t, "$9,007,199,254,740,993.12", reportUSD(d("9007199254740993.12")))
}

func TestReceiptUSD(t *testing.T) {
	assert.Equal(t, "$1234.50", receiptUSD(d("1234.5")))
	assert.Equal(t, "$0.00", receiptUSD(d("0")))
}
