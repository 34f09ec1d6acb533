package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naratorn/table-order-app/utils"
)

func TestFormatBaht(t *testing.T) {
	assert.Equal(t, "฿0.00", utils.FormatBaht(0))
	assert.Equal(t, "฿60.00", utils.FormatBaht(60))
	assert.Equal(t, "฿1,250.50", utils.FormatBaht(1250.5))
	assert.Equal(t, "฿1,000,000.00", utils.FormatBaht(1000000))
	assert.Equal(t, "-฿120.00", utils.FormatBaht(-120))
}
