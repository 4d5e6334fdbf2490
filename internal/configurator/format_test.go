package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€ 1.234", FormatPrice(123400))
	assert.Equal(t, "€ 0", FormatPrice(0))
	assert.Equal(t, "€ 5", FormatPrice(500))
	assert.Equal(t, "€ 5.250", FormatPrice(525000))
	assert.Equal(t, "€ 1.234.568", FormatPrice(123456789))
}

// Fractional cents from unit scaling round at display time only.
func TestFormatPrice_RoundsFractionalCents(t *testing.T) {
	assert.Equal(t, "€ 12", FormatPrice(1249.9))
	assert.Equal(t, "€ 13", FormatPrice(1250.1))
}

func TestFormatPriceRange(t *testing.T) {
	assert.Equal(t, "Vanaf € 5.000", FormatPriceRange(500000, 600000))
	assert.Equal(t, "Vanaf € 0", FormatPriceRange(0, 0))
}
