package configurator

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Prices render in Flemish locale conventions, whole euros only.
var pricePrinter = message.NewPrinter(language.MustParse("nl-BE"))

// FormatPrice renders cents as a whole-euro amount, e.g. "€ 1.234".
// Rounding happens only here; the engine itself keeps fractional cents.
func FormatPrice(cents float64) string {
	euros := math.Round(cents / 100)
	return pricePrinter.Sprintf("€ %v", number.Decimal(euros, number.MaxFractionDigits(0)))
}

// FormatPriceRange renders the "starting from" label, e.g. "Vanaf € 1.234".
// The max bound is accepted but not part of the current label format; the
// wizard only advertises the lower bound.
func FormatPriceRange(minCents float64, _ float64) string {
	return "Vanaf " + FormatPrice(minCents)
}
