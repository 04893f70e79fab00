package dial

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatValue renders v with exactly one fractional digit and no grouping.
// Values that cannot be shown produce an empty string.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
		number.NoSeparator(),
	))
}

// FormatLabel renders a whole-number tick label.
func FormatLabel(v int) string {
	return printer.Sprint(number.Decimal(v, number.NoSeparator()))
}
