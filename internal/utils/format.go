package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// englishPrinter groups thousands the way cost figures are usually read
// (1,234,567.89).
var englishPrinter = message.NewPrinter(language.English)

// FormatNumber renders a float with thousands separators and two decimals.
func FormatNumber(num float64) string {
	return FormatNumberDigits(num, 2)
}

// FormatNumberDigits renders a float with thousands separators and the given
// number of decimal places.
func FormatNumberDigits(num float64, digits int) string {
	return englishPrinter.Sprintf("%."+strconv.Itoa(digits)+"f", num)
}
