package converter

import (
	"strings"
)

// Currency a currency code
type Currency string

// Amount a monetary amount, entered by the user or produced by a conversion
type Amount float64

// Rate an exchange rate: units of the target currency per one unit of the source
type Rate float64

// Exchanged result of a single conversion
type Exchanged struct {
	From     Currency
	To       Currency
	Original Amount
	Rate     Rate
	Amount   Amount
}

// Currencies the closed list of currencies offered for conversion, in display order.
var Currencies = []Currency{"USD", "EUR", "INR", "NPR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY"}

// ParseCurrency normalises user input into a Currency. It does not check membership.
func ParseCurrency(s string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(s)))
}

// Supported reports whether c is one of Currencies
func (c Currency) Supported() bool {
	for _, s := range Currencies {
		if s == c {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
