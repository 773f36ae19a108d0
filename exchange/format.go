package exchange

import (
	"go-currency-converter"
	"math"
	"strconv"
	"strings"
)

// Convert multiplies amount by rate. No rounding is applied.
func Convert(amount converter.Amount, rate converter.Rate) converter.Amount {
	return converter.Amount(float64(amount) * float64(rate))
}

// Format renders a conversion as "<amount> <from>=<result> <to>", e.g. "10.0 USD=10.0 USD".
func Format(e converter.Exchanged) string {
	var b strings.Builder
	b.WriteString(formatFloat(float64(e.Original)))
	b.WriteByte(' ')
	b.WriteString(e.From.String())
	b.WriteByte('=')
	b.WriteString(formatFloat(float64(e.Amount)))
	b.WriteByte(' ')
	b.WriteString(e.To.String())
	return b.String()
}

// ParseAmount reads a user-entered amount. Surrounding whitespace is ignored.
func ParseAmount(s string) (converter.Amount, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &converter.AmountError{Input: s, Err: err}
	}
	return converter.Amount(f), nil
}

// formatFloat prints the shortest representation that round-trips. Integral
// values keep a trailing ".0" and magnitudes outside [1e-4, 1e16) switch to
// exponent form.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
