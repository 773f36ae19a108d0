package xrates

import (
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"go-currency-converter"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	// RateSelector matches the calculator result, e.g. `0.921234<span>56</span><span> EUR</span>`
	RateSelector = "span.ccOutputRslt"

	// suffixLen the trailing " EUR" after the number, in characters
	suffixLen = 4
)

// formatError the rate element exists but its text is not a usable rate
type formatError struct {
	text string
	err  error
}

func (e *formatError) Error() string {
	return fmt.Sprintf("bad rate text %q: %v", e.text, e.err)
}

func (e *formatError) Unwrap() error {
	return e.err
}

// ParseRate extracts the rate from a calculator page.
// Only the first element matching RateSelector is read.
func ParseRate(r io.Reader) (converter.Rate, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0, fmt.Errorf("reading html: %w", err)
	}

	sel := doc.Find(RateSelector).First()
	if sel.Length() == 0 {
		return 0, converter.ErrRateNotFound
	}
	return ParseRateText(sel.Text())
}

// ParseRateText converts the text of the rate element into a Rate by dropping
// the currency suffix. The page is assumed to always render exactly one space
// and a 3-letter code after the number.
func ParseRateText(text string) (converter.Rate, error) {
	runes := []rune(text)
	if len(runes) <= suffixLen {
		return 0, &formatError{text: text, err: fmt.Errorf("shorter than %d character suffix", suffixLen)}
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(string(runes[:len(runes)-suffixLen])), 64)
	if err != nil {
		return 0, &formatError{text: text, err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, &formatError{text: text, err: fmt.Errorf("rate %v is not positive", f)}
	}
	return converter.Rate(f), nil
}
