package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCurrency a currency code outside Currencies
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrRateNotFound the rate element is missing from the fetched page
	ErrRateNotFound = errors.New("rate not found in page")
)

// FetchErrorKind classifies why a rate could not be fetched
type FetchErrorKind string

const (
	KindNetwork FetchErrorKind = "network"
	KindStatus  FetchErrorKind = "status"
	KindParse   FetchErrorKind = "parse"
	KindFormat  FetchErrorKind = "format"
)

// FetchError a failure to retrieve or read a live exchange rate
type FetchError struct {
	Kind FetchErrorKind
	Op   string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchErrorKindOf returns the kind of the first FetchError in err's chain, or "" when there is none
func FetchErrorKindOf(err error) FetchErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// AmountError user input that is not a number
type AmountError struct {
	Input string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Input, e.Err)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}
