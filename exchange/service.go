package exchange

import (
	"context"
	"fmt"
	"go-currency-converter"
	"go-currency-converter/xrates"
)

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error)
}

// service converts with live rates
type service struct {
	// rates looks up the live exchange rate for each conversion.
	rates xrates.Service
}

// NewService constructs a valid Service
func NewService(s xrates.Service) Service {
	return &service{
		rates: s,
	}
}

// Convert computes a conversion from one currency to another with the current exchange rate.
// Both currencies must be in converter.Currencies. Identical currencies are looked up like any other pair.
func (s *service) Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error) {
	if !from.Supported() {
		return converter.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, converter.ErrUnsupportedCurrency)
	}
	if !to.Supported() {
		return converter.Exchanged{}, fmt.Errorf("convert to [%v]: %w", to, converter.ErrUnsupportedCurrency)
	}

	rate, err := s.rates.Rate(ctx, from, to)
	if err != nil {
		return converter.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, err)
	}

	result := converter.Exchanged{
		From:     from,
		To:       to,
		Original: amount,
		Rate:     rate,
		Amount:   Convert(amount, rate),
	}

	return result, nil
}
