package exchange

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"go-currency-converter"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		amount converter.Amount
		rate   converter.Rate
	}{
		{100, 0.92},
		{10, 1},
		{0.1, 0.2},
		{-3.5, 83.25},
		{1e300, 1e10},
		{0, 151.2},
	}
	for _, tt := range tests {
		assert.Equal(t, converter.Amount(float64(tt.amount)*float64(tt.rate)), Convert(tt.amount, tt.rate))
	}
	assert.Equal(t, converter.Amount(92.0), Convert(100, 0.92))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   converter.Exchanged
		want string
	}{
		{
			"same currency",
			converter.Exchanged{From: "USD", To: "USD", Original: 10, Rate: 1, Amount: 10},
			"10.0 USD=10.0 USD",
		},
		{
			"eur example",
			converter.Exchanged{From: "USD", To: "EUR", Original: 100, Rate: 0.92, Amount: 92},
			"100.0 USD=92.0 EUR",
		},
		{
			"fraction kept unrounded",
			converter.Exchanged{From: "USD", To: "INR", Original: 2.5, Rate: 83.123456, Amount: 207.80864},
			"2.5 USD=207.80864 INR",
		},
		{
			"small",
			converter.Exchanged{From: "JPY", To: "GBP", Original: 0.0001, Amount: 0.00001},
			"0.0001 JPY=1e-05 GBP",
		},
		{
			"huge",
			converter.Exchanged{From: "USD", To: "NPR", Original: 1e16, Amount: 1.5e18},
			"1e+16 USD=1.5e+18 NPR",
		},
		{
			"zero",
			converter.Exchanged{From: "CHF", To: "CNY", Original: 0, Amount: 0},
			"0.0 CHF=0.0 CNY",
		},
		{
			"non-finite",
			converter.Exchanged{From: "CAD", To: "AUD", Original: converter.Amount(math.Inf(1)), Amount: converter.Amount(math.NaN())},
			"inf CAD=nan AUD",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount(" 12.5 ")
	assert.NoError(t, err)
	assert.Equal(t, converter.Amount(12.5), got)

	for _, in := range []string{"", "   ", "ten", "1,5", "12.5 USD"} {
		_, err := ParseAmount(in)
		var ae *converter.AmountError
		assert.True(t, errors.As(err, &ae), "%q", in)
	}
}
