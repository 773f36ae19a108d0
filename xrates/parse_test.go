package xrates

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-converter"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestParseRate(t *testing.T) {
	rate, err := ParseRate(openFixture(t, "calculator.html"))

	require.NoError(t, err)
	assert.Equal(t, converter.Rate(0.92123456), rate)
}

func TestParseRate_FirstElementWins(t *testing.T) {
	rate, err := ParseRate(openFixture(t, "multiple.html"))

	require.NoError(t, err)
	assert.Equal(t, converter.Rate(83.25), rate)
}

func TestParseRate_Missing(t *testing.T) {
	_, err := ParseRate(openFixture(t, "missing.html"))

	assert.True(t, errors.Is(err, converter.ErrRateNotFound))
}

func TestParseRate_Drifted(t *testing.T) {
	_, err := ParseRate(openFixture(t, "drifted.html"))

	var fe *formatError
	assert.True(t, errors.As(err, &fe))
}

func TestParseRate_Empty(t *testing.T) {
	_, err := ParseRate(strings.NewReader(""))

	assert.True(t, errors.Is(err, converter.ErrRateNotFound))
}

func TestParseRateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    converter.Rate
		wantErr bool
	}{
		{"plain", "0.92 EUR", 0.92, false},
		{"integral", "1.00 USD", 1.0, false},
		{"large", "151.234567 JPY", 151.234567, false},
		{"non-breaking space", "0.92\u00a0EUR", 0.92, false},
		{"multibyte code", "0.92 €UR", 0.92, false},
		{"suffix only", " EUR", 0, true},
		{"empty", "", 0, true},
		{"not a number", "abc EUR", 0, true},
		{"missing suffix", "0.92", 0, true},
		{"zero", "0.00 EUR", 0, true},
		{"negative", "-1.5 EUR", 0, true},
		{"infinite", "inf EUR", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRateText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRateText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
