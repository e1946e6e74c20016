package ledgers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
		wantErr  bool
	}{
		{"two decimals", "10.00", "10", false},
		{"integer", "5", "5", false},
		{"fraction", "0.125", "0.125", false},
		{"surrounding space", " 3.5 ", "3.5", false},
		{"zero", "0", "", true},
		{"negative", "-1.00", "", true},
		{"not a number", "ten", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ValidateAmount(tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		asset    string
		expected string
	}{
		{"10", "NZD", "10.00 NZD"},
		{"10.5", "NZD", "10.50 NZD"},
		{"10.00", "USD", "10.00 USD"},
		{"0.125", "USD", "0.125 USD"},
		{"abc", "USD", "abc USD (invalid)"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.amount, tt.asset))
		})
	}
}
