package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"19.995", "19.99"},
		{"19.999", "19.99"},
		{"20", "20.00"},
		{"5.1", "5.10"},
		{"0.999", "0.99"},
		{"0", "0.00"},
		{"1234.56", "1234.56"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		assert.Equal(t, tt.want, FormatPrice(d), "price %s", tt.in)
	}
}
