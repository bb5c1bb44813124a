package repository

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericConversion(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "integer", value: "10"},
		{name: "two decimals", value: "12.50"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.value)

			n := toNumeric(d)
			assert.True(t, n.Valid)
			assert.True(t, d.Equal(toDecimal(n)), "got %s, want %s", toDecimal(n), d)
		})
	}
}

func TestToDecimalNull(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(toDecimal(pgtype.Numeric{})))
	assert.True(t, decimal.Zero.Equal(toDecimal(pgtype.Numeric{Valid: true})))
	assert.True(t, decimal.RequireFromString("15.00").Equal(toDecimal(pgtype.Numeric{Int: big.NewInt(1500), Exp: -2, Valid: true})))
}
