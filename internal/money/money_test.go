package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/tally/internal/money"
)

func TestEqual(t *testing.T) {
	d := decimal.RequireFromString

	assert.True(t, money.Equal(d("100.00"), d("100.00")))
	assert.True(t, money.Equal(d("100.004"), d("100.00")))
	assert.True(t, money.Equal(d("100.005"), d("100.00")))
	assert.False(t, money.Equal(d("100.006"), d("100.00")))
	assert.False(t, money.Equal(d("100"), d("99")))
}

func TestPositive(t *testing.T) {
	assert.True(t, money.Positive(decimal.RequireFromString("0.01")))
	assert.False(t, money.Positive(decimal.Zero))
	assert.False(t, money.Positive(decimal.RequireFromString("-1")))
}

func TestStorable(t *testing.T) {
	d := decimal.RequireFromString

	assert.True(t, money.Storable(d("10")))
	assert.True(t, money.Storable(d("10.5")))
	assert.True(t, money.Storable(d("10.50")))
	assert.True(t, money.Storable(d("10.500")))
	assert.False(t, money.Storable(d("1.004")))
	assert.False(t, money.Storable(d("0.004")))
}
