package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolvePriceCanonical(t *testing.T) {
	price, err := ResolvePrice(dec("299"), decimal.Zero, "USD", Rates{})
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("299")), "got %s", price)
}

func TestResolvePriceDiscountAndConversion(t *testing.T) {
	// $299 with HALF50 at EUR 0.92: $149.50 * 0.92 = EUR 137.54
	rates := Rates{"EUR": dec("0.92")}
	price, err := ResolvePrice(dec("299"), dec("50"), "EUR", rates)
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("137.54")), "got %s", price)
}

func TestResolvePriceFullDiscountIsZeroInAnyCurrency(t *testing.T) {
	rates := Rates{"EUR": dec("0.92"), "INR": dec("83.2"), "JPY": dec("147.1")}
	for _, currency := range []string{"USD", "EUR", "INR", "JPY"} {
		price, err := ResolvePrice(dec("599"), dec("100"), currency, rates)
		require.NoError(t, err)
		assert.True(t, price.IsZero(), "%s: got %s", currency, price)
		assert.True(t, IsFree(price))
	}
}

func TestResolvePriceMonotonicInDiscount(t *testing.T) {
	rates := Rates{"EUR": dec("0.92")}
	prev := dec("1000000")
	for d := 0; d <= 100; d += 5 {
		price, err := ResolvePrice(dec("299"), decimal.NewFromInt(int64(d)), "EUR", rates)
		require.NoError(t, err)
		assert.True(t, price.LessThanOrEqual(prev), "discount %d: %s > %s", d, price, prev)
		prev = price
	}
}

func TestResolvePriceLinearInRate(t *testing.T) {
	single, err := ResolvePrice(dec("100"), decimal.Zero, "EUR", Rates{"EUR": dec("0.5")})
	require.NoError(t, err)
	double, err := ResolvePrice(dec("100"), decimal.Zero, "EUR", Rates{"EUR": dec("1.0")})
	require.NoError(t, err)
	assert.True(t, double.Equal(single.Mul(dec("2"))))
}

func TestResolvePriceZeroDecimalCurrencyRounding(t *testing.T) {
	price, err := ResolvePrice(dec("299"), decimal.Zero, "JPY", Rates{"JPY": dec("147.13")})
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("43992")), "got %s", price)
}

func TestResolvePriceUnsupportedCurrency(t *testing.T) {
	_, err := ResolvePrice(dec("299"), decimal.Zero, "EUR", Rates{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)

	_, err = ResolvePrice(dec("299"), decimal.Zero, "XXX", Rates{"XXX": decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(13754), MinorUnits(dec("137.54"), "EUR"))
	assert.Equal(t, int64(43992), MinorUnits(dec("43992"), "JPY"))
	assert.Equal(t, int64(29900), MinorUnits(dec("299"), "USD"))
}

func TestIsFree(t *testing.T) {
	assert.True(t, IsFree(decimal.Zero))
	assert.True(t, IsFree(dec("-0.01")))
	assert.False(t, IsFree(dec("0.01")))
}
