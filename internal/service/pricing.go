package service

import (
	"github.com/shopspring/decimal"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
)

// Rates maps a currency code to its exchange rate relative to the canonical
// currency.
type Rates map[string]decimal.Decimal

var oneHundred = decimal.NewFromInt(100)

// ResolvePrice computes the final payable amount: the base price less the
// percentage discount, converted to the display currency and rounded per that
// currency's convention. The canonical currency always resolves, even when
// the rate table omits it.
func ResolvePrice(base, discountPercent decimal.Decimal, currency string, rates Rates) (decimal.Decimal, error) {
	rate, ok := rates[currency]
	if currency == config.CanonicalCurrency {
		rate, ok = decimal.NewFromInt(1), true
	}
	if !ok || rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrUnsupportedCurrency
	}

	discounted := base.Mul(oneHundred.Sub(discountPercent)).Div(oneHundred)
	if discounted.LessThan(decimal.Zero) {
		discounted = decimal.Zero
	}

	return roundForCurrency(discounted.Mul(rate), currency), nil
}

// IsFree reports whether a resolved price must take the no-payment path.
// Gateways are not guaranteed to accept zero-amount intents, so this branch
// happens before dispatch, never inside a gateway.
func IsFree(price decimal.Decimal) bool {
	return price.LessThanOrEqual(decimal.Zero)
}

// MinorUnits converts a resolved price into the integer amount gateways
// expect: whole units for zero-decimal currencies, hundredths otherwise.
func MinorUnits(price decimal.Decimal, currency string) int64 {
	if config.ZeroDecimalCurrencies[currency] {
		return price.Round(0).IntPart()
	}
	return price.Mul(oneHundred).Round(0).IntPart()
}

func roundForCurrency(amount decimal.Decimal, currency string) decimal.Decimal {
	if config.ZeroDecimalCurrencies[currency] {
		return amount.Round(0)
	}
	return amount.Round(2)
}
