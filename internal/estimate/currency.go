package estimate

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCurrency = errors.New("unknown currency")

type Currency string

const (
	GBP Currency = "GBP"
	USD Currency = "USD"
)

// GBPToUSD is the fixed exchange rate. USD amounts are GBP amounts multiplied by it.
const GBPToUSD = 1.27

// ParseCurrency accepts "GBP" or "USD" in any case.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case GBP:
		return GBP, nil
	case USD:
		return USD, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
}

func (c Currency) Symbol() string {
	if c == USD {
		return "$"
	}
	return "£"
}

// Format renders amount with the currency symbol and two decimals.
func (c Currency) Format(amount float64) string {
	return fmt.Sprintf("%s%.2f", c.Symbol(), amount)
}

// Convert moves amount between GBP and USD using GBPToUSD only.
func Convert(amount float64, from, to Currency) float64 {
	switch {
	case from == to:
		return amount
	case from == GBP && to == USD:
		return amount * GBPToUSD
	case from == USD && to == GBP:
		return amount / GBPToUSD
	}
	return amount
}
