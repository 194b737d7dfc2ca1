package services

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	currencySymbol = "R$"
	areaUnit       = "m²"
)

// FormatCurrency renders a BRL amount the pt-BR way: "R$ 1.234,56".
// Negative amounts are prefixed with "-".
func FormatCurrency(v decimal.Decimal) string {
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	whole := v.Truncate(0)
	cents := v.Sub(whole).Mul(hundred).IntPart()
	grouped := strings.ReplaceAll(humanize.Comma(whole.IntPart()), ",", ".")
	return fmt.Sprintf("%s%s %s,%02d", sign, currencySymbol, grouped, cents)
}

// ParseCurrency reads back a value produced by FormatCurrency. A bare
// pt-BR number without the symbol is accepted too.
func ParseCurrency(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	neg := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, currencySymbol)
	raw = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '.':
			return -1
		case ',':
			return '.'
		}
		return r
	}, raw)

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse currency %q: %w", s, err)
	}
	if neg {
		v = v.Neg()
	}
	return v, nil
}

// FormatArea renders an area with two decimals: "55.00m²".
func FormatArea(v decimal.Decimal) string {
	return v.StringFixed(2) + areaUnit
}

// ParseArea reads back a value produced by FormatArea.
func ParseArea(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), areaUnit))
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse area %q: %w", s, err)
	}
	return v, nil
}
