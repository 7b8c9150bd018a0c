// Package types implements special types for the budget API.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money is an amount together with its display representation.
type Money struct {
	Amount    decimal.Decimal `json:"amount" example:"600000"`         // The exact amount
	Formatted string          `json:"formatted" example:"$600,000.00"` // The amount formatted for display
}

// MoneyFormatter formats amounts in one currency for one language.
type MoneyFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewMoneyFormatter returns a formatter for the ISO 4217 currency code.
func NewMoneyFormatter(code string, tag language.Tag) (MoneyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return MoneyFormatter{}, fmt.Errorf("invalid currency code '%s': %w", code, err)
	}

	return MoneyFormatter{
		symbol:  strings.TrimSpace(message.NewPrinter(tag).Sprintf("%v", currency.NarrowSymbol(unit))),
		printer: message.NewPrinter(tag),
	}, nil
}

// Format returns the amount with currency symbol, grouping and two
// fraction digits. Negative amounts are prefixed with a minus sign.
func (f MoneyFormatter) Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	value, _ := d.Abs().Round(2).Float64()
	return sign + f.symbol + f.printer.Sprint(number.Decimal(value, number.Scale(2)))
}

// Money wraps the amount into a Money value.
func (f MoneyFormatter) Money(d decimal.Decimal) Money {
	return Money{
		Amount:    d,
		Formatted: f.Format(d),
	}
}
