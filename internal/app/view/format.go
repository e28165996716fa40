package view

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceFormatter formats amounts the way the storefront locale writes them,
// e.g. "12,50 €" for fr.
type PriceFormatter struct {
	tag language.Tag
}

func NewPriceFormatter(locale string) PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	return PriceFormatter{tag: tag}
}

// Format renders amount in the given ISO currency. Codes the currency table
// does not know fall back to "%.2f €".
func (f PriceFormatter) Format(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f €", amount)
	}
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%v %v", number.Decimal(amount, number.Scale(2)), currency.Symbol(unit))
}
