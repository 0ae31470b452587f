package catalog

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders whole-currency amounts with the locale's grouping
// separator and no fractional digits, e.g. 280000 -> "€280.000" for tr-TR.
type PriceFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewPriceFormatter(locale, currencyCode string) (*PriceFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("geçersiz locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("geçersiz para birimi %q: %w", currencyCode, err)
	}

	p := message.NewPrinter(tag)
	return &PriceFormatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

func (f *PriceFormatter) Format(price int64) string {
	return f.symbol + f.printer.Sprintf("%d", price)
}
