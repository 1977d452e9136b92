package spellout

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amount is a non-negative currency amount in centavos.
type Amount int64

// Reais returns the integer part of the amount.
func (a Amount) Reais() int64 { return int64(a) / 100 }

// Centavos returns the fractional part of the amount.
func (a Amount) Centavos() int64 { return int64(a) % 100 }

// Result is a rendered value together with whether the input was understood.
// When Parsed is false, Text holds the fallback (raw input or empty string).
type Result struct {
	Text   string
	Parsed bool
}

var brazil = message.NewPrinter(language.BrazilianPortuguese)

var amountCleaner = strings.NewReplacer(
	"R$", "",
	" ", "",
	"\u00a0", "",
	".", "",
	",", ".",
)

// maxCents keeps the float to int64 conversion exact.
const maxCents = 1 << 53

// ParseAmount reads a Brazilian-formatted currency string such as "2000",
// "2.000,00" or "R$ 2.000,50". Dots are thousands separators and the comma is
// the decimal separator.
func ParseAmount(text string) (Amount, bool) {
	clean := amountCleaner.Replace(text)
	if clean == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false
	}

	cents := math.Round(value * 100)
	if cents > maxCents {
		return 0, false
	}
	return Amount(cents), true
}

// FormatAmount renders the amount with Brazilian grouping, e.g. "1.234,56".
func FormatAmount(a Amount) string {
	return brazil.Sprint(number.Decimal(float64(a)/100, number.Scale(2)))
}

// FormatCurrency renders the amount prefixed with the currency symbol.
func FormatCurrency(a Amount) string {
	return "R$ " + FormatAmount(a)
}

// SpellAmount spells a parsed amount, e.g. "dois mil reais e cinquenta centavos".
func SpellAmount(a Amount) string {
	reais := strings.ReplaceAll(Cardinal(a.Reais()), " e zero", "")
	if a.Centavos() == 0 {
		return reais + " reais"
	}
	return reais + " reais e " + Cardinal(a.Centavos()) + " centavos"
}

// AmountWords spells a currency string. Unparsable input yields an empty,
// unparsed result.
func AmountWords(text string) Result {
	a, ok := ParseAmount(text)
	if !ok {
		return Result{}
	}
	return Result{Text: SpellAmount(a), Parsed: true}
}

// AmountToWords spells a currency string, or returns "" when it cannot be read.
func AmountToWords(text string) string {
	return AmountWords(text).Text
}
