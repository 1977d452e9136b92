package derive

import (
	"math"
	"strconv"
	"strings"

	"CT-MUSICAL/internal/spellout"
)

// DownPaymentResult is the deposit computed from the contract total.
type DownPaymentResult struct {
	Amount spellout.Amount
	// Text is the amount with the currency symbol, e.g. "R$ 600,00".
	Text string
	// Words is the spelled-out amount, e.g. "seiscentos reais".
	Words string
}

// ParsePercent reads a percentage that may use a comma as decimal separator.
func ParsePercent(text string) (float64, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%")), ",", ".")
	if clean == "" {
		return 0, false
	}
	p, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0, false
	}
	return p, true
}

// DownPayment computes total*percent/100 rounded to centavos. ok is false when
// either input cannot be read; callers then show only the raw percentage.
func DownPayment(total, percent string) (DownPaymentResult, bool) {
	amount, ok := spellout.ParseAmount(total)
	if !ok {
		return DownPaymentResult{}, false
	}
	p, ok := ParsePercent(percent)
	if !ok {
		return DownPaymentResult{}, false
	}

	deposit := spellout.Amount(math.Round(float64(amount) * p / 100))
	return DownPaymentResult{
		Amount: deposit,
		Text:   spellout.FormatCurrency(deposit),
		Words:  spellout.SpellAmount(deposit),
	}, true
}
