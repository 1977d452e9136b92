package contract

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"CT-MUSICAL/internal/derive"
	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/spellout"
)

// PaymentSentence renders the payment clause for the plan carried by p.
// totalWords is the spelled-out total, passed in so it is computed once.
func PaymentSentence(p models.Payment, totalWords string) string {
	switch plan := p.Plan.(type) {
	case models.LumpSum:
		return fmt.Sprintf(
			"O pagamento será efetuado à vista, no valor total de R$ %s (%s), na data de %s, via %s.",
			p.Total, totalWords, spellout.DateToWords(plan.Date), p.Method,
		)

	case models.DepositPlan:
		return fmt.Sprintf(
			"O pagamento será realizado em duas etapas: sinal de %s até a data %s e o valor restante até a data %s, totalizando R$ %s (%s), via %s.",
			depositInfo(p.Total, plan.Percent),
			spellout.DateToWords(plan.DepositDate),
			spellout.DateToWords(plan.RemainderDate),
			p.Total, totalWords, p.Method,
		)

	case models.InstallmentPlan:
		return fmt.Sprintf(
			"O pagamento será efetuado em %s parcelas %s, a primeira com vencimento em %s, totalizando R$ %s (%s), via %s.",
			plan.Count, lower(plan.Cadence), spellout.DateToWords(plan.FirstDate),
			p.Total, totalWords, p.Method,
		)

	default:
		return fmt.Sprintf(
			"O pagamento será realizado no valor total de R$ %s (%s), conforme forma negociada entre as partes, via %s.",
			p.Total, totalWords, p.Method,
		)
	}
}

// depositInfo is "<P>%" or, when the deposit can be computed,
// "<P>%, equivalente a R$ <A> (<words>),".
func depositInfo(total, percent string) string {
	info := percent + "%"
	if dp, ok := derive.DownPayment(total, percent); ok {
		info = fmt.Sprintf("%s%%, equivalente a %s (%s),", percent, dp.Text, dp.Words)
	}
	return info
}

// LegacyPaymentDescription is the short one-line payment summary kept for
// older templates.
func LegacyPaymentDescription(p models.Payment) string {
	return fmt.Sprintf("O valor total de R$ %s será pago na forma '%s', por meio de %s.", p.Total, p.Label, p.Method)
}

// lower builds a Caser per call; Casers keep state and are not safe for
// concurrent use.
func lower(s string) string {
	return cases.Lower(language.BrazilianPortuguese).String(s)
}
