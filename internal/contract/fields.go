package contract

import "CT-MUSICAL/internal/models"

// Options offered by the form for the payment method and the installment
// cadence.
var (
	PaymentMethods = []string{"PIX", "TED/DOC", "Dinheiro", "Boleto", "Cartão", "Outro"}
	Cadences       = []string{"Mensal", "Semanal", "Outro"}
)

var commonPaymentFields = []string{
	models.KeyPaymentTotal,
	models.KeyPaymentForm,
	models.KeyPaymentMethod,
}

var planFields = map[models.PaymentForm][]string{
	models.PaymentLumpSum: {
		models.KeyPaymentSingleDate,
	},
	models.PaymentDeposit: {
		models.KeyPaymentDepositPercent,
		models.KeyPaymentDepositDate,
		models.KeyPaymentRemainderDate,
	},
	models.PaymentInstallments: {
		models.KeyPaymentInstallments,
		models.KeyPaymentFirstInstallment,
		models.KeyPaymentCadence,
	},
}

// PlanFields returns the fields shown only for form. "Outro" and unknown
// forms have none.
func PlanFields(form models.PaymentForm) []string {
	return append([]string(nil), planFields[form]...)
}

// RequiredFields returns every payment field visible for form: the common
// ones followed by the plan-specific ones.
func RequiredFields(form models.PaymentForm) []string {
	out := make([]string, 0, len(commonPaymentFields)+len(planFields[form]))
	out = append(out, commonPaymentFields...)
	return append(out, planFields[form]...)
}

// HiddenFields returns the plan fields of every other form. Values under
// these keys are ignored by Assemble.
func HiddenFields(form models.PaymentForm) []string {
	var out []string
	for _, f := range models.PaymentForms {
		if f == form {
			continue
		}
		out = append(out, planFields[f]...)
	}
	return out
}

// IsPaymentForm reports whether s names one of the offered payment forms.
func IsPaymentForm(s string) bool {
	for _, f := range models.PaymentForms {
		if string(f) == s {
			return true
		}
	}
	return false
}
