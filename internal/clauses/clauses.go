// Package clauses holds the boilerplate blocks chosen by categorical answers.
package clauses

import "CT-MUSICAL/internal/models"

const (
	SoundByBand = "A banda CONTRATADA será responsável por levar, montar e operar o sistema de som " +
		"necessário para a execução do show, incluindo mesa de som, amplificação, microfones " +
		"e demais equipamentos de áudio, em condições adequadas ao ambiente do evento."

	SoundByClient = "O CONTRATANTE será responsável por fornecer, montar e operar o sistema de som " +
		"necessário para a execução do show, incluindo mesa de som, amplificação, microfones " +
		"e demais equipamentos de áudio, em condições adequadas ao ambiente do evento."

	// Catering carries a fixed reimbursement ceiling of R$ 500,00.
	Catering = "Cláusula 5.6. Fornecer consumação de alimentos e bebidas ao staff da banda no buffet " +
		"presente do evento, caso haja buffet contratado. Em caso de comercialização de alimentos " +
		"e bebidas no local do evento, as despesas decorrentes da consumação do(a) CONTRATADO(A) " +
		"durante a apresentação artística correrão por conta do(a) CONTRATANTE até o limite de " +
		"R$ 500,00 (quinhentos reais), caso esse seja ultrapassado as despesas serão de " +
		"responsabilidade do(a) CONTRATADO(A)."
)

// Sound returns the sound-equipment clause. Only "Banda" puts the band in
// charge; any other answer leaves it with the client.
func Sound(choice models.SoundResponsibility) string {
	if choice == models.SoundBand {
		return SoundByBand
	}
	return SoundByClient
}

// CateringClause returns the catering clause for "Sim" and "" otherwise, so
// the clause disappears from the document.
func CateringClause(choice models.Catering) string {
	if choice == models.CateringYes {
		return Catering
	}
	return ""
}
