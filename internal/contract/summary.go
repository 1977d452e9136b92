package contract

import (
	"fmt"
	"strings"

	"CT-MUSICAL/internal/models"
)

// Summary renders the plain-text preview shown before a contract is
// generated. It echoes raw values and never spells anything out.
func Summary(c models.Contract) string {
	var b strings.Builder

	b.WriteString("CONTRATO DE PRESTAÇÃO DE SERVIÇOS MUSICAIS\n")
	b.WriteString(strings.Repeat("-", 60) + "\n\n")

	writeParty(&b, "CONTRATANTE", c.Contractor)
	writeParty(&b, "CONTRATADO", c.Contracted)

	v := c.Event.Venue
	b.WriteString("EVENTO:\n")
	fmt.Fprintf(&b, "  Nome do evento: %s\n", c.Event.Name)
	fmt.Fprintf(&b, "  Data: %s\n", c.Event.Date)
	fmt.Fprintf(&b, "  Horário: %sh às %sh\n", c.Event.Start, c.Event.End)
	fmt.Fprintf(&b, "  Local: %s, %s, %s - %s, %s/%s - CEP: %s\n\n",
		v.Name, v.Address.Street, v.Address.Number, v.Address.Neighborhood,
		v.Address.City, v.Address.State, v.Address.PostalCode)

	b.WriteString("RESPONSABILIDADE PELO SOM:\n")
	if c.Sound == models.SoundBand {
		b.WriteString("  A banda será responsável por levar e operar o sistema de som necessário.\n\n")
	} else {
		b.WriteString("  O CONTRATANTE será responsável pelo sistema de som necessário.\n\n")
	}

	b.WriteString("ALIMENTAÇÃO:\n")
	if c.Catering == models.CateringYes {
		b.WriteString("  Haverá fornecimento de alimentação/consumação ao staff.\n\n")
	} else {
		b.WriteString("  Não haverá fornecimento de alimentação.\n\n")
	}

	b.WriteString("PAGAMENTO:\n")
	fmt.Fprintf(&b, "  Valor total: R$ %s\n", c.Payment.Total)
	fmt.Fprintf(&b, "  Forma: %s\n", c.Payment.Label)
	fmt.Fprintf(&b, "  Meio: %s\n\n", c.Payment.Method)

	b.WriteString("FAVORECIDO:\n")
	fmt.Fprintf(&b, "  Nome: %s\n", c.Beneficiary.Name)
	fmt.Fprintf(&b, "  CPF/CNPJ: %s\n", c.Beneficiary.Document)
	fmt.Fprintf(&b, "  Chave PIX: %s (%s)\n\n", c.Beneficiary.PixKey, c.Beneficiary.PixType)

	b.WriteString("(Resumo prévio: o contrato completo é gerado em POST /api/v1/contracts.)\n")
	return b.String()
}

func writeParty(b *strings.Builder, title string, p models.Party) {
	a := p.Address
	fmt.Fprintf(b, "%s:\n", title)
	fmt.Fprintf(b, "  Nome/Razão Social: %s\n", p.Name)
	fmt.Fprintf(b, "  CPF/CNPJ: %s\n", p.Document)
	fmt.Fprintf(b, "  Endereço: %s, %s - %s, %s/%s - CEP: %s\n",
		a.Street, a.Number, a.Neighborhood, a.City, a.State, a.PostalCode)
	fmt.Fprintf(b, "  Telefone: %s\n", p.Phone)
	fmt.Fprintf(b, "  E-mail: %s\n\n", p.Email)
}
