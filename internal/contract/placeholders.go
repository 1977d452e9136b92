package contract

// Placeholder names understood by the contract template, written there as
// {{NAME}}.
const (
	ContractorName         = "CONTRATANTE_NOME"
	ContractorDocument     = "CONTRATANTE_CPF_CNPJ"
	ContractorAddress      = "CONTRATANTE_ENDERECO_COMPLETO"
	ContractorPhone        = "CONTRATANTE_TELEFONE"
	ContractorEmail        = "CONTRATANTE_EMAIL"
	ContractedKind         = "CONTRATADO_TIPO"
	ContractedName         = "CONTRATADO_NOME"
	ContractedDocument     = "CONTRATADO_CPF_CNPJ"
	ContractedPhone        = "CONTRATADO_TELEFONE"
	ContractedEmail        = "CONTRATADO_EMAIL"
	ContractedAddress      = "CONTRATADO_ENDERECO_COMPLETO"
	ContractedRepName      = "CONTRATADO_REPRESENTANTE_NOME"
	ContractedRepDocument  = "CONTRATADO_REPRESENTANTE_CPF"
	EventName              = "EVENTO_NOME"
	EventAct               = "ATRACAO_MUSICAL"
	EventDate              = "EVENTO_DATA"
	EventSchedule          = "EVENTO_HORARIO"
	EventVenue             = "EVENTO_LOCAL_COMPLETO"
	EventDuration          = "EVENTO_DURACAO"
	EventArrival           = "EVENTO_HORARIO_CHEGADA"
	PaymentTotal           = "PAGAMENTO_VALOR_TOTAL"
	PaymentTotalWords      = "PAGAMENTO_VALOR_TOTAL_EXTENSO"
	PaymentDescription     = "PAGAMENTO_DESCRICAO"
	PaymentFormDescription = "PAGAMENTO_FORMA_DESCRICAO"
	BeneficiaryName        = "FAVORECIDO_NOME"
	BeneficiaryDocument    = "FAVORECIDO_CPF_CNPJ"
	BeneficiaryPix         = "FAVORECIDO_PIX"
	BeneficiaryBankDetails = "FAVORECIDO_DADOS_BANCARIOS"
	SoundClause            = "SOM_CLAUSULA"
	CateringClause         = "ALIMENTACAO"
	DraftDate              = "DATA_CONTRATO"
)

// Keys is the closed placeholder vocabulary, in template order.
var Keys = []string{
	ContractorName, ContractorDocument, ContractorAddress, ContractorPhone, ContractorEmail,
	ContractedKind, ContractedName, ContractedDocument, ContractedPhone, ContractedEmail,
	ContractedAddress, ContractedRepName, ContractedRepDocument,
	EventName, EventAct, EventDate, EventSchedule, EventVenue, EventDuration, EventArrival,
	PaymentTotal, PaymentTotalWords, PaymentDescription, PaymentFormDescription,
	BeneficiaryName, BeneficiaryDocument, BeneficiaryPix, BeneficiaryBankDetails,
	SoundClause, CateringClause,
	DraftDate,
}

// IsKnown reports whether name belongs to the placeholder vocabulary.
func IsKnown(name string) bool {
	for _, k := range Keys {
		if k == name {
			return true
		}
	}
	return false
}

// Unknown filters names down to those outside the vocabulary.
func Unknown(names []string) []string {
	var out []string
	for _, n := range names {
		if !IsKnown(n) {
			out = append(out, n)
		}
	}
	return out
}
