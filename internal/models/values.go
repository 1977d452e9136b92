package models

import "strings"

// Raw form field keys.
const (
	KeyContractorKind          = "contratante_tipo"
	KeyContractorName          = "contratante_nome_razao"
	KeyContractorDocument      = "contratante_cpf_cnpj"
	KeyContractorPhone         = "contratante_telefone"
	KeyContractorEmail         = "contratante_email"
	KeyContractorStreet        = "contratante_endereco_logradouro"
	KeyContractorNumber        = "contratante_endereco_numero"
	KeyContractorComplement    = "contratante_endereco_complemento"
	KeyContractorNeighborhood  = "contratante_endereco_bairro"
	KeyContractorCity          = "contratante_endereco_cidade"
	KeyContractorState         = "contratante_endereco_uf"
	KeyContractorPostalCode    = "contratante_endereco_cep"
	KeyContractorRepName       = "contratante_representante_nome"
	KeyContractorRepDocument   = "contratante_representante_cpf"
	KeyContractedKind          = "contratado_tipo"
	KeyContractedName          = "contratado_nome_razao"
	KeyContractedDocument      = "contratado_cpf_cnpj"
	KeyContractedPhone         = "contratado_telefone"
	KeyContractedEmail         = "contratado_email"
	KeyContractedStreet        = "contratado_endereco_logradouro"
	KeyContractedNumber        = "contratado_endereco_numero"
	KeyContractedComplement    = "contratado_endereco_complemento"
	KeyContractedNeighborhood  = "contratado_endereco_bairro"
	KeyContractedCity          = "contratado_endereco_cidade"
	KeyContractedState         = "contratado_endereco_uf"
	KeyContractedPostalCode    = "contratado_endereco_cep"
	KeyContractedRepName       = "contratado_representante_nome"
	KeyContractedRepDocument   = "contratado_representante_cpf"
	KeyEventName               = "evento_nome"
	KeyEventAct                = "evento_atracao_musical"
	KeyEventDate               = "evento_data"
	KeyEventStart              = "evento_horario_inicio"
	KeyEventEnd                = "evento_horario_fim_previsto"
	KeyVenueName               = "evento_local_nome"
	KeyVenueStreet             = "evento_local_logradouro"
	KeyVenueNumber             = "evento_local_numero"
	KeyVenueComplement         = "evento_local_complemento"
	KeyVenueNeighborhood       = "evento_local_bairro"
	KeyVenueCity               = "evento_local_cidade"
	KeyVenueState              = "evento_local_uf"
	KeyVenuePostalCode         = "evento_local_cep"
	KeyPaymentTotal            = "pagamento_valor_total"
	KeyPaymentForm             = "pagamento_forma"
	KeyPaymentMethod           = "pagamento_meio"
	KeyPaymentSingleDate       = "pagamento_data_unica"
	KeyPaymentDepositPercent   = "pagamento_sinal_percentual"
	KeyPaymentDepositDate      = "pagamento_sinal_data"
	KeyPaymentRemainderDate    = "pagamento_restante_data"
	KeyPaymentInstallments     = "pagamento_num_parcelas"
	KeyPaymentFirstInstallment = "pagamento_primeira_parcela_data"
	KeyPaymentCadence          = "pagamento_periodicidade"
	KeyBeneficiaryName         = "favorecido_nome"
	KeyBeneficiaryDocument     = "favorecido_cpf_cnpj"
	KeyBeneficiaryBankName     = "favorecido_banco_nome"
	KeyBeneficiaryBankCode     = "favorecido_banco_codigo"
	KeyBeneficiaryAgency       = "favorecido_agencia"
	KeyBeneficiaryAccount      = "favorecido_conta"
	KeyBeneficiaryAccountType  = "favorecido_tipo_conta"
	KeyBeneficiaryPixKey       = "favorecido_pix_chave"
	KeyBeneficiaryPixType      = "favorecido_pix_tipo"
)

// FormValues is the flat field-key to text mapping sent by the form. It is
// stored verbatim in snapshots.
type FormValues map[string]string

// Get returns the value for key, or "" when absent.
func (v FormValues) Get(key string) string {
	if v == nil {
		return ""
	}
	return v[key]
}

// Clone returns an independent copy so a request never shares its map.
func (v FormValues) Clone() FormValues {
	out := make(FormValues, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// FromValues builds the structured contract from raw values and choices.
func FromValues(values FormValues, choices Choices) Contract {
	c := Contract{
		Contractor: Party{
			Kind:     values.Get(KeyContractorKind),
			Name:     values.Get(KeyContractorName),
			Document: values.Get(KeyContractorDocument),
			Phone:    values.Get(KeyContractorPhone),
			Email:    values.Get(KeyContractorEmail),
			Address: Address{
				Street:       values.Get(KeyContractorStreet),
				Number:       values.Get(KeyContractorNumber),
				Complement:   values.Get(KeyContractorComplement),
				Neighborhood: values.Get(KeyContractorNeighborhood),
				City:         values.Get(KeyContractorCity),
				State:        values.Get(KeyContractorState),
				PostalCode:   values.Get(KeyContractorPostalCode),
			},
			RepresentativeName:     values.Get(KeyContractorRepName),
			RepresentativeDocument: values.Get(KeyContractorRepDocument),
		},
		Contracted: Party{
			Kind:     values.Get(KeyContractedKind),
			Name:     values.Get(KeyContractedName),
			Document: values.Get(KeyContractedDocument),
			Phone:    values.Get(KeyContractedPhone),
			Email:    values.Get(KeyContractedEmail),
			Address: Address{
				Street:       values.Get(KeyContractedStreet),
				Number:       values.Get(KeyContractedNumber),
				Complement:   values.Get(KeyContractedComplement),
				Neighborhood: values.Get(KeyContractedNeighborhood),
				City:         values.Get(KeyContractedCity),
				State:        values.Get(KeyContractedState),
				PostalCode:   values.Get(KeyContractedPostalCode),
			},
			RepresentativeName:     values.Get(KeyContractedRepName),
			RepresentativeDocument: values.Get(KeyContractedRepDocument),
		},
		Event: Event{
			Name:  values.Get(KeyEventName),
			Act:   values.Get(KeyEventAct),
			Date:  values.Get(KeyEventDate),
			Start: values.Get(KeyEventStart),
			End:   values.Get(KeyEventEnd),
			Venue: Venue{
				Name: values.Get(KeyVenueName),
				Address: Address{
					Street:       values.Get(KeyVenueStreet),
					Number:       values.Get(KeyVenueNumber),
					Complement:   values.Get(KeyVenueComplement),
					Neighborhood: values.Get(KeyVenueNeighborhood),
					City:         values.Get(KeyVenueCity),
					State:        values.Get(KeyVenueState),
					PostalCode:   values.Get(KeyVenuePostalCode),
				},
			},
		},
		Payment: Payment{
			Total:  strings.TrimSpace(values.Get(KeyPaymentTotal)),
			Method: values.Get(KeyPaymentMethod),
			Label:  values.Get(KeyPaymentForm),
			Plan:   PlanFromValues(values),
		},
		Beneficiary: Beneficiary{
			Name:        values.Get(KeyBeneficiaryName),
			Document:    values.Get(KeyBeneficiaryDocument),
			BankName:    values.Get(KeyBeneficiaryBankName),
			BankCode:    values.Get(KeyBeneficiaryBankCode),
			Agency:      values.Get(KeyBeneficiaryAgency),
			Account:     values.Get(KeyBeneficiaryAccount),
			AccountType: values.Get(KeyBeneficiaryAccountType),
			PixKey:      values.Get(KeyBeneficiaryPixKey),
			PixType:     values.Get(KeyBeneficiaryPixType),
		},
		Sound:    choices.Sound,
		Catering: choices.Catering,
	}

	if choices.BeneficiarySameAsContracted {
		c.Beneficiary.Name = c.Contracted.Name
		c.Beneficiary.Document = c.Contracted.Document
	}
	return c
}

// PlanFromValues picks the payment plan variant named by pagamento_forma and
// reads only the fields that variant uses.
func PlanFromValues(values FormValues) PaymentPlan {
	switch PaymentForm(values.Get(KeyPaymentForm)) {
	case PaymentLumpSum:
		return LumpSum{Date: values.Get(KeyPaymentSingleDate)}
	case PaymentDeposit:
		return DepositPlan{
			Percent:       values.Get(KeyPaymentDepositPercent),
			DepositDate:   values.Get(KeyPaymentDepositDate),
			RemainderDate: values.Get(KeyPaymentRemainderDate),
		}
	case PaymentInstallments:
		return InstallmentPlan{
			Count:     values.Get(KeyPaymentInstallments),
			FirstDate: values.Get(KeyPaymentFirstInstallment),
			Cadence:   values.Get(KeyPaymentCadence),
		}
	default:
		return NegotiatedPlan{}
	}
}
