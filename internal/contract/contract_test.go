package contract

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CT-MUSICAL/internal/clauses"
	"CT-MUSICAL/internal/models"
)

var drafted = time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)

func sampleValues() models.FormValues {
	return models.FormValues{
		models.KeyContractorName:         "Clube Recreativo Azul",
		models.KeyContractorDocument:     "12.345.678/0001-90",
		models.KeyContractorStreet:       "Rua das Flores",
		models.KeyContractorNumber:       "100",
		models.KeyContractorNeighborhood: "Centro",
		models.KeyContractorCity:         "Recife",
		models.KeyContractorState:        "PE",
		models.KeyContractorPostalCode:   "50000-000",
		models.KeyContractedKind:         "Pessoa Física",
		models.KeyContractedName:         "Banda Azul",
		models.KeyContractedDocument:     "123.456.789-00",
		models.KeyEventName:              "Baile de Gala",
		models.KeyEventAct:               "Banda Azul",
		models.KeyEventDate:              "15/03/2025",
		models.KeyEventStart:             "23:00",
		models.KeyEventEnd:               "01:00",
		models.KeyVenueName:              "Clube X",
		models.KeyVenueStreet:            "Rua A",
		models.KeyVenueNumber:            "10",
		models.KeyVenueNeighborhood:      "Boa Vista",
		models.KeyVenueCity:              "Recife",
		models.KeyVenueState:             "PE",
		models.KeyVenuePostalCode:        "50000-001",
		models.KeyPaymentTotal:           " 2.000,00 ",
		models.KeyPaymentForm:            string(models.PaymentDeposit),
		models.KeyPaymentMethod:          "PIX",
		models.KeyPaymentDepositPercent:  "30",
		models.KeyPaymentDepositDate:     "01/02/2025",
		models.KeyPaymentRemainderDate:   "15/03/2025",
		models.KeyBeneficiaryPixKey:      "banda@azul.com",
		models.KeyBeneficiaryPixType:     "E-mail",
	}
}

func TestBuildFromValues(t *testing.T) {
	ctx := BuildFromValues(sampleValues(), models.Choices{
		Sound:                       models.SoundBand,
		Catering:                    models.CateringNo,
		BeneficiarySameAsContracted: true,
	}, drafted)

	assert.Equal(t, "Clube Recreativo Azul", ctx[ContractorName])
	assert.Equal(t, "Rua das Flores, 100  - Centro, Recife/PE - CEP 50000-000", ctx[ContractorAddress])
	assert.Equal(t, "15 de Março de 2025", ctx[EventDate])
	assert.Equal(t, "23:00h às 01:00h", ctx[EventSchedule])
	assert.Equal(t, "Clube X, Rua A, 10 - Boa Vista, Recife/PE - CEP 50000-001", ctx[EventVenue])
	assert.Equal(t, "02:00 (duas horas)", ctx[EventDuration])
	assert.Equal(t, "22:00 (vinte e duas horas)", ctx[EventArrival])
	assert.Equal(t, "2.000,00", ctx[PaymentTotal])
	assert.Equal(t, "dois mil reais", ctx[PaymentTotalWords])
	assert.Equal(t,
		"O pagamento será realizado em duas etapas: sinal de 30%, equivalente a R$ 600,00 (seiscentos reais), "+
			"até a data 01 de Fevereiro de 2025 e o valor restante até a data 15 de Março de 2025, "+
			"totalizando R$ 2.000,00 (dois mil reais), via PIX.",
		ctx[PaymentFormDescription])
	assert.Equal(t, "O valor total de R$ 2.000,00 será pago na forma 'Sinal + restante', por meio de PIX.", ctx[PaymentDescription])
	assert.Equal(t, "Banda Azul", ctx[BeneficiaryName])
	assert.Equal(t, "123.456.789-00", ctx[BeneficiaryDocument])
	assert.Equal(t, "banda@azul.com (E-mail)", ctx[BeneficiaryPix])
	assert.Equal(t, "", ctx[BeneficiaryBankDetails])
	assert.Equal(t, clauses.SoundByBand, ctx[SoundClause])
	assert.Equal(t, "", ctx[CateringClause])
	assert.Equal(t, "06 de Janeiro de 2025", ctx[DraftDate])
}

func TestAssembleCoversVocabulary(t *testing.T) {
	ctx := BuildFromValues(nil, models.Choices{}, drafted)

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, Keys, keys)
	assert.Equal(t, clauses.SoundByClient, ctx[SoundClause])
}

func TestAssembleIsDeterministic(t *testing.T) {
	values := sampleValues()
	choices := models.Choices{Sound: models.SoundClient, Catering: models.CateringYes}

	first := BuildFromValues(values, choices, drafted)
	second := BuildFromValues(values.Clone(), choices, drafted)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("context changed between runs (-first +second):\n%s", diff)
	}
}

func TestAssemblerUsesClock(t *testing.T) {
	a := &Assembler{Now: func() time.Time { return drafted }}
	ctx := a.Build(nil, models.Choices{})
	assert.Equal(t, "06 de Janeiro de 2025", ctx[DraftDate])

	var nilAssembler *Assembler
	assert.NotEmpty(t, nilAssembler.Build(nil, models.Choices{})[DraftDate])
}

func TestPaymentSentence(t *testing.T) {
	cases := []struct {
		name    string
		payment models.Payment
		want    string
	}{
		{
			name:    "lump sum",
			payment: models.Payment{Total: "1.500,00", Method: "PIX", Plan: models.LumpSum{Date: "10/03/2025"}},
			want:    "O pagamento será efetuado à vista, no valor total de R$ 1.500,00 (mil e quinhentos reais), na data de 10 de Março de 2025, via PIX.",
		},
		{
			name:    "deposit without percent",
			payment: models.Payment{Total: "1.500,00", Method: "Boleto", Plan: models.DepositPlan{DepositDate: "01/02/2025", RemainderDate: "bad"}},
			want:    "O pagamento será realizado em duas etapas: sinal de % até a data 01 de Fevereiro de 2025 e o valor restante até a data bad, totalizando R$ 1.500,00 (mil e quinhentos reais), via Boleto.",
		},
		{
			name:    "installments",
			payment: models.Payment{Total: "3.000,00", Method: "Cartão", Plan: models.InstallmentPlan{Count: "3", FirstDate: "05/04/2025", Cadence: "Mensal"}},
			want:    "O pagamento será efetuado em 3 parcelas mensal, a primeira com vencimento em 05 de Abril de 2025, totalizando R$ 3.000,00 (três mil reais), via Cartão.",
		},
		{
			name:    "negotiated",
			payment: models.Payment{Total: "abc", Method: "Outro", Plan: models.NegotiatedPlan{}},
			want:    "O pagamento será realizado no valor total de R$ abc (), conforme forma negociada entre as partes, via Outro.",
		},
		{
			name:    "no plan",
			payment: models.Payment{Total: "100", Method: "PIX"},
			want:    "O pagamento será realizado no valor total de R$ 100 (cem reais), conforme forma negociada entre as partes, via PIX.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := Assemble(models.Contract{Payment: tc.payment}, drafted)
			assert.Equal(t, tc.want, ctx[PaymentFormDescription])
		})
	}
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t, []string{
		models.KeyPaymentTotal, models.KeyPaymentForm, models.KeyPaymentMethod,
		models.KeyPaymentSingleDate,
	}, RequiredFields(models.PaymentLumpSum))

	assert.Equal(t, []string{models.KeyPaymentTotal, models.KeyPaymentForm, models.KeyPaymentMethod},
		RequiredFields(models.PaymentOther))
	assert.Empty(t, PlanFields("Qualquer"))

	deposit := RequiredFields(models.PaymentDeposit)
	assert.Contains(t, deposit, models.KeyPaymentDepositPercent)
	assert.NotContains(t, deposit, models.KeyPaymentCadence)

	hidden := HiddenFields(models.PaymentDeposit)
	assert.Contains(t, hidden, models.KeyPaymentSingleDate)
	assert.Contains(t, hidden, models.KeyPaymentCadence)
	assert.NotContains(t, hidden, models.KeyPaymentDepositDate)

	// callers may not alter the shared table
	fields := PlanFields(models.PaymentLumpSum)
	fields[0] = "x"
	assert.Equal(t, models.KeyPaymentSingleDate, PlanFields(models.PaymentLumpSum)[0])

	assert.True(t, IsPaymentForm("Parcelado"))
	assert.False(t, IsPaymentForm("parcelado"))
}

func TestSummary(t *testing.T) {
	c := models.FromValues(sampleValues(), models.Choices{Sound: models.SoundBand, Catering: models.CateringYes})
	s := Summary(c)

	require.True(t, strings.HasPrefix(s, "CONTRATO DE PRESTAÇÃO DE SERVIÇOS MUSICAIS\n"))
	assert.Contains(t, s, "  Nome/Razão Social: Clube Recreativo Azul\n")
	assert.Contains(t, s, "  Horário: 23:00h às 01:00h\n")
	assert.Contains(t, s, "  A banda será responsável por levar e operar o sistema de som necessário.\n")
	assert.Contains(t, s, "  Haverá fornecimento de alimentação/consumação ao staff.\n")
	assert.Contains(t, s, "  Valor total: R$ 2.000,00\n")
	assert.Contains(t, s, "  Chave PIX: banda@azul.com (E-mail)\n")
}

func TestUnknown(t *testing.T) {
	assert.True(t, IsKnown(DraftDate))
	assert.Equal(t, []string{"FOO"}, Unknown([]string{EventDate, "FOO", SoundClause}))
	assert.Nil(t, Unknown(Keys))
}

func TestMissing(t *testing.T) {
	ctx := BuildFromValues(sampleValues(), models.Choices{}, drafted)
	missing := ctx.Missing()
	assert.Contains(t, missing, BeneficiaryBankDetails)
	assert.Contains(t, missing, CateringClause)
	assert.NotContains(t, missing, DraftDate)
}
