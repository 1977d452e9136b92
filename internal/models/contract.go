package models

// SoundResponsibility names who brings the sound system.
type SoundResponsibility string

const (
	SoundBand   SoundResponsibility = "Banda"
	SoundClient SoundResponsibility = "Contratante"
)

// Catering tells whether the catering clause is included.
type Catering string

const (
	CateringYes Catering = "Sim"
	CateringNo  Catering = "Não"
)

// PaymentForm is the payment plan chosen on the form.
type PaymentForm string

const (
	PaymentLumpSum      PaymentForm = "À vista"
	PaymentDeposit      PaymentForm = "Sinal + restante"
	PaymentInstallments PaymentForm = "Parcelado"
	PaymentOther        PaymentForm = "Outro"
)

// PaymentForms lists the payment forms offered by the form, in display order.
var PaymentForms = []PaymentForm{PaymentLumpSum, PaymentDeposit, PaymentInstallments, PaymentOther}

// Choices are the categorical answers collected next to the raw values. The
// payment form itself travels inside the raw values.
type Choices struct {
	Sound                       SoundResponsibility `json:"som"`
	Catering                    Catering            `json:"alimentacao"`
	BeneficiarySameAsContracted bool                `json:"favorecido_igual_contratado"`
}

// Address is a postal address as typed on the form. Empty string means absent.
type Address struct {
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
	PostalCode   string `json:"cep"`
}

// Party is either side of the contract.
type Party struct {
	Kind                   string  `json:"tipo"`
	Name                   string  `json:"nome_razao"`
	Document               string  `json:"cpf_cnpj"`
	Phone                  string  `json:"telefone"`
	Email                  string  `json:"email"`
	Address                Address `json:"endereco"`
	RepresentativeName     string  `json:"representante_nome"`
	RepresentativeDocument string  `json:"representante_cpf"`
}

type Venue struct {
	Name    string  `json:"nome"`
	Address Address `json:"endereco"`
}

type Event struct {
	Name  string `json:"nome"`
	Act   string `json:"atracao_musical"`
	Date  string `json:"data"`
	Start string `json:"horario_inicio"`
	End   string `json:"horario_fim_previsto"`
	Venue Venue  `json:"local"`
}

// PaymentPlan is one of LumpSum, DepositPlan, InstallmentPlan or
// NegotiatedPlan. Each variant carries only the fields its sentence needs.
type PaymentPlan interface {
	Form() PaymentForm
}

type LumpSum struct {
	Date string
}

type DepositPlan struct {
	Percent       string
	DepositDate   string
	RemainderDate string
}

type InstallmentPlan struct {
	Count     string
	FirstDate string
	Cadence   string
}

// NegotiatedPlan covers "Outro" and any unrecognised form.
type NegotiatedPlan struct{}

func (LumpSum) Form() PaymentForm         { return PaymentLumpSum }
func (DepositPlan) Form() PaymentForm     { return PaymentDeposit }
func (InstallmentPlan) Form() PaymentForm { return PaymentInstallments }
func (NegotiatedPlan) Form() PaymentForm  { return PaymentOther }

type Payment struct {
	Total  string
	Method string
	// Label is the form value as typed, kept for the legacy description.
	Label string
	Plan  PaymentPlan
}

// Beneficiary receives the payment; it may differ from the contracted party.
type Beneficiary struct {
	Name        string
	Document    string
	BankName    string
	BankCode    string
	Agency      string
	Account     string
	AccountType string
	PixKey      string
	PixType     string
}

// Contract is the structured view of one filled form.
type Contract struct {
	Contractor  Party
	Contracted  Party
	Event       Event
	Payment     Payment
	Beneficiary Beneficiary
	Sound       SoundResponsibility
	Catering    Catering
}
