// Package contract turns a filled form into the placeholder context used to
// render the contract template.
package contract

import (
	"time"

	"CT-MUSICAL/internal/clauses"
	"CT-MUSICAL/internal/derive"
	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/spellout"
)

// Context maps placeholder names to display-ready text.
type Context map[string]string

// Assemble builds the full placeholder context. The result depends only on c
// and the drafting date.
func Assemble(c models.Contract, drafted time.Time) Context {
	duration, arrival := derive.DurationAndArrival(c.Event.Start, c.Event.End)
	totalWords := spellout.AmountToWords(c.Payment.Total)

	return Context{
		ContractorName:     c.Contractor.Name,
		ContractorDocument: c.Contractor.Document,
		ContractorAddress:  derive.ComposeAddress(c.Contractor.Address),
		ContractorPhone:    c.Contractor.Phone,
		ContractorEmail:    c.Contractor.Email,

		ContractedKind:        c.Contracted.Kind,
		ContractedName:        c.Contracted.Name,
		ContractedDocument:    c.Contracted.Document,
		ContractedPhone:       c.Contracted.Phone,
		ContractedEmail:       c.Contracted.Email,
		ContractedAddress:     derive.ComposeAddress(c.Contracted.Address),
		ContractedRepName:     c.Contracted.RepresentativeName,
		ContractedRepDocument: c.Contracted.RepresentativeDocument,

		EventName:     c.Event.Name,
		EventAct:      c.Event.Act,
		EventDate:     spellout.DateToWords(c.Event.Date),
		EventSchedule: derive.EventSchedule(c.Event.Start, c.Event.End),
		EventVenue:    derive.ComposeVenueAddress(c.Event.Venue),
		EventDuration: duration,
		EventArrival:  arrival,

		PaymentTotal:           c.Payment.Total,
		PaymentTotalWords:      totalWords,
		PaymentDescription:     LegacyPaymentDescription(c.Payment),
		PaymentFormDescription: PaymentSentence(c.Payment, totalWords),

		BeneficiaryName:        c.Beneficiary.Name,
		BeneficiaryDocument:    c.Beneficiary.Document,
		BeneficiaryPix:         derive.PixDescription(c.Beneficiary.PixKey, c.Beneficiary.PixType),
		BeneficiaryBankDetails: derive.BankDetails(c.Beneficiary),

		SoundClause:    clauses.Sound(c.Sound),
		CateringClause: clauses.CateringClause(c.Catering),

		DraftDate: spellout.DateToWords(spellout.FormatDate(drafted)),
	}
}

// BuildFromValues assembles the context straight from raw form values.
func BuildFromValues(values models.FormValues, choices models.Choices, drafted time.Time) Context {
	return Assemble(models.FromValues(values, choices), drafted)
}

// Assembler binds a clock to Assemble so callers outside tests never pass the
// drafting date by hand.
type Assembler struct {
	Now func() time.Time
}

// NewAssembler returns an Assembler reading the local wall clock.
func NewAssembler() *Assembler {
	return &Assembler{Now: time.Now}
}

func (a *Assembler) now() time.Time {
	if a == nil || a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// Build assembles the context for values and choices as of the current date.
func (a *Assembler) Build(values models.FormValues, choices models.Choices) Context {
	return BuildFromValues(values, choices, a.now())
}

// Missing returns the vocabulary keys whose value is empty, in vocabulary
// order.
func (ctx Context) Missing() []string {
	var out []string
	for _, k := range Keys {
		if ctx[k] == "" {
			out = append(out, k)
		}
	}
	return out
}
