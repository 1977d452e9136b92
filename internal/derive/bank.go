package derive

import (
	"strings"

	"CT-MUSICAL/internal/models"
)

// PixDescription renders "<key> (<type>)" when either part is filled.
func PixDescription(key, kind string) string {
	if key == "" && kind == "" {
		return ""
	}
	return key + " (" + kind + ")"
}

// BankDetails lists the filled bank fields of the beneficiary, e.g.
// "Banco Inter (Código 077), Agência 0001, Conta 12345-6, – Conta Corrente".
func BankDetails(b models.Beneficiary) string {
	var parts []string

	if b.BankName != "" {
		if b.BankCode != "" {
			parts = append(parts, "Banco "+b.BankName+" (Código "+b.BankCode+")")
		} else {
			parts = append(parts, "Banco "+b.BankName)
		}
	}
	if b.Agency != "" {
		parts = append(parts, "Agência "+b.Agency)
	}
	if b.Account != "" {
		parts = append(parts, "Conta "+b.Account)
	}
	if b.AccountType != "" {
		parts = append(parts, "– Conta "+b.AccountType)
	}

	return strings.Join(parts, ", ")
}
