package derive

import (
	"fmt"
	"strings"

	"CT-MUSICAL/internal/models"
)

// ComposeAddress renders a party address with fixed punctuation. Empty parts
// keep their separators.
func ComposeAddress(a models.Address) string {
	return fmt.Sprintf("%s, %s %s - %s, %s/%s - CEP %s",
		a.Street, a.Number, a.Complement, a.Neighborhood, a.City, a.State, a.PostalCode)
}

// ComposeVenueAddress renders the event venue. The venue name and number are
// dropped when empty and the complement follows the previous entry without a
// comma, e.g. "Clube X, Rua A, 10 fundos - Centro, Recife/PE - CEP 50000-000".
func ComposeVenueAddress(v models.Venue) string {
	parts := []string{v.Name, v.Address.Street}
	if number := strings.TrimSpace(v.Address.Number); number != "" {
		parts = append(parts, number)
	}
	if complement := strings.TrimSpace(v.Address.Complement); complement != "" {
		appended := false
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				parts[i] += " " + complement
				appended = true
				break
			}
		}
		if !appended {
			parts = append(parts, complement)
		}
	}

	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ", ") + fmt.Sprintf(" - %s, %s/%s - CEP %s",
		v.Address.Neighborhood, v.Address.City, v.Address.State, v.Address.PostalCode)
}
