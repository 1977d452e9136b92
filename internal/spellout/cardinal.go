package spellout

import "strings"

var units = [...]string{
	"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "catorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
}

var tens = [...]string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
}

var hundreds = [...]string{
	"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos",
}

// Scale words for groups of three digits above the thousands.
var scales = [...]struct{ singular, plural string }{
	{"", ""},
	{"mil", "mil"},
	{"milhão", "milhões"},
	{"bilhão", "bilhões"},
	{"trilhão", "trilhões"},
	{"quatrilhão", "quatrilhões"},
	{"quintilhão", "quintilhões"},
}

// Cardinal spells n as a Brazilian Portuguese cardinal number in the masculine
// form, e.g. 1250 -> "mil, duzentos e cinquenta".
func Cardinal(n int64) string {
	return cardinal(n, false)
}

// CardinalFeminine spells n agreeing with a feminine noun ("uma", "duas",
// "duzentas"), as required for "hora".
func CardinalFeminine(n int64) string {
	return cardinal(n, true)
}

func cardinal(n int64, feminine bool) string {
	if n == 0 {
		return units[0]
	}

	var u uint64
	prefix := ""
	if n < 0 {
		prefix = "menos "
		u = uint64(-(n + 1)) + 1
	} else {
		u = uint64(n)
	}

	var groups []int
	for u > 0 {
		groups = append(groups, int(u%1000))
		u /= 1000
	}

	var b strings.Builder
	b.WriteString(prefix)
	written := false
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if written {
			b.WriteString(connector(groups[:i+1]))
		}
		b.WriteString(groupWords(g, i, feminine))
		written = true
	}
	return b.String()
}

// connector joins a group to what was already written. The last non-zero
// group is introduced with " e " when it is below one hundred or a whole
// hundred; every other junction uses a comma.
func connector(tail []int) string {
	current := tail[len(tail)-1]
	for _, lower := range tail[:len(tail)-1] {
		if lower != 0 {
			return ", "
		}
	}
	if current < 100 || current%100 == 0 {
		return " e "
	}
	return ", "
}

func groupWords(g, scale int, feminine bool) string {
	switch {
	case scale == 0:
		return triple(g, feminine)
	case scale == 1:
		if g == 1 {
			return scales[1].singular
		}
		return triple(g, feminine) + " " + scales[1].singular
	case g == 1:
		return triple(g, false) + " " + scales[scale].singular
	default:
		return triple(g, false) + " " + scales[scale].plural
	}
}

func triple(g int, feminine bool) string {
	if g == 100 {
		return "cem"
	}

	h, rest := g/100, g%100
	var parts []string
	if h > 0 {
		word := hundreds[h]
		if feminine && h > 1 {
			word = strings.TrimSuffix(word, "os") + "as"
		}
		parts = append(parts, word)
	}
	if rest > 0 {
		parts = append(parts, belowHundred(rest, feminine))
	}
	return strings.Join(parts, " e ")
}

func belowHundred(n int, feminine bool) string {
	if n < 20 {
		return unit(n, feminine)
	}
	word := tens[n/10]
	if n%10 != 0 {
		word += " e " + unit(n%10, feminine)
	}
	return word
}

func unit(n int, feminine bool) string {
	if feminine {
		switch n {
		case 1:
			return "uma"
		case 2:
			return "duas"
		}
	}
	return units[n]
}
