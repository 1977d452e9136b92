package spellout

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var datePattern = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})/(\d{4})\s*$`)

var months = [...]string{
	"",
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ParseDate splits a dd/mm/yyyy string. Only the shape is checked here.
func ParseDate(text string) (day, month, year int, ok bool) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])
	return day, month, year, true
}

// DateWords renders dd/mm/yyyy as "06 de Janeiro de 2025". Input that does not
// parse, or names a month outside 1-12, comes back unchanged and unparsed.
func DateWords(text string) Result {
	day, month, year, ok := ParseDate(text)
	if !ok || month < 1 || month > 12 {
		return Result{Text: text}
	}
	return Result{
		Text:   fmt.Sprintf("%02d de %s de %d", day, months[month], year),
		Parsed: true,
	}
}

// DateToWords is DateWords without the parse flag.
func DateToWords(text string) string {
	return DateWords(text).Text
}

// FormatDate renders t as dd/mm/yyyy, the form-field date layout.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
