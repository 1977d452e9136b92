package spellout

// ClockToWords spells a time of day, e.g. (18, 30) -> "dezoito horas e trinta
// minutos". Out-of-range input yields "".
func ClockToWords(hour, minute int) string {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ""
	}

	base := CardinalFeminine(int64(hour)) + " horas"
	if hour == 1 {
		base = CardinalFeminine(1) + " hora"
	}

	if minute == 0 {
		return base
	}
	if minute == 1 {
		return base + " e " + Cardinal(1) + " minuto"
	}
	return base + " e " + Cardinal(int64(minute)) + " minutos"
}
