package derive

import (
	"fmt"
	"regexp"
	"strconv"

	"CT-MUSICAL/internal/spellout"
)

const minutesPerDay = 24 * 60

var timePattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)

// Clock is a validated time of day.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// ParseTime reads h:mm or hh:mm within 0-23 and 0-59.
func ParseTime(text string) (Clock, bool) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// DurationAndArrival computes the show length and the band arrival time (one
// hour before the start). An end at or before the start falls on the next
// day; equal times are a zero-length span. Both results are empty when either
// time does not parse.
func DurationAndArrival(start, end string) (duration, arrival string) {
	from, ok := ParseTime(start)
	if !ok {
		return "", ""
	}
	to, ok := ParseTime(end)
	if !ok {
		return "", ""
	}

	endMinutes := to.minutes()
	if endMinutes <= from.minutes() {
		endMinutes += minutesPerDay
	}
	span := (endMinutes - from.minutes()) % minutesPerDay

	arrivalMinutes := (from.minutes() - 60 + minutesPerDay) % minutesPerDay

	return renderClock(span/60, span%60), renderClock(arrivalMinutes/60, arrivalMinutes%60)
}

// renderClock writes "HH:MM (words)", or just "HH:MM" when there are no words.
func renderClock(hour, minute int) string {
	numeric := fmt.Sprintf("%02d:%02d", hour, minute)
	words := spellout.ClockToWords(hour, minute)
	if words == "" {
		return numeric
	}
	return numeric + " (" + words + ")"
}

// EventSchedule renders the event time range as typed, e.g. "20:00h às 23:00h".
func EventSchedule(start, end string) string {
	return start + "h às " + end + "h"
}
