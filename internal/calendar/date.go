package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout accepted for user-entered dates.
const DateLayout = "2006-01-02"

// DateOf strips the time of day, keeping the calendar date and location.
// The result is anchored at noon: local midnight does not exist on days
// when a zone moves its clocks forward at 00:00.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// Today returns the current local date.
func Today() time.Time {
	return DateOf(time.Now().In(time.Local))
}

// ParseDate parses a YYYY-MM-DD value as a local calendar date.
func ParseDate(value string) (time.Time, error) {
	return parseDateIn(value, time.Local)
}

func parseDateIn(value string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q (expected YYYY-MM-DD): %w", value, err)
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, loc), nil
}

// civil maps t to its calendar date in UTC so that dates from any zone
// compare and subtract in whole days.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var dayAliases = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday, "вс": time.Sunday, "воскресенье": time.Sunday,
	"mon": time.Monday, "monday": time.Monday, "пн": time.Monday, "понедельник": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday, "вт": time.Tuesday, "вторник": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday, "ср": time.Wednesday, "среда": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday, "чт": time.Thursday, "четверг": time.Thursday,
	"fri": time.Friday, "friday": time.Friday, "пт": time.Friday, "пятница": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday, "сб": time.Saturday, "суббота": time.Saturday,
}

// ParseMask builds a Mask from a comma or space separated list of weekdays.
// Items may be English or Russian names, abbreviations, digits 0-6 (0=Sunday),
// or one of the shortcuts all, weekdays, weekends and none.
func ParseMask(value string) (Mask, error) {
	var mask Mask
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})

	for _, field := range fields {
		token := strings.ToLower(strings.TrimSpace(field))
		switch token {
		case "":
			continue
		case "all":
			for day := range mask {
				mask[day] = true
			}
			continue
		case "weekdays":
			for day := time.Monday; day <= time.Friday; day++ {
				mask[day] = true
			}
			continue
		case "weekends":
			mask[time.Saturday] = true
			mask[time.Sunday] = true
			continue
		case "none":
			mask = Mask{}
			continue
		}

		if day, ok := dayAliases[token]; ok {
			mask[day] = true
			continue
		}
		if n, err := strconv.Atoi(token); err == nil && n >= 0 && n <= 6 {
			mask[n] = true
			continue
		}
		return Mask{}, fmt.Errorf("invalid weekday %q (expected mon..sun, 0-6, all, weekdays, weekends or none)", field)
	}

	return mask, nil
}

// String renders the mask as a comma separated list of English abbreviations
// in Monday-first order. It round-trips through ParseMask.
func (m Mask) String() string {
	if m.Empty() {
		return "none"
	}
	parts := make([]string, 0, 7)
	for _, day := range WeekOrder {
		if m.Has(day) {
			parts = append(parts, strings.ToLower(day.String()[:3]))
		}
	}
	return strings.Join(parts, ",")
}
