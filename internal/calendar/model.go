package calendar

import "time"

// Match pairs a scanned date with the label of its weekday.
type Match struct {
	Date  time.Time
	Label string
}

// Weekday returns the weekday of the matched date.
func (m Match) Weekday() time.Weekday {
	return m.Date.Weekday()
}

// Mask selects weekdays by time.Weekday index (0=Sunday..6=Saturday).
type Mask [7]bool

// Has reports whether the weekday is selected.
func (m Mask) Has(day time.Weekday) bool {
	if day < time.Sunday || day > time.Saturday {
		return false
	}
	return m[day]
}

// Set returns a copy of the mask with day switched on or off.
func (m Mask) Set(day time.Weekday, on bool) Mask {
	if day >= time.Sunday && day <= time.Saturday {
		m[day] = on
	}
	return m
}

// Toggle returns a copy of the mask with day flipped.
func (m Mask) Toggle(day time.Weekday) Mask {
	return m.Set(day, !m.Has(day))
}

// Count returns how many weekdays are selected.
func (m Mask) Count() int {
	n := 0
	for _, on := range m {
		if on {
			n++
		}
	}
	return n
}

// Empty reports whether no weekday is selected.
func (m Mask) Empty() bool {
	return m.Count() == 0
}

var labels = [7]string{
	time.Sunday:    "Воскресенье",
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
}

// Label returns the fixed Russian name of the weekday.
func Label(day time.Weekday) string {
	if day < time.Sunday || day > time.Saturday {
		return ""
	}
	return labels[day]
}

// WeekOrder lists weekdays Monday first, the order used by menus and pickers.
var WeekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}
