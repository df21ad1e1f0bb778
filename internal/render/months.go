package render

import (
	"strconv"
	"time"

	"github.com/faizmokh/hari/internal/calendar"
)

// Genitive month names, as used after a day number.
var months = [...]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// LongDate renders the match date as "1 ноября 2025".
func LongDate(m calendar.Match) string {
	d := m.Date
	return strconv.Itoa(d.Day()) + " " + months[d.Month()] + " " + strconv.Itoa(d.Year())
}
