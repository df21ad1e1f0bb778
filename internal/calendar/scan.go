package calendar

import (
	"fmt"
	"time"
)

// Scan walks the closed range [start, end] one calendar day at a time and
// returns every date whose weekday is selected in mask, in ascending order.
// Match dates carry start's location. A start after end yields an empty
// result; callers validate ranges through Calculate.
func Scan(start, end time.Time, mask Mask) []Match {
	n := Days(start, end)
	if mask.Empty() || n == 0 {
		return nil
	}

	y, m, d := start.Date()
	loc := start.Location()

	var matches []Match
	for i := 0; i < n; i++ {
		current := time.Date(y, m, d+i, 12, 0, 0, 0, loc)
		day := current.Weekday()
		if !mask.Has(day) {
			continue
		}
		matches = append(matches, Match{
			Date:  current,
			Label: Label(day),
		})
	}
	return matches
}

// Days returns the inclusive number of calendar days between start and end,
// or zero when start is after end.
func Days(start, end time.Time) int {
	a, b := civil(start), civil(end)
	if a.After(b) {
		return 0
	}
	return int(b.Sub(a)/(24*time.Hour)) + 1
}

// Picker supplies a selected date, mirroring a date-picker widget.
type Picker interface {
	Selected() (time.Time, bool)
}

// Fixed is a Picker holding a preselected date.
type Fixed time.Time

// Selected implements Picker. The zero value reports no selection.
func (f Fixed) Selected() (time.Time, bool) {
	t := time.Time(f)
	if t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// Calculate validates the pickers and scans the selected range. Validation
// failures return ErrPickerNotReady, ErrMissingDate or ErrInvertedRange. A
// panic raised by a picker or the scan is recovered and reported as ErrCalculation.
func Calculate(start, end Picker, mask Mask) (matches []Match, err error) {
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = fmt.Errorf("%w: %v", ErrCalculation, r)
		}
	}()

	if start == nil || end == nil {
		return nil, ErrPickerNotReady
	}

	from, okFrom := start.Selected()
	to, okTo := end.Selected()
	if !okFrom || !okTo {
		return nil, ErrMissingDate
	}
	if civil(from).After(civil(to)) {
		return nil, ErrInvertedRange
	}

	return Scan(from, to, mask), nil
}
