package calendar

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func allDays() Mask {
	var m Mask
	for i := range m {
		m[i] = true
	}
	return m
}

func TestScanFullWeekIsInclusive(t *testing.T) {
	matches := Scan(date(2025, time.November, 1), date(2025, time.November, 7), allDays())
	if len(matches) != 7 {
		t.Fatalf("len(matches) = %d, want 7", len(matches))
	}

	first := matches[0]
	if first.Date.Format(DateLayout) != "2025-11-01" {
		t.Fatalf("first.Date = %s, want 2025-11-01", first.Date)
	}
	if first.Label != "Суббота" {
		t.Fatalf("first.Label = %q, want %q", first.Label, "Суббота")
	}
	last := matches[6]
	if last.Date.Format(DateLayout) != "2025-11-07" {
		t.Fatalf("last.Date = %s, want 2025-11-07", last.Date)
	}
	if last.Label != "Пятница" {
		t.Fatalf("last.Label = %q, want %q", last.Label, "Пятница")
	}
}

func TestScanSingleDay(t *testing.T) {
	day := date(2025, time.November, 3) // Monday

	var monday Mask
	monday[time.Monday] = true
	matches := Scan(day, day, monday)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Label != "Понедельник" {
		t.Fatalf("Label = %q, want Понедельник", matches[0].Label)
	}

	var tuesday Mask
	tuesday[time.Tuesday] = true
	if got := Scan(day, day, tuesday); len(got) != 0 {
		t.Fatalf("Scan with unselected weekday returned %d matches, want 0", len(got))
	}
}

func TestScanEmptyMask(t *testing.T) {
	if got := Scan(date(2025, 1, 1), date(2025, 12, 31), Mask{}); len(got) != 0 {
		t.Fatalf("Scan with empty mask returned %d matches", len(got))
	}
}

func TestScanInvertedRangeIsEmpty(t *testing.T) {
	if got := Scan(date(2025, 2, 1), date(2025, 1, 1), allDays()); len(got) != 0 {
		t.Fatalf("Scan with start after end returned %d matches", len(got))
	}
}

func TestScanIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.November, 1, 23, 59, 0, 0, time.Local)
	end := time.Date(2025, time.November, 2, 0, 1, 0, 0, time.Local)
	matches := Scan(start, end, allDays())
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if got := matches[0].Date.Format(DateLayout); got != "2025-11-01" {
		t.Fatalf("first match = %s, want 2025-11-01", got)
	}
	if got := matches[1].Date.Format(DateLayout); got != "2025-11-02" {
		t.Fatalf("second match = %s, want 2025-11-02", got)
	}
}

func TestScanCompletenessAndSoundness(t *testing.T) {
	start := date(2023, time.December, 15)
	end := date(2025, time.March, 10)

	var mask Mask
	mask[time.Wednesday] = true
	mask[time.Sunday] = true

	matches := Scan(start, end, mask)

	seen := make(map[string]bool)
	for i, m := range matches {
		if Days(start, m.Date) == 0 || Days(m.Date, end) == 0 {
			t.Fatalf("match %s outside range", m.Date.Format(DateLayout))
		}
		if !mask.Has(m.Weekday()) {
			t.Fatalf("match %s has unselected weekday %s", m.Date.Format(DateLayout), m.Weekday())
		}
		if m.Label != Label(m.Weekday()) {
			t.Fatalf("match %s label = %q, want %q", m.Date.Format(DateLayout), m.Label, Label(m.Weekday()))
		}
		key := m.Date.Format(DateLayout)
		if seen[key] {
			t.Fatalf("duplicate match %s", key)
		}
		seen[key] = true
		if i > 0 && !matches[i-1].Date.Before(m.Date) {
			t.Fatalf("matches not ascending at index %d", i)
		}
	}

	want := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if mask.Has(d.Weekday()) {
			want++
			if !seen[d.Format(DateLayout)] {
				t.Fatalf("missing match for %s", d.Format(DateLayout))
			}
		}
	}
	if len(matches) != want {
		t.Fatalf("len(matches) = %d, want %d", len(matches), want)
	}
}

func TestScanLeapYear(t *testing.T) {
	matches := Scan(date(2024, time.February, 27), date(2024, time.March, 2), allDays())
	got := make([]string, 0, len(matches))
	for _, m := range matches {
		got = append(got, m.Date.Format(DateLayout))
	}
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(got) != len(want) {
		t.Fatalf("dates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dates = %v, want %v", got, want)
		}
	}
}

func TestScanAcrossMidnightClockChange(t *testing.T) {
	tests := []struct {
		zone       string
		start, end time.Time
		want       []string
	}{
		{
			zone:  "America/Santiago",
			start: time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.September, 9, 0, 0, 0, 0, time.UTC),
			want:  []string{
				"2025-09-05 Пятница",
				"2025-09-06 Суббота",
				"2025-09-07 Воскресенье",
				"2025-09-08 Понедельник",
				"2025-09-09 Вторник",
			},
		},
		{
			zone:  "America/Sao_Paulo",
			start: time.Date(2018, time.November, 3, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2018, time.November, 6, 0, 0, 0, 0, time.UTC),
			want:  []string{
				"2018-11-03 Суббота",
				"2018-11-04 Воскресенье",
				"2018-11-05 Понедельник",
				"2018-11-06 Вторник",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			if err != nil {
				t.Fatalf("LoadLocation: %v", err)
			}
			start := DateOf(time.Date(tt.start.Year(), tt.start.Month(), tt.start.Day(), 0, 0, 0, 0, loc))
			end := time.Date(tt.end.Year(), tt.end.Month(), tt.end.Day(), 12, 0, 0, 0, loc)

			matches := Scan(start, end, allDays())
			got := make([]string, 0, len(matches))
			for _, m := range matches {
				got = append(got, m.Date.Format(DateLayout)+" "+m.Label)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("matches = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("matches = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single day", date(2025, 11, 1), date(2025, 11, 1), 1},
		{"week", date(2025, 11, 1), date(2025, 11, 7), 7},
		{"leap year", date(2024, 1, 1), date(2024, 12, 31), 366},
		{"inverted", date(2025, 11, 2), date(2025, 11, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Days(tt.start, tt.end); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

type nilPicker struct{}

func (nilPicker) Selected() (time.Time, bool) { return time.Time{}, false }

type timedPicker struct{ at time.Time }

func (p timedPicker) Selected() (time.Time, bool) { return p.at, true }

type panicPicker struct{}

func (panicPicker) Selected() (time.Time, bool) { panic("picker exploded") }

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name       string
		start, end Picker
		want       error
	}{
		{"missing picker", nil, Fixed(date(2025, 11, 1)), ErrPickerNotReady},
		{"missing start", nilPicker{}, Fixed(date(2025, 11, 1)), ErrMissingDate},
		{"missing end", Fixed(date(2025, 11, 1)), Fixed(time.Time{}), ErrMissingDate},
		{"inverted", Fixed(date(2025, 11, 2)), Fixed(date(2025, 11, 1)), ErrInvertedRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := Calculate(tt.start, tt.end, allDays())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Calculate() error = %v, want %v", err, tt.want)
			}
			if !IsValidation(err) {
				t.Fatalf("IsValidation(%v) = false", err)
			}
			if matches != nil {
				t.Fatalf("Calculate() returned %d matches on validation failure", len(matches))
			}
		})
	}
}

func TestCalculateScansValidRange(t *testing.T) {
	matches, err := Calculate(Fixed(date(2025, 11, 1)), Fixed(date(2025, 11, 7)), allDays())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(matches) != 7 {
		t.Fatalf("len(matches) = %d, want 7", len(matches))
	}
}

func TestCalculateSameDayIsValid(t *testing.T) {
	day := date(2025, 11, 1)
	matches, err := Calculate(Fixed(day), timedPicker{at: day.Add(15 * time.Hour)}, allDays())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
}

func TestCalculateRecoversFromPanics(t *testing.T) {
	matches, err := Calculate(panicPicker{}, Fixed(date(2025, 11, 1)), allDays())
	if !errors.Is(err, ErrCalculation) {
		t.Fatalf("Calculate() error = %v, want ErrCalculation", err)
	}
	if IsValidation(err) {
		t.Fatalf("IsValidation(%v) = true for a recovered panic", err)
	}
	if matches != nil {
		t.Fatalf("Calculate() returned matches after a panic")
	}
}
