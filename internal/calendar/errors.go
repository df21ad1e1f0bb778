package calendar

import "errors"

// ErrMissingDate is returned when the start or end date has not been selected.
var ErrMissingDate = errors.New("both start and end dates are required")

// ErrInvertedRange indicates the start date falls after the end date.
var ErrInvertedRange = errors.New("start date cannot be later than end date")

// ErrPickerNotReady is returned when a date picker has not been initialized.
var ErrPickerNotReady = errors.New("date pickers are not initialized")

// ErrCalculation wraps unexpected failures raised while scanning.
var ErrCalculation = errors.New("calculation failed")

// IsValidation reports whether err is one of the user-input validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrInvertedRange) ||
		errors.Is(err, ErrPickerNotReady)
}
