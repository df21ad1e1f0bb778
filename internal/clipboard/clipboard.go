// Package clipboard hands rendered text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// Writer receives text destined for the clipboard.
type Writer interface {
	Write(text string) error
}

// Func adapts a plain function to Writer.
type Func func(text string) error

// Write implements Writer.
func (f Func) Write(text string) error {
	return f(text)
}

type system struct{}

// System returns a Writer backed by the platform clipboard
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
func System() Writer {
	return system{}
}

func (system) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Recorder is an in-memory Writer that keeps every write.
type Recorder struct {
	Writes []string
	Err    error
}

// Write implements Writer. When Err is set it is returned and nothing is kept.
func (r *Recorder) Write(text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Writes = append(r.Writes, text)
	return nil
}

// Last returns the most recent write, or "" when nothing was written.
func (r *Recorder) Last() string {
	if len(r.Writes) == 0 {
		return ""
	}
	return r.Writes[len(r.Writes)-1]
}
