package render

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// Pretty renders markdown text for the terminal using Glamour, wrapping at
// width. A width of 0 keeps Glamour's default. Empty text writes nothing.
func Pretty(w io.Writer, text string, width int) error {
	if text == "" {
		return nil
	}

	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}

	rendered, err := r.Render(text)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, rendered)
	return err
}
