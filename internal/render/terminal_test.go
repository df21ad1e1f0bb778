package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/hari/internal/calendar"
)

func TestPrettyMarkdownList(t *testing.T) {
	matches := []calendar.Match{
		match(2025, time.November, 1),
		match(2025, time.November, 8),
	}

	var buf bytes.Buffer
	if err := Pretty(&buf, Render(matches, Markdown), 80); err != nil {
		t.Fatalf("Pretty: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"01.11.2025", "08.11.2025", "Суббота"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, "", 0); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
