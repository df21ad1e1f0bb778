package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/hari/internal/calendar"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	resultBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// View renders the frame.
func (m Model) View() string {
	if m.screen == screenResult {
		return m.resultView()
	}
	return m.menuView()
}

func (m Model) menuView() string {
	var b strings.Builder

	header := "Weekday date finder"
	b.WriteString(titleStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(focusStart, "Start date: "))
	b.WriteString(m.start.input.View())
	b.WriteByte('\n')
	b.WriteString(m.fieldLabel(focusEnd, "End date:   "))
	b.WriteString(m.end.input.View())
	b.WriteString("\n\n")

	b.WriteString("Weekdays:\n")
	for i, day := range calendar.WeekOrder {
		slot := focusFirstWeekday + i
		cursor := "  "
		if m.focus == slot {
			cursor = "> "
		}
		box := "[ ]"
		if m.mask.Has(day) {
			box = selectedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, calendar.Label(day))
		if m.focus == slot {
			line = focusedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	m.writeStatus(&b)

	b.WriteString("\n")
	b.WriteString(m.help.View(m.menuKeys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) fieldLabel(slot int, label string) string {
	if m.focus == slot {
		return focusedStyle.Render("> " + label)
	}
	return "  " + label
}

func (m Model) resultView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Found dates: %d", len(m.matches))))
	b.WriteString("\n")
	b.WriteString(resultBorder.Render(m.results.View()))
	b.WriteString("\n\n")

	b.WriteString("Copy format: ")
	b.WriteString(focusedStyle.Render("< " + m.currentFormat().Label() + " >"))
	b.WriteByte('\n')

	if m.notice != "" {
		b.WriteByte('\n')
		if m.fading {
			b.WriteString(faintStyle.Render(m.notice))
		} else {
			b.WriteString(noticeStyle.Render(m.notice))
		}
		b.WriteByte('\n')
	}

	m.writeStatus(&b)

	b.WriteString("\n")
	b.WriteString(m.help.View(m.resultKeys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) writeStatus(b *strings.Builder) {
	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}
}
