package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/faizmokh/hari/internal/calendar"
	"github.com/faizmokh/hari/internal/clipboard"
	"github.com/faizmokh/hari/internal/config"
	"github.com/faizmokh/hari/internal/render"
)

const (
	noticeDuration = 2 * time.Second
	fadeDuration   = 300 * time.Millisecond

	copiedNotice   = "Dates copied!"
	genericFailure = "Something went wrong while finding dates. See the log for details."
)

// calculateDates runs the range scan. Tests replace it to force failures.
var calculateDates = calendar.Calculate

// Options carries collaborators and initial menu values into the model.
type Options struct {
	Config    config.Config
	Clipboard clipboard.Writer
	Logger    zerolog.Logger

	// Start and End prefill the date inputs when non-zero.
	Start time.Time
	End   time.Time
	Mask  calendar.Mask
}

// Model owns Bubble Tea state for the date finder.
type Model struct {
	ctx    context.Context
	cfg    config.Config
	clip   clipboard.Writer
	logger zerolog.Logger

	screen screen
	start  dateField
	end    dateField
	mask   calendar.Mask
	focus  int

	matches []calendar.Match
	formats []render.Option
	format  int
	results viewport.Model

	notice    string
	noticeSeq int
	fading    bool

	statusLine string
	errorLine  string

	menuKeys   menuKeyMap
	resultKeys resultKeyMap
	help       help.Model
}

type screen uint8

const (
	screenMenu screen = iota
	screenResult
)

// Focus slots: the two date inputs, then the weekdays in calendar.WeekOrder.
const (
	focusStart = iota
	focusEnd
	focusFirstWeekday
	focusCount = focusFirstWeekday + len(calendar.WeekOrder)
)

type copiedMsg struct {
	err error
}

type noticeFadeMsg struct {
	seq int
}

type noticeClearMsg struct {
	seq int
}

// dateField adapts a text input to calendar.Picker.
type dateField struct {
	input textinput.Model
}

func newDateField(placeholder string, value time.Time) dateField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = len(calendar.DateLayout)
	in.Width = len(calendar.DateLayout) + 1
	if !value.IsZero() {
		in.SetValue(value.Format(calendar.DateLayout))
	}
	return dateField{input: in}
}

// Selected implements calendar.Picker. Empty or unparsable text counts as no
// selection.
func (f dateField) Selected() (time.Time, bool) {
	value := strings.TrimSpace(f.input.Value())
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := calendar.ParseDate(value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func (f dateField) invalid() bool {
	value := strings.TrimSpace(f.input.Value())
	if value == "" {
		return false
	}
	_, ok := f.Selected()
	return !ok
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, opts Options) Model {
	formats := render.Formats()
	format := 0
	want := opts.Config.OutputFormat()
	for i, opt := range formats {
		if opt.Format == want {
			format = i
			break
		}
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System()
	}

	m := Model{
		ctx:        ctx,
		cfg:        opts.Config,
		clip:       clip,
		logger:     opts.Logger,
		screen:     screenMenu,
		start:      newDateField("YYYY-MM-DD", opts.Start),
		end:        newDateField("YYYY-MM-DD", opts.End),
		mask:       opts.Mask,
		formats:    formats,
		format:     format,
		results:    viewport.New(60, 12),
		menuKeys:   newMenuKeyMap(),
		resultKeys: newResultKeyMap(),
		help:       help.New(),
		statusLine: "Pick a date range and weekdays, then press enter.",
	}
	m.start.input.Focus()
	return m
}

// Init starts the cursor blinking in the focused input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg)
	case tea.KeyMsg:
		if m.screen == screenResult {
			return m.handleResultKey(msg)
		}
		return m.handleMenuKey(msg)
	case copiedMsg:
		return m.handleCopied(msg)
	case noticeFadeMsg:
		if msg.seq == m.noticeSeq && m.notice != "" {
			m.fading = true
			seq := m.noticeSeq
			return m, tea.Tick(fadeDuration, func(time.Time) tea.Msg {
				return noticeClearMsg{seq: seq}
			})
		}
		return m, nil
	case noticeClearMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.fading = false
		}
		return m, nil
	}

	if m.screen == screenMenu {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m Model) resize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	if msg.Width > 4 {
		m.results.Width = msg.Width - 4
	}
	if height := msg.Height - 10; height >= 3 {
		m.results.Height = height
	} else {
		m.results.Height = 3
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onWeekday := m.focus >= focusFirstWeekday

	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.menuKeys.Calculate):
		return m.calculate()
	case key.Matches(msg, m.menuKeys.Next):
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case key.Matches(msg, m.menuKeys.Prev):
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case onWeekday && key.Matches(msg, m.menuKeys.Toggle):
		day := calendar.WeekOrder[m.focus-focusFirstWeekday]
		m.mask = m.mask.Toggle(day)
		m.errorLine = ""
		return m, nil
	case onWeekday && key.Matches(msg, m.menuKeys.All):
		for _, day := range calendar.WeekOrder {
			m.mask = m.mask.Set(day, true)
		}
		m.errorLine = ""
		return m, nil
	case onWeekday && key.Matches(msg, m.menuKeys.None):
		m.mask = calendar.Mask{}
		m.errorLine = ""
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusStart:
		m.start.input, cmd = m.start.input.Update(msg)
	case focusEnd:
		m.end.input, cmd = m.end.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(index int) tea.Cmd {
	m.focus = (index%focusCount + focusCount) % focusCount
	m.start.input.Blur()
	m.end.input.Blur()
	switch m.focus {
	case focusStart:
		return m.start.input.Focus()
	case focusEnd:
		return m.end.input.Focus()
	}
	return nil
}

// calculate runs the scan for the current menu values. Any failure keeps the
// menu exactly as it was, with an error line added.
func (m Model) calculate() (model tea.Model, cmd tea.Cmd) {
	prior := m
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Interface("panic", r).Msg("calculate failed")
			prior.errorLine = genericFailure
			model, cmd = prior, nil
		}
	}()

	if m.start.invalid() {
		prior.errorLine = fmt.Sprintf("Invalid start date %q (expected YYYY-MM-DD).", m.start.input.Value())
		return prior, nil
	}
	if m.end.invalid() {
		prior.errorLine = fmt.Sprintf("Invalid end date %q (expected YYYY-MM-DD).", m.end.input.Value())
		return prior, nil
	}

	matches, err := calculateDates(m.start, m.end, m.mask)
	if err != nil {
		if calendar.IsValidation(err) {
			m.logger.Debug().Err(err).Msg("validation failed")
			prior.errorLine = validationMessage(err)
			return prior, nil
		}
		m.logger.Error().Err(err).Msg("calculate failed")
		prior.errorLine = genericFailure
		return prior, nil
	}

	from, _ := m.start.Selected()
	to, _ := m.end.Selected()
	days := calendar.Days(from, to)
	m.logger.Info().
		Str("from", from.Format(calendar.DateLayout)).
		Str("to", to.Format(calendar.DateLayout)).
		Str("days", m.mask.String()).
		Int("matches", len(matches)).
		Msg("dates found")

	m.matches = matches
	m.screen = screenResult
	m.results.SetContent(resultLines(matches))
	m.results.GotoTop()
	m.errorLine = ""
	m.statusLine = ""
	if m.cfg.LargeRange(days) {
		m.logger.Warn().Int("days", days).Msg("large range scanned")
		m.statusLine = fmt.Sprintf("Warning: the range spans %d days.", days)
	}
	return m, nil
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, calendar.ErrPickerNotReady):
		return "Date pickers are not ready yet. Restart hari and try again."
	case errors.Is(err, calendar.ErrMissingDate):
		return "Please enter both dates."
	case errors.Is(err, calendar.ErrInvertedRange):
		return "The start date cannot be later than the end date."
	default:
		return err.Error()
	}
}

func resultLines(matches []calendar.Match) string {
	if len(matches) == 0 {
		return "(no matching dates)"
	}
	return render.Render(matches, render.Full)
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.resultKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.resultKeys.Close):
		return m.closeResult()
	case key.Matches(msg, m.resultKeys.NextFormat):
		m.format = (m.format + 1) % len(m.formats)
		return m, nil
	case key.Matches(msg, m.resultKeys.PrevFormat):
		m.format = (m.format - 1 + len(m.formats)) % len(m.formats)
		return m, nil
	case key.Matches(msg, m.resultKeys.Copy):
		return m.copySelected()
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m Model) closeResult() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.matches = nil
	m.results.SetContent("")
	m.notice = ""
	m.fading = false
	m.noticeSeq++
	m.errorLine = ""
	m.statusLine = "Pick a date range and weekdays, then press enter."
	return m, nil
}

func (m Model) currentFormat() render.Format {
	return m.formats[m.format].Format
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	text := render.Render(m.matches, m.currentFormat())
	m.errorLine = ""
	return m, copyCmd(m.ctx, m.clip, text)
}

func copyCmd(ctx context.Context, clip clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		if err := ctx.Err(); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: clip.Write(text)}
	}
}

func (m Model) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("clipboard write failed")
		m.errorLine = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, nil
	}

	m.noticeSeq++
	m.notice = copiedNotice
	m.fading = false
	seq := m.noticeSeq
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeFadeMsg{seq: seq}
	})
}
