package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	appsvc "tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/filter"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/report"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/timeutil"
	"tableflip.dev/moodlog/pkg/tui/chart"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

type field int

const (
	fieldMood field = iota
	fieldNote
	fieldDay
	fieldFrom
	fieldTo
	fieldInterval
	fieldCount
)

type filterMode int

const (
	filterDay filterMode = iota
	filterRange
)

type refreshMode int

const (
	refreshOnSubmit refreshMode = iota
	refreshInterval
)

const layoutISO = "2006-01-02"

// Model contains UI state. Every interaction is one synchronous pass of
// fetch, filter, aggregate, render; there is no local cache of the log.
type Model struct {
	svc *appsvc.Service
	ctx context.Context

	mode  mode
	focus field

	moodIndex int
	note      textinput.Model
	day       textinput.Model
	from      textinput.Model
	to        textinput.Model
	interval  textinput.Model

	filterMode  filterMode
	refreshMode refreshMode

	// refreshEvery is only meaningful in interval mode. tickGen counts mode
	// and interval changes; a pending tick carrying a stale generation is
	// ignored, which is how switching modes cancels the scheduled reload.
	refreshEvery time.Duration
	tickGen      int

	entries []*entry.Entry
	counts  []report.Count
	title   string

	watch <-chan store.Event

	status  string
	warning string

	termWidth  int
	termHeight int

	theme theme.Theme
}

// New creates a new UI model backed by the Service.
func New(svc *appsvc.Service) Model {
	now := time.Now().In(entry.Civil())
	today := now.Format(layoutISO)
	weekAgo := now.AddDate(0, 0, -7).Format(layoutISO)

	m := Model{
		svc:          svc,
		ctx:          context.Background(),
		mode:         modeNormal,
		focus:        fieldMood,
		note:         newInput("Optional note", 256, today),
		day:          newInput(layoutISO, 10, today),
		from:         newInput(layoutISO, 10, weekAgo),
		to:           newInput(layoutISO, 10, today),
		interval:     newInput("10s", 6, timeutil.DefaultInterval),
		refreshEvery: 10 * time.Second,
		status:       "NORMAL: tab move, ←/→ pick mood, enter submit, f filter, r refresh mode, R reload, ? help",
		theme:        theme.Default(),
	}
	m.note.SetValue("")
	m.day.SetValue(today)
	m.from.SetValue(weekAgo)
	m.to.SetValue(today)
	m.interval.SetValue(timeutil.DefaultInterval)
	return m
}

func newInput(placeholder string, limit int, _ string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

// Init loads initial data and subscribes to store changes when supported.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistory(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) loadHistory() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		history, err := svc.History(ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyLoadedMsg{entries: history}
	}
}

func (m *Model) scheduleTick() tea.Cmd {
	if m.refreshMode != refreshInterval || m.refreshEvery <= 0 {
		return nil
	}
	gen := m.tickGen
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// messages
type errMsg struct{ err error }
type historyLoadedMsg struct{ entries []*entry.Entry }
type loggedMsg struct{ e *entry.Entry }
type tickMsg struct{ gen int }
type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}
type watchEventMsg struct{}
type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *appsvc.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func waitWatchCmd(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return watchEventMsg{}
		}
		return watchStoppedMsg{}
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case errMsg:
		m.status = "ERR: " + msg.err.Error()

	case historyLoadedMsg:
		m.entries = msg.entries
		m.applyFilter()

	case loggedMsg:
		m.status = fmt.Sprintf("Mood logged: %s", msg.e.Mood)
		m.note.Reset()
		// On-submission semantics: the view always refreshes after an append.
		cmds = append(cmds, m.loadHistory())

	case tickMsg:
		if msg.gen != m.tickGen {
			break // stale tick from a cancelled schedule
		}
		cmds = append(cmds, m.loadHistory(), m.scheduleTick())

	case watchStartedMsg:
		if msg.err != nil {
			// Remote backends have no watch; on-submission mode still works
			// through explicit reloads.
			if !errors.Is(msg.err, appsvc.ErrNoWatch) {
				m.status = "ERR: " + msg.err.Error()
			}
			break
		}
		m.watch = msg.ch
		cmds = append(cmds, waitWatchCmd(msg.ch))

	case watchEventMsg:
		if m.refreshMode == refreshOnSubmit {
			cmds = append(cmds, m.loadHistory())
		}
		if m.watch != nil {
			cmds = append(cmds, waitWatchCmd(m.watch))
		}

	case watchStoppedMsg:
		m.watch = nil
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch m.mode {
	case modeHelp:
		if key := msg.String(); key == "q" || key == "esc" || key == "?" {
			m.mode = modeNormal
		}

	case modeInsert:
		switch msg.String() {
		case "enter":
			m.commitInsert(&cmds)
		case "esc":
			m.mode = modeNormal
			m.blurAll()
			m.status = "Cancelled"
		default:
			input := m.focusedInput()
			if input != nil {
				var cmd tea.Cmd
				*input, cmd = input.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case modeNormal:
		switch msg.String() {
		case "ctrl+c", "q":
			cmds = append(cmds, tea.Quit)
		case "?":
			m.mode = modeHelp
		case "tab", "down", "j":
			m.focus = (m.focus + 1) % fieldCount
			m.skipHiddenFields(1)
		case "shift+tab", "up", "k":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			m.skipHiddenFields(-1)
		case "left", "h":
			if m.focus == fieldMood {
				m.moodIndex = (m.moodIndex + len(mood.All()) - 1) % len(mood.All())
			}
		case "right", "l":
			if m.focus == fieldMood {
				m.moodIndex = (m.moodIndex + 1) % len(mood.All())
			}
		case "i":
			if input := m.focusedInput(); input != nil {
				m.mode = modeInsert
				input.Focus()
			}
		case "enter":
			switch m.focus {
			case fieldMood, fieldNote:
				cmds = append(cmds, m.submit())
			default:
				if input := m.focusedInput(); input != nil {
					m.mode = modeInsert
					input.Focus()
				}
			}
		case "f":
			m.toggleFilterMode()
		case "r":
			m.toggleRefreshMode(&cmds)
		case "R":
			m.status = "Reloading"
			cmds = append(cmds, m.loadHistory())
		}
	}

	return cmds
}

func (m *Model) commitInsert(cmds *[]tea.Cmd) {
	m.mode = modeNormal
	m.blurAll()

	switch m.focus {
	case fieldNote:
		// nothing to validate, the note rides along on submit
	case fieldDay, fieldFrom, fieldTo:
		m.applyFilter()
	case fieldInterval:
		d, canonical, err := timeutil.ParseInterval(m.interval.Value())
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.interval.SetValue(canonical)
		m.refreshEvery = d
		if m.refreshMode == refreshInterval {
			m.tickGen++
			*cmds = append(*cmds, m.scheduleTick())
			m.status = fmt.Sprintf("Refreshing every %s", canonical)
		}
	}
}

func (m *Model) submit() tea.Cmd {
	chosen := mood.All()[m.moodIndex]
	note := strings.TrimSpace(m.note.Value())
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		e, err := svc.Log(ctx, chosen, note)
		if err != nil {
			return errMsg{err}
		}
		return loggedMsg{e: e}
	}
}

func (m *Model) toggleFilterMode() {
	if m.filterMode == filterDay {
		m.filterMode = filterRange
	} else {
		m.filterMode = filterDay
	}
	if m.focusedInput() == nil {
		m.focus = fieldMood
	}
	m.applyFilter()
}

func (m *Model) toggleRefreshMode(cmds *[]tea.Cmd) {
	m.tickGen++ // cancels any pending tick either way
	if m.refreshMode == refreshOnSubmit {
		m.refreshMode = refreshInterval
		*cmds = append(*cmds, m.scheduleTick())
		m.status = fmt.Sprintf("Interval refresh every %s", timeutil.FormatInterval(m.refreshEvery))
	} else {
		m.refreshMode = refreshOnSubmit
		m.status = "Refresh on submission"
	}
}

// applyFilter recomputes the aggregate view from the loaded history and the
// current date selection.
func (m *Model) applyFilter() {
	m.warning = ""
	m.counts = nil
	m.title = ""

	if m.filterMode == filterDay {
		day, err := time.ParseInLocation(layoutISO, strings.TrimSpace(m.day.Value()), entry.Civil())
		if err != nil {
			m.warning = "Please select a valid date."
			return
		}
		m.counts = report.ByMood(filter.Day(m.entries, day))
		m.title = "Mood Distribution"
		return
	}

	fromVal := strings.TrimSpace(m.from.Value())
	toVal := strings.TrimSpace(m.to.Value())
	if fromVal == "" || toVal == "" {
		m.warning = "Please select a valid date range."
		return
	}
	from, err := time.ParseInLocation(layoutISO, fromVal, entry.Civil())
	if err != nil {
		m.warning = "Please select a valid date range."
		return
	}
	to, err := time.ParseInLocation(layoutISO, toVal, entry.Civil())
	if err != nil {
		m.warning = "Please select a valid date range."
		return
	}

	ranged, err := filter.Range(m.entries, from, to)
	if err != nil {
		m.warning = "Please select a valid date range."
		return
	}
	g := report.GranularityFor(from, to)
	m.counts = report.Aggregate(ranged, g)
	m.title = "Mood Distribution by " + titleCase(g.String())
}

func (m *Model) focusedInput() *textinput.Model {
	switch m.focus {
	case fieldNote:
		return &m.note
	case fieldDay:
		if m.filterMode == filterDay {
			return &m.day
		}
	case fieldFrom:
		if m.filterMode == filterRange {
			return &m.from
		}
	case fieldTo:
		if m.filterMode == filterRange {
			return &m.to
		}
	case fieldInterval:
		if m.refreshMode == refreshInterval {
			return &m.interval
		}
	}
	return nil
}

// skipHiddenFields advances focus past fields hidden by the current filter
// and refresh modes.
func (m *Model) skipHiddenFields(dir int) {
	for i := 0; i < int(fieldCount); i++ {
		switch m.focus {
		case fieldDay:
			if m.filterMode != filterDay {
				m.focus = (m.focus + field(dir) + fieldCount) % fieldCount
				continue
			}
		case fieldFrom, fieldTo:
			if m.filterMode != filterRange {
				m.focus = (m.focus + field(dir) + fieldCount) % fieldCount
				continue
			}
		case fieldInterval:
			if m.refreshMode != refreshInterval {
				m.focus = (m.focus + field(dir) + fieldCount) % fieldCount
				continue
			}
		}
		return
	}
}

func (m *Model) blurAll() {
	m.note.Blur()
	m.day.Blur()
	m.from.Blur()
	m.to.Blur()
	m.interval.Blur()
}

// View renders the whole dashboard.
func (m Model) View() string {
	if m.mode == modeHelp {
		return m.helpView()
	}

	width := m.termWidth
	if width <= 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, m.theme.Title.Render("📝 Mood Logger"))
	sections = append(sections, m.formView())
	sections = append(sections, m.filterView())
	sections = append(sections, m.chartView(width))
	sections = append(sections, m.footerView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) formView() string {
	var moods []string
	for i, mm := range mood.All() {
		g := mm.Glyph()
		cell := fmt.Sprintf(" %s %s ", g.Symbol, g.Meaning)
		if i == m.moodIndex {
			cell = m.theme.Form.Selected.Render(cell)
		} else {
			cell = m.theme.Form.Option.Render(cell)
		}
		moods = append(moods, cell)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Panel.Title.Render("Log your mood"),
		m.fieldLabel(fieldMood, "How are you feeling?")+"  "+strings.Join(moods, " "),
		m.fieldLabel(fieldNote, "Note")+"  "+m.note.View(),
	)
	return m.theme.Panel.Frame.Render(body)
}

func (m Model) filterView() string {
	var mode, dates string
	if m.filterMode == filterDay {
		mode = "Single day"
		dates = m.fieldLabel(fieldDay, "Date") + "  " + m.day.View()
	} else {
		mode = "Date range"
		dates = m.fieldLabel(fieldFrom, "From") + "  " + m.from.View() +
			"   " + m.fieldLabel(fieldTo, "To") + "  " + m.to.View()
	}

	refresh := "On submission"
	if m.refreshMode == refreshInterval {
		refresh = "Every " + m.fieldLabel(fieldInterval, m.interval.View())
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Panel.Title.Render("📆 Filter by Date"),
		m.theme.Form.Label.Render("View by")+"  "+m.theme.Form.Value.Render(mode)+
			"    "+m.theme.Form.Label.Render("Refresh")+"  "+m.theme.Form.Value.Render(refresh),
		dates,
	)
	return m.theme.Panel.Frame.Render(body)
}

func (m Model) chartView(width int) string {
	title := m.title
	if title == "" {
		title = "📊 Mood Overview"
	} else {
		title = "📊 " + title
	}

	body := chart.Render(m.counts, width-8, m.theme)
	if m.warning != "" {
		body = m.theme.Footer.Warning.Render(m.warning)
	}

	return m.theme.Panel.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Panel.Title.Render(title),
		body,
	))
}

func (m Model) footerView() string {
	return m.theme.Footer.Status.Render(m.status)
}

func (m Model) fieldLabel(f field, label string) string {
	if m.focus == f && m.mode != modeInsert {
		return m.theme.Form.Focused.Render("› " + label)
	}
	return m.theme.Form.Label.Render("  " + label)
}

func (m Model) helpView() string {
	help := `
Mood Logger

  tab / shift+tab   move between fields
  ← / →             pick a mood
  enter             submit the selected mood and note
  i                 edit the focused text field (esc cancels)
  f                 toggle single day / date range filtering
  r                 toggle on-submission / interval refresh
  R                 reload now
  q                 quit
  ?                 close this help
`
	return m.theme.Panel.Frame.Render(strings.TrimSpace(help))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Run launches the Bubble Tea UI.
func Run(svc *appsvc.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
