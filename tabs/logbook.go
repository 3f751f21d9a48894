package tabs

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tansy/qsolog/core"
	"github.com/tansy/qsolog/internal/database/repository"
	"github.com/tansy/qsolog/internal/service"
	"github.com/tansy/qsolog/layout"
	"github.com/tansy/qsolog/screens"
)

var (
	logHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fab387"))
	logRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	logCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#313244")).
			Foreground(lipgloss.Color("#cdd6f4")).
			Bold(true)
	logEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

type qsosLoadedMsg struct {
	qsos []repository.QSO
	err  error
}

type qsoSavedMsg struct {
	callsign string
	err      error
}

// LogbookTab lists recorded contacts and hosts the entry form and the
// calendar dialog.
type LogbookTab struct {
	repo           *repository.QSORepo
	dupes          *service.DupeChecker
	layoutResource string
	qsos           []repository.QSO
	cursor         int
	pendingDateID  string
}

func NewLogbookTab(repo *repository.QSORepo, dupes *service.DupeChecker, layoutResource string) *LogbookTab {
	return &LogbookTab{repo: repo, dupes: dupes, layoutResource: layoutResource}
}

func (t *LogbookTab) ID() string    { return "logbook" }
func (t *LogbookTab) Title() string { return "Logbook" }
func (t *LogbookTab) Scope() string { return "tab:logbook" }

func (t *LogbookTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.loadCmd()
}

func (t *LogbookTab) loadCmd() tea.Cmd {
	return func() tea.Msg {
		qsos, err := t.repo.List(context.Background(), repository.QSOFilters{})
		return qsosLoadedMsg{qsos: qsos, err: err}
	}
}

func (t *LogbookTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case qsosLoadedMsg:
		if msg.err != nil {
			m.SetError(msg.err)
			return nil
		}
		t.qsos = msg.qsos
		if t.cursor >= len(t.qsos) {
			t.cursor = max(0, len(t.qsos)-1)
		}
		m.SetStatus(fmt.Sprintf("%d contacts", len(t.qsos)))
		return nil
	case qsoSavedMsg:
		if msg.err != nil {
			m.SetError(msg.err)
			return nil
		}
		m.SetStatus("Logged " + msg.callsign)
		return t.loadCmd()
	case screens.DatePickedMsg:
		if msg.Field != "row-date" || t.pendingDateID == "" {
			return nil
		}
		id := t.pendingDateID
		t.pendingDateID = ""
		return func() tea.Msg {
			if err := t.repo.UpdateDate(context.Background(), id, msg.Date); err != nil {
				return core.StatusMsg{Text: err.Error(), IsErr: true}
			}
			return t.loadCmd()()
		}
	case tea.KeyMsg:
		return t.handleKey(m, msg)
	}
	return nil
}

func (t *LogbookTab) handleKey(m *core.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.qsos)-1 {
			t.cursor++
		}
	case "r":
		return t.loadCmd()
	case "a":
		m.PushScreen(t.newRecordEditor())
	case "d":
		if len(t.qsos) == 0 {
			return nil
		}
		selected := t.qsos[t.cursor]
		dlg, err := t.openCalendar("row-date", selected.Date)
		if err != nil {
			m.SetError(err)
			return nil
		}
		t.pendingDateID = selected.ID
		m.PushScreen(dlg)
	}
	return nil
}

// openCalendar builds the date-picker dialog, seeded with an existing
// YYYYMMDD value when one is available.
func (t *LogbookTab) openCalendar(field, seed string) (core.Screen, error) {
	dlg, err := screens.NewCalendarDialog(layout.NewBuilder(), t.layoutResource, field)
	if err != nil {
		return nil, err
	}
	if year, month, day, ok := splitADIFDate(seed); ok {
		dlg.Calendar().SelectDate(year, month, day)
	}
	return dlg, nil
}

func (t *LogbookTab) newRecordEditor() core.Screen {
	fields := []screens.RecordField{
		{Key: "callsign", Label: "Callsign"},
		{Key: "date", Label: "Date (YYYYMMDD)", Value: ""},
		{Key: "time_on", Label: "Time on (HHMM)", Value: time.Now().UTC().Format("1504")},
		{Key: "band", Label: "Band"},
		{Key: "mode", Label: "Mode"},
		{Key: "rst_sent", Label: "RST sent", Value: "59"},
		{Key: "rst_rcvd", Label: "RST rcvd", Value: "59"},
		{Key: "comment", Label: "Comment"},
	}
	suggest := func(callsign string) []string {
		matches, err := t.dupes.WorkedBefore(context.Background(), callsign, 3)
		if err != nil {
			return nil
		}
		out := make([]string, 0, len(matches))
		for _, match := range matches {
			out = append(out, match.Callsign)
		}
		return out
	}
	openCalendar := func(field string) (core.Screen, error) {
		return t.openCalendar(field, "")
	}
	onSubmit := func(values map[string]string) tea.Msg {
		q := repository.QSO{
			ID:       uuid.NewString(),
			Callsign: values["callsign"],
			Date:     values["date"],
			TimeOn:   values["time_on"],
			Band:     values["band"],
			Mode:     values["mode"],
			RSTSent:  values["rst_sent"],
			RSTRcvd:  values["rst_rcvd"],
			Comment:  values["comment"],
		}
		if q.Callsign == "" {
			return core.StatusMsg{Text: "callsign is required", IsErr: true}
		}
		if err := t.repo.Insert(context.Background(), q); err != nil {
			return qsoSavedMsg{err: err}
		}
		return qsoSavedMsg{callsign: strings.ToUpper(q.Callsign)}
	}
	return screens.NewRecordEditor("Log a contact", "modal:record", fields, suggest, openCalendar, onSubmit)
}

func (t *LogbookTab) View(m *core.Model, width, height int) string {
	_ = m
	header := fmt.Sprintf("%-12s %-10s %-6s %-8s %-8s %s", "CALLSIGN", "DATE", "TIME", "BAND", "MODE", "COMMENT")
	lines := []string{logHeaderStyle.Render(header)}
	if len(t.qsos) == 0 {
		lines = append(lines, logEmptyStyle.Render("No contacts logged. Press a to log one."))
	}
	for i, q := range t.qsos {
		row := fmt.Sprintf("%-12s %-10s %-6s %-8s %-8s %s", q.Callsign, q.Date, q.TimeOn, q.Band, q.Mode, q.Comment)
		if i == t.cursor {
			lines = append(lines, logCursorStyle.Render(row))
		} else {
			lines = append(lines, logRowStyle.Render(row))
		}
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(1, height))
}

// splitADIFDate parses a YYYYMMDD string into a 0-indexed-month triple.
func splitADIFDate(s string) (year, month, day int, ok bool) {
	if len(s) != 8 {
		return 0, 0, 0, false
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0, 0, 0, false
	}
	m, err := strconv.Atoi(s[4:6])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, 0, false
	}
	d, err := strconv.Atoi(s[6:])
	if err != nil || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return y, m - 1, d, true
}
