package screens

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tansy/qsolog/core"
	"github.com/tansy/qsolog/layout"
	"github.com/tansy/qsolog/widgets"
)

// DatePickedMsg carries a confirmed calendar selection back to whichever
// screen opened the dialog.
type DatePickedMsg struct {
	// Field names the input the date belongs to, e.g. "date".
	Field string
	// Date is in YYYYMMDD form, as ADIF wants it.
	Date string
}

// CalendarDialog is a modal dialog wrapping a calendar widget. Using it
// guarantees the picked date is in the YYYYMMDD format ADIF requires.
//
// The dialog owns nothing but references: the calendar widget holds the
// selection, and Date reads it at query time.
type CalendarDialog struct {
	builder  layout.Builder
	dialog   *widgets.Dialog
	calendar *widgets.Calendar
	field    string
}

// NewCalendarDialog instantiates the "calendar_dialog" object and its
// "calendar" child from the layout resource at resourcePath, then shows
// the dialog. A missing or malformed resource is fatal: the error is
// returned and there is no fallback UI.
//
// field is echoed back in the DatePickedMsg so the opener can route the
// result to the right input.
func NewCalendarDialog(builder layout.Builder, resourcePath, field string) (*CalendarDialog, error) {
	slog.Debug("setting up the calendar dialog", "resource", resourcePath)
	if err := builder.AddObjectsFromFile(resourcePath, "calendar_dialog"); err != nil {
		return nil, err
	}
	obj, err := builder.GetObject("calendar_dialog")
	if err != nil {
		return nil, err
	}
	dialog, ok := obj.(*widgets.Dialog)
	if !ok {
		return nil, fmt.Errorf("object %q is a %s, not a dialog", "calendar_dialog", obj.Kind())
	}
	obj, err = builder.GetObject("calendar")
	if err != nil {
		return nil, err
	}
	calendar, ok := obj.(*widgets.Calendar)
	if !ok {
		return nil, fmt.Errorf("object %q is a %s, not a calendar", "calendar", obj.Kind())
	}
	dialog.ShowAll()
	slog.Debug("calendar dialog ready")
	return &CalendarDialog{builder: builder, dialog: dialog, calendar: calendar, field: field}, nil
}

// Date returns the calendar widget's selection in YYYYMMDD form. The
// widget reports months 0-indexed, so one is added before padding.
func (d *CalendarDialog) Date() string {
	slog.Debug("retrieving the date from the calendar")
	year, month, day := d.calendar.SelectedDate()
	m := strconv.Itoa(month + 1)
	if month+1 < 10 {
		m = "0" + m
	}
	dd := strconv.Itoa(day)
	if day < 10 {
		dd = "0" + dd
	}
	return strconv.Itoa(year) + m + dd
}

// Calendar exposes the wrapped widget for pre-seeding the selection.
func (d *CalendarDialog) Calendar() *widgets.Calendar { return d.calendar }

func (d *CalendarDialog) Title() string { return d.dialog.Title() }
func (d *CalendarDialog) Scope() string { return "modal:calendar" }

func (d *CalendarDialog) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch keyMsg.String() {
	case "esc":
		return d, nil, true
	case "enter":
		picked := DatePickedMsg{Field: d.field, Date: d.Date()}
		return d, func() tea.Msg { return picked }, true
	}
	d.calendar.HandleKey(keyMsg.String())
	return d, nil, false
}

func (d *CalendarDialog) View(width, height int) string {
	lines := []string{
		d.dialog.Title(),
		"",
		d.calendar.View(width),
		"",
		"enter: pick  esc: cancel  pgup/pgdn: month  [/]: month  {/}: year",
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
