package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tansy/qsolog/core"
)

type RecordField struct {
	Key   string
	Label string
	Value string
}

// RecordEditor is the QSO entry form. The date field is filled through the
// calendar dialog rather than typed, so it always ends up in YYYYMMDD
// form.
type RecordEditor struct {
	title        string
	scope        string
	fields       []RecordField
	inputs       []textinput.Model
	focus        int
	hint         string
	suggest      func(callsign string) []string
	openCalendar func(field string) (core.Screen, error)
	onSubmit     func(values map[string]string) tea.Msg
}

// NewRecordEditor builds the form. suggest may be nil; openCalendar is
// invoked when the user asks for the date picker on the focused date
// field.
func NewRecordEditor(
	title, scope string,
	fields []RecordField,
	suggest func(callsign string) []string,
	openCalendar func(field string) (core.Screen, error),
	onSubmit func(values map[string]string) tea.Msg,
) *RecordEditor {
	inputs := make([]textinput.Model, 0, len(fields))
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = f.Label + ": "
		inp.SetValue(f.Value)
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &RecordEditor{
		title:        title,
		scope:        scope,
		fields:       fields,
		inputs:       inputs,
		suggest:      suggest,
		openCalendar: openCalendar,
		onSubmit:     onSubmit,
	}
}

func (s *RecordEditor) Title() string { return s.title }
func (s *RecordEditor) Scope() string { return s.scope }

// Value returns the current content of the named field.
func (s *RecordEditor) Value(key string) string {
	for i, f := range s.fields {
		if f.Key == key {
			return s.inputs[i].Value()
		}
	}
	return ""
}

func (s *RecordEditor) setValue(key, value string) {
	for i, f := range s.fields {
		if f.Key == key {
			s.inputs[i].SetValue(value)
			return
		}
	}
}

func (s *RecordEditor) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case DatePickedMsg:
		s.setValue(msg.Field, msg.Date)
		return s, nil, false
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "tab", "shift+tab":
			dir := 1
			if msg.String() == "shift+tab" {
				dir = -1
			}
			s.inputs[s.focus].Blur()
			s.focus = (s.focus + dir + len(s.inputs)) % len(s.inputs)
			s.inputs[s.focus].Focus()
			return s, nil, false
		case "ctrl+d":
			if s.openCalendar == nil || s.fields[s.focus].Key != "date" {
				return s, nil, false
			}
			dlg, err := s.openCalendar("date")
			if err != nil {
				return s, core.ErrorCmd(err), false
			}
			return s, func() tea.Msg { return core.PushScreenMsg{Screen: dlg} }, false
		case "enter":
			vals := map[string]string{}
			for i, f := range s.fields {
				vals[f.Key] = strings.TrimSpace(s.inputs[i].Value())
			}
			if s.onSubmit != nil {
				return s, func() tea.Msg { return s.onSubmit(vals) }, true
			}
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.refreshHint()
	return s, cmd, false
}

func (s *RecordEditor) refreshHint() {
	s.hint = ""
	if s.suggest == nil {
		return
	}
	callsign := strings.TrimSpace(s.Value("callsign"))
	if callsign == "" {
		return
	}
	if matches := s.suggest(callsign); len(matches) > 0 {
		s.hint = "worked before: " + strings.Join(matches, ", ")
	}
}

func (s *RecordEditor) View(width, height int) string {
	lines := []string{s.title, ""}
	for _, in := range s.inputs {
		lines = append(lines, in.View())
	}
	if s.hint != "" {
		lines = append(lines, "", s.hint)
	}
	lines = append(lines, "", "enter: save  esc: cancel  tab: next field  ctrl+d: pick date")
	return core.ClipHeight(strings.Join(lines, "\n"), max(4, height))
}
