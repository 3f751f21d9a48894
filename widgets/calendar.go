package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	calHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fab387"))
	calWeekdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	calDayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	calSelStyle     = lipgloss.NewStyle().
			Background(lipgloss.Color("#fab387")).
			Foreground(lipgloss.Color("#1e1e2e")).
			Bold(true)
)

// Calendar is a month-grid date selection control. It always holds a valid
// selection; there is no empty state. The month index in the accessor is
// 0-based (January = 0), the convention layout consumers rely on.
type Calendar struct {
	name    string
	year    int
	month   int // 0-11
	day     int // 1-31
	visible bool
}

// NewCalendar returns a calendar selecting today's date.
func NewCalendar(name string) *Calendar {
	y, m, d := time.Now().Date()
	return &Calendar{name: name, year: y, month: int(m) - 1, day: d}
}

func (c *Calendar) ObjectName() string { return c.name }
func (c *Calendar) Kind() string       { return "calendar" }
func (c *Calendar) Show()              { c.visible = true }
func (c *Calendar) Visible() bool      { return c.visible }

// SelectedDate returns the current selection. The month is 0-indexed.
func (c *Calendar) SelectedDate() (year, month, day int) {
	return c.year, c.month, c.day
}

// SelectDate moves the selection. Out-of-range months wrap into adjacent
// years; the day is clamped to the length of the resulting month.
func (c *Calendar) SelectDate(year, month, day int) {
	for month < 0 {
		month += 12
		year--
	}
	for month > 11 {
		month -= 12
		year++
	}
	c.year, c.month = year, month
	c.day = clampDay(day, daysInMonth(year, month))
}

// HandleKey moves the selection. Reports whether the key was consumed.
func (c *Calendar) HandleKey(k string) bool {
	switch k {
	case "left", "h":
		if c.day > 1 {
			c.day--
		}
	case "right", "l":
		if c.day < daysInMonth(c.year, c.month) {
			c.day++
		}
	case "up", "k":
		c.day = clampDay(c.day-7, daysInMonth(c.year, c.month))
	case "down", "j":
		c.day = clampDay(c.day+7, daysInMonth(c.year, c.month))
	case "pgup", "[":
		c.SelectDate(c.year, c.month-1, c.day)
	case "pgdown", "]":
		c.SelectDate(c.year, c.month+1, c.day)
	case "shift+pgup", "{":
		c.SelectDate(c.year-1, c.month, c.day)
	case "shift+pgdown", "}":
		c.SelectDate(c.year+1, c.month, c.day)
	case "t":
		y, m, d := time.Now().Date()
		c.SelectDate(y, int(m)-1, d)
	default:
		return false
	}
	return true
}

// View renders the month grid, Monday first. The grid has a fixed width;
// rows are truncated when the host gives us less room than that.
func (c *Calendar) View(width int) string {
	const gridWidth = 7*3 - 1

	title := fmt.Sprintf("%s %d", time.Month(c.month+1), c.year)
	lines := []string{
		lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, calHeaderStyle.Render(title)),
		calWeekdayStyle.Render("Mo Tu We Th Fr Sa Su"),
	}

	first := time.Date(c.year, time.Month(c.month+1), 1, 0, 0, 0, 0, time.UTC)
	gap := (int(first.Weekday()) + 6) % 7
	total := daysInMonth(c.year, c.month)

	cells := make([]string, 0, 7)
	for i := 0; i < gap; i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= total; day++ {
		cell := fmt.Sprintf("%2d", day)
		if day == c.day {
			cell = calSelStyle.Render(cell)
		} else {
			cell = calDayStyle.Render(cell)
		}
		cells = append(cells, cell)
		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		for len(cells) < 7 {
			cells = append(cells, "  ")
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	if width > 0 && width < gridWidth {
		for i := range lines {
			lines[i] = ansi.Truncate(lines[i], width, "")
		}
	}
	return strings.Join(lines, "\n")
}

func daysInMonth(year, month int) int {
	// the zeroth day of the following month is this month's last
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(day, total int) int {
	if day < 1 {
		return 1
	}
	if day > total {
		return total
	}
	return day
}
