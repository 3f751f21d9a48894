package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSelectedDateKeepsZeroIndexedMonth(t *testing.T) {
	c := NewCalendar("calendar")
	c.SelectDate(2017, 2, 5)
	year, month, day := c.SelectedDate()
	if year != 2017 || month != 2 || day != 5 {
		t.Fatalf("SelectedDate() = (%d,%d,%d), want (2017,2,5)", year, month, day)
	}
	if view := c.View(0); !strings.Contains(view, "March 2017") {
		t.Fatalf("expected view titled March 2017, got %q", view)
	}
}

func TestSelectDateWrapsMonthsIntoAdjacentYears(t *testing.T) {
	c := NewCalendar("calendar")
	c.SelectDate(2020, -1, 5)
	year, month, _ := c.SelectedDate()
	if year != 2019 || month != 11 {
		t.Fatalf("month -1 of 2020 = (%d,%d), want (2019,11)", year, month)
	}
	c.SelectDate(2020, 12, 5)
	year, month, _ = c.SelectedDate()
	if year != 2021 || month != 0 {
		t.Fatalf("month 12 of 2020 = (%d,%d), want (2021,0)", year, month)
	}
}

func TestMonthNavigationClampsDay(t *testing.T) {
	c := NewCalendar("calendar")
	c.SelectDate(2019, 0, 31)
	if !c.HandleKey("pgdown") {
		t.Fatalf("expected pgdown to be consumed")
	}
	year, month, day := c.SelectedDate()
	if year != 2019 || month != 1 || day != 28 {
		t.Fatalf("Jan 31 + month = (%d,%d,%d), want (2019,1,28)", year, month, day)
	}
}

func TestYearNavigationClampsLeapDay(t *testing.T) {
	c := NewCalendar("calendar")
	c.SelectDate(2020, 1, 29)
	c.HandleKey("shift+pgdown")
	year, month, day := c.SelectedDate()
	if year != 2021 || month != 1 || day != 28 {
		t.Fatalf("Feb 29 2020 + year = (%d,%d,%d), want (2021,1,28)", year, month, day)
	}
}

func TestDayNavigationStaysInsideMonth(t *testing.T) {
	c := NewCalendar("calendar")
	c.SelectDate(2017, 2, 1)
	c.HandleKey("left")
	if _, _, day := c.SelectedDate(); day != 1 {
		t.Fatalf("left at day 1 moved to %d", day)
	}
	c.SelectDate(2017, 2, 31)
	c.HandleKey("right")
	if _, _, day := c.SelectedDate(); day != 31 {
		t.Fatalf("right at last day moved to %d", day)
	}
	c.HandleKey("up")
	if _, _, day := c.SelectedDate(); day != 24 {
		t.Fatalf("up from 31 = %d, want 24", day)
	}
}

func TestViewTruncatesToNarrowWidth(t *testing.T) {
	c := NewCalendar("calendar")
	c.SelectDate(2017, 2, 5)
	for _, line := range strings.Split(c.View(10), "\n") {
		if w := ansi.StringWidth(line); w > 10 {
			t.Fatalf("line wider than requested width: %d %q", w, line)
		}
	}
}

func TestUnknownKeysAreNotConsumed(t *testing.T) {
	c := NewCalendar("calendar")
	if c.HandleKey("x") {
		t.Fatalf("expected x to be ignored")
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2020, 1, 29}, // leap February
		{2019, 1, 28},
		{2017, 0, 31},
		{2017, 3, 30},
		{2017, 11, 31},
	}
	for _, c := range cases {
		if got := daysInMonth(c.year, c.month); got != c.want {
			t.Fatalf("daysInMonth(%d,%d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestShowAllShowsChildren(t *testing.T) {
	cal := NewCalendar("calendar")
	dlg := NewDialog("calendar_dialog", "Select a date", cal)
	if dlg.Visible() || cal.Visible() {
		t.Fatalf("widgets must start hidden")
	}
	dlg.ShowAll()
	if !dlg.Visible() || !cal.Visible() {
		t.Fatalf("ShowAll must show the dialog and its children")
	}
}
