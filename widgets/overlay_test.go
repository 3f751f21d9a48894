package widgets

import (
	"strings"
	"testing"
)

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = strings.Repeat(".", 20)
	}
	rows[0] = "row-0..............."
	rows[8] = "row-8..............."
	out := RenderPopup(strings.Join(rows, "\n"), "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestRenderPopupZeroSize(t *testing.T) {
	if out := RenderPopup("base", "popup", 0, 5); out != "" {
		t.Fatalf("expected empty output at zero width, got %q", out)
	}
	if out := RenderPopup("base", "popup", 5, 0); out != "" {
		t.Fatalf("expected empty output at zero height, got %q", out)
	}
}

func TestRenderPopupKeepsBaseColumnsRightOfCard(t *testing.T) {
	base := strings.Repeat("ab", 20)
	lines := []string{}
	for i := 0; i < 7; i++ {
		lines = append(lines, base)
	}
	out := RenderPopup(strings.Join(lines, "\n"), "x", 40, 7)
	for _, line := range strings.Split(out, "\n") {
		if len(line) == 0 {
			t.Fatalf("expected padded lines")
		}
	}
	mid := strings.Split(out, "\n")[3]
	if !strings.HasPrefix(mid, "ab") {
		t.Fatalf("expected base content left of card, got %q", mid)
	}
	if !strings.HasSuffix(mid, "ab") {
		t.Fatalf("expected base content right of card, got %q", mid)
	}
}
