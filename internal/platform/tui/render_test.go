package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "abcd  ")
	}
	if lines[1] != "plain " {
		t.Errorf("line 1 = %q, expected %q", lines[1], "plain ")
	}
}

func TestRenderScreenEveryColor(t *testing.T) {
	s := core.NewScreen(int(core.ColorDarkGray)+1, 1)
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
		s.SetColored(int(c), 0, '#', c)
	}

	out := ansi.Strip(RenderScreen(s))
	if out != strings.Repeat("#", s.Width()) {
		t.Errorf("rendered %q", out)
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}
