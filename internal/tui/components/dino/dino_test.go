package dino

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestSpriteLoops(t *testing.T) {
	t.Parallel()

	s := Sprite{}
	for range FrameCount() {
		s = s.Next()
	}
	if s.Frame != 0 {
		t.Errorf("after a full loop Frame = %d, want 0", s.Frame)
	}
}

func TestSpriteFramesShareSize(t *testing.T) {
	t.Parallel()

	first := Sprite{}.Render()
	for i := 1; i < FrameCount(); i++ {
		got := Sprite{Frame: i}.Render()
		if lipgloss.Height(got) != lipgloss.Height(first) {
			t.Errorf("frame %d height %d, want %d", i, lipgloss.Height(got), lipgloss.Height(first))
		}
	}
	lines := strings.Split(ansi.Strip(first), "\n")
	shadow := strings.TrimSpace(lines[len(lines)-1])
	if shadow == "" || strings.Trim(shadow, "▀") != "" {
		t.Errorf("last line = %q, want a shadow", shadow)
	}
}
