package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/games/flappy"
)

// 40×30 cells show 400×600 exactly: one column is 10 units, one row 20.
func newTestSurface() *Surface {
	return NewSurface(400, 600, 40, 30, nil)
}

func TestSurfaceDrawImageFillsCoveredCells(t *testing.T) {
	s := newTestSurface()
	s.DrawImage(assets.Pipe, 200, 375, 60, 500)

	scr := s.Screen()
	if got := scr.GetCell(20, 19); got.Rune != '█' || got.Color != core.ColorGreen {
		t.Errorf("cell (20, 19) = %+v, expected a green pipe block", got)
	}
	if scr.Get(25, 29) != '█' {
		t.Error("pipe should extend to the bottom row")
	}
	for _, p := range [][2]int{{19, 19}, {26, 19}, {20, 18}} {
		if scr.Get(p[0], p[1]) != ' ' {
			t.Errorf("cell %v should be outside the pipe", p)
		}
	}
}

func TestSurfaceMirroredPipe(t *testing.T) {
	s := newTestSurface()
	s.Save()
	s.Translate(230, -25)
	s.Scale(1, -1)
	s.DrawImage(assets.Pipe, -30, -250, 60, 500)
	s.Restore()

	// The top pipe ends at y = 225, i.e. row 11.25.
	if s.Screen().Get(20, 10) != '█' {
		t.Error("mirrored pipe should cover row 10")
	}
	if s.Screen().Get(20, 11) != ' ' {
		t.Error("mirrored pipe should stop before row 11")
	}
	if s.Current() != core.Identity() {
		t.Error("Restore should return to the identity")
	}
}

func TestSurfaceLetterbox(t *testing.T) {
	s := NewSurface(400, 600, 100, 30, nil)
	s.DrawImage(assets.Pipe, 0, 0, 10, 20)

	// 30 rows fit 600 units; 40 of the 100 columns are used, centered.
	if s.Screen().Get(30, 0) != '█' {
		t.Errorf("letterboxed origin should be column 30, row 0 = %q", s.Screen().Row(0))
	}
	if s.Screen().Get(29, 0) != ' ' {
		t.Error("the margin should stay empty")
	}
}

func TestSurfaceSkipsUnavailableSprites(t *testing.T) {
	s := NewSurface(400, 600, 40, 30, func(name string) bool { return name != assets.Pipe })
	s.DrawImage(assets.Pipe, 0, 0, 400, 600)
	s.DrawImage("unknown", 0, 0, 400, 600)

	if strings.TrimSpace(s.Screen().String()) != "" {
		t.Error("unavailable sprites should draw nothing")
	}
}

func TestSurfaceText(t *testing.T) {
	s := newTestSurface()
	s.DrawText("12", 200, 100, 48, color.White)

	if got := s.Screen().Row(5)[19:21]; got != "12" {
		t.Errorf("text row = %q, expected 12 centered on column 20", s.Screen().Row(5))
	}
	if s.Screen().GetCell(19, 5).Color != core.ColorBrightWhite {
		t.Error("white text should map to bright white")
	}
	if got := s.MeasureText("abc", 48); got != 30 {
		t.Errorf("MeasureText() = %v, expected 30", got)
	}
}

func TestSurfaceOverlayDims(t *testing.T) {
	s := newTestSurface()
	s.DrawImage(assets.Pipe, 0, 0, 400, 600)

	s.FillRect(0, 0, 400, 600, color.NRGBA{})
	if s.Screen().GetCell(0, 0).Color != core.ColorGreen {
		t.Error("a transparent fill should not change anything")
	}

	s.FillRect(0, 0, 400, 600, color.NRGBA{A: 153})
	if s.Screen().GetCell(0, 0).Color != core.ColorGray {
		t.Error("a translucent fill should dim the cells")
	}
	if s.Screen().Get(0, 0) != '█' {
		t.Error("dimming should keep the runes")
	}
}

func TestSurfaceRendersSessionFrame(t *testing.T) {
	session := flappy.NewSession(config.Default(), flappy.Options{Seed: 1, BirdAspect: 1.5})
	s := newTestSurface()
	s.Begin()
	session.Render(s)

	out := s.Screen().String()
	if !strings.Contains(out, "F L A P P Y") {
		t.Error("menu should show the cover title")
	}
	if !strings.Contains(out, "@") {
		t.Error("menu should show the bird")
	}
	if s.Screen().Get(0, 29) != '▒' {
		t.Error("ground should fill the bottom rows")
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		in   color.Color
		want core.Color
	}{
		{color.RGBA{R: 255, G: 255, B: 255, A: 255}, core.ColorBrightWhite},
		{color.RGBA{R: 255, A: 255}, core.ColorBrightRed},
		{color.RGBA{A: 255}, core.ColorGray},
	}
	for _, tc := range tests {
		if got := nearestColor(tc.in); got != tc.want {
			t.Errorf("nearestColor(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
