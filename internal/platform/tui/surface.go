package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2

// spriteStyle is how a sprite is approximated in the terminal.
type spriteStyle struct {
	fill  core.Cell
	label string // drawn centered instead of a fill when set
}

var spriteStyles = map[string]spriteStyle{
	assets.Background: {fill: core.Cell{Rune: ' ', Color: core.ColorDefault}},
	assets.Pipe:       {fill: core.Cell{Rune: '█', Color: core.ColorGreen}},
	assets.Ground:     {fill: core.Cell{Rune: '▒', Color: core.ColorYellow}},
	assets.Bird:       {fill: core.Cell{Rune: '@', Color: core.ColorOrange}},
	assets.Cover:      {label: "F L A P P Y   C A T", fill: core.Cell{Color: core.ColorBrightYellow}},
}

// Surface rasterizes logical drawing calls onto a character grid. The
// logical area is letterboxed into the terminal keeping its proportions.
type Surface struct {
	core.TransformStack

	width, height float64
	screen        *core.Screen
	available     func(name string) bool

	view core.Matrix // logical units to cells
	unit float64     // logical units per cell column
}

// NewSurface creates a terminal surface of cols×rows cells showing a
// width×height logical area. Sprites for which available reports false
// are not drawn.
func NewSurface(width, height float64, cols, rows int, available func(name string) bool) *Surface {
	s := &Surface{
		TransformStack: core.NewTransformStack(),
		width:          width,
		height:         height,
		screen:         core.NewScreen(cols, rows),
		available:      available,
	}
	s.fit()
	return s
}

// SpriteSet reports the sprites a loaded asset set can draw.
func SpriteSet(set *assets.Set) func(string) bool {
	return func(name string) bool {
		_, ok := set.Image(name)
		return ok
	}
}

// Resize changes the terminal grid and refits the logical area.
func (s *Surface) Resize(cols, rows int) {
	s.screen.Resize(cols, rows)
	s.fit()
}

func (s *Surface) fit() {
	cols, rows := float64(s.screen.Width()), float64(s.screen.Height())
	if cols <= 0 || rows <= 0 {
		s.unit = math.Inf(1)
		s.view = core.Matrix{}
		return
	}

	s.unit = math.Max(s.width/cols, s.height/(rows*cellAspect))
	offX := (cols - s.width/s.unit) / 2
	offY := (rows - s.height/(s.unit*cellAspect)) / 2
	s.view = core.Identity().Translate(offX, offY).Scale(1/s.unit, 1/(s.unit*cellAspect))
}

// Begin clears the grid and resets the transform for a new frame.
func (s *Surface) Begin() {
	s.screen.Clear()
	s.Reset()
}

// Screen returns the rasterized grid.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}

// Size returns the logical size.
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// DrawImage fills the cells covered by the transformed sprite box.
func (s *Surface) DrawImage(name string, x, y, w, h float64) {
	style, ok := spriteStyles[name]
	if !ok || (s.available != nil && !s.available(name)) {
		return
	}

	box := s.cellBounds(core.NewRect(x, y, w, h))
	if style.label != "" {
		cx, cy := box.Center()
		s.screen.DrawTextCentered(int(math.Floor(cx)), int(math.Floor(cy)), style.label, style.fill.Color)
		return
	}
	x0, y0, x1, y1 := cellSpan(box)
	s.screen.FillRect(x0, y0, x1, y1, style.fill)
}

// FillRect dims the covered cells for translucent colors and paints them
// with a block for opaque ones. Fully transparent fills draw nothing.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return
	}

	x0, y0, x1, y1 := cellSpan(s.cellBounds(core.NewRect(x, y, w, h)))
	if a < 0xffff {
		s.screen.DimRect(x0, y0, x1, y1)
		return
	}
	s.screen.FillRect(x0, y0, x1, y1, core.Cell{Rune: '█', Color: nearestColor(c)})
}

// DrawText writes text centered on the transformed anchor. Size is ignored;
// every rune is one cell.
func (s *Surface) DrawText(text string, x, y, _ float64, c color.Color) {
	cx, cy := s.view.Mul(s.Current()).Apply(x, y)
	s.screen.DrawTextCentered(int(math.Floor(cx)), int(math.Floor(cy)), text, nearestColor(c))
}

// MeasureText returns the logical width of text at one cell per rune.
func (s *Surface) MeasureText(text string, _ float64) float64 {
	return float64(len([]rune(text))) * s.unit
}

func (s *Surface) cellBounds(r core.Rect) core.Rect {
	return s.view.Mul(s.Current()).Bounds(r)
}

// cellSpan returns the half-open cell range whose centers lie inside r.
func cellSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(r.Left - 0.5))
	y0 = int(math.Ceil(r.Top - 0.5))
	x1 = int(math.Ceil(r.Right - 0.5))
	y1 = int(math.Ceil(r.Bottom - 0.5))
	return x0, y0, x1, y1
}

// nearestColor picks the terminal color closest to c.
func nearestColor(c color.Color) core.Color {
	r, g, b, _ := c.RGBA()
	r, g, b = r>>8, g>>8, b>>8

	switch {
	case r > 200 && g > 200 && b > 200:
		return core.ColorBrightWhite
	case r > 150 && g < 100 && b < 100:
		return core.ColorBrightRed
	case r > 150 && g > 150 && b < 100:
		return core.ColorBrightYellow
	case g > 150 && r < 100 && b < 100:
		return core.ColorBrightGreen
	case r < 60 && g < 60 && b < 60:
		return core.ColorGray
	default:
		return core.ColorWhite
	}
}
