package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/core"
)

// Surface draws onto an ebiten image in logical units.
type Surface struct {
	core.TransformStack

	width, height float64
	dst           *ebiten.Image
	images        map[string]*ebiten.Image
	pixel         *ebiten.Image
	font          *text.GoTextFaceSource
	faces         map[float64]*text.GoTextFace
	missing       map[string]bool
	logger        *log.Logger
}

// NewSurface converts the loaded sprites into GPU images. Sprites that failed
// to load are simply absent.
func NewSurface(width, height float64, set *assets.Set, logger *log.Logger) (*Surface, error) {
	font, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	s := &Surface{
		TransformStack: core.NewTransformStack(),
		width:          width,
		height:         height,
		images:         make(map[string]*ebiten.Image, len(assets.Manifest)),
		pixel:          ebiten.NewImage(1, 1),
		font:           font,
		faces:          make(map[float64]*text.GoTextFace),
		missing:        make(map[string]bool),
		logger:         logger,
	}
	s.pixel.Fill(color.White)

	for _, e := range assets.Manifest {
		if img, ok := set.Image(e.Name); ok {
			s.images[e.Name] = ebiten.NewImageFromImage(img)
		}
	}
	return s, nil
}

// Begin targets dst for the next frame and resets the transform.
func (s *Surface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.Reset()
}

// Size returns the logical size.
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// DrawImage draws a sprite stretched to the box. Missing sprites are logged
// once and otherwise skipped.
func (s *Surface) DrawImage(name string, x, y, w, h float64) {
	img, ok := s.images[name]
	if !ok {
		if !s.missing[name] {
			s.missing[name] = true
			s.logger.Warn("sprite not loaded, skipping", "sprite", name)
		}
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geoM(s.Current()))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// FillRect fills a box by stretching a white pixel and tinting it.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geoM(s.Current()))
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.pixel, op)
}

// DrawText draws one line centered on (x, y).
func (s *Surface) DrawText(str string, x, y, size float64, c color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geoM(s.Current()))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face(size), op)
}

// MeasureText returns the advance width of str at size.
func (s *Surface) MeasureText(str string, size float64) float64 {
	w, _ := text.Measure(str, s.face(size), 0)
	return w
}

func (s *Surface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.font, Size: size}
		s.faces[size] = f
	}
	return f
}

// geoM converts a core transform into ebiten's representation.
func geoM(m core.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.E)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.F)
	return g
}
