package flappy

import (
	"image/color"
	"math"
	"strconv"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
)

// Text prompts.
const (
	StartPrompt  = "Press SPACE or Click to start"
	ReplayPrompt = "Press SPACE or Click to replay"
	GameOverText = "GAME OVER"
)

// Text sizes and layout.
const (
	scoreSize    = 48
	gameOverSize = 48
	finalSize    = 38
	promptSize   = 28
	textPadding  = 20

	coverWidthRatio  = 0.8    // of screen width
	coverHeightRatio = 0.3125 // of cover width
	menuPromptDY     = 80     // below the screen center
)

var (
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRed   = color.RGBA{R: 255, A: 255}
)

// Render draws the current frame. The scene is drawn in every phase; the menu
// and round-over layers go on top.
func (s *Session) Render(dst core.Surface) {
	cfg := s.cfg
	r := s.round
	w, h := cfg.Screen.Width, cfg.Screen.Height

	dst.DrawImage(assets.Background, 0, 0, w, h)

	o := cfg.Obstacles
	for _, p := range r.Pipes {
		// The top pipe is the same sprite mirrored about its own center.
		dst.Save()
		dst.Translate(p.X+o.Width/2, p.TopY(o)+o.SpriteHeight/2)
		dst.Scale(1, -1)
		dst.DrawImage(assets.Pipe, -o.Width/2, -o.SpriteHeight/2, o.Width, o.SpriteHeight)
		dst.Restore()

		dst.DrawImage(assets.Pipe, p.X, p.BottomY(o), o.Width, o.SpriteHeight)
	}

	gy := cfg.GroundY()
	gw := cfg.Ground.SpriteWidth
	dst.DrawImage(assets.Ground, r.GroundOffset, gy, gw, cfg.Ground.Height)
	dst.DrawImage(assets.Ground, r.GroundOffset+gw, gy, gw, cfg.Ground.Height)

	b := r.Bird
	dst.Save()
	dst.Translate(b.X, b.Y+s.MenuBob())
	dst.Rotate(b.Angle * math.Pi / 180)
	dst.DrawImage(assets.Bird, -b.Width/2, -b.Height/2, b.Width, b.Height)
	dst.Restore()

	maxW := w - textPadding
	drawFitted(dst, cfg.Text, strconv.Itoa(r.Score), w/2, h/6, scoreSize, maxW, colorWhite)

	switch s.phase {
	case PhaseMenu:
		cw := w * coverWidthRatio
		ch := cw * coverHeightRatio
		dst.DrawImage(assets.Cover, (w-cw)/2, h/3-ch/2, cw, ch)
		drawFitted(dst, cfg.Text, StartPrompt, w/2, h/2+menuPromptDY, promptSize, maxW, colorWhite)
	case PhaseRoundOver:
		dst.FillRect(0, 0, w, h, color.NRGBA{A: uint8(math.Round(s.alpha * 255))})
		drawFitted(dst, cfg.Text, GameOverText, w/2, h/2-50, gameOverSize, maxW, colorRed)
		drawFitted(dst, cfg.Text, "Score: "+strconv.Itoa(r.Score), w/2, h/2+10, finalSize, maxW, colorWhite)
		drawFitted(dst, cfg.Text, ReplayPrompt, w/2, h/2+50, promptSize, maxW, colorWhite)
	}
}

// FitText shrinks size by the configured step until text fits in maxWidth or
// the minimum size is reached.
func FitText(dst core.Surface, t config.Text, text string, size, maxWidth float64) float64 {
	for dst.MeasureText(text, size) > maxWidth && size > t.MinSize {
		size -= t.ShrinkStep
	}
	return size
}

func drawFitted(dst core.Surface, t config.Text, text string, x, y, size, maxWidth float64, c color.Color) {
	dst.DrawText(text, x, y, FitText(dst, t, text, size, maxWidth), c)
}
