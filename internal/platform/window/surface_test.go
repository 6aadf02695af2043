package window

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/games/flappy"
)

func TestGeoMMatchesCoreTransform(t *testing.T) {
	ts := core.NewTransformStack()
	ts.Translate(230, -25)
	ts.Scale(1, -1)
	ts.Rotate(math.Pi / 6)

	g := geoM(ts.Current())
	for _, p := range [][2]float64{{0, 0}, {-30, -250}, {30, 250}, {12.5, -7}} {
		wx, wy := ts.Current().Apply(p[0], p[1])
		gx, gy := g.Apply(p[0], p[1])
		if math.Abs(wx-gx) > 1e-9 || math.Abs(wy-gy) > 1e-9 {
			t.Errorf("point %v: GeoM gives (%v, %v), expected (%v, %v)", p, gx, gy, wx, wy)
		}
	}
}

func TestKeyBindingsResolve(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range keyBindings {
		seen[b.name] = true
	}
	for _, name := range []string{core.KeySpace, core.KeyUp, core.KeyEnter, core.KeyEscape} {
		if !seen[name] {
			t.Errorf("no ebiten key bound to %q", name)
		}
	}

	for _, b := range keyBindings {
		a := flappy.Resolve(core.KeyEvent(b.name), flappy.PhasePlaying)
		if b.name == core.KeySpace || b.name == core.KeyUp {
			if a != core.ActionFlap {
				t.Errorf("%v while playing = %v, expected flap", b.key, a)
			}
		} else if a != core.ActionNone {
			t.Errorf("%v while playing = %v, expected none", b.key, a)
		}
	}
}
