// Package window runs the game in a desktop window using ebiten.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/games/flappy"
)

// Title is the window title.
const Title = "Flappy Cat"

// keyBindings maps the ebiten keys the game listens to onto normalized names.
var keyBindings = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyNumpadEnter, core.KeyEnter},
	{ebiten.KeyEscape, core.KeyEscape},
}

// App adapts a flappy.Session to ebiten.Game.
type App struct {
	ctx     context.Context
	session *flappy.Session
	surface *Surface
	logger  *log.Logger

	input   core.InputFrame
	touches []ebiten.TouchID
}

// NewApp creates the ebiten game. The app stops when ctx is cancelled.
func NewApp(ctx context.Context, session *flappy.Session, surface *Surface, logger *log.Logger) *App {
	return &App{
		ctx:     ctx,
		session: session,
		surface: surface,
		logger:  logger,
		input:   core.NewInputFrame(),
	}
}

// Update drains this frame's input and advances the session by one frame.
func (a *App) Update() error {
	if a.ctx.Err() != nil {
		a.logger.Info("closing window", "reason", context.Cause(a.ctx))
		return ebiten.Termination
	}

	a.collect()
	a.session.Frame(a.input)
	a.input.Clear()
	return nil
}

// collect queues the presses that started since the previous frame.
func (a *App) collect() {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			a.input.Push(core.KeyEvent(b.name))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.input.Push(core.InputEvent{Kind: core.EventPointer})
	}
	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	for range a.touches {
		a.input.Push(core.InputEvent{Kind: core.EventTouch})
	}
}

// Draw renders the session.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Begin(screen)
	a.session.Render(a.surface)
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.surface.Size()
	return int(w), int(h)
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(app *App) error {
	w, h := app.surface.Size()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One Update per displayed frame; physics is frame-coupled.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
