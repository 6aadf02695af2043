// Package assets loads the game's sprite images.
//
// Every sprite is decoded on its own goroutine; the join waits for all of them
// to settle. A sprite that fails to load is logged and recorded, never fatal:
// the game starts anyway and drawing that sprite becomes a no-op.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Sprite names used by the renderer.
const (
	Cover      = "cover"
	Background = "background"
	Ground     = "base"
	Pipe       = "pipe"
	Bird       = "cat"
)

// Entry maps a sprite name to a file inside the asset filesystem.
type Entry struct {
	Name string
	Path string
}

// Manifest lists every sprite the game preloads.
var Manifest = []Entry{
	{Name: Cover, Path: "cover.png"},
	{Name: Background, Path: "background.png"},
	{Name: Ground, Path: "base.png"},
	{Name: Pipe, Path: "pipe.png"},
	{Name: Bird, Path: "cat.png"},
}

// Set holds the outcome of a load: decoded images by name plus failures.
type Set struct {
	images   map[string]image.Image
	failures map[string]error
}

// Image returns a loaded sprite.
func (s *Set) Image(name string) (image.Image, bool) {
	if s == nil {
		return nil, false
	}
	img, ok := s.images[name]
	return img, ok
}

// Aspect returns width/height of a sprite, or 1 when it is missing or empty.
func (s *Set) Aspect(name string) float64 {
	img, ok := s.Image(name)
	if !ok {
		return 1
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 1
	}
	return float64(b.Dx()) / float64(b.Dy())
}

// Failures returns the sprites that failed to load and why.
func (s *Set) Failures() map[string]error {
	return s.failures
}

type result struct {
	img image.Image
	err error
}

// Load decodes every manifest entry from fsys concurrently and waits until
// each one has either loaded or failed.
func Load(ctx context.Context, fsys fs.FS, manifest []Entry, logger *log.Logger) *Set {
	results := make([]result, len(manifest))

	var g errgroup.Group
	for i, e := range manifest {
		i, e := i, e
		g.Go(func() error {
			img, err := decode(ctx, fsys, e.Path)
			results[i] = result{img: img, err: err}
			// Never fail the group: one broken sprite must not cancel the rest.
			return nil
		})
	}
	_ = g.Wait()

	set := &Set{
		images:   make(map[string]image.Image, len(manifest)),
		failures: make(map[string]error),
	}
	for i, e := range manifest {
		if err := results[i].err; err != nil {
			logger.Error("failed to load image", "name", e.Name, "path", e.Path, "error", err)
			set.failures[e.Name] = err
			continue
		}
		set.images[e.Name] = results[i].img
	}

	logger.Info("all images settled", "loaded", len(set.images), "failed", len(set.failures))
	return set
}

func decode(ctx context.Context, fsys fs.FS, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}
