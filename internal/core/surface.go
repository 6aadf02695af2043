package core

import "image/color"

// Surface is a fixed-size 2D drawing target in logical units.
//
// Transform calls compose onto the current transform in the order they are
// made, the same way a canvas context does: a Translate followed by a Rotate
// rotates about the translated origin. Save and Restore bracket transforms.
type Surface interface {
	// Size returns the logical dimensions of the surface.
	Size() (w, h float64)

	// DrawImage draws the named sprite stretched to the given box.
	// Unknown or missing sprites draw nothing.
	DrawImage(name string, x, y, w, h float64)

	// FillRect fills a box with a (possibly translucent) color.
	FillRect(x, y, w, h float64, c color.Color)

	// DrawText draws a single line centered horizontally and vertically on (x, y).
	DrawText(text string, x, y, size float64, c color.Color)

	// MeasureText returns the rendered width of text at the given font size.
	MeasureText(text string, size float64) float64

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(radians float64)
	Scale(sx, sy float64)
}
