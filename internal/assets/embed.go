package assets

import (
	"embed"
	"io/fs"
)

//go:embed sprites/*.png
var sprites embed.FS

// Embedded returns the sprites compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(sprites, "sprites")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}
