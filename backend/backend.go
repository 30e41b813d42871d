package backend

import (
	"errors"

	graphics "github.com/gogpu/gg-graphics"
)

// ErrBackendNotAvailable is returned when a requested backend is not registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Factory creates a backend drawing onto a fresh surface of the given size.
type Factory func(width, height int) graphics.Graphics

// FileBackend is a backend that can save what it has drawn.
type FileBackend interface {
	graphics.Graphics

	// SaveToFile writes the surface to path.
	SaveToFile(path string) error
}
