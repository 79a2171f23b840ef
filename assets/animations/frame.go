package animations

import (
	"image"
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// Image is a drawable frame image. *ebiten.Image satisfies it.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is a destination the animation draws its current frame onto.
type Surface interface {
	DrawImage(img Image, pos dmath.Vec2)
}

// Loader resolves image paths used in frame specs.
type Loader interface {
	LoadImage(path string) (Image, error)
}

// LoaderFunc adapts a plain function to a Loader.
type LoaderFunc func(path string) (Image, error)

func (f LoaderFunc) LoadImage(path string) (Image, error) {
	return f(path)
}

// Clock returns the current wall-clock time in seconds.
type Clock func() float64

// WallClock reads the system clock.
func WallClock() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// ImageSource is either a path to load or an already loaded image.
// The zero value is neither and is rejected by New.
type ImageSource struct {
	path   string
	handle Image
}

// Path returns a source that is loaded through the animation's Loader.
func Path(p string) ImageSource {
	return ImageSource{path: p}
}

// Handle returns a source wrapping an already loaded image.
func Handle(img Image) ImageSource {
	return ImageSource{handle: img}
}

// IsPath reports whether the source names a file to load.
func (s ImageSource) IsPath() bool { return s.handle == nil && s.path != "" }

// IsHandle reports whether the source carries a loaded image.
func (s ImageSource) IsHandle() bool { return s.handle != nil }

func (s ImageSource) String() string {
	switch {
	case s.IsHandle():
		return "handle"
	case s.IsPath():
		return s.path
	default:
		return "<empty>"
	}
}

// FrameSpec describes one frame before construction.
type FrameSpec struct {
	Source   ImageSource
	Duration float64 // seconds, must be > 0
}

// Frame is an image and how long it stays on screen, in seconds.
type Frame struct {
	Image    Image
	Duration float64
}
