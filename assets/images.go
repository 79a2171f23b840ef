package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io"
	"io/fs"
	"sync"

	"github.com/automoto/platformer/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader decodes sprite images from a filesystem and caches them by
// path. It satisfies animations.Loader.
type ImageLoader struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]animations.Image

	// decode turns encoded image bytes into a drawable image
	decode func(io.Reader) (animations.Image, error)
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]animations.Image),
		decode: func(r io.Reader) (animations.Image, error) {
			img, _, err := ebitenutil.NewImageFromReader(r)
			if err != nil {
				return nil, err
			}
			return img, nil
		},
	}
}

func (l *ImageLoader) LoadImage(path string) (animations.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := l.decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// MustLoadImage panics when path cannot be loaded.
func (l *ImageLoader) MustLoadImage(path string) animations.Image {
	img, err := l.LoadImage(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load image %s: %v", path, err))
	}
	return img
}

// Cached is the number of distinct images decoded so far.
func (l *ImageLoader) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}

// CopyImage returns an image with the same pixels that shares nothing with img.
func CopyImage(img animations.Image) animations.Image {
	switch src := img.(type) {
	case *ebiten.Image:
		return ebiten.NewImageFromImage(src)
	case image.Image:
		b := src.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	default:
		return img
	}
}

// FlipHorizontal returns a mirrored copy of img.
func FlipHorizontal(img animations.Image) animations.Image {
	switch src := img.(type) {
	case *ebiten.Image:
		w, h := src.Bounds().Dx(), src.Bounds().Dy()
		dst := ebiten.NewImage(w, h)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
		dst.DrawImage(src, op)
		return dst
	case image.Image:
		b := src.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				dst.Set(b.Dx()-1-x, y, src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
		return dst
	default:
		return img
	}
}
