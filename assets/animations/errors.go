package animations

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrame is matched by every construction failure.
	ErrInvalidFrame = errors.New("invalid animation frame")
	// ErrImageLoad is matched when a frame path could not be loaded.
	ErrImageLoad = errors.New("image load failed")
)

// InvalidFrameError reports why New rejected a frame list.
// Index is -1 when the list itself is at fault (e.g. empty).
type InvalidFrameError struct {
	Index  int
	Reason string
	Err    error
}

func (e *InvalidFrameError) Error() string {
	msg := e.Reason
	if e.Index >= 0 {
		msg = fmt.Sprintf("frame %d: %s", e.Index, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidFrame, msg)
}

func (e *InvalidFrameError) Unwrap() error { return e.Err }

func (e *InvalidFrameError) Is(target error) bool { return target == ErrInvalidFrame }

// ImageLoadError wraps the loader failure for a frame path.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

func (e *ImageLoadError) Is(target error) bool { return target == ErrImageLoad }
