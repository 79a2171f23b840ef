package animations

import (
	"errors"
	"fmt"
	"math"
	"slices"

	dmath "github.com/yohamta/donburi/features/math"
)

// Epsilon nudges computed elapsed times past exact frame boundaries so a
// timestamp landing on a boundary always selects the frame that starts there.
const Epsilon = 0.00001

// State is the playback state of an Animation.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures an Animation at construction.
type Option func(*Animation)

// WithLoader sets the loader used for Path frame sources.
func WithLoader(l Loader) Option {
	return func(a *Animation) { a.loader = l }
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(a *Animation) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithImageCopier sets how CommitTransforms duplicates transformed images into
// frame-owned storage. Without it the transformed handle itself is adopted.
func WithImageCopier(fn func(Image) Image) Option {
	return func(a *Animation) {
		if fn != nil {
			a.copyImage = fn
		}
	}
}

// Animation plays a fixed sequence of frames against wall-clock time.
//
// Elapsed time is never accumulated tick by tick. It is derived on demand
// from two anchors (when playback started and, if paused, when it paused),
// the current time and the playback rate.
type Animation struct {
	frames      []Frame
	transformed []Image
	startTimes  []float64

	loop    bool
	rate    float64
	visible bool
	state   State

	playingStart float64
	pausedStart  float64

	loader    Loader
	clock     Clock
	copyImage func(Image) Image
}

// New builds an animation from frame specs. Path sources are loaded
// immediately; any failure aborts construction with an *InvalidFrameError.
func New(specs []FrameSpec, loop bool, opts ...Option) (*Animation, error) {
	a := &Animation{
		loop:      loop,
		rate:      1,
		visible:   true,
		state:     Stopped,
		clock:     WallClock,
		copyImage: func(img Image) Image { return img },
	}
	for _, opt := range opts {
		opt(a)
	}

	if len(specs) == 0 {
		return nil, &InvalidFrameError{Index: -1, Reason: "must contain at least one frame"}
	}

	frames := make([]Frame, 0, len(specs))
	for i, spec := range specs {
		if !(spec.Duration > 0) || math.IsInf(spec.Duration, 1) {
			return nil, &InvalidFrameError{
				Index:  i,
				Reason: fmt.Sprintf("duration must be greater than zero, got %v", spec.Duration),
			}
		}
		img, err := a.resolve(i, spec.Source)
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{Image: img, Duration: spec.Duration})
	}

	a.frames = frames
	a.startTimes = startTimesFor(frames)
	return a, nil
}

func (a *Animation) resolve(i int, src ImageSource) (Image, error) {
	switch {
	case src.IsHandle():
		return src.handle, nil
	case src.IsPath():
		if a.loader == nil {
			return nil, &InvalidFrameError{Index: i, Reason: fmt.Sprintf("no loader for image path %q", src.path)}
		}
		img, err := a.loader.LoadImage(src.path)
		if err == nil && img == nil {
			err = errors.New("loader returned no image")
		}
		if err != nil {
			return nil, &InvalidFrameError{
				Index:  i,
				Reason: "image could not be loaded",
				Err:    &ImageLoadError{Path: src.path, Err: err},
			}
		}
		return img, nil
	default:
		return nil, &InvalidFrameError{Index: i, Reason: "image must be a file path or a loaded image"}
	}
}

// Clone returns an independent copy that shares image handles with a.
// The copy starts stopped and visible.
func (a *Animation) Clone() *Animation {
	return &Animation{
		frames:      slices.Clone(a.frames),
		transformed: slices.Clone(a.transformed),
		startTimes:  slices.Clone(a.startTimes),
		loop:        a.loop,
		rate:        a.rate,
		visible:     true,
		state:       Stopped,
		loader:      a.loader,
		clock:       a.clock,
		copyImage:   a.copyImage,
	}
}

// Clones returns n independent copies of a.
func (a *Animation) Clones(n int) []*Animation {
	if n <= 0 {
		return nil
	}
	out := make([]*Animation, n)
	for i := range out {
		out[i] = a.Clone()
	}
	return out
}

// Play starts or resumes playback at the current clock time.
func (a *Animation) Play() { a.PlayAt(a.clock()) }

// PlayAt starts playback at time t. A paused animation resumes where it
// paused; a finished one-shot animation restarts; a running one is untouched.
func (a *Animation) PlayAt(t float64) {
	switch a.state {
	case Playing:
		if a.IsFinishedAt(t) {
			a.playingStart = t
		}
	case Stopped:
		a.playingStart = t
	case Paused:
		a.playingStart = t - (a.pausedStart - a.playingStart)
	}
	a.state = Playing
}

// Pause freezes playback at the current clock time.
func (a *Animation) Pause() { a.PauseAt(a.clock()) }

// PauseAt freezes playback at time t. Pausing a stopped animation leaves it
// paused at the start of the cycle.
func (a *Animation) PauseAt(t float64) {
	switch a.state {
	case Paused:
		return
	case Playing:
		a.pausedStart = t
	case Stopped:
		a.playingStart = t
		a.pausedStart = t
	}
	a.state = Paused
}

// Stop halts playback. Elapsed reads as zero until the next Play or Seek.
func (a *Animation) Stop() {
	a.state = Stopped
}

// Elapsed returns the position within the cycle at the current clock time.
func (a *Animation) Elapsed() float64 { return a.ElapsedAt(a.clock()) }

// ElapsedAt returns the position within the cycle at time now, wrapped for
// looping animations and clamped to the cycle for one-shots.
func (a *Animation) ElapsedAt(now float64) float64 {
	if a.state == Stopped {
		return 0
	}
	return a.normalize(a.rawElapsed(now)) + Epsilon
}

// Seek moves playback to elapsed at the current clock time.
func (a *Animation) Seek(elapsed float64) { a.SeekAt(elapsed, a.clock()) }

// SeekAt re-anchors playback so that ElapsedAt(now) reports elapsed. A stopped
// or paused animation ends up paused at that position.
// The anchor is solved against the rate, so the position is exact at any rate.
func (a *Animation) SeekAt(elapsed, now float64) {
	elapsed = a.normalize(elapsed)
	a.playingStart = now - elapsed/a.rate

	if a.state == Paused || a.state == Stopped {
		a.state = Paused
		a.pausedStart = now
	}
}

func (a *Animation) rawElapsed(now float64) float64 {
	switch a.state {
	case Playing:
		return (now - a.playingStart) * a.rate
	case Paused:
		return (a.pausedStart - a.playingStart) * a.rate
	}
	return 0
}

func (a *Animation) normalize(elapsed float64) float64 {
	cycle := a.CycleDuration()
	if a.loop {
		elapsed = math.Mod(elapsed, cycle)
		if elapsed < 0 {
			elapsed += cycle
		}
		return elapsed
	}
	return Clamp(0, elapsed, cycle)
}

// IsFinished reports whether a one-shot animation has played through.
func (a *Animation) IsFinished() bool { return a.IsFinishedAt(a.clock()) }

// IsFinishedAt reports whether a one-shot animation has played through at now.
// Looping animations never finish.
func (a *Animation) IsFinishedAt(now float64) bool {
	return !a.loop && a.ElapsedAt(now) >= a.CycleDuration()
}

// CurrentFrameIndex returns the index of the frame showing at the clock time.
func (a *Animation) CurrentFrameIndex() int { return a.CurrentFrameIndexAt(a.clock()) }

// CurrentFrameIndexAt returns the index of the frame showing at now.
func (a *Animation) CurrentFrameIndexAt(now float64) int {
	return FindFrameIndex(a.startTimes, a.ElapsedAt(now))
}

// CurrentFrame returns the image showing at the clock time.
func (a *Animation) CurrentFrame() Image {
	return a.Frame(a.CurrentFrameIndex())
}

// Frame returns the image drawn for frame i, preferring its transformed
// version when transforms are active.
func (a *Animation) Frame(i int) Image {
	if len(a.transformed) == 0 {
		return a.frames[i].Image
	}
	return a.transformed[i]
}

// Draw draws the frame showing at the clock time onto dst at pos.
// A finished one-shot animation is stopped first and draws nothing.
func (a *Animation) Draw(dst Surface, pos dmath.Vec2) {
	now := a.clock()
	if !a.drawable(now) {
		return
	}
	dst.DrawImage(a.Frame(FindFrameIndex(a.startTimes, a.ElapsedAt(now))), pos)
}

// DrawFrame draws frame i instead of the current one, with the same
// finished and visibility gating as Draw.
func (a *Animation) DrawFrame(i int, dst Surface, pos dmath.Vec2) {
	if !a.drawable(a.clock()) || i < 0 || i >= len(a.frames) {
		return
	}
	dst.DrawImage(a.Frame(i), pos)
}

// DrawAtTime draws the frame showing at the given elapsed time.
func (a *Animation) DrawAtTime(elapsed float64, dst Surface, pos dmath.Vec2) {
	if !a.drawable(a.clock()) {
		return
	}
	dst.DrawImage(a.Frame(FindFrameIndex(a.startTimes, elapsed)), pos)
}

func (a *Animation) drawable(now float64) bool {
	if a.IsFinishedAt(now) {
		a.Stop()
	}
	return a.visible && a.state != Stopped
}

// SetTransformed installs per-frame replacement images. The slice must match
// the number of frames.
func (a *Animation) SetTransformed(images []Image) error {
	if len(images) != len(a.frames) {
		return fmt.Errorf("transformed frames: got %d images, want %d", len(images), len(a.frames))
	}
	for i, img := range images {
		if img == nil {
			return fmt.Errorf("transformed frame %d is nil", i)
		}
	}
	a.transformed = slices.Clone(images)
	return nil
}

// ApplyTransform replaces every displayed image with fn's result. Originals are
// kept until CommitTransforms. A nil result keeps the displayed image.
func (a *Animation) ApplyTransform(fn func(i int, img Image) Image) {
	out := make([]Image, len(a.frames))
	for i := range a.frames {
		cur := a.Frame(i)
		if img := fn(i, cur); img != nil {
			cur = img
		}
		out[i] = cur
	}
	a.transformed = out
}

// HasTransforms reports whether transformed images are active.
func (a *Animation) HasTransforms() bool { return len(a.transformed) > 0 }

// ClearTransforms reverts drawing to the original frame images.
func (a *Animation) ClearTransforms() {
	a.transformed = nil
}

// CommitTransforms makes the transformed images the frame images. Each one is
// copied first, so images shared with clones are never written to.
func (a *Animation) CommitTransforms() {
	if len(a.transformed) == 0 {
		return
	}
	frames := make([]Frame, len(a.frames))
	for i, f := range a.frames {
		frames[i] = Frame{Image: a.copyImage(a.transformed[i]), Duration: f.Duration}
	}
	a.frames = frames
	a.transformed = nil
}

// Reverse flips frame order at the current clock time.
func (a *Animation) Reverse() { a.ReverseAt(a.clock()) }

// ReverseAt flips frame order and durations and mirrors the playback position
// so the frame on screen does not jump.
func (a *Animation) ReverseAt(now float64) {
	old := a.normalize(a.rawElapsed(now))

	a.frames = slices.Clone(a.frames)
	slices.Reverse(a.frames)
	if len(a.transformed) > 0 {
		a.transformed = slices.Clone(a.transformed)
		slices.Reverse(a.transformed)
	}
	a.startTimes = startTimesFor(a.frames)

	if a.state == Stopped {
		return
	}
	a.SeekAt(a.CycleDuration()-old, now)
}

// SetRate changes the playback speed multiplier at the current clock time.
func (a *Animation) SetRate(rate float64) { a.SetRateAt(rate, a.clock()) }

// SetRateAt changes the playback speed multiplier, keeping the current
// position. Non-positive rates are ignored.
func (a *Animation) SetRateAt(rate, now float64) {
	if !(rate > 0) || math.IsInf(rate, 1) || rate == a.rate {
		return
	}
	if a.state == Stopped {
		a.rate = rate
		return
	}

	pos := a.rawElapsed(now)
	ref := now
	if a.state == Paused {
		ref = a.pausedStart
	}
	a.rate = rate
	a.playingStart = ref - pos/rate
}

func (a *Animation) Rate() float64 { return a.rate }

func (a *Animation) State() State { return a.state }

func (a *Animation) Loop() bool { return a.loop }

func (a *Animation) Visible() bool { return a.visible }

// SetVisible hides or shows the animation without touching its timing.
func (a *Animation) SetVisible(v bool) { a.visible = v }

func (a *Animation) NumFrames() int { return len(a.frames) }

// Frames returns a copy of the frame list.
func (a *Animation) Frames() []Frame { return slices.Clone(a.frames) }

// StartTimes returns a copy of the cumulative frame start times. The last
// entry is the cycle duration.
func (a *Animation) StartTimes() []float64 { return slices.Clone(a.startTimes) }

// CycleDuration is the time to play every frame once.
func (a *Animation) CycleDuration() float64 {
	return a.startTimes[len(a.startTimes)-1]
}
