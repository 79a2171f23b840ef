package animations

import "sort"

// FindFrameIndex returns the index i of the frame whose span
// [startTimes[i], startTimes[i+1]) contains target. A target sitting exactly on
// a boundary belongs to the frame starting there. Targets at or beyond the end
// of the cycle map to the last frame, negative targets to the first.
//
// startTimes must begin at 0 and hold one more entry than there are frames.
func FindFrameIndex(startTimes []float64, target float64) int {
	if len(startTimes) < 2 {
		return 0
	}
	if startTimes[0] != 0 {
		panic("animations: start times must begin at 0")
	}
	last := len(startTimes) - 2
	if target >= startTimes[len(startTimes)-1] {
		return last
	}

	// first boundary strictly after target, minus one
	i := sort.Search(len(startTimes), func(i int) bool {
		return startTimes[i] > target
	}) - 1

	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}

// Clamp limits value to [lower, upper].
func Clamp(lower, value, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

func startTimesFor(frames []Frame) []float64 {
	times := make([]float64, len(frames)+1)
	for i, f := range frames {
		times[i+1] = times[i] + f.Duration
	}
	return times
}
