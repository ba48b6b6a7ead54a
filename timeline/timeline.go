// This file is part of glcanvas.
//
// glcanvas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glcanvas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glcanvas.  If not, see <https://www.gnu.org/licenses/>.

// Package timeline describes the sample times of a stimulus run. The canvas
// does not schedule frames from the timeline. The real clock drives the
// render loop and the timeline only provides the deadline, which is the
// largest timestamp.
package timeline

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Timeline is an ordered sequence of timestamps in seconds. The zero value is
// an empty timeline.
type Timeline struct {
	ts []float64
}

// New creates a timeline from the timestamps. The timestamps are copied and
// sorted.
func New(ts ...float64) Timeline {
	c := slices.Clone(ts)
	slices.Sort(c)
	return Timeline{ts: c}
}

// Linspace returns n evenly spaced timestamps from start to stop inclusive.
// If n is one the only timestamp is start. If n is zero or less the timeline
// is empty.
func Linspace(start, stop float64, n int) Timeline {
	if n <= 0 {
		return Timeline{}
	}
	if n == 1 {
		return Timeline{ts: []float64{start}}
	}

	ts := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range ts {
		ts[i] = start + float64(i)*step
	}

	// the final value is exactly stop, regardless of rounding
	ts[n-1] = stop

	if stop < start {
		slices.Reverse(ts)
	}

	return Timeline{ts: ts}
}

// FromDuration returns the nominal evaluation times of a run that lasts for
// d at fps frames per second. The first timestamp is zero. A timestamp equal
// to d is not included because the run closes on reaching it.
func FromDuration(d time.Duration, fps float64) Timeline {
	if d <= 0 || fps <= 0 {
		return Timeline{}
	}
	n := int(math.Ceil(d.Seconds()*fps - 1e-9))
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / fps
	}
	return Timeline{ts: ts}
}

// Len returns the number of timestamps.
func (tl Timeline) Len() int {
	return len(tl.ts)
}

// At returns the timestamp at index i.
func (tl Timeline) At(i int) float64 {
	return tl.ts[i]
}

// Timestamps returns a copy of the timestamps.
func (tl Timeline) Timestamps() []float64 {
	return slices.Clone(tl.ts)
}

// Max returns the largest timestamp. An empty timeline has a maximum of zero.
func (tl Timeline) Max() float64 {
	if len(tl.ts) == 0 {
		return 0
	}
	return tl.ts[len(tl.ts)-1]
}

// Duration returns Max() as a time.Duration.
func (tl Timeline) Duration() time.Duration {
	return time.Duration(tl.Max() * float64(time.Second))
}

func (tl Timeline) String() string {
	if len(tl.ts) == 0 {
		return "empty timeline"
	}
	return fmt.Sprintf("%d samples from %.3fs to %.3fs", len(tl.ts), tl.ts[0], tl.Max())
}
