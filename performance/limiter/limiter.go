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

package limiter

import (
	"time"
)

// FpsLimiter decides when the next event of a fixed rate sequence is due.
type FpsLimiter struct {
	period time.Duration
	next   time.Time
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
// A rate of zero or less is treated as one frame per second.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the rate of the limiter. The next deadline is not changed.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	if framesPerSecond <= 0 {
		framesPerSecond = 1
	}
	lim.period = time.Duration(float64(time.Second) / framesPerSecond)
}

// Period returns the time between deadlines.
func (lim *FpsLimiter) Period() time.Duration {
	return lim.period
}

// Reset schedules the next deadline to be one period after now.
func (lim *FpsLimiter) Reset(now time.Time) {
	lim.next = now.Add(lim.period)
}

// Until returns the time remaining until the next deadline. Returns zero if
// the deadline has passed.
func (lim *FpsLimiter) Until(now time.Time) time.Duration {
	return max(lim.next.Sub(now), 0)
}

// Due returns true if the next deadline has been reached. The deadline is
// consumed and the next one scheduled.
func (lim *FpsLimiter) Due(now time.Time) bool {
	if now.Before(lim.next) {
		return false
	}

	lim.next = lim.next.Add(lim.period)

	// falling behind by more than a period means rescheduling from now
	if !lim.next.After(now) {
		lim.next = now.Add(lim.period)
	}

	return true
}

// Measure calculates the actual rate of events. The rate is recalculated once
// every sample period.
type Measure struct {
	sample time.Duration
	start  time.Time
	count  int
	fps    float64
}

// NewMeasure is the preferred method of initialisation for the Measure type.
func NewMeasure(sample time.Duration) *Measure {
	return &Measure{sample: sample}
}

// Tick records that an event has happened at time now.
func (m *Measure) Tick(now time.Time) {
	if m.start.IsZero() {
		m.start = now
		return
	}

	m.count++
	if d := now.Sub(m.start); d >= m.sample {
		m.fps = float64(m.count) / d.Seconds()
		m.count = 0
		m.start = now
	}
}

// FPS returns the most recently calculated rate. Returns zero until the first
// sample period has elapsed.
func (m *Measure) FPS() float64 {
	return m.fps
}
