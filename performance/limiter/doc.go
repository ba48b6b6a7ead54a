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

// Package limiter schedules events at a fixed rate.
//
// Unlike a ticker the FpsLimiter does not run a goroutine. The owner of the
// limiter asks how long it is until the next deadline with Until() and waits
// for that long, typically while also waiting for input events. When the
// wait is over Due() reports whether the deadline has been reached:
//
//	lim := limiter.NewFPSLimiter(60)
//	lim.Reset(time.Now())
//	for {
//		ev := waitEvent(lim.Until(time.Now()))
//		handle(ev)
//		if lim.Due(time.Now()) {
//			renderImage()
//		}
//	}
//
// Due() consumes at most one deadline per call. If the owner has fallen
// behind by more than one period the next deadline is rescheduled from the
// current time, so ticks are never delivered in a burst.
//
// The Measure type measures the rate at which events actually occur.
package limiter
