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

// Package canvas is the render loop. It displays a stimulus on a single
// texture that covers the entire window.
//
// A Canvas is created with New(). New() evaluates the stimulus at time zero,
// checks the frame against the dimensions declared by the stimulus and
// uploads it to the backend. The first frame is therefore visible before the
// loop starts.
//
// Run() is the loop itself. It waits for input events with a timeout equal to
// the time remaining until the next frame is due. When a frame is due the
// stimulus is evaluated at the elapsed time and the result is uploaded and
// drawn. The loop ends when the elapsed time reaches the deadline or when the
// user quits.
//
// Time spent paused is not included in the elapsed time. The stimulus is not
// evaluated while the canvas is paused.
//
// Errors from the stimulus or the backend end the loop and are returned by
// Run(). There is no attempt to recover.
//
// The canvas is not safe for concurrent use. Run() should be called from the
// main thread because that is where most windowing systems expect to be
// driven from.
package canvas
