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

package canvas

import (
	"image"
	"time"

	"github.com/jetsetilly/glcanvas/userinput"
)

// Backend is the display. The canvas uploads images to the backend's single
// texture and asks for the texture to be drawn.
type Backend interface {
	// Size returns the size of the drawable area in physical pixels
	Size() (width, height int)

	// SetViewport changes the area of the window that the texture is drawn to
	SetViewport(x, y, width, height int)

	// Upload replaces the contents of the texture. The backend must not
	// retain the image after returning
	Upload(img *image.RGBA) error

	// Draw the texture and present the result
	Draw() error

	SetFullscreen(fullscreen bool) error

	// WaitEvent waits for an input event for no longer than the timeout.
	// Returns nil if no event arrived in that time
	WaitEvent(timeout time.Duration) userinput.Event

	Destroy()
}

// Overlay is implemented by backends that can draw a text overlay on top of
// the texture. A nil or empty list of lines hides the overlay.
type Overlay interface {
	SetOverlay(lines []string)
}

// Screenshotter is implemented by backends that can save the contents of the
// window to a file.
type Screenshotter interface {
	Screenshot(filename string) error
}

// Marker is implemented by devices that signal the onset and offset of the
// stimulus to external equipment.
type Marker interface {
	Onset() error
	Offset() error
}

// Soundtrack is implemented by types that play audio alongside the stimulus.
// Pause() is only called between Play() and Stop().
type Soundtrack interface {
	Play() error
	Pause(paused bool)
	Stop()
}

// Clock is the source of time for the canvas.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// RealClock is the default Clock.
var RealClock Clock = realClock{}
