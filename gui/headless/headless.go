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

// Package headless is an implementation of canvas.Backend that has no window.
// Uploaded images are counted and the most recent upload is kept so that it
// can be inspected. Useful for measuring the performance of a stimulus
// without the cost of the display.
package headless

import (
	"image"
	"image/draw"
	"time"

	"github.com/jetsetilly/glcanvas/userinput"
)

// Headless implements the canvas.Backend interface.
type Headless struct {
	width  int
	height int

	viewport image.Rectangle

	// the contents of the texture. the image is copied on upload
	texture *image.RGBA

	Uploads int
	Draws   int

	fullscreen bool
	destroyed  bool

	// sleep is called by WaitEvent()
	sleep func(time.Duration)
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The width and height are the size of the imaginary drawable area.
func NewHeadless(width int, height int) *Headless {
	return &Headless{
		width:  width,
		height: height,
		sleep:  time.Sleep,
	}
}

// Size implements the canvas.Backend interface.
func (hl *Headless) Size() (int, int) {
	return hl.width, hl.height
}

// SetViewport implements the canvas.Backend interface.
func (hl *Headless) SetViewport(x, y, width, height int) {
	hl.viewport = image.Rect(x, y, x+width, y+height)
}

// Viewport returns the most recent viewport.
func (hl *Headless) Viewport() image.Rectangle {
	return hl.viewport
}

// Upload implements the canvas.Backend interface.
func (hl *Headless) Upload(img *image.RGBA) error {
	if hl.texture == nil || hl.texture.Bounds() != img.Bounds() {
		hl.texture = image.NewRGBA(img.Bounds())
	}
	draw.Draw(hl.texture, hl.texture.Bounds(), img, img.Bounds().Min, draw.Src)
	hl.Uploads++
	return nil
}

// Texture returns the contents of the texture. Returns nil if nothing has
// been uploaded.
func (hl *Headless) Texture() *image.RGBA {
	return hl.texture
}

// Draw implements the canvas.Backend interface.
func (hl *Headless) Draw() error {
	hl.Draws++
	return nil
}

// SetFullscreen implements the canvas.Backend interface.
func (hl *Headless) SetFullscreen(fullscreen bool) error {
	hl.fullscreen = fullscreen
	return nil
}

// WaitEvent implements the canvas.Backend interface. There are no input
// events in headless mode so WaitEvent always sleeps for the duration of the
// timeout.
func (hl *Headless) WaitEvent(timeout time.Duration) userinput.Event {
	if timeout > 0 {
		hl.sleep(timeout)
	}
	return nil
}

// Destroy implements the canvas.Backend interface.
func (hl *Headless) Destroy() {
	hl.destroyed = true
}

// Destroyed returns true if Destroy() has been called.
func (hl *Headless) Destroyed() bool {
	return hl.destroyed
}
