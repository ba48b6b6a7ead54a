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

package sdlgl

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v2.1/gl"
)

// Screenshot implements the canvas.Screenshotter interface. The texture is
// drawn again without the overlay and the framebuffer is saved to the named
// file. The format is decided by the filename extension.
func (win *Window) Screenshot(filename string) error {
	win.owner.Check("Screenshot")

	w, h := win.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("screenshot: window has no size")
	}

	// the contents of the back buffer are undefined after a swap
	win.rnd.draw()

	pix := make([]uint8, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	err := imaging.Save(framebufferImage(pix, w, h), filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	return nil
}

// framebufferImage converts pixels read from the framebuffer to an image. The
// first row of the framebuffer is the bottom of the window. The alpha channel
// of the framebuffer is meaningless and is ignored.
func framebufferImage(pix []uint8, width int, height int) image.Image {
	img := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return imaging.FlipV(img)
}
