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

package stimulus

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Grating returns a stimulus showing a sinusoidal luminance grating. The
// grating has the given number of cycles across the width of the frame and
// is oriented at angle degrees (zero being vertical bars). The grating drifts
// at freq cycles per second.
//
// Values are in the range 0 to 1 with a mean of 0.5.
func Grating(width, height int, cycles float64, freq float64, angle float64) (Stimulus, error) {
	if width <= 0 || height <= 0 {
		return Stimulus{}, fmt.Errorf("grating: dimensions must be positive (%dx%d)", width, height)
	}

	frame := NewFrame(width, height, 1)

	theta := float32(angle) * math32.Pi / 180
	cos := math32.Cos(theta)
	sin := math32.Sin(theta)

	// spatial frequency in radians per pixel
	k := 2 * math32.Pi * float32(cycles) / float32(width)

	f := func(t float64) (*Frame, error) {
		phase := 2 * math32.Pi * float32(freq*t)
		for y := range height {
			for x := range width {
				d := float32(x)*cos + float32(y)*sin
				frame.Pix[y*width+x] = 0.5 + 0.5*math32.Sin(k*d-phase)
			}
		}
		return frame, nil
	}

	return Stimulus{
		Name:     "grating",
		Width:    width,
		Height:   height,
		Channels: 1,
		Func:     f,
	}, nil
}
