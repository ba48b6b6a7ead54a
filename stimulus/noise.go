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

	"github.com/jetsetilly/glcanvas/random"
)

// Noise returns a stimulus of uniformly distributed random values in the
// range 0 to 1. Every sample of every channel is independent.
//
// The random values depend only on the base seed of rnd and the time value,
// so calling the stimulus twice with the same time produces the same frame.
func Noise(width, height, channels int, rnd *random.Random) (Stimulus, error) {
	if width <= 0 || height <= 0 {
		return Stimulus{}, fmt.Errorf("noise: dimensions must be positive (%dx%d)", width, height)
	}
	if channels != 1 && channels != 3 {
		return Stimulus{}, fmt.Errorf("noise: unsupported number of channels (%d)", channels)
	}

	frame := NewFrame(width, height, channels)

	f := func(t float64) (*Frame, error) {
		r := rnd.At(t)
		for i := range frame.Pix {
			frame.Pix[i] = r.Float32()
		}
		return frame, nil
	}

	return Stimulus{
		Name:     "noise",
		Width:    width,
		Height:   height,
		Channels: channels,
		Func:     f,
	}, nil
}
