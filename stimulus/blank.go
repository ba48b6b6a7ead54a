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

import "fmt"

// Blank returns a stimulus where every sample has the same value. A level of
// zero gives a black frame.
func Blank(width, height, channels int, level float32) (Stimulus, error) {
	if width <= 0 || height <= 0 {
		return Stimulus{}, fmt.Errorf("blank: dimensions must be positive (%dx%d)", width, height)
	}
	if channels != 1 && channels != 3 {
		return Stimulus{}, fmt.Errorf("blank: unsupported number of channels (%d)", channels)
	}

	frame := NewFrame(width, height, channels)
	for i := range frame.Pix {
		frame.Pix[i] = level
	}

	return Stimulus{
		Name:     "blank",
		Width:    width,
		Height:   height,
		Channels: channels,
		Func: func(_ float64) (*Frame, error) {
			return frame, nil
		},
	}, nil
}
