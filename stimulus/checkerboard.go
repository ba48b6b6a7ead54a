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
	"math"
)

// Checkerboard returns a stimulus showing a board of gridNum by gridNum
// cells. Each cell is gridSize pixels square and has a value of zero or one.
// The cell in the top-left corner has a value of zero at time zero.
//
// The polarity of the board inverts every 1/freq seconds. A frequency of zero
// or less means the board never inverts.
func Checkerboard(gridNum, gridSize int, freq float64) (Stimulus, error) {
	if gridNum <= 0 || gridSize <= 0 {
		return Stimulus{}, fmt.Errorf("checkerboard: grid number and grid size must be positive (%d, %d)", gridNum, gridSize)
	}

	sz := gridNum * gridSize
	frame := NewFrame(sz, sz, 1)

	// the polarity the frame was last drawn with. -1 forces the first draw
	drawn := -1

	f := func(t float64) (*Frame, error) {
		p := Polarity(t, freq)
		if p == drawn {
			return frame, nil
		}
		drawn = p

		for y := range sz {
			for x := range sz {
				v := (x/gridSize + y/gridSize + p) % 2
				frame.Pix[y*sz+x] = float32(v)
			}
		}
		return frame, nil
	}

	return Stimulus{
		Name:     "checkerboard",
		Width:    sz,
		Height:   sz,
		Channels: 1,
		Func:     f,
	}, nil
}

// Polarity returns zero or one depending on how many times the board has
// inverted by time t. Always returns zero if freq is zero or less.
func Polarity(t float64, freq float64) int {
	if freq <= 0 {
		return 0
	}
	n := int64(math.Floor(t * freq))
	if n < 0 {
		n = -n
	}
	return int(n % 2)
}
