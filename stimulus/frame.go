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

	"github.com/jetsetilly/glcanvas/curated"
)

// Frame is a single image produced by a stimulus.
type Frame struct {
	Width    int
	Height   int
	Channels int

	// length is always Width * Height * Channels
	Pix []float32
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame(width, height, channels int) *Frame {
	return &Frame{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float32, width*height*channels),
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("%dx%dx%d", f.Height, f.Width, f.Channels)
}

// Offset returns the index into Pix of the first channel of the sample at
// row y and column x.
func (f *Frame) Offset(x, y int) int {
	return (y*f.Width + x) * f.Channels
}

// At returns the value of channel c for the sample at row y and column x.
func (f *Frame) At(x, y, c int) float32 {
	return f.Pix[f.Offset(x, y)+c]
}

// Func is the type of a stimulus function. The argument is the elapsed time
// in seconds since the start of the stimulus.
type Func func(t float64) (*Frame, error)

// Stimulus is a stimulus function along with the dimensions of the frames it
// produces.
type Stimulus struct {
	Name     string
	Width    int
	Height   int
	Channels int
	Func     Func
}

func (s Stimulus) String() string {
	return fmt.Sprintf("%s (%dx%dx%d)", s.Name, s.Height, s.Width, s.Channels)
}

// Sentinel error patterns returned by Validate().
const (
	NilFrame      = "stimulus: nil frame"
	BadChannels   = "stimulus: unsupported number of channels (%d)"
	ShapeMismatch = "stimulus: frame shape %dx%d does not match %dx%d"
	BadPixLength  = "stimulus: pixel data has length %d but shape %v requires %d"
)

// Validate checks that the frame has the expected width and height, that it
// has a supported number of channels and that the length of the pixel data
// agrees with the shape.
func Validate(f *Frame, width, height int) error {
	if f == nil {
		return curated.Errorf(NilFrame)
	}
	if f.Channels != 1 && f.Channels != 3 {
		return curated.Errorf(BadChannels, f.Channels)
	}
	if f.Width != width || f.Height != height {
		return curated.Errorf(ShapeMismatch, f.Height, f.Width, height, width)
	}
	if n := f.Width * f.Height * f.Channels; len(f.Pix) != n {
		return curated.Errorf(BadPixLength, len(f.Pix), f, n)
	}
	return nil
}
