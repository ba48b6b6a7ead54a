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

package colormap

import (
	"image"

	"github.com/jetsetilly/glcanvas/curated"
	"github.com/jetsetilly/glcanvas/stimulus"
)

// SizeMismatch is returned by Apply() when the destination image is not the
// same size as the frame.
const SizeMismatch = "colormap: image size %v does not match frame %v"

// Apply converts the frame into the destination image. Single channel frames
// are colored with the Map. Three channel frames are displayed as RGB and the
// Map is not used. Every pixel of the destination is fully opaque.
//
// Row zero of the frame is row zero of the image.
func Apply(frame *stimulus.Frame, cmap *Map, rng Range, dst *image.RGBA) error {
	b := dst.Bounds()
	if b.Dx() != frame.Width || b.Dy() != frame.Height {
		return curated.Errorf(SizeMismatch, b.Size(), frame)
	}
	if cmap == nil {
		cmap = Grays
	}

	switch frame.Channels {
	case 1:
		for y := range frame.Height {
			src := frame.Pix[y*frame.Width : (y+1)*frame.Width]
			row := dst.Pix[y*dst.Stride : y*dst.Stride+frame.Width*4]
			for x, v := range src {
				r, g, b := cmap.Color(rng.Normalise(v))
				row[x*4] = r
				row[x*4+1] = g
				row[x*4+2] = b
				row[x*4+3] = 0xff
			}
		}

	case 3:
		for y := range frame.Height {
			src := frame.Pix[y*frame.Width*3 : (y+1)*frame.Width*3]
			row := dst.Pix[y*dst.Stride : y*dst.Stride+frame.Width*4]
			for x := range frame.Width {
				row[x*4] = toByte(rng.Normalise(src[x*3]))
				row[x*4+1] = toByte(rng.Normalise(src[x*3+1]))
				row[x*4+2] = toByte(rng.Normalise(src[x*3+2]))
				row[x*4+3] = 0xff
			}
		}

	default:
		return curated.Errorf(stimulus.BadChannels, frame.Channels)
	}

	return nil
}

func toByte(v float32) uint8 {
	return uint8(v*255 + 0.5)
}
