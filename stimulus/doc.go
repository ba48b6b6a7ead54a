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

// Package stimulus contains the frame type and the generators that produce
// frames for display on the canvas.
//
// A stimulus is a function of elapsed time. It is called once for every frame
// the canvas displays and must return a frame of the dimensions it declared
// when it was created. The canvas checks this with Validate().
//
// Frames are stored row-major in height x width x channel order. Row zero is
// the top row of the displayed image. Frames have either one channel
// (luminance) or three channels (red, green, blue). Sample values are
// normally in the range 0 to 1 but the canvas can be configured to display
// any range (see the colormap package).
//
// Generators reuse the frame they return. The frame is valid until the next
// call to the stimulus function.
package stimulus
