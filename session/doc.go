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

// Package session describes a single run of a stimulus. A session can be
// loaded from a TOML file and combined with options given on the command
// line. Options explicitly set on the command line take priority over values
// in the session file.
//
// An example session file:
//
//	title = "retinotopy"
//	width = 800
//	height = 600
//	fps = 100
//	linspace = [0.0, 3.0, 300]
//	colormap = "gray"
//	range = "unit"
//
//	[stimulus]
//	name = "checkerboard"
//	grid = 8
//	gridsize = 32
//	freq = 2.0
//
// A session specifies either a duration (in seconds), a linspace (start,
// stop and number of samples) or an explicit list of timestamps. The canvas
// closes when the elapsed time reaches the duration or the largest timestamp.
package session
