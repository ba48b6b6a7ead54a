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

// Package sdlgl is the SDL2 and OpenGL 2.1 implementation of the
// canvas.Backend interface.
//
// The window contains a single quad covering the whole of the viewport. The
// quad is textured with the most recent image uploaded by the canvas.
// Optionally, a Dear ImGui overlay is drawn on top of the quad.
//
// All functions must be called from the goroutine that called NewWindow().
// NewWindow() locks that goroutine to the current OS thread.
package sdlgl
