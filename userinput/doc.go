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

// Package userinput translates input from the windowing system into actions
// on the canvas.
//
// The GUI implementation converts its own events into the Event types of this
// package. The Controls type then interprets those events and forwards them
// to an implementation of the Handler interface. This hides details of the
// GUI implementation from the canvas.
//
// The GUI implementation in use during development was SDL and so the key
// names follow the names returned by SDL_GetKeyName().
package userinput
