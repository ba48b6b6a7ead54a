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

package userinput

// Event is the type of all events sent by a GUI implementation. A nil Event
// means that no event occurred before the wait timed out.
type Event interface{}

// EventQuit is sent when the user has requested that the program end, for
// example by closing the window.
type EventQuit struct{}

// EventResize is sent when the size of the window has changed. The width and
// height are the size of the drawable area in physical pixels. On high-dpi
// displays this can be larger than the window size reported by the window
// manager.
type EventResize struct {
	Width  int
	Height int
}

// Key is the name of a key on the keyboard.
type Key string

// List of keys used by the canvas. Other keys can be represented by the Key
// type but they will not be acted upon.
const (
	KeyTab    Key = "Tab"
	KeySpace  Key = "Space"
	KeyEscape Key = "Escape"
	KeyQ      Key = "Q"
	KeyF1     Key = "F1"
	KeyF11    Key = "F11"
	KeyF12    Key = "F12"
)

// KeyMod indicates which modifier keys were held when the key event occurred.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKey is sent when a key is pressed or released.
type EventKey struct {
	Key    Key
	Mod    KeyMod
	Down   bool
	Repeat bool
}
