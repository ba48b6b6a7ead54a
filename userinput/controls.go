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

// Handler is implemented by the type that acts on user input.
type Handler interface {
	Quit()
	Resize(width, height int)
	TogglePause()
	ToggleFullscreen()
	ToggleOverlay()
	Screenshot()
}

// Controls interprets events and forwards them to a Handler.
type Controls struct {
	// whether the most recent event was acted upon
	LastEventHandled bool
}

// HandleUserInput interprets the event and calls the appropriate function of
// the handler. Key repeats are ignored, as are keys with modifiers and key
// releases.
func (c *Controls) HandleUserInput(ev Event, handle Handler) {
	c.LastEventHandled = true

	switch ev := ev.(type) {
	case EventQuit:
		handle.Quit()
	case EventResize:
		handle.Resize(ev.Width, ev.Height)
	case EventKey:
		c.LastEventHandled = c.keyboard(ev, handle)
	default:
		c.LastEventHandled = false
	}
}

func (c *Controls) keyboard(ev EventKey, handle Handler) bool {
	if ev.Repeat || !ev.Down || ev.Mod != KeyModNone {
		return false
	}

	switch ev.Key {
	case KeyTab, KeyF11:
		handle.ToggleFullscreen()
	case KeySpace:
		handle.TogglePause()
	case KeyEscape, KeyQ:
		handle.Quit()
	case KeyF1:
		handle.ToggleOverlay()
	case KeyF12:
		handle.Screenshot()
	default:
		return false
	}

	return true
}
