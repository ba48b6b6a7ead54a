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

package sdlgl

import (
	"time"

	"github.com/jetsetilly/glcanvas/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// WaitEvent implements the canvas.Backend interface. SDL events that have no
// meaning to the canvas are returned as nil, the same as a timeout.
func (win *Window) WaitEvent(timeout time.Duration) userinput.Event {
	win.owner.Check("WaitEvent")

	ev := sdl.WaitEventTimeout(int(timeout.Milliseconds()))
	if ev == nil {
		return nil
	}

	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return userinput.EventQuit{}
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			// the size in the event is the window size, which is not the same
			// as the drawable size on high-dpi displays
			w, h := win.Size()
			return userinput.EventResize{Width: w, Height: h}
		}

	case *sdl.KeyboardEvent:
		return translateKey(sdl.GetKeyName(ev.Keysym.Sym), ev.Keysym.Mod,
			ev.Type == sdl.KEYDOWN, ev.Repeat != 0)
	}

	return nil
}

// translateKey converts the SDL description of a key event into a
// userinput.EventKey
func translateKey(name string, mod uint16, down bool, repeat bool) userinput.EventKey {
	ev := userinput.EventKey{
		Key:    userinput.Key(name),
		Down:   down,
		Repeat: repeat,
	}

	shift := mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT
	ctrl := mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL
	alt := mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT

	switch {
	case ctrl:
		ev.Mod = userinput.KeyModCtrl
	case alt:
		ev.Mod = userinput.KeyModAlt
	case shift:
		ev.Mod = userinput.KeyModShift
	}

	return ev
}
