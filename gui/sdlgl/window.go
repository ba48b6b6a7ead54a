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
	"fmt"
	"image"
	"runtime"

	"github.com/jetsetilly/glcanvas/assert"
	"github.com/jetsetilly/glcanvas/canvas"
	"github.com/jetsetilly/glcanvas/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is an SDL window with an OpenGL context. It implements the
// canvas.Backend, canvas.Overlay and canvas.Screenshotter interfaces.
type Window struct {
	window  *sdl.Window
	context sdl.GLContext

	rnd *renderer
	ovl *overlay

	// the goroutine that created the window. SDL and OpenGL functions must
	// only be called from this goroutine
	owner assert.Owner

	// the most recent viewport
	viewport [4]int32

	destroyed bool
}

// NewWindow is the preferred method of initialisation for the Window type.
// The window settings in the canvas.Config are used. Other fields in the
// Config are ignored.
func NewWindow(cfg canvas.Config) (*Window, error) {
	runtime.LockOSThread()

	win := &Window{
		owner: assert.NewOwner(),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = cfg.Stimulus.Name
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = cfg.Stimulus.Width, cfg.Stimulus.Height
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.context, err = win.window.GLCreateContext()
	if err != nil {
		win.destroySDL()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = win.window.GLMakeCurrent(win.context)
	if err != nil {
		win.destroySDL()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.setSwapInterval(cfg.VSync)

	win.rnd, err = newRenderer(cfg.Interpolation)
	if err != nil {
		win.destroySDL()
		return nil, err
	}

	win.ovl = newOverlay()

	w, h := win.Size()
	logger.Logf(logger.Allow, "sdl", "drawable size %dx%d", w, h)

	return win, nil
}

func (win *Window) setSwapInterval(vsync bool) {
	var i int
	if vsync {
		i = 1
	}
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", i, err.Error())
	}
}

// Size implements the canvas.Backend interface. The size is of the
// drawable area in physical pixels.
func (win *Window) Size() (int, int) {
	w, h := win.window.GLGetDrawableSize()
	return int(w), int(h)
}

// SetViewport implements the canvas.Backend interface.
func (win *Window) SetViewport(x, y, width, height int) {
	win.viewport = [4]int32{int32(x), int32(y), int32(width), int32(height)}
	win.rnd.setViewport(win.viewport)
}

// Upload implements the canvas.Backend interface.
func (win *Window) Upload(img *image.RGBA) error {
	win.owner.Check("Upload")
	return win.rnd.upload(img)
}

// Draw implements the canvas.Backend interface.
func (win *Window) Draw() error {
	win.owner.Check("Draw")

	win.rnd.draw()

	if win.ovl.visible() {
		ww, wh := win.window.GetSize()
		fw, fh := win.Size()
		win.ovl.render([2]float32{float32(ww), float32(wh)}, [2]float32{float32(fw), float32(fh)})
	}

	win.window.GLSwap()

	return win.rnd.err()
}

// SetFullscreen implements the canvas.Backend interface.
func (win *Window) SetFullscreen(fullscreen bool) error {
	var err error
	if fullscreen {
		err = win.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		err = win.window.SetFullscreen(0)
	}
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// SetOverlay implements the canvas.Overlay interface.
func (win *Window) SetOverlay(lines []string) {
	win.ovl.set(lines)
}

// Destroy implements the canvas.Backend interface. Safe to call more than
// once.
func (win *Window) Destroy() {
	if win.destroyed {
		return
	}
	win.destroyed = true

	win.ovl.destroy()
	win.rnd.destroy()
	win.destroySDL()
}

func (win *Window) destroySDL() {
	if win.context != nil {
		sdl.GLDeleteContext(win.context)
		win.context = nil
	}
	if win.window != nil {
		err := win.window.Destroy()
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "destroy: %v", err)
		}
		win.window = nil
	}
	sdl.Quit()
}
