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

package canvas

import (
	"github.com/jetsetilly/glcanvas/logger"
	"github.com/jetsetilly/glcanvas/resources"
)

// Quit implements the userinput.Handler interface.
func (cnv *Canvas) Quit() {
	logger.Log(logger.Allow, "canvas", "quit requested")
	cnv.close()
}

// Resize implements the userinput.Handler interface. The viewport is changed
// to the new size and the current texture is drawn again. The stimulus is not
// evaluated.
func (cnv *Canvas) Resize(width, height int) {
	if cnv.state != Running {
		return
	}
	cnv.backend.SetViewport(0, 0, width, height)
	if err := cnv.draw(); err != nil {
		cnv.err = err
	}
}

// TogglePause implements the userinput.Handler interface.
func (cnv *Canvas) TogglePause() {
	now := cnv.clock.Now()

	if cnv.paused {
		// the loop has not started. there is nothing to resume
		if !cnv.start.IsZero() {
			cnv.pausedTotal += now.Sub(cnv.pausedAt)
			cnv.lim.Reset(now)
			cnv.pauseSoundtrack(false)
		}
		cnv.paused = false
		logger.Log(logger.Allow, "canvas", "resumed")
	} else {
		cnv.pausedAt = now
		cnv.paused = true
		if !cnv.start.IsZero() {
			cnv.pauseSoundtrack(true)
		}
		logger.Logf(logger.Allow, "canvas", "paused at t=%.3fs", cnv.stats.LastT)
	}

	cnv.stats.Paused = cnv.paused

	if cnv.overlay && cnv.state == Running {
		if err := cnv.draw(); err != nil {
			cnv.err = err
		}
	}
}

// the soundtrack stays in step with stimulus time, which excludes time spent
// paused
func (cnv *Canvas) pauseSoundtrack(paused bool) {
	if cnv.cfg.Soundtrack != nil && cnv.state == Running {
		cnv.cfg.Soundtrack.Pause(paused)
	}
}

// ToggleFullscreen implements the userinput.Handler interface.
func (cnv *Canvas) ToggleFullscreen() {
	cnv.fullscreen = !cnv.fullscreen
	if err := cnv.backend.SetFullscreen(cnv.fullscreen); err != nil {
		cnv.err = err
		return
	}

	// the new size will be reported by a resize event but not all window
	// managers send one
	w, h := cnv.backend.Size()
	cnv.backend.SetViewport(0, 0, w, h)
}

// ToggleOverlay implements the userinput.Handler interface.
func (cnv *Canvas) ToggleOverlay() {
	cnv.overlay = !cnv.overlay
	if cnv.state == Running {
		if err := cnv.draw(); err != nil {
			cnv.err = err
		}
	}
}

// Screenshot implements the userinput.Handler interface. Failure to save the
// screenshot is logged but does not end the loop.
func (cnv *Canvas) Screenshot() {
	scr, ok := cnv.backend.(Screenshotter)
	if !ok {
		logger.Log(logger.Allow, "canvas", "screenshots not supported by backend")
		return
	}

	fn, err := resources.JoinPath("screenshots", resources.UniqueFilename("screenshot", cnv.cfg.Stimulus.Name, "png"))
	if err != nil {
		logger.Logf(logger.Allow, "canvas", "screenshot: %v", err)
		return
	}

	if err := scr.Screenshot(fn); err != nil {
		logger.Logf(logger.Allow, "canvas", "screenshot: %v", err)
		return
	}

	logger.Logf(logger.Allow, "canvas", "screenshot saved to %s", fn)
}
