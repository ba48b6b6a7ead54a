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
	"context"
	"fmt"
	"image"
	"time"

	"github.com/jetsetilly/glcanvas/colormap"
	"github.com/jetsetilly/glcanvas/logger"
	"github.com/jetsetilly/glcanvas/performance/limiter"
	"github.com/jetsetilly/glcanvas/stimulus"
	"github.com/jetsetilly/glcanvas/userinput"
)

// the longest the loop will wait for an event while paused. the loop needs to
// wake up occasionally to notice a cancelled context
const pausedWait = 100 * time.Millisecond

// Canvas displays a stimulus.
type Canvas struct {
	cfg     Config
	backend Backend
	clock   Clock

	state State

	// the upload buffer. reused for every frame
	img *image.RGBA

	lim     *limiter.FpsLimiter
	measure *limiter.Measure

	controls userinput.Controls

	// start of the loop. the zero value means that Run() has not been called
	start time.Time

	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration

	fullscreen bool
	overlay    bool

	stats Stats

	// errors from the Handler functions are stored here and returned by Run()
	err error
}

// New is the preferred method of initialisation for the Canvas type.
func New(backend Backend, cfg Config) (*Canvas, error) {
	if err := cfg.normalise(); err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}

	cnv := &Canvas{
		cfg:        cfg,
		backend:    backend,
		clock:      cfg.Clock,
		state:      Initializing,
		img:        image.NewRGBA(image.Rect(0, 0, cfg.Stimulus.Width, cfg.Stimulus.Height)),
		lim:        limiter.NewFPSLimiter(cfg.FPS),
		measure:    limiter.NewMeasure(time.Second),
		fullscreen: cfg.Fullscreen,
		overlay:    cfg.Overlay,
	}

	w, h := backend.Size()
	backend.SetViewport(0, 0, w, h)

	if err := cnv.present(0); err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}

	logger.Logf(logger.Allow, "canvas", "stimulus: %v", cfg.Stimulus)
	logger.Logf(logger.Allow, "canvas", "%.1f fps for %v", cfg.FPS, cfg.Deadline())

	cnv.state = Running

	return cnv, nil
}

// State returns the current state of the canvas.
func (cnv *Canvas) State() State {
	return cnv.state
}

// Stats returns the current statistics.
func (cnv *Canvas) Stats() Stats {
	return cnv.stats
}

// Paused returns true if the canvas is paused.
func (cnv *Canvas) Paused() bool {
	return cnv.paused
}

// Fullscreen returns true if the canvas is in fullscreen mode.
func (cnv *Canvas) Fullscreen() bool {
	return cnv.fullscreen
}

// present evaluates the stimulus at time t and uploads and draws the result
func (cnv *Canvas) present(t float64) error {
	frame, err := cnv.cfg.Stimulus.Func(t)
	if err != nil {
		return err
	}
	if err := stimulus.Validate(frame, cnv.cfg.Stimulus.Width, cnv.cfg.Stimulus.Height); err != nil {
		return err
	}
	if err := colormap.Apply(frame, cnv.cfg.Colormap, *cnv.cfg.Range, cnv.img); err != nil {
		return err
	}
	if err := cnv.backend.Upload(cnv.img); err != nil {
		return err
	}

	cnv.stats.Frames++
	cnv.stats.LastT = t

	return cnv.draw()
}

// draw the texture without evaluating the stimulus
func (cnv *Canvas) draw() error {
	if ov, ok := cnv.backend.(Overlay); ok {
		if cnv.overlay {
			ov.SetOverlay(cnv.overlayLines())
		} else {
			ov.SetOverlay(nil)
		}
	}
	return cnv.backend.Draw()
}

func (cnv *Canvas) overlayLines() []string {
	lines := []string{
		cnv.cfg.Stimulus.String(),
		fmt.Sprintf("t = %.3fs / %.3fs", cnv.stats.LastT, cnv.cfg.Deadline().Seconds()),
		fmt.Sprintf("%.1f fps (target %.1f)", cnv.stats.FPS, cnv.cfg.FPS),
		fmt.Sprintf("%d frames", cnv.stats.Frames),
	}
	if cnv.paused {
		lines = append(lines, "paused")
	}
	return lines
}

// elapsed time since the start of the loop, not including time spent paused
func (cnv *Canvas) elapsed(now time.Time) time.Duration {
	if cnv.paused {
		now = cnv.pausedAt
	}
	return now.Sub(cnv.start) - cnv.pausedTotal
}

// onset is called once at the start of the loop
func (cnv *Canvas) onset() {
	cnv.start = cnv.clock.Now()
	cnv.lim.Reset(cnv.start)
	cnv.measure.Tick(cnv.start)

	// paused before the loop started
	if cnv.paused {
		cnv.pausedAt = cnv.start
	}

	if cnv.cfg.Marker != nil {
		if err := cnv.cfg.Marker.Onset(); err != nil {
			logger.Logf(logger.Allow, "canvas", "marker disabled: %v", err)
			cnv.cfg.Marker = nil
		}
	}
	if cnv.cfg.Soundtrack != nil {
		if err := cnv.cfg.Soundtrack.Play(); err != nil {
			logger.Logf(logger.Allow, "canvas", "soundtrack disabled: %v", err)
			cnv.cfg.Soundtrack = nil
		} else if cnv.paused {
			cnv.cfg.Soundtrack.Pause(true)
		}
	}
}

// Run the render loop until the deadline is reached, the user quits or the
// context is cancelled. Returns immediately if the canvas is closed.
//
// Elapsed time is measured from the first call to Run().
func (cnv *Canvas) Run(ctx context.Context) error {
	if cnv.state != Running {
		return nil
	}

	if cnv.start.IsZero() {
		cnv.onset()
	}

	for cnv.state == Running {
		if ctx.Err() != nil {
			logger.Log(logger.Allow, "canvas", "cancelled")
			cnv.close()
			return nil
		}

		var timeout time.Duration
		if cnv.paused {
			timeout = pausedWait
		} else {
			timeout = cnv.lim.Until(cnv.clock.Now())
		}

		if ev := cnv.backend.WaitEvent(timeout); ev != nil {
			cnv.controls.HandleUserInput(ev, cnv)
			if cnv.err != nil {
				err := cnv.err
				cnv.close()
				return fmt.Errorf("canvas: %w", err)
			}
		}

		if cnv.state != Running || cnv.paused {
			continue // for loop
		}

		now := cnv.clock.Now()
		if !cnv.lim.Due(now) {
			continue // for loop
		}

		if err := cnv.tick(now); err != nil {
			cnv.close()
			return fmt.Errorf("canvas: %w", err)
		}
	}

	return nil
}

// tick is called once for every frame that is due
func (cnv *Canvas) tick(now time.Time) error {
	elapsed := cnv.elapsed(now)
	cnv.stats.Elapsed = elapsed

	if elapsed >= cnv.cfg.Deadline() {
		cnv.close()
		return nil
	}

	if err := cnv.present(elapsed.Seconds()); err != nil {
		return err
	}

	cnv.measure.Tick(now)
	cnv.stats.FPS = cnv.measure.FPS()

	return nil
}

// close moves the canvas to the closed state. Safe to call more than once
func (cnv *Canvas) close() {
	if cnv.state == Closed {
		return
	}
	cnv.state = Closed

	if cnv.cfg.Soundtrack != nil {
		cnv.cfg.Soundtrack.Stop()
	}
	if cnv.cfg.Marker != nil {
		if err := cnv.cfg.Marker.Offset(); err != nil {
			logger.Logf(logger.Allow, "canvas", "marker: %v", err)
		}
	}

	logger.Logf(logger.Allow, "canvas", "closed: %v", cnv.stats)

	cnv.backend.Destroy()
}

// Close the canvas. Run() will return immediately if called after Close().
func (cnv *Canvas) Close() {
	cnv.close()
}
