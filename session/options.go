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

package session

import (
	"fmt"
	"time"

	"github.com/jetsetilly/glcanvas/canvas"
	"github.com/jetsetilly/glcanvas/colormap"
	"github.com/jetsetilly/glcanvas/random"
	"github.com/jetsetilly/glcanvas/stimulus"
	"github.com/jetsetilly/glcanvas/timeline"
)

// Options are the settings for a run. The names of the command line flags
// that correspond to each field are noted.
type Options struct {
	Title      string
	Width      int  // -width
	Height     int  // -height
	Fullscreen bool // -fullscreen
	VSync      bool // -vsync
	Overlay    bool // -overlay

	FPS      float64       // -fps
	Duration time.Duration // -duration
	Timeline timeline.Timeline

	Interpolation string // -interp
	Colormap      string // -cmap
	Range         string // -clim
	Seed          int64  // -seed

	Soundtrack string // -soundtrack
	Trigger    string // -trigger

	Stimulus string          // -stimulus
	Params   stimulus.Params // -grid, -gridsize, -freq
}

// Merge copies the values specified in the session to the options. Values
// are not copied if the corresponding command line flag has been set. The
// isSet function is called with the name of the flag.
//
// If the session specifies a timeline and the duration flag has not been set,
// the duration is cleared so that the timeline decides when the run ends.
func (sess *Session) Merge(opts *Options, isSet func(flag string) bool) {
	if sess.Title != "" {
		opts.Title = sess.Title
	}
	if sess.Width > 0 && !isSet("width") {
		opts.Width = sess.Width
	}
	if sess.Height > 0 && !isSet("height") {
		opts.Height = sess.Height
	}
	if sess.Fullscreen != nil && !isSet("fullscreen") {
		opts.Fullscreen = *sess.Fullscreen
	}
	if sess.VSync != nil && !isSet("vsync") {
		opts.VSync = *sess.VSync
	}
	if sess.Overlay != nil && !isSet("overlay") {
		opts.Overlay = *sess.Overlay
	}
	if sess.FPS > 0 && !isSet("fps") {
		opts.FPS = sess.FPS
	}
	if !isSet("duration") {
		if sess.Duration > 0 {
			opts.Duration = time.Duration(sess.Duration * float64(time.Second))
		} else if sess.HasTimeline() {
			opts.Duration = 0
		}
	}
	if sess.HasTimeline() {
		opts.Timeline = sess.TimelineValue()
	}
	if sess.Interpolation != "" && !isSet("interp") {
		opts.Interpolation = sess.Interpolation
	}
	if sess.Colormap != "" && !isSet("cmap") {
		opts.Colormap = sess.Colormap
	}
	if sess.Range != "" && !isSet("clim") {
		opts.Range = sess.Range
	}
	if sess.Seed != 0 && !isSet("seed") {
		opts.Seed = sess.Seed
	}
	if sess.Soundtrack != "" && !isSet("soundtrack") {
		opts.Soundtrack = sess.Soundtrack
	}
	if sess.Trigger != "" && !isSet("trigger") {
		opts.Trigger = sess.Trigger
	}
	if sess.Stimulus.Name != "" && !isSet("stimulus") {
		opts.Stimulus = sess.Stimulus.Name
	}

	p := sess.Stimulus.Params
	if isSet("grid") {
		p.GridNum = opts.Params.GridNum
	}
	if isSet("gridsize") {
		p.GridSize = opts.Params.GridSize
	}
	if isSet("freq") {
		p.Freq = opts.Params.Freq
	}
	opts.Params = p
}

// Config creates the canvas configuration described by the options. The
// stimulus is created with the random number generator, which is only used by
// stimuli that need it.
func (opts Options) Config(rnd *random.Random) (canvas.Config, error) {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		return canvas.Config{}, fmt.Errorf("session: window size must be positive (%dx%d)", width, height)
	}

	stim, err := stimulus.Lookup(opts.Stimulus, width, height, opts.Params, rnd)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("session: %w", err)
	}

	interp, err := canvas.ParseInterpolation(opts.Interpolation)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("session: %w", err)
	}

	cmap, err := colormap.Lookup(opts.Colormap)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("session: %w", err)
	}

	rng, err := colormap.ParseRange(opts.Range)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("session: %w", err)
	}

	if opts.Duration <= 0 && opts.Timeline.Max() <= 0 {
		if opts.Timeline.Len() == 0 {
			return canvas.Config{}, fmt.Errorf("session: a duration or a timeline is required")
		}
		return canvas.Config{}, fmt.Errorf("session: timeline must end after zero (%v)", opts.Timeline)
	}

	title := opts.Title
	if title == "" {
		title = stim.Name
	}

	return canvas.Config{
		Stimulus:      stim,
		Title:         title,
		Width:         width,
		Height:        height,
		Fullscreen:    opts.Fullscreen,
		VSync:         opts.VSync,
		Interpolation: interp,
		FPS:           opts.FPS,
		Duration:      opts.Duration,
		Timeline:      opts.Timeline,
		Colormap:      cmap,
		Range:         &rng,
		Overlay:       opts.Overlay,
	}, nil
}
