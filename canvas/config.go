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
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/glcanvas/colormap"
	"github.com/jetsetilly/glcanvas/stimulus"
	"github.com/jetsetilly/glcanvas/timeline"
)

// Interpolation is the filtering used when the texture is scaled to fit the
// window.
type Interpolation int

// List of valid Interpolation values.
const (
	Nearest Interpolation = iota
	Linear
)

func (i Interpolation) String() string {
	switch i {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	}
	return "unknown"
}

// ParseInterpolation converts a string to an Interpolation value.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "":
		return Nearest, nil
	case "linear":
		return Linear, nil
	}
	return Nearest, fmt.Errorf("canvas: unknown interpolation (%s)", s)
}

// DefaultFPS is the frame rate used if the Config does not specify one.
const DefaultFPS = 60

// Config is the configuration of a Canvas.
type Config struct {
	Stimulus stimulus.Stimulus

	// window settings. these are used by the backend when the window is
	// created
	Title         string
	Width         int
	Height        int
	Fullscreen    bool
	VSync         bool
	Interpolation Interpolation

	// frames per second. the stimulus is evaluated at this rate
	FPS float64

	// the canvas closes once the elapsed time reaches Duration. if Duration
	// is zero then the maximum timestamp of the Timeline is used instead
	Duration time.Duration
	Timeline timeline.Timeline

	// a nil colormap is the same as colormap.Grays and a nil range is the same
	// as colormap.Unit. a degenerate range is valid and displays every sample
	// as zero
	Colormap *colormap.Map
	Range    *colormap.Range

	// show the statistics overlay from the start
	Overlay bool

	// optional hooks
	Marker     Marker
	Soundtrack Soundtrack

	// if Clock is nil the RealClock is used
	Clock Clock
}

// Deadline returns the elapsed time at which the canvas closes.
func (cfg Config) Deadline() time.Duration {
	if cfg.Duration > 0 {
		return cfg.Duration
	}
	return cfg.Timeline.Duration()
}

// normalise fills in default values and checks the configuration for errors
func (cfg *Config) normalise() error {
	if cfg.Stimulus.Func == nil {
		return fmt.Errorf("no stimulus function")
	}
	if cfg.Stimulus.Width <= 0 || cfg.Stimulus.Height <= 0 {
		return fmt.Errorf("stimulus has no dimensions (%v)", cfg.Stimulus)
	}
	if cfg.FPS < 0 {
		return fmt.Errorf("frame rate cannot be negative (%v)", cfg.FPS)
	}
	if cfg.FPS == 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Duration < 0 {
		return fmt.Errorf("duration cannot be negative (%v)", cfg.Duration)
	}
	if cfg.Deadline() <= 0 {
		return fmt.Errorf("nothing to display before the deadline (duration %v, %v)", cfg.Duration, cfg.Timeline)
	}
	if cfg.Colormap == nil {
		cfg.Colormap = colormap.Grays
	}
	if cfg.Range == nil {
		rng := colormap.Unit
		cfg.Range = &rng
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock
	}
	return nil
}
