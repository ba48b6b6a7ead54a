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

package stimulus

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/glcanvas/random"
)

// Params are the parameters for the named stimuli. Not every parameter is
// used by every stimulus.
type Params struct {
	// checkerboard
	GridNum  int     `toml:"grid"`
	GridSize int     `toml:"gridsize"`
	Freq     float64 `toml:"freq"`

	// noise and blank
	Channels int     `toml:"channels"`
	Level    float64 `toml:"level"`

	// grating. also uses Freq
	Cycles float64 `toml:"cycles"`
	Angle  float64 `toml:"angle"`
}

// DefaultParams returns the parameters used when none are specified.
func DefaultParams() Params {
	return Params{
		GridNum:  8,
		GridSize: 32,
		Freq:     0,
		Channels: 3,
		Level:    0,
		Cycles:   8,
		Angle:    0,
	}
}

type generator func(width, height int, p Params, rnd *random.Random) (Stimulus, error)

var registry = map[string]generator{
	"noise": func(width, height int, p Params, rnd *random.Random) (Stimulus, error) {
		return Noise(width, height, p.Channels, rnd)
	},
	"checkerboard": func(_, _ int, p Params, _ *random.Random) (Stimulus, error) {
		return Checkerboard(p.GridNum, p.GridSize, p.Freq)
	},
	"grating": func(width, height int, p Params, _ *random.Random) (Stimulus, error) {
		return Grating(width, height, p.Cycles, p.Freq, p.Angle)
	},
	"blank": func(width, height int, p Params, _ *random.Random) (Stimulus, error) {
		return Blank(width, height, p.Channels, float32(p.Level))
	},
}

// Names returns the names of the stimuli that can be created with Lookup(),
// sorted alphabetically.
func Names() []string {
	n := make([]string, 0, len(registry))
	for k := range registry {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// Lookup creates the named stimulus. The width and height are used by stimuli
// that fill the display. The checkerboard ignores them and declares its own
// dimensions from the grid parameters.
func Lookup(name string, width, height int, p Params, rnd *random.Random) (Stimulus, error) {
	g, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Stimulus{}, fmt.Errorf("stimulus: unknown stimulus (%s). available: %s", name, strings.Join(Names(), ", "))
	}
	s, err := g(width, height, p, rnd)
	if err != nil {
		return Stimulus{}, fmt.Errorf("stimulus: %w", err)
	}
	return s, nil
}
