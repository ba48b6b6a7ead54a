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
	"io"
	"os"

	"github.com/jetsetilly/glcanvas/stimulus"
	"github.com/jetsetilly/glcanvas/timeline"
	"github.com/pelletier/go-toml/v2"
)

// Stimulus is the [stimulus] table of a session file.
type Stimulus struct {
	Name string `toml:"name"`
	stimulus.Params
}

// Session is the contents of a session file. Zero values and nil pointers
// indicate that the value was not specified.
type Session struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen *bool  `toml:"fullscreen"`
	VSync      *bool  `toml:"vsync"`
	Overlay    *bool  `toml:"overlay"`

	FPS float64 `toml:"fps"`

	// duration in seconds
	Duration float64 `toml:"duration"`

	// at most one of Linspace and Timeline can be specified. Linspace must
	// have three values: start, stop and number of samples
	Linspace []float64 `toml:"linspace"`
	Timeline []float64 `toml:"timeline"`

	Interpolation string `toml:"interpolation"`
	Colormap      string `toml:"colormap"`
	Range         string `toml:"range"`
	Seed          int64  `toml:"seed"`

	Soundtrack string `toml:"soundtrack"`
	Trigger    string `toml:"trigger"`

	Stimulus Stimulus `toml:"stimulus"`
}

// Load reads the session file at path.
func Load(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a session from r. Unknown keys are an error. Stimulus
// parameters that are not specified have their default values.
func Parse(r io.Reader) (*Session, error) {
	sess := &Session{
		Stimulus: Stimulus{Params: stimulus.DefaultParams()},
	}

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	err := dec.Decode(sess)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	err = sess.validate()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return sess, nil
}

func (sess *Session) validate() error {
	if sess.Width < 0 || sess.Height < 0 {
		return fmt.Errorf("window size cannot be negative (%dx%d)", sess.Width, sess.Height)
	}
	if sess.FPS < 0 {
		return fmt.Errorf("fps cannot be negative (%v)", sess.FPS)
	}
	if sess.Duration < 0 {
		return fmt.Errorf("duration cannot be negative (%v)", sess.Duration)
	}
	if sess.Linspace != nil && sess.Timeline != nil {
		return fmt.Errorf("linspace and timeline cannot both be specified")
	}
	if sess.Linspace != nil {
		if len(sess.Linspace) != 3 {
			return fmt.Errorf("linspace must have three values: start, stop, samples")
		}
		n := sess.Linspace[2]
		if n < 1 || n != float64(int(n)) {
			return fmt.Errorf("linspace samples must be a positive whole number (%v)", n)
		}
	}
	return nil
}

// HasTimeline returns true if the session specifies a linspace or an explicit
// timeline.
func (sess *Session) HasTimeline() bool {
	return sess.Linspace != nil || sess.Timeline != nil
}

// TimelineValue returns the timeline specified by the session. The timeline
// is empty if neither a linspace nor a timeline was specified.
func (sess *Session) TimelineValue() timeline.Timeline {
	if sess.Linspace != nil {
		return timeline.Linspace(sess.Linspace[0], sess.Linspace[1], int(sess.Linspace[2]))
	}
	return timeline.New(sess.Timeline...)
}
