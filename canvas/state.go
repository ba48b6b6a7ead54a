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
	"time"
)

// State of the canvas.
type State int

// List of valid State values.
const (
	Initializing State = iota
	Running
	Closed
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Stats are the statistics of the canvas.
type Stats struct {
	// number of frames uploaded, including the initial frame
	Frames int

	// time value of the most recent stimulus evaluation
	LastT float64

	// measured rate of frame uploads
	FPS float64

	// elapsed time, not including time spent paused
	Elapsed time.Duration

	Paused bool
}

func (s Stats) String() string {
	return fmt.Sprintf("%d frames, last t=%.3fs, %.1f fps, elapsed %v", s.Frames, s.LastT, s.FPS, s.Elapsed.Round(time.Millisecond))
}
