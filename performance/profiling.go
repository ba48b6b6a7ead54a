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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/glcanvas/logger"
	"github.com/jetsetilly/glcanvas/resources"
)

// Profile specifies which profiles RunProfiler() should produce. Values can
// be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfile converts a comma separated string of profile names into a
// Profile value. Valid names are "none", "cpu", "mem", "trace" and "all".
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(strings.ToLower(s), ",") {
		switch strings.TrimSpace(n) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type (%s)", n)
		}
	}
	return p, nil
}

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

func create(filenameHeader string, kind string) (*os.File, error) {
	fn, err := resources.JoinPath("profiles", resources.UniqueFilename(kind, filenameHeader, "profile"))
	if err != nil {
		return nil, err
	}
	f, err := os.Create(fn)
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "performance", "writing %s profile to %s", kind, fn)
	return f, nil
}

// RunProfiler runs the supplied function with the requested profiles. The
// filenameHeader is included in the name of every profile file.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := create(filenameHeader, "cpu")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := create(filenameHeader, "trace")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		if err := trace.Start(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer trace.Stop()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := create(filenameHeader, "mem")
			if err != nil {
				rerr = fmt.Errorf("performance: %w", err)
				return
			}
			defer f.Close()

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()
	}

	return run()
}
