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

package colormap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Range is the range of sample values that are displayed. Values below Min
// are displayed as Min and values above Max are displayed as Max.
type Range struct {
	Min float32
	Max float32
}

// Preset ranges.
var (
	Unit = Range{Min: 0, Max: 1}
	Byte = Range{Min: 0, Max: 255}
)

func (r Range) String() string {
	return fmt.Sprintf("%g,%g", r.Min, r.Max)
}

// Normalise returns v scaled to the range 0 to 1. A degenerate range, where
// Min equals Max, maps every value to zero.
func (r Range) Normalise(v float32) float32 {
	d := r.Max - r.Min
	if d == 0 {
		return 0
	}
	n := (v - r.Min) / d
	if math32.IsNaN(n) {
		return 0
	}
	return math32.Max(0, math32.Min(1, n))
}

// ParseRange parses a range from a string. The string can be the name of a
// preset ("unit" or "byte") or two numbers separated by a comma.
func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unit", "":
		return Unit, nil
	case "byte":
		return Byte, nil
	}

	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return Range{}, fmt.Errorf("colormap: range must be of the form min,max (%s)", s)
	}

	mn, err := strconv.ParseFloat(strings.TrimSpace(lo), 32)
	if err != nil {
		return Range{}, fmt.Errorf("colormap: range: %w", err)
	}
	mx, err := strconv.ParseFloat(strings.TrimSpace(hi), 32)
	if err != nil {
		return Range{}, fmt.Errorf("colormap: range: %w", err)
	}
	if mx < mn {
		return Range{}, fmt.Errorf("colormap: range minimum is greater than maximum (%s)", s)
	}

	return Range{Min: float32(mn), Max: float32(mx)}, nil
}
