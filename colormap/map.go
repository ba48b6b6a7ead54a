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
	"slices"
	"strings"

	"github.com/chewxy/math32"
)

// number of entries in the lookup table of every Map
const lutSize = 256

// Map converts a normalised value into a color.
type Map struct {
	name string
	lut  [lutSize][3]uint8
}

func (m *Map) String() string {
	return m.name
}

// Color returns the color for the normalised value v. Values outside the range
// 0 to 1 are clamped.
func (m *Map) Color(v float32) (r, g, b uint8) {
	i := int(math32.Round(math32.Max(0, math32.Min(1, v)) * (lutSize - 1)))
	c := m.lut[i]
	return c[0], c[1], c[2]
}

func clamp(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

func newMap(name string, f func(v float32) (r, g, b float32)) *Map {
	m := &Map{name: name}
	for i := range lutSize {
		r, g, b := f(float32(i) / (lutSize - 1))
		m.lut[i] = [3]uint8{
			uint8(math32.Round(clamp(r) * 255)),
			uint8(math32.Round(clamp(g) * 255)),
			uint8(math32.Round(clamp(b) * 255)),
		}
	}
	return m
}

// List of colormaps.
var (
	Grays = newMap("grays", func(v float32) (float32, float32, float32) {
		return v, v, v
	})

	Hot = newMap("hot", func(v float32) (float32, float32, float32) {
		return 3 * v, 3*v - 1, 3*v - 2
	})

	Cool = newMap("cool", func(v float32) (float32, float32, float32) {
		return v, 1 - v, 1
	})

	Jet = newMap("jet", func(v float32) (float32, float32, float32) {
		return 1.5 - math32.Abs(4*v-3), 1.5 - math32.Abs(4*v-2), 1.5 - math32.Abs(4*v-1)
	})
)

var maps = map[string]*Map{
	Grays.name: Grays,
	Hot.name:   Hot,
	Cool.name:  Cool,
	Jet.name:   Jet,
}

// Names returns the names of the available colormaps in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(maps))
	for k := range maps {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// Lookup returns the named colormap. An empty name returns Grays.
func Lookup(name string) (*Map, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "gray" {
		return Grays, nil
	}
	if m, ok := maps[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("colormap: unknown colormap (%s). available: %s", name, strings.Join(Names(), ", "))
}
