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

package random

import (
	"math"
	"math/rand/v2"
	"time"
)

// Random is a source of random numbers for stimulus generation.
type Random struct {
	seed uint64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{seed: uint64(seed)}
}

// Seed returns the base seed.
func (rnd *Random) Seed() int64 {
	return int64(rnd.seed)
}

// At returns a generator for the time t. Generators returned for the same
// value of t produce the same sequence of numbers.
func (rnd *Random) At(t float64) *rand.Rand {
	return rand.New(rand.NewPCG(rnd.seed, math.Float64bits(t)))
}
