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

package random_test

import (
	"testing"

	"github.com/jetsetilly/glcanvas/random"
	"github.com/jetsetilly/glcanvas/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(100)
	test.ExpectEquality(t, a.Seed(), int64(100))

	ra := a.At(0.5)
	rb := b.At(0.5)
	for range 256 {
		test.ExpectEquality(t, ra.Float32(), rb.Float32())
	}

	// different time values give different sequences
	test.ExpectInequality(t, a.At(0.5).Uint64(), a.At(0.51).Uint64())
}

func TestClockSeed(t *testing.T) {
	a := random.NewRandom(0)
	test.ExpectInequality(t, a.Seed(), int64(0))
}
