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

// Package random should be used in preference to the math/rand package when
// random numbers are required by a stimulus.
//
// A stimulus is a function of time and must return the same frame when
// called twice with the same time value. The At() function supports this by
// returning a generator seeded by a combination of the base seed and the time
// value.
//
// The base seed is chosen when the Random instance is created. A seed of zero
// selects a seed from the system clock. The chosen seed is available from the
// Seed() function so that it can be logged and the run reproduced.
package random
