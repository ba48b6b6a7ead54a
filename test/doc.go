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

// Package test contains helper functions that remove common boilerplate from
// the tests of the other glcanvas packages.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions fail with t.Fatalf() and should be used when
// the rest of the test depends on the value being correct. For example,
// demanding that the length of a frame's pixel slice is correct before
// indexing into it.
//
// Success and failure are interpreted according to the type of the value
// being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The tags argument of every function is optional. When supplied the tags are
// prefixed to the failure message, which helps identify the iteration of a
// table driven test that failed.
package test
