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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that want callers
// to distinguish a particular failure declare the pattern as an exported
// const string and callers test for it with Is() or Has():
//
//	const ShapeMismatch = "frame shape: %dx%dx%d does not match %dx%d"
//
//	err := curated.Errorf(ShapeMismatch, w, h, c, dw, dh)
//	if curated.Is(err, ShapeMismatch) {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the entire chain, which
// includes curated errors used as placeholder values and errors wrapped with
// the %w verb.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means that
// a function can wrap an error with its package prefix without worrying
// whether the error already carries that prefix:
//
//	canvas: canvas: stimulus failed
//
// is reported as
//
//	canvas: stimulus failed
package curated
