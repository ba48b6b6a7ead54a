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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each mode having its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Before
// parsing, the modes available at this level are listed with AddSubModes().
// The first sub-mode is the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "VERSION")
//	p, err := md.Parse()
//
// After Parse() the selected mode is returned by Mode(). Flags for that mode
// are added after a call to NewMode() and parsed with a second call to
// Parse():
//
//	md.NewMode()
//	fps := md.AddInt("fps", 60, "frames per second")
//	p, err = md.Parse()
//
// Mode names are case insensitive. The -help flag prints the flags and
// sub-modes of the current level.
package modalflag
