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

//go:build linux || darwin || freebsd || openbsd || netbsd

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
)

// IsTerminal returns true if the file is a terminal device. The test flushes
// the terminal's pending input queue, which fails with ENOTTY for anything
// that is not a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return termios.Tcflush(f.Fd(), termios.TCIFLUSH) == nil
}
