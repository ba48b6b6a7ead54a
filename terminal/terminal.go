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

// Package terminal decides how log output should be presented on the
// controlling terminal. Output to a terminal is colorized with the
// logger.Colorizer. Output to a file or pipe is left plain.
package terminal

import (
	"io"
	"os"

	"github.com/jetsetilly/glcanvas/logger"
)

// Output returns a writer suitable for echoing log entries to f. If color is
// true and f is a terminal the writer adds color to the output.
func Output(f *os.File, color bool) io.Writer {
	if color && IsTerminal(f) {
		return logger.NewColorizer(f)
	}
	return f
}
