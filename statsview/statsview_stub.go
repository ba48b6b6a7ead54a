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

//go:build !statsview

package statsview

import (
	"io"

	"github.com/jetsetilly/glcanvas/logger"
)

// Address of the HTTP server. Empty because the server is not available in
// this build.
const Address = ""

// Launch does nothing without the statsview build constraint.
func Launch(_ io.Writer) {
	logger.Log(logger.Allow, "statsview", "not available in this build")
}

// Available returns false without the statsview build constraint.
func Available() bool {
	return false
}
