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

package terminal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/glcanvas/terminal"
	"github.com/jetsetilly/glcanvas/test"
)

func TestRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, terminal.IsTerminal(f))
	test.ExpectFailure(t, terminal.IsTerminal(nil))

	// a regular file is never colorized
	w := terminal.Output(f, true)
	_, ok := w.(*os.File)
	test.ExpectSuccess(t, ok)
}
