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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JoinPath prepends the supplied path with the base resource path.
//
// The function creates all folders necessary to reach the end of the path
// but does not create the file.
func JoinPath(path ...string) (string, error) {
	b, err := resourcePath()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if p != b && !strings.HasPrefix(p, b+string(filepath.Separator)) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}
