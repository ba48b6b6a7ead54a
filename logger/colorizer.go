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

package logger

import (
	"bytes"
	"io"
)

const (
	penTag    = "\033[36m"
	penError  = "\033[2;31m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is drawn in a different color to the detail. Entries that look like
// errors are dimmed red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	var b bytes.Buffer

	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}

		tag, detail, ok := bytes.Cut(l, []byte(": "))
		if !ok {
			b.Write(l)
			continue
		}

		b.WriteString(penTag)
		b.Write(tag)
		b.WriteString(penNormal)
		b.WriteString(": ")
		if bytes.Contains(detail, []byte("error")) {
			b.WriteString(penError)
			b.Write(bytes.TrimSuffix(detail, []byte("\n")))
			b.WriteString(penNormal)
			if bytes.HasSuffix(detail, []byte("\n")) {
				b.WriteString("\n")
			}
		} else {
			b.Write(detail)
		}
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
