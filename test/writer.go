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

package test

import "strings"

// Writer captures output so that it can be compared with an expected string.
// It implements the io.Writer interface.
type Writer struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.buffer.Write(p)
}

// Clear empties the buffer.
func (w *Writer) Clear() {
	w.buffer.Reset()
}

// Compare buffered output with an expected string.
func (w *Writer) Compare(s string) bool {
	return s == w.buffer.String()
}

// Lines returns the buffered output split into lines. A trailing newline does
// not produce an empty final line.
func (w *Writer) Lines() []string {
	s := strings.TrimSuffix(w.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *Writer) String() string {
	return w.buffer.String()
}
