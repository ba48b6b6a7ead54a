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

// Package assert checks conditions that indicate a programming error rather
// than a runtime error. A failed assertion panics.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the current goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only ever be used for debugging or testing purposes.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created a resource.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the current goroutine.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// Check panics if the current goroutine is not the owner. The what argument
// names the operation being checked.
func (o Owner) Check(what string) {
	if id := GoroutineID(); id != o.id {
		panic(fmt.Sprintf("assert: %s called from goroutine %d but owned by goroutine %d", what, id, o.id))
	}
}
