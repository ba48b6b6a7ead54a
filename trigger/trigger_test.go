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

package trigger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jetsetilly/glcanvas/test"
)

// port replies to every ping with the reply value
type port struct {
	written bytes.Buffer
	reply   byte
	pending int
	closed  bool
	failAt  int
}

func (p *port) Write(b []byte) (int, error) {
	if p.failAt > 0 && p.written.Len()+len(b) >= p.failAt {
		return 0, errors.New("write failed")
	}
	for _, c := range b {
		if c == cmdPing {
			p.pending++
		}
	}
	return p.written.Write(b)
}

func (p *port) Read(b []byte) (int, error) {
	if p.pending == 0 || len(b) == 0 {
		return 0, nil
	}
	p.pending--
	b[0] = p.reply
	return 1, nil
}

func (p *port) Close() error {
	p.closed = true
	return nil
}

func TestBox(t *testing.T) {
	p := &port{reply: pingReply}
	box, err := newBox(p, "13")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.written.String(), "\x27\x5c")

	p.written.Reset()
	test.ExpectSuccess(t, box.Onset())
	test.ExpectEquality(t, p.written.String(), "13")

	p.written.Reset()
	test.ExpectSuccess(t, box.Offset())
	test.ExpectEquality(t, p.written.String(), "QE")

	// offset without a matching onset writes nothing
	p.written.Reset()
	test.ExpectSuccess(t, box.Offset())
	test.ExpectEquality(t, p.written.Len(), 0)

	test.ExpectSuccess(t, box.Ping())
	test.ExpectSuccess(t, box.Close())
	test.ExpectSuccess(t, p.closed)
}

func TestCloseUnsets(t *testing.T) {
	p := &port{reply: pingReply}
	box, err := newBox(p, "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, box.Onset())

	p.written.Reset()
	test.ExpectSuccess(t, box.Close())
	test.ExpectEquality(t, p.written.String(), "Q")
}

func TestBadDevice(t *testing.T) {
	p := &port{reply: 'X'}
	_, err := newBox(p, "1")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, p.closed)

	p = &port{reply: pingReply}
	_, err = newBox(p, "9")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, p.closed)
}

func TestOnsetFailure(t *testing.T) {
	p := &port{reply: pingReply}
	box, err := newBox(p, "1")
	test.DemandSuccess(t, err)

	p.failAt = 1
	test.ExpectFailure(t, box.Onset())
}
