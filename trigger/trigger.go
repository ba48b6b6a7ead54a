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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/glcanvas/logger"
	"go.bug.st/serial"
)

const logTag = "trigger"

// DefaultBaudRate of the DLP-IO8-G.
const DefaultBaudRate = 115200

// DefaultLines are the lines used if none are specified.
const DefaultLines = "1"

// how long to wait for a reply to the ping command
const pingTimeout = time.Second

// DLP-IO8-G commands
const (
	cmdPing   = 0x27
	cmdBinary = 0x5c
	pingReply = 'Q'
)

// the command that sets a line low is the key below the digit on a QWERTY
// keyboard
var unsetCommands = map[byte]byte{
	'1': 'Q', '2': 'W', '3': 'E', '4': 'R',
	'5': 'T', '6': 'Y', '7': 'U', '8': 'I',
}

// Box is a DLP-IO8-G device.
type Box struct {
	port  io.ReadWriteCloser
	lines string
	set   bool
}

// Open is the preferred method of initialisation for the Box type. The lines
// argument is a string of the digits 1 to 8, each digit being one of the
// lines of the box. The device is pinged and put into binary mode.
func Open(device string, baudrate int, lines string) (*Box, error) {
	mode := &serial.Mode{
		BaudRate: baudrate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		if ports, perr := serial.GetPortsList(); perr == nil && len(ports) > 0 {
			logger.Logf(logger.Allow, logTag, "available ports: %s", strings.Join(ports, ", "))
		}
		return nil, fmt.Errorf("trigger: %w", err)
	}

	err = port.SetReadTimeout(pingTimeout)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("trigger: %w", err)
	}

	box, err := newBox(port, lines)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, logTag, "%s ready on lines %s", device, lines)

	return box, nil
}

// newBox pings the device on the port and puts it into binary mode. the port
// is closed if there is an error
func newBox(port io.ReadWriteCloser, lines string) (*Box, error) {
	if lines == "" {
		lines = DefaultLines
	}
	for _, c := range []byte(lines) {
		if _, ok := unsetCommands[c]; !ok {
			port.Close()
			return nil, fmt.Errorf("trigger: invalid line (%c). lines must be digits 1 to 8", c)
		}
	}

	box := &Box{
		port:  port,
		lines: lines,
	}

	if !box.Ping() {
		port.Close()
		return nil, fmt.Errorf("trigger: device did not respond to ping")
	}

	_, err := port.Write([]byte{cmdBinary})
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("trigger: %w", err)
	}

	return box, nil
}

// Ping returns true if the device replies to the ping command.
func (box *Box) Ping() bool {
	_, err := box.port.Write([]byte{cmdPing})
	if err != nil {
		return false
	}

	buf := make([]byte, 1)
	n, err := box.port.Read(buf)
	return err == nil && n == 1 && buf[0] == pingReply
}

// Onset implements the canvas.Marker interface.
func (box *Box) Onset() error {
	_, err := box.port.Write([]byte(box.lines))
	if err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	box.set = true
	return nil
}

// Offset implements the canvas.Marker interface. Does nothing if the lines
// have not been set.
func (box *Box) Offset() error {
	if !box.set {
		return nil
	}

	cmd := []byte(box.lines)
	for i := range cmd {
		cmd[i] = unsetCommands[cmd[i]]
	}

	_, err := box.port.Write(cmd)
	if err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	box.set = false
	return nil
}

// Close the serial port. The lines are unset first if necessary.
func (box *Box) Close() error {
	err := box.Offset()
	if cerr := box.port.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("trigger: %w", cerr)
	}
	return err
}
