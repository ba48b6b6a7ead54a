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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/glcanvas/logger"
)

// DefaultPrefsFile is the name of the prefs file in the resources directory.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key from value on each line of the prefs file
const keySep = " :: "

// Disk represents preference values that are stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values from the prefs file that were overridden by the command line
	// stack. the disk value is written back to the file by Save()
	overridden map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:       path,
		entries:    make(map[string]pref),
		overridden: make(map[string]string),
	}
	return dsk, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n;") {
		return fmt.Errorf("prefs: illegal character in key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the prefs file and return the key/value pairs. a missing file is not
// an error
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		data[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return data, nil
}

// Load preference values from disk. Values in the top group of the command
// line stack take priority over values on disk.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}

		if ok, v := GetCommandLinePref(k); ok {
			dsk.overridden[k] = p.String()
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s overridden by command line (%v)", k, v)
		}
	}

	return nil
}

// Set the value of the preference identified by key. Unlike calling Set() on
// the value directly, the new value is written by Save() even if the key had
// been overridden by the command line stack.
func (dsk *Disk) Set(key string, v Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return fmt.Errorf("prefs: unknown key (%s)", key)
	}
	if err := p.Set(v); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	delete(dsk.overridden, key)
	return nil
}

// Save current preference values to disk. Entries in the prefs file that are
// not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := dsk.overridden[k]; ok {
			data[k] = v
			continue
		}
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, data[k])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
