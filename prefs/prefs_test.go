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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/glcanvas/prefs"
	"github.com/jetsetilly/glcanvas/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "glcanvas_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1.5))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	var w prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, dsk.Add("bar", &w))

	test.ExpectSuccess(t, v.Set("noise"))
	w.SetMaxLen(4)
	test.ExpectSuccess(t, w.Set("checkerboard"))
	test.ExpectEquality(t, w.String(), "chec")

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "bar :: chec\nfoo :: noise\n")
}

func TestIntFloat(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	var clim prefs.Float
	test.ExpectSuccess(t, dsk.Add("canvas.fps", &fps))
	test.ExpectSuccess(t, dsk.Add("canvas.clim", &clim))

	test.ExpectSuccess(t, fps.Set(" 120 "))
	test.ExpectFailure(t, fps.Set("fast"))
	test.ExpectEquality(t, fps.Get().(int), 120)

	test.ExpectSuccess(t, clim.Set("0.5"))
	test.ExpectEquality(t, clim.Get().(float64), 0.5)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "canvas.clim :: 0.5\ncanvas.fps :: 120\n")
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	// loading a missing file is not an error
	var fps prefs.Int
	test.ExpectSuccess(t, dsk.Add("canvas.fps", &fps))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, fps.Get().(int), 0)

	test.ExpectSuccess(t, fps.Set(60))
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance sharing the file
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps2 prefs.Int
	var interp prefs.String
	test.ExpectSuccess(t, dsk2.Add("canvas.fps", &fps2))
	test.ExpectSuccess(t, dsk2.Add("canvas.interp", &interp))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, fps2.Get().(int), 60)

	test.ExpectSuccess(t, interp.Set("linear"))
	test.DemandSuccess(t, dsk2.Save())
	cmpTmpFile(t, fn, "canvas.fps :: 60\ncanvas.interp :: linear\n")

	// duplicate keys are not allowed
	test.ExpectFailure(t, dsk2.Add("canvas.fps", &fps2))
}

func TestInvalidFile(t *testing.T) {
	fn := getTmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load())
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) <= 0 {
			return fmt.Errorf("fps must be positive")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, post, 100)

	// pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectEquality(t, post, 100)
}

func TestCommandLineOverride(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	test.ExpectSuccess(t, dsk.Add("canvas.fps", &fps))
	test.ExpectSuccess(t, fps.Set(60))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("canvas.fps::240")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, fps.Get().(int), 240)

	// the override is not saved
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "canvas.fps :: 60\n")

	// setting through the disk replaces the override
	test.ExpectSuccess(t, dsk.Set("canvas.fps", 30))
	test.ExpectEquality(t, fps.Get().(int), 30)
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "canvas.fps :: 30\n")

	test.ExpectFailure(t, dsk.Set("canvas.width", 100))
}
