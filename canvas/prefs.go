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

package canvas

import (
	"fmt"

	"github.com/jetsetilly/glcanvas/colormap"
	"github.com/jetsetilly/glcanvas/prefs"
	"github.com/jetsetilly/glcanvas/resources"
)

// Preferences are the default settings for a canvas. They are stored on disk
// and used for every run unless overridden on the command line or by a
// session file.
type Preferences struct {
	dsk *prefs.Disk

	Width         prefs.Int
	Height        prefs.Int
	Fullscreen    prefs.Bool
	VSync         prefs.Bool
	Overlay       prefs.Bool
	FPS           prefs.Float
	Interpolation prefs.String
	Colormap      prefs.String
	Range         prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty then the default prefs file in the
// resources directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		var err error
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, fmt.Errorf("canvas: %w", err)
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("fps must be positive")
		}
		return nil
	})
	p.Interpolation.SetHookPre(func(v prefs.Value) error {
		_, err := ParseInterpolation(v.(string))
		return err
	})
	p.Colormap.SetHookPre(func(v prefs.Value) error {
		_, err := colormap.Lookup(v.(string))
		return err
	})
	p.Range.SetHookPre(func(v prefs.Value) error {
		_, err := colormap.ParseRange(v.(string))
		return err
	})

	for k, v := range map[string]prefsValue{
		"canvas.width":         &p.Width,
		"canvas.height":        &p.Height,
		"canvas.fullscreen":    &p.Fullscreen,
		"canvas.vsync":         &p.VSync,
		"canvas.overlay":       &p.Overlay,
		"canvas.fps":           &p.FPS,
		"canvas.interpolation": &p.Interpolation,
		"canvas.colormap":      &p.Colormap,
		"canvas.range":         &p.Range,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, fmt.Errorf("canvas: %w", err)
		}
	}

	return p, nil
}

// the interface required by prefs.Disk.Add()
type prefsValue interface {
	fmt.Stringer
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Width.Set(512)
	_ = p.Height.Set(512)
	_ = p.Fullscreen.Set(false)
	_ = p.VSync.Set(true)
	_ = p.Overlay.Set(false)
	_ = p.FPS.Set(float64(DefaultFPS))
	_ = p.Interpolation.Set(Nearest.String())
	_ = p.Colormap.Set("gray")
	_ = p.Range.Set("unit")
}

// Load preferences from disk. A missing prefs file is not an error.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Set the preference identified by key (eg. "canvas.fps"). The value will be
// saved even if the preference was overridden on the command line.
func (p *Preferences) Set(key string, v prefs.Value) error {
	if err := p.dsk.Set(key, v); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
