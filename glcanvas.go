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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/glcanvas/canvas"
	"github.com/jetsetilly/glcanvas/colormap"
	"github.com/jetsetilly/glcanvas/gui/headless"
	"github.com/jetsetilly/glcanvas/gui/sdlgl"
	"github.com/jetsetilly/glcanvas/logger"
	"github.com/jetsetilly/glcanvas/modalflag"
	"github.com/jetsetilly/glcanvas/performance"
	"github.com/jetsetilly/glcanvas/prefs"
	"github.com/jetsetilly/glcanvas/random"
	"github.com/jetsetilly/glcanvas/session"
	"github.com/jetsetilly/glcanvas/soundtrack"
	"github.com/jetsetilly/glcanvas/statsview"
	"github.com/jetsetilly/glcanvas/stimulus"
	"github.com/jetsetilly/glcanvas/terminal"
	"github.com/jetsetilly/glcanvas/timeline"
	"github.com/jetsetilly/glcanvas/trigger"
	"github.com/jetsetilly/glcanvas/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// SDL requires that window creation and event handling happen on the main
// thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("available stimuli: %s\navailable colormaps: %s",
		strings.Join(stimulus.Names(), ", "), strings.Join(colormap.Names(), ", ")))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output, false)

	case "HEADLESS":
		err = run(md, output, true)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// the flags common to the RUN and HEADLESS modes
type runFlags struct {
	stimulus   *string
	width      *int
	height     *int
	fullscreen *bool
	vsync      *bool
	overlay    *bool
	fps        *float64
	duration   *string
	interp     *string
	cmap       *string
	clim       *string
	grid       *int
	gridsize   *int
	freq       *float64
	seed       *int64
	session    *string
	soundtrack *string
	trigger    *string
	prefs      *string
	saveprefs  *bool
	log        *bool
	memviz     *string
	statsview  *bool
	profile    *string
}

func addRunFlags(md *modalflag.Modes) runFlags {
	def := stimulus.DefaultParams()
	return runFlags{
		stimulus:   md.AddString("stimulus", "noise", fmt.Sprintf("stimulus to display: %s", strings.Join(stimulus.Names(), ", "))),
		width:      md.AddInt("width", 0, "window width (and width of full display stimuli)"),
		height:     md.AddInt("height", 0, "window height (and height of full display stimuli)"),
		fullscreen: md.AddBool("fullscreen", false, "start in fullscreen mode"),
		vsync:      md.AddBool("vsync", true, "synchronise buffer swaps with the display refresh"),
		overlay:    md.AddBool("overlay", false, "show statistics overlay"),
		fps:        md.AddFloat64("fps", 0, "frames per second at which the stimulus is evaluated"),
		duration:   md.AddString("duration", "3s", "length of the run"),
		interp:     md.AddString("interp", "", "texture interpolation: nearest, linear"),
		cmap:       md.AddString("cmap", "", fmt.Sprintf("colormap for single channel stimuli: %s", strings.Join(colormap.Names(), ", "))),
		clim:       md.AddString("clim", "", "range of sample values: unit, byte or min,max"),
		grid:       md.AddInt("grid", def.GridNum, "number of checkerboard cells in each direction"),
		gridsize:   md.AddInt("gridsize", def.GridSize, "size of each checkerboard cell in pixels"),
		freq:       md.AddFloat64("freq", def.Freq, "frequency of stimulus changes in Hz"),
		seed:       md.AddInt64("seed", 0, "seed for random stimuli (0 seeds from the clock)"),
		session:    md.AddString("session", "", "session file (TOML)"),
		soundtrack: md.AddString("soundtrack", "", "audio file to play with the stimulus (wav or mp3)"),
		trigger:    md.AddString("trigger", "", "serial device of a DLP-IO8-G trigger box"),
		prefs:      md.AddString("prefs", "", "preferences for this run only (eg. \"canvas.fps::120; canvas.vsync::false\")"),
		saveprefs:  md.AddBool("saveprefs", false, "save window and display flags as new defaults"),
		log:        md.AddBool("log", false, "echo log to stdout"),
		memviz:     md.AddString("memviz", "", "write graph of the canvas configuration to file (dot format)"),
		statsview:  md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		profile:    md.AddString("profile", "none", "write profiles: cpu, mem, trace, all (comma separated)"),
	}
}

func run(md *modalflag.Modes, output io.Writer, hl bool) error {
	md.NewMode()
	fl := addRunFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *fl.log {
		logger.SetEcho(terminal.Output(os.Stdout, true), true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *fl.prefs != "" {
		prefs.PushCommandLineStack(*fl.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	pref, err := canvas.NewPreferences("")
	if err != nil {
		return err
	}
	err = pref.Load()
	if err != nil {
		return err
	}

	opts, err := buildOptions(md, fl, pref)
	if err != nil {
		return err
	}

	if *fl.saveprefs {
		err = savePrefs(md, pref, opts)
		if err != nil {
			return err
		}
	}

	profile, err := performance.ParseProfile(*fl.profile)
	if err != nil {
		return err
	}

	rnd := random.NewRandom(opts.Seed)
	logger.Logf(logger.Allow, "random", "seed %d", rnd.Seed())

	cfg, err := opts.Config(rnd)
	if err != nil {
		return err
	}

	// optional components are disabled if they cannot be set up
	if opts.Soundtrack != "" {
		snd, err := soundtrack.Load(opts.Soundtrack)
		if err != nil {
			logger.Logf(logger.Allow, "soundtrack", "disabled: %v", err)
		} else {
			cfg.Soundtrack = snd
		}
	}

	if opts.Trigger != "" {
		box, err := trigger.Open(opts.Trigger, trigger.DefaultBaudRate, trigger.DefaultLines)
		if err != nil {
			logger.Logf(logger.Allow, "trigger", "disabled: %v", err)
		} else {
			cfg.Marker = box
			defer box.Close()
		}
	}

	if *fl.memviz != "" {
		err = dumpConfig(*fl.memviz, &cfg)
		if err != nil {
			return err
		}
	}

	if *fl.statsview {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	var backend canvas.Backend
	var hlBackend *headless.Headless
	if hl {
		hlBackend = headless.NewHeadless(cfg.Width, cfg.Height)
		backend = hlBackend
	} else {
		backend, err = sdlgl.NewWindow(cfg)
		if err != nil {
			return err
		}
	}

	cnv, err := canvas.New(backend, cfg)
	if err != nil {
		backend.Destroy()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = performance.RunProfiler(profile, strings.ToLower(md.Mode()), func() error {
		return cnv.Run(ctx)
	})
	if err != nil {
		return err
	}

	if hl {
		report(output, cfg, hlBackend.Uploads, cnv.Stats().Elapsed)
	}

	return nil
}

// report summarises a headless run. the number of frames is compared to the
// nominal number for the length of the run
func report(output io.Writer, cfg canvas.Config, frames int, elapsed time.Duration) {
	target := cfg.FPS
	if target <= 0 {
		target = canvas.DefaultFPS
	}
	nominal := timeline.FromDuration(cfg.Deadline(), target)
	fps, accuracy := performance.CalcFPS(frames, elapsed, target)

	fmt.Fprintf(output, "%s\n", cfg.Stimulus)
	fmt.Fprintf(output, "%d of %d frames in %v\n", frames, nominal.Len(), elapsed)
	fmt.Fprintf(output, "%.2f fps (%.2f%%)\n", fps, accuracy)
}

// buildOptions combines the preferences, the command line and the session
// file. The command line takes priority over the session file, which takes
// priority over the preferences
func buildOptions(md *modalflag.Modes, fl runFlags, pref *canvas.Preferences) (session.Options, error) {
	opts := session.Options{
		Width:         pref.Width.Get().(int),
		Height:        pref.Height.Get().(int),
		Fullscreen:    pref.Fullscreen.Get().(bool),
		VSync:         pref.VSync.Get().(bool),
		Overlay:       pref.Overlay.Get().(bool),
		FPS:           pref.FPS.Get().(float64),
		Interpolation: pref.Interpolation.String(),
		Colormap:      pref.Colormap.String(),
		Range:         pref.Range.String(),
		Stimulus:      *fl.stimulus,
		Seed:          *fl.seed,
		Soundtrack:    *fl.soundtrack,
		Trigger:       *fl.trigger,
		Params:        stimulus.DefaultParams(),
	}

	var err error
	opts.Duration, err = parseDuration(*fl.duration)
	if err != nil {
		return opts, err
	}

	opts.Params.GridNum = *fl.grid
	opts.Params.GridSize = *fl.gridsize
	opts.Params.Freq = *fl.freq

	md.Visit(func(flag string) {
		switch flag {
		case "width":
			opts.Width = *fl.width
		case "height":
			opts.Height = *fl.height
		case "fullscreen":
			opts.Fullscreen = *fl.fullscreen
		case "vsync":
			opts.VSync = *fl.vsync
		case "overlay":
			opts.Overlay = *fl.overlay
		case "fps":
			opts.FPS = *fl.fps
		case "interp":
			opts.Interpolation = *fl.interp
		case "cmap":
			opts.Colormap = *fl.cmap
		case "clim":
			opts.Range = *fl.clim
		}
	})

	if *fl.session != "" {
		sess, err := session.Load(*fl.session)
		if err != nil {
			return opts, err
		}
		sess.Merge(&opts, md.IsSet)
		logger.Logf(logger.Allow, "session", "loaded %s", *fl.session)
	}

	return opts, nil
}

// savePrefs stores the window and display flags that were set on the command
// line as the new preferences
func savePrefs(md *modalflag.Modes, pref *canvas.Preferences, opts session.Options) error {
	saved := map[string]struct {
		key string
		v   prefs.Value
	}{
		"width":      {"canvas.width", opts.Width},
		"height":     {"canvas.height", opts.Height},
		"fullscreen": {"canvas.fullscreen", opts.Fullscreen},
		"vsync":      {"canvas.vsync", opts.VSync},
		"overlay":    {"canvas.overlay", opts.Overlay},
		"fps":        {"canvas.fps", opts.FPS},
		"interp":     {"canvas.interpolation", opts.Interpolation},
		"cmap":       {"canvas.colormap", opts.Colormap},
		"clim":       {"canvas.range", opts.Range},
	}

	var err error
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		if s, ok := saved[flag]; ok {
			err = pref.Set(s.key, s.v)
		}
	})
	if err != nil {
		return err
	}
	return pref.Save()
}

// dumpConfig writes a graph of the canvas configuration to the named file
func dumpConfig(filename string, cfg *canvas.Config) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, cfg)
	logger.Logf(logger.Allow, "memviz", "configuration graph written to %s", filename)

	return nil
}

// parseDuration accepts a duration string or a number of seconds
func parseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("duration: not a duration or a number of seconds (%s)", s)
	}
	return time.Duration(f * float64(time.Second)), nil
}
