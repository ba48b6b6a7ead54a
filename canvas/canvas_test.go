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

package canvas_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/glcanvas/canvas"
	"github.com/jetsetilly/glcanvas/colormap"
	"github.com/jetsetilly/glcanvas/curated"
	"github.com/jetsetilly/glcanvas/stimulus"
	"github.com/jetsetilly/glcanvas/test"
	"github.com/jetsetilly/glcanvas/timeline"
	"github.com/jetsetilly/glcanvas/userinput"
)

func newCanvas(t *testing.T, b canvas.Backend, clk *fakeClock, rec *recorder, cfg canvas.Config) *canvas.Canvas {
	t.Helper()
	cfg.Stimulus = rec.stimulus(16, 8)
	cfg.Clock = clk
	cnv, err := canvas.New(b, cfg)
	test.DemandSuccess(t, err)
	return cnv
}

func TestInitialFrame(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 100, Duration: time.Second})

	// the first frame is uploaded and drawn before the loop starts
	test.ExpectEquality(t, cnv.State(), canvas.Running)
	test.DemandEquality(t, len(rec.ts), 1)
	test.ExpectEquality(t, rec.ts[0], 0.0)
	test.ExpectEquality(t, b.uploads, 1)
	test.ExpectEquality(t, b.draws, 1)
	test.ExpectEquality(t, b.viewport, [4]int{0, 0, 640, 480})
	test.ExpectEquality(t, cnv.Stats().Frames, 1)

	// the upload buffer is the size of the stimulus, not the window
	test.ExpectEquality(t, b.lastImage.Bounds().Dx(), 16)
	test.ExpectEquality(t, b.lastImage.Bounds().Dy(), 8)
}

func TestShapeMismatch(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock, wrongSize: true}
	_, err := canvas.New(b, canvas.Config{Stimulus: rec.stimulus(16, 8), Duration: time.Second, Clock: b.clock})
	test.ExpectSuccess(t, curated.Has(err, stimulus.ShapeMismatch))
	test.ExpectEquality(t, b.uploads, 0)
}

func TestBadConfig(t *testing.T) {
	b := newFakeBackend()
	_, err := canvas.New(b, canvas.Config{})
	test.ExpectFailure(t, err)

	rec := &recorder{clock: b.clock}
	_, err = canvas.New(b, canvas.Config{Stimulus: rec.stimulus(16, 8), FPS: -1, Duration: time.Second})
	test.ExpectFailure(t, err)
}

func TestNoDeadline(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock}

	_, err := canvas.New(b, canvas.Config{Stimulus: rec.stimulus(16, 8), Clock: b.clock})
	test.ExpectFailure(t, err)

	// a timeline that ends at zero has nothing to display
	_, err = canvas.New(b, canvas.Config{
		Stimulus: rec.stimulus(16, 8),
		Timeline: timeline.New(0),
		Clock:    b.clock,
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, b.uploads, 0)
	test.ExpectEquality(t, len(rec.ts), 0)
}

func TestDegenerateRange(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock}
	rng := colormap.Range{Min: 0, Max: 0}
	frame := stimulus.NewFrame(16, 8, 1)
	for i := range frame.Pix {
		frame.Pix[i] = 1
	}
	stim := rec.stimulus(16, 8)
	stim.Func = func(_ float64) (*stimulus.Frame, error) {
		return frame, nil
	}

	_, err := canvas.New(b, canvas.Config{Stimulus: stim, Duration: time.Second, Range: &rng, Clock: b.clock})
	test.DemandSuccess(t, err)

	// every sample is displayed as zero. with the unit range they would be white
	test.DemandEquality(t, b.uploads, 1)
	test.ExpectEquality(t, b.lastImage.Pix[0], uint8(0))
	test.ExpectEquality(t, b.lastImage.Pix[3], uint8(255))
}

func TestDeadline(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 100, Duration: 10 * time.Second})

	test.DemandSuccess(t, cnv.Run(context.Background()))
	test.ExpectEquality(t, cnv.State(), canvas.Closed)
	test.ExpectSuccess(t, b.destroyed)

	// the last evaluation is before the deadline
	test.ExpectSuccess(t, rec.last() < 10.0)
	test.ExpectWithin(t, rec.last(), 9.99, 1e-9)

	// one initial frame plus 999 ticks
	test.ExpectEquality(t, len(rec.ts), 1000)
	test.ExpectEquality(t, b.uploads, len(rec.ts))
	test.ExpectEquality(t, cnv.Stats().Frames, len(rec.ts))

	// time values are strictly increasing
	for i := 1; i < len(rec.ts); i++ {
		test.DemandSuccess(t, rec.ts[i] > rec.ts[i-1], i)
	}

	// the canvas closed on the first tick at or after the deadline
	test.ExpectEquality(t, b.clock.since(), 10*time.Second)
	test.ExpectApproximate(t, cnv.Stats().FPS, 100.0, 0.01)

	// running a closed canvas returns immediately
	waits := b.waits
	test.ExpectSuccess(t, cnv.Run(context.Background()))
	test.ExpectEquality(t, b.waits, waits)
}

func TestTimelineDeadline(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{
		FPS:      50,
		Timeline: timeline.Linspace(0, 1, 51),
	})

	test.DemandSuccess(t, cnv.Run(context.Background()))
	test.ExpectEquality(t, b.clock.since(), time.Second)
	test.ExpectSuccess(t, rec.last() < 1.0)

	// an explicit duration takes priority over the timeline
	cfg := canvas.Config{Duration: 2 * time.Second, Timeline: timeline.Linspace(0, 1, 51)}
	test.ExpectEquality(t, cfg.Deadline(), 2*time.Second)
}

func TestFallingBehind(t *testing.T) {
	b := newFakeBackend()
	b.drawCost = 35 * time.Millisecond
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 100, Duration: time.Second})

	test.DemandSuccess(t, cnv.Run(context.Background()))

	// every tick produces one upload and ticks are not delivered in a burst
	test.ExpectEquality(t, b.uploads, len(rec.ts))
	for i := 2; i < len(rec.ts); i++ {
		d := rec.ts[i] - rec.ts[i-1]
		test.DemandSuccess(t, d >= 0.035-1e-9, i, d)
	}
}

func TestResize(t *testing.T) {
	b := newFakeBackend()
	b.at(500*time.Millisecond, userinput.EventResize{Width: 1920, Height: 1080})
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: time.Second})

	test.DemandSuccess(t, cnv.Run(context.Background()))
	test.ExpectEquality(t, b.viewport, [4]int{0, 0, 1920, 1080})

	// the resize caused a redraw but not a stimulus evaluation
	test.ExpectEquality(t, b.uploads, len(rec.ts))
	test.ExpectEquality(t, b.draws, len(rec.ts)+1)
	test.ExpectEquality(t, len(rec.ts), 10)
}

func TestPause(t *testing.T) {
	b := newFakeBackend()
	b.at(1*time.Second, keyDown(userinput.KeySpace))
	b.at(3*time.Second, keyDown(userinput.KeySpace))
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: 2 * time.Second})

	test.DemandSuccess(t, cnv.Run(context.Background()))

	// two seconds paused are not part of the elapsed time
	test.ExpectEquality(t, b.clock.since(), 4*time.Second)
	test.ExpectEquality(t, cnv.Stats().Elapsed, 2*time.Second)
	test.ExpectSuccess(t, rec.last() < 2.0)

	// no evaluations while paused
	for i, at := range rec.calledAt {
		test.ExpectFailure(t, at > time.Second && at <= 3*time.Second, i, at)
	}

	// evaluation time continues from where it was paused
	for i := 1; i < len(rec.ts); i++ {
		test.DemandSuccess(t, rec.ts[i]-rec.ts[i-1] < 0.21, i)
	}
	test.ExpectEquality(t, len(rec.ts), 19)
}

func TestPauseBeforeRun(t *testing.T) {
	b := newFakeBackend()
	b.at(time.Second, keyDown(userinput.KeySpace))
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: time.Second})

	cnv.TogglePause()
	test.ExpectSuccess(t, cnv.Paused())

	test.DemandSuccess(t, cnv.Run(context.Background()))
	test.ExpectEquality(t, b.clock.since(), 2*time.Second)
	test.ExpectEquality(t, len(rec.ts), 10)
}

func TestPauseSoundtrack(t *testing.T) {
	b := newFakeBackend()
	b.at(1*time.Second, keyDown(userinput.KeySpace))
	b.at(3*time.Second, keyDown(userinput.KeySpace))
	rec := &recorder{clock: b.clock}
	snd := &fakeSoundtrack{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: 2 * time.Second, Soundtrack: snd})

	test.DemandSuccess(t, cnv.Run(context.Background()))

	// the soundtrack is paused for the same wall time as the stimulus
	test.ExpectEquality(t, snd.plays, 1)
	test.DemandEquality(t, len(snd.pausedAt), 1)
	test.DemandEquality(t, len(snd.resumedAt), 1)
	test.ExpectEquality(t, snd.pausedAt[0], time.Second)
	test.ExpectEquality(t, snd.resumedAt[0], 3*time.Second)
	test.ExpectFailure(t, snd.paused)
	test.ExpectFailure(t, snd.playing)
}

func TestPauseSoundtrackBeforeRun(t *testing.T) {
	b := newFakeBackend()
	b.at(time.Second, keyDown(userinput.KeySpace))
	rec := &recorder{clock: b.clock}
	snd := &fakeSoundtrack{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: time.Second, Soundtrack: snd})

	// the soundtrack is not touched until the loop starts
	cnv.TogglePause()
	test.ExpectEquality(t, len(snd.pausedAt), 0)

	test.DemandSuccess(t, cnv.Run(context.Background()))

	// started paused and resumed with the stimulus
	test.ExpectEquality(t, snd.plays, 1)
	test.DemandEquality(t, len(snd.pausedAt), 1)
	test.DemandEquality(t, len(snd.resumedAt), 1)
	test.ExpectEquality(t, snd.pausedAt[0], time.Duration(0))
	test.ExpectEquality(t, snd.resumedAt[0], time.Second)
}

func TestQuit(t *testing.T) {
	for _, k := range []userinput.Key{userinput.KeyEscape, userinput.KeyQ} {
		b := newFakeBackend()
		b.at(500*time.Millisecond, keyDown(k))
		rec := &recorder{clock: b.clock}
		mrk := &fakeMarker{}
		snd := &fakeSoundtrack{}
		cnv := newCanvas(t, b, b.clock, rec, canvas.Config{
			FPS:        100,
			Duration:   10 * time.Second,
			Marker:     mrk,
			Soundtrack: snd,
		})

		test.DemandSuccess(t, cnv.Run(context.Background()), k)
		test.ExpectEquality(t, cnv.State(), canvas.Closed, k)
		test.ExpectEquality(t, b.clock.since(), 500*time.Millisecond, k)
		test.ExpectSuccess(t, b.destroyed, k)

		test.ExpectEquality(t, mrk.onsets, 1, k)
		test.ExpectEquality(t, mrk.offsets, 1, k)
		test.ExpectEquality(t, snd.plays, 1, k)
		test.ExpectFailure(t, snd.playing, k)
	}
}

func TestWindowClose(t *testing.T) {
	b := newFakeBackend()
	b.at(200*time.Millisecond, userinput.EventQuit{})
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 100, Duration: 10 * time.Second})

	test.DemandSuccess(t, cnv.Run(context.Background()))
	test.ExpectEquality(t, cnv.State(), canvas.Closed)
	test.ExpectSuccess(t, rec.last() < 0.2)
}

func TestMarkerOnsetFailure(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock}
	mrk := &fakeMarker{onsetErr: errors.New("no trigger box")}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: time.Second, Marker: mrk})

	// the marker is disabled but the canvas runs as normal
	test.DemandSuccess(t, cnv.Run(context.Background()))
	test.ExpectEquality(t, mrk.onsets, 1)
	test.ExpectEquality(t, mrk.offsets, 0)
	test.ExpectEquality(t, len(rec.ts), 10)
}

func TestFullscreen(t *testing.T) {
	b := newFakeBackend()
	b.at(100*time.Millisecond, keyDown(userinput.KeyTab))
	b.at(200*time.Millisecond, userinput.EventKey{Key: userinput.KeyTab, Down: true, Repeat: true})
	b.at(300*time.Millisecond, keyDown(userinput.KeyF11))
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: time.Second})

	test.DemandSuccess(t, cnv.Run(context.Background()))

	// the repeated key is ignored
	test.DemandEquality(t, len(b.fullscreen), 2)
	test.ExpectSuccess(t, b.fullscreen[0])
	test.ExpectFailure(t, b.fullscreen[1])
	test.ExpectFailure(t, cnv.Fullscreen())
}

func TestStimulusError(t *testing.T) {
	b := newFakeBackend()
	b.at(500*time.Millisecond, userinput.EventResize{Width: 100, Height: 100})
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: time.Second})

	sentinel := errors.New("stimulus failed")
	rec.err = sentinel

	err := cnv.Run(context.Background())
	test.ExpectSuccess(t, errors.Is(err, sentinel))
	test.ExpectEquality(t, cnv.State(), canvas.Closed)
	test.ExpectSuccess(t, b.destroyed)

	// failed on the first tick
	test.ExpectEquality(t, b.clock.since(), 100*time.Millisecond)
}

func TestContextCancel(t *testing.T) {
	b := newFakeBackend()
	rec := &recorder{clock: b.clock}
	cnv := newCanvas(t, b, b.clock, rec, canvas.Config{FPS: 10, Duration: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	test.DemandSuccess(t, cnv.Run(ctx))
	test.ExpectEquality(t, cnv.State(), canvas.Closed)
	test.ExpectEquality(t, len(rec.ts), 1)
}

func TestOverlay(t *testing.T) {
	fb := newFakeBackend()
	fb.at(500*time.Millisecond, keyDown(userinput.KeyF1))
	b := &overlayBackend{fakeBackend: fb}
	rec := &recorder{clock: fb.clock}
	cnv := newCanvas(t, b, fb.clock, rec, canvas.Config{FPS: 10, Duration: time.Second, Overlay: true})

	test.DemandEquality(t, len(b.lines) > 0, true)
	test.ExpectEquality(t, b.lines[0], "recorder (8x16x1)")

	test.DemandSuccess(t, cnv.Run(context.Background()))

	// overlay was turned off by the F1 key
	test.ExpectEquality(t, len(b.lines), 0)
}
