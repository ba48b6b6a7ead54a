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
	"image"
	"time"

	"github.com/jetsetilly/glcanvas/stimulus"
	"github.com/jetsetilly/glcanvas/userinput"
)

// the time at which every test starts
var origin = time.Unix(1000, 0)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) since() time.Duration {
	return c.now.Sub(origin)
}

type timedEvent struct {
	at time.Duration
	ev userinput.Event
}

// fakeBackend advances the fake clock when waiting for events. events are
// delivered when the clock reaches their time
type fakeBackend struct {
	clock *fakeClock

	width, height int
	viewport      [4]int

	uploads   int
	lastImage *image.RGBA
	draws     int

	// how long each call to Draw() takes
	drawCost time.Duration

	fullscreen []bool
	destroyed  bool

	events []timedEvent
	waits  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		clock:  &fakeClock{now: origin},
		width:  640,
		height: 480,
	}
}

func (b *fakeBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *fakeBackend) SetViewport(x, y, width, height int) {
	b.viewport = [4]int{x, y, width, height}
}

func (b *fakeBackend) Upload(img *image.RGBA) error {
	b.uploads++
	b.lastImage = img
	return nil
}

func (b *fakeBackend) Draw() error {
	b.draws++
	b.clock.now = b.clock.now.Add(b.drawCost)
	return nil
}

func (b *fakeBackend) SetFullscreen(fullscreen bool) error {
	b.fullscreen = append(b.fullscreen, fullscreen)
	return nil
}

func (b *fakeBackend) WaitEvent(timeout time.Duration) userinput.Event {
	b.waits++
	if b.waits > 1000000 {
		panic("too many calls to WaitEvent()")
	}

	target := b.clock.now.Add(timeout)
	if len(b.events) > 0 {
		at := origin.Add(b.events[0].at)
		if !at.After(target) {
			ev := b.events[0].ev
			b.events = b.events[1:]
			if at.After(b.clock.now) {
				b.clock.now = at
			}
			return ev
		}
	}

	b.clock.now = target
	return nil
}

func (b *fakeBackend) Destroy() {
	b.destroyed = true
}

func (b *fakeBackend) at(at time.Duration, ev userinput.Event) {
	b.events = append(b.events, timedEvent{at: at, ev: ev})
}

func keyDown(k userinput.Key) userinput.Event {
	return userinput.EventKey{Key: k, Down: true}
}

// overlayBackend is a fakeBackend that supports the overlay
type overlayBackend struct {
	*fakeBackend
	lines []string
}

func (b *overlayBackend) SetOverlay(lines []string) {
	b.lines = lines
}

// recorder is a stimulus that records the time values it is called with
type recorder struct {
	clock *fakeClock

	ts []float64

	// the fake clock reading at every call
	calledAt []time.Duration

	// returned from the stimulus function if not nil
	err error

	// returns a frame of the wrong width if true
	wrongSize bool
}

func (r *recorder) stimulus(width, height int) stimulus.Stimulus {
	frame := stimulus.NewFrame(width, height, 1)
	wrong := stimulus.NewFrame(width+1, height, 1)

	return stimulus.Stimulus{
		Name:     "recorder",
		Width:    width,
		Height:   height,
		Channels: 1,
		Func: func(t float64) (*stimulus.Frame, error) {
			r.ts = append(r.ts, t)
			r.calledAt = append(r.calledAt, r.clock.since())
			if r.err != nil {
				return nil, r.err
			}
			if r.wrongSize {
				return wrong, nil
			}
			return frame, nil
		},
	}
}

func (r *recorder) last() float64 {
	return r.ts[len(r.ts)-1]
}

type fakeMarker struct {
	onsetErr error
	onsets   int
	offsets  int
}

func (m *fakeMarker) Onset() error {
	m.onsets++
	return m.onsetErr
}

func (m *fakeMarker) Offset() error {
	m.offsets++
	return nil
}

type fakeSoundtrack struct {
	clock *fakeClock

	playing bool
	paused  bool
	plays   int

	// the fake clock reading at every call to Pause()
	pausedAt  []time.Duration
	resumedAt []time.Duration
}

func (s *fakeSoundtrack) Play() error {
	s.plays++
	s.playing = true
	return nil
}

func (s *fakeSoundtrack) Pause(paused bool) {
	s.paused = paused
	var at time.Duration
	if s.clock != nil {
		at = s.clock.since()
	}
	if paused {
		s.pausedAt = append(s.pausedAt, at)
	} else {
		s.resumedAt = append(s.resumedAt, at)
	}
}

func (s *fakeSoundtrack) Stop() {
	s.playing = false
}
