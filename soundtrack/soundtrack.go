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

package soundtrack

import (
	"fmt"
	"time"

	"github.com/jetsetilly/glcanvas/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Soundtrack is an audio file that can be played on the default audio device.
type Soundtrack struct {
	filename string
	pcm      pcm

	id      sdl.AudioDeviceID
	playing bool
	paused  bool
}

// Load is the preferred method of initialisation for the Soundtrack type. The
// file is decoded immediately.
func Load(filename string) (*Soundtrack, error) {
	p, err := decode(filename)
	if err != nil {
		return nil, fmt.Errorf("soundtrack: %w", err)
	}
	if len(p.data) == 0 {
		return nil, fmt.Errorf("soundtrack: %s contains no audio", filename)
	}

	logPCM(filename, p)

	return &Soundtrack{
		filename: filename,
		pcm:      p,
	}, nil
}

// Duration returns the length of the soundtrack.
func (snd *Soundtrack) Duration() time.Duration {
	return snd.pcm.duration()
}

// Play implements the canvas.Soundtrack interface. An audio device is opened
// and the entire soundtrack is queued on it.
func (snd *Soundtrack) Play() error {
	if snd.playing {
		return nil
	}

	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return fmt.Errorf("soundtrack: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(snd.pcm.sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(snd.pcm.channels),
		Samples:  4096,
	}

	// the device is opened without allowing changes so SDL converts the
	// audio if the hardware needs a different format
	var actualSpec sdl.AudioSpec
	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return fmt.Errorf("soundtrack: %w", err)
	}

	err = sdl.QueueAudio(snd.id, snd.pcm.data)
	if err != nil {
		sdl.CloseAudioDevice(snd.id)
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return fmt.Errorf("soundtrack: %w", err)
	}

	sdl.PauseAudioDevice(snd.id, false)
	snd.playing = true

	logger.Logf(logger.Allow, logTag, "playing %s", snd.filename)

	return nil
}

// Pause implements the canvas.Soundtrack interface. Queued audio is kept and
// playback continues from the same point when unpaused.
func (snd *Soundtrack) Pause(paused bool) {
	if !snd.playing || snd.paused == paused {
		return
	}
	snd.paused = paused
	sdl.PauseAudioDevice(snd.id, paused)

	if paused {
		logger.Logf(logger.Allow, logTag, "paused %s", snd.filename)
	} else {
		logger.Logf(logger.Allow, logTag, "resumed %s", snd.filename)
	}
}

// Stop implements the canvas.Soundtrack interface. Any audio that has not
// been played is discarded and the audio device is closed.
func (snd *Soundtrack) Stop() {
	if !snd.playing {
		return
	}
	snd.playing = false
	snd.paused = false

	sdl.PauseAudioDevice(snd.id, true)
	sdl.ClearQueuedAudio(snd.id)
	sdl.CloseAudioDevice(snd.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)

	logger.Logf(logger.Allow, logTag, "stopped %s", snd.filename)
}
