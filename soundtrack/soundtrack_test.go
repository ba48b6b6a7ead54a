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
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/glcanvas/test"
)

func TestTo16(t *testing.T) {
	test.ExpectEquality(t, to16(0, 16), int16(0))
	test.ExpectEquality(t, to16(-32768, 16), int16(-32768))
	test.ExpectEquality(t, to16(128, 8), int16(0))
	test.ExpectEquality(t, to16(255, 8), int16(127<<8))
	test.ExpectEquality(t, to16(0, 8), int16(-32768))
	test.ExpectEquality(t, to16(1<<23-1, 24), int16(32767))
	test.ExpectEquality(t, to16(-1<<23, 24), int16(-32768))
}

func TestFromIntBuffer(t *testing.T) {
	// three channels, two frames. the third channel is dropped
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 3, SampleRate: 8000},
		Data:           []int{1, 2, 3, 4, 5, 6},
		SourceBitDepth: 16,
	}
	p, err := fromIntBuffer(buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.channels, 2)
	test.ExpectEquality(t, p.sampleRate, 8000)
	test.DemandEquality(t, len(p.data), 8)
	test.ExpectEquality(t, binary.LittleEndian.Uint16(p.data[0:]), uint16(1))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(p.data[2:]), uint16(2))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(p.data[4:]), uint16(4))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(p.data[6:]), uint16(5))

	_, err = fromIntBuffer(&audio.IntBuffer{SourceBitDepth: 16})
	test.ExpectFailure(t, err)
}

func TestLoadWAV(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(pth)
	test.DemandSuccess(t, err)

	const rate = 8000
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, rate/2),
		SourceBitDepth: 16,
	}
	for i := range buf.Data {
		buf.Data[i] = (i % 64) * 100
	}

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	snd, err := Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snd.pcm.channels, 1)
	test.ExpectEquality(t, snd.pcm.sampleRate, rate)
	test.ExpectEquality(t, snd.Duration(), 500*time.Millisecond)
	test.ExpectEquality(t, binary.LittleEndian.Uint16(snd.pcm.data[2:]), uint16(100))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.wav"))
	test.ExpectFailure(t, err)

	pth := filepath.Join(dir, "audio.ogg")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not audio"), 0o600))
	_, err = Load(pth)
	test.ExpectFailure(t, err)

	pth = filepath.Join(dir, "bad.wav")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not audio"), 0o600))
	_, err = Load(pth)
	test.ExpectFailure(t, err)
}

func TestStopWithoutPlay(t *testing.T) {
	snd := &Soundtrack{}
	snd.Stop()
	test.ExpectEquality(t, snd.playing, false)
}

func TestPauseWithoutPlay(t *testing.T) {
	snd := &Soundtrack{}
	snd.Pause(true)
	test.ExpectEquality(t, snd.paused, false)
}
