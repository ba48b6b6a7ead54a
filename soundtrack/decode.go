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
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/glcanvas/logger"
)

const logTag = "soundtrack"

// pcm is 16 bit signed little-endian audio. channels are interleaved
type pcm struct {
	data       []byte
	channels   int
	sampleRate int
}

func (p pcm) duration() time.Duration {
	if p.channels == 0 || p.sampleRate == 0 {
		return 0
	}
	samples := len(p.data) / 2 / p.channels
	return time.Duration(float64(samples) / float64(p.sampleRate) * float64(time.Second))
}

// decode the audio file. the filename extension decides the format
func decode(filename string) (pcm, error) {
	f, err := os.Open(filename)
	if err != nil {
		return pcm{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	}

	return pcm{}, fmt.Errorf("unsupported file type (%s)", filepath.Ext(filename))
}

func decodeWAV(r io.ReadSeeker) (pcm, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return pcm{}, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return pcm{}, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pcm{}, fmt.Errorf("wav: %w", err)
	}

	return fromIntBuffer(buf)
}

// fromIntBuffer converts the samples in the buffer to 16 bit samples. only
// the first two channels are kept
func fromIntBuffer(buf *audio.IntBuffer) (pcm, error) {
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return pcm{}, fmt.Errorf("wav: no channels")
	}
	if buf.SourceBitDepth <= 0 || buf.SourceBitDepth > 32 {
		return pcm{}, fmt.Errorf("wav: unsupported bit depth (%d)", buf.SourceBitDepth)
	}

	inChans := buf.Format.NumChannels
	outChans := min(inChans, 2)

	p := pcm{
		channels:   outChans,
		sampleRate: buf.Format.SampleRate,
		data:       make([]byte, 0, len(buf.Data)/inChans*outChans*2),
	}

	for i := 0; i+inChans <= len(buf.Data); i += inChans {
		for c := 0; c < outChans; c++ {
			p.data = binary.LittleEndian.AppendUint16(p.data, uint16(to16(buf.Data[i+c], buf.SourceBitDepth)))
		}
	}

	return p, nil
}

// to16 scales a sample of the given bit depth to 16 bits. 8 bit samples are
// unsigned and all other bit depths are signed
func to16(v int, depth int) int16 {
	switch {
	case depth == 8:
		return int16((v - 128) << 8)
	case depth < 16:
		v <<= 16 - depth
	case depth > 16:
		v >>= depth - 16
	}
	return int16(max(math.MinInt16, min(math.MaxInt16, v)))
}

func decodeMP3(r io.Reader) (pcm, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return pcm{}, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16 bit little endian with two channels
	// even if the source is single channel
	data, err := io.ReadAll(dec)
	if err != nil {
		return pcm{}, fmt.Errorf("mp3: %w", err)
	}

	return pcm{
		data:       data,
		channels:   2,
		sampleRate: dec.SampleRate(),
	}, nil
}

func logPCM(filename string, p pcm) {
	logger.Logf(logger.Allow, logTag, "%s: %d channels at %dHz", filepath.Base(filename), p.channels, p.sampleRate)
	logger.Logf(logger.Allow, logTag, "%s: duration %v", filepath.Base(filename), p.duration().Round(time.Millisecond))
}
