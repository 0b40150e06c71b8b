// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the buzzer audio to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

const (
	sampleFreq = 44100
	toneFreq   = 440
	toneVolume = 24
	silence    = 128
)

// WavWriter records the state of the buzzer, synthesising the same square
// wave that the SDL beeper sounds.
type WavWriter struct {
	filename string
	buffer   []int

	buzzing bool
	last    time.Time
	phase   int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
		last:     time.Now(),
	}
}

// SetBuzzer implements the gui.GUI interface. Samples covering the time
// since the previous call are appended to the in-memory buffer.
func (aw *WavWriter) SetBuzzer(active bool) {
	now := time.Now()
	elapsed := now.Sub(aw.last)
	aw.last = now

	n := int(elapsed.Seconds() * sampleFreq)

	if !aw.buzzing {
		for i := 0; i < n; i++ {
			aw.buffer = append(aw.buffer, silence)
		}
	} else {
		// square wave phase carries over between calls so the tone is
		// continuous
		period := sampleFreq / toneFreq
		for i := 0; i < n; i++ {
			if (aw.phase/(period/2))%2 == 0 {
				aw.buffer = append(aw.buffer, silence+toneVolume)
			} else {
				aw.buffer = append(aw.buffer, silence-toneVolume)
			}
			aw.phase = (aw.phase + 1) % period
		}
	}

	aw.buzzing = active
}

// End writes the buffered audio to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
