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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

// the machine has a single monotone buzzer. we synthesise a square wave and
// queue it to the audio device while the sound timer is non-zero.
const (
	sampleFreq = 44100
	toneFreq   = 440
	toneVolume = 24

	// size of the square wave buffer in samples. a tenth of a second
	toneLength = sampleFreq / 10

	// QueueAudio is topped up whenever the queue drops below this many bytes
	queueThreshold = toneLength / 2
)

type beeper struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// prebuilt square wave at the device's silence value
	tone []uint8

	buzzing bool
}

func newBeeper() (*beeper, error) {
	snd := &beeper{}

	// prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init()
	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	// the device is unpaused from the start. silence is the absence of
	// queued data
	sdl.PauseAudioDevice(snd.id, false)

	// square wave flips between the two half-period values
	snd.tone = make([]uint8, toneLength)
	period := int(snd.spec.Freq) / toneFreq
	for i := range snd.tone {
		if (i/(period/2))%2 == 0 {
			snd.tone[i] = snd.spec.Silence + toneVolume
		} else {
			snd.tone[i] = snd.spec.Silence - toneVolume
		}
	}

	return snd, nil
}

// set the buzzer on or off. transitions to off clear any queued audio so the
// tone ends promptly.
func (snd *beeper) set(active bool) {
	if snd.buzzing == active {
		return
	}
	snd.buzzing = active

	if active {
		_ = sdl.QueueAudio(snd.id, snd.tone)
	} else {
		sdl.ClearQueuedAudio(snd.id)
	}
}

// service keeps the audio queue topped up. called every Service() iteration.
func (snd *beeper) service() {
	if !snd.buzzing {
		return
	}
	if sdl.GetQueuedAudioSize(snd.id) < queueThreshold {
		_ = sdl.QueueAudio(snd.id, snd.tone)
	}
}

func (snd *beeper) destroy() {
	sdl.ClearQueuedAudio(snd.id)
	sdl.CloseAudioDevice(snd.id)
}
