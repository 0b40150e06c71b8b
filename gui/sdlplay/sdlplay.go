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

// Package sdlplay is an SDL implementation of the gui.GUI and video.Renderer
// interfaces. It owns the emulator window and is responsible for forwarding
// keyboard input to the keypad and for sounding the buzzer.
package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

const windowTitle = "Gopher8"

// SdlPlay is a simple SDL implementation of the video.Renderer interface.
type SdlPlay struct {
	// the keypad input events are forwarded to. never nil
	key *keypad.Keypad

	// all audio is handled by the beeper type
	snd *beeper

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. it is equal to video.Width * video.Height * pixelDepth
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// scale argument is the size of a single machine pixel in screen pixels.
func NewSdlPlay(key *keypad.Keypad, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{key: key}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the pixel array. the renderer stretches it
	// to fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING, video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = newBeeper()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	return scr, nil
}

// Render implements the video.Renderer interface. The framebuffer is drawn
// white on black.
func (scr *SdlPlay) Render(pixels []bool) error {
	for i, p := range pixels {
		var c byte
		if p {
			c = 255
		}
		scr.pixels[i*pixelDepth] = c
		scr.pixels[i*pixelDepth+1] = c
		scr.pixels[i*pixelDepth+2] = c
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetBuzzer implements the gui.GUI interface.
func (scr *SdlPlay) SetBuzzer(active bool) {
	scr.snd.set(active)
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	scr.snd.destroy()
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
