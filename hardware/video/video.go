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

package video

import (
	"strings"
)

// Width and Height of the framebuffer in pixels.
const (
	Width  = 64
	Height = 32
)

// Renderer implementations display, or otherwise work with, the monochrome
// pixel grid. Renderers are registered with AddRenderer() and receive a
// fresh copy of the framebuffer whenever the driving loop pushes a frame.
//
// Render() is only ever called between CPU cycles, never during one, so the
// pixels slice is always a consistent frame.
type Renderer interface {
	Render(pixels []bool) error
}

// Video is the 64x32 monochrome framebuffer of the CHIP-8. It is mutated
// only by the draw and clear instructions.
type Video struct {
	pixels [Width * Height]bool

	// whether sprite pixels that fall off the framebuffer edge are clipped
	// (discarded) or wrapped to the opposite edge
	clipping bool

	renderers []Renderer

	// the framebuffer has changed since the last push to the renderers
	dirty bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(clipping bool) *Video {
	return &Video{
		clipping: clipping,
	}
}

// String returns the framebuffer as rows of '#' and '.' characters. Used by
// the debugger.
func (vid *Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.pixels[y*Width+x] {
				s.WriteString("#")
			} else {
				s.WriteString(".")
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}

// AddRenderer registers an (additional) implementation of Renderer.
func (vid *Video) AddRenderer(rnd Renderer) {
	vid.renderers = append(vid.renderers, rnd)
}

// Reset clears the framebuffer.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear sets every pixel to off.
func (vid *Video) Clear() {
	vid.pixels = [Width * Height]bool{}
	vid.dirty = true
}

// Pixel returns the state of the pixel at the specified coordinates.
func (vid *Video) Pixel(x, y int) bool {
	return vid.pixels[y*Width+x]
}

// DrawSprite XORs the sprite onto the framebuffer at the specified
// coordinates. Each byte of the sprite is one row of eight pixels, most
// significant bit leftmost.
//
// The start coordinates always wrap (mod Width/Height); whether the body of
// the sprite wraps or clips at the framebuffer edge depends on the clipping
// quirk.
//
// Returns true if any pixel was turned off by the XOR. The CPU records this
// in VF.
func (vid *Video) DrawSprite(x, y uint8, sprite []uint8) bool {
	sx := int(x) % Width
	sy := int(y) % Height

	collision := false

	for row, data := range sprite {
		py := sy + row
		if py >= Height {
			if vid.clipping {
				break
			}
			py %= Height
		}

		for bit := 0; bit < 8; bit++ {
			if data>>(7-bit)&0x01 != 0x01 {
				continue
			}

			px := sx + bit
			if px >= Width {
				if vid.clipping {
					break
				}
				px %= Width
			}

			if vid.pixels[py*Width+px] {
				collision = true
			}
			vid.pixels[py*Width+px] = !vid.pixels[py*Width+px]
		}
	}

	vid.dirty = true

	return collision
}

// IsDirty returns true if the framebuffer has changed since the last call to
// Render().
func (vid *Video) IsDirty() bool {
	return vid.dirty
}

// Render pushes a copy of the framebuffer to every registered Renderer, if
// the framebuffer has changed since the last push. Called by the driving
// loop once per scheduling iteration, never mid-cycle.
func (vid *Video) Render() error {
	if !vid.dirty {
		return nil
	}
	vid.dirty = false

	for _, rnd := range vid.renderers {
		c := make([]bool, len(vid.pixels))
		copy(c, vid.pixels[:])
		if err := rnd.Render(c); err != nil {
			return err
		}
	}

	return nil
}
