// This file is part of Gopherpsx.
//
// Gopherpsx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpsx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpsx.  If not, see <https://www.gnu.org/licenses/>.

package vram

import (
	"fmt"
	"image/color"
)

// Pixel is a single VRAM pixel. Red is in bits 0 to 4, green in bits 5 to 9
// and blue in bits 10 to 14. Bit 15 is the mask bit.
type Pixel uint16

// MaskBit is the mask bit of a Pixel.
const MaskBit Pixel = 0x8000

// NewPixel creates a Pixel from 5 bit channel values.
func NewPixel(r, g, b uint8, mask bool) Pixel {
	p := Pixel(r&0x1f) | Pixel(g&0x1f)<<5 | Pixel(b&0x1f)<<10
	if mask {
		p |= MaskBit
	}
	return p
}

// FromRGB24 creates a Pixel from 8 bit channel values. The mask bit is clear.
func FromRGB24(r, g, b uint8) Pixel {
	return NewPixel(r>>3, g>>3, b>>3, false)
}

// FromCommand creates a Pixel from the 24 bit colour used by GPU commands.
// Red is in the least significant byte.
func FromCommand(c uint32) Pixel {
	return FromRGB24(uint8(c), uint8(c>>8), uint8(c>>16))
}

func (p Pixel) String() string {
	return fmt.Sprintf("%02d,%02d,%02d %v", p.R(), p.G(), p.B(), p.Mask())
}

// R returns the 5 bit red channel.
func (p Pixel) R() uint8 {
	return uint8(p & 0x1f)
}

// G returns the 5 bit green channel.
func (p Pixel) G() uint8 {
	return uint8((p >> 5) & 0x1f)
}

// B returns the 5 bit blue channel.
func (p Pixel) B() uint8 {
	return uint8((p >> 10) & 0x1f)
}

// Mask returns the state of the mask bit.
func (p Pixel) Mask() bool {
	return p&MaskBit == MaskBit
}

// Color converts the pixel to a colour with 8 bit channels. The mask bit is
// ignored.
func (p Pixel) Color() color.RGBA {
	expand := func(c uint8) uint8 {
		return c<<3 | c>>2
	}
	return color.RGBA{R: expand(p.R()), G: expand(p.G()), B: expand(p.B()), A: 0xff}
}
