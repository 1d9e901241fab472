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

package rasterizer

import (
	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/vram"
)

func (r *Rasterizer) rectangle(cmd command.Command) {
	p := newPrimitive(r, &cmd)

	// rectangles are never dithered
	p.dither = false

	var origin vertex
	origin.setColour(cmd.Words[0])
	origin.setPosition(cmd.Words[1], &cmd.Config)

	w := 2
	if command.Textured(cmd.Opcode) {
		origin.setTexCoord(cmd.Words[w])
		p.tex.setCLUT(cmd.Words[w] >> 16)
		w++
	}

	width := command.RectangleSize(cmd.Opcode)
	height := width
	if width == 0 {
		width = int(cmd.Words[w] & 0x3ff)
		height = int((cmd.Words[w] >> 16) & 0x1ff)
	}

	du := 1
	if cmd.Config.FlipX {
		du = -1
	}
	dv := 1
	if cmd.Config.FlipY {
		dv = -1
	}

	minX := max(origin.x, cmd.Config.DrawLeft)
	maxX := min(origin.x+width-1, cmd.Config.DrawRight)
	minY := max(origin.y, cmd.Config.DrawTop)
	maxY := min(origin.y+height-1, cmd.Config.DrawBottom)

	for y := minY; y <= maxY; y++ {
		v := origin.v + (y-origin.y)*dv
		for x := minX; x <= maxX; x++ {
			u := origin.u + (x-origin.x)*du
			r.fragment(&p, x, y, origin.r, origin.g, origin.b, u, v)
		}
	}
}

// fill a rectangle with a solid colour. the fill ignores the drawing area and
// the mask settings. the horizontal position and width are in units of 16
// pixels.
func (r *Rasterizer) fill(cmd command.Command) {
	col := vram.FromCommand(cmd.Words[0])

	x := int(cmd.Words[1] & 0x3f0)
	y := int((cmd.Words[1] >> 16) & 0x1ff)
	w := int(((cmd.Words[2] & 0x3ff) + 0x0f) &^ 0x0f)
	h := int((cmd.Words[2] >> 16) & 0x1ff)

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r.VRAM.Set(x+i, y+j, col)
		}
	}
}

// copy a rectangle of VRAM to another part of VRAM. the source is read in full
// before the destination is written so that overlapping areas are copied as
// though there was no overlap.
func (r *Rasterizer) copy(cmd command.Command) {
	sx, sy := command.TransferOrigin(cmd.Words[1])
	dx, dy := command.TransferOrigin(cmd.Words[2])
	w, h := command.TransferSize(cmd.Words[3])

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r.temp[j*w+i] = r.VRAM.Get(sx+i, sy+j)
		}
	}

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r.put(dx+i, dy+j, r.temp[j*w+i], &cmd.Config)
		}
	}
}

// put a pixel into VRAM with the mask settings applied. used by the copy and
// upload commands which bypass the rest of the pixel pipeline.
func (r *Rasterizer) put(x, y int, px vram.Pixel, cfg *command.Config) {
	if cfg.CheckMask && r.VRAM.Get(x, y).Mask() {
		return
	}
	if cfg.SetMask {
		px |= vram.MaskBit
	}
	r.VRAM.Set(x, y, px)
}
