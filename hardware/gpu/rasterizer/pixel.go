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

// Semi-transparency modes.
const (
	semiAverage = iota
	semiAdd
	semiSubtract
	semiAddQuarter
)

// Texture colour depths.
const (
	depth4Bit = iota
	depth8Bit
	depth15Bit
)

// offsets added to the 8 bit colour channels before they are reduced to 5
// bits
var ditherTable = [4][4]int{
	{-4, +0, -3, +1},
	{+2, -2, +3, -1},
	{-3, +1, -4, +0},
	{+3, -1, +2, -2},
}

// texture describes where the texels of a primitive come from.
type texture struct {
	pageX int
	pageY int
	depth int
	clutX int
	clutY int
}

// setPage decodes the texture page attribute of a textured polygon. The
// attribute has the same layout as the low bits of GP0(E1).
func (t *texture) setPage(data uint32) {
	t.pageX = int(data&0x0f) * 64
	t.pageY = int((data>>4)&0x01) * 256
	t.depth = int((data >> 7) & 0x03)
}

// setCLUT decodes the CLUT attribute of a textured primitive.
func (t *texture) setCLUT(data uint32) {
	t.clutX = int(data&0x3f) * 16
	t.clutY = int((data >> 6) & 0x1ff)
}

// primitive is the drawing state shared by every fragment of a primitive.
type primitive struct {
	cfg *command.Config

	textured bool
	raw      bool
	semi     bool
	semiMode int
	dither   bool

	tex texture
}

func newPrimitive(r *Rasterizer, cmd *command.Command) primitive {
	p := primitive{
		cfg:      &cmd.Config,
		textured: command.Textured(cmd.Opcode) && !cmd.Config.TextureDisable,
		raw:      command.Raw(cmd.Opcode),
		semi:     command.SemiTransparent(cmd.Opcode),
		semiMode: cmd.Config.SemiMode,
		tex: texture{
			pageX: cmd.Config.TexPageX,
			pageY: cmd.Config.TexPageY,
			depth: cmd.Config.TextureDepth,
		},
	}

	// only shaded and modulated primitives are dithered
	if r.AllowDither && cmd.Config.Dither {
		p.dither = command.Gouraud(cmd.Opcode) || (p.textured && !p.raw)
	}

	return p
}

// texel returns the texel at the texture coordinates after the texture window
// has been applied.
func (r *Rasterizer) texel(p *primitive, u, v int) vram.Pixel {
	u &= 0xff
	v &= 0xff
	u = (u &^ (p.cfg.WindowMaskX * 8)) | ((p.cfg.WindowOffsetX & p.cfg.WindowMaskX) * 8)
	v = (v &^ (p.cfg.WindowMaskY * 8)) | ((p.cfg.WindowOffsetY & p.cfg.WindowMaskY) * 8)

	switch p.tex.depth {
	case depth4Bit:
		w := r.VRAM.Get(p.tex.pageX+u/4, p.tex.pageY+v)
		idx := int(w>>((u&3)*4)) & 0x0f
		return r.VRAM.Get(p.tex.clutX+idx, p.tex.clutY)
	case depth8Bit:
		w := r.VRAM.Get(p.tex.pageX+u/2, p.tex.pageY+v)
		idx := int(w>>((u&1)*8)) & 0xff
		return r.VRAM.Get(p.tex.clutX+idx, p.tex.clutY)
	}
	return r.VRAM.Get(p.tex.pageX+u, p.tex.pageY+v)
}

// modulate a 5 bit texture channel by an 8 bit colour channel. The result is
// an 8 bit channel. A colour of 0x80 leaves the texel unchanged.
func modulate(tex uint8, col int) int {
	return min(255, (int(tex)<<3)*col>>7)
}

func clamp8(v int) int {
	return max(0, min(255, v))
}

// fragment runs the pixel pipeline for a single pixel. Colour channels are 8
// bits. The texture coordinates are ignored for untextured primitives.
func (r *Rasterizer) fragment(p *primitive, x, y int, cr, cg, cb int, u, v int) {
	cfg := p.cfg
	if x < cfg.DrawLeft || x > cfg.DrawRight || y < cfg.DrawTop || y > cfg.DrawBottom {
		return
	}

	var mask bool
	semi := p.semi

	if p.textured {
		t := r.texel(p, u, v)

		// a texel value of zero is fully transparent
		if t == 0 {
			return
		}

		mask = t.Mask()
		semi = semi && mask

		if p.raw {
			cr = int(t.R()) << 3
			cg = int(t.G()) << 3
			cb = int(t.B()) << 3
		} else {
			cr = modulate(t.R(), cr)
			cg = modulate(t.G(), cg)
			cb = modulate(t.B(), cb)
		}
	}

	if p.dither {
		d := ditherTable[y&3][x&3]
		cr = clamp8(cr + d)
		cg = clamp8(cg + d)
		cb = clamp8(cb + d)
	}

	r.store(x, y, p, cr>>3, cg>>3, cb>>3, mask, semi)
}

// store a 5 bit colour with the semi-transparency and mask rules applied.
func (r *Rasterizer) store(x, y int, p *primitive, cr, cg, cb int, mask bool, semi bool) {
	bg := r.VRAM.Get(x, y)
	if p.cfg.CheckMask && bg.Mask() {
		return
	}

	if semi {
		cr = blend(p.semiMode, int(bg.R()), cr)
		cg = blend(p.semiMode, int(bg.G()), cg)
		cb = blend(p.semiMode, int(bg.B()), cb)
	}

	r.VRAM.Set(x, y, vram.NewPixel(uint8(cr), uint8(cg), uint8(cb), mask || p.cfg.SetMask))
}

// blend a 5 bit foreground channel with a 5 bit background channel.
func blend(mode int, b int, f int) int {
	switch mode {
	case semiAverage:
		return (b + f) >> 1
	case semiAdd:
		return min(31, b+f)
	case semiSubtract:
		return max(0, b-f)
	case semiAddQuarter:
		return min(31, b+f>>2)
	}
	return f
}
