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
	"image"
	"image/color"

	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/vram"
	"github.com/jetsetilly/gopherpsx/logger"
)

// display copies the display area of VRAM to the frame image and presents it.
func (r *Rasterizer) display(cmd command.Command) {
	cfg := &cmd.Config

	w := max(1, cfg.DisplayWidth)
	h := max(1, cfg.DisplayHeight)
	if r.frame == nil || r.frame.Rect.Dx() != w || r.frame.Rect.Dy() != h {
		r.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	for y := 0; y < h; y++ {
		row := r.VRAM.Row(cfg.DisplayY + y)
		for x := 0; x < w; x++ {
			var c color.RGBA
			switch {
			case cfg.DisplayDisabled:
				c = color.RGBA{A: 0xff}
			case cfg.Display24:
				c = rgb24(row, cfg.DisplayX, x)
			default:
				c = row[(cfg.DisplayX+x)&(vram.Width-1)].Color()
			}
			r.frame.SetRGBA(x, y, c)
		}
	}

	r.Frames.Add(1)

	if r.presenter == nil {
		return
	}
	if err := r.presenter.Present(r.frame); err != nil {
		logger.Log(logger.Allow, "rasterizer", err)
	}
}

// rgb24 returns the pixel at position x of a row of 24 bit pixels that start
// at VRAM column origin. each 24 bit pixel occupies one and a half VRAM
// pixels.
func rgb24(row []vram.Pixel, origin int, x int) color.RGBA {
	b := func(n int) uint8 {
		px := row[(origin+n/2)&(vram.Width-1)]
		if n&1 == 1 {
			return uint8(px >> 8)
		}
		return uint8(px)
	}
	n := x * 3
	return color.RGBA{R: b(n), G: b(n + 1), B: b(n + 2), A: 0xff}
}
