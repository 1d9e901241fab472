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

// upload copies the pixels in the transfer buffer to VRAM.
func (r *Rasterizer) upload(cmd command.Command) {
	x, y := command.TransferOrigin(cmd.Words[1])
	w, h := command.TransferSize(cmd.Words[2])

	r.transfer.BorrowPixels(func(pixels []vram.Pixel) {
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				r.put(x+i, y+j, pixels[j*w+i], &cmd.Config)
			}
		}
	})
}

// download copies an area of VRAM to the transfer buffer.
func (r *Rasterizer) download(cmd command.Command) {
	x, y := command.TransferOrigin(cmd.Words[1])
	w, h := command.TransferSize(cmd.Words[2])

	r.transfer.BorrowPixels(func(pixels []vram.Pixel) {
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				pixels[j*w+i] = r.VRAM.Get(x+i, y+j)
			}
		}
	})
}
