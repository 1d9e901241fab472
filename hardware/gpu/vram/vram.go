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
	"sync"
)

// Dimensions of VRAM in pixels.
const (
	Width  = 1024
	Height = 512
)

// VRAM is the video memory of the GPU.
type VRAM struct {
	pixels [Width * Height]Pixel
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM() *VRAM {
	return &VRAM{}
}

// Clear sets every pixel to zero.
func (v *VRAM) Clear() {
	clear(v.pixels[:])
}

// Get returns the pixel at the coordinates. Coordinates wrap at the edges of
// VRAM.
func (v *VRAM) Get(x, y int) Pixel {
	return v.pixels[(y&(Height-1))*Width+(x&(Width-1))]
}

// Set the pixel at the coordinates. Coordinates wrap at the edges of VRAM.
func (v *VRAM) Set(x, y int, p Pixel) {
	v.pixels[(y&(Height-1))*Width+(x&(Width-1))] = p
}

// Row returns the pixels in a row of VRAM.
func (v *VRAM) Row(y int) []Pixel {
	y &= Height - 1
	return v.pixels[y*Width : (y+1)*Width]
}

// Transfer is the buffer for block transfers between the CPU and VRAM. Pixels
// are stored in the order they are transferred, row by row.
type Transfer struct {
	crit   sync.Mutex
	pixels []Pixel
}

// NewTransfer is the preferred method of initialisation for the Transfer type.
func NewTransfer() *Transfer {
	return &Transfer{
		pixels: make([]Pixel, Width*Height),
	}
}

// Len returns the capacity of the buffer in pixels.
func (t *Transfer) Len() int {
	return len(t.pixels)
}

// StoreWord stores two pixels at the index. The pixel in the low half of the
// word is stored first. Pixels beyond the end of the buffer are dropped.
func (t *Transfer) StoreWord(index int, data uint32) {
	t.crit.Lock()
	defer t.crit.Unlock()
	if index >= 0 && index < len(t.pixels) {
		t.pixels[index] = Pixel(data)
	}
	if index+1 >= 0 && index+1 < len(t.pixels) {
		t.pixels[index+1] = Pixel(data >> 16)
	}
}

// LoadWord returns two pixels from the index packed into a word. The pixel at
// the index is in the low half of the word.
func (t *Transfer) LoadWord(index int) uint32 {
	t.crit.Lock()
	defer t.crit.Unlock()
	var v uint32
	if index >= 0 && index < len(t.pixels) {
		v = uint32(t.pixels[index])
	}
	if index+1 >= 0 && index+1 < len(t.pixels) {
		v |= uint32(t.pixels[index+1]) << 16
	}
	return v
}

// BorrowPixels gives the function exclusive access to the buffer.
func (t *Transfer) BorrowPixels(f func(pixels []Pixel)) {
	t.crit.Lock()
	defer t.crit.Unlock()
	f(t.pixels)
}
