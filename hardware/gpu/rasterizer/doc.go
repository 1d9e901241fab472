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

// Package rasterizer is the software renderer of the GPU. It executes the
// commands taken from the work queue and is the only part of the emulation
// that reads or writes VRAM.
//
// Every primitive passes through the same pixel pipeline: the fragment is
// clipped to the drawing area, the source colour is sampled from the texture
// or the vertex colours, the texture is modulated by the command colour, the
// colour is dithered and reduced to 5 bits per channel, it is blended with the
// destination pixel if the primitive is semi-transparent, and finally the mask
// bit rules are applied before the pixel is stored.
//
// Once per frame the Display command copies the display area of VRAM into an
// image and hands it to the Presenter.
//
// With the exception of the Frames field and the Presenter, the rasterizer
// must only be used from a single goroutine. The ownership is checked when
// the program is built with the "assertions" tag.
package rasterizer
