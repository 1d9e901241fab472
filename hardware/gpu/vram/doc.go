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

// Package vram defines the video memory of the PSX GPU and the pixel format
// stored in it. VRAM is 1024 by 512 pixels of 16 bits. Each pixel is a 15 bit
// RGB colour (5 bits per channel) and a mask bit.
//
// The Transfer type is the buffer used to move blocks of pixels between the
// CPU and VRAM. It is shared between the GPU front-end and the rasterizer and
// is protected by its own mutex.
package vram
