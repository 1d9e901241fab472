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

// Package gpu is the front-end of the graphics processor. It receives GP0 and
// GP1 words from the CPU and from DMA, collects the words of each GP0 command
// and submits complete commands to the work queue. The commands are executed
// by the rasterizer in another goroutine.
//
// Commands that change the drawing state (GP0 E1 to E6) and all GP1 commands
// are handled by the front-end immediately. Every submitted command carries a
// copy of the drawing state at the moment of submission so the rasterizer
// never reads the live state of the front-end.
//
// Transfers between the CPU and VRAM use the vram.Transfer buffer. Words
// written to GP0 during an upload are packed into the buffer and a single
// command is submitted when the upload is complete. A download is submitted
// with a request to wait for completion so that the buffer is filled before
// the first GPUREAD.
//
// The front-end also keeps the video timing. AppendSyncCycles() is called by
// the scheduler with the number of CPU cycles executed. The VBlank interrupt is
// raised, and the frame presented, once per frame.
package gpu
