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

// Package hardware is the base package for the PSX emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The PSX type is the root of the emulation and contains references to
// everything in the console. The components are created and connected to each
// other by NewPSX(). The rasterizer runs in its own goroutine for the
// lifetime of the PSX instance and is stopped by End().
//
// The CPU runs in bursts. At the end of each burst the GPU, timers and CD-ROM
// are advanced by the number of cycles used by the CPU and the DMA controller.
// The length of a burst is set by the psx.sync preference.
package hardware
