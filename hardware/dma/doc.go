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

// Package dma implements the DMA controller of the PSX. There are seven
// channels, each with a base address, block control and channel control
// register. The DPCR register sets the priority of each channel and the DICR
// register controls the DMA interrupt.
//
// Transfers are started by writes to the registers. The controller evaluates
// the start condition of every channel after every register write and runs the
// transfer of the winning channel to completion before evaluating again. The
// CPU is stalled for the duration of the transfer so there is no need to model
// the chopping windows.
//
// Register values are stored as the guest sees them. The memory package is
// responsible for presenting the registers as little-endian words to the CPU.
package dma
