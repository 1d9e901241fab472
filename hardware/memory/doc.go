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

// Package memory implements the interconnect. It owns main memory, the
// scratchpad and the BIOS ROM and routes every other access to the device
// that occupies the address.
//
//	                           ---- RAM
//	                          |---- Scratchpad
//	                          |---- BIOS
//	    CPU ---- cpu bus ---- * ---- register bus ---- DMA, GPU, Timers, Interrupts
//	                          |
//	                          |---- port bus ---- CD-ROM
//	                          |
//	                           ---- stubs (expansion, SPU, peripherals)
//
// The asterisk indicates that addresses used by the CPU are first reduced to
// physical addresses. The memorymap package contains more detail on this.
//
// All memory is little-endian. Register state is held by the devices in the
// canonical value the guest sees, so the only byte-order conversion in the
// emulator is in the RAM type of this package.
//
// Word and halfword accesses are aligned down to the enclosing word or
// halfword. Misaligned accesses from the CPU raise an exception before they
// reach the memory system so this only matters for DMA and debugging.
package memory
