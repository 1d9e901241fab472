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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents. It also names the areas of the physical address space
// and the address ranges they occupy.
//
// Virtual addresses are first reduced to physical addresses with MaskRegion().
// The KSEG0 and KSEG1 windows are mirrors of the first 512MB of the physical
// address space. KUSEG and KSEG2 are passed through unchanged.
//
// MapAddress() performs both steps and returns the offset of the address
// within the area it falls into.
package memorymap
