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

package memorymap

// Area represents the different areas of the physical address space.
type Area int

// List of valid Area values.
const (
	Undefined Area = iota
	RAM
	Expansion1
	Scratchpad
	MemControl
	Peripheral
	RAMSize
	Interrupts
	DMA
	Timers
	CDROM
	GPU
	MDEC
	SPU
	Expansion2
	BIOS
	CacheControl
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Expansion1:
		return "Expansion 1"
	case Scratchpad:
		return "Scratchpad"
	case MemControl:
		return "Memory Control"
	case Peripheral:
		return "Peripheral"
	case RAMSize:
		return "RAM Size"
	case Interrupts:
		return "Interrupts"
	case DMA:
		return "DMA"
	case Timers:
		return "Timers"
	case CDROM:
		return "CD-ROM"
	case GPU:
		return "GPU"
	case MDEC:
		return "MDEC"
	case SPU:
		return "SPU"
	case Expansion2:
		return "Expansion 2"
	case BIOS:
		return "BIOS"
	case CacheControl:
		return "Cache Control"
	}
	return "undefined"
}

// Range of physical addresses occupied by an area.
type Range struct {
	Area   Area
	Origin uint32
	Length uint32
}

// Contains returns the offset of address from the origin of the range and
// true if the address is in the range.
func (r Range) Contains(address uint32) (uint32, bool) {
	if address >= r.Origin && address-r.Origin < r.Length {
		return address - r.Origin, true
	}
	return 0, false
}

// Memtop returns the highest address in the range.
func (r Range) Memtop() uint32 {
	return r.Origin + r.Length - 1
}

// RAM is 2MB in size but occupies an 8MB window. The window is made of
// mirrors of the real RAM.
const (
	RAMLength  = 0x200000
	RAMMask    = RAMLength - 1
	BIOSLength = 512 * 1024
)

// Ranges of every area in the physical address space, in ascending order of
// origin.
var Ranges = []Range{
	{Area: RAM, Origin: 0x00000000, Length: 0x800000},
	{Area: Expansion1, Origin: 0x1f000000, Length: 0x800000},
	{Area: Scratchpad, Origin: 0x1f800000, Length: 0x400},
	{Area: MemControl, Origin: 0x1f801000, Length: 0x24},
	{Area: Peripheral, Origin: 0x1f801040, Length: 0x20},
	{Area: RAMSize, Origin: 0x1f801060, Length: 0x4},
	{Area: Interrupts, Origin: 0x1f801070, Length: 0x8},
	{Area: DMA, Origin: 0x1f801080, Length: 0x80},
	{Area: Timers, Origin: 0x1f801100, Length: 0x30},
	{Area: CDROM, Origin: 0x1f801800, Length: 0x4},
	{Area: GPU, Origin: 0x1f801810, Length: 0x8},
	{Area: MDEC, Origin: 0x1f801820, Length: 0x8},
	{Area: SPU, Origin: 0x1f801c00, Length: 0x400},
	{Area: Expansion2, Origin: 0x1f802000, Length: 0x2000},
	{Area: BIOS, Origin: 0x1fc00000, Length: BIOSLength},
	{Area: CacheControl, Origin: 0xfffe0130, Length: 0x4},
}

// regionMask is indexed by the top three bits of a virtual address.
var regionMask = [8]uint32{
	// KUSEG: 2048MB
	0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	// KSEG0: 512MB
	0x7fffffff,
	// KSEG1: 512MB
	0x1fffffff,
	// KSEG2: 1024MB
	0xffffffff, 0xffffffff,
}

// MaskRegion reduces a virtual address to a physical address.
func MaskRegion(address uint32) uint32 {
	return address & regionMask[address>>29]
}

// MapAddress translates the address argument to the area it occupies and the
// offset within that area. RAM offsets are reduced modulo the size of the RAM.
//
// Addresses that fall into no area return the Undefined area.
func MapAddress(address uint32) (uint32, Area) {
	address = MaskRegion(address)

	// the vast majority of accesses are to RAM
	if address < Ranges[0].Length {
		return address & RAMMask, RAM
	}

	for _, r := range Ranges[1:] {
		if o, ok := r.Contains(address); ok {
			return o, r.Area
		}
	}

	return address, Undefined
}
