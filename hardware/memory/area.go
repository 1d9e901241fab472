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

package memory

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// RAM is a contiguous area of byte addressed memory. The main memory, the
// scratchpad and the BIOS are all instances of RAM.
type RAM struct {
	label string
	data  []uint8
	mask  uint32
}

// newRAM allocates a new area of memory. The size must be a power of two.
func newRAM(label string, size int) *RAM {
	return &RAM{
		label: label,
		data:  make([]uint8, size),
		mask:  uint32(size - 1),
	}
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%d bytes)\n", ram.label, len(ram.data)))
	s.WriteString("          -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	for y := 0; y < 4 && y*16 < len(ram.data); y++ {
		s.WriteString(fmt.Sprintf("%08x |", y*16))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.data[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Label returns the name of the memory area.
func (ram *RAM) Label() string {
	return ram.label
}

// Len returns the size of the memory area.
func (ram *RAM) Len() int {
	return len(ram.data)
}

// Clear all bytes in the memory area.
func (ram *RAM) Clear() {
	clear(ram.data)
}

// Read8 returns the byte at offset. The offset wraps at the size of the area.
func (ram *RAM) Read8(offset uint32) uint8 {
	return ram.data[offset&ram.mask]
}

// Read16 returns the little-endian halfword at offset.
func (ram *RAM) Read16(offset uint32) uint16 {
	offset &= ram.mask &^ 1
	return binary.LittleEndian.Uint16(ram.data[offset:])
}

// Read32 returns the little-endian word at offset.
func (ram *RAM) Read32(offset uint32) uint32 {
	offset &= ram.mask &^ 3
	return binary.LittleEndian.Uint32(ram.data[offset:])
}

// Write8 stores the byte at offset.
func (ram *RAM) Write8(offset uint32, data uint8) {
	ram.data[offset&ram.mask] = data
}

// Write16 stores the halfword at offset in little-endian order.
func (ram *RAM) Write16(offset uint32, data uint16) {
	offset &= ram.mask &^ 1
	binary.LittleEndian.PutUint16(ram.data[offset:], data)
}

// Write32 stores the word at offset in little-endian order.
func (ram *RAM) Write32(offset uint32, data uint32) {
	offset &= ram.mask &^ 3
	binary.LittleEndian.PutUint32(ram.data[offset:], data)
}

// ReadBlock copies len(p) bytes starting at offset into p. The copy wraps at
// the end of the area.
func (ram *RAM) ReadBlock(offset uint32, p []uint8) {
	offset &= ram.mask
	for len(p) > 0 {
		n := copy(p, ram.data[offset:])
		p = p[n:]
		offset = 0
	}
}

// WriteBlock copies p into the area starting at offset. The copy wraps at the
// end of the area.
func (ram *RAM) WriteBlock(offset uint32, p []uint8) {
	offset &= ram.mask
	for len(p) > 0 {
		n := copy(ram.data[offset:], p)
		p = p[n:]
		offset = 0
	}
}

// Load copies data into the area from offset zero. Data longer than the area
// is truncated.
func (ram *RAM) Load(data []uint8) {
	copy(ram.data, data)
}

// Data returns the underlying slice.
func (ram *RAM) Data() []uint8 {
	return ram.data
}
