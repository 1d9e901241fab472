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

package icache

import (
	"encoding/binary"
	"fmt"
)

// Size values for the cache geometry.
const (
	LineSize = 16
	NumLines = 256
	Size     = LineSize * NumLines
)

// Isolation reports whether the data cache is isolated. It is implemented by
// the cop0 type.
type Isolation interface {
	CacheIsolated() bool
}

// Memory is the interface to the interconnect required to refill a line.
type Memory interface {
	Read32(address uint32) uint32
}

// ICache is the instruction cache.
type ICache struct {
	cop Isolation

	data  [Size]uint8
	tag   [NumLines]uint32
	valid [NumLines]bool
}

// NewICache is the preferred method of initialisation for the ICache type.
func NewICache(cop Isolation) *ICache {
	return &ICache{cop: cop}
}

func (ic *ICache) String() string {
	n := 0
	for _, v := range ic.valid {
		if v {
			n++
		}
	}
	return fmt.Sprintf("%d/%d lines valid", n, NumLines)
}

func index(address uint32) uint32 {
	return (address >> 4) & 0xff
}

func tag(address uint32) uint32 {
	return (address >> 12) & 0xfffff
}

// Reset invalidates every line in the cache. The data is not cleared.
func (ic *ICache) Reset() {
	clear(ic.valid[:])
	clear(ic.tag[:])
}

// Hit returns true if the line containing the physical address is valid and
// the tag matches.
func (ic *ICache) Hit(address uint32) bool {
	i := index(address)
	return ic.valid[i] && ic.tag[i] == tag(address)
}

// ReadWord returns the word at the physical address. The result is only
// meaningful after a successful Hit().
func (ic *ICache) ReadWord(address uint32) uint32 {
	a := address & 0xffc
	return binary.LittleEndian.Uint32(ic.data[a : a+4])
}

// WriteWord stores the value in the cache line. If the data cache is isolated
// the line tag is updated and the line is marked invalid.
func (ic *ICache) WriteWord(address uint32, value uint32) {
	a := address & 0xffc
	binary.LittleEndian.PutUint32(ic.data[a:a+4], value)
	ic.invalidate(address)
}

// WriteUint8 stores the value in the cache line. If the data cache is isolated
// the line tag is updated and the line is marked invalid.
func (ic *ICache) WriteUint8(address uint32, value uint8) {
	ic.data[address&0xfff] = value
	ic.invalidate(address)
}

func (ic *ICache) invalidate(address uint32) {
	if !ic.cop.CacheIsolated() {
		return
	}
	i := index(address)
	ic.tag[i] = tag(address)
	ic.valid[i] = false
}

// Refill the line containing the physical address from the interconnect. Does
// nothing if the data cache is isolated.
func (ic *ICache) Refill(address uint32, mem Memory) {
	if ic.cop.CacheIsolated() {
		return
	}

	i := index(address)
	ic.tag[i] = tag(address)
	ic.valid[i] = true

	base := address &^ (LineSize - 1)
	line := ic.data[i*LineSize : (i+1)*LineSize]
	for w := uint32(0); w < LineSize; w += 4 {
		binary.LittleEndian.PutUint32(line[w:w+4], mem.Read32(base+w))
	}
}
