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
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// Peek implements the bus.DebuggerBus interface. Only RAM, the scratchpad and
// the BIOS can be peeked.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return mem.RAM.Read8(offset), nil
	case memorymap.Scratchpad:
		return mem.Scratchpad.Read8(offset), nil
	case memorymap.BIOS:
		return mem.BIOS.Read8(offset), nil
	}
	return 0, fmt.Errorf("memory: cannot peek %s at %08x", area, address)
}

// Poke implements the bus.DebuggerBus interface. Only RAM, the scratchpad and
// the BIOS can be poked.
func (mem *Memory) Poke(address uint32, value uint8) error {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.RAM.Write8(offset, value)
	case memorymap.Scratchpad:
		mem.Scratchpad.Write8(offset, value)
	case memorymap.BIOS:
		mem.BIOS.Write8(offset, value)
	default:
		return fmt.Errorf("memory: cannot poke %s at %08x", area, address)
	}
	return nil
}
