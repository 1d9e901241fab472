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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Addresses can be virtual. They are reduced to physical addresses by the
// memory system.
type CPUBus interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
	Read32(address uint32) uint32
	Write8(address uint32, data uint8)
	Write16(address uint32, data uint16)
	Write32(address uint32, data uint32)
}

// RegisterBus is implemented by devices with 32-bit wide registers. The offset
// is from the origin of the device's area and is always word aligned.
//
// Sub-word accesses from the CPU are widened to a full register access by the
// memory system.
type RegisterBus interface {
	ReadRegister(offset uint32) uint32
	WriteRegister(offset uint32, data uint32)
}

// MaskedRegisterBus is implemented by a RegisterBus device that needs to know
// which bytes of a register were written by a sub-word access. The mask has
// the written byte lanes set.
type MaskedRegisterBus interface {
	WriteRegisterMasked(offset uint32, data uint32, mask uint32)
}

// PortBus is implemented by devices with 8-bit wide ports. The offset is from
// the origin of the device's area.
type PortBus interface {
	ReadPort(offset uint32) uint8
	WritePort(offset uint32, data uint8)
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. Peeking or poking a memory mapped register has no
// side effects on the device.
type DebuggerBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}
