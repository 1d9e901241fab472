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
	"io"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/logger"
)

// BIOSError is the pattern for errors returned by LoadBIOS().
const BIOSError = "bios: %v"

// Memory is the interconnect of the PSX. It is the implementation of the
// bus.CPUBus and bus.DebuggerBus interfaces.
type Memory struct {
	RAM        *RAM
	Scratchpad *RAM
	BIOS       *RAM

	Interrupts *interrupts.Controller

	// devices attached with Plumb(). a nil device reads as zero and ignores
	// writes
	dma    bus.RegisterBus
	gpu    bus.RegisterBus
	timers bus.RegisterBus
	cdrom  bus.PortBus

	// registers with no behaviour beyond storage
	memControl   [9]uint32
	ramSize      uint32
	cacheControl uint32
	peripheral   [8]uint32
	spu          [0x200]uint16
	expansion2   [0x80]uint8

	// guest TTY output. the BIOS writes characters to the DUART transmit
	// register in expansion region 2
	tty io.Writer
}

func (mem *Memory) String() string {
	return fmt.Sprintf("RAM=%dK SPAD=%dbytes %s CACHE=%08x", mem.RAM.Len()/1024, mem.Scratchpad.Len(), mem.Interrupts, mem.cacheControl)
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		RAM:        newRAM("RAM", memorymap.RAMLength),
		Scratchpad: newRAM("Scratchpad", 1024),
		BIOS:       newRAM("BIOS", memorymap.BIOSLength),
		Interrupts: &interrupts.Controller{},
	}
	mem.Reset()
	return mem
}

// Plumb the devices into the memory system.
func (mem *Memory) Plumb(dma bus.RegisterBus, gpu bus.RegisterBus, timers bus.RegisterBus, cdrom bus.PortBus) {
	mem.dma = dma
	mem.gpu = gpu
	mem.timers = timers
	mem.cdrom = cdrom
}

// SetTTY sets the io.Writer that receives guest TTY output. A nil writer
// discards the output.
func (mem *Memory) SetTTY(tty io.Writer) {
	mem.tty = tty
}

// Reset the contents of RAM and the state of the memory registers. The BIOS
// is not affected.
func (mem *Memory) Reset() {
	mem.RAM.Clear()
	mem.Scratchpad.Clear()
	mem.Interrupts.Reset()
	mem.memControl = [9]uint32{}
	mem.ramSize = 0x00000b88
	mem.cacheControl = 0
	mem.peripheral = [8]uint32{}
	mem.spu = [0x200]uint16{}
	mem.expansion2 = [0x80]uint8{}
}

// LoadBIOS copies the BIOS image into the BIOS ROM. The image must be exactly
// 512KB.
func (mem *Memory) LoadBIOS(data []uint8) error {
	if len(data) != memorymap.BIOSLength {
		return curated.Errorf(BIOSError, fmt.Sprintf("image is %d bytes. should be %d bytes", len(data), memorymap.BIOSLength))
	}
	mem.BIOS.Load(data)
	return nil
}

// CacheControl returns the value of the cache control register.
func (mem *Memory) CacheControl() uint32 {
	return mem.cacheControl
}

// Read8 implements the bus.CPUBus interface.
func (mem *Memory) Read8(address uint32) uint8 {
	return uint8(mem.read(address, 1))
}

// Read16 implements the bus.CPUBus interface.
func (mem *Memory) Read16(address uint32) uint16 {
	return uint16(mem.read(address&^1, 2))
}

// Read32 implements the bus.CPUBus interface.
func (mem *Memory) Read32(address uint32) uint32 {
	return mem.read(address&^3, 4)
}

// Write8 implements the bus.CPUBus interface.
func (mem *Memory) Write8(address uint32, data uint8) {
	mem.write(address, 1, uint32(data))
}

// Write16 implements the bus.CPUBus interface.
func (mem *Memory) Write16(address uint32, data uint16) {
	mem.write(address&^1, 2, uint32(data))
}

// Write32 implements the bus.CPUBus interface.
func (mem *Memory) Write32(address uint32, data uint32) {
	mem.write(address&^3, 4, data)
}

// sizeMask returns the mask for an access of size bytes.
func sizeMask(size uint32) uint32 {
	switch size {
	case 1:
		return 0xff
	case 2:
		return 0xffff
	}
	return 0xffffffff
}

// extract the sub-word at offset from a register value.
func extract(reg uint32, offset uint32, size uint32) uint32 {
	return (reg >> ((offset & 3) * 8)) & sizeMask(size)
}

// lane shifts data into the byte lane of the register indicated by offset.
func lane(data uint32, offset uint32, size uint32) uint32 {
	return (data & sizeMask(size)) << ((offset & 3) * 8)
}

func (mem *Memory) readRAM(ram *RAM, offset uint32, size uint32) uint32 {
	switch size {
	case 1:
		return uint32(ram.Read8(offset))
	case 2:
		return uint32(ram.Read16(offset))
	}
	return ram.Read32(offset)
}

func (mem *Memory) writeRAM(ram *RAM, offset uint32, size uint32, data uint32) {
	switch size {
	case 1:
		ram.Write8(offset, uint8(data))
	case 2:
		ram.Write16(offset, uint16(data))
	default:
		ram.Write32(offset, data)
	}
}

func (mem *Memory) read(address uint32, size uint32) uint32 {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.readRAM(mem.RAM, offset, size)

	case memorymap.BIOS:
		return mem.readRAM(mem.BIOS, offset, size)

	case memorymap.Scratchpad:
		return mem.readRAM(mem.Scratchpad, offset, size)

	case memorymap.Interrupts:
		return extract(mem.Interrupts.ReadRegister(offset&^3), offset, size)

	case memorymap.DMA:
		if mem.dma != nil {
			return extract(mem.dma.ReadRegister(offset&^3), offset, size)
		}

	case memorymap.GPU:
		if mem.gpu != nil {
			return extract(mem.gpu.ReadRegister(offset&^3), offset, size)
		}

	case memorymap.Timers:
		if mem.timers != nil {
			return extract(mem.timers.ReadRegister(offset&^3), offset, size)
		}

	case memorymap.CDROM:
		if mem.cdrom != nil {
			var v uint32
			for i := uint32(0); i < size; i++ {
				v |= uint32(mem.cdrom.ReadPort((offset+i)&3)) << (i * 8)
			}
			return v
		}

	case memorymap.CacheControl:
		return mem.cacheControl

	case memorymap.MemControl:
		return extract(mem.memControl[offset>>2], offset, size)

	case memorymap.RAMSize:
		return extract(mem.ramSize, offset, size)

	case memorymap.Peripheral:
		return mem.readPeripheral(offset, size)

	case memorymap.SPU:
		return mem.readSPU(offset, size)

	case memorymap.MDEC:
		// status register reports an empty FIFO
		if offset&^3 == 4 {
			return extract(0x80040000, offset, size)
		}
		return 0

	case memorymap.Expansion1:
		// nothing is connected to the expansion port
		return sizeMask(size)

	case memorymap.Expansion2:
		return mem.readExpansion2(offset, size)

	default:
		logger.Logf(logger.Allow, "interconnect", "unmapped read%d at %08x", size*8, address)
	}

	return 0
}

func (mem *Memory) write(address uint32, size uint32, data uint32) {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.writeRAM(mem.RAM, offset, size, data)

	case memorymap.Scratchpad:
		mem.writeRAM(mem.Scratchpad, offset, size, data)

	case memorymap.BIOS:
		logger.Logf(logger.Allow, "interconnect", "write to BIOS ROM at %08x", address)

	case memorymap.Interrupts:
		if size < 4 {
			mem.Interrupts.WriteRegisterMasked(offset&^3, lane(data, offset, size), lane(0xffffffff, offset, size))
			break
		}
		mem.Interrupts.WriteRegister(offset&^3, data)

	case memorymap.DMA:
		if mem.dma != nil {
			// the parts of the register not covered by the write keep their
			// current value
			if size < 4 {
				msk := lane(0xffffffff, offset, size)
				if m, ok := mem.dma.(bus.MaskedRegisterBus); ok {
					m.WriteRegisterMasked(offset&^3, lane(data, offset, size), msk)
					break
				}
				cur := mem.dma.ReadRegister(offset &^ 3)
				data = (cur &^ msk) | lane(data, offset, size)
			}
			mem.dma.WriteRegister(offset&^3, data)
		}

	case memorymap.GPU:
		if mem.gpu != nil {
			mem.gpu.WriteRegister(offset&^3, lane(data, offset, size))
		}

	case memorymap.Timers:
		if mem.timers != nil {
			mem.timers.WriteRegister(offset&^3, lane(data, offset, size))
		}

	case memorymap.CDROM:
		if mem.cdrom != nil {
			for i := uint32(0); i < size; i++ {
				mem.cdrom.WritePort((offset+i)&3, uint8(data>>(i*8)))
			}
		}

	case memorymap.CacheControl:
		mem.cacheControl = data

	case memorymap.MemControl:
		r := offset >> 2
		msk := lane(0xffffffff, offset, size)
		mem.memControl[r] = (mem.memControl[r] &^ msk) | lane(data, offset, size)

	case memorymap.RAMSize:
		mem.ramSize = data

	case memorymap.Peripheral:
		mem.peripheral[offset>>2] = data

	case memorymap.SPU:
		mem.writeSPU(offset, size, data)

	case memorymap.MDEC, memorymap.Expansion1:
		// ignored

	case memorymap.Expansion2:
		mem.writeExpansion2(offset, uint8(data))

	default:
		logger.Logf(logger.Allow, "interconnect", "unmapped write%d at %08x (%08x)", size*8, address, data)
	}
}

// peripheral register offsets
const (
	peripheralData   = 0x00
	peripheralStatus = 0x04
)

func (mem *Memory) readPeripheral(offset uint32, size uint32) uint32 {
	switch offset &^ 3 {
	case peripheralData:
		// no controller is connected so the data line floats high
		return sizeMask(size)
	case peripheralStatus:
		// TX ready and TX finished
		return extract(0x00000005, offset, size)
	}
	return extract(mem.peripheral[offset>>2], offset, size)
}

// SPU register offsets
const (
	spuControl = 0x1aa
	spuStatus  = 0x1ae
)

func (mem *Memory) readSPU(offset uint32, size uint32) uint32 {
	r := (offset & 0x3ff) >> 1

	// the low bits of the status register mirror the control register. the
	// BIOS waits for them to match after every write to the control register
	if offset&^1 == spuStatus {
		return uint32(mem.spu[spuControl>>1] & 0x3f)
	}

	if size == 4 && r+1 < uint32(len(mem.spu)) {
		return uint32(mem.spu[r]) | uint32(mem.spu[r+1])<<16
	}
	return extract(uint32(mem.spu[r]), offset&1, size)
}

func (mem *Memory) writeSPU(offset uint32, size uint32, data uint32) {
	r := (offset & 0x3ff) >> 1
	mem.spu[r] = uint16(data)
	if size == 4 && r+1 < uint32(len(mem.spu)) {
		mem.spu[r+1] = uint16(data >> 16)
	}
}

// expansion region 2 offsets
const (
	duartStatusA = 0x21
	duartTxA     = 0x23
	postStatus   = 0x41
)

func (mem *Memory) readExpansion2(offset uint32, size uint32) uint32 {
	if offset == duartStatusA {
		// transmitter ready and empty
		return 0x0c
	}
	if offset < uint32(len(mem.expansion2)) {
		return uint32(mem.expansion2[offset]) & sizeMask(size)
	}
	return 0
}

func (mem *Memory) writeExpansion2(offset uint32, data uint8) {
	if offset < uint32(len(mem.expansion2)) {
		mem.expansion2[offset] = data
	}

	switch offset {
	case duartTxA:
		if mem.tty != nil {
			mem.tty.Write([]byte{data})
		}
	case postStatus:
		logger.Logf(logger.Allow, "interconnect", "POST status %#02x", data)
	}
}
