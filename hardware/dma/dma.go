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

package dma

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/logger"
)

// Memory is the main RAM as seen by the DMA controller. Addresses are offsets
// into RAM.
type Memory interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, data uint32)
	WriteBlock(offset uint32, p []uint8)
}

// GPUPort is the GPU as seen by the GPU channel.
type GPUPort interface {
	WriteGP0(data uint32)
	ReadGPU() uint32
}

// CDROMPort is the data FIFO of the CD-ROM controller.
type CDROMPort interface {
	ReadData(p []uint8)
}

// InterruptRaiser is the interrupt controller.
type InterruptRaiser interface {
	Raise(src interrupts.Source)
}

// register offsets of the global registers.
const (
	offsetDPCR = 0x70
	offsetDICR = 0x74
)

// DPCRReset is the value of the DPCR register after reset.
const DPCRReset = 0x07654321

// DICR register fields.
const (
	dicrUnknown   = 0x0000003f
	dicrForce     = 1 << 15
	dicrEnable    = 0x7f << 16
	dicrMaster    = 1 << 23
	dicrFlags     = 0x7f << 24
	dicrMasterIRQ = 1 << 31
)

// addresses in RAM are word aligned and wrap at 2MB.
const addressMask = 0x001ffffc

// DMA is the DMA controller.
type DMA struct {
	mem   Memory
	gpu   GPUPort
	cdrom CDROMPort
	irq   InterruptRaiser

	channels [NumChannels]registers
	dpcr     uint32
	dicr     uint32

	// the number of words transferred since the last call to Cycles()
	cycles int

	// scratch buffer for CD-ROM transfers
	buffer []uint8
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA(mem Memory, gpu GPUPort, cdrom CDROMPort, irq InterruptRaiser) *DMA {
	dma := &DMA{
		mem:   mem,
		gpu:   gpu,
		cdrom: cdrom,
		irq:   irq,
	}
	dma.Reset()
	return dma
}

func (dma *DMA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("DPCR=%08x DICR=%08x", dma.dpcr, dma.ReadRegister(offsetDICR)))
	for ch := range dma.channels {
		r := dma.channels[ch]
		if r.control&controlBusy == controlBusy {
			s.WriteString(fmt.Sprintf(" %s(%s)", Channel(ch), r.sync()))
		}
	}
	return s.String()
}

// Reset all registers.
func (dma *DMA) Reset() {
	dma.channels = [NumChannels]registers{}
	dma.channels[OTC].control = controlBackward
	dma.dpcr = DPCRReset
	dma.dicr = 0
	dma.cycles = 0
}

// Cycles returns the number of cycles used by transfers since the previous
// call.
func (dma *DMA) Cycles() int {
	c := dma.cycles
	dma.cycles = 0
	return c
}

// Priority returns the priority of the channel from the DPCR register. A lower
// value is a higher priority.
func (dma *DMA) Priority(ch Channel) int {
	return int(dma.dpcr>>(uint(ch)*4)) & 7
}

// the master interrupt flag is computed from the other DICR fields
func (dma *DMA) masterFlag() bool {
	if dma.dicr&dicrForce == dicrForce {
		return true
	}
	if dma.dicr&dicrMaster == 0 {
		return false
	}
	return (dma.dicr>>16)&(dma.dicr>>24)&0x7f != 0
}

// ReadRegister implements the bus.RegisterBus interface.
func (dma *DMA) ReadRegister(offset uint32) uint32 {
	ch := offset >> 4
	if ch < uint32(NumChannels) {
		r := dma.channels[ch]
		switch (offset >> 2) & 3 {
		case 0:
			return r.base
		case 1:
			return r.block
		case 2:
			return r.control
		}
		// the fourth register of each channel mirrors the control register
		return r.control
	}

	switch offset {
	case offsetDPCR:
		return dma.dpcr
	case offsetDICR:
		v := dma.dicr
		if dma.masterFlag() {
			v |= dicrMasterIRQ
		}
		return v
	case 0x78:
		return 0x7ffac68b
	case 0x7c:
		return 0x00fffff7
	}

	return 0
}

// WriteRegister implements the bus.RegisterBus interface.
func (dma *DMA) WriteRegister(offset uint32, data uint32) {
	dma.write(offset, data, data&dicrFlags)
}

// WriteRegisterMasked implements the bus.MaskedRegisterBus interface. Only the
// DICR flags in the written byte lanes are acknowledged.
func (dma *DMA) WriteRegisterMasked(offset uint32, data uint32, mask uint32) {
	cur := dma.ReadRegister(offset)
	if offset == offsetDICR {
		cur &^= dicrFlags | dicrMasterIRQ
	}
	dma.write(offset, (cur&^mask)|(data&mask), data&mask&dicrFlags)
}

func (dma *DMA) write(offset uint32, data uint32, ack uint32) {
	ch := offset >> 4
	if ch < uint32(NumChannels) {
		r := &dma.channels[ch]
		switch (offset >> 2) & 3 {
		case 0:
			r.base = data & 0x00ffffff
		case 1:
			r.block = data
		case 2, 3:
			if Channel(ch) == OTC {
				r.control = (data & controlMaskOTC) | controlBackward
			} else {
				r.control = data & controlMask
			}
		}
		dma.evaluate()
		return
	}

	switch offset {
	case offsetDPCR:
		dma.dpcr = data
		dma.evaluate()
	case offsetDICR:
		before := dma.masterFlag()
		flags := (dma.dicr & dicrFlags) &^ ack
		dma.dicr = (data & (dicrUnknown | dicrForce | dicrEnable | dicrMaster)) | flags
		if !before && dma.masterFlag() {
			dma.irq.Raise(interrupts.DMA)
		}
	default:
		logger.Logf(logger.Allow, "dma", "write to unused register %02x (%08x)", offset, data)
	}
}

// evaluate the start condition of every channel and run the transfer of the
// channel with the highest priority. repeat until no channel is active.
func (dma *DMA) evaluate() {
	for {
		winner := Channel(-1)
		for ch := MDECin; ch < NumChannels; ch++ {
			if !dma.channels[ch].active() {
				continue
			}
			if winner == -1 || dma.Priority(ch) < dma.Priority(winner) {
				winner = ch
			}
		}

		if winner == -1 {
			return
		}

		dma.transfer(winner)
		dma.complete(winner)
	}
}

// complete clears the start bits of the channel and updates the interrupt
// register.
func (dma *DMA) complete(ch Channel) {
	r := &dma.channels[ch]
	r.control &^= controlTrigger
	r.control &^= controlBusy

	before := dma.masterFlag()
	if dma.dicr&dicrMaster == dicrMaster && dma.dicr&(1<<(16+uint(ch))) != 0 {
		dma.dicr |= 1 << (24 + uint(ch))
	}
	if !before && dma.masterFlag() {
		dma.irq.Raise(interrupts.DMA)
	}
}
