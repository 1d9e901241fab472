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

// Package interrupts implements the interrupt status and mask registers. The
// status register has one bit per interrupt source. A status bit set at the
// same time as its mask bit asserts the interrupt pin of the CPU.
package interrupts

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/logger"
)

// Source of an interrupt. The value is the bit number in the status and mask
// registers.
type Source int

// List of valid Source values.
const (
	VBlank Source = iota
	GPU
	CDROM
	DMA
	Timer0
	Timer1
	Timer2
	Peripheral
	SIO
	SPU
	Lightpen
)

const numSources = 11

// only the bits with a source can be set.
const sourceBits = (1 << numSources) - 1

func (src Source) String() string {
	switch src {
	case VBlank:
		return "VBlank"
	case GPU:
		return "GPU"
	case CDROM:
		return "CD-ROM"
	case DMA:
		return "DMA"
	case Timer0:
		return "Timer0"
	case Timer1:
		return "Timer1"
	case Timer2:
		return "Timer2"
	case Peripheral:
		return "Peripheral"
	case SIO:
		return "SIO"
	case SPU:
		return "SPU"
	case Lightpen:
		return "Lightpen"
	}
	return fmt.Sprintf("IRQ%d", int(src))
}

// Register offsets from the origin of the interrupts area.
const (
	StatusRegister = 0x0
	MaskRegister   = 0x4
)

// Controller holds the interrupt status and mask registers.
type Controller struct {
	status uint32
	mask   uint32
}

func (ic *Controller) String() string {
	return fmt.Sprintf("I_STAT=%04x I_MASK=%04x", ic.status, ic.mask)
}

// Reset clears both registers.
func (ic *Controller) Reset() {
	ic.status = 0
	ic.mask = 0
}

// Raise sets the status bit for the interrupt source.
func (ic *Controller) Raise(src Source) {
	if src < 0 || src >= numSources {
		logger.Logf(logger.Allow, "interrupts", "raise of unknown source (%d)", int(src))
		return
	}
	ic.status |= 1 << src
}

// SetInterruptNumber latches an interrupt by bit number. It is the upcall used
// by peripherals that know their interrupt line only by number.
func (ic *Controller) SetInterruptNumber(n int) {
	ic.Raise(Source(n))
}

// Pending returns true if any unmasked interrupt is raised.
func (ic *Controller) Pending() bool {
	return ic.status&ic.mask != 0
}

// Status returns the value of the status register.
func (ic *Controller) Status() uint32 {
	return ic.status
}

// Mask returns the value of the mask register.
func (ic *Controller) Mask() uint32 {
	return ic.mask
}

// ReadRegister implements the bus.RegisterBus interface.
func (ic *Controller) ReadRegister(offset uint32) uint32 {
	switch offset {
	case StatusRegister:
		return ic.status
	case MaskRegister:
		return ic.mask
	}
	return 0
}

// WriteRegister implements the bus.RegisterBus interface. Writes to the status
// register are ANDed with the current value so that a status bit is
// acknowledged by writing a zero to it.
func (ic *Controller) WriteRegister(offset uint32, data uint32) {
	switch offset {
	case StatusRegister:
		ic.status &= data
	case MaskRegister:
		ic.mask = data & sourceBits
	}
}

// WriteRegisterMasked implements the bus.MaskedRegisterBus interface. Only the
// byte lanes set in the mask are written. Status bits outside the mask are
// not acknowledged.
func (ic *Controller) WriteRegisterMasked(offset uint32, data uint32, mask uint32) {
	switch offset {
	case StatusRegister:
		ic.status &= data | ^mask
	case MaskRegister:
		ic.mask = ((ic.mask &^ mask) | (data & mask)) & sourceBits
	}
}
