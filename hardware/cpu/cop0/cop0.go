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

package cop0

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/logger"
)

// Register numbers with architected meaning.
const (
	BPC      = 3
	BDA      = 5
	JumpDest = 6
	DCIC     = 7
	BadVAddr = 8
	BDAM     = 9
	BPCM     = 11
	Status   = 12
	Cause    = 13
	EPC      = 14
	PRID     = 15
	Random   = 1
)

// Status register bits.
const (
	StatusIEc = 1 << 0
	StatusKUc = 1 << 1
	StatusIsC = 1 << 16
	StatusSwC = 1 << 17
	StatusBEV = 1 << 22
	StatusRE  = 1 << 25
	StatusCU0 = 1 << 28
)

// Cause register fields.
const (
	CauseBD         = 1 << 31
	CauseCE         = 3 << 28
	CauseIP         = 0xff << 8
	CauseExternalIP = 1 << 10
	CauseExcCode    = 0x1f << 2
)

// write masks. bits outside the mask keep their current value
const (
	statusWriteMask = 0xf24bff3f
	causeWriteMask  = 0x00000300
)

// PrIDValue is the constant value of the PRID register.
const PrIDValue = 0x00000002

// Cop0 is the system control coprocessor.
type Cop0 struct {
	regs [32]uint32

	// the coprocessor condition line, tested by the BC0F and BC0T
	// instructions
	Condition bool
}

// NewCop0 is the preferred method of initialisation for the Cop0 type.
func NewCop0() *Cop0 {
	cop := &Cop0{}
	cop.Reset()
	return cop
}

func (cop *Cop0) String() string {
	return fmt.Sprintf("SR=%08x CAUSE=%08x EPC=%08x BADV=%08x", cop.regs[Status], cop.regs[Cause], cop.regs[EPC], cop.regs[BadVAddr])
}

// Reset the coprocessor to its power-on state. The bootstrap vector is active
// after reset.
func (cop *Cop0) Reset() {
	cop.regs = [32]uint32{}
	cop.regs[PRID] = PrIDValue
	cop.regs[Random] = 63 << 8
	cop.regs[Status] = StatusBEV
	cop.Condition = false
}

// Read the value of a register.
func (cop *Cop0) Read(reg int) uint32 {
	return cop.regs[reg&0x1f]
}

// Write a value to a register. The status and cause registers are masked.
// Writes to the PRID register are ignored.
func (cop *Cop0) Write(reg int, value uint32) {
	reg &= 0x1f
	switch reg {
	case Status:
		cop.regs[Status] = (value & statusWriteMask) | (cop.regs[Status] &^ statusWriteMask)
	case Cause:
		cop.regs[Cause] = (value & causeWriteMask) | (cop.regs[Cause] &^ causeWriteMask)
	case PRID, Random:
		logger.Logf(logger.Allow, "cop0", "write to read-only register %d (%08x)", reg, value)
	default:
		cop.regs[reg] = value
	}
}

// SetInterruptPending sets or clears the external interrupt bit of the cause
// register.
func (cop *Cop0) SetInterruptPending(pending bool) {
	if pending {
		cop.regs[Cause] |= CauseExternalIP
	} else {
		cop.regs[Cause] &^= CauseExternalIP
	}
}

// InterruptRequested returns true if interrupts are enabled and a pending
// interrupt in the cause register is unmasked in the status register.
func (cop *Cop0) InterruptRequested() bool {
	sr := cop.regs[Status]
	return sr&StatusIEc != 0 && cop.regs[Cause]&sr&CauseIP != 0
}

// KernelMode returns true if the processor is in kernel mode.
func (cop *Cop0) KernelMode() bool {
	return cop.regs[Status]&StatusKUc == 0
}

// CacheIsolated returns true if the data cache is isolated from memory.
func (cop *Cop0) CacheIsolated() bool {
	return cop.regs[Status]&StatusIsC != 0
}

// CachesSwapped returns true if the instruction and data caches are swapped.
func (cop *Cop0) CachesSwapped() bool {
	return cop.regs[Status]&StatusSwC != 0
}

// ReverseEndian returns true if the reverse endian bit is set for user mode.
func (cop *Cop0) ReverseEndian() bool {
	return cop.regs[Status]&StatusRE != 0
}

// CoprocessorUsable returns true if the numbered coprocessor can be used.
// Coprocessor zero is always usable in kernel mode.
func (cop *Cop0) CoprocessorUsable(n int) bool {
	if n == 0 && cop.KernelMode() {
		return true
	}
	return cop.regs[Status]&(StatusCU0<<n) != 0
}

// IsAddressAllowed returns false if the virtual address is in a kernel segment
// and the processor is in user mode.
func (cop *Cop0) IsAddressAllowed(va uint32) bool {
	return va&0x80000000 == 0 || cop.KernelMode()
}

// ExceptionVector returns the address of the general exception handler. The
// BEV bit selects the handler in the BIOS ROM.
func (cop *Cop0) ExceptionVector() uint32 {
	if cop.regs[Status]&StatusBEV != 0 {
		return BootstrapVector
	}
	return GeneralVector
}

// EnterException updates the coprocessor state for an exception raised by the
// instruction at pc. If the instruction was in a branch delay slot then the
// branch instruction is recorded as the exception PC and the BD bit is set.
//
// The address of the exception handler is returned.
func (cop *Cop0) EnterException(code Exception, pc uint32, inDelaySlot bool) uint32 {
	// the six low bits of the status register are a three entry stack of
	// interrupt-enable/user-mode pairs. pushing a pair of zeroes disables
	// interrupts and enters kernel mode
	sr := cop.regs[Status]
	cop.regs[Status] = (sr &^ 0x3f) | ((sr << 2) & 0x3f)

	cause := cop.regs[Cause] &^ (CauseBD | CauseCE | CauseExcCode)
	cause |= uint32(code) << 2

	if inDelaySlot {
		cop.regs[EPC] = pc - 4
		cause |= CauseBD
	} else {
		cop.regs[EPC] = pc
	}

	cop.regs[Cause] = cause

	return cop.ExceptionVector()
}

// EnterAddressException is the same as EnterException() but also records the
// offending address in the BadVAddr register.
func (cop *Cop0) EnterAddressException(code Exception, pc uint32, inDelaySlot bool, badAddress uint32) uint32 {
	cop.regs[BadVAddr] = badAddress
	return cop.EnterException(code, pc, inDelaySlot)
}

// EnterCoprocessorException is the same as EnterException() for the
// coprocessor unusable exception. The number of the coprocessor is recorded in
// the CE field of the cause register.
func (cop *Cop0) EnterCoprocessorException(pc uint32, inDelaySlot bool, n int) uint32 {
	v := cop.EnterException(CoprocessorUnusable, pc, inDelaySlot)
	cop.regs[Cause] |= (uint32(n) & 3) << 28
	return v
}

// ReturnFromException pops the interrupt-enable/user-mode stack. The oldest
// pair is left unchanged.
func (cop *Cop0) ReturnFromException() {
	sr := cop.regs[Status]
	cop.regs[Status] = (sr &^ 0x0f) | ((sr & 0x3f) >> 2)
}
