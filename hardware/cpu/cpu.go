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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop2"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/icache"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

// Memory is the interconnect as seen by the CPU.
type Memory interface {
	bus.CPUBus

	// the value of the cache control register at 0xfffe0130
	CacheControl() uint32
}

// Interrupts is the external interrupt line of the CPU.
type Interrupts interface {
	Pending() bool
}

// cache control register bit that enables the instruction cache
const cacheControlICache = 0x800

// cycle costs
const (
	cyclesInstruction = 1
	cyclesRefill      = 4
	cyclesUncached    = 4
	cyclesLoad        = 1
)

// pendingLoad is the value of a load instruction waiting to be committed. a
// register value of zero means there is no pending load.
type pendingLoad struct {
	reg   int
	value uint32
}

// CPU implements the R3051.
type CPU struct {
	Cop0   *cop0.Cop0
	Cop2   cop2.Coprocessor
	ICache *icache.ICache

	mem Memory
	irq Interrupts

	// PC is the address of the next instruction to be fetched. nextPC is the
	// address of the instruction after that. branch instructions change
	// nextPC and so the instruction in the delay slot is executed before the
	// branch takes effect
	PC     uint32
	nextPC uint32

	// address of the instruction currently being executed
	currentPC uint32

	// the current instruction is a branch. the next instruction will be in
	// the delay slot
	branch bool

	// the current instruction is in a delay slot
	inDelaySlot bool

	regs    [32]uint32
	outRegs [32]uint32
	HI      uint32
	LO      uint32

	load pendingLoad

	// cycles consumed since the last call to Cycles()
	cycles int

	// total number of instructions executed since reset
	Instructions uint64

	// whether the instruction cache is emulated. if false every fetch goes to
	// the interconnect regardless of the cache control register
	UseICache bool

	// Trace is called before every instruction is executed
	Trace func(pc uint32, ins Instruction)
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory, irq Interrupts, gte cop2.Coprocessor) *CPU {
	mc := &CPU{
		Cop0:      cop0.NewCop0(),
		Cop2:      gte,
		mem:       mem,
		irq:       irq,
		UseICache: true,
	}
	mc.ICache = icache.NewICache(mc.Cop0)
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%08x HI=%08x LO=%08x %s", mc.PC, mc.HI, mc.LO, mc.Cop0)
}

// Reset the CPU. The PC is loaded with the reset vector.
func (mc *CPU) Reset() {
	mc.Cop0.Reset()
	mc.ICache.Reset()
	mc.PC = cop0.ResetVector
	mc.nextPC = mc.PC + 4
	mc.currentPC = mc.PC
	mc.branch = false
	mc.inDelaySlot = false
	mc.regs = [32]uint32{}
	mc.outRegs = [32]uint32{}
	mc.HI = 0
	mc.LO = 0
	mc.load = pendingLoad{}
	mc.cycles = 0
	mc.Instructions = 0
}

// Reg returns the value of a general purpose register.
func (mc *CPU) Reg(r int) uint32 {
	return mc.regs[r&0x1f]
}

// SetReg sets the value of a general purpose register. Writes to register zero
// are ignored. Should not be called during Step().
func (mc *CPU) SetReg(r int, v uint32) {
	r &= 0x1f
	if r == 0 {
		return
	}
	mc.regs[r] = v
	mc.outRegs[r] = v
}

// SetPC changes the program counter. The delay slot state is cleared.
func (mc *CPU) SetPC(pc uint32) {
	mc.PC = pc
	mc.nextPC = pc + 4
	mc.branch = false
}

// Cycles returns the number of cycles consumed since the previous call.
func (mc *CPU) Cycles() int {
	c := mc.cycles
	mc.cycles = 0
	return c
}

// Step executes a single instruction. Exceptions are handled by the
// coprocessor and never returned.
func (mc *CPU) Step() {
	mc.currentPC = mc.PC
	mc.inDelaySlot = mc.branch
	mc.branch = false
	mc.cycles += cyclesInstruction

	// commit the pending load. the instruction being executed may overwrite
	// the value
	mc.outRegs[mc.load.reg] = mc.load.value
	mc.load = pendingLoad{}
	defer mc.commit()

	if mc.irq != nil {
		mc.Cop0.SetInterruptPending(mc.irq.Pending())
	}
	if mc.Cop0.InterruptRequested() {
		mc.exception(cop0.Interrupt)
		return
	}

	if mc.currentPC&3 != 0 || !mc.Cop0.IsAddressAllowed(mc.currentPC) {
		mc.addressException(cop0.AddressErrorLoad, mc.currentPC)
		return
	}

	ins := Instruction(mc.fetch(mc.currentPC))

	mc.PC = mc.nextPC
	mc.nextPC += 4

	if mc.Trace != nil {
		mc.Trace(mc.currentPC, ins)
	}

	mc.execute(ins)
	mc.Instructions++
}

func (mc *CPU) commit() {
	mc.outRegs[0] = 0
	mc.regs = mc.outRegs
}

func (mc *CPU) iCacheActive() bool {
	return mc.UseICache && mc.mem.CacheControl()&cacheControlICache != 0
}

func (mc *CPU) fetch(va uint32) uint32 {
	pa, _ := cop0.Translate(va)

	if cop0.Cacheable(va) && mc.iCacheActive() {
		if mc.ICache.Hit(pa) {
			return mc.ICache.ReadWord(pa)
		}
		mc.ICache.Refill(pa, mc.mem)
		mc.cycles += cyclesRefill
		if mc.ICache.Hit(pa) {
			return mc.ICache.ReadWord(pa)
		}
	}

	mc.cycles += cyclesUncached
	return mc.mem.Read32(pa)
}

// the exception is raised for the current instruction
func (mc *CPU) exception(code cop0.Exception) {
	mc.jumpToVector(mc.Cop0.EnterException(code, mc.currentPC, mc.inDelaySlot))
}

func (mc *CPU) addressException(code cop0.Exception, address uint32) {
	mc.jumpToVector(mc.Cop0.EnterAddressException(code, mc.currentPC, mc.inDelaySlot, address))
}

func (mc *CPU) coprocessorException(n int) {
	mc.jumpToVector(mc.Cop0.EnterCoprocessorException(mc.currentPC, mc.inDelaySlot, n))
}

func (mc *CPU) jumpToVector(vector uint32) {
	mc.PC = vector
	mc.nextPC = vector + 4
	mc.branch = false
}

// set the output value of a register
func (mc *CPU) set(r int, v uint32) {
	mc.outRegs[r] = v
	mc.outRegs[0] = 0
}

// arm the pending load
func (mc *CPU) delayedLoad(r int, v uint32) {
	mc.load = pendingLoad{reg: r, value: v}
}

// checkAddress returns false and raises an address error exception if the
// address is misaligned or not accessible in the current mode
func (mc *CPU) checkAddress(address uint32, size uint32, code cop0.Exception) bool {
	if address&(size-1) != 0 || !mc.Cop0.IsAddressAllowed(address) {
		mc.addressException(code, address)
		return false
	}
	return true
}

// read from memory. isolated reads with the caches swapped return data from
// the instruction cache
func (mc *CPU) read(address uint32, size uint32) uint32 {
	mc.cycles += cyclesLoad

	if mc.Cop0.CacheIsolated() && mc.Cop0.CachesSwapped() {
		pa, _ := cop0.Translate(address)
		w := mc.ICache.ReadWord(pa)
		shift := (pa & 3) * 8
		switch size {
		case 1:
			return (w >> shift) & 0xff
		case 2:
			return (w >> shift) & 0xffff
		}
		return w
	}

	switch size {
	case 1:
		return uint32(mc.mem.Read8(address))
	case 2:
		return uint32(mc.mem.Read16(address))
	}
	return mc.mem.Read32(address)
}

// write to memory. writes while the data cache is isolated never reach the
// interconnect. they are sent to the instruction cache instead
func (mc *CPU) write(address uint32, size uint32, v uint32) {
	if mc.Cop0.CacheIsolated() {
		pa, _ := cop0.Translate(address)
		switch size {
		case 1:
			mc.ICache.WriteUint8(pa, uint8(v))
		case 2:
			mc.ICache.WriteUint8(pa, uint8(v))
			mc.ICache.WriteUint8(pa+1, uint8(v>>8))
		default:
			mc.ICache.WriteWord(pa, v)
		}
		return
	}

	switch size {
	case 1:
		mc.mem.Write8(address, uint8(v))
	case 2:
		mc.mem.Write16(address, uint16(v))
	default:
		mc.mem.Write32(address, v)
	}
}
