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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop2"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestResetVector(t *testing.T) {
	mem := memory.NewMemory()
	mc := cpu.NewCPU(mem, mem.Interrupts, cop2.NewGTE())
	test.ExpectEquality(t, mc.PC, uint32(0xbfc00000))

	// the BIOS is empty so the first instruction is a NOP
	mc.Step()
	test.ExpectEquality(t, mc.PC, uint32(0xbfc00004))
	test.ExpectEquality(t, mc.Instructions, uint64(1))
	test.ExpectInequality(t, mc.Cycles(), 0)
	test.ExpectEquality(t, mc.Cycles(), 0)
}

func TestLoadDelay(t *testing.T) {
	mc, mem := newTestCPU(
		lw(2, 0, 0),
		add(3, 2, 0),
		nop,
		add(4, 2, 0),
	)
	mem.Write32(0x00000000, 0xdeadbeef)
	mc.SetReg(2, 5)

	mc.Step()
	test.ExpectEquality(t, mc.Reg(2), uint32(5))

	// the instruction in the load delay slot sees the old value
	mc.Step()
	test.ExpectEquality(t, mc.Reg(3), uint32(5))
	test.ExpectEquality(t, mc.Reg(2), uint32(0xdeadbeef))

	steps(mc, 2)
	test.ExpectEquality(t, mc.Reg(3), uint32(5))
	test.ExpectEquality(t, mc.Reg(4), uint32(0xdeadbeef))
}

func TestLoadSuperseded(t *testing.T) {
	mc, mem := newTestCPU(
		lw(2, 0, 0),
		addiu(2, 0, 7),
		nop,
	)
	mem.Write32(0x00000000, 0xdeadbeef)

	steps(mc, 3)
	test.ExpectEquality(t, mc.Reg(2), uint32(7))
}

func TestRegisterZero(t *testing.T) {
	mc, mem := newTestCPU(
		addiu(0, 0, 1),
		lw(0, 0, 0),
		nop,
	)
	mem.Write32(0x00000000, 0xdeadbeef)

	steps(mc, 3)
	test.ExpectEquality(t, mc.Reg(0), uint32(0))
}

func TestBranchDelay(t *testing.T) {
	mc, _ := newTestCPU(
		beq(0, 0, 2),
		addiu(1, 0, 1),
		addiu(1, 0, 2),
		addiu(2, 0, 3),
	)

	steps(mc, 3)
	test.ExpectEquality(t, mc.Reg(1), uint32(1))
	test.ExpectEquality(t, mc.Reg(2), uint32(3))
	test.ExpectEquality(t, mc.PC, uint32(origin+16))
}

func TestDivision(t *testing.T) {
	cases := []struct {
		signed bool
		n, d   uint32
		hi, lo uint32
	}{
		{signed: true, n: 7, d: 2, hi: 1, lo: 3},
		{signed: true, n: 0xfffffff9, d: 2, hi: 0xffffffff, lo: 0xfffffffd},
		{signed: true, n: 7, d: 0, hi: 7, lo: 0xffffffff},
		{signed: true, n: 0xfffffff9, d: 0, hi: 0xfffffff9, lo: 1},
		{signed: true, n: 0x80000000, d: 0xffffffff, hi: 0, lo: 0x80000000},
		{signed: false, n: 7, d: 0, hi: 7, lo: 0xffffffff},
		{signed: false, n: 0xfffffff9, d: 2, hi: 1, lo: 0x7ffffffc},
	}

	for i, c := range cases {
		op := divu(1, 2)
		if c.signed {
			op = div(1, 2)
		}
		mc, _ := newTestCPU(op, mflo(3), mfhi(4))
		mc.SetReg(1, c.n)
		mc.SetReg(2, c.d)
		steps(mc, 3)
		test.ExpectEquality(t, mc.Reg(3), c.lo, i, "lo")
		test.ExpectEquality(t, mc.Reg(4), c.hi, i, "hi")
	}
}

func TestOverflow(t *testing.T) {
	mc, _ := newTestCPU(addi(2, 1, 1))
	mc.Cop0.Write(cop0.Status, 0)
	mc.SetReg(1, 0x7fffffff)
	mc.SetReg(2, 0x1234)

	mc.Step()
	test.ExpectEquality(t, mc.PC, uint32(cop0.GeneralVector))
	test.ExpectEquality(t, mc.Reg(2), uint32(0x1234))
	test.ExpectEquality(t, mc.Cop0.Read(cop0.EPC), uint32(origin))
	test.ExpectEquality(t, (mc.Cop0.Read(cop0.Cause)>>2)&0x1f, uint32(cop0.Overflow))
}

func TestExceptionInDelaySlot(t *testing.T) {
	mc, _ := newTestCPU(
		beq(0, 0, 4),
		syscall,
	)

	steps(mc, 2)
	test.ExpectEquality(t, mc.PC, uint32(cop0.BootstrapVector))
	test.ExpectEquality(t, mc.Cop0.Read(cop0.EPC), uint32(origin))
	test.ExpectEquality(t, mc.Cop0.Read(cop0.Cause)&cop0.CauseBD, uint32(cop0.CauseBD))
	test.ExpectEquality(t, (mc.Cop0.Read(cop0.Cause)>>2)&0x1f, uint32(cop0.Syscall))
}

func TestAddressError(t *testing.T) {
	mc, _ := newTestCPU(lw(2, 1, 2))
	mc.SetReg(1, 0x100)

	mc.Step()
	test.ExpectEquality(t, mc.PC, uint32(cop0.BootstrapVector))
	test.ExpectEquality(t, mc.Cop0.Read(cop0.BadVAddr), uint32(0x102))
	test.ExpectEquality(t, (mc.Cop0.Read(cop0.Cause)>>2)&0x1f, uint32(cop0.AddressErrorLoad))
}

func TestUnalignedLoad(t *testing.T) {
	mc, mem := newTestCPU(
		lwr(1, 5, 1),
		lwl(1, 5, 4),
		nop,
	)
	mem.Write32(0x100, 0x11223344)
	mem.Write32(0x104, 0x55667788)
	mc.SetReg(5, 0x100)

	steps(mc, 3)
	test.ExpectEquality(t, mc.Reg(1), uint32(0x88112233))
}

func TestIsolatedStore(t *testing.T) {
	mc, mem := newTestCPU(sw(1, 0, 0x100))
	mc.Cop0.Write(cop0.Status, cop0.StatusIsC)
	mc.SetReg(1, 0x12345678)

	mc.Step()
	test.ExpectEquality(t, mem.Read32(0x100), uint32(0))
	test.ExpectFailure(t, mc.ICache.Hit(0x100))
}

func TestInstructionCache(t *testing.T) {
	mc, mem := newTestCPU(
		addiu(1, 0, 1),
		addiu(2, 0, 2),
	)
	mem.Write32(0xfffe0130, 0x800)
	mc.SetPC(0x80000000 | originPhysical)

	mc.Step()
	test.ExpectSuccess(t, mc.ICache.Hit(originPhysical))
	test.ExpectEquality(t, mc.Reg(1), uint32(1))

	// the second instruction is already in the cache line
	mem.Write32(originPhysical+4, addiu(2, 0, 9))
	mc.Step()
	test.ExpectEquality(t, mc.Reg(2), uint32(2))
}

func TestInterrupt(t *testing.T) {
	mc, mem := newTestCPU(addiu(1, 0, 1))
	mc.Cop0.Write(cop0.Status, cop0.StatusIEc|cop0.CauseExternalIP)
	mem.Write32(0x1f801074, 1<<interrupts.VBlank)
	mem.Interrupts.Raise(interrupts.VBlank)

	mc.Step()
	test.ExpectEquality(t, mc.PC, uint32(cop0.GeneralVector))
	test.ExpectEquality(t, mc.Cop0.Read(cop0.EPC), uint32(origin))
	test.ExpectEquality(t, (mc.Cop0.Read(cop0.Cause)>>2)&0x1f, uint32(cop0.Interrupt))
	test.ExpectEquality(t, mc.Reg(1), uint32(0))

	// interrupts are disabled on entry to the handler
	test.ExpectFailure(t, mc.Cop0.InterruptRequested())
}

func TestCop0Moves(t *testing.T) {
	mc, _ := newTestCPU(
		mtc0(1, cop0.Status),
		mfc0(2, cop0.Status),
		add(3, 2, 0),
		rfe,
	)
	mc.SetReg(1, 0x0000003c)

	steps(mc, 3)
	test.ExpectEquality(t, mc.Reg(3), uint32(0))
	test.ExpectEquality(t, mc.Reg(2), uint32(0x3c))

	mc.Step()
	test.ExpectEquality(t, mc.Cop0.Read(cop0.Status)&0x3f, uint32(0x3f))
	test.ExpectFailure(t, mc.Cop0.KernelMode())
}

func TestCoprocessorUnusable(t *testing.T) {
	// mfc2 with CU2 clear
	mc, _ := newTestCPU(0x48010000)

	mc.Step()
	test.ExpectEquality(t, (mc.Cop0.Read(cop0.Cause)>>2)&0x1f, uint32(cop0.CoprocessorUnusable))
	test.ExpectEquality(t, (mc.Cop0.Read(cop0.Cause)>>28)&3, uint32(2))
}

func TestDisassemble(t *testing.T) {
	test.ExpectEquality(t, cpu.Disassemble(0, cpu.Instruction(nop)), "nop")
	test.ExpectEquality(t, cpu.Disassemble(0, cpu.Instruction(addiu(1, 0, 0xffff))), "addiu $at, $zero, -1")
	test.ExpectEquality(t, cpu.Disassemble(0x1000, cpu.Instruction(beq(0, 0, 2))), "beq $zero, $zero, 0000100c")
	test.ExpectEquality(t, cpu.Disassemble(0, cpu.Instruction(lw(2, 29, 16))), "lw $v0, 16($sp)")
	test.ExpectEquality(t, cpu.Disassemble(0, cpu.Instruction(rfe)), "rfe")
}
