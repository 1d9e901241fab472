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
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop2"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
)

// address of the test program in uncached RAM
const origin = 0xa0001000

// physical address of the test program
const originPhysical = 0x00001000

func special(s, t, d int, shift uint32, fn uint32) uint32 {
	return uint32(s)<<21 | uint32(t)<<16 | uint32(d)<<11 | (shift&0x1f)<<6 | fn
}

func immediate(op uint32, s, t int, imm uint16) uint32 {
	return op<<26 | uint32(s)<<21 | uint32(t)<<16 | uint32(imm)
}

const nop = 0x00000000

func add(d, s, t int) uint32             { return special(s, t, d, 0, 0x20) }
func addiu(t, s int, imm uint16) uint32  { return immediate(0x09, s, t, imm) }
func addi(t, s int, imm uint16) uint32   { return immediate(0x08, s, t, imm) }
func lw(t, s int, imm uint16) uint32     { return immediate(0x23, s, t, imm) }
func lwl(t, s int, imm uint16) uint32    { return immediate(0x22, s, t, imm) }
func lwr(t, s int, imm uint16) uint32    { return immediate(0x26, s, t, imm) }
func sw(t, s int, imm uint16) uint32     { return immediate(0x2b, s, t, imm) }
func beq(s, t int, offset uint16) uint32 { return immediate(0x04, s, t, offset) }
func div(s, t int) uint32                { return special(s, t, 0, 0, 0x1a) }
func divu(s, t int) uint32               { return special(s, t, 0, 0, 0x1b) }
func mfhi(d int) uint32                  { return special(0, 0, d, 0, 0x10) }
func mflo(d int) uint32                  { return special(0, 0, d, 0, 0x12) }
func mtc0(t, d int) uint32               { return 0x40800000 | uint32(t)<<16 | uint32(d)<<11 }
func mfc0(t, d int) uint32               { return 0x40000000 | uint32(t)<<16 | uint32(d)<<11 }

const (
	syscall = 0x0000000c
	rfe     = 0x42000010
)

// newTestCPU creates a CPU with the program placed in RAM. the PC is set to
// the first instruction of the program.
func newTestCPU(program ...uint32) (*cpu.CPU, *memory.Memory) {
	mem := memory.NewMemory()
	mc := cpu.NewCPU(mem, mem.Interrupts, cop2.NewGTE())
	for i, ins := range program {
		mem.Write32(originPhysical+uint32(i*4), ins)
	}
	mc.SetPC(origin)
	return mc, mem
}

func steps(mc *cpu.CPU, n int) {
	for i := 0; i < n; i++ {
		mc.Step()
	}
}
