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
)

// RegisterNames are the conventional names of the general purpose registers.
var RegisterNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

var primaryMnemonics = map[uint32]string{
	0x02: "j", 0x03: "jal", 0x04: "beq", 0x05: "bne", 0x06: "blez", 0x07: "bgtz",
	0x08: "addi", 0x09: "addiu", 0x0a: "slti", 0x0b: "sltiu", 0x0c: "andi",
	0x0d: "ori", 0x0e: "xori", 0x0f: "lui",
	0x20: "lb", 0x21: "lh", 0x22: "lwl", 0x23: "lw", 0x24: "lbu", 0x25: "lhu",
	0x26: "lwr", 0x28: "sb", 0x29: "sh", 0x2a: "swl", 0x2b: "sw", 0x2e: "swr",
	0x30: "lwc0", 0x31: "lwc1", 0x32: "lwc2", 0x33: "lwc3",
	0x38: "swc0", 0x39: "swc1", 0x3a: "swc2", 0x3b: "swc3",
}

var specialMnemonics = map[uint32]string{
	0x00: "sll", 0x02: "srl", 0x03: "sra", 0x04: "sllv", 0x06: "srlv", 0x07: "srav",
	0x08: "jr", 0x09: "jalr", 0x0c: "syscall", 0x0d: "break",
	0x10: "mfhi", 0x11: "mthi", 0x12: "mflo", 0x13: "mtlo",
	0x18: "mult", 0x19: "multu", 0x1a: "div", 0x1b: "divu",
	0x20: "add", 0x21: "addu", 0x22: "sub", 0x23: "subu",
	0x24: "and", 0x25: "or", 0x26: "xor", 0x27: "nor", 0x2a: "slt", 0x2b: "sltu",
}

// Disassemble returns a human readable representation of the instruction. The
// pc value is used to calculate branch and jump targets.
func Disassemble(pc uint32, ins Instruction) string {
	if ins == 0 {
		return "nop"
	}

	s := RegisterNames[ins.s()]
	t := RegisterNames[ins.t()]
	d := RegisterNames[ins.d()]
	branch := pc + 4 + (ins.immSE() << 2)

	switch ins.function() {
	case 0x00:
		m, ok := specialMnemonics[ins.subfunction()]
		if !ok {
			break
		}
		switch ins.subfunction() {
		case 0x00, 0x02, 0x03:
			return fmt.Sprintf("%s $%s, $%s, %d", m, d, t, ins.shift())
		case 0x08:
			return fmt.Sprintf("%s $%s", m, s)
		case 0x09:
			return fmt.Sprintf("%s $%s, $%s", m, d, s)
		case 0x0c, 0x0d:
			return m
		case 0x10, 0x12:
			return fmt.Sprintf("%s $%s", m, d)
		case 0x11, 0x13:
			return fmt.Sprintf("%s $%s", m, s)
		case 0x18, 0x19, 0x1a, 0x1b:
			return fmt.Sprintf("%s $%s, $%s", m, s, t)
		case 0x04, 0x06, 0x07:
			return fmt.Sprintf("%s $%s, $%s, $%s", m, d, t, s)
		}
		return fmt.Sprintf("%s $%s, $%s, $%s", m, d, s, t)

	case 0x01:
		m := "bltz"
		if ins.t()&1 == 1 {
			m = "bgez"
		}
		if ins.t()&0x1e == 0x10 {
			m = fmt.Sprintf("%sal", m)
		}
		return fmt.Sprintf("%s $%s, %08x", m, s, branch)

	case 0x02, 0x03:
		target := (pc+4)&0xf0000000 | ins.immJump()<<2
		return fmt.Sprintf("%s %08x", primaryMnemonics[ins.function()], target)

	case 0x04, 0x05:
		return fmt.Sprintf("%s $%s, $%s, %08x", primaryMnemonics[ins.function()], s, t, branch)

	case 0x06, 0x07:
		return fmt.Sprintf("%s $%s, %08x", primaryMnemonics[ins.function()], s, branch)

	case 0x0f:
		return fmt.Sprintf("lui $%s, %#04x", t, ins.imm())

	case 0x0c, 0x0d, 0x0e:
		return fmt.Sprintf("%s $%s, $%s, %#04x", primaryMnemonics[ins.function()], t, s, ins.imm())

	case 0x08, 0x09, 0x0a, 0x0b:
		return fmt.Sprintf("%s $%s, $%s, %d", primaryMnemonics[ins.function()], t, s, int16(ins.imm()))

	case 0x10, 0x11, 0x12, 0x13:
		n := ins.copNumber()
		if uint32(ins)&(1<<25) != 0 {
			if n == 0 && ins.subfunction() == 0x10 {
				return "rfe"
			}
			return fmt.Sprintf("cop%d %07x", n, uint32(ins)&0x1ffffff)
		}
		switch ins.copOpcode() {
		case 0x00:
			return fmt.Sprintf("mfc%d $%s, %d", n, t, ins.d())
		case 0x02:
			return fmt.Sprintf("cfc%d $%s, %d", n, t, ins.d())
		case 0x04:
			return fmt.Sprintf("mtc%d $%s, %d", n, t, ins.d())
		case 0x06:
			return fmt.Sprintf("ctc%d $%s, %d", n, t, ins.d())
		}

	default:
		if m, ok := primaryMnemonics[ins.function()]; ok {
			if ins.function() >= 0x30 {
				return fmt.Sprintf("%s %d, %d($%s)", m, ins.t(), int16(ins.imm()), s)
			}
			return fmt.Sprintf("%s $%s, %d($%s)", m, t, int16(ins.imm()), s)
		}
	}

	return fmt.Sprintf("illegal %08x", uint32(ins))
}
