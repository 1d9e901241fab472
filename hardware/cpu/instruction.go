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

// Instruction is a single 32bit R3051 instruction word. Field accessors are
// named after the fields in the MIPS encoding.
type Instruction uint32

// primary opcode. bits 26 to 31
func (ins Instruction) function() uint32 {
	return uint32(ins) >> 26
}

// secondary opcode for the SPECIAL group. bits 0 to 5
func (ins Instruction) subfunction() uint32 {
	return uint32(ins) & 0x3f
}

// source register. bits 21 to 25
func (ins Instruction) s() int {
	return int(uint32(ins)>>21) & 0x1f
}

// target register. bits 16 to 20
func (ins Instruction) t() int {
	return int(uint32(ins)>>16) & 0x1f
}

// destination register. bits 11 to 15
func (ins Instruction) d() int {
	return int(uint32(ins)>>11) & 0x1f
}

// shift amount. bits 6 to 10
func (ins Instruction) shift() uint32 {
	return (uint32(ins) >> 6) & 0x1f
}

// 16bit immediate value
func (ins Instruction) imm() uint32 {
	return uint32(ins) & 0xffff
}

// 16bit immediate value sign extended to 32bits
func (ins Instruction) immSE() uint32 {
	return uint32(int32(int16(ins)))
}

// 26bit jump target
func (ins Instruction) immJump() uint32 {
	return uint32(ins) & 0x03ffffff
}

// coprocessor opcode. this is the same field as the source register
func (ins Instruction) copOpcode() int {
	return ins.s()
}

// coprocessor number for the COPn, LWCn and SWCn instructions
func (ins Instruction) copNumber() int {
	return int(ins.function() & 0x3)
}
