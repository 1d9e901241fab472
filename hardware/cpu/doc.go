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

// Package cpu emulates the MIPS R3051 found in the PSX. The CPU is an
// interpreter that executes one instruction for every call to Step().
//
// The pipeline of the real processor is visible to software in two ways and
// both are emulated. The instruction following a branch or jump (the branch
// delay slot) is always executed before control moves to the branch target.
// And the value of a load instruction is not available to the instruction
// immediately following the load (the load delay slot).
//
// The load delay is implemented with two copies of the register file. Every
// instruction reads from the input registers and writes to the output
// registers. The pending load is committed to the output registers before the
// instruction executes, which means that an instruction writing to the same
// register as the pending load wins. At the end of the instruction the output
// registers become the input registers for the next instruction.
//
// The system control coprocessor is implemented by the cop0 package and the
// instruction cache by the icache package. Coprocessor 2 (the GTE) is
// accessed through the cop2.Coprocessor interface.
package cpu
