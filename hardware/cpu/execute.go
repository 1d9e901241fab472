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
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
)

func (mc *CPU) execute(ins Instruction) {
	switch ins.function() {
	case 0x00:
		mc.special(ins)
	case 0x01:
		mc.bcondz(ins)
	case 0x02:
		mc.jump(ins, false)
	case 0x03:
		mc.jump(ins, true)
	case 0x04:
		mc.branchIf(ins, mc.regs[ins.s()] == mc.regs[ins.t()])
	case 0x05:
		mc.branchIf(ins, mc.regs[ins.s()] != mc.regs[ins.t()])
	case 0x06:
		mc.branchIf(ins, int32(mc.regs[ins.s()]) <= 0)
	case 0x07:
		mc.branchIf(ins, int32(mc.regs[ins.s()]) > 0)
	case 0x08:
		// addi
		s := int32(mc.regs[ins.s()])
		i := int32(ins.immSE())
		r := s + i
		if (s >= 0) == (i >= 0) && (r >= 0) != (s >= 0) {
			mc.exception(cop0.Overflow)
			return
		}
		mc.set(ins.t(), uint32(r))
	case 0x09:
		mc.set(ins.t(), mc.regs[ins.s()]+ins.immSE())
	case 0x0a:
		mc.set(ins.t(), boolToWord(int32(mc.regs[ins.s()]) < int32(ins.immSE())))
	case 0x0b:
		mc.set(ins.t(), boolToWord(mc.regs[ins.s()] < ins.immSE()))
	case 0x0c:
		mc.set(ins.t(), mc.regs[ins.s()]&ins.imm())
	case 0x0d:
		mc.set(ins.t(), mc.regs[ins.s()]|ins.imm())
	case 0x0e:
		mc.set(ins.t(), mc.regs[ins.s()]^ins.imm())
	case 0x0f:
		mc.set(ins.t(), ins.imm()<<16)
	case 0x10:
		mc.coprocessor0(ins)
	case 0x11, 0x13:
		mc.coprocessorException(ins.copNumber())
	case 0x12:
		mc.coprocessor2(ins)
	case 0x20:
		mc.loadInstruction(ins, 1, func(v uint32) uint32 { return uint32(int32(int8(v))) })
	case 0x21:
		mc.loadInstruction(ins, 2, func(v uint32) uint32 { return uint32(int32(int16(v))) })
	case 0x22:
		mc.lwl(ins)
	case 0x23:
		mc.loadInstruction(ins, 4, nil)
	case 0x24:
		mc.loadInstruction(ins, 1, nil)
	case 0x25:
		mc.loadInstruction(ins, 2, nil)
	case 0x26:
		mc.lwr(ins)
	case 0x28:
		mc.storeInstruction(ins, 1)
	case 0x29:
		mc.storeInstruction(ins, 2)
	case 0x2a:
		mc.swl(ins)
	case 0x2b:
		mc.storeInstruction(ins, 4)
	case 0x2e:
		mc.swr(ins)
	case 0x30, 0x31, 0x33, 0x38, 0x39, 0x3b:
		mc.coprocessorException(ins.copNumber())
	case 0x32:
		mc.lwc2(ins)
	case 0x3a:
		mc.swc2(ins)
	default:
		mc.exception(cop0.ReservedInstruction)
	}
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (mc *CPU) special(ins Instruction) {
	s := mc.regs[ins.s()]
	t := mc.regs[ins.t()]
	d := ins.d()

	switch ins.subfunction() {
	case 0x00:
		mc.set(d, t<<ins.shift())
	case 0x02:
		mc.set(d, t>>ins.shift())
	case 0x03:
		mc.set(d, uint32(int32(t)>>ins.shift()))
	case 0x04:
		mc.set(d, t<<(s&0x1f))
	case 0x06:
		mc.set(d, t>>(s&0x1f))
	case 0x07:
		mc.set(d, uint32(int32(t)>>(s&0x1f)))
	case 0x08:
		mc.nextPC = s
		mc.branch = true
	case 0x09:
		mc.set(d, mc.nextPC)
		mc.nextPC = s
		mc.branch = true
	case 0x0c:
		mc.exception(cop0.Syscall)
	case 0x0d:
		mc.exception(cop0.Breakpoint)
	case 0x10:
		mc.set(d, mc.HI)
	case 0x11:
		mc.HI = s
	case 0x12:
		mc.set(d, mc.LO)
	case 0x13:
		mc.LO = s
	case 0x18:
		v := int64(int32(s)) * int64(int32(t))
		mc.HI = uint32(uint64(v) >> 32)
		mc.LO = uint32(v)
	case 0x19:
		v := uint64(s) * uint64(t)
		mc.HI = uint32(v >> 32)
		mc.LO = uint32(v)
	case 0x1a:
		mc.div(s, t)
	case 0x1b:
		if t == 0 {
			mc.HI = s
			mc.LO = 0xffffffff
		} else {
			mc.HI = s % t
			mc.LO = s / t
		}
	case 0x20:
		r := int32(s) + int32(t)
		if (int32(s) >= 0) == (int32(t) >= 0) && (r >= 0) != (int32(s) >= 0) {
			mc.exception(cop0.Overflow)
			return
		}
		mc.set(d, uint32(r))
	case 0x21:
		mc.set(d, s+t)
	case 0x22:
		r := int32(s) - int32(t)
		if (int32(s) >= 0) != (int32(t) >= 0) && (r >= 0) != (int32(s) >= 0) {
			mc.exception(cop0.Overflow)
			return
		}
		mc.set(d, uint32(r))
	case 0x23:
		mc.set(d, s-t)
	case 0x24:
		mc.set(d, s&t)
	case 0x25:
		mc.set(d, s|t)
	case 0x26:
		mc.set(d, s^t)
	case 0x27:
		mc.set(d, ^(s | t))
	case 0x2a:
		mc.set(d, boolToWord(int32(s) < int32(t)))
	case 0x2b:
		mc.set(d, boolToWord(s < t))
	default:
		mc.exception(cop0.ReservedInstruction)
	}
}

// signed division. division by zero and the overflow case do not raise an
// exception
func (mc *CPU) div(s uint32, t uint32) {
	n := int32(s)
	d := int32(t)

	switch {
	case d == 0:
		mc.HI = s
		if n >= 0 {
			mc.LO = 0xffffffff
		} else {
			mc.LO = 1
		}
	case s == 0x80000000 && d == -1:
		mc.HI = 0
		mc.LO = 0x80000000
	default:
		mc.HI = uint32(n % d)
		mc.LO = uint32(n / d)
	}
}

// BLTZ, BGEZ, BLTZAL and BGEZAL. bit 16 of the instruction selects BGEZ and
// the link happens regardless of whether the branch is taken
func (mc *CPU) bcondz(ins Instruction) {
	v := int32(mc.regs[ins.s()])
	test := v < 0
	if ins.t()&1 == 1 {
		test = !test
	}
	if ins.t()&0x1e == 0x10 {
		mc.set(31, mc.nextPC)
	}
	mc.branchIf(ins, test)
}

func (mc *CPU) branchIf(ins Instruction, cond bool) {
	mc.branch = true
	if cond {
		mc.nextPC = mc.PC + (ins.immSE() << 2)
	}
}

func (mc *CPU) jump(ins Instruction, link bool) {
	if link {
		mc.set(31, mc.nextPC)
	}
	mc.nextPC = (mc.PC & 0xf0000000) | (ins.immJump() << 2)
	mc.branch = true
}

func (mc *CPU) coprocessor0(ins Instruction) {
	if !mc.Cop0.CoprocessorUsable(0) {
		mc.coprocessorException(0)
		return
	}

	switch ins.copOpcode() {
	case 0x00:
		mc.delayedLoad(ins.t(), mc.Cop0.Read(ins.d()))
	case 0x04:
		mc.Cop0.Write(ins.d(), mc.regs[ins.t()])
	case 0x08:
		test := mc.Cop0.Condition
		if ins.t()&1 == 0 {
			test = !test
		}
		mc.branchIf(ins, test)
	case 0x10:
		if ins.subfunction() != 0x10 {
			mc.exception(cop0.ReservedInstruction)
			return
		}
		mc.Cop0.ReturnFromException()
	default:
		mc.exception(cop0.ReservedInstruction)
	}
}

func (mc *CPU) coprocessor2(ins Instruction) {
	if !mc.Cop0.CoprocessorUsable(2) {
		mc.coprocessorException(2)
		return
	}

	if uint32(ins)&(1<<25) != 0 {
		mc.Cop2.Function(uint32(ins) & 0x1ffffff)
		return
	}

	switch ins.copOpcode() {
	case 0x00:
		mc.delayedLoad(ins.t(), mc.Cop2.ReadData(ins.d()))
	case 0x02:
		mc.delayedLoad(ins.t(), mc.Cop2.ReadControl(ins.d()))
	case 0x04:
		mc.Cop2.WriteData(ins.d(), mc.regs[ins.t()])
	case 0x06:
		mc.Cop2.WriteControl(ins.d(), mc.regs[ins.t()])
	default:
		mc.exception(cop0.ReservedInstruction)
	}
}

func (mc *CPU) address(ins Instruction) uint32 {
	return mc.regs[ins.s()] + ins.immSE()
}

// extend is applied to the loaded value. a nil extend function means the value
// is zero extended
func (mc *CPU) loadInstruction(ins Instruction, size uint32, extend func(uint32) uint32) {
	address := mc.address(ins)
	if !mc.checkAddress(address, size, cop0.AddressErrorLoad) {
		return
	}
	v := mc.read(address, size)
	if extend != nil {
		v = extend(v)
	}
	mc.delayedLoad(ins.t(), v)
}

func (mc *CPU) storeInstruction(ins Instruction, size uint32) {
	address := mc.address(ins)
	if !mc.checkAddress(address, size, cop0.AddressErrorStore) {
		return
	}
	mc.write(address, size, mc.regs[ins.t()])
}

// LWL and LWR merge with the current value of the target register, including
// a load that is still in its delay slot. the output registers hold that value
func (mc *CPU) lwl(ins Instruction) {
	address := mc.address(ins)
	if !mc.checkAddress(address&^3, 4, cop0.AddressErrorLoad) {
		return
	}
	cur := mc.outRegs[ins.t()]
	w := mc.read(address&^3, 4)

	var v uint32
	switch address & 3 {
	case 0:
		v = (cur & 0x00ffffff) | (w << 24)
	case 1:
		v = (cur & 0x0000ffff) | (w << 16)
	case 2:
		v = (cur & 0x000000ff) | (w << 8)
	case 3:
		v = w
	}
	mc.delayedLoad(ins.t(), v)
}

func (mc *CPU) lwr(ins Instruction) {
	address := mc.address(ins)
	if !mc.checkAddress(address&^3, 4, cop0.AddressErrorLoad) {
		return
	}
	cur := mc.outRegs[ins.t()]
	w := mc.read(address&^3, 4)

	var v uint32
	switch address & 3 {
	case 0:
		v = w
	case 1:
		v = (cur & 0xff000000) | (w >> 8)
	case 2:
		v = (cur & 0xffff0000) | (w >> 16)
	case 3:
		v = (cur & 0xffffff00) | (w >> 24)
	}
	mc.delayedLoad(ins.t(), v)
}

func (mc *CPU) swl(ins Instruction) {
	address := mc.address(ins)
	aligned := address &^ 3
	if !mc.checkAddress(aligned, 4, cop0.AddressErrorStore) {
		return
	}
	v := mc.regs[ins.t()]
	cur := mc.read(aligned, 4)

	switch address & 3 {
	case 0:
		v = (cur & 0xffffff00) | (v >> 24)
	case 1:
		v = (cur & 0xffff0000) | (v >> 16)
	case 2:
		v = (cur & 0xff000000) | (v >> 8)
	}
	mc.write(aligned, 4, v)
}

func (mc *CPU) swr(ins Instruction) {
	address := mc.address(ins)
	aligned := address &^ 3
	if !mc.checkAddress(aligned, 4, cop0.AddressErrorStore) {
		return
	}
	v := mc.regs[ins.t()]
	cur := mc.read(aligned, 4)

	switch address & 3 {
	case 1:
		v = (cur & 0x000000ff) | (v << 8)
	case 2:
		v = (cur & 0x0000ffff) | (v << 16)
	case 3:
		v = (cur & 0x00ffffff) | (v << 24)
	}
	mc.write(aligned, 4, v)
}

func (mc *CPU) lwc2(ins Instruction) {
	if !mc.Cop0.CoprocessorUsable(2) {
		mc.coprocessorException(2)
		return
	}
	address := mc.address(ins)
	if !mc.checkAddress(address, 4, cop0.AddressErrorLoad) {
		return
	}
	mc.Cop2.WriteData(ins.t(), mc.read(address, 4))
}

func (mc *CPU) swc2(ins Instruction) {
	if !mc.Cop0.CoprocessorUsable(2) {
		mc.coprocessorException(2)
		return
	}
	address := mc.address(ins)
	if !mc.checkAddress(address, 4, cop0.AddressErrorStore) {
		return
	}
	mc.write(address, 4, mc.Cop2.ReadData(ins.t()))
}
