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

package cop2

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/gopherpsx/logger"
)

// Coprocessor is the interface the CPU uses to communicate with coprocessor 2.
type Coprocessor interface {
	Function(op uint32)
	ReadControl(reg int) uint32
	WriteControl(reg int, value uint32)
	ReadData(reg int) uint32
	WriteData(reg int, value uint32)
}

// data registers with side effects.
const (
	sxy0 = 12
	sxy1 = 13
	sxy2 = 14
	sxyp = 15
	ir1  = 9
	ir2  = 10
	ir3  = 11
	irgb = 28
	orgb = 29
	lzcs = 30
	lzcr = 31
)

// control register 31 is the flag register
const flag = 31

// GTE is the register file of the geometry transformation engine.
type GTE struct {
	data    [32]uint32
	control [32]uint32

	// the number of unimplemented function calls
	Unimplemented int
}

// NewGTE is the preferred method of initialisation for the GTE type.
func NewGTE() *GTE {
	return &GTE{}
}

func (gte *GTE) String() string {
	return fmt.Sprintf("FLAG=%08x SXY2=%08x", gte.control[flag], gte.data[sxy2])
}

// Reset clears all registers.
func (gte *GTE) Reset() {
	gte.data = [32]uint32{}
	gte.control = [32]uint32{}
	gte.Unimplemented = 0
}

// Function implements the Coprocessor interface. The transformation
// arithmetic is not emulated. The flag register is cleared so that software
// testing for errors sees none.
func (gte *GTE) Function(op uint32) {
	gte.control[flag] = 0
	if gte.Unimplemented == 0 {
		logger.Logf(logger.Allow, "gte", "function %02x not emulated", op&0x3f)
	}
	gte.Unimplemented++
}

// ReadControl implements the Coprocessor interface.
func (gte *GTE) ReadControl(reg int) uint32 {
	return gte.control[reg&0x1f]
}

// WriteControl implements the Coprocessor interface.
func (gte *GTE) WriteControl(reg int, value uint32) {
	reg &= 0x1f
	if reg == flag {
		// bits 12 to 30 are writable. bit 31 is the logical OR of the error
		// bits 13 to 18 and 23 to 30
		value &= 0x7ffff000
		if value&0x7f87e000 != 0 {
			value |= 0x80000000
		}
	}
	gte.control[reg] = value
}

// ReadData implements the Coprocessor interface.
func (gte *GTE) ReadData(reg int) uint32 {
	reg &= 0x1f
	switch reg {
	case sxyp:
		return gte.data[sxy2]
	case irgb, orgb:
		return gte.packIR()
	}
	return gte.data[reg]
}

// WriteData implements the Coprocessor interface.
func (gte *GTE) WriteData(reg int, value uint32) {
	reg &= 0x1f
	switch reg {
	case sxyp:
		// writing to SXYP pushes the screen coordinate FIFO
		gte.data[sxy0] = gte.data[sxy1]
		gte.data[sxy1] = gte.data[sxy2]
		gte.data[sxy2] = value
		return
	case irgb:
		gte.data[ir1] = (value & 0x1f) << 7
		gte.data[ir2] = ((value >> 5) & 0x1f) << 7
		gte.data[ir3] = ((value >> 10) & 0x1f) << 7
	case orgb, lzcr:
		return
	case lzcs:
		if int32(value) < 0 {
			gte.data[lzcr] = uint32(bits.LeadingZeros32(^value))
		} else {
			gte.data[lzcr] = uint32(bits.LeadingZeros32(value))
		}
	}
	gte.data[reg] = value
}

// packIR returns the IR registers saturated and packed into 15bit colour.
func (gte *GTE) packIR() uint32 {
	sat := func(v uint32) uint32 {
		c := int32(int16(v)) >> 7
		if c < 0 {
			return 0
		}
		if c > 0x1f {
			return 0x1f
		}
		return uint32(c)
	}
	return sat(gte.data[ir1]) | sat(gte.data[ir2])<<5 | sat(gte.data[ir3])<<10
}
