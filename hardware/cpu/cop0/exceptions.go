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

import "fmt"

// Exception codes as stored in the ExcCode field of the cause register.
type Exception uint32

// List of valid Exception values.
const (
	Interrupt           Exception = 0x00
	AddressErrorLoad    Exception = 0x04
	AddressErrorStore   Exception = 0x05
	BusErrorFetch       Exception = 0x06
	BusErrorData        Exception = 0x07
	Syscall             Exception = 0x08
	Breakpoint          Exception = 0x09
	ReservedInstruction Exception = 0x0a
	CoprocessorUnusable Exception = 0x0b
	Overflow            Exception = 0x0c
)

func (e Exception) String() string {
	switch e {
	case Interrupt:
		return "interrupt"
	case AddressErrorLoad:
		return "address error (load)"
	case AddressErrorStore:
		return "address error (store)"
	case BusErrorFetch:
		return "bus error (fetch)"
	case BusErrorData:
		return "bus error (data)"
	case Syscall:
		return "syscall"
	case Breakpoint:
		return "breakpoint"
	case ReservedInstruction:
		return "reserved instruction"
	case CoprocessorUnusable:
		return "coprocessor unusable"
	case Overflow:
		return "overflow"
	}
	return fmt.Sprintf("exception %#02x", uint32(e))
}

// Exception vectors.
const (
	ResetVector     = 0xbfc00000
	BootstrapVector = 0xbfc00180
	GeneralVector   = 0x80000080
)
