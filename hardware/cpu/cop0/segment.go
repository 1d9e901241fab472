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

// Segment of the virtual address space.
type Segment int

// List of valid Segment values.
const (
	KUSEG Segment = iota
	KSEG0
	KSEG1
	KSEG2
)

func (s Segment) String() string {
	switch s {
	case KUSEG:
		return "kuseg"
	case KSEG0:
		return "kseg0"
	case KSEG1:
		return "kseg1"
	case KSEG2:
		return "kseg2"
	}
	return "unknown segment"
}

// segment boundaries. comparisons are unsigned so the boundaries are exact
const (
	originKSEG0 = 0x80000000
	originKSEG1 = 0xa0000000
	originKSEG2 = 0xc0000000
)

// Translate a virtual address to a physical address. The segment the virtual
// address falls into is also returned.
func Translate(va uint32) (uint32, Segment) {
	switch {
	case va < originKSEG0:
		return va, KUSEG
	case va < originKSEG1:
		return va - originKSEG0, KSEG0
	case va < originKSEG2:
		return va - originKSEG1, KSEG1
	}
	return va, KSEG2
}

// Cacheable returns true if the virtual address is in a cached segment.
func Cacheable(va uint32) bool {
	return va < originKSEG1
}
