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

package cop2_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop2"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestLeadingCount(t *testing.T) {
	gte := cop2.NewGTE()

	gte.WriteData(30, 0x00ffffff)
	test.ExpectEquality(t, gte.ReadData(31), uint32(8))

	gte.WriteData(30, 0xfff00000)
	test.ExpectEquality(t, gte.ReadData(31), uint32(12))

	gte.WriteData(30, 0)
	test.ExpectEquality(t, gte.ReadData(31), uint32(32))
}

func TestScreenFIFO(t *testing.T) {
	gte := cop2.NewGTE()
	gte.WriteData(15, 1)
	gte.WriteData(15, 2)
	gte.WriteData(15, 3)
	test.ExpectEquality(t, gte.ReadData(12), uint32(1))
	test.ExpectEquality(t, gte.ReadData(13), uint32(2))
	test.ExpectEquality(t, gte.ReadData(14), uint32(3))
	test.ExpectEquality(t, gte.ReadData(15), uint32(3))
}

func TestColourConversion(t *testing.T) {
	gte := cop2.NewGTE()
	gte.WriteData(28, 0x7fff)
	test.ExpectEquality(t, gte.ReadData(9), uint32(0x1f<<7))
	test.ExpectEquality(t, gte.ReadData(29), uint32(0x7fff))
}

func TestFlag(t *testing.T) {
	gte := cop2.NewGTE()
	gte.WriteControl(31, 0xffffffff)
	test.ExpectEquality(t, gte.ReadControl(31), uint32(0xfffff000))
	gte.Function(0x01)
	test.ExpectEquality(t, gte.ReadControl(31), uint32(0))
}
