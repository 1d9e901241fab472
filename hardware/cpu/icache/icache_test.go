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

package icache_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/icache"
	"github.com/jetsetilly/gopherpsx/test"
)

type isolation bool

func (iso *isolation) CacheIsolated() bool {
	return bool(*iso)
}

// memory returns the address as the value for every read and counts the
// number of reads.
type memory struct {
	reads int
}

func (mem *memory) Read32(address uint32) uint32 {
	mem.reads++
	return address ^ 0xa5a5a5a5
}

func TestRefill(t *testing.T) {
	var iso isolation
	ic := icache.NewICache(&iso)
	mem := &memory{}

	test.ExpectFailure(t, ic.Hit(0x00001234))

	ic.Refill(0x00001234, mem)
	test.ExpectEquality(t, mem.reads, 4)

	for a := uint32(0x00001230); a < 0x00001240; a++ {
		test.ExpectSuccess(t, ic.Hit(a), a)
	}
	test.ExpectFailure(t, ic.Hit(0x00001240))

	// same index, different tag
	test.ExpectFailure(t, ic.Hit(0x00002234))

	for a := uint32(0x00001230); a < 0x00001240; a += 4 {
		test.ExpectEquality(t, ic.ReadWord(a), a^0xa5a5a5a5, a)
	}

	ic.Reset()
	test.ExpectFailure(t, ic.Hit(0x00001234))
}

func TestIsolatedWrites(t *testing.T) {
	var iso isolation
	ic := icache.NewICache(&iso)
	mem := &memory{}

	ic.Refill(0x00000040, mem)
	test.ExpectSuccess(t, ic.Hit(0x00000040))

	// writes when not isolated update the line without invalidating it
	ic.WriteWord(0x00000044, 0x12345678)
	test.ExpectSuccess(t, ic.Hit(0x00000044))
	test.ExpectEquality(t, ic.ReadWord(0x00000044), uint32(0x12345678))

	iso = true
	ic.WriteWord(0x00000048, 0)
	test.ExpectFailure(t, ic.Hit(0x00000040))

	// refill is ignored while isolated
	reads := mem.reads
	ic.Refill(0x00000040, mem)
	test.ExpectEquality(t, mem.reads, reads)
	test.ExpectFailure(t, ic.Hit(0x00000040))

	iso = false
	ic.Refill(0x00000080, mem)
	iso = true
	ic.WriteUint8(0x00000083, 0xff)
	test.ExpectFailure(t, ic.Hit(0x00000080))
}
