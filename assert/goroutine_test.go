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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/assert"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestGoRoutineID(t *testing.T) {
	a := assert.GetGoRoutineID()
	test.ExpectInequality(t, a, 0)

	ch := make(chan uint64)
	go func() {
		ch <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-ch, a)
}

func TestOwnerSameGoroutine(t *testing.T) {
	var o assert.Owner
	o.Check("test")
	o.Check("test")
	o.Release()
	o.Check("test")
}
