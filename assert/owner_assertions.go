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

//go:build assertions

package assert

import (
	"fmt"
	"sync/atomic"
)

// Owner records the first goroutine to call Check(). Subsequent calls from a
// different goroutine cause a panic.
type Owner struct {
	id atomic.Uint64
}

// Check that the calling goroutine is the owner.
func (o *Owner) Check(component string) {
	id := GetGoRoutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if o.id.Load() != id {
		panic(fmt.Sprintf("%s: accessed from goroutine %d but owned by goroutine %d", component, id, o.id.Load()))
	}
}

// Release the ownership so that a new goroutine can become the owner.
func (o *Owner) Release() {
	o.id.Store(0)
}
