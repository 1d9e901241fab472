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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherpsx/performance/limiter"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestWait(t *testing.T) {
	lim := limiter.NewFPSLimiter(200)
	test.ExpectEquality(t, lim.Limit(), 200.0)

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}

	// ten frames at 200fps is 50ms
	test.ExpectSuccess(t, time.Since(start) >= 45*time.Millisecond)
}

func TestUnlimited(t *testing.T) {
	lim := limiter.NewFPSLimiter(0)

	start := time.Now()
	for i := 0; i < 1000; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
}
