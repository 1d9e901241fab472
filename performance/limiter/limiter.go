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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync"
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	crit sync.Mutex

	framesPerSecond float64
	secondsPerFrame time.Duration

	// the time at which the next call to Wait() returns
	next time.Time
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. A value of zero or
// less means that Wait() never blocks.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.framesPerSecond = framesPerSecond
	if framesPerSecond <= 0 {
		lim.secondsPerFrame = 0
	} else {
		lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
	}
	lim.next = time.Time{}
}

// Limit returns the current limit.
func (lim *FpsLimiter) Limit() float64 {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait will block until the next trigger.
func (lim *FpsLimiter) Wait() {
	lim.crit.Lock()
	if lim.secondsPerFrame == 0 {
		lim.crit.Unlock()
		return
	}

	now := time.Now()

	// if we've fallen more than a frame behind then there's no point trying
	// to catch up
	if lim.next.IsZero() || now.Sub(lim.next) > lim.secondsPerFrame {
		lim.next = now
	}

	lim.next = lim.next.Add(lim.secondsPerFrame)
	wait := lim.next.Sub(now)
	lim.crit.Unlock()

	if wait > 0 {
		time.Sleep(wait)
	}
}
