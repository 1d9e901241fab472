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

package timers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/logger"
)

// InterruptRaiser is used by the timers to raise the timer interrupts.
type InterruptRaiser interface {
	Raise(src interrupts.Source)
}

// Video is the source of the dot clock and horizontal blank clock. The
// arguments are in GPU cycles.
type Video interface {
	DotClock(cycles int) int
	DotClockRemainder(cycles int) int
	HBlank(cycles int) int
	HBlankRemainder(cycles int) int
}

// NumTimers is the number of root counters.
const NumTimers = 3

// Register offsets within the area of each timer.
const (
	CounterRegister = 0x0
	ModeRegister    = 0x4
	TargetRegister  = 0x8
)

// Bits in the mode register.
const (
	ModeSyncEnable    = 0x0001
	ModeResetAtTarget = 0x0008
	ModeIRQAtTarget   = 0x0010
	ModeIRQAtMax      = 0x0020
	ModeRepeat        = 0x0040
	ModeToggle        = 0x0080
	ModeClockSource   = 0x0300
	ModeIRQ           = 0x0400
	ModeReachedTarget = 0x0800
	ModeReachedMax    = 0x1000
)

// the bits of the mode register that can be written
const modeWritable = 0x03ff

// the GPU clock runs at 11/7 of the CPU clock
const (
	clockNumerator   = 11
	clockDenominator = 7
)

type counter struct {
	value  uint32
	mode   uint32
	target uint32

	// the interrupt has fired since the mode was written. a counter not in
	// repeat mode only interrupts once
	fired bool
}

// Timers is the collection of the three root counters.
type Timers struct {
	irq   InterruptRaiser
	video Video

	counters [NumTimers]counter

	// GPU cycles not yet converted
	remainder int

	// GPU cycles not yet converted to dots or scanlines
	dotCycles    int
	hblankCycles int

	// CPU cycles not yet counted by timer 2 in divide by 8 mode
	div8 int
}

func (tm *Timers) String() string {
	s := strings.Builder{}
	for i := range tm.counters {
		c := &tm.counters[i]
		s.WriteString(fmt.Sprintf("T%d=%04x/%04x/%04x ", i, c.value, c.mode, c.target))
	}
	return strings.TrimSpace(s.String())
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers(irq InterruptRaiser, video Video) *Timers {
	tm := &Timers{
		irq:   irq,
		video: video,
	}
	tm.Reset()
	return tm
}

// Reset all counters.
func (tm *Timers) Reset() {
	tm.counters = [NumTimers]counter{}
	for i := range tm.counters {
		tm.counters[i].mode = ModeIRQ
	}
	tm.remainder = 0
	tm.dotCycles = 0
	tm.hblankCycles = 0
	tm.div8 = 0
}

// ReadRegister implements the bus.RegisterBus interface. Reading the mode
// register clears the reached target and reached maximum flags.
func (tm *Timers) ReadRegister(offset uint32) uint32 {
	n := offset >> 4
	if n >= NumTimers {
		return 0
	}
	c := &tm.counters[n]

	switch offset & 0x0f {
	case CounterRegister:
		return c.value
	case ModeRegister:
		v := c.mode
		c.mode &^= ModeReachedTarget | ModeReachedMax
		return v
	case TargetRegister:
		return c.target
	}
	return 0
}

// WriteRegister implements the bus.RegisterBus interface. Writing the mode
// register resets the counter.
func (tm *Timers) WriteRegister(offset uint32, data uint32) {
	n := offset >> 4
	if n >= NumTimers {
		return
	}
	c := &tm.counters[n]

	switch offset & 0x0f {
	case CounterRegister:
		c.value = data & 0xffff
	case ModeRegister:
		c.mode = (c.mode &^ modeWritable) | data&modeWritable | ModeIRQ
		c.value = 0
		c.fired = false
		if data&ModeSyncEnable == ModeSyncEnable {
			logger.Logf(logger.Allow, "timers", "synchronisation mode for timer %d not supported", n)
		}
	case TargetRegister:
		c.target = data & 0xffff
	}
}

// Tick advances the counters by the number of CPU cycles.
func (tm *Timers) Tick(cpuCycles int) {
	c := cpuCycles*clockNumerator + tm.remainder
	gpuCycles := c / clockDenominator
	tm.remainder = c % clockDenominator

	tm.dotCycles += gpuCycles
	dots := tm.video.DotClock(tm.dotCycles)
	tm.dotCycles = tm.video.DotClockRemainder(tm.dotCycles)

	tm.hblankCycles += gpuCycles
	lines := tm.video.HBlank(tm.hblankCycles)
	tm.hblankCycles = tm.video.HBlankRemainder(tm.hblankCycles)

	tm.div8 += cpuCycles
	div8 := tm.div8 / 8
	tm.div8 %= 8

	for i := range tm.counters {
		src := (tm.counters[i].mode & ModeClockSource) >> 8

		n := cpuCycles
		switch i {
		case 0:
			if src&1 == 1 {
				n = dots
			}
		case 1:
			if src&1 == 1 {
				n = lines
			}
		case 2:
			if src >= 2 {
				n = div8
			}
		}

		for r := tm.advance(&tm.counters[i], uint32(n)); r > 0; r-- {
			tm.irq.Raise(interrupts.Timer0 + interrupts.Source(i))
		}
	}
}

// advance a counter by n ticks. returns the number of interrupts to raise.
func (tm *Timers) advance(c *counter, n uint32) int {
	var irq int

	// a counter that resets at a target of zero reaches the target on every
	// tick
	if c.mode&ModeResetAtTarget == ModeResetAtTarget && c.target == 0 {
		for ; n > 0; n-- {
			c.value = 0
			if tm.reached(c, 0) {
				irq++
			}
		}
		return irq
	}

	for n > 0 {
		// the value after which the counter wraps to zero
		limit := uint32(0xffff)
		if c.mode&ModeResetAtTarget == ModeResetAtTarget && c.value <= c.target {
			limit = c.target
		}

		if c.value >= limit {
			c.value = 0
			n--
			if c.target == 0 && tm.reached(c, 0) {
				irq++
			}
			continue
		}

		// the next value of interest
		next := limit
		if c.value < c.target && c.target < next {
			next = c.target
		}

		d := next - c.value
		if n < d {
			c.value += n
			return irq
		}

		c.value = next
		n -= d
		if tm.reached(c, next) {
			irq++
		}
	}

	return irq
}

// reached is called when the counter reaches the target or the maximum
// value. returns true if an interrupt should be raised.
func (tm *Timers) reached(c *counter, value uint32) bool {
	var irq bool

	if value == c.target {
		c.mode |= ModeReachedTarget
		irq = c.mode&ModeIRQAtTarget == ModeIRQAtTarget
	}
	if value == 0xffff {
		c.mode |= ModeReachedMax
		irq = irq || c.mode&ModeIRQAtMax == ModeIRQAtMax
	}

	if !irq {
		return false
	}
	if c.fired && c.mode&ModeRepeat != ModeRepeat {
		return false
	}
	c.fired = true

	// in toggle mode the request bit alternates. in pulse mode it is cleared
	// only for a short time and so is always seen as set
	if c.mode&ModeToggle == ModeToggle {
		c.mode ^= ModeIRQ
	}

	return true
}
