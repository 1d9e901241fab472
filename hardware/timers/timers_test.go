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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/timers"
	"github.com/jetsetilly/gopherpsx/test"
)

type irq struct {
	raised []interrupts.Source
}

func (i *irq) Raise(src interrupts.Source) {
	i.raised = append(i.raised, src)
}

// video with a dot every 10 GPU cycles and a scanline every 100 GPU cycles
type video struct{}

func (video) DotClock(cycles int) int          { return cycles / 10 }
func (video) DotClockRemainder(cycles int) int { return cycles % 10 }
func (video) HBlank(cycles int) int            { return cycles / 100 }
func (video) HBlankRemainder(cycles int) int   { return cycles % 100 }

func register(timer int, reg uint32) uint32 {
	return uint32(timer)*0x10 + reg
}

func TestSystemClock(t *testing.T) {
	i := &irq{}
	tm := timers.NewTimers(i, video{})

	tm.Tick(100)
	for n := 0; n < timers.NumTimers; n++ {
		test.ExpectEquality(t, tm.ReadRegister(register(n, timers.CounterRegister)), uint32(100), n)
	}

	// writing the mode resets the counter
	tm.WriteRegister(register(1, timers.ModeRegister), 0)
	test.ExpectEquality(t, tm.ReadRegister(register(1, timers.CounterRegister)), uint32(0))
	test.ExpectEquality(t, tm.ReadRegister(register(1, timers.ModeRegister))&timers.ModeIRQ, uint32(timers.ModeIRQ))

	// counters wrap after 0xffff
	tm.WriteRegister(register(0, timers.CounterRegister), 0xfffe)
	tm.Tick(3)
	test.ExpectEquality(t, tm.ReadRegister(register(0, timers.CounterRegister)), uint32(1))

	// the reached flag is cleared by reading the mode register
	test.ExpectEquality(t, tm.ReadRegister(register(0, timers.ModeRegister))&timers.ModeReachedMax, uint32(timers.ModeReachedMax))
	test.ExpectEquality(t, tm.ReadRegister(register(0, timers.ModeRegister))&timers.ModeReachedMax, uint32(0))

	test.ExpectEquality(t, len(i.raised), 0)
}

func TestTarget(t *testing.T) {
	i := &irq{}
	tm := timers.NewTimers(i, video{})

	tm.WriteRegister(register(2, timers.TargetRegister), 10)
	tm.WriteRegister(register(2, timers.ModeRegister), timers.ModeResetAtTarget|timers.ModeIRQAtTarget)

	tm.Tick(9)
	test.ExpectEquality(t, tm.ReadRegister(register(2, timers.CounterRegister)), uint32(9))
	test.ExpectEquality(t, len(i.raised), 0)

	tm.Tick(1)
	test.ExpectEquality(t, tm.ReadRegister(register(2, timers.CounterRegister)), uint32(10))
	test.DemandEquality(t, len(i.raised), 1)
	test.ExpectEquality(t, i.raised[0], interrupts.Timer2)

	// the counter resets after the target and counts on
	tm.Tick(5)
	test.ExpectEquality(t, tm.ReadRegister(register(2, timers.CounterRegister)), uint32(4))

	// not in repeat mode so there is only one interrupt
	tm.Tick(20)
	test.ExpectEquality(t, len(i.raised), 1)
}

func TestRepeat(t *testing.T) {
	i := &irq{}
	tm := timers.NewTimers(i, video{})

	tm.WriteRegister(register(2, timers.TargetRegister), 10)
	tm.WriteRegister(register(2, timers.ModeRegister), timers.ModeResetAtTarget|timers.ModeIRQAtTarget|timers.ModeRepeat|timers.ModeToggle)

	// target is reached at 10, 21 and 32
	tm.Tick(33)
	test.ExpectEquality(t, len(i.raised), 3)
	test.ExpectEquality(t, tm.ReadRegister(register(2, timers.CounterRegister)), uint32(0))

	// odd number of toggles leaves the request bit clear
	test.ExpectEquality(t, tm.ReadRegister(register(2, timers.ModeRegister))&timers.ModeIRQ, uint32(0))

	// a target of zero is reached on every tick
	tm.WriteRegister(register(0, timers.TargetRegister), 0)
	tm.WriteRegister(register(0, timers.ModeRegister), timers.ModeResetAtTarget|timers.ModeIRQAtTarget|timers.ModeRepeat)
	tm.Tick(4)
	test.ExpectEquality(t, len(i.raised), 7)
	test.ExpectEquality(t, i.raised[6], interrupts.Timer0)
}

func TestClockSources(t *testing.T) {
	i := &irq{}
	tm := timers.NewTimers(i, video{})

	tm.WriteRegister(register(0, timers.ModeRegister), 0x100)
	tm.WriteRegister(register(1, timers.ModeRegister), 0x100)
	tm.WriteRegister(register(2, timers.ModeRegister), 0x200)

	// 700 CPU cycles is 1100 GPU cycles
	tm.Tick(700)
	test.ExpectEquality(t, tm.ReadRegister(register(0, timers.CounterRegister)), uint32(110))
	test.ExpectEquality(t, tm.ReadRegister(register(1, timers.CounterRegister)), uint32(11))
	test.ExpectEquality(t, tm.ReadRegister(register(2, timers.CounterRegister)), uint32(87))

	// remainders are carried over
	tm.Tick(4)
	test.ExpectEquality(t, tm.ReadRegister(register(2, timers.CounterRegister)), uint32(88))
}
