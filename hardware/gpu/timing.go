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

package gpu

import (
	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
)

// Video timing in GPU cycles.
const (
	CyclesPerFrame    = 1069484
	CyclesPerScanline = 3406
	CyclesVBlank      = 817440
)

// the GPU clock runs at 11/7 of the CPU clock
const (
	clockNumerator   = 11
	clockDenominator = 7
)

// AppendSyncCycles advances the video timing by the number of CPU cycles. The
// VBlank interrupt is raised and the display presented when the start of
// vertical blank is reached.
func (gpu *GPU) AppendSyncCycles(cpuCycles int) {
	c := cpuCycles*clockNumerator + gpu.remainder
	gpu.cycles += c / clockDenominator
	gpu.remainder = c % clockDenominator

	for {
		if !gpu.vblank && gpu.cycles >= CyclesVBlank {
			gpu.vblank = true
			gpu.irq.Raise(interrupts.VBlank)
			gpu.submit(command.Command{Kind: command.Display}, false)
		}

		if gpu.cycles < CyclesPerFrame {
			return
		}

		gpu.cycles -= CyclesPerFrame
		gpu.vblank = false
		gpu.oddFrame = !gpu.oddFrame
		gpu.frames++

		if gpu.EmulateInterlace && gpu.interlaced {
			gpu.status ^= StatusInterlaceField
		}
	}
}

// Cycles returns the number of GPU cycles since the start of the frame.
func (gpu *GPU) Cycles() int {
	return gpu.cycles
}

// OddFrame returns true if the current frame is odd.
func (gpu *GPU) OddFrame() bool {
	return gpu.oddFrame
}

// DotClock returns the number of dots in the number of GPU cycles.
func (gpu *GPU) DotClock(cycles int) int {
	return cycles / gpu.dotFactor
}

// DotClockRemainder returns the GPU cycles left over by DotClock().
func (gpu *GPU) DotClockRemainder(cycles int) int {
	return cycles % gpu.dotFactor
}

// HBlank returns the number of scanlines in the number of GPU cycles.
func (gpu *GPU) HBlank(cycles int) int {
	return cycles / CyclesPerScanline
}

// HBlankRemainder returns the GPU cycles left over by HBlank().
func (gpu *GPU) HBlankRemainder(cycles int) int {
	return cycles % CyclesPerScanline
}

// IsInHblank returns true if the current position in the scanline is beyond
// the visible width of the display.
func (gpu *GPU) IsInHblank() bool {
	return gpu.DotClock(gpu.HBlankRemainder(gpu.cycles)) > gpu.hres
}

// IsInVblank returns true if the current position in the frame is in the
// vertical blank.
func (gpu *GPU) IsInVblank() bool {
	return gpu.cycles > CyclesVBlank
}
