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

package hardware

// Step the emulator state one CPU instruction. The other components are
// synchronised if the instruction completes a burst.
func (psx *PSX) Step() {
	psx.CPU.Step()
	psx.cycles += psx.CPU.Cycles() + psx.DMA.Cycles()
	if psx.cycles >= psx.syncCycles {
		psx.sync()
	}
}

// burst runs the CPU until a burst is complete and then synchronises the
// other components.
func (psx *PSX) burst() {
	for psx.cycles < psx.syncCycles {
		psx.CPU.Step()
		psx.cycles += psx.CPU.Cycles() + psx.DMA.Cycles()
	}
	psx.sync()
}

// sync advances the components clocked independently of the CPU.
func (psx *PSX) sync() {
	c := psx.cycles
	psx.cycles = 0
	psx.GPU.AppendSyncCycles(c)
	psx.Timers.Tick(c)
	psx.CDROM.Tick(c)
}
