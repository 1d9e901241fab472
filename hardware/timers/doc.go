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

// Package timers implements the three root counters. Each counter has a
// value, mode and target register. Counters are advanced by Tick() with the
// number of CPU cycles executed and, depending on the clock source selected
// in the mode register, count CPU cycles, dots, scanlines or CPU cycles / 8.
//
// The synchronisation modes selected by bit 0 of the mode register are not
// emulated.
package timers
