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

// Package assert contains functions that check the goroutine discipline of
// the emulator. The hardware is single-goroutine except for the rasterizer,
// which owns VRAM. Components that must only be touched by one goroutine
// embed an Owner and call Check() at their entry points.
//
// The checks are only active when the program is built with the "assertions"
// build tag. Otherwise the Owner type is empty and Check() does nothing.
package assert
