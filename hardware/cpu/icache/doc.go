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

// Package icache implements the 4KB instruction cache of the R3051. The cache
// is direct mapped with 256 lines of 16 bytes. The line index is taken from
// bits 4 to 11 of the physical address and the tag from bits 12 to 31.
//
// Lines are filled from the interconnect with Refill(). When the data cache is
// isolated (status bit 16 in cop0) the BIOS uses word stores to invalidate
// cache lines. Those stores are routed to WriteWord() and WriteUint8() by the
// CPU.
package icache
