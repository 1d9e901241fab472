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

// Package cdrom is a simple model of the CD-ROM controller. It is enough for
// the BIOS to detect the presence or absence of a disc and for software to
// read data sectors with the ReadN and ReadS commands. CD audio and XA audio
// are not supported.
//
// The controller is accessed through four byte ports. The meaning of ports 1
// to 3 depends on the index selected by port 0. Responses are delivered with
// an interrupt after a short delay. A second response is held back until the
// interrupt of the first response has been acknowledged.
package cdrom
