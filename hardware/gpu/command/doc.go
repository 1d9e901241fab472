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

// Package command defines the GP0 command set of the PSX GPU and the Command
// type that carries a complete command from the GPU front-end to the
// rasterizer.
//
// The Table is indexed by the opcode byte of the first word of a command. Each
// entry gives the kind of command and the number of words in the command,
// including the first word. Poly-lines have a variable length and are
// terminated by a sentinel word.
//
// The Config type is a snapshot of the drawing state taken when a command is
// submitted. The rasterizer only ever uses the snapshot in the command it is
// executing.
package command
