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

// Package cop0 implements the system control coprocessor of the R3051. It
// holds the status, cause and exception PC registers and answers the questions
// the CPU asks before every memory access: what is the physical address, is it
// cacheable, is the access allowed and is the data cache isolated.
//
// Exceptions are entered with EnterException(). The function updates the
// status and cause registers and returns the address of the exception
// handler. The RFE instruction is implemented by ReturnFromException().
package cop0
