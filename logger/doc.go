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

// Package logger is the central log for the emulator. Hardware components
// write to the log with the Log() and Logf() functions, tagging each entry
// with the component name.
//
// Consecutive entries with identical tag and detail are folded into a single
// entry with a repeat count. This stops a misbehaving program from flooding
// the log with the same message once per instruction.
//
// The log can be echoed to an io.Writer as entries are added with SetEcho().
// Echoing is the usual way of seeing log output on the terminal.
//
// Log entries can be gated by a Permission. The Allow permission is always
// granted.
package logger
