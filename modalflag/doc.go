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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Rather than calling Parse() with the list of arguments, the arguments are
// given to NewArgs() and Parse() is called with no arguments. This allows the
// argument list to be parsed in stages, one for each level of mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		bios := md.AddString("bios", "", "path to BIOS image")
//		...
//	}
//
// The first sub-mode in the list is the default mode. It is used when the
// next argument does not name a mode. Sub-mode comparisons are case
// insensitive.
//
// Non-flag arguments remaining after a Parse() can be retrieved with the
// RemainingArgs() and GetArg() functions.
package modalflag
