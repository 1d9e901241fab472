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

// Package prefs facilitates the storage of preferential values in the
// emulator. Values of type Bool, Int, Float and String are collated by a Disk
// instance and saved to a plain text file, one "key :: value" pair per line.
//
// More than one Disk instance can share a single file. Saving a Disk only
// touches the keys it has been told about with Add(). Keys belonging to other
// Disk instances are preserved.
//
// The command line stack allows preferences to be overridden for a single run
// of the program. The values on the stack are consumed as they are used by
// Load().
package prefs
