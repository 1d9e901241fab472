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

// Package digest is used to create a fingerprint of the emulation's output.
// The fingerprint is useful for regression testing, where the fingerprint of
// a run is compared with the fingerprint of a previous run.
package digest

// Digest implementations compute a fingerprint of the emulation's output.
type Digest interface {
	Hash() string
	ResetDigest()
}
