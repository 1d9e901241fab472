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

//go:build !assertions

package assert

// Owner is empty when the assertions build tag is not present.
type Owner struct{}

// Check does nothing when the assertions build tag is not present.
func (o *Owner) Check(_ string) {}

// Release does nothing when the assertions build tag is not present.
func (o *Owner) Release() {}
