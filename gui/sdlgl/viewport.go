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

package sdlgl

// viewport returns the largest 4:3 rectangle that fits in a drawable of the
// specified size. The rectangle is centred.
func viewport(w, h int32) (x, y, vw, vh int32) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0
	}

	vw = w
	vh = w * 3 / 4
	if vh > h {
		vh = h
		vw = h * 4 / 3
	}

	return (w - vw) / 2, (h - vh) / 2, vw, vh
}
