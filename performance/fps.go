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

package performance

// refresh rates of the two video modes.
const (
	RefreshNTSC = 59.94
	RefreshPAL  = 50.0
)

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage.
func CalcFPS(pal bool, numFrames int, duration float64) (fps float64, accuracy float64) {
	refresh := RefreshNTSC
	if pal {
		refresh = RefreshPAL
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * float64(numFrames) / (duration * refresh)
	return fps, accuracy
}
