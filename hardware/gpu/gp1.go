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

package gpu

import (
	"github.com/jetsetilly/gopherpsx/logger"
)

// Version is the value returned by the GPU info command for the GPU version.
const Version = 2

// WriteGP1 accepts a control word.
func (gpu *GPU) WriteGP1(data uint32) {
	op := (data >> 24) & 0x3f

	switch op {
	case 0x00:
		gpu.Reset()

	case 0x01:
		gpu.clearFIFO()
		gpu.transfer = transferNone

	case 0x02:
		gpu.status &^= StatusIRQ

	case 0x03:
		gpu.status &^= StatusDisplayDisabled
		if data&0x01 == 0x01 {
			gpu.status |= StatusDisplayDisabled
		}
		gpu.updateDisplay()

	case 0x04:
		gpu.status = (gpu.status &^ StatusDMADirection) | (data&0x03)<<29

	case 0x05:
		gpu.displayX = int(data & 0x3fe)
		gpu.displayY = int((data >> 10) & 0x1ff)
		gpu.updateDisplay()

	case 0x06:
		gpu.displayX1 = int(data & 0xfff)
		gpu.displayX2 = int((data >> 12) & 0xfff)
		gpu.updateDisplay()

	case 0x07:
		gpu.displayY1 = int(data & 0x3ff)
		gpu.displayY2 = int((data >> 10) & 0x3ff)
		gpu.updateDisplay()

	case 0x08:
		mode := (data&0x3f)<<17 | (data&0x40)<<10 | (data&0x80)<<7
		gpu.status = (gpu.status &^ statusDisplayMode) | mode
		gpu.setDisplayMode()

	case 0x09:
		gpu.textureDisable = data&0x01 == 0x01

	default:
		if op >= 0x10 && op <= 0x1f {
			gpu.info(data)
			return
		}
		logger.Logf(logger.Allow, "gpu", "unhandled GP1 command: %08x", data)
	}
}

// info handles GP1(10). the requested value is latched for GPUREAD.
func (gpu *GPU) info(data uint32) {
	switch data & 0x07 {
	case 0x02:
		gpu.latch = gpu.textureWindow
	case 0x03:
		gpu.latch = gpu.drawAreaTL
	case 0x04:
		gpu.latch = gpu.drawAreaBR
	case 0x05:
		gpu.latch = gpu.drawOffset
	case 0x07:
		gpu.latch = Version
	}
}
