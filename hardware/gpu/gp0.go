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
	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/logger"
)

// WriteGP0 accepts a command or data word.
func (gpu *GPU) WriteGP0(data uint32) {
	if gpu.transfer == transferUpload {
		gpu.upload(data)
		return
	}

	gpu.lineCrit.Lock()
	inPolyLine := gpu.inPolyLine
	gpu.lineCrit.Unlock()
	if inPolyLine {
		gpu.polyLine(data)
		return
	}

	if gpu.fifoLen == 0 {
		gpu.entry = command.Lookup(data)
		if gpu.entry.Kind == command.Invalid {
			logger.Logf(logger.Allow, "gpu", "unknown GP0 command: %08x", data)
			return
		}
	}

	if gpu.fifoLen >= len(gpu.fifo) {
		logger.Logf(logger.Allow, "gpu", "FIFO overflow: %08x", data)
		gpu.clearFIFO()
		return
	}

	gpu.fifo[gpu.fifoLen] = data
	gpu.fifoLen++

	if gpu.fifoLen < gpu.entry.Words {
		return
	}

	var cmd command.Command
	cmd.Kind = gpu.entry.Kind
	cmd.Opcode = uint8(gpu.fifo[0] >> 24)
	cmd.NumWords = copy(cmd.Words[:], gpu.fifo[:gpu.fifoLen])
	gpu.fifoLen = 0

	gpu.execute(cmd)
}

// clearFIFO empties the command FIFO and abandons any poly-line.
func (gpu *GPU) clearFIFO() {
	gpu.fifoLen = 0
	gpu.lineCrit.Lock()
	gpu.inPolyLine = false
	gpu.lines = gpu.lines[:0]
	gpu.lineCrit.Unlock()
}

// FIFOLen returns the number of words in the command FIFO.
func (gpu *GPU) FIFOLen() int {
	return gpu.fifoLen
}

func (gpu *GPU) execute(cmd command.Command) {
	data := cmd.Words[0]

	switch cmd.Kind {
	case command.Nop, command.ClearCache:

	case command.Interrupt:
		gpu.status |= StatusIRQ
		gpu.irq.Raise(interrupts.GPU)

	case command.DrawMode:
		gpu.setDrawMode(data)

	case command.TextureWindow:
		gpu.textureWindow = data & 0xfffff
		gpu.config.WindowMaskX = int(data & 0x1f)
		gpu.config.WindowMaskY = int((data >> 5) & 0x1f)
		gpu.config.WindowOffsetX = int((data >> 10) & 0x1f)
		gpu.config.WindowOffsetY = int((data >> 15) & 0x1f)

	case command.DrawAreaTopLeft:
		gpu.drawAreaTL = data & 0xfffff
		gpu.config.DrawLeft = int(data & 0x3ff)
		gpu.config.DrawTop = int((data >> 10) & 0x1ff)

	case command.DrawAreaBottomRight:
		gpu.drawAreaBR = data & 0xfffff
		gpu.config.DrawRight = int(data & 0x3ff)
		gpu.config.DrawBottom = int((data >> 10) & 0x1ff)

	case command.DrawOffset:
		gpu.drawOffset = data & 0x3fffff
		gpu.config.OffsetX = int(int32(data<<21) >> 21)
		gpu.config.OffsetY = int(int32(data<<10) >> 21)

	case command.MaskSetting:
		gpu.config.SetMask = data&0x01 == 0x01
		gpu.config.CheckMask = data&0x02 == 0x02
		gpu.status = (gpu.status &^ (StatusSetMask | StatusCheckMask)) | (data&0x03)<<11

	case command.Polygon:
		// the texture page of a textured polygon replaces the current page
		if command.Textured(cmd.Opcode) {
			idx := 4
			if command.Gouraud(cmd.Opcode) {
				idx = 5
			}
			gpu.setTexturePage(cmd.Words[idx] >> 16)
		}
		gpu.submit(cmd, false)

	case command.Line, command.Rectangle, command.Fill, command.CopyVRAM:
		gpu.submit(cmd, false)

	case command.PolyLine:
		gpu.lineCrit.Lock()
		gpu.lineCommand = cmd
		gpu.lines = append(gpu.lines[:0], cmd.Words[1:cmd.NumWords]...)
		gpu.inPolyLine = true
		gpu.lineCrit.Unlock()

	case command.Upload:
		gpu.transferCommand = cmd
		w, h := command.TransferSize(cmd.Words[2])
		gpu.transferIndex = 0
		gpu.transferLength = w * h
		gpu.transfer = transferUpload

	case command.Download:
		w, h := command.TransferSize(cmd.Words[2])
		gpu.submit(cmd, true)
		gpu.transferIndex = 0
		gpu.transferLength = w * h
		gpu.transfer = transferDownload

	default:
		logger.Logf(logger.Allow, "gpu", "unhandled GP0 command: %s", cmd)
	}
}

// polyLine adds a word to the poly-line accumulator. the accumulated line is
// submitted when the terminator is received.
func (gpu *GPU) polyLine(data uint32) {
	gpu.lineCrit.Lock()
	defer gpu.lineCrit.Unlock()

	if !command.IsTerminator(data) {
		gpu.lines = append(gpu.lines, data)
		return
	}

	cmd := gpu.lineCommand
	cmd.Lines = make([]uint32, len(gpu.lines))
	copy(cmd.Lines, gpu.lines)
	gpu.lines = gpu.lines[:0]
	gpu.inPolyLine = false

	gpu.submit(cmd, false)
}

// upload packs a data word into the transfer buffer. the upload command is
// submitted when the last word has been received.
func (gpu *GPU) upload(data uint32) {
	gpu.buffer.StoreWord(gpu.transferIndex, data)
	gpu.transferIndex += 2
	if gpu.transferIndex < gpu.transferLength {
		return
	}

	gpu.transfer = transferNone

	// the transfer buffer is reused by the next upload so the command must
	// complete before the front-end continues
	gpu.submit(gpu.transferCommand, true)
}

// setDrawMode handles GP0(E1).
func (gpu *GPU) setDrawMode(data uint32) {
	gpu.setTexturePage(data)

	gpu.config.Dither = data&0x200 == 0x200
	gpu.config.DrawToDisplay = data&0x400 == 0x400
	gpu.config.FlipX = data&0x1000 == 0x1000
	gpu.config.FlipY = data&0x2000 == 0x2000

	gpu.status = (gpu.status &^ (StatusDither | StatusDrawToDisplay | StatusTextureDisable)) | data&(StatusDither|StatusDrawToDisplay)

	// texture disable is only possible after GP1(09)
	gpu.config.TextureDisable = gpu.textureDisable && data&0x800 == 0x800
	if gpu.config.TextureDisable {
		gpu.status |= StatusTextureDisable
	}
}

// setTexturePage updates the texture page from the low 9 bits of GP0(E1) or
// from the texture page attribute of a textured polygon.
func (gpu *GPU) setTexturePage(data uint32) {
	gpu.config.TexPageX = int(data&0x0f) * 64
	gpu.config.TexPageY = int((data>>4)&0x01) * 256
	gpu.config.SemiMode = int((data >> 5) & 0x03)
	gpu.config.TextureDepth = int((data >> 7) & 0x03)
	gpu.status = (gpu.status &^ StatusTexPage) | data&StatusTexPage
}
