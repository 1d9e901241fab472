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

// Bits in the status register.
const (
	StatusTexPage         = 0x000001ff
	StatusDither          = 0x00000200
	StatusDrawToDisplay   = 0x00000400
	StatusSetMask         = 0x00000800
	StatusCheckMask       = 0x00001000
	StatusInterlaceField  = 0x00002000
	StatusReverse         = 0x00004000
	StatusTextureDisable  = 0x00008000
	StatusHRes2           = 0x00010000
	StatusHRes1           = 0x00060000
	StatusVRes            = 0x00080000
	StatusPAL             = 0x00100000
	StatusDisplay24       = 0x00200000
	StatusInterlace       = 0x00400000
	StatusDisplayDisabled = 0x00800000
	StatusIRQ             = 0x01000000
	StatusDMARequest      = 0x02000000
	StatusReadyCommand    = 0x04000000
	StatusReadyVRAMToCPU  = 0x08000000
	StatusReadyDMABlock   = 0x10000000
	StatusDMADirection    = 0x60000000
	StatusOddLine         = 0x80000000
)

// the bits set by GP1(08). bits 0 to 5 of the command go to bits 17 to 22,
// bit 6 goes to bit 16 and bit 7 goes to bit 14
const statusDisplayMode = StatusReverse | StatusHRes2 | StatusHRes1 | StatusVRes | StatusPAL | StatusDisplay24 | StatusInterlace

// ResetStatus is the value of the status register after GP1(00).
const ResetStatus = 0x14902400

// the bits of the status register that are stored. the remaining bits are
// computed when the register is read
const statusStored = ^uint32(StatusDMARequest | StatusReadyCommand | StatusReadyVRAMToCPU | StatusReadyDMABlock | StatusOddLine)

// DMA directions in bits 29 and 30 of the status register.
const (
	DirectionOff = iota
	DirectionFIFO
	DirectionCPUToGP0
	DirectionGPUREADToCPU
)

// Status returns the value of the status register.
func (gpu *GPU) Status() uint32 {
	s := gpu.status & statusStored

	if gpu.transfer != transferUpload {
		s |= StatusReadyCommand
	}
	if gpu.transfer == transferDownload {
		s |= StatusReadyVRAMToCPU
	}
	s |= StatusReadyDMABlock

	switch (s & StatusDMADirection) >> 29 {
	case DirectionFIFO:
		s |= StatusDMARequest
	case DirectionCPUToGP0:
		if s&StatusReadyDMABlock == StatusReadyDMABlock {
			s |= StatusDMARequest
		}
	case DirectionGPUREADToCPU:
		if s&StatusReadyVRAMToCPU == StatusReadyVRAMToCPU {
			s |= StatusDMARequest
		}
	}

	if gpu.oddLine() {
		s |= StatusOddLine
	}

	return s
}

// oddLine returns the state of status bit 31. in 480 line interlaced mode the
// bit alternates every frame. otherwise it alternates every scanline and is
// always clear during vertical blank.
func (gpu *GPU) oddLine() bool {
	if gpu.EmulateInterlace && gpu.vres == 480 {
		return gpu.oddFrame
	}
	if gpu.IsInVblank() {
		return false
	}
	return gpu.HBlank(gpu.cycles)&1 == 1
}

// display mode table. indexed by bits 0 and 1 of GP1(08)
var horizontalResolutions = [4]int{256, 320, 512, 640}

// number of GPU cycles for each dot. indexed in the same way as
// horizontalResolutions
var dotFactors = [4]int{10, 8, 5, 4}

// horizontal resolution and dot factor selected by bit 6 of GP1(08)
const (
	hres368      = 368
	dotFactor368 = 7
)

// setDisplayMode updates the display mode caches from the status register.
func (gpu *GPU) setDisplayMode() {
	if gpu.status&StatusHRes2 == StatusHRes2 {
		gpu.hres = hres368
		gpu.dotFactor = dotFactor368
	} else {
		m := (gpu.status & StatusHRes1) >> 17
		gpu.hres = horizontalResolutions[m]
		gpu.dotFactor = dotFactors[m]
	}

	gpu.interlaced = gpu.status&StatusInterlace == StatusInterlace
	if gpu.status&StatusVRes == StatusVRes && gpu.interlaced {
		gpu.vres = 480
	} else {
		gpu.vres = 240
	}

	gpu.pal = gpu.status&StatusPAL == StatusPAL
	gpu.updateDisplay()
}

// updateDisplay copies the display registers to the drawing state.
func (gpu *GPU) updateDisplay() {
	gpu.config.DisplayX = gpu.displayX
	gpu.config.DisplayY = gpu.displayY
	gpu.config.DisplayWidth = gpu.hres

	// the height of the display is given by the vertical display range. it
	// is doubled in 480 line mode
	h := gpu.displayY2 - gpu.displayY1
	if gpu.vres == 480 {
		h *= 2
	}
	if h <= 0 || h > gpu.vres {
		h = gpu.vres
	}
	gpu.config.DisplayHeight = h

	gpu.config.Display24 = gpu.status&StatusDisplay24 == StatusDisplay24
	gpu.config.DisplayDisabled = gpu.status&StatusDisplayDisabled == StatusDisplayDisabled
}

// Resolution returns the horizontal and vertical resolution of the display.
func (gpu *GPU) Resolution() (int, int) {
	return gpu.hres, gpu.vres
}

// PAL returns true if the video mode is PAL.
func (gpu *GPU) PAL() bool {
	return gpu.pal
}
