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
	"fmt"
	"sync"

	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/vram"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/workqueue"
	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/logger"
)

// InterruptRaiser is used by the GPU to raise the GPU and VBlank interrupts.
type InterruptRaiser interface {
	Raise(src interrupts.Source)
}

// Port offsets from the origin of the GPU area.
const (
	GP0 = 0x0
	GP1 = 0x4
)

// FIFOLength is the number of words in the command FIFO.
const FIFOLength = 16

type transferMode int

const (
	transferNone transferMode = iota
	transferUpload
	transferDownload
)

// GPU is the front-end of the graphics processor.
type GPU struct {
	irq      InterruptRaiser
	queue    *workqueue.Queue[command.Command]
	buffer   *vram.Transfer
	transfer transferMode

	// stored bits of the status register
	status uint32

	// the drawing state copied into every submitted command
	config command.Config

	fifo    [FIFOLength]uint32
	fifoLen int
	entry   command.Entry

	// words of the poly-line being accumulated. the accumulator persists
	// over many writes to GP0 so it is protected separately
	lineCrit    sync.Mutex
	lines       []uint32
	inPolyLine  bool
	lineCommand command.Command

	// the command that started the current upload or download
	transferCommand command.Command
	transferIndex   int
	transferLength  int

	// value returned by GPUREAD when no download is in progress
	latch uint32

	// raw values of the E2 to E5 commands for GP1(10)
	textureWindow  uint32
	drawAreaTL     uint32
	drawAreaBR     uint32
	drawOffset     uint32
	textureDisable bool

	// display registers
	displayX  int
	displayY  int
	displayX1 int
	displayX2 int
	displayY1 int
	displayY2 int

	// display mode caches updated by setDisplayMode()
	hres       int
	vres       int
	dotFactor  int
	interlaced bool
	pal        bool

	// GPU cycles since the start of the frame
	cycles int

	// CPU cycles that have not yet been converted to GPU cycles
	remainder int

	// the VBlank interrupt has been raised for the current frame
	vblank bool

	oddFrame bool
	frames   int

	// emulate the alternating fields of interlaced display modes
	EmulateInterlace bool
}

func (gpu *GPU) String() string {
	return fmt.Sprintf("GPUSTAT=%08x %dx%d frame=%d", gpu.Status(), gpu.hres, gpu.vres, gpu.frames)
}

// NewGPU is the preferred method of initialisation for the GPU type. The
// queue is consumed by a rasterizer sharing the same vram.Transfer buffer.
func NewGPU(irq InterruptRaiser, queue *workqueue.Queue[command.Command], buffer *vram.Transfer) *GPU {
	gpu := &GPU{
		irq:              irq,
		queue:            queue,
		buffer:           buffer,
		EmulateInterlace: true,
	}
	gpu.Reset()
	return gpu
}

// Reset the GPU to the state after GP1(00).
func (gpu *GPU) Reset() {
	gpu.status = ResetStatus & statusStored
	gpu.config = command.Config{DrawToDisplay: true}
	gpu.clearFIFO()
	gpu.transfer = transferNone
	gpu.latch = 0
	gpu.textureWindow = 0
	gpu.drawAreaTL = 0
	gpu.drawAreaBR = 0
	gpu.drawOffset = 0
	gpu.textureDisable = false
	gpu.displayX = 0
	gpu.displayY = 0
	gpu.displayX1 = 0x200
	gpu.displayX2 = 0xc00
	gpu.displayY1 = 0x10
	gpu.displayY2 = 0x100
	gpu.setDisplayMode()
}

// Frames returns the number of frames since the GPU was created.
func (gpu *GPU) Frames() int {
	return gpu.frames
}

// Config returns a copy of the current drawing state.
func (gpu *GPU) Config() command.Config {
	return gpu.config
}

// ReadRegister implements the bus.RegisterBus interface.
func (gpu *GPU) ReadRegister(offset uint32) uint32 {
	switch offset {
	case GP0:
		return gpu.ReadGPU()
	case GP1:
		return gpu.Status()
	}
	return 0
}

// WriteRegister implements the bus.RegisterBus interface.
func (gpu *GPU) WriteRegister(offset uint32, data uint32) {
	switch offset {
	case GP0:
		gpu.WriteGP0(data)
	case GP1:
		gpu.WriteGP1(data)
	}
}

// ReadGPU returns the next word of a download or, if no download is in
// progress, the value latched by GP1(10).
func (gpu *GPU) ReadGPU() uint32 {
	if gpu.transfer != transferDownload {
		return gpu.latch
	}

	v := gpu.buffer.LoadWord(gpu.transferIndex)
	gpu.transferIndex += 2
	if gpu.transferIndex >= gpu.transferLength {
		gpu.transfer = transferNone
	}
	return v
}

// Flush waits until every command submitted so far has been executed.
func (gpu *GPU) Flush() {
	gpu.submit(command.Command{Kind: command.Nop}, true)
}

// ClearVRAM zeroes every pixel in VRAM. The function waits until the
// rasterizer has executed the clear.
func (gpu *GPU) ClearVRAM() {
	gpu.submit(command.Command{Kind: command.ClearVRAM}, true)
}

// submit a command to the work queue with a copy of the drawing state.
func (gpu *GPU) submit(cmd command.Command, waitForCompletion bool) {
	cmd.Config = gpu.config
	if err := gpu.queue.Add(cmd, waitForCompletion); err != nil {
		logger.Logf(logger.Allow, "gpu", "%s not submitted: %v", cmd, err)
	}
}
