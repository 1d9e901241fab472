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

package hardware

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cdrom"
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop2"
	"github.com/jetsetilly/gopherpsx/hardware/dma"
	"github.com/jetsetilly/gopherpsx/hardware/gpu"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/rasterizer"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/vram"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/workqueue"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/hardware/timers"
	"github.com/jetsetilly/gopherpsx/logger"
	"golang.org/x/sync/errgroup"
)

// PSXError is the pattern used for errors returned by NewPSX.
const PSXError = "psx: %v"

// PSX is the root of the emulation. It contains every component of the
// console.
type PSX struct {
	Prefs *preferences.Preferences

	Mem        *memory.Memory
	CPU        *cpu.CPU
	GTE        *cop2.GTE
	DMA        *dma.DMA
	GPU        *gpu.GPU
	Rasterizer *rasterizer.Rasterizer
	Timers     *timers.Timers
	CDROM      *cdrom.CDROM

	queue *workqueue.Queue[command.Command]

	// the goroutine running the rasterizer
	group errgroup.Group

	// CPU cycles since the last synchronisation
	cycles int

	// number of cycles in a burst. taken from the preferences on reset
	syncCycles int

	ended bool
}

func (psx *PSX) String() string {
	return fmt.Sprintf("%s\n%s\n%s", psx.CPU, psx.DMA, psx.GPU)
}

// NewPSX creates a new PSX and everything associated with the hardware. The
// presenter receives a frame every VBlank and can be nil.
//
// The BIOS must be loaded with LoadBIOS() before the emulation is run. End()
// must be called when the PSX is no longer required.
func NewPSX(prefs *preferences.Preferences, presenter rasterizer.Presenter) (*PSX, error) {
	if prefs == nil {
		return nil, curated.Errorf(PSXError, "no preferences")
	}

	psx := &PSX{
		Prefs: prefs,
		Mem:   memory.NewMemory(),
		GTE:   cop2.NewGTE(),
	}

	transfer := vram.NewTransfer()
	psx.queue = workqueue.NewQueue[command.Command](prefs.QueueLength.Get().(int))
	psx.Rasterizer = rasterizer.NewRasterizer(transfer, presenter)
	psx.GPU = gpu.NewGPU(psx.Mem.Interrupts, psx.queue, transfer)
	psx.CDROM = cdrom.NewCDROM(psx.Mem.Interrupts, nil)
	psx.Timers = timers.NewTimers(psx.Mem.Interrupts, psx.GPU)
	psx.DMA = dma.NewDMA(psx.Mem.RAM, psx.GPU, psx.CDROM, psx.Mem.Interrupts)
	psx.Mem.Plumb(psx.DMA, psx.GPU, psx.Timers, psx.CDROM)
	psx.CPU = cpu.NewCPU(psx.Mem, psx.Mem.Interrupts, psx.GTE)

	psx.applyPreferences()

	psx.group.Go(func() error {
		psx.queue.Run(psx.Rasterizer.Execute)
		return nil
	})

	return psx, nil
}

// applyPreferences must not be called while the rasterizer is executing
// commands.
func (psx *PSX) applyPreferences() {
	psx.CPU.UseICache = psx.Prefs.ICache.Get().(bool)
	psx.Rasterizer.AllowDither = psx.Prefs.Dither.Get().(bool)
	psx.GPU.EmulateInterlace = psx.Prefs.Interlace.Get().(bool)
	psx.syncCycles = psx.Prefs.SyncCycles.Get().(int)

	var tty io.Writer
	if psx.Prefs.TTYEcho.Get().(bool) {
		tty = os.Stdout
	}
	psx.Mem.SetTTY(tty)
}

// LoadBIOS copies the BIOS image into memory and resets the console.
func (psx *PSX) LoadBIOS(data []uint8) error {
	if err := psx.Mem.LoadBIOS(data); err != nil {
		return err
	}
	psx.Reset()
	return nil
}

// InsertDisc places a disc in the CD-ROM drive. A nil disc empties the drive.
func (psx *PSX) InsertDisc(disc cdrom.Disc) {
	psx.CDROM.InsertDisc(disc)
}

// Reset the console. The BIOS and the disc are not affected. Preferences are
// applied again.
func (psx *PSX) Reset() {
	psx.Mem.Reset()
	psx.CPU.Reset()
	psx.GTE.Reset()
	psx.DMA.Reset()
	psx.GPU.Reset()
	psx.Timers.Reset()
	psx.CDROM.Reset()
	psx.cycles = 0

	// VRAM belongs to the rasterizer goroutine. the clear is queued behind any
	// outstanding drawing and the rasterizer is idle once it returns
	psx.GPU.ClearVRAM()

	psx.applyPreferences()

	logger.Log(logger.Allow, "psx", "reset")
}

// End the emulation. The rasterizer goroutine is stopped. The PSX must not be
// used after End() has been called.
func (psx *PSX) End() error {
	if psx.ended {
		return nil
	}
	psx.ended = true

	// drawing still in the queue is executed before the rasterizer stops
	psx.GPU.Flush()
	psx.queue.Shutdown()
	return psx.group.Wait()
}

// Frames returns the number of frames completed since the PSX was created.
func (psx *PSX) Frames() int {
	return psx.GPU.Frames()
}
