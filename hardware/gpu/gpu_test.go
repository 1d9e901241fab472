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

package gpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/gpu"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/rasterizer"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/vram"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/workqueue"
	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
	"github.com/jetsetilly/gopherpsx/test"
)

// irq records every interrupt raised.
type irq struct {
	raised []interrupts.Source
}

func (i *irq) Raise(src interrupts.Source) {
	i.raised = append(i.raised, src)
}

func newTestGPU(t *testing.T) (*gpu.GPU, *rasterizer.Rasterizer, *irq) {
	t.Helper()

	q := workqueue.NewQueue[command.Command](8)
	tr := vram.NewTransfer()
	r := rasterizer.NewRasterizer(tr, nil)
	go q.Run(r.Execute)
	t.Cleanup(q.Shutdown)

	i := &irq{}
	return gpu.NewGPU(i, q, tr), r, i
}

func xy(x, y int) uint32 {
	return uint32(uint16(x)) | uint32(uint16(y))<<16
}

// set the drawing area to the whole of VRAM
func drawEverywhere(g *gpu.GPU) {
	g.WriteGP0(0xe3000000)
	g.WriteGP0(0xe4000000 | 1023 | 511<<10)
}

func TestReset(t *testing.T) {
	g, _, _ := newTestGPU(t)

	g.WriteGP0(0xe6000003)
	g.WriteGP1(0x08000001)
	g.WriteGP0(0x20000000)
	test.ExpectEquality(t, g.FIFOLen(), 1)

	g.WriteGP1(0x00000000)
	s := g.Status()
	test.ExpectEquality(t, s, uint32(gpu.ResetStatus))
	test.ExpectEquality(t, s&gpu.StatusDrawToDisplay, uint32(gpu.StatusDrawToDisplay))
	test.ExpectEquality(t, s&(gpu.StatusSetMask|gpu.StatusCheckMask), uint32(0))
	test.ExpectEquality(t, (s>>14)&0x3ff, uint32(0x240))
	test.ExpectEquality(t, s&gpu.StatusReadyCommand, uint32(gpu.StatusReadyCommand))
	test.ExpectEquality(t, s&gpu.StatusReadyDMABlock, uint32(gpu.StatusReadyDMABlock))
	test.ExpectEquality(t, s&gpu.StatusReadyVRAMToCPU, uint32(0))
	test.ExpectEquality(t, g.FIFOLen(), 0)

	w, h := g.Resolution()
	test.ExpectEquality(t, w, 256)
	test.ExpectEquality(t, h, 240)
	test.ExpectSuccess(t, g.PAL())
}

func TestClearFIFO(t *testing.T) {
	g, _, _ := newTestGPU(t)

	g.WriteGP0(0x28000000)
	g.WriteGP0(xy(0, 0))
	test.ExpectEquality(t, g.FIFOLen(), 2)
	g.WriteGP1(0x01000000)
	test.ExpectEquality(t, g.FIFOLen(), 0)
	test.ExpectEquality(t, g.Status()&gpu.StatusReadyCommand, uint32(gpu.StatusReadyCommand))

	// an upload in progress is abandoned
	g.WriteGP0(0xa0000000)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(xy(16, 16))
	test.ExpectEquality(t, g.Status()&gpu.StatusReadyCommand, uint32(0))
	g.WriteGP1(0x01000000)
	test.ExpectEquality(t, g.Status()&gpu.StatusReadyCommand, uint32(gpu.StatusReadyCommand))
}

func TestUploadDownload(t *testing.T) {
	g, r, _ := newTestGPU(t)

	g.WriteGP0(0xa0000000)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(xy(2, 2))
	test.ExpectEquality(t, g.Status()&gpu.StatusReadyCommand, uint32(0))
	g.WriteGP0(0x7c1f03e0)
	g.WriteGP0(0x001f7c00)
	test.ExpectEquality(t, g.Status()&gpu.StatusReadyCommand, uint32(gpu.StatusReadyCommand))

	g.WriteGP0(0xc0000000)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(xy(2, 2))
	test.ExpectEquality(t, g.Status()&gpu.StatusReadyVRAMToCPU, uint32(gpu.StatusReadyVRAMToCPU))
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(0x7c1f03e0))
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(0x001f7c00))
	test.ExpectEquality(t, g.Status()&gpu.StatusReadyVRAMToCPU, uint32(0))

	g.Flush()
	test.ExpectEquality(t, r.VRAM.Get(1, 0), vram.Pixel(0x7c1f))
	test.ExpectEquality(t, r.VRAM.Get(0, 1), vram.Pixel(0x7c00))
}

func TestClearVRAM(t *testing.T) {
	g, r, _ := newTestGPU(t)

	// fill is not waited for. the clear is queued behind it
	g.WriteGP0(0x020000ff)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(xy(16, 1))
	g.ClearVRAM()
	test.ExpectEquality(t, r.VRAM.Get(0, 0), vram.Pixel(0))

	g.WriteGP0(0x020000ff)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(xy(16, 1))
	g.Flush()
	test.ExpectEquality(t, r.VRAM.Get(0, 0), vram.NewPixel(31, 0, 0, false))
}

func TestDrawingState(t *testing.T) {
	g, _, _ := newTestGPU(t)

	g.WriteGP0(0xe100033f)
	cfg := g.Config()
	test.ExpectEquality(t, cfg.TexPageX, 960)
	test.ExpectEquality(t, cfg.TexPageY, 256)
	test.ExpectEquality(t, cfg.SemiMode, 1)
	test.ExpectEquality(t, cfg.TextureDepth, 2)
	test.ExpectSuccess(t, cfg.Dither)
	test.ExpectFailure(t, cfg.DrawToDisplay)
	test.ExpectEquality(t, g.Status()&0x7ff, uint32(0x33f))

	// texture disable needs GP1(09)
	g.WriteGP0(0xe1000800)
	test.ExpectFailure(t, g.Config().TextureDisable)
	g.WriteGP1(0x09000001)
	g.WriteGP0(0xe1000800)
	test.ExpectSuccess(t, g.Config().TextureDisable)
	test.ExpectEquality(t, g.Status()&gpu.StatusTextureDisable, uint32(gpu.StatusTextureDisable))

	g.WriteGP0(0xe2000000 | 0x03 | 0x04<<5 | 0x05<<10 | 0x06<<15)
	cfg = g.Config()
	test.ExpectEquality(t, cfg.WindowMaskX, 3)
	test.ExpectEquality(t, cfg.WindowMaskY, 4)
	test.ExpectEquality(t, cfg.WindowOffsetX, 5)
	test.ExpectEquality(t, cfg.WindowOffsetY, 6)

	g.WriteGP0(0xe3000000 | 10 | 20<<10)
	g.WriteGP0(0xe4000000 | 300 | 200<<10)
	cfg = g.Config()
	test.ExpectEquality(t, cfg.DrawLeft, 10)
	test.ExpectEquality(t, cfg.DrawTop, 20)
	test.ExpectEquality(t, cfg.DrawRight, 300)
	test.ExpectEquality(t, cfg.DrawBottom, 200)

	// offset of (-1, 2)
	g.WriteGP0(0xe5000000 | 0x7ff | 2<<11)
	cfg = g.Config()
	test.ExpectEquality(t, cfg.OffsetX, -1)
	test.ExpectEquality(t, cfg.OffsetY, 2)

	g.WriteGP0(0xe6000003)
	cfg = g.Config()
	test.ExpectSuccess(t, cfg.SetMask)
	test.ExpectSuccess(t, cfg.CheckMask)
	test.ExpectEquality(t, g.Status()&(gpu.StatusSetMask|gpu.StatusCheckMask), uint32(gpu.StatusSetMask|gpu.StatusCheckMask))

	// the texture page attribute of a textured polygon replaces the page
	g.WriteGP0(0x24808080)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(0)
	g.WriteGP0(xy(1, 0))
	g.WriteGP0(0x00010000)
	g.WriteGP0(xy(0, 1))
	g.WriteGP0(0)
	test.ExpectEquality(t, g.Config().TexPageX, 64)
	test.ExpectEquality(t, g.Config().TexPageY, 0)
}

func TestInfo(t *testing.T) {
	g, _, _ := newTestGPU(t)

	g.WriteGP1(0x10000007)
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(gpu.Version))

	g.WriteGP0(0xe2012345)
	g.WriteGP1(0x10000002)
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(0x12345))

	g.WriteGP0(0xe3000000 | 10 | 20<<10)
	g.WriteGP1(0x10000003)
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(10|20<<10))

	g.WriteGP0(0xe4000000 | 30 | 40<<10)
	g.WriteGP1(0x10000004)
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(30|40<<10))

	g.WriteGP0(0xe5000000 | 0x7ff | 2<<11)
	g.WriteGP1(0x10000005)
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(0x7ff|2<<11))

	// unsupported info values leave the latch unchanged
	g.WriteGP1(0x10000000)
	test.ExpectEquality(t, g.ReadRegister(gpu.GP0), uint32(0x7ff|2<<11))
}

func TestInterrupt(t *testing.T) {
	g, _, i := newTestGPU(t)

	g.WriteGP0(0x1f000000)
	test.ExpectEquality(t, g.Status()&gpu.StatusIRQ, uint32(gpu.StatusIRQ))
	test.DemandEquality(t, len(i.raised), 1)
	test.ExpectEquality(t, i.raised[0], interrupts.GPU)

	g.WriteGP1(0x02000000)
	test.ExpectEquality(t, g.Status()&gpu.StatusIRQ, uint32(0))
}

func TestDrawing(t *testing.T) {
	g, r, _ := newTestGPU(t)
	drawEverywhere(g)

	g.WriteGP0(0x680000ff)
	g.WriteGP0(xy(5, 5))

	// drawing commands are not executed until the queue reaches them. the
	// drawing state at the time of submission is used
	g.WriteGP0(0xe6000001)
	g.WriteGP0(0x6800ff00)
	g.WriteGP0(xy(6, 5))

	g.Flush()
	test.ExpectEquality(t, r.VRAM.Get(5, 5), vram.NewPixel(31, 0, 0, false))
	test.ExpectEquality(t, r.VRAM.Get(6, 5), vram.NewPixel(0, 31, 0, true))
}

func TestPolyLine(t *testing.T) {
	g, r, _ := newTestGPU(t)
	drawEverywhere(g)

	g.WriteGP0(0x480000ff)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(xy(2, 0))
	test.ExpectEquality(t, g.FIFOLen(), 0)
	g.WriteGP0(xy(2, 2))
	g.WriteGP0(0x55555555)

	// the next command is a normal command
	g.WriteGP0(0x680000ff)
	g.WriteGP0(xy(10, 10))

	g.Flush()
	red := vram.NewPixel(31, 0, 0, false)
	test.ExpectEquality(t, r.VRAM.Get(0, 0), red)
	test.ExpectEquality(t, r.VRAM.Get(2, 0), red)
	test.ExpectEquality(t, r.VRAM.Get(2, 1), red)
	test.ExpectEquality(t, r.VRAM.Get(2, 2), red)
	test.ExpectEquality(t, r.VRAM.Get(3, 3), vram.Pixel(0))
	test.ExpectEquality(t, r.VRAM.Get(10, 10), red)

	// the alternative terminator
	g.WriteGP0(0x4800ff00)
	g.WriteGP0(xy(0, 4))
	g.WriteGP0(xy(4, 4))
	g.WriteGP0(0x50005000)
	g.Flush()
	test.ExpectEquality(t, r.VRAM.Get(4, 4), vram.NewPixel(0, 31, 0, false))
}

func TestDisplayMode(t *testing.T) {
	g, _, _ := newTestGPU(t)

	for _, tc := range []struct {
		mode uint32
		w    int
		h    int
	}{
		{mode: 0x00, w: 256, h: 240},
		{mode: 0x01, w: 320, h: 240},
		{mode: 0x02, w: 512, h: 240},
		{mode: 0x03, w: 640, h: 240},
		{mode: 0x40, w: 368, h: 240},
		{mode: 0x04, w: 256, h: 240},
		{mode: 0x24, w: 256, h: 480},
	} {
		g.WriteGP1(0x08000000 | tc.mode)
		w, h := g.Resolution()
		test.ExpectEquality(t, w, tc.w, tc.mode)
		test.ExpectEquality(t, h, tc.h, tc.mode)
	}

	g.WriteGP1(0x080000ff)
	test.ExpectEquality(t, g.Status()&0x007f4000, uint32(0x007f4000))
	g.WriteGP1(0x08000000)
	test.ExpectEquality(t, g.Status()&0x007f4000, uint32(0))
}

func TestDMARequest(t *testing.T) {
	g, _, _ := newTestGPU(t)

	test.ExpectEquality(t, g.Status()&gpu.StatusDMARequest, uint32(0))

	g.WriteGP1(0x04000001)
	test.ExpectEquality(t, g.Status()&gpu.StatusDMARequest, uint32(gpu.StatusDMARequest))

	g.WriteGP1(0x04000002)
	test.ExpectEquality(t, g.Status()&gpu.StatusDMADirection, uint32(gpu.DirectionCPUToGP0<<29))
	test.ExpectEquality(t, g.Status()&gpu.StatusDMARequest, uint32(gpu.StatusDMARequest))

	// GPUREAD to CPU requests only while there is data to read
	g.WriteGP1(0x04000003)
	test.ExpectEquality(t, g.Status()&gpu.StatusDMARequest, uint32(0))
	g.WriteGP0(0xc0000000)
	g.WriteGP0(xy(0, 0))
	g.WriteGP0(xy(2, 1))
	test.ExpectEquality(t, g.Status()&gpu.StatusDMARequest, uint32(gpu.StatusDMARequest))
	g.ReadGPU()
	test.ExpectEquality(t, g.Status()&gpu.StatusDMARequest, uint32(0))
}

// number of CPU cycles that advance the GPU by exactly one frame
const cpuCyclesPerFrame = 680581

func TestFrames(t *testing.T) {
	g, _, i := newTestGPU(t)

	// up to the start of vertical blank
	g.AppendSyncCycles(520190)
	test.ExpectSuccess(t, g.IsInVblank())
	test.ExpectEquality(t, g.Frames(), 0)
	test.DemandEquality(t, len(i.raised), 1)
	test.ExpectEquality(t, i.raised[0], interrupts.VBlank)

	// the VBlank interrupt is raised once per frame
	g.AppendSyncCycles(1000)
	test.ExpectEquality(t, len(i.raised), 1)

	g = gpu.NewGPU(i, workqueue.NewQueue[command.Command](8), vram.NewTransfer())
	i.raised = i.raised[:0]

	test.ExpectFailure(t, g.OddFrame())
	g.AppendSyncCycles(cpuCyclesPerFrame)
	test.ExpectEquality(t, g.Frames(), 1)
	test.ExpectSuccess(t, g.OddFrame())
	test.ExpectEquality(t, len(i.raised), 1)

	g.AppendSyncCycles(cpuCyclesPerFrame)
	test.ExpectEquality(t, g.Frames(), 2)
	test.ExpectFailure(t, g.OddFrame())
	test.ExpectEquality(t, len(i.raised), 2)

	// more than one frame in a single call
	g.AppendSyncCycles(cpuCyclesPerFrame * 3)
	test.ExpectEquality(t, g.Frames(), 5)
	test.ExpectSuccess(t, g.OddFrame())
	test.ExpectEquality(t, len(i.raised), 5)
}

func TestPresent(t *testing.T) {
	g, r, _ := newTestGPU(t)

	g.AppendSyncCycles(cpuCyclesPerFrame * 2)
	g.Flush()
	test.ExpectEquality(t, r.Frames.Load(), uint64(2))
}

func TestTiming(t *testing.T) {
	g, _, _ := newTestGPU(t)

	test.ExpectEquality(t, g.DotClock(100), 10)
	test.ExpectEquality(t, g.DotClockRemainder(105), 5)
	test.ExpectEquality(t, g.HBlank(gpu.CyclesPerScanline*2+5), 2)
	test.ExpectEquality(t, g.HBlankRemainder(gpu.CyclesPerScanline*2+5), 5)

	g.AppendSyncCycles(1000)
	test.ExpectEquality(t, g.Cycles(), 1571)
	test.ExpectFailure(t, g.IsInHblank())
	test.ExpectFailure(t, g.IsInVblank())

	g.AppendSyncCycles(910)
	test.ExpectEquality(t, g.Cycles(), 3001)
	test.ExpectSuccess(t, g.IsInHblank())
}
