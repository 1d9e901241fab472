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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/memory/interrupts"
)

// registers is the view of the console drawn by Memviz(). the large memory
// areas are not included.
type registers struct {
	PC   uint32
	HI   uint32
	LO   uint32
	GPR  [32]uint32
	Cop0 *cop0.Cop0

	Interrupts *interrupts.Controller

	GPUSTAT uint32
	DMA     string
	Timers  string
	CDROM   string
	Frames  int
}

// Memviz writes a graph of the console registers in the dot format.
func (psx *PSX) Memviz(w io.Writer) {
	r := &registers{
		PC:         psx.CPU.PC,
		HI:         psx.CPU.HI,
		LO:         psx.CPU.LO,
		Cop0:       psx.CPU.Cop0,
		Interrupts: psx.Mem.Interrupts,
		GPUSTAT:    psx.GPU.Status(),
		DMA:        psx.DMA.String(),
		Timers:     psx.Timers.String(),
		CDROM:      psx.CDROM.String(),
		Frames:     psx.GPU.Frames(),
	}
	for i := range r.GPR {
		r.GPR[i] = psx.CPU.Reg(i)
	}
	memviz.Map(w, r)
}
