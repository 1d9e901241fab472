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

package dma

import (
	"github.com/jetsetilly/gopherpsx/logger"
)

// the end of a linked list and the end of an ordering table
const endOfList = 0x00ffffff

// a linked list longer than this is assumed to be a loop
const maxLinkedListNodes = 0x100000

func (dma *DMA) transfer(ch Channel) {
	r := dma.channels[ch]

	switch r.sync() {
	case Burst:
		switch {
		case ch == OTC && !r.fromRAM():
			dma.orderingTable(r)
			return
		case ch == CDROM && !r.fromRAM():
			dma.cdromBurst(r)
			return
		}
	case Block:
		if ch == GPU {
			dma.gpuBlock(r)
			return
		}
	case LinkedList:
		if ch == GPU && r.fromRAM() {
			dma.gpuLinkedList(r)
			return
		}
	}

	logger.Logf(logger.Allow, "dma", "unsupported transfer: %s %s (control %08x)", ch, r.sync(), r.control)
}

// orderingTable clears an ordering table in RAM. each entry points to the
// previous word in memory and the last entry marks the end of the list.
func (dma *DMA) orderingTable(r registers) {
	address := r.base & addressMask
	n := r.words()

	for i := uint32(0); i < n; i++ {
		v := (address - 4) & 0x001fffff
		if i == n-1 {
			v = endOfList
		}
		dma.mem.Write32(address, v)
		address = (address - 4) & addressMask
	}

	dma.cycles += int(n)
}

func (dma *DMA) cdromBurst(r registers) {
	n := r.words()
	address := r.base & addressMask

	if cap(dma.buffer) < int(n*4) {
		dma.buffer = make([]uint8, n*4)
	}
	buf := dma.buffer[:n*4]

	if dma.cdrom != nil {
		dma.cdrom.ReadData(buf)
	} else {
		clear(buf)
	}

	if r.step() == 4 {
		// the RAM area wraps the copy if necessary
		dma.mem.WriteBlock(address, buf)
	} else {
		for i := uint32(0); i < n; i++ {
			w := uint32(buf[i*4]) | uint32(buf[i*4+1])<<8 | uint32(buf[i*4+2])<<16 | uint32(buf[i*4+3])<<24
			dma.mem.Write32(address, w)
			address = (address + r.step()) & addressMask
		}
	}

	dma.cycles += int(n)
}

func (dma *DMA) gpuBlock(r registers) {
	n := r.words()
	address := r.base & addressMask

	for i := uint32(0); i < n; i++ {
		if r.fromRAM() {
			dma.gpu.WriteGP0(dma.mem.Read32(address))
		} else {
			dma.mem.Write32(address, dma.gpu.ReadGPU())
		}
		address = (address + r.step()) & addressMask
	}

	dma.cycles += int(n)
}

// gpuLinkedList sends a linked list of GPU command packets to GP0. the top
// byte of the header word is the number of words in the packet. the remaining
// bits are the address of the next header.
func (dma *DMA) gpuLinkedList(r registers) {
	address := r.base & addressMask

	for node := 0; ; node++ {
		if node >= maxLinkedListNodes {
			logger.Logf(logger.Allow, "dma", "linked list at %08x does not terminate", r.base)
			return
		}

		header := dma.mem.Read32(address)
		count := header >> 24

		for i := uint32(1); i <= count; i++ {
			dma.gpu.WriteGP0(dma.mem.Read32((address + i*4) & addressMask))
		}
		dma.cycles += int(count) + 1

		// only bit 23 is tested by the hardware
		if header&0x00800000 != 0 {
			return
		}
		address = header & addressMask
	}
}
