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

import "fmt"

// Channel is one of the seven DMA channels.
type Channel int

// List of valid Channel values.
const (
	MDECin Channel = iota
	MDECout
	GPU
	CDROM
	SPU
	PIO
	OTC
	NumChannels
)

func (ch Channel) String() string {
	switch ch {
	case MDECin:
		return "MDECin"
	case MDECout:
		return "MDECout"
	case GPU:
		return "GPU"
	case CDROM:
		return "CDROM"
	case SPU:
		return "SPU"
	case PIO:
		return "PIO"
	case OTC:
		return "OTC"
	}
	return fmt.Sprintf("channel %d", int(ch))
}

// Sync mode of a channel.
type Sync int

// List of valid Sync values.
const (
	Burst      Sync = 0
	Block      Sync = 1
	LinkedList Sync = 2
)

func (s Sync) String() string {
	switch s {
	case Burst:
		return "burst"
	case Block:
		return "block"
	case LinkedList:
		return "linked list"
	}
	return "reserved"
}

// channel control register bits.
const (
	controlFromRAM  = 1 << 0
	controlBackward = 1 << 1
	controlChopping = 1 << 8
	controlBusy     = 1 << 24
	controlTrigger  = 1 << 28

	// the writable bits of the channel control register
	controlMask = 0x71770703

	// the OTC channel only has the start bits and the unused bit 30. the step
	// direction is always backwards
	controlMaskOTC = 0x51000000
)

// registers of a single channel.
type registers struct {
	base    uint32
	block   uint32
	control uint32
}

func (r registers) sync() Sync {
	return Sync((r.control >> 9) & 3)
}

func (r registers) fromRAM() bool {
	return r.control&controlFromRAM == controlFromRAM
}

func (r registers) step() uint32 {
	if r.control&controlBackward == controlBackward {
		return 0xfffffffc
	}
	return 4
}

// active returns true if the start condition for the channel holds. in burst
// mode the trigger bit must also be set.
func (r registers) active() bool {
	if r.sync() == Burst {
		return r.control&(controlBusy|controlTrigger) == controlBusy|controlTrigger
	}
	return r.control&controlBusy == controlBusy
}

// words returns the number of words to transfer in burst and block mode. a
// size of zero is the maximum size.
func (r registers) words() uint32 {
	size := r.block & 0xffff
	if size == 0 {
		size = 0x10000
	}
	if r.sync() == Block {
		return size * (r.block >> 16)
	}
	return size
}
