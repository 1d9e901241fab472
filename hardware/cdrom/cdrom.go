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

package cdrom

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/logger"
)

// InterruptSetter is used by the controller to latch the CD-ROM interrupt.
type InterruptSetter interface {
	SetInterruptNumber(n int)
}

// CDROMInterrupt is the interrupt number used with InterruptSetter.
const CDROMInterrupt = 2

// Interrupt types delivered with a response.
const (
	INT1 = 1 // data ready
	INT2 = 2 // second response
	INT3 = 3 // first response
	INT5 = 5 // error
)

// Bits in the status byte returned by most commands.
const (
	StatError     = 0x01
	StatMotorOn   = 0x02
	StatIDError   = 0x08
	StatShellOpen = 0x10
	StatReading   = 0x20
	StatSeeking   = 0x40
)

// Bits in the mode byte set by the Setmode command.
const (
	ModeDoubleSpeed = 0x80
	ModeWholeSector = 0x20
)

// Timing in CPU cycles.
const (
	responseDelay = 25000
	secondDelay   = 50000
	readPeriod    = 451584
)

// maximum number of bytes in the parameter FIFO.
const fifoLength = 16

type response struct {
	interrupt int
	data      []uint8
	delay     int
}

// CDROM is the CD-ROM controller.
type CDROM struct {
	irq  InterruptSetter
	disc Disc

	index uint8

	params    []uint8
	responses []uint8

	// interrupt enable and flag registers
	enable uint8
	flag   uint8

	// responses waiting to be delivered
	pending []response

	mode     uint8
	setloc   MSF
	position int
	reading  bool
	readWait int

	// the most recently read sector and the data FIFO
	sector []uint8
	data   []uint8
}

func (cd *CDROM) String() string {
	return fmt.Sprintf("CD stat=%02x pos=%d reading=%v", cd.stat(), cd.position, cd.reading)
}

// NewCDROM is the preferred method of initialisation for the CDROM type. The
// disc can be nil.
func NewCDROM(irq InterruptSetter, disc Disc) *CDROM {
	cd := &CDROM{
		irq:  irq,
		disc: disc,
	}
	cd.Reset()
	return cd
}

// Reset the controller.
func (cd *CDROM) Reset() {
	cd.index = 0
	cd.params = cd.params[:0]
	cd.responses = cd.responses[:0]
	cd.enable = 0
	cd.flag = 0
	cd.pending = cd.pending[:0]
	cd.mode = 0
	cd.setloc = MSF{}
	cd.position = 0
	cd.reading = false
	cd.readWait = 0
	cd.sector = make([]uint8, 0, SectorSize)
	cd.data = nil
}

// InsertDisc replaces the disc. A nil disc means the drive is empty.
func (cd *CDROM) InsertDisc(disc Disc) {
	cd.disc = disc
	cd.reading = false
}

// stat returns the status byte.
func (cd *CDROM) stat() uint8 {
	if cd.disc == nil {
		return StatShellOpen
	}
	s := uint8(StatMotorOn)
	if cd.reading {
		s |= StatReading
	}
	return s
}

// ReadPort implements the bus.PortBus interface.
func (cd *CDROM) ReadPort(offset uint32) uint8 {
	switch offset {
	case 0:
		return cd.status()

	case 1:
		if len(cd.responses) == 0 {
			return 0
		}
		v := cd.responses[0]
		cd.responses = cd.responses[1:]
		return v

	case 2:
		var v [1]uint8
		cd.ReadData(v[:])
		return v[0]

	case 3:
		if cd.index&1 == 0 {
			return cd.enable | 0xe0
		}
		return cd.flag | 0xe0
	}

	return 0
}

// status returns the value of the status port.
func (cd *CDROM) status() uint8 {
	v := cd.index & 0x03
	if len(cd.params) == 0 {
		v |= 0x08
	}
	if len(cd.params) < fifoLength {
		v |= 0x10
	}
	if len(cd.responses) > 0 {
		v |= 0x20
	}
	if len(cd.data) > 0 {
		v |= 0x40
	}
	if len(cd.pending) > 0 {
		v |= 0x80
	}
	return v
}

// WritePort implements the bus.PortBus interface.
func (cd *CDROM) WritePort(offset uint32, data uint8) {
	switch offset {
	case 0:
		cd.index = data & 0x03
		return
	}

	switch offset<<4 | uint32(cd.index) {
	case 0x10:
		cd.command(data)

	case 0x20:
		if len(cd.params) < fifoLength {
			cd.params = append(cd.params, data)
		}

	case 0x21:
		cd.enable = data & 0x1f

	case 0x30:
		// request register. bit 7 asks for the sector buffer to be moved to
		// the data FIFO
		if data&0x80 == 0x80 {
			cd.data = cd.sectorData()
		} else {
			cd.data = nil
		}

	case 0x31:
		cd.flag &^= data & 0x1f
		if data&0x40 == 0x40 {
			cd.params = cd.params[:0]
		}

	default:
		// sound map and audio volume registers
	}
}

// sectorData returns the part of the current sector seen in the data FIFO.
func (cd *CDROM) sectorData() []uint8 {
	if len(cd.sector) < SectorSize {
		return nil
	}
	if cd.mode&ModeWholeSector == ModeWholeSector {
		return append([]uint8{}, cd.sector[wholeOffset:wholeOffset+wholeSize]...)
	}
	return append([]uint8{}, cd.sector[dataOffset:dataOffset+DataSize]...)
}

// ReadData fills p from the data FIFO. Bytes beyond the end of the FIFO read
// as zero.
func (cd *CDROM) ReadData(p []uint8) {
	n := copy(p, cd.data)
	cd.data = cd.data[n:]
	clear(p[n:])
}

// Tick advances the controller by the number of CPU cycles.
func (cd *CDROM) Tick(cpuCycles int) {
	// responses are delivered one at a time. the next response waits until the
	// previous interrupt has been acknowledged
	if len(cd.pending) > 0 {
		r := &cd.pending[0]
		r.delay -= cpuCycles
		if r.delay <= 0 && cd.flag&0x07 == 0 {
			cd.deliver(*r)
			cd.pending = cd.pending[1:]
		}
	}

	if cd.reading {
		cd.readWait -= cpuCycles
		if cd.readWait <= 0 {
			cd.readWait += cd.period()
			cd.readSector()
		}
	}
}

// deliver a response to the response FIFO and raise the interrupt.
func (cd *CDROM) deliver(r response) {
	cd.responses = append(cd.responses[:0], r.data...)
	cd.flag = (cd.flag &^ 0x07) | uint8(r.interrupt)
	if cd.enable&cd.flag&0x1f != 0 {
		cd.irq.SetInterruptNumber(CDROMInterrupt)
	}
}

// period returns the number of CPU cycles between sectors.
func (cd *CDROM) period() int {
	if cd.mode&ModeDoubleSpeed == ModeDoubleSpeed {
		return readPeriod / 2
	}
	return readPeriod
}

func (cd *CDROM) readSector() {
	// the previous data ready interrupt has not been acknowledged
	if cd.flag&0x07 != 0 {
		return
	}

	cd.sector = cd.sector[:SectorSize]
	if err := cd.disc.ReadSector(cd.position, cd.sector); err != nil {
		logger.Logf(logger.Allow, "cdrom", "sector %d: %v", cd.position, err)
		cd.reading = false
		cd.respond(INT5, 0, cd.stat()|StatError, 0x04)
		return
	}
	cd.position++

	cd.respond(INT1, 0, cd.stat())
}

// respond queues a response. the delay is in CPU cycles.
func (cd *CDROM) respond(interrupt int, delay int, data ...uint8) {
	cd.pending = append(cd.pending, response{
		interrupt: interrupt,
		data:      data,
		delay:     delay,
	})
}
