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

package cdrom_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cdrom"
	"github.com/jetsetilly/gopherpsx/test"
)

type irq struct {
	count int
}

func (i *irq) SetInterruptNumber(n int) {
	if n == cdrom.CDROMInterrupt {
		i.count++
	}
}

// disc with the LBA written to the first byte of the user data
type disc struct {
	sectors int
}

func (d disc) ReadSector(lba int, p []uint8) error {
	if lba < 0 || lba >= d.sectors {
		return curated.Errorf("sector out of range")
	}
	clear(p)
	p[12] = 0xaa
	p[24] = uint8(lba)
	return nil
}

func write(cd *cdrom.CDROM, index uint8, port uint32, data uint8) {
	cd.WritePort(0, index)
	cd.WritePort(port, data)
}

func read(cd *cdrom.CDROM, index uint8, port uint32) uint8 {
	cd.WritePort(0, index)
	return cd.ReadPort(port)
}

func command(cd *cdrom.CDROM, cmd uint8, params ...uint8) {
	for _, p := range params {
		write(cd, 0, 2, p)
	}
	write(cd, 0, 1, cmd)
}

func flag(cd *cdrom.CDROM) uint8 {
	return read(cd, 1, 3) & 0x1f
}

func ack(cd *cdrom.CDROM) {
	write(cd, 1, 3, 0x1f)
}

func tick(cd *cdrom.CDROM, cycles int) {
	for ; cycles > 0; cycles -= 1000 {
		cd.Tick(1000)
	}
}

func responses(cd *cdrom.CDROM) []uint8 {
	var r []uint8
	for read(cd, 0, 0)&0x20 == 0x20 {
		r = append(r, read(cd, 0, 1))
	}
	return r
}

func newCDROM(d cdrom.Disc) (*cdrom.CDROM, *irq) {
	i := &irq{}
	cd := cdrom.NewCDROM(i, nil)
	if d != nil {
		cd.InsertDisc(d)
	}
	write(cd, 1, 2, 0x1f)
	return cd, i
}

func TestGetStat(t *testing.T) {
	cd, i := newCDROM(nil)

	command(cd, cdrom.CmdGetStat)
	test.ExpectEquality(t, read(cd, 0, 0)&0x80, uint8(0x80))
	test.ExpectEquality(t, flag(cd), uint8(0))

	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT3))
	test.ExpectEquality(t, i.count, 1)
	test.ExpectEquality(t, read(cd, 0, 0)&0x80, uint8(0))

	r := responses(cd)
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0], uint8(cdrom.StatShellOpen))

	ack(cd)
	test.ExpectEquality(t, flag(cd), uint8(0))

	// unused bits of the flag register read as one
	test.ExpectEquality(t, read(cd, 1, 3)&0xe0, uint8(0xe0))
}

func TestVersion(t *testing.T) {
	cd, _ := newCDROM(nil)

	command(cd, cdrom.CmdTest, 0x20)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT3))

	r := responses(cd)
	test.DemandEquality(t, len(r), 4)
	test.ExpectEquality(t, r[0], uint8(0x94))
	test.ExpectEquality(t, r[1], uint8(0x09))
	test.ExpectEquality(t, r[2], uint8(0x19))
	test.ExpectEquality(t, r[3], uint8(0xc0))

	// parameter FIFO is empty after the command
	test.ExpectEquality(t, read(cd, 0, 0)&0x08, uint8(0x08))
}

func TestUnknownCommand(t *testing.T) {
	cd, _ := newCDROM(nil)

	command(cd, 0x50)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT5))

	r := responses(cd)
	test.DemandEquality(t, len(r), 2)
	test.ExpectEquality(t, r[0]&cdrom.StatError, uint8(cdrom.StatError))
}

func TestGetID(t *testing.T) {
	cd, _ := newCDROM(nil)

	command(cd, cdrom.CmdGetID)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT5))
	r := responses(cd)
	test.DemandEquality(t, len(r), 8)
	test.ExpectEquality(t, r[0], uint8(0x08))
	test.ExpectEquality(t, r[1], uint8(0x40))
	ack(cd)

	cd.InsertDisc(disc{sectors: 10})
	command(cd, cdrom.CmdGetID)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT3))
	r = responses(cd)
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0], uint8(cdrom.StatMotorOn))

	// second response is held back until the first is acknowledged
	tick(cd, 200000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT3))
	test.ExpectEquality(t, len(responses(cd)), 0)

	ack(cd)
	tick(cd, 1000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT2))
	r = responses(cd)
	test.DemandEquality(t, len(r), 8)
	test.ExpectEquality(t, string(r[4:]), "SCEA")
}

func TestRead(t *testing.T) {
	cd, _ := newCDROM(disc{sectors: 10})

	// 00:02:00 is the first sector of the image
	command(cd, cdrom.CmdSetloc, 0x00, 0x02, 0x00)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT3))
	ack(cd)

	command(cd, cdrom.CmdReadN)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT3))
	r := responses(cd)
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0]&cdrom.StatReading, uint8(cdrom.StatReading))
	ack(cd)

	for lba := 0; lba < 3; lba++ {
		tick(cd, 500000)
		test.ExpectEquality(t, flag(cd), uint8(cdrom.INT1), lba)
		responses(cd)

		// move the sector to the data FIFO
		write(cd, 0, 3, 0x80)
		test.ExpectEquality(t, read(cd, 0, 0)&0x40, uint8(0x40))

		p := make([]uint8, cdrom.DataSize)
		cd.ReadData(p)
		test.ExpectEquality(t, p[0], uint8(lba), lba)
		test.ExpectEquality(t, read(cd, 0, 0)&0x40, uint8(0), lba)

		ack(cd)
	}

	command(cd, cdrom.CmdPause)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT3))
	ack(cd)
	tick(cd, 100000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT2))
	r = responses(cd)
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0]&cdrom.StatReading, uint8(0))
}

func TestWholeSector(t *testing.T) {
	cd, _ := newCDROM(disc{sectors: 10})

	command(cd, cdrom.CmdSetmode, cdrom.ModeWholeSector|cdrom.ModeDoubleSpeed)
	tick(cd, 100000)
	ack(cd)

	command(cd, cdrom.CmdSetloc, 0x00, 0x02, 0x05)
	tick(cd, 100000)
	ack(cd)

	command(cd, cdrom.CmdReadS)
	tick(cd, 100000)
	ack(cd)

	// double speed delivers a sector in half the time
	tick(cd, 250000)
	test.ExpectEquality(t, flag(cd), uint8(cdrom.INT1))

	write(cd, 0, 3, 0x80)
	p := make([]uint8, 0x924+4)
	cd.ReadData(p)
	test.ExpectEquality(t, p[0], uint8(0xaa))
	test.ExpectEquality(t, p[12], uint8(5))

	// reads beyond the end of the FIFO are zero
	test.ExpectEquality(t, p[0x924], uint8(0))
}
