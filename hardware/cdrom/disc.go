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

import "fmt"

// Sector layout and addressing.
const (
	SectorSize    = 2352
	DataSize      = 2048
	SectorsPerSec = 75
	pregapSectors = 150
	dataOffset    = 24
	wholeOffset   = 12
	wholeSize     = 0x924
	secondsPerMin = 60
)

// Disc is the interface to a disc image. The LBA is relative to the start of
// the first data track.
type Disc interface {
	ReadSector(lba int, p []uint8) error
}

// MSF is a position on the disc in minutes, seconds and frames.
type MSF struct {
	Minute int
	Second int
	Frame  int
}

func (m MSF) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", m.Minute, m.Second, m.Frame)
}

// LBA converts the position to a logical block address. The two second pregap
// is not part of the image.
func (m MSF) LBA() int {
	return (m.Minute*secondsPerMin+m.Second)*SectorsPerSec + m.Frame - pregapSectors
}

// FromBCD converts a binary coded decimal byte.
func FromBCD(v uint8) int {
	return int(v>>4)*10 + int(v&0x0f)
}

// ToBCD converts a value in the range 0 to 99 to binary coded decimal.
func ToBCD(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}
