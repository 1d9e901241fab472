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

package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cdrom"
)

// DiscExtensions is the list of file extensions that are recognised by
// OpenDisc().
var DiscExtensions = [...]string{".BIN", ".IMG", ".CUE"}

// Disc is a raw disc image. It implements the cdrom.Disc interface.
type Disc struct {
	// filename of the image. if the disc was opened with a cue sheet this is
	// the file named by the sheet
	Filename string

	f       *os.File
	sectors int
}

func (dsc *Disc) String() string {
	return fmt.Sprintf("%s (%d sectors)", filepath.Base(dsc.Filename), dsc.sectors)
}

// OpenDisc opens a disc image. The filename can be a raw image or a cue sheet.
func OpenDisc(filename string) (*Disc, error) {
	if strings.EqualFold(filepath.Ext(filename), ".cue") {
		var err error
		filename, err = cueImage(filename)
		if err != nil {
			return nil, curated.Errorf(LoaderError, err)
		}
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, curated.Errorf(LoaderError, err)
	}

	if fi.Size() == 0 || fi.Size()%cdrom.SectorSize != 0 {
		f.Close()
		return nil, curated.Errorf(LoaderError, fmt.Sprintf("%s is not a raw disc image", filepath.Base(filename)))
	}

	return &Disc{
		Filename: filename,
		f:        f,
		sectors:  int(fi.Size() / cdrom.SectorSize),
	}, nil
}

// cueImage returns the path of the first binary file named by the cue sheet.
// the path is relative to the cue sheet.
func cueImage(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())

		cmd, rest, ok := strings.Cut(l, " ")
		if !ok || !strings.EqualFold(cmd, "FILE") {
			continue
		}

		// the name is quoted if it contains spaces. the type of the file
		// follows the name
		rest = strings.TrimSpace(rest)
		var name, typ string
		if strings.HasPrefix(rest, `"`) {
			name, typ, ok = strings.Cut(rest[1:], `"`)
			if !ok {
				return "", fmt.Errorf("malformed FILE entry in cue sheet: %s", l)
			}
		} else {
			name, typ, _ = strings.Cut(rest, " ")
		}

		if !strings.EqualFold(strings.TrimSpace(typ), "BINARY") {
			continue
		}

		return filepath.Join(filepath.Dir(filename), name), nil
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("no binary file in cue sheet")
}

// Sectors returns the number of sectors in the image.
func (dsc *Disc) Sectors() int {
	return dsc.sectors
}

// ReadSector implements the cdrom.Disc interface.
func (dsc *Disc) ReadSector(lba int, p []uint8) error {
	if lba < 0 || lba >= dsc.sectors {
		return curated.Errorf(LoaderError, fmt.Sprintf("sector %d is outside the image", lba))
	}
	_, err := dsc.f.ReadAt(p[:cdrom.SectorSize], int64(lba)*cdrom.SectorSize)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}
	return nil
}

// Close the image file.
func (dsc *Disc) Close() error {
	return dsc.f.Close()
}
