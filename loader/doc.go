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

// Package loader is used to specify the BIOS and disc images that are to be
// attached to the emulated PSX.
//
// The BIOS is loaded in its entirety with the Load() function of the Loader
// type. The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
//	ld := loader.NewLoader("bios/SCPH1001.BIN")
//	err := ld.Load()
//
// Disc images are too large to be loaded into memory and are opened with
// OpenDisc(). The sectors are read from the file as they are required. Raw
// images of 2352 byte sectors are supported, either directly or through a cue
// sheet that names the image.
package loader
