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

package command

import "fmt"

// MaxWords is the maximum number of words in a fixed length command.
const MaxWords = 12

// Config is the GPU state that affects drawing and display.
type Config struct {
	// drawing area. coordinates are inclusive
	DrawLeft   int
	DrawTop    int
	DrawRight  int
	DrawBottom int

	// drawing offset added to every vertex
	OffsetX int
	OffsetY int

	// texture page from GP0(E1) or from the most recent textured polygon
	TexPageX     int
	TexPageY     int
	TextureDepth int

	// semi-transparency mode. one of four blending equations
	SemiMode int

	Dither         bool
	DrawToDisplay  bool
	TextureDisable bool
	FlipX          bool
	FlipY          bool

	// texture window in units of 8 pixels
	WindowMaskX   int
	WindowMaskY   int
	WindowOffsetX int
	WindowOffsetY int

	SetMask   bool
	CheckMask bool

	// area of VRAM shown on the display
	DisplayX        int
	DisplayY        int
	DisplayWidth    int
	DisplayHeight   int
	Display24       bool
	DisplayDisabled bool
}

// Command is a complete GP0 command ready for the rasterizer.
type Command struct {
	Kind   Kind
	Opcode uint8

	// the words of the command including the opcode word. for upload and
	// download commands only the setup words are here. the pixel data goes
	// through the vram.Transfer buffer
	Words    [MaxWords]uint32
	NumWords int

	// vertices of a poly-line. the terminator is not included
	Lines []uint32

	// snapshot of the drawing state when the command was submitted
	Config Config
}

func (cmd Command) String() string {
	return fmt.Sprintf("%s (%02x) %d words", cmd.Kind, cmd.Opcode, cmd.NumWords)
}

// Vertex decodes the signed 11 bit coordinates in a vertex word.
func Vertex(data uint32) (x int, y int) {
	x = int(int16(uint16(data)<<5) >> 5)
	y = int(int16(uint16(data>>16)<<5) >> 5)
	return x, y
}

// TransferOrigin decodes the VRAM coordinates used by the copy, upload and
// download commands.
func TransferOrigin(data uint32) (x int, y int) {
	return int(data & 0x3ff), int((data >> 16) & 0x1ff)
}

// TransferSize decodes the size used by the copy, upload and download
// commands. A width of zero means 1024 and a height of zero means 512.
func TransferSize(data uint32) (w int, h int) {
	w = int(((data&0xffff)-1)&0x3ff) + 1
	h = int(((data>>16)-1)&0x1ff) + 1
	return w, h
}
