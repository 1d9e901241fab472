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

// Kind of GP0 command.
type Kind int

// List of valid Kind values.
const (
	Invalid Kind = iota
	Nop
	ClearCache
	Fill
	Interrupt
	Polygon
	Line
	PolyLine
	Rectangle
	CopyVRAM
	Upload
	Download
	DrawMode
	TextureWindow
	DrawAreaTopLeft
	DrawAreaBottomRight
	DrawOffset
	MaskSetting

	// not a GP0 command. submitted by the front-end once per frame
	Display

	// not a GP0 command. submitted by the front-end on console reset
	ClearVRAM
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Nop:
		return "nop"
	case ClearCache:
		return "clear cache"
	case Fill:
		return "fill"
	case Interrupt:
		return "interrupt"
	case Polygon:
		return "polygon"
	case Line:
		return "line"
	case PolyLine:
		return "poly-line"
	case Rectangle:
		return "rectangle"
	case CopyVRAM:
		return "copy vram"
	case Upload:
		return "upload"
	case Download:
		return "download"
	case DrawMode:
		return "draw mode"
	case TextureWindow:
		return "texture window"
	case DrawAreaTopLeft:
		return "draw area top-left"
	case DrawAreaBottomRight:
		return "draw area bottom-right"
	case DrawOffset:
		return "draw offset"
	case MaskSetting:
		return "mask setting"
	case Display:
		return "display"
	case ClearVRAM:
		return "clear vram"
	}
	return fmt.Sprintf("kind %d", int(k))
}

// Entry in the command table.
type Entry struct {
	Kind Kind

	// number of words in the command including the opcode word. for
	// poly-lines this is the minimum number of words
	Words int
}

// Table of GP0 commands indexed by opcode.
var Table [256]Entry

// Lookup returns the entry for the opcode in the most significant byte of the
// data word.
func Lookup(data uint32) Entry {
	return Table[data>>24]
}

// Attributes of the primitive drawing opcodes.
const (
	attrRaw      = 0x01
	attrSemi     = 0x02
	attrTextured = 0x04
	attrQuad     = 0x08
	attrPoly     = 0x08
	attrGouraud  = 0x10
)

// Gouraud returns true if the polygon or line opcode is shaded.
func Gouraud(op uint8) bool {
	return op&attrGouraud == attrGouraud
}

// Quad returns true if the polygon opcode has four vertices.
func Quad(op uint8) bool {
	return op&attrQuad == attrQuad
}

// Textured returns true if the polygon or rectangle opcode is textured.
func Textured(op uint8) bool {
	return op&attrTextured == attrTextured
}

// SemiTransparent returns true if the opcode is semi-transparent.
func SemiTransparent(op uint8) bool {
	return op&attrSemi == attrSemi
}

// Raw returns true if the texture of the opcode is not modulated by the
// command colour.
func Raw(op uint8) bool {
	return op&attrRaw == attrRaw
}

// RectangleSize returns the fixed size of a rectangle opcode. A size of zero
// means the size is given by a parameter.
func RectangleSize(op uint8) int {
	switch (op >> 3) & 3 {
	case 1:
		return 1
	case 2:
		return 8
	case 3:
		return 16
	}
	return 0
}

// PolygonWords returns the number of words in a polygon command.
func PolygonWords(op uint8) int {
	n := 3
	if Quad(op) {
		n = 4
	}
	words := 1 + n
	if Textured(op) {
		words += n
	}
	if Gouraud(op) {
		words += n - 1
	}
	return words
}

// RectangleWords returns the number of words in a rectangle command.
func RectangleWords(op uint8) int {
	words := 2
	if Textured(op) {
		words++
	}
	if RectangleSize(op) == 0 {
		words++
	}
	return words
}

// LineWords returns the number of words in a single line command. For
// poly-lines it is the number of words before a terminator is possible.
func LineWords(op uint8) int {
	if Gouraud(op) {
		return 4
	}
	return 3
}

// IsTerminator returns true if the data word ends a poly-line. Both the
// documented terminator 0x55555555 and the 0x50005000 used by some software
// match.
func IsTerminator(data uint32) bool {
	return data&0xf000f000 == 0x50005000
}

func init() {
	Table[0x00] = Entry{Kind: Nop, Words: 1}
	Table[0x01] = Entry{Kind: ClearCache, Words: 1}
	Table[0x02] = Entry{Kind: Fill, Words: 3}
	Table[0x1f] = Entry{Kind: Interrupt, Words: 1}

	for op := 0x20; op < 0x40; op++ {
		Table[op] = Entry{Kind: Polygon, Words: PolygonWords(uint8(op))}
	}

	for op := 0x40; op < 0x60; op++ {
		if uint8(op)&attrPoly == attrPoly {
			Table[op] = Entry{Kind: PolyLine, Words: LineWords(uint8(op))}
		} else {
			Table[op] = Entry{Kind: Line, Words: LineWords(uint8(op))}
		}
	}

	for op := 0x60; op < 0x80; op++ {
		Table[op] = Entry{Kind: Rectangle, Words: RectangleWords(uint8(op))}
	}

	for op := 0x80; op < 0xa0; op++ {
		Table[op] = Entry{Kind: CopyVRAM, Words: 4}
	}
	for op := 0xa0; op < 0xc0; op++ {
		Table[op] = Entry{Kind: Upload, Words: 3}
	}
	for op := 0xc0; op < 0xe0; op++ {
		Table[op] = Entry{Kind: Download, Words: 3}
	}

	Table[0xe1] = Entry{Kind: DrawMode, Words: 1}
	Table[0xe2] = Entry{Kind: TextureWindow, Words: 1}
	Table[0xe3] = Entry{Kind: DrawAreaTopLeft, Words: 1}
	Table[0xe4] = Entry{Kind: DrawAreaBottomRight, Words: 1}
	Table[0xe5] = Entry{Kind: DrawOffset, Words: 1}
	Table[0xe6] = Entry{Kind: MaskSetting, Words: 1}

	// the remaining opcodes in the 0x00 to 0x1f and 0xe0 to 0xff ranges are
	// treated as single word no-ops
	for op := range Table {
		if Table[op].Kind == Invalid && (op < 0x20 || op >= 0xe0) {
			Table[op] = Entry{Kind: Nop, Words: 1}
		}
	}
}
