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

package command_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestPolygonWords(t *testing.T) {
	// monochrome triangle
	test.ExpectEquality(t, command.Lookup(0x20000000).Words, 4)
	test.ExpectEquality(t, command.Lookup(0x20000000).Kind, command.Polygon)

	// monochrome quad
	test.ExpectEquality(t, command.Lookup(0x28000000).Words, 5)

	// textured quad
	test.ExpectEquality(t, command.Lookup(0x2c000000).Words, 9)

	// shaded triangle
	test.ExpectEquality(t, command.Lookup(0x30000000).Words, 6)

	// shaded quad
	test.ExpectEquality(t, command.Lookup(0x38000000).Words, 8)

	// shaded textured quad
	test.ExpectEquality(t, command.Lookup(0x3c000000).Words, 12)
}

func TestRectangleWords(t *testing.T) {
	test.ExpectEquality(t, command.Lookup(0x60000000).Words, 3)
	test.ExpectEquality(t, command.Lookup(0x64000000).Words, 4)
	test.ExpectEquality(t, command.Lookup(0x68000000).Words, 2)
	test.ExpectEquality(t, command.Lookup(0x7c000000).Words, 3)
	test.ExpectEquality(t, command.RectangleSize(0x70), 8)
	test.ExpectEquality(t, command.RectangleSize(0x78), 16)
}

func TestLines(t *testing.T) {
	test.ExpectEquality(t, command.Lookup(0x40000000).Kind, command.Line)
	test.ExpectEquality(t, command.Lookup(0x40000000).Words, 3)
	test.ExpectEquality(t, command.Lookup(0x48000000).Kind, command.PolyLine)
	test.ExpectEquality(t, command.Lookup(0x58000000).Words, 4)

	test.ExpectSuccess(t, command.IsTerminator(0x55555555))
	test.ExpectSuccess(t, command.IsTerminator(0x50005000))
	test.ExpectFailure(t, command.IsTerminator(0x00100010))
}

func TestOtherCommands(t *testing.T) {
	test.ExpectEquality(t, command.Lookup(0x02000000).Kind, command.Fill)
	test.ExpectEquality(t, command.Lookup(0x80000000).Words, 4)
	test.ExpectEquality(t, command.Lookup(0xa0000000).Kind, command.Upload)
	test.ExpectEquality(t, command.Lookup(0xc0000000).Kind, command.Download)
	test.ExpectEquality(t, command.Lookup(0xe1000000).Kind, command.DrawMode)
	test.ExpectEquality(t, command.Lookup(0xe6000000).Kind, command.MaskSetting)
	test.ExpectEquality(t, command.Lookup(0xff000000).Kind, command.Nop)
	test.ExpectEquality(t, command.Lookup(0x1f000000).Kind, command.Interrupt)
}

func TestDecoding(t *testing.T) {
	x, y := command.Vertex(0x07ff0400)
	test.ExpectEquality(t, x, -1024)
	test.ExpectEquality(t, y, -1)

	x, y = command.Vertex(0x00200010)
	test.ExpectEquality(t, x, 16)
	test.ExpectEquality(t, y, 32)

	w, h := command.TransferSize(0x00010002)
	test.ExpectEquality(t, w, 2)
	test.ExpectEquality(t, h, 1)

	w, h = command.TransferSize(0x00000000)
	test.ExpectEquality(t, w, 1024)
	test.ExpectEquality(t, h, 512)

	x, y = command.TransferOrigin(0xffffffff)
	test.ExpectEquality(t, x, 1023)
	test.ExpectEquality(t, y, 511)
}
