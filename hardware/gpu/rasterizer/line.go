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

package rasterizer

import (
	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
)

// lines draws the segments described by the words following the opcode word.
// for shaded lines every vertex after the first is preceded by its colour.
func (r *Rasterizer) lines(cmd command.Command, words []uint32) {
	p := newPrimitive(r, &cmd)
	p.textured = false
	gouraud := command.Gouraud(cmd.Opcode)

	if len(words) == 0 {
		return
	}

	var a vertex
	a.setColour(cmd.Words[0])
	a.setPosition(words[0], &cmd.Config)

	for i := 1; i < len(words); {
		b := a
		if gouraud {
			b.setColour(words[i])
			i++
			if i >= len(words) {
				break
			}
		}
		b.setPosition(words[i], &cmd.Config)
		i++

		r.segment(&p, a, b)
		a = b
	}
}

// segment draws a single line with Bresenham's algorithm. colour is
// interpolated along the major axis.
func (r *Rasterizer) segment(p *primitive, a, b vertex) {
	if abs(b.x-a.x) > maxPolygonDX || abs(b.y-a.y) > maxPolygonDY {
		return
	}

	dx := abs(b.x - a.x)
	dy := -abs(b.y - a.y)
	sx := 1
	if a.x > b.x {
		sx = -1
	}
	sy := 1
	if a.y > b.y {
		sy = -1
	}

	steps := max(dx, -dy)
	err := dx + dy
	x, y := a.x, a.y

	for i := 0; ; i++ {
		cr, cg, cb := a.r, a.g, a.b
		if steps > 0 {
			cr = a.r + (b.r-a.r)*i/steps
			cg = a.g + (b.g-a.g)*i/steps
			cb = a.b + (b.b-a.b)*i/steps
		}
		r.fragment(p, x, y, cr, cg, cb, 0, 0)

		if x == b.x && y == b.y {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
