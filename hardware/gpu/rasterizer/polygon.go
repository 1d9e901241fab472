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
	"github.com/jetsetilly/gopherpsx/logger"
)

// the largest distance between two vertices of a polygon
const (
	maxPolygonDX = 1023
	maxPolygonDY = 511
)

type vertex struct {
	x, y    int
	r, g, b int
	u, v    int
}

func (vx *vertex) setColour(data uint32) {
	vx.r = int(data & 0xff)
	vx.g = int((data >> 8) & 0xff)
	vx.b = int((data >> 16) & 0xff)
}

func (vx *vertex) setPosition(data uint32, cfg *command.Config) {
	vx.x, vx.y = command.Vertex(data)
	vx.x += cfg.OffsetX
	vx.y += cfg.OffsetY
}

func (vx *vertex) setTexCoord(data uint32) {
	vx.u = int(data & 0xff)
	vx.v = int((data >> 8) & 0xff)
}

func (r *Rasterizer) polygon(cmd command.Command) {
	p := newPrimitive(r, &cmd)
	gouraud := command.Gouraud(cmd.Opcode)

	n := 3
	if command.Quad(cmd.Opcode) {
		n = 4
	}

	var vs [4]vertex
	w := 1
	for i := 0; i < n; i++ {
		if i > 0 && gouraud {
			vs[i].setColour(cmd.Words[w])
			w++
		} else {
			vs[i].setColour(cmd.Words[0])
		}

		vs[i].setPosition(cmd.Words[w], &cmd.Config)
		w++

		if command.Textured(cmd.Opcode) {
			vs[i].setTexCoord(cmd.Words[w])
			switch i {
			case 0:
				p.tex.setCLUT(cmd.Words[w] >> 16)
			case 1:
				p.tex.setPage(cmd.Words[w] >> 16)
				p.semiMode = int((cmd.Words[w] >> 21) & 0x03)
			}
			w++
		}
	}

	r.triangle(&p, vs[0], vs[1], vs[2])
	if n == 4 {
		r.triangle(&p, vs[1], vs[2], vs[3])
	}
}

// edge function. the result is positive when c is to the right of the line
// from a to b (with y increasing downwards)
func edge(a, b *vertex, cx, cy int) int {
	return (b.x-a.x)*(cy-a.y) - (b.y-a.y)*(cx-a.x)
}

// isTopLeft returns true if pixels exactly on the edge from a to b are drawn.
// the vertices must be in the order that gives a positive area.
func isTopLeft(a, b *vertex) bool {
	dx := b.x - a.x
	dy := b.y - a.y
	return (dy == 0 && dx > 0) || dy < 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// legal returns false if any edge of the triangle is too long.
func legal(v0, v1, v2 *vertex) bool {
	for _, e := range [][2]*vertex{{v0, v1}, {v1, v2}, {v2, v0}} {
		if abs(e[0].x-e[1].x) > maxPolygonDX || abs(e[0].y-e[1].y) > maxPolygonDY {
			return false
		}
	}
	return true
}

func (r *Rasterizer) triangle(p *primitive, v0, v1, v2 vertex) {
	if !legal(&v0, &v1, &v2) {
		logger.Logf(logger.Allow, "rasterizer", "polygon too large: (%d,%d) (%d,%d) (%d,%d)", v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
		return
	}

	area := edge(&v0, &v1, v2.x, v2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX := max(min(v0.x, v1.x, v2.x), p.cfg.DrawLeft)
	maxX := min(max(v0.x, v1.x, v2.x), p.cfg.DrawRight)
	minY := max(min(v0.y, v1.y, v2.y), p.cfg.DrawTop)
	maxY := min(max(v0.y, v1.y, v2.y), p.cfg.DrawBottom)

	tl0 := isTopLeft(&v1, &v2)
	tl1 := isTopLeft(&v2, &v0)
	tl2 := isTopLeft(&v0, &v1)

	inside := func(w int, tl bool) bool {
		return w > 0 || (w == 0 && tl)
	}

	interpolate := func(w0, w1, w2 int, a, b, c int) int {
		return (w0*a + w1*b + w2*c) / area
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edge(&v1, &v2, x, y)
			w1 := edge(&v2, &v0, x, y)
			w2 := edge(&v0, &v1, x, y)
			if !inside(w0, tl0) || !inside(w1, tl1) || !inside(w2, tl2) {
				continue
			}

			cr := interpolate(w0, w1, w2, v0.r, v1.r, v2.r)
			cg := interpolate(w0, w1, w2, v0.g, v1.g, v2.g)
			cb := interpolate(w0, w1, w2, v0.b, v1.b, v2.b)

			var u, v int
			if p.textured {
				u = interpolate(w0, w1, w2, v0.u, v1.u, v2.u)
				v = interpolate(w0, w1, w2, v0.v, v1.v, v2.v)
			}

			r.fragment(p, x, y, cr, cg, cb, u, v)
		}
	}
}
