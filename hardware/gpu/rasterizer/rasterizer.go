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
	"image"
	"sync/atomic"

	"github.com/jetsetilly/gopherpsx/assert"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/command"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/vram"
	"github.com/jetsetilly/gopherpsx/logger"
)

// Presenter is implemented by anything that can show or record a frame. The
// image is only valid for the duration of the call.
type Presenter interface {
	Present(frame *image.RGBA) error
}

// Rasterizer executes GPU commands on VRAM.
type Rasterizer struct {
	VRAM *vram.VRAM

	// shared with the front-end for upload and download commands
	transfer *vram.Transfer

	presenter Presenter

	// image passed to the presenter. reallocated when the display size
	// changes
	frame *image.RGBA

	// intermediate buffer for VRAM to VRAM copies
	temp []vram.Pixel

	owner assert.Owner

	// if false dithering is never applied, regardless of the draw mode
	AllowDither bool

	// number of frames presented
	Frames atomic.Uint64
}

// NewRasterizer is the preferred method of initialisation for the Rasterizer
// type. The presenter can be nil.
func NewRasterizer(transfer *vram.Transfer, presenter Presenter) *Rasterizer {
	return &Rasterizer{
		VRAM:        vram.NewVRAM(),
		transfer:    transfer,
		presenter:   presenter,
		temp:        make([]vram.Pixel, vram.Width*vram.Height),
		AllowDither: true,
	}
}

// SetPresenter changes the presenter. It must not be called while commands
// are being executed.
func (r *Rasterizer) SetPresenter(presenter Presenter) {
	r.presenter = presenter
}

// Release ownership of the rasterizer so that it can be used by another
// goroutine.
func (r *Rasterizer) Release() {
	r.owner.Release()
}

// Execute a single command.
func (r *Rasterizer) Execute(cmd command.Command) {
	r.owner.Check("rasterizer")

	switch cmd.Kind {
	case command.Fill:
		r.fill(cmd)
	case command.Polygon:
		r.polygon(cmd)
	case command.Line:
		r.lines(cmd, cmd.Words[1:cmd.NumWords])
	case command.PolyLine:
		r.lines(cmd, cmd.Lines)
	case command.Rectangle:
		r.rectangle(cmd)
	case command.CopyVRAM:
		r.copy(cmd)
	case command.Upload:
		r.upload(cmd)
	case command.Download:
		r.download(cmd)
	case command.Display:
		r.display(cmd)
	case command.ClearVRAM:
		r.VRAM.Clear()
	case command.Nop, command.ClearCache, command.Interrupt:
	default:
		logger.Logf(logger.Allow, "rasterizer", "unexpected command: %s", cmd)
	}
}
