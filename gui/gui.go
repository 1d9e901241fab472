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

// Package gui defines what the emulator needs from a visual user interface.
// Implementations are found in the sub-packages.
package gui

import (
	"image"
	"io"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Present is called by the rasterizer whenever a frame is complete. It
	// will not be called from the same goroutine as Service().
	Present(frame *image.RGBA) error

	// Service must be called regularly from the main thread. It handles
	// windowing events and draws the most recently presented frame.
	Service() error

	// Paused returns true if the user has requested that emulation be
	// suspended.
	Paused() bool

	// Quit returns true once the user has asked to close the interface.
	Quit() bool

	// Destroy the interface. Any errors are written to the output.
	Destroy(output io.Writer)
}

// Sentinal error returned by implementations of the GUI interface.
const (
	GUIError = "gui: %v"
)
