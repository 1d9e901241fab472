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

// Package sdlgl is a minimal implementation of the gui.GUI interface. It
// opens a single SDL window and draws each presented frame as a texture
// stretched across an OpenGL 3.2 core profile context.
//
// NewSdlGL() and the Service() and Destroy() functions must all be called
// from the main thread. Present() is safe to call from any goroutine and will
// normally be called by the rasterizer.
//
// The window keeps the 4:3 aspect ratio of a television regardless of the
// display resolution selected by the GPU. Letterboxing is added when the
// window is resized to a different shape.
//
// Keyboard controls:
//
//	Escape   quit
//	P        pause/resume emulation
package sdlgl
