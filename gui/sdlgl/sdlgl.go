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

package sdlgl

import (
	"fmt"
	"image"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/gui"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gopherpsx"

// Sentinal errors.
const (
	RendererError = "renderer: %v"
)

// SdlGL is an implementation of the gui.GUI interface.
type SdlGL struct {
	window     *sdl.Window
	context    sdl.GLContext
	hasContext bool

	shader  shader
	vao     uint32
	texture uint32

	// size of the texture currently allocated. a new texture is allocated
	// when the presented frame changes size
	texW int32
	texH int32

	// the most recent frame received by Present(). pending is true if the
	// frame has not yet been drawn
	crit    sync.Mutex
	frame   *image.RGBA
	pending bool

	quit   atomic.Bool
	paused atomic.Bool
}

// NewSdlGL is the preferred method of initialisation for the SdlGL type. The
// window is created at scale times the size of a 320x240 display.
//
// MUST ONLY be called from the main thread.
func NewSdlGL(scale float32) (*SdlGL, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(gui.GUIError, fmt.Errorf("sdl: %w", err))
	}

	scr := &SdlGL{
		frame: image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}

	err = scr.createWindow(scale)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.GUIError, err)
	}

	err = scr.start()
	if err != nil {
		scr.destroyWindow()
		sdl.Quit()
		return nil, curated.Errorf(gui.GUIError, err)
	}

	return scr, nil
}

func (scr *SdlGL) createWindow(scale float32) error {
	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: 3},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: 2},
		{attr: sdl.GL_CONTEXT_FLAGS, value: sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{attr: sdl.GL_CONTEXT_PROFILE_MASK, value: sdl.GL_CONTEXT_PROFILE_CORE},
		{attr: sdl.GL_DOUBLEBUFFER, value: 1},
	}
	for _, a := range attributes {
		err := sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	if scale <= 0 {
		scale = 1
	}

	var err error
	scr.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(320*scale), int32(240*scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	scr.context, err = scr.window.GLCreateContext()
	if err != nil {
		scr.window.Destroy()
		scr.window = nil
		return fmt.Errorf("sdl: %w", err)
	}
	scr.hasContext = true

	err = scr.window.GLMakeCurrent(scr.context)
	if err != nil {
		scr.destroyWindow()
		return fmt.Errorf("sdl: %w", err)
	}

	// vsync is not required. the emulation is paced by the frame limiter
	err = sdl.GLSetSwapInterval(0)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "swap interval: %v", err)
	}

	return nil
}

// start the GL renderer. the context must be current.
func (scr *SdlGL) start() error {
	err := gl.Init()
	if err != nil {
		return curated.Errorf(RendererError, err)
	}

	logger.Logf(logger.Allow, "gl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl", "version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	err = scr.shader.createProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &scr.vao)
	gl.GenTextures(1, &scr.texture)

	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return nil
}

func (scr *SdlGL) destroyWindow() {
	if scr.hasContext {
		sdl.GLDeleteContext(scr.context)
		scr.hasContext = false
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlGL) Destroy(output io.Writer) {
	gl.DeleteTextures(1, &scr.texture)
	gl.DeleteVertexArrays(1, &scr.vao)
	scr.shader.destroy()

	if scr.window != nil {
		err := scr.window.Destroy()
		if err != nil {
			fmt.Fprintf(output, "* %v\n", curated.Errorf(gui.GUIError, err))
		}
		scr.window = nil
	}
	if scr.hasContext {
		sdl.GLDeleteContext(scr.context)
		scr.hasContext = false
	}

	sdl.Quit()
}

// Present implements the gui.GUI interface and the rasterizer.Presenter
// interface.
func (scr *SdlGL) Present(frame *image.RGBA) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.frame.Bounds().Eq(frame.Bounds()) {
		scr.frame = image.NewRGBA(frame.Bounds())
	}
	copy(scr.frame.Pix, frame.Pix)
	scr.pending = true

	return nil
}

// Paused implements the gui.GUI interface.
func (scr *SdlGL) Paused() bool {
	return scr.paused.Load()
}

// Quit implements the gui.GUI interface.
func (scr *SdlGL) Quit() bool {
	return scr.quit.Load()
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlGL) Service() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit.Store(true)

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				scr.quit.Store(true)
			case sdl.K_p:
				paused := !scr.paused.Load()
				scr.paused.Store(paused)
				if paused {
					scr.window.SetTitle(windowTitle + " (paused)")
				} else {
					scr.window.SetTitle(windowTitle)
				}
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_EXPOSED {
				scr.crit.Lock()
				scr.pending = true
				scr.crit.Unlock()
			}
		}
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.pending {
		return nil
	}
	scr.pending = false

	return scr.render()
}

// render the current frame to the window. the critical section must be held.
func (scr *SdlGL) render() error {
	w, h := int32(scr.frame.Bounds().Dx()), int32(scr.frame.Bounds().Dy())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if w != scr.texW || h != scr.texH {
		scr.texW = w
		scr.texH = h
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, w, h, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.frame.Pix))
		logger.Logf(logger.Allow, "gl", "display texture %dx%d", w, h)
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, w, h,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.frame.Pix))
	}

	dw, dh := scr.window.GLGetDrawableSize()
	x, y, vw, vh := viewport(dw, dh)

	gl.Viewport(0, 0, dw, dh)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Viewport(x, y, vw, vh)
	gl.UseProgram(scr.shader.handle)
	gl.Uniform1i(scr.shader.texture, 0)
	gl.BindVertexArray(scr.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	if err := gl.GetError(); err != gl.NO_ERROR {
		return curated.Errorf(RendererError, fmt.Sprintf("gl error %#04x", err))
	}

	scr.window.GLSwap()

	return nil
}
