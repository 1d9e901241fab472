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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopherpsx/digest"
	"github.com/jetsetilly/gopherpsx/easyterm"
	"github.com/jetsetilly/gopherpsx/gui"
	"github.com/jetsetilly/gopherpsx/gui/sdlgl"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/hardware/govern"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/rasterizer"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/loader"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/modalflag"
	"github.com/jetsetilly/gopherpsx/performance"
	"github.com/jetsetilly/gopherpsx/performance/limiter"
	"github.com/jetsetilly/gopherpsx/prefs"
	"github.com/jetsetilly/gopherpsx/screenshot"
	"github.com/jetsetilly/gopherpsx/statsview"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service() error
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator function may return a nil pointer of a
				// concrete type, which is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				err := gui.Service()
				if err != nil {
					logger.Log(logger.Allow, "gui", err)
				}
			}

			// the gui is serviced often enough without spinning the main
			// thread at full speed
			time.Sleep(time.Millisecond)
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to the RUN and PERFORMANCE modes.
type setup struct {
	bios      *string
	disc      *string
	prefsFile *string
	prefs     *string
	log       *bool
}

func addSetupFlags(md *modalflag.Modes) setup {
	return setup{
		bios:      md.AddString("bios", "", "BIOS image (required)"),
		disc:      md.AddString("cd", "", "disc image to insert (.bin or .cue)"),
		prefsFile: md.AddString("prefsfile", "", "preferences file (default in the resources directory)"),
		prefs:     md.AddString("prefs", "", "override preferences: \"key::value; key::value\""),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// preparePSX creates a new PSX instance from the setup flags. The End() function should be called on the returned PSX when it is no
// longer needed, even if an error is returned.
func preparePSX(md *modalflag.Modes, opts setup, presenter rasterizer.Presenter) (*hardware.PSX, func(), error) {
	if *opts.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) > 0 {
		return nil, nil, fmt.Errorf("too many arguments for %s mode", md)
	}
	if *opts.bios == "" {
		return nil, nil, fmt.Errorf("BIOS file required for %s mode", md)
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	var p *preferences.Preferences
	var err error
	if *opts.prefsFile != "" {
		p, err = preferences.NewPreferencesFromFile(*opts.prefsFile)
	} else {
		p, err = preferences.NewPreferences()
	}
	if err != nil {
		return nil, nil, err
	}

	psx, err := hardware.NewPSX(p, presenter)
	if err != nil {
		return nil, nil, err
	}

	bios := loader.NewLoader(*opts.bios)
	err = bios.Load()
	if err != nil {
		return psx, nil, err
	}

	err = psx.LoadBIOS(bios.Data)
	if err != nil {
		return psx, nil, err
	}
	logger.Logf(logger.Allow, "psx", "BIOS %s (%s)", bios.ShortName(), bios.Hash)

	closeDisc := func() {}
	if *opts.disc != "" {
		disc, err := loader.OpenDisc(*opts.disc)
		if err != nil {
			return psx, nil, err
		}
		closeDisc = func() {
			if err := disc.Close(); err != nil {
				logger.Log(logger.Allow, "loader", err)
			}
		}
		psx.InsertDisc(disc)
		logger.Logf(logger.Allow, "psx", "inserted %s", disc)
	}

	return psx, closeDisc, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addSetupFlags(md)
	scaling := md.AddFloat64("scale", 2.0, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the refresh rate of the video mode")
	headless := md.AddBool("headless", false, "run without a window. press any key to end")
	frames := md.AddInt("frames", 0, "end emulation after number of frames (0 to run until quit)")
	shot := md.AddString("screenshot", "", "save screenshot on exit using the base filename")
	memviz := md.AddString("memviz", "", "save a graphviz description of the emulator on exit")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	// the presenter chain. every frame is captured for screenshots and then
	// added to the video digest before being forwarded to the display
	var scr gui.GUI
	if !*headless {
		sync.creator <- func() (GuiCreator, error) {
			return sdlgl.NewSdlGL(float32(*scaling))
		}

		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}
	}

	var display rasterizer.Presenter
	if scr != nil {
		display = scr
	}
	dig := digest.NewVideo(display)
	capture := screenshot.NewScreenshot(dig)

	psx, closeDisc, err := preparePSX(md, opts, capture)
	if psx != nil {
		defer psx.End()
	}
	if err != nil {
		return err
	}
	defer closeDisc()

	// headless mode ends when a key is pressed
	var keys <-chan rune
	if *headless {
		var term easyterm.Terminal
		err = term.Initialise(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		err = term.CBreakMode()
		if err != nil {
			return err
		}
		defer term.CanonicalMode()
		keys = term.Keys()
	}

	lim := limiter.NewFPSLimiter(performance.RefreshNTSC)
	if !*fpsCap {
		lim.SetLimit(0)
	}

	lastFrame := psx.Frames()
	pal := false
	performanceBrake := 0

	err = psx.Run(func() (govern.State, error) {
		if scr != nil && scr.Paused() {
			if scr.Quit() {
				return govern.Ending, nil
			}
			time.Sleep(10 * time.Millisecond)
			return govern.Paused, nil
		}

		frame := psx.Frames()
		if frame != lastFrame {
			lastFrame = frame

			if *frames > 0 && frame >= *frames {
				return govern.Ending, nil
			}

			if *fpsCap {
				if pal != psx.GPU.PAL() {
					pal = psx.GPU.PAL()
					if pal {
						lim.SetLimit(performance.RefreshPAL)
					} else {
						lim.SetLimit(performance.RefreshNTSC)
					}
				}
				lim.Wait()
			}
		}

		performanceBrake++
		if performanceBrake < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		performanceBrake = 0

		if scr != nil && scr.Quit() {
			return govern.Ending, nil
		}

		select {
		case <-keys:
			return govern.Ending, nil
		default:
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	// make sure every frame has reached the presenters before the digest is
	// reported or the screenshot is saved
	err = psx.End()
	if err != nil {
		return err
	}

	if *frames > 0 {
		md.Output.Write([]byte(fmt.Sprintf("%d frames: %s\n", dig.Frames(), dig.Hash())))
	}

	if *shot != "" {
		fn, err := capture.Save(*shot)
		if err != nil {
			return err
		}
		md.Output.Write([]byte(fmt.Sprintf("screenshot saved to %s\n", fn)))
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		psx.Memviz(f)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	opts := addSetupFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	psx, closeDisc, err := preparePSX(md, opts, nil)
	if psx != nil {
		defer psx.End()
	}
	if err != nil {
		return err
	}
	defer closeDisc()

	return performance.Check(md.Output, prf, psx, *duration)
}
