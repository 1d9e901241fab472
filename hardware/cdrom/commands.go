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

package cdrom

import (
	"github.com/jetsetilly/gopherpsx/logger"
)

// Command bytes written to the command register.
const (
	CmdGetStat = 0x01
	CmdSetloc  = 0x02
	CmdReadN   = 0x06
	CmdPause   = 0x09
	CmdInit    = 0x0a
	CmdMute    = 0x0b
	CmdDemute  = 0x0c
	CmdSetmode = 0x0e
	CmdSeekL   = 0x15
	CmdSeekP   = 0x16
	CmdTest    = 0x19
	CmdGetID   = 0x1a
	CmdReadS   = 0x1b
)

// Error codes returned with INT5.
const (
	errInvalidParameter = 0x10
	errWrongParameters  = 0x20
	errInvalidCommand   = 0x40
	errNoDisc           = 0x80
)

// the response to Test 0x20, the date and version of the controller firmware.
var biosVersion = []uint8{0x94, 0x09, 0x19, 0xc0}

// the licence string returned by GetID for a licensed disc.
var licence = []uint8{'S', 'C', 'E', 'A'}

// command executes the command byte using the accumulated parameters. The
// parameter FIFO is emptied afterwards.
func (cd *CDROM) command(cmd uint8) {
	params := cd.params
	defer func() {
		cd.params = cd.params[:0]
	}()

	// a new command discards any response that has not been delivered
	cd.pending = cd.pending[:0]

	switch cmd {
	case CmdGetStat:
		cd.respond(INT3, responseDelay, cd.stat())

	case CmdSetloc:
		if len(params) < 3 {
			cd.fail(errWrongParameters)
			return
		}
		cd.setloc = MSF{
			Minute: FromBCD(params[0]),
			Second: FromBCD(params[1]),
			Frame:  FromBCD(params[2]),
		}
		cd.respond(INT3, responseDelay, cd.stat())

	case CmdReadN, CmdReadS:
		if cd.disc == nil {
			cd.fail(errNoDisc)
			return
		}
		cd.position = cd.setloc.LBA()
		cd.reading = true
		cd.readWait = cd.period()
		cd.respond(INT3, responseDelay, cd.stat())

	case CmdPause:
		s := cd.stat()
		cd.reading = false
		cd.respond(INT3, responseDelay, s)
		cd.respond(INT2, secondDelay, cd.stat())

	case CmdInit:
		cd.reading = false
		cd.mode = 0
		cd.respond(INT3, responseDelay, cd.stat())
		cd.respond(INT2, secondDelay, cd.stat())

	case CmdMute, CmdDemute:
		cd.respond(INT3, responseDelay, cd.stat())

	case CmdSetmode:
		if len(params) < 1 {
			cd.fail(errWrongParameters)
			return
		}
		cd.mode = params[0]
		cd.respond(INT3, responseDelay, cd.stat())

	case CmdSeekL, CmdSeekP:
		if cd.disc == nil {
			cd.fail(errNoDisc)
			return
		}
		cd.reading = false
		cd.position = cd.setloc.LBA()
		cd.respond(INT3, responseDelay, cd.stat())
		cd.respond(INT2, secondDelay, cd.stat())

	case CmdTest:
		if len(params) < 1 {
			cd.fail(errWrongParameters)
			return
		}
		if params[0] != 0x20 {
			logger.Logf(logger.Allow, "cdrom", "unsupported test function %02x", params[0])
			cd.fail(errInvalidParameter)
			return
		}
		cd.respond(INT3, responseDelay, biosVersion...)

	case CmdGetID:
		if cd.disc == nil {
			cd.respond(INT5, responseDelay, 0x08, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
			return
		}
		cd.respond(INT3, responseDelay, cd.stat())
		cd.respond(INT2, secondDelay, append([]uint8{0x02, 0x00, 0x20, 0x00}, licence...)...)

	default:
		logger.Logf(logger.Allow, "cdrom", "unsupported command %02x", cmd)
		cd.fail(errInvalidCommand)
	}
}

// fail queues an error response.
func (cd *CDROM) fail(code uint8) {
	cd.respond(INT5, responseDelay, cd.stat()|StatError, code)
}
