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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
	"sync"

	"github.com/jetsetilly/gopherpsx/hardware/gpu/rasterizer"
)

// Video is an implementation of the rasterizer.Presenter interface that
// computes a SHA-1 value for every frame. The value of the previous frame is
// included in the data of the next frame so the digest is a fingerprint of
// every frame presented since the last reset.
//
// Frames are passed on to the next presenter, if there is one.
type Video struct {
	next rasterizer.Presenter

	crit   sync.Mutex
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type. The
// next presenter can be nil.
func NewVideo(next rasterizer.Presenter) *Video {
	return &Video{next: next}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.frames
}

// Present implements the rasterizer.Presenter interface.
func (dig *Video) Present(frame *image.RGBA) error {
	dig.crit.Lock()

	b := frame.Bounds()

	// length of pixels array contains enough room for the previous frames
	// digest value
	l := len(dig.digest) + b.Dx()*b.Dy()*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	i := copy(dig.pixels, dig.digest[:])
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := frame.RGBAAt(x, y)
			dig.pixels[i] = c.R
			dig.pixels[i+1] = c.G
			dig.pixels[i+2] = c.B
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	dig.crit.Unlock()

	if dig.next != nil {
		return dig.next.Present(frame)
	}
	return nil
}
