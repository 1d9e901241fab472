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

package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/rasterizer"
	"golang.org/x/image/draw"
)

// ScreenshotError is the pattern used for errors returned by Save().
const ScreenshotError = "screenshot: %v"

// Screenshot is an implementation of the rasterizer.Presenter interface that
// keeps a copy of the most recent frame. Frames are passed on to the next
// presenter, if there is one.
type Screenshot struct {
	next rasterizer.Presenter

	crit     sync.Mutex
	frame    *image.RGBA
	frameNum int
}

// NewScreenshot is the preferred method of initialisation for the Screenshot
// type. The next presenter can be nil.
func NewScreenshot(next rasterizer.Presenter) *Screenshot {
	return &Screenshot{next: next}
}

// Present implements the rasterizer.Presenter interface.
func (scr *Screenshot) Present(frame *image.RGBA) error {
	scr.crit.Lock()
	if scr.frame == nil || scr.frame.Rect != frame.Rect {
		scr.frame = image.NewRGBA(frame.Rect)
	}
	copy(scr.frame.Pix, frame.Pix)
	scr.frameNum++
	scr.crit.Unlock()

	if scr.next != nil {
		return scr.next.Present(frame)
	}
	return nil
}

// Image returns a copy of the most recent frame scaled to a 4:3 aspect ratio.
// Returns nil if no frame has been presented.
func (scr *Screenshot) Image() *image.RGBA {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if scr.frame == nil {
		return nil
	}

	h := scr.frame.Rect.Dy()
	w := h * 4 / 3
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(img, img.Bounds(), scr.frame, scr.frame.Bounds(), draw.Src, nil)

	return img
}

// Save the most recent frame. The frame number and file extension is appended
// to the supplied filename base. The filename of the saved image is returned.
func (scr *Screenshot) Save(fileNameBase string) (string, error) {
	img := scr.Image()
	if img == nil {
		return "", curated.Errorf(ScreenshotError, "no frame to save")
	}

	scr.crit.Lock()
	imageName := fmt.Sprintf("%s_%d.png", fileNameBase, scr.frameNum)
	scr.crit.Unlock()

	f, err := os.OpenFile(imageName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", curated.Errorf(ScreenshotError, fmt.Sprintf("image file (%s) already exists", imageName))
		}
		return "", curated.Errorf(ScreenshotError, err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return "", curated.Errorf(ScreenshotError, err)
	}

	return imageName, nil
}
