package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"

	"github.com/san-kum/wirecube/internal/viz"
)

var ErrNoFrames = errors.New("export: no frames to encode")

// Cell size in image pixels of one braille character.
const (
	charW = 8
	charH = 16
)

// CaptureCanvas rasterises the lit dots of c into a black and white image.
func CaptureCanvas(c *viz.Canvas) *image.Paletted {
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.White, color.Black})

	dotW, dotH := charW/2, charH/4
	pw, ph := c.PixelSize()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	return img
}

// minDelay is the shortest frame delay viewers honour; anything lower is
// played back at 10.
const minDelay = 2

// DelayForFPS converts a frame rate to a GIF delay in 100ths of a second,
// never below minDelay.
func DelayForFPS(fps int) int {
	if fps <= 0 {
		return minDelay
	}
	return max(minDelay, int(math.Round(100/float64(fps))))
}

// EncodeGIF writes frames as a looping animation. delay is in 100ths of a
// second per frame and is raised to minDelay when lower.
func EncodeGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if delay < minDelay {
		delay = minDelay
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
