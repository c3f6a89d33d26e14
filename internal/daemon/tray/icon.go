package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"sync"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/onetouch-io/onetouch/internal/models"
)

const iconSize = 64

var (
	iconColors = map[models.DeviceState]color.RGBA{
		models.DeviceEnabled:  {R: 135, G: 206, B: 250, A: 255},
		models.DeviceDisabled: {R: 255, G: 255, B: 255, A: 255},
		models.DeviceUnknown:  {R: 128, G: 128, B: 128, A: 255},
	}

	iconOnce  sync.Once
	iconCache map[models.DeviceState][]byte
)

// Icon returns the encoded tray icon for state: ICO on Windows, PNG elsewhere.
func Icon(state models.DeviceState) []byte {
	iconOnce.Do(func() {
		iconCache = make(map[models.DeviceState][]byte, len(iconColors))
		for s, c := range iconColors {
			data, err := encodeIcon(drawDot(c), runtime.GOOS == "windows")
			if err != nil {
				continue
			}
			iconCache[s] = data
		}
	})
	return iconCache[state]
}

// drawDot draws a filled circle inset 8px from each edge on a transparent square.
func drawDot(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	const inset = 8
	center := float64(iconSize) / 2
	radius := center - inset
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

func encodeIcon(img image.Image, asICO bool) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if asICO {
		err = ico.Encode(&buf, img)
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
