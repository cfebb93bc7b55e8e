// Package banner renders words as large block art using half-block characters.
package banner

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face font.Face = basicfont.Face7x13

// threshold is the gray level above which a pixel counts as "on".
const threshold = 40

// Render draws text at the font's native size. Each terminal row holds two
// pixel rows, so a 7x13 face yields 7 lines per banner.
func Render(text string) string {
	if text == "" {
		return ""
	}
	img := rasterize(text)
	b := img.Bounds()
	return imageToHalfBlocks(img, b.Dx(), (b.Dy()+1)/2)
}

// RenderFit draws text scaled down to at most cols x rows cells.
// It returns the native rendering when that already fits.
func RenderFit(text string, cols, rows int) string {
	if text == "" || cols <= 0 || rows <= 0 {
		return ""
	}
	img := rasterize(text)
	b := img.Bounds()
	if b.Dx() <= cols && (b.Dy()+1)/2 <= rows {
		return imageToHalfBlocks(img, b.Dx(), (b.Dy()+1)/2)
	}
	return imageToHalfBlocks(scaleDown(img, cols, rows*2), cols, rows)
}

// rasterize draws text white on black, cropped to the face's line box.
func rasterize(text string) *image.Gray {
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	return img
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			// Keep at least one source pixel per cell when upscaling.
			sx2 = max(sx2, sx1+1)
			sy2 = max(sy2, sy1+1)

			var sum, count int
			for sy := sy1; sy < sy2 && sy < srcHeight; sy++ {
				for sx := sx1; sx < sx2 && sx < srcWidth; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				b.WriteRune('█')
			case topOn:
				b.WriteRune('▀')
			case bottomOn:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

type cacheKey struct {
	text       string
	cols, rows int
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]string)
)

// Cached returns a cached RenderFit result, rendering on first use.
func Cached(text string, cols, rows int) string {
	key := cacheKey{text, cols, rows}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cache[key]; ok {
		return s
	}
	s := RenderFit(text, cols, rows)
	cache[key] = s
	return s
}
