package integrations

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/kerbaras/mangareader/pkg/reader"
)

// asciiRamp goes from dark to light.
const asciiRamp = " .:-=+*#%@"

// DecodePage decodes a page image. JPEG, PNG, GIF and WebP are supported.
func DecodePage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// FitDimensions scales a width x height page into a viewport. FitWidth
// matches the viewport width, FitHeight the height, FitBoth keeps the whole
// page visible. Zoom multiplies the result.
func FitDimensions(width, height, viewWidth, viewHeight int, fit reader.FitMode, zoom float64) (int, int) {
	if width <= 0 || height <= 0 || viewWidth <= 0 || viewHeight <= 0 {
		return 0, 0
	}

	widthScale := float64(viewWidth) / float64(width)
	heightScale := float64(viewHeight) / float64(height)

	var scale float64
	switch fit {
	case reader.FitHeight:
		scale = heightScale
	case reader.FitBoth:
		scale = math.Min(widthScale, heightScale)
	default:
		scale = widthScale
	}
	if zoom > 0 {
		scale *= zoom
	}

	newWidth := int(math.Round(float64(width) * scale))
	newHeight := int(math.Round(float64(height) * scale))
	return max(newWidth, 1), max(newHeight, 1)
}

// FitPage resizes img for the viewport using the reader's fit mode and zoom.
func FitPage(img image.Image, fit reader.FitMode, zoom float64, viewWidth, viewHeight int) image.Image {
	bounds := img.Bounds()
	width, height := FitDimensions(bounds.Dx(), bounds.Dy(), viewWidth, viewHeight, fit, zoom)
	if width == 0 || (width == bounds.Dx() && height == bounds.Dy()) {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// ToGrayscale converts an image to grayscale.
func ToGrayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// RenderASCII draws a page as text for a cols x rows terminal area.
// Terminal cells are about twice as tall as wide, so every row samples two
// pixel rows. Output beyond the area is cropped.
func RenderASCII(img image.Image, fit reader.FitMode, zoom float64, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	gray := ToGrayscale(FitPage(img, fit, zoom, cols, rows*2))
	bounds := gray.Bounds()

	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y && (y-bounds.Min.Y)/2 < rows; y += 2 {
		if y > bounds.Min.Y {
			sb.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X && x-bounds.Min.X < cols; x++ {
			lum := int(gray.GrayAt(x, y).Y)
			if y+1 < bounds.Max.Y {
				lum = (lum + int(gray.GrayAt(x, y+1).Y)) / 2
			}
			sb.WriteByte(asciiRamp[lum*(len(asciiRamp)-1)/255])
		}
	}
	return sb.String()
}
