package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a premultiplied RGBA render to size×size with
// CatmullRom filtering and returns it unpremultiplied. Filtering in
// premultiplied space avoids dark fringes at transparent edges.
func Downsample(img *image.RGBA, size int) *image.NRGBA {
	src := img
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		src = image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(src, src.Bounds(), img, b, draw.Src, nil)
	}

	result := image.NewNRGBA(src.Bounds())
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			si := src.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(src.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(src.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(src.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(src.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = src.Pix[si+3]
		}
	}
	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
