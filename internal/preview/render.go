package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"

	"motion-controller-rig/internal/mathutil"
)

var (
	boneColor   = image.NewUniform(color.RGBA{150, 150, 165, 255})
	buttonColor = image.NewUniform(color.RGBA{240, 140, 30, 255})
	axisColor   = image.NewUniform(color.RGBA{40, 190, 220, 255})
)

// Render draws p through mathutil.PreviewView into a size×size image.
// Drawing happens at size*supersample and is downsampled afterwards.
func Render(p Pose, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	dst := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))

	view := mathutil.PreviewView
	var pts []mgl64.Vec3
	for _, s := range p.Segments {
		pts = append(pts, view.Mul3x1(s.From), view.Mul3x1(s.To))
	}
	for _, m := range p.Markers {
		pts = append(pts, view.Mul3x1(m.At))
	}
	if len(pts) == 0 {
		return Downsample(dst, size)
	}

	// Fit the projected bounding box into the frame.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range pts {
		minX, maxX = math.Min(minX, v[0]), math.Max(maxX, v[0])
		minY, maxY = math.Min(minY, v[1]), math.Max(maxY, v[1])
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span < 1e-6 {
		span = 1e-6
	}
	margin := float64(16 * supersample)
	scale := (float64(renderSize) - 2*margin) / span
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	project := func(v mgl64.Vec3) (float32, float32) {
		v = view.Mul3x1(v)
		x := float64(renderSize)/2 + (v[0]-cx)*scale
		y := float64(renderSize)/2 - (v[1]-cy)*scale
		return float32(x), float32(y)
	}

	z := vector.NewRasterizer(renderSize, renderSize)
	width := float32(1.5 * float64(supersample))
	for _, s := range p.Segments {
		x0, y0 := project(s.From)
		x1, y1 := project(s.To)
		z.Reset(renderSize, renderSize)
		z.DrawOp = draw.Over
		line(z, x0, y0, x1, y1, width)
		z.Draw(dst, dst.Bounds(), boneColor, image.Point{})
	}

	radius := float32(3 * supersample)
	for _, m := range p.Markers {
		x, y := project(m.At)
		src := buttonColor
		if m.Kind == AxisMarker {
			src = axisColor
		}
		z.Reset(renderSize, renderSize)
		z.DrawOp = draw.Over
		diamond(z, x, y, radius)
		z.Draw(dst, dst.Bounds(), src, image.Point{})
	}

	return Downsample(dst, size)
}

// line adds a w-wide quad from (x0,y0) to (x1,y1).
func line(z *vector.Rasterizer, x0, y0, x1, y1, w float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l < 1e-3 {
		diamond(z, x0, y0, w)
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

func diamond(z *vector.Rasterizer, x, y, r float32) {
	z.MoveTo(x, y-r)
	z.LineTo(x+r, y)
	z.LineTo(x, y+r)
	z.LineTo(x-r, y)
	z.ClosePath()
}
