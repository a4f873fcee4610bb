package gauge

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"imu-attitude/internal/rotation"
)

// Classic attitude-indicator palette.
var (
	skyColor    = color.NRGBA{R: 70, G: 130, B: 200, A: 255}
	groundColor = color.NRGBA{R: 150, G: 90, B: 40, A: 255}
	lineColor   = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	tickColor   = color.NRGBA{R: 250, G: 210, B: 60, A: 255}
)

// Options controls a single gauge render.
type Options struct {
	Size        int          // output edge in pixels
	Supersample int          // render at Size×Supersample, then downsample
	Face        *image.NRGBA // optional dial face composited behind the horizon disk
}

// Render draws an artificial-horizon dial for the given attitude:
// a sky/ground disk split by the horizon line (roll tilts it, pitch
// shifts it) and a heading tick at the rim driven by azimuth.
// Pixels outside the disk stay transparent unless a face is given.
func Render(e rotation.Euler, opt Options) *image.NRGBA {
	size := opt.Size
	if size <= 0 {
		size = 256
	}
	ss := opt.Supersample
	if ss < 1 {
		ss = 1
	}
	s := size * ss
	img := image.NewNRGBA(image.Rect(0, 0, s, s))

	if opt.Face != nil {
		xdraw.ApproxBiLinear.Scale(img, img.Bounds(), opt.Face, opt.Face.Bounds(), xdraw.Src, nil)
	}

	cx, cy := float64(s)/2, float64(s)/2
	radius := float64(s) * 0.46
	// Horizon offset in pixels: a full radius at ±90° of pitch, so the
	// disk is all ground at straight-up and all sky at straight-down.
	pitchPx := e.Pitch / (math.Pi / 2) * radius
	sinR, cosR := math.Sin(e.Roll), math.Cos(e.Roll)
	lineW := float64(ss)

	for y := 0; y < s; y++ {
		dy := float64(y) - cy
		for x := 0; x < s; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			// Signed height above the horizon line. Screen y grows
			// downward; at zero roll this is -dy - pitchPx.
			h := dx*sinR - dy*cosR - pitchPx
			switch {
			case math.Abs(h) <= lineW:
				setPix(img, x, y, lineColor)
			case h > 0:
				setPix(img, x, y, skyColor)
			default:
				setPix(img, x, y, groundColor)
			}
		}
	}

	drawHeadingTick(img, e.Azimuth(), cx, cy, radius, float64(4*ss))

	if ss > 1 {
		img = downsample(img, size)
	}
	return img
}

// drawHeadingTick fills a small disc on the rim at the compass heading;
// azimuth 0 points to the top of the dial.
func drawHeadingTick(img *image.NRGBA, azimuth, cx, cy, radius, r float64) {
	tx := cx + radius*0.9*math.Sin(azimuth)
	ty := cy - radius*0.9*math.Cos(azimuth)
	x0, x1 := int(tx-r), int(tx+r)
	y0, y1 := int(ty-r), int(ty+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)-tx, float64(y)-ty
			if dx*dx+dy*dy <= r*r {
				setPix(img, x, y, tickColor)
			}
		}
	}
}

func setPix(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}
