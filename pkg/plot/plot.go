// Package plot provides surfaces the generators draw onto.
//
// Generators only see the Sink interface. Canvas records coloured pixels the
// way a bitmap would; Density counts hits per pixel and renders them as a
// grayscale heat map. Both clip points that fall outside their bounds.
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// A Sink receives one call per generated point.
type Sink interface {
	Plot(x, y float64, c color.Color)
}

// A Surface is a Sink that can be rendered to an image.
type Surface interface {
	Sink
	Image() image.Image
	Stats() Stats
}

// Stats counts the points a surface accepted and the points it clipped.
type Stats struct {
	Plotted, Clipped int
}

// Canvas is an RGBA surface cleared to white.
type Canvas struct {
	img   *image.RGBA
	stats Stats
}

// NewCanvas allocates a width x height white canvas.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Plot sets the pixel containing (x, y) to c.
func (cv *Canvas) Plot(x, y float64, c color.Color) {
	px, py, ok := pixel(cv.img.Bounds(), x, y)
	if !ok {
		cv.stats.Clipped++
		return
	}
	cv.img.Set(px, py, c)
	cv.stats.Plotted++
}

func (cv *Canvas) Stats() Stats {
	return cv.stats
}

// Image returns the canvas contents.
func (cv *Canvas) Image() image.Image {
	return cv.img
}

// Density accumulates the number of points landing in each pixel. Colours are
// ignored.
type Density struct {
	width, height int
	counts        []int
	stats         Stats
}

func NewDensity(width, height int) *Density {
	return &Density{
		width:  width,
		height: height,
		counts: make([]int, width*height),
	}
}

func (d *Density) Plot(x, y float64, _ color.Color) {
	px, py, ok := pixel(image.Rect(0, 0, d.width, d.height), x, y)
	if !ok {
		d.stats.Clipped++
		return
	}
	d.counts[px+py*d.width]++
	d.stats.Plotted++
}

func (d *Density) Stats() Stats {
	return d.stats
}

// Count returns the number of hits on pixel (x, y).
func (d *Density) Count(x, y int) int {
	return d.counts[x+y*d.width]
}

// Image renders the hit counts on a white background, with the most visited
// pixel black.
func (d *Density) Image() image.Image {
	maxCount := 0
	for _, c := range d.counts {
		if c > maxCount {
			maxCount = c
		}
	}

	img := image.NewGray16(image.Rect(0, 0, d.width, d.height))
	for i, c := range d.counts {
		x := i % d.width
		y := i / d.width

		v := math.MaxUint16
		if maxCount > 0 {
			v = math.MaxUint16 - c*math.MaxUint16/maxCount
		}
		img.Set(x, y, color.Gray16{Y: uint16(v)})
	}

	return img
}

func pixel(bounds image.Rectangle, x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if fx < float64(bounds.Min.X) || fx >= float64(bounds.Max.X) ||
		fy < float64(bounds.Min.Y) || fy >= float64(bounds.Max.Y) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

var (
	_ Surface = (*Canvas)(nil)
	_ Surface = (*Density)(nil)
)
