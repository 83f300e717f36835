// Package render draws a Screen's monitor arrangement as an image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/xrandroll/internal/model"
)

// DefaultWidth is the image width used when none is given.
const DefaultWidth = 800

// margin around the arrangement, in image pixels
const margin = 16

// Face glyph metrics for basicfont.Face7x13
const (
	glyphWidth = 7
	lineHeight = 13
)

var (
	background    = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	monitorFill   = color.RGBA{R: 70, G: 110, B: 160, A: 255}
	primaryFill   = color.RGBA{R: 60, G: 140, B: 90, A: 255}
	outlineColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shadowColor   = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	replicaStroke = color.RGBA{R: 240, G: 180, B: 60, A: 255}
)

// Layout draws every enabled monitor of s, scaled so the union of their
// rectangles fits width pixels. Monitors that replicate another are
// outlined in a different color. It returns an error when no monitor is
// enabled.
func Layout(s *model.Screen, width int) (*image.RGBA, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	bounds := s.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("no enabled outputs to draw")
	}
	inner := width - 2*margin
	if inner < 1 {
		return nil, fmt.Errorf("width %d is too small", width)
	}

	scale := float64(inner) / float64(bounds.Dx())
	height := int(float64(bounds.Dy())*scale) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	toImage := func(x, y int) (int, int) {
		return margin + int(float64(x-bounds.Min.X)*scale), margin + int(float64(y-bounds.Min.Y)*scale)
	}

	for _, mon := range s.MonitorList() {
		if !mon.Enabled {
			continue
		}
		r := mon.Rect()
		x1, y1 := toImage(r.Min.X, r.Min.Y)
		x2, y2 := toImage(r.Max.X, r.Max.Y)

		fill := monitorFill
		if mon.Primary {
			fill = primaryFill
		}
		draw.Draw(img, image.Rect(x1, y1, x2, y2), image.NewUniform(fill), image.Point{}, draw.Over)

		stroke := outlineColor
		if len(mon.ReplicaOf) > 0 {
			stroke = replicaStroke
		}
		drawRectangle(img, x1, y1, x2, y2, stroke)
		drawLabels(img, labels(mon), (x1+x2)/2, (y1+y2)/2)
	}
	return img, nil
}

// labels lists the text lines drawn inside a monitor's rectangle.
func labels(mon *model.Monitor) []string {
	lines := []string{mon.Output, fmt.Sprintf("%dx%d", mon.ResX, mon.ResY)}
	if mon.Orientation != model.Normal {
		lines = append(lines, mon.Orientation.String())
	}
	if mon.Primary {
		lines = append(lines, "primary")
	}
	return lines
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// drawRectangle draws a rectangle outline clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	r := image.Rect(x1, y1, x2, y2).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawLabels draws lines of text centered on (cx, cy), each with a
// one-pixel shadow so it stays readable on any fill.
func drawLabels(img *image.RGBA, lines []string, cx, cy int) {
	top := cy - len(lines)*lineHeight/2
	for i, text := range lines {
		x := cx - len(text)*glyphWidth/2
		baseline := top + (i+1)*lineHeight - 3
		drawText(img, text, x+1, baseline+1, shadowColor)
		drawText(img, text, x, baseline, textColor)
	}
}

func drawText(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
