// seehuhn.de/go/dxf - a library for reading and writing DXF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster provides a drawing backend which renders into an
// in-memory image.
//
// Text is drawn as a filled placeholder box; rendering glyph outlines
// would require font metrics which the package does not have.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/drawing"
)

// Options control the creation of a raster backend.
type Options struct {
	// Background is the fill color of the image.  A nil Background
	// means white.
	Background color.Color

	// LineWidth is the stroke width in pixels.  Values below 1 are
	// replaced by 1.
	LineWidth float64

	// Oversample renders at a multiple of the requested size and
	// scales down in [Backend.Image].  Values below 1 are replaced
	// by 1.
	Oversample int
}

// Backend renders drawing primitives into an RGBA image.
type Backend struct {
	img *image.RGBA
	ras *vector.Rasterizer

	w, h       int // size of img in pixels
	oversample int
	halfWidth  float64 // half the stroke width in pixels

	m   matrix.Matrix // world to pixel coordinates
	aff f64.Aff3
}

var _ drawing.Backend = (*Backend)(nil)

// New creates a backend rendering the world window view into an image
// of width times height pixels.  The window is fitted into the image
// preserving the aspect ratio, and centered.
func New(width, height int, view rect.Rect, opt *Options) *Backend {
	if opt == nil {
		opt = &Options{}
	}
	oversample := opt.Oversample
	if oversample < 1 {
		oversample = 1
	}
	w := width * oversample
	h := height * oversample

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := opt.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	dx, dy := view.Dx(), view.Dy()
	if dx <= 0 {
		dx = 1
	}
	if dy <= 0 {
		dy = 1
	}
	scale := math.Min(float64(w)/dx, float64(h)/dy)
	ox := (float64(w) - scale*dx) / 2
	oy := (float64(h) - scale*dy) / 2

	// Pixel y grows downwards, so the y-axis is flipped and the
	// window's lower left corner goes to the lower left of the
	// centered area.
	m := matrix.Translate(-view.LLx, -view.LLy).
		Mul(matrix.Scale(scale, -scale)).
		Mul(matrix.Translate(ox, float64(h)-oy))

	halfWidth := opt.LineWidth / 2 * float64(oversample)
	if halfWidth < 0.5*float64(oversample) {
		halfWidth = 0.5 * float64(oversample)
	}

	return &Backend{
		img:        img,
		ras:        vector.NewRasterizer(w, h),
		w:          w,
		h:          h,
		oversample: oversample,
		halfWidth:  halfWidth,
		m:          m,
		aff:        f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]},
	}
}

// Transform returns the matrix mapping world coordinates to pixel
// coordinates of the rendered image.
func (b *Backend) Transform() matrix.Matrix {
	s := 1 / float64(b.oversample)
	return b.m.Mul(matrix.Scale(s, s))
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	if b.oversample == 1 {
		return b.img
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.w/b.oversample, b.h/b.oversample))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), b.img, b.img.Bounds(), draw.Src, nil)
	return dst
}

// pt maps a world point to pixel coordinates.
func (b *Backend) pt(p dxf.Vec3) (float64, float64) {
	x := b.aff[0]*p.X + b.aff[1]*p.Y + b.aff[2]
	y := b.aff[3]*p.X + b.aff[4]*p.Y + b.aff[5]
	return x, y
}

// segment adds the outline of a stroked line segment to the
// rasterizer.
func (b *Backend) segment(x1, y1, x2, y2 float64) {
	vx, vy := x2-x1, y2-y1
	l := math.Hypot(vx, vy)
	if l == 0 {
		return
	}
	nx := -vy / l * b.halfWidth
	ny := vx / l * b.halfWidth
	b.ras.MoveTo(float32(x1+nx), float32(y1+ny))
	b.ras.LineTo(float32(x2+nx), float32(y2+ny))
	b.ras.LineTo(float32(x2-nx), float32(y2-ny))
	b.ras.LineTo(float32(x1-nx), float32(y1-ny))
	b.ras.ClosePath()
}

// fill paints the accumulated rasterizer coverage and resets the
// rasterizer for the next primitive.
func (b *Backend) fill(p *drawing.Properties) {
	col := p.Color
	if t := p.Transparency; t > 0 {
		a := 1 - t
		if a < 0 {
			a = 0
		}
		// RGBA is alpha-premultiplied
		col = color.RGBA{
			R: uint8(a * float64(col.R)),
			G: uint8(a * float64(col.G)),
			B: uint8(a * float64(col.B)),
			A: uint8(a * float64(col.A)),
		}
	}
	b.ras.Draw(b.img, b.img.Bounds(), image.NewUniform(col), image.Point{})
	b.ras.Reset(b.w, b.h)
}

// DrawLine implements the [drawing.Backend] interface.
func (b *Backend) DrawLine(start, end dxf.Vec3, p *drawing.Properties) error {
	x1, y1 := b.pt(start)
	x2, y2 := b.pt(end)
	b.segment(x1, y1, x2, y2)
	b.fill(p)
	return nil
}

// DrawPoint implements the [drawing.Backend] interface.  Points are
// drawn as small filled squares.
func (b *Backend) DrawPoint(pt dxf.Vec3, p *drawing.Properties) error {
	x, y := b.pt(pt)
	r := 1.5 * b.halfWidth
	b.ras.MoveTo(float32(x-r), float32(y-r))
	b.ras.LineTo(float32(x+r), float32(y-r))
	b.ras.LineTo(float32(x+r), float32(y+r))
	b.ras.LineTo(float32(x-r), float32(y+r))
	b.ras.ClosePath()
	b.fill(p)
	return nil
}

// DrawFilledPolygon implements the [drawing.Backend] interface.
func (b *Backend) DrawFilledPolygon(points []dxf.Vec3, p *drawing.Properties) error {
	if len(points) < 3 {
		return nil
	}
	for i, q := range points {
		x, y := b.pt(q)
		if i == 0 {
			b.ras.MoveTo(float32(x), float32(y))
		} else {
			b.ras.LineTo(float32(x), float32(y))
		}
	}
	b.ras.ClosePath()
	b.fill(p)
	return nil
}

// DrawText implements the [drawing.Backend] interface.  The text is
// drawn as a filled box covering the estimated text extent.
func (b *Backend) DrawText(text string, mid dxf.Vec3, height, rotation float64, p *drawing.Properties) error {
	w := 0.6 * height * float64(len([]rune(text)))
	if w <= 0 || height <= 0 {
		return nil
	}
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	ux, uy := cos*w/2, sin*w/2
	vx, vy := -sin*height/2, cos*height/2
	corners := []dxf.Vec3{
		{X: mid.X - ux - vx, Y: mid.Y - uy - vy},
		{X: mid.X + ux - vx, Y: mid.Y + uy - vy},
		{X: mid.X + ux + vx, Y: mid.Y + uy + vy},
		{X: mid.X - ux + vx, Y: mid.Y - uy + vy},
	}
	return b.DrawFilledPolygon(corners, p)
}
