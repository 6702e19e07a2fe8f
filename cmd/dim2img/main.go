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

// Command dim2img renders a linear dimension to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/document"
	"seehuhn.de/go/dxf/drawing"
	"seehuhn.de/go/dxf/drawing/raster"
	"seehuhn.de/go/dxf/render"
)

func main() {
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 600, "image height in pixels")
	text := flag.String("text", "", "dimension text (\"<>\" inserts the measurement)")
	arrow := flag.String("arrow", "", "arrowhead name, e.g. \"OBLIQUE\" or \"DOT\"")
	tick := flag.Float64("tick", 0, "tick size, replaces the arrowheads")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Printf("Usage: %s [options] output.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputFile := flag.Arg(0)

	doc, err := document.New(dxf.R2000)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating document: %v\n", err)
		os.Exit(1)
	}

	sty, err := doc.DimStyle("Standard")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dimension style: %v\n", err)
		os.Exit(1)
	}
	settings := []struct {
		name  string
		value float64
	}{
		{"dimtxt", 0.5},
		{"dimasz", 0.35},
		{"dimgap", 0.15},
		{"dimexo", 0.12},
		{"dimexe", 0.18},
	}
	for _, s := range settings {
		if err := sty.Set(s.name, s.value); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting %s: %v\n", s.name, err)
			os.Exit(1)
		}
	}
	if *arrow != "" {
		if err := sty.SetArrows(*arrow, "", ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting arrows: %v\n", err)
			os.Exit(1)
		}
	}
	if *tick > 0 {
		if err := sty.SetTick(*tick); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting tick size: %v\n", err)
			os.Exit(1)
		}
	}

	dim := doc.AddLinearDim(dxf.Vec3{Y: 2}, dxf.Vec3{}, dxf.Vec3{X: 6},
		&document.LinearDimOptions{Text: *text})
	if err := render.Render(doc, dim, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering dimension: %v\n", err)
		os.Exit(1)
	}

	// First pass: find the extent of the drawing.
	bounds := &drawing.Bounds{}
	front := &drawing.Frontend{Doc: doc, Out: bounds}
	front.DrawModelspace()
	view, ok := bounds.BBox()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: nothing to draw")
		os.Exit(1)
	}
	margin := 0.05 * math.Max(view.Dx(), view.Dy())
	view.LLx -= margin
	view.LLy -= margin
	view.URx += margin
	view.URy += margin

	// Second pass: draw into the image.
	out := raster.New(*width, *height, view, &raster.Options{Oversample: 2})
	front.Out = out
	front.DrawModelspace()

	file, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	err = png.Encode(file, out.Image())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully rendered the dimension to %s\n", outputFile)
}
