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

package drawing

import (
	"image/color"
)

// Palette maps AutoCAD color indices to RGB colors.
type Palette func(aci int) color.RGBA

// DefaultPalette is the standard AutoCAD color table: the classic
// colors 1-9, the color wheel 10-249, and the grayscale ramp 250-255.
// Indices outside 1-255 map to opaque black.
//
// Index 7 is white, meant for the black canvas of a CAD screen.  The
// [Frontend] substitutes its foreground color for index 7, so that
// entities stay visible on light backgrounds.
func DefaultPalette(aci int) color.RGBA {
	if aci < 1 || aci > 255 {
		return color.RGBA{A: 255}
	}
	return aciTable[aci]
}

var aciTable = makeACITable()

// brightness of the five rows in each hue column of the color wheel
var aciRowValue = [5]int{255, 204, 153, 127, 76}

func makeACITable() (t [256]color.RGBA) {
	std := []color.RGBA{
		{255, 0, 0, 255},     // 1: red
		{255, 255, 0, 255},   // 2: yellow
		{0, 255, 0, 255},     // 3: green
		{0, 255, 255, 255},   // 4: cyan
		{0, 0, 255, 255},     // 5: blue
		{255, 0, 255, 255},   // 6: magenta
		{255, 255, 255, 255}, // 7: white
		{65, 65, 65, 255},    // 8: dark gray
		{128, 128, 128, 255}, // 9: light gray
	}
	copy(t[1:], std)

	// The color wheel consists of 24 hue columns, 15 degrees apart,
	// each with five brightness rows in a saturated and a washed-out
	// variant.
	for idx := 10; idx < 250; idx++ {
		hue := (idx - 10) / 10
		v := float64(aciRowValue[(idx-10)%10/2])
		r, g, b := hueRGB(hue, v)
		if idx%2 == 1 {
			r = (r + v) / 2
			g = (g + v) / 2
			b = (b + v) / 2
		}
		t[idx] = color.RGBA{uint8(r), uint8(g), uint8(b), 255}
	}

	grays := []uint8{51, 80, 105, 130, 190, 255}
	for i, y := range grays {
		t[250+i] = color.RGBA{y, y, y, 255}
	}
	return t
}

// hueRGB returns the fully saturated color of one hue column of the
// color wheel, scaled to brightness v.
func hueRGB(hue int, v float64) (r, g, b float64) {
	f := float64(hue%4) / 4
	switch hue / 4 {
	case 0: // red to yellow
		return v, v * f, 0
	case 1: // yellow to green
		return v * (1 - f), v, 0
	case 2: // green to cyan
		return 0, v, v * f
	case 3: // cyan to blue
		return 0, v * (1 - f), v
	case 4: // blue to magenta
		return v * f, 0, v
	default: // magenta to red
		return v, 0, v * (1 - f)
	}
}
