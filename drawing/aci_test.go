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
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	cases := []struct {
		aci  int
		want color.RGBA
	}{
		{1, color.RGBA{255, 0, 0, 255}},
		{2, color.RGBA{255, 255, 0, 255}},
		{3, color.RGBA{0, 255, 0, 255}},
		{4, color.RGBA{0, 255, 255, 255}},
		{5, color.RGBA{0, 0, 255, 255}},
		{6, color.RGBA{255, 0, 255, 255}},
		{7, color.RGBA{255, 255, 255, 255}},
		{8, color.RGBA{65, 65, 65, 255}},
		{9, color.RGBA{128, 128, 128, 255}},

		// the red column of the color wheel
		{10, color.RGBA{255, 0, 0, 255}},
		{11, color.RGBA{255, 127, 127, 255}},
		{12, color.RGBA{204, 0, 0, 255}},
		{13, color.RGBA{204, 102, 102, 255}},
		{18, color.RGBA{76, 0, 0, 255}},
		{19, color.RGBA{76, 38, 38, 255}},

		// hues between the primary colors
		{20, color.RGBA{255, 63, 0, 255}},
		{21, color.RGBA{255, 159, 127, 255}},

		// full brightness primaries around the wheel
		{50, color.RGBA{255, 255, 0, 255}},
		{90, color.RGBA{0, 255, 0, 255}},
		{130, color.RGBA{0, 255, 255, 255}},
		{170, color.RGBA{0, 0, 255, 255}},
		{210, color.RGBA{255, 0, 255, 255}},

		// grayscale ramp
		{250, color.RGBA{51, 51, 51, 255}},
		{253, color.RGBA{130, 130, 130, 255}},
		{255, color.RGBA{255, 255, 255, 255}},

		// ByBlock, ByLayer and out-of-range indices
		{0, color.RGBA{0, 0, 0, 255}},
		{256, color.RGBA{0, 0, 0, 255}},
		{-1, color.RGBA{0, 0, 0, 255}},
	}
	for _, c := range cases {
		got := DefaultPalette(c.aci)
		if got != c.want {
			t.Errorf("DefaultPalette(%d): got %v, want %v", c.aci, got, c.want)
		}
	}
}

func TestPaletteOpaque(t *testing.T) {
	for aci := 1; aci <= 255; aci++ {
		if got := DefaultPalette(aci).A; got != 255 {
			t.Errorf("DefaultPalette(%d): alpha %d", aci, got)
		}
	}
}
