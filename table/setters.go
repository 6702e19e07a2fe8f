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

package table

import (
	"strconv"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/optional"
)

// Bits of the dimzin and dimtzin zero suppression fields.
const (
	SuppressLeadingZeros  = 4
	SuppressTrailingZeros = 8
)

// SetArrows selects the arrowhead blocks shown at the two ends of the
// dimension line.  blk applies to both ends; blk1 and blk2 override
// the first and second end when separate arrowheads are enabled via
// the dimsah field.  Arrowheads and ticks are mutually exclusive, so
// the tick size is reset to zero.
func (s *DimStyle) SetArrows(blk, blk1, blk2 string) error {
	fields := []struct {
		name, arrow string
	}{
		{"dimblk", blk},
		{"dimblk1", blk1},
		{"dimblk2", blk2},
	}
	for _, f := range fields {
		if err := s.Set(f.name, f.arrow); err != nil {
			return err
		}
	}
	return s.Set("dimtsz", 0.0)
}

// SetTick switches the ends of the dimension line from arrowheads to
// oblique tick strokes of the given size.  A size of zero re-enables
// arrowheads.
func (s *DimStyle) SetTick(size float64) error {
	return s.Set("dimtsz", size)
}

// Vertical text placement names, mapped to dimtad values.
var dimtadValues = map[string]int{
	"above":  1,
	"center": 0,
	"below":  4,
}

// Horizontal text placement names, mapped to dimjust values.
var dimjustValues = map[string]int{
	"center": 0,
	"left":   1,
	"right":  2,
	"above1": 3,
	"above2": 4,
}

// TextAlign describes the placement of measurement text relative to
// the dimension line.
type TextAlign struct {
	// Horizontal is one of "center", "left", "right", "above1" or
	// "above2", or empty to leave the placement unchanged.
	Horizontal string

	// Vertical is one of "above", "center" or "below", or empty to
	// leave the placement unchanged.
	Vertical string

	// VShift moves vertically centered text up or down by a multiple
	// of the text height.  It only applies when Vertical is "center".
	VShift optional.Float
}

// SetTextAlign sets the text placement fields.
func (s *DimStyle) SetTextAlign(a TextAlign) error {
	if a.Vertical != "" {
		v, ok := dimtadValues[a.Vertical]
		if !ok {
			return dxf.Error("invalid vertical text placement " +
				strconv.Quote(a.Vertical))
		}
		if err := s.Set("dimtad", v); err != nil {
			return err
		}
		if a.Vertical == "center" {
			if shift, ok := a.VShift.Get(); ok {
				if err := s.Set("dimtvp", shift); err != nil {
					return err
				}
			}
		}
	}
	if a.Horizontal != "" {
		v, ok := dimjustValues[a.Horizontal]
		if !ok {
			return dxf.Error("invalid horizontal text placement " +
				strconv.Quote(a.Horizontal))
		}
		if err := s.Set("dimjust", v); err != nil {
			return err
		}
	}
	return nil
}

// TextFormat describes how a measurement value is converted to text.
// Unset fields leave the corresponding style fields unchanged.
type TextFormat struct {
	// Prefix and Postfix are placed before and after the measurement
	// text.
	Prefix, Postfix string

	// Round rounds the measurement to the nearest multiple of the
	// given value.
	Round optional.Float

	// Decimals is the number of decimal places.
	Decimals optional.Int

	// Separator replaces the decimal point.
	Separator rune

	// LeadingZeros and TrailingZeros control zero suppression: a
	// value of false suppresses the corresponding zeros.
	LeadingZeros, TrailingZeros optional.Bool
}

// SetTextFormat sets the measurement text formatting fields.
func (s *DimStyle) SetTextFormat(o TextFormat) error {
	if o.Prefix != "" || o.Postfix != "" {
		err := s.Set("dimpost", o.Prefix+"<>"+o.Postfix)
		if err != nil {
			return err
		}
	}
	if x, ok := o.Round.Get(); ok {
		if err := s.Set("dimrnd", x); err != nil {
			return err
		}
	}
	if d, ok := o.Decimals.Get(); ok {
		if err := s.Set("dimdec", d); err != nil {
			return err
		}
	}
	if o.Separator != 0 {
		if err := s.Set("dimdsep", int(o.Separator)); err != nil {
			return err
		}
	}
	if zin, ok := suppressionBits(o.LeadingZeros, o.TrailingZeros); ok {
		if err := s.Set("dimzin", zin); err != nil {
			return err
		}
	}
	return nil
}

// suppressionBits translates the two zero suppression switches into a
// dimzin/dimtzin bit mask.  The second return value reports whether
// any switch was set at all.
func suppressionBits(leading, trailing optional.Bool) (int, bool) {
	anySet := false
	bits := 0
	if v, ok := leading.Get(); ok {
		anySet = true
		if !v {
			bits += SuppressLeadingZeros
		}
	}
	if v, ok := trailing.Get(); ok {
		anySet = true
		if !v {
			bits += SuppressTrailingZeros
		}
	}
	return bits, anySet
}

// LineFormat describes the appearance of the dimension line.  Unset
// fields leave the corresponding style fields unchanged.
type LineFormat struct {
	// Color is an AutoCAD color index.
	Color optional.Int

	// Linetype is the name of a linetype.  Linetype support requires
	// DXF R2007.
	Linetype string

	// Lineweight is a line width in 1/100 mm, or one of the special
	// values -1 (by layer), -2 (by block) or -3 (default).
	Lineweight optional.Int

	// Extension extends the dimension line beyond the extension
	// lines.  This only takes effect for ends drawn with oblique
	// strokes instead of arrowheads.
	Extension optional.Float

	// Disable1 and Disable2 suppress the part of the dimension line
	// between the text and the first or second extension line.
	Disable1, Disable2 optional.Bool
}

// SetDimlineFormat sets the dimension line appearance fields.
func (s *DimStyle) SetDimlineFormat(o LineFormat) error {
	if c, ok := o.Color.Get(); ok {
		if err := s.Set("dimclrd", c); err != nil {
			return err
		}
	}
	if x, ok := o.Extension.Get(); ok {
		if err := s.Set("dimdle", x); err != nil {
			return err
		}
	}
	if lw, ok := o.Lineweight.Get(); ok {
		if err := s.Set("dimlwd", lw); err != nil {
			return err
		}
	}
	if v, ok := o.Disable1.Get(); ok {
		if err := s.Set("dimsd1", boolInt(v)); err != nil {
			return err
		}
	}
	if v, ok := o.Disable2.Get(); ok {
		if err := s.Set("dimsd2", boolInt(v)); err != nil {
			return err
		}
	}
	if o.Linetype != "" {
		if err := s.Set("dimltype", o.Linetype); err != nil {
			return err
		}
	}
	return nil
}

// ExtlineFormat describes the appearance of the extension lines.
// Unset fields leave the corresponding style fields unchanged.
type ExtlineFormat struct {
	// Color is an AutoCAD color index.
	Color optional.Int

	// Lineweight is a line width in 1/100 mm, or one of the special
	// values -1 (by layer), -2 (by block) or -3 (default).
	Lineweight optional.Int

	// Extension extends the extension lines beyond the dimension
	// line.
	Extension optional.Float

	// Offset is the gap between the definition points and the start
	// of the extension lines.
	Offset optional.Float

	// FixedLength gives the extension lines a fixed length, measured
	// back from the dimension line.  This requires DXF R2007.
	FixedLength optional.Float
}

// SetExtlineFormat sets the extension line appearance fields.
func (s *DimStyle) SetExtlineFormat(o ExtlineFormat) error {
	if c, ok := o.Color.Get(); ok {
		if err := s.Set("dimclre", c); err != nil {
			return err
		}
	}
	if lw, ok := o.Lineweight.Get(); ok {
		if err := s.Set("dimlwe", lw); err != nil {
			return err
		}
	}
	if x, ok := o.Extension.Get(); ok {
		if err := s.Set("dimexe", x); err != nil {
			return err
		}
	}
	if x, ok := o.Offset.Get(); ok {
		if err := s.Set("dimexo", x); err != nil {
			return err
		}
	}
	if x, ok := o.FixedLength.Get(); ok {
		if err := s.Set("dimfxlon", 1); err != nil {
			return err
		}
		if err := s.Set("dimfxl", x); err != nil {
			return err
		}
	}
	return nil
}

// SetExtline1 configures the first extension line.  A non-empty
// linetype name requires DXF R2007.
func (s *DimStyle) SetExtline1(linetype string, disable bool) error {
	if err := s.Set("dimse1", boolInt(disable)); err != nil {
		return err
	}
	if linetype != "" {
		return s.Set("dimltex1", linetype)
	}
	return nil
}

// SetExtline2 configures the second extension line.  A non-empty
// linetype name requires DXF R2007.
func (s *DimStyle) SetExtline2(linetype string, disable bool) error {
	if err := s.Set("dimse2", boolInt(disable)); err != nil {
		return err
	}
	if linetype != "" {
		return s.Set("dimltex2", linetype)
	}
	return nil
}

// SetLinetypes sets the linetype of the dimension line and of the two
// extension lines.  Linetype support requires DXF R2007; for older
// documents the call is ignored.
func (s *DimStyle) SetLinetypes(dimline, ext1, ext2 string) error {
	if s.doc != nil && s.doc.Version() < dxf.R2007 {
		s.log().Debug("DIMSTYLE linetypes require DXF R2007 or newer")
		return nil
	}
	fields := []struct {
		name, linetype string
	}{
		{"dimltype", dimline},
		{"dimltex1", ext1},
		{"dimltex2", ext2},
	}
	for _, f := range fields {
		if f.linetype == "" {
			continue
		}
		if err := s.Set(f.name, f.linetype); err != nil {
			return err
		}
	}
	return nil
}

// Vertical alignment values for stacked tolerance text (dimtolj).
const (
	ToleranceBottom = 0
	ToleranceMiddle = 1
	ToleranceTop    = 2
)

// Tolerance describes a plus/minus tolerance appended to the
// measurement text.
type Tolerance struct {
	// Upper is the upper deviation.
	Upper float64

	// Lower is the lower deviation.  If unset, the upper deviation is
	// used for both.
	Lower optional.Float

	// HFactor scales the tolerance text relative to the measurement
	// text height.  If unset, a factor of 1 is used.
	HFactor optional.Float

	// Align is the vertical alignment of stacked tolerance text, one
	// of ToleranceBottom, ToleranceMiddle or ToleranceTop.  If unset,
	// the current alignment is kept.
	Align optional.Int

	// Decimals is the number of decimal places of the tolerance
	// values.
	Decimals optional.Int

	// LeadingZeros and TrailingZeros control zero suppression for the
	// tolerance values: a value of false suppresses the corresponding
	// zeros.
	LeadingZeros, TrailingZeros optional.Bool
}

// SetTolerance enables tolerance display.  Tolerance and limits
// display are mutually exclusive; enabling one disables the other.
// Fields which require DXF R2000 are skipped for older documents.
func (s *DimStyle) SetTolerance(o Tolerance) error {
	if err := s.Set("dimtol", 1); err != nil {
		return err
	}
	if err := s.Set("dimlim", 0); err != nil {
		return err
	}
	if err := s.Set("dimtp", o.Upper); err != nil {
		return err
	}
	lower := o.Upper
	if x, ok := o.Lower.Get(); ok {
		lower = x
	}
	if err := s.Set("dimtm", lower); err != nil {
		return err
	}

	if s.Supports("dimtfac") {
		hfactor := 1.0
		if x, ok := o.HFactor.Get(); ok {
			hfactor = x
		}
		if err := s.Set("dimtfac", hfactor); err != nil {
			return err
		}
	}
	if a, ok := o.Align.Get(); ok && s.Supports("dimtolj") {
		if err := s.Set("dimtolj", a); err != nil {
			return err
		}
	}
	if d, ok := o.Decimals.Get(); ok && s.Supports("dimtdec") {
		if err := s.Set("dimtdec", d); err != nil {
			return err
		}
	}
	zin, ok := suppressionBits(o.LeadingZeros, o.TrailingZeros)
	if ok && s.Supports("dimtzin") {
		if err := s.Set("dimtzin", zin); err != nil {
			return err
		}
	}
	return nil
}

// Limits describes a limits display, where the measurement text is
// replaced by the upper and lower bound of the measurement.
type Limits struct {
	// Upper is the deviation added to the measurement to give the
	// upper bound.
	Upper float64

	// Lower is the deviation subtracted from the measurement to give
	// the lower bound.
	Lower float64

	// HFactor scales the limit text relative to the measurement text
	// height.  If unset, a factor of 1 is used.
	HFactor optional.Float

	// Decimals is the number of decimal places of the limit values.
	Decimals optional.Int

	// LeadingZeros and TrailingZeros control zero suppression for the
	// limit values: a value of false suppresses the corresponding
	// zeros.
	LeadingZeros, TrailingZeros optional.Bool
}

// SetLimits enables limits display.  Tolerance and limits display are
// mutually exclusive; enabling one disables the other.  Fields which
// require DXF R2000 are skipped for older documents.
func (s *DimStyle) SetLimits(o Limits) error {
	if err := s.Set("dimlim", 1); err != nil {
		return err
	}
	if err := s.Set("dimtol", 0); err != nil {
		return err
	}
	if err := s.Set("dimtp", o.Upper); err != nil {
		return err
	}
	if err := s.Set("dimtm", o.Lower); err != nil {
		return err
	}

	if s.Supports("dimtfac") {
		hfactor := 1.0
		if x, ok := o.HFactor.Get(); ok {
			hfactor = x
		}
		if err := s.Set("dimtfac", hfactor); err != nil {
			return err
		}
	}
	// limit values are always stacked bottom aligned
	if s.Supports("dimtolj") {
		if err := s.Set("dimtolj", ToleranceBottom); err != nil {
			return err
		}
	}
	if d, ok := o.Decimals.Get(); ok && s.Supports("dimtdec") {
		if err := s.Set("dimtdec", d); err != nil {
			return err
		}
	}
	zin, ok := suppressionBits(o.LeadingZeros, o.TrailingZeros)
	if ok && s.Supports("dimtzin") {
		if err := s.Set("dimtzin", zin); err != nil {
			return err
		}
	}
	return nil
}

// ToleranceMode describes which of the mutually exclusive tolerance
// and limits displays is active.
type ToleranceMode int

const (
	ToleranceOff ToleranceMode = iota
	ToleranceDeviation
	ToleranceLimits
)

func (m ToleranceMode) String() string {
	switch m {
	case ToleranceOff:
		return "off"
	case ToleranceDeviation:
		return "deviation"
	case ToleranceLimits:
		return "limits"
	default:
		return "ToleranceMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ToleranceMode returns the display mode encoded in the dimtol and
// dimlim flags.
func (s *DimStyle) ToleranceMode() ToleranceMode {
	if n, _ := s.values["dimlim"].(int); n != 0 {
		return ToleranceLimits
	}
	if n, _ := s.values["dimtol"].(int); n != 0 {
		return ToleranceDeviation
	}
	return ToleranceOff
}

// SetToleranceMode sets the dimtol and dimlim flags, leaving the
// deviation values untouched.
func (s *DimStyle) SetToleranceMode(m ToleranceMode) {
	s.values["dimtol"] = boolInt(m == ToleranceDeviation)
	s.values["dimlim"] = boolInt(m == ToleranceLimits)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
