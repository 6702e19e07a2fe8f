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

// Package arrows provides the catalog of built-in arrowheads used by
// dimensions and leaders.
//
// Arrowheads are identified by their canonical names.  The default
// "closed filled" arrowhead has the empty string as its name and is
// drawn directly by CAD applications; all other arrowheads live in
// anonymous-style block definitions whose names are formed by
// prefixing the arrowhead name with an underscore.
package arrows

import (
	"strconv"
	"strings"

	"seehuhn.de/go/dxf"
)

// The canonical names of the built-in arrowheads.
const (
	ClosedFilled = ""
	Closed       = "CLOSED"
	ClosedBlank  = "CLOSEDBLANK"
	Dot          = "DOT"
	DotSmall     = "DOTSMALL"
	DotBlank     = "DOTBLANK"
	Origin       = "ORIGIN"
	Open         = "OPEN"
	Open30       = "OPEN30"
	Open90       = "OPEN90"
	Oblique      = "OBLIQUE"
	ArchTick     = "ARCHTICK"
	BoxBlank     = "BOXBLANK"
	BoxFilled    = "BOXFILLED"
	Integral     = "INTEGRAL"
	None         = "NONE"
)

var builtin = map[string]bool{
	Closed:      true,
	ClosedBlank: true,
	Dot:         true,
	DotSmall:    true,
	DotBlank:    true,
	Origin:      true,
	Open:        true,
	Open30:      true,
	Open90:      true,
	Oblique:     true,
	ArchTick:    true,
	BoxBlank:    true,
	BoxFilled:   true,
	Integral:    true,
	None:        true,
}

// IsClosedFilled reports whether name denotes the default closed
// filled arrowhead.  The empty string is the canonical name; the
// spelled-out aliases are accepted for convenience.
func IsClosedFilled(name string) bool {
	switch strings.ToUpper(name) {
	case ClosedFilled, "CLOSEDFILLED", "_CLOSEDFILLED", "CLOSED_FILLED":
		return true
	}
	return false
}

// IsBuiltin reports whether name is the name of a built-in arrowhead.
func IsBuiltin(name string) bool {
	return IsClosedFilled(name) || builtin[strings.ToUpper(name)]
}

// Name returns the canonical form of a built-in arrowhead name, or
// name unchanged if it is not a built-in arrowhead.
func Name(name string) string {
	if IsClosedFilled(name) {
		return ClosedFilled
	}
	if u := strings.ToUpper(name); builtin[u] {
		return u
	}
	return name
}

// BlockName returns the name of the block definition holding the
// geometry of a built-in arrowhead.
func BlockName(name string) string {
	if IsClosedFilled(name) {
		return "_CLOSEDFILLED"
	}
	return "_" + Name(name)
}

// ArrowName maps a block name back to the canonical arrowhead name.
// Block names which do not belong to a built-in arrowhead are passed
// through unchanged.
func ArrowName(blockName string) string {
	if rest, ok := strings.CutPrefix(blockName, "_"); ok && IsBuiltin(rest) {
		return Name(rest)
	}
	return blockName
}

// HasExtensionLine reports whether the arrowhead is drawn as a stroke
// across the dimension line, so that the line visually continues
// beyond the attachment point.
func HasExtensionLine(name string) bool {
	switch Name(name) {
	case Oblique, ArchTick, Integral, None:
		return true
	}
	return false
}

// Blocks is the subset of the document block table needed to create
// arrowhead blocks on demand.
type Blocks interface {
	Has(name string) bool
	New(name string) (Layout, error)
}

// CreateBlock ensures that the block definition for a built-in
// arrowhead exists, and returns the block name.  The block holds the
// arrowhead geometry at unit size, pointing in the direction of the
// positive x-axis with the tip at the origin.
func CreateBlock(b Blocks, name string) (string, error) {
	if !IsBuiltin(name) {
		return "", dxf.Error("not a built-in arrowhead: " + strconv.Quote(name))
	}
	blockName := BlockName(name)
	if !b.Has(blockName) {
		l, err := b.New(blockName)
		if err != nil {
			return "", err
		}
		err = Render(l, name, dxf.Vec3{}, 1, 0)
		if err != nil {
			return "", err
		}
	}
	return blockName, nil
}
