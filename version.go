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

package dxf

import "strconv"

// Version represents a version of the DXF format.
type Version int

// DXF versions supported by this library.
const (
	_ Version = iota
	R12
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
)

// ParseVersion parses a DXF version string as stored in the $ACADVER
// header variable, e.g. "AC1015".  The release names ("R2000") are
// accepted as well.
func ParseVersion(verString string) (Version, error) {
	switch verString {
	case "AC1009", "R12":
		return R12, nil
	case "AC1015", "R2000":
		return R2000, nil
	case "AC1018", "R2004":
		return R2004, nil
	case "AC1021", "R2007":
		return R2007, nil
	case "AC1024", "R2010":
		return R2010, nil
	case "AC1027", "R2013":
		return R2013, nil
	case "AC1032", "R2018":
		return R2018, nil
	}
	return 0, errVersion
}

// ToString returns the $ACADVER string for ver, e.g. "AC1015".
// If ver does not correspond to a supported DXF version, an error is
// returned.
func (ver Version) ToString() (string, error) {
	switch ver {
	case R12:
		return "AC1009", nil
	case R2000:
		return "AC1015", nil
	case R2004:
		return "AC1018", nil
	case R2007:
		return "AC1021", nil
	case R2010:
		return "AC1024", nil
	case R2013:
		return "AC1027", nil
	case R2018:
		return "AC1032", nil
	}
	return "", errVersion
}

// String returns the release name of ver, e.g. "R2000".
func (ver Version) String() string {
	switch ver {
	case R12:
		return "R12"
	case R2000:
		return "R2000"
	case R2004:
		return "R2004"
	case R2007:
		return "R2007"
	case R2010:
		return "R2010"
	case R2013:
		return "R2013"
	case R2018:
		return "R2018"
	}
	return "dxf.Version(" + strconv.Itoa(int(ver)) + ")"
}
