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

import (
	"errors"
	"strconv"
)

var (
	errVersion = errors.New("unsupported DXF version")
)

// Error is a DXF-related error condition, described by a plain string.
type Error string

func (err Error) Error() string {
	return string(err)
}

// MalformedFileError indicates that a DXF file could not be parsed.
type MalformedFileError struct {
	Line int
	Err  error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (at line " + strconv.Itoa(err.Line) + ")"
	}
	return "not a valid DXF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// VersionError is returned when a field or feature requires a newer DXF
// version than the document uses.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return err.Operation + " requires DXF version " + err.Earliest.String() + " or newer"
}

// CheckVersion returns an error if operation requires a DXF version newer
// than have.
func CheckVersion(have Version, operation string, earliest Version) error {
	if have < earliest {
		return &VersionError{Operation: operation, Earliest: earliest}
	}
	return nil
}

// AttributeError indicates use of a field name which is not part of a
// record's schema.
type AttributeError struct {
	Record string
	Attr   string
}

func (err *AttributeError) Error() string {
	return `Invalid DXF attribute "` + err.Attr + `" for ` + err.Record + `.`
}

// NotFoundError indicates a failed name lookup in one of the document
// tables.
type NotFoundError struct {
	Table string
	Name  string
}

func (err *NotFoundError) Error() string {
	return err.Table + " " + strconv.Quote(err.Name) + " not found"
}
