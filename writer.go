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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// WriterOptions controls how a [Writer] formats a tag stream.
type WriterOptions struct {
	// Codepage gives the code page for string values.  It is only used
	// for versions before R2007; newer files store text as UTF-8.
	Codepage string
}

// A Writer writes a DXF tag stream.  Records writing themselves to the
// stream consult the Version field to decide which fields to include.
type Writer struct {
	// Version is the DXF version of the file being written.
	Version Version

	// Err is the first error encountered while writing.  Once Err is
	// set, all subsequent writes are ignored.
	Err error

	w      *bufio.Writer
	encode *encoding.Encoder
}

// NewWriter creates a new Writer with the given target version.
// A nil opt is equivalent to the zero options value.
func NewWriter(w io.Writer, v Version, opt *WriterOptions) (*Writer, error) {
	res := &Writer{
		Version: v,
		w:       bufio.NewWriter(w),
	}
	if opt != nil && opt.Codepage != "" && v < R2007 {
		enc, err := CodepageEncoding(opt.Codepage)
		if err != nil {
			return nil, err
		}
		res.encode = enc.NewEncoder()
	}
	return res, nil
}

// Flush writes any buffered tags to the underlying io.Writer.  If an
// error occurred during writing, Flush returns this error instead.
func (w *Writer) Flush() error {
	if w.Err != nil {
		return w.Err
	}
	return w.w.Flush()
}

// WriteTag writes a raw tag, using the value string as is.
func (w *Writer) WriteTag(t Tag) {
	w.writeTag(t.Code, t.Value)
}

// WriteStr writes a string-valued tag.  For versions before R2007 the
// value is converted to the writer's code page, escaping characters
// outside the code page in \U+XXXX form.
func (w *Writer) WriteStr(code int, s string) {
	if w.encode != nil {
		s = encodeUnicodeEscapes(s, w.encode)
	}
	w.writeTag(code, s)
}

// WriteInt writes an integer-valued tag.
func (w *Writer) WriteInt(code int, v int) {
	w.writeTag(code, strconv.Itoa(v))
}

// WriteFloat writes a float-valued tag.
func (w *Writer) WriteFloat(code int, x float64) {
	w.writeTag(code, FormatFloat(x))
}

// WriteHandle writes a handle-valued tag.
func (w *Writer) WriteHandle(code int, h Handle) {
	w.writeTag(code, h.String())
}

// WritePoint writes the coordinates of p as three tags, with the y and
// z group codes offset by 10 and 20 from code.
func (w *Writer) WritePoint(code int, p Vec3) {
	w.WriteFloat(code, p.X)
	w.WriteFloat(code+10, p.Y)
	w.WriteFloat(code+20, p.Z)
}

func (w *Writer) writeTag(code int, value string) {
	if w.Err != nil {
		return
	}
	_, err := fmt.Fprintf(w.w, "%3d\r\n%s\r\n", code, value)
	if err != nil {
		w.Err = err
	}
}

// FormatFloat renders x in the shortest form which survives a
// round-trip, always keeping a decimal point.
func FormatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// encodeUnicodeEscapes converts s to the target code page, replacing
// characters the code page cannot express by \U+XXXX escapes.
func encodeUnicodeEscapes(s string, enc *encoding.Encoder) string {
	out, err := enc.String(s)
	if err == nil {
		return out
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		e, err := enc.String(string(r))
		if err != nil {
			fmt.Fprintf(&b, `\U+%04X`, r)
		} else {
			b.WriteString(e)
		}
	}
	return b.String()
}
