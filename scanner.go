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
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// ScannerOptions controls how a [Scanner] reads a tag stream.
type ScannerOptions struct {
	// Codepage gives the $DWGCODEPAGE value of the file.  String values
	// are decoded from this code page; files from R2007 onwards store
	// text as UTF-8 and leave this empty.
	Codepage string
}

// A Scanner reads a DXF tag stream, one group code/value pair at a
// time.
type Scanner struct {
	r      *bufio.Reader
	line   int
	decode *encoding.Decoder
}

// NewScanner creates a new Scanner reading from r.
// A nil opt is equivalent to the zero options value.
func NewScanner(r io.Reader, opt *ScannerOptions) (*Scanner, error) {
	s := &Scanner{
		r: bufio.NewReader(r),
	}
	if opt != nil && opt.Codepage != "" {
		enc, err := CodepageEncoding(opt.Codepage)
		if err != nil {
			return nil, err
		}
		s.decode = enc.NewDecoder()
	}
	return s, nil
}

// Line returns the line number of the most recently read tag.
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next tag from the stream.  At the end of the stream,
// the error is [io.EOF].
func (s *Scanner) Next() (Tag, error) {
	codeLine, err := s.readLine()
	if err != nil {
		return Tag{}, err
	}
	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		return Tag{}, &MalformedFileError{
			Line: s.line,
			Err:  errors.New("group code expected"),
		}
	}
	value, err := s.readLine()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Tag{}, &MalformedFileError{Line: s.line, Err: err}
	}
	if GroupKind(code) == KindString {
		if s.decode != nil {
			value, err = s.decode.String(value)
			if err != nil {
				return Tag{}, &MalformedFileError{Line: s.line, Err: err}
			}
		}
		value = decodeUnicodeEscapes(value)
	}
	return Tag{Code: code, Value: value}, nil
}

func (s *Scanner) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
	}
	s.line++
	return strings.TrimRight(line, "\r\n"), nil
}

// decodeUnicodeEscapes expands the \U+XXXX escape sequences used by DXF
// files to store characters outside the file's code page.
func decodeUnicodeEscapes(s string) string {
	if !strings.Contains(s, `\U+`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], `\U+`) && i+7 <= len(s) {
			n, err := strconv.ParseUint(s[i+3:i+7], 16, 32)
			if err == nil {
				b.WriteRune(rune(n))
				i += 7
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
