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
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CodepageEncoding returns the character encoding for a $DWGCODEPAGE
// header value.  Files before R2007 store all strings in such a code
// page; newer files use UTF-8 throughout.
func CodepageEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(name) {
	case "ANSI_874":
		return charmap.Windows874, nil
	case "ANSI_932", "DOS932":
		return japanese.ShiftJIS, nil
	case "ANSI_936", "GB2312":
		return simplifiedchinese.GBK, nil
	case "ANSI_949":
		return korean.EUCKR, nil
	case "ANSI_950", "BIG5":
		return traditionalchinese.Big5, nil
	case "ANSI_1250":
		return charmap.Windows1250, nil
	case "ANSI_1251":
		return charmap.Windows1251, nil
	case "ANSI_1252", "":
		return charmap.Windows1252, nil
	case "ANSI_1253":
		return charmap.Windows1253, nil
	case "ANSI_1254":
		return charmap.Windows1254, nil
	case "ANSI_1255":
		return charmap.Windows1255, nil
	case "ANSI_1256":
		return charmap.Windows1256, nil
	case "ANSI_1257":
		return charmap.Windows1257, nil
	case "ANSI_1258":
		return charmap.Windows1258, nil
	}
	return nil, Error("unsupported code page " + strconv.Quote(name))
}
