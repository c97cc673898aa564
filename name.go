// seehuhn.de/go/afp - a library for writing AFP print files
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

package afp

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// EBCDIC is the single-byte character encoding used for names and text.
var EBCDIC = charmap.CodePage037

// Substitute is the EBCDIC byte used in place of characters which cannot
// be encoded.
const Substitute = 0x3F

// EncodeName encodes name as exactly n EBCDIC bytes.
//
// Shorter names are padded with spaces.  Longer names are truncated by
// dropping leading characters, so that the last n characters are kept.
// Characters without an EBCDIC representation are replaced by
// [Substitute].  Both kinds of repair are reported in the returned
// warnings; the function never fails.
func EncodeName(name string, n int) ([]byte, []Warning) {
	var warnings []Warning

	runes := []rune(name)
	if len(runes) > n {
		truncated := string(runes[len(runes)-n:])
		warnings = append(warnings, Warning{
			Kind: WarnNameTruncated,
			Msg: fmt.Sprintf("name %q truncated to %d chars (%q)",
				name, n, truncated),
		})
		runes = runes[len(runes)-n:]
	}

	res, bad := encodeRunes(runes, n)
	if bad != nil {
		warnings = append(warnings, Warning{
			Kind: WarnEncoding,
			Msg:  fmt.Sprintf("name %q: cannot encode %q", name, string(bad)),
		})
	}
	for i := len(runes); i < n; i++ {
		res[i] = space
	}
	return res, warnings
}

// EncodeText encodes s in EBCDIC.  Characters without an EBCDIC
// representation are replaced by [Substitute] and reported in the returned
// warnings.
func EncodeText(s string) ([]byte, []Warning) {
	runes := []rune(s)
	res, bad := encodeRunes(runes, len(runes))
	if bad == nil {
		return res, nil
	}
	return res, []Warning{{
		Kind: WarnEncoding,
		Msg:  fmt.Sprintf("text %q: cannot encode %q", s, string(bad)),
	}}
}

// DecodeText converts EBCDIC bytes to a string.
func DecodeText(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		sb.WriteRune(EBCDIC.DecodeByte(c))
	}
	return sb.String()
}

// DecodeName converts an encoded name to a string and removes trailing
// padding.
func DecodeName(b []byte) string {
	return strings.TrimRight(DecodeText(b), " \x00")
}

func encodeRunes(runes []rune, n int) ([]byte, []rune) {
	res := make([]byte, n)
	var bad []rune
	for i, r := range runes {
		c, ok := EBCDIC.EncodeRune(r)
		if !ok {
			c = Substitute
			bad = append(bad, r)
		}
		res[i] = c
	}
	return res, bad
}

var space, _ = EBCDIC.EncodeRune(' ')
