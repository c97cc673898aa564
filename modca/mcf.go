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

package modca

import (
	"encoding/binary"
	"io"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/triplet"
)

// MaxMapEntries is the largest number of repeating groups in a single map
// record.
const MaxMapEntries = 254

// Font describes a coded font mapping.
type Font struct {
	// LocalID is the identifier used to select the font in text and
	// graphics.
	LocalID byte

	CodePage     string
	CharacterSet string

	// Rotation is the character rotation in degrees.
	Rotation int

	// Outline declares a scalable font.  For outline fonts, Size gives the
	// vertical font size in 1/1440 inch.
	Outline bool
	Size    int
}

func (f *Font) appendEncoded(buf []byte) ([]byte, []afp.Warning) {
	var warnings []afp.Warning
	cp, w := triplet.FullyQualifiedNameString(triplet.FQNCodePageNameReference, f.CodePage)
	warnings = append(warnings, w...)
	cs, w := triplet.FullyQualifiedNameString(triplet.FQNFontCharacterSetNameRef, f.CharacterSet)
	warnings = append(warnings, w...)

	tt := []triplet.Triplet{
		cp,
		cs,
		triplet.ResourceLocalIdentifier(triplet.LocalCodedFont, f.LocalID),
		triplet.CharacterRotation(f.Rotation),
	}
	if f.Outline {
		tt = append(tt,
			triplet.FontDescriptorSpecification(0, 0, f.Size, f.Size),
			triplet.FontHorizontalScaleFactor(f.Size))
	}

	start := len(buf)
	buf = append(buf, 0, 0)
	for _, t := range tt {
		buf = t.AppendEncoded(buf)
	}
	binary.BigEndian.PutUint16(buf[start:], uint16(len(buf)-start))
	return buf, warnings
}

// MapCodedFont (MCF) maps local font identifiers to coded fonts.
type MapCodedFont struct {
	leaf

	groups     []byte
	count      int
	maxEntries int
	warn       *afp.Warnings
}

// Len returns the number of fonts in the record.
func (m *MapCodedFont) Len() int {
	return m.count
}

// Add appends a font to the map.  If the record cannot hold the font,
// [afp.ErrMaximumSizeExceeded] is returned and the record is unchanged.
func (m *MapCodedFont) Add(f Font) error {
	if err := afp.CheckRotation(f.Rotation); err != nil {
		return err
	}
	if m.count >= m.maxEntries {
		return afp.ErrMaximumSizeExceeded
	}
	group, w := f.appendEncoded(nil)
	if afp.HeaderLength-1+len(m.groups)+len(group) > afp.MaxFieldLength {
		return afp.ErrMaximumSizeExceeded
	}
	m.warn.Add(w...)
	m.groups = append(m.groups, group...)
	m.count++
	return nil
}

// WriteToStream implements the [Streamable] interface.
func (m *MapCodedFont) WriteToStream(w io.Writer) error {
	r := afp.NewRecord(afp.MCF, afp.HeaderLength)
	r.SetLength(len(m.groups))
	if _, err := w.Write(r); err != nil {
		return err
	}
	_, err := w.Write(m.groups)
	return err
}
