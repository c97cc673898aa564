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

// IncludeType is the object type in an include object record.
type IncludeType byte

// These are the object types which can be included.
const (
	IncludeTypePageSegment IncludeType = 0x5F
	IncludeTypeOther       IncludeType = 0x92
	IncludeTypeGraphics    IncludeType = 0xBB
	IncludeTypeOverlay     IncludeType = 0xDF
	IncludeTypeImage       IncludeType = 0xFB
)

func includeTypeFor(typ triplet.ResourceType) IncludeType {
	switch typ {
	case triplet.ResourceImage:
		return IncludeTypeImage
	case triplet.ResourceGraphics:
		return IncludeTypeGraphics
	case triplet.ResourcePageSegment:
		return IncludeTypePageSegment
	case triplet.ResourceOverlay:
		return IncludeTypeOverlay
	default:
		return IncludeTypeOther
	}
}

// IncludeObjectLength is the length of an include object record without
// triplets.
const IncludeObjectLength = 36

// IncludeObject (IOB) places a data object from a resource group on a
// page.
type IncludeObject struct {
	named
	triplets
	leaf

	Type IncludeType

	X, Y     int
	Rotation int
	RefCSys  RefCSys
}

// WriteToStream implements the [Streamable] interface.
func (o *IncludeObject) WriteToStream(w io.Writer) error {
	o.sealed = true
	r := o.namedRecord(afp.IOB, IncludeObjectLength)
	r[18] = byte(o.Type)
	afp.PutUint24(r[19:], o.X)
	afp.PutUint24(r[22:], o.Y)
	binary.BigEndian.PutUint16(r[25:], afp.Orientation(o.Rotation))
	binary.BigEndian.PutUint16(r[27:], afp.Orientation(o.Rotation+90))

	// the content offsets are taken from the object environment group
	for i := 29; i < 35; i++ {
		r[i] = 0xFF
	}
	r[35] = byte(o.RefCSys)
	r.SetLength(o.list.DataLength())
	if _, err := w.Write(r); err != nil {
		return err
	}
	_, err := o.list.WriteTo(w)
	return err
}

// IncludePageOverlay (IPO) places a page overlay on a page.
type IncludePageOverlay struct {
	named
	leaf

	X, Y     int
	Rotation int
}

// WriteToStream implements the [Streamable] interface.
func (o *IncludePageOverlay) WriteToStream(w io.Writer) error {
	r := o.namedRecord(afp.IPO, 25)
	afp.PutUint24(r[17:], o.X)
	afp.PutUint24(r[20:], o.Y)
	binary.BigEndian.PutUint16(r[23:], afp.Orientation(o.Rotation))
	_, err := w.Write(r)
	return err
}

// IncludePageSegment (IPS) places a page segment on a page.
type IncludePageSegment struct {
	named
	leaf

	X, Y int
}

// WriteToStream implements the [Streamable] interface.
func (o *IncludePageSegment) WriteToStream(w io.Writer) error {
	r := o.namedRecord(afp.IPS, 23)
	afp.PutUint24(r[17:], o.X)
	afp.PutUint24(r[20:], o.Y)
	_, err := w.Write(r)
	return err
}
