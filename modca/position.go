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
)

// RefCSys selects the coordinate system in which an object area is
// positioned.
type RefCSys byte

// These are the reference coordinate systems.
const (
	// RefCSysPageSegmentRelative positions the object area relative to
	// the including page or page segment.  This is the value used for all
	// data objects.
	RefCSysPageSegmentRelative RefCSys = 0x00

	// RefCSysPageRelative positions the object area relative to the page.
	RefCSysPageRelative RefCSys = 0x01
)

// ObjectAreaPositionLength is the length of an encoded object area
// position record.
const ObjectAreaPositionLength = 33

// ObjectAreaPosition (OBP) gives the position and orientation of an object
// area.
type ObjectAreaPosition struct {
	leaf

	X, Y int

	// Rotation is the clockwise rotation of the object area in degrees.
	// Only multiples of 90 are allowed.
	Rotation int

	RefCSys RefCSys
}

// Encode returns the encoded record.
func (p *ObjectAreaPosition) Encode() afp.Record {
	r := afp.NewRecord(afp.OBP, ObjectAreaPositionLength)
	r[9] = 0x01 // object area position id
	r[10] = 0x17
	afp.PutUint24(r[11:], p.X)
	afp.PutUint24(r[14:], p.Y)

	rot := p.Rotation % 360
	r[17] = byte(rot / 2)
	r[18] = 0x00
	r[19] = byte(rot/2 + 45)
	r[20] = 0x00
	r[21] = 0x00

	// object content is placed at the origin of the object area
	afp.PutUint24(r[22:], 0)
	afp.PutUint24(r[25:], 0)
	binary.BigEndian.PutUint16(r[28:], 0x0000)
	binary.BigEndian.PutUint16(r[30:], 0x2D00)
	r[32] = byte(p.RefCSys)
	return r
}

// WriteToStream implements the [Streamable] interface.
func (p *ObjectAreaPosition) WriteToStream(w io.Writer) error {
	_, err := w.Write(p.Encode())
	return err
}
