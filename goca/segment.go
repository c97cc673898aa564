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

package goca

import (
	"encoding/binary"

	"seehuhn.de/go/afp"
)

// SegmentHeaderLength is the length of the Begin Segment introducer.
const SegmentHeaderLength = 14

// SegmentNameLength is the length of segment names.
const SegmentNameLength = 4

const (
	flagAppendNew      = 0x00
	flagProlog         = 0x04
	flagAppendExisting = 0x06
)

// A Segment is a named group of drawing orders.
//
// A segment can be chained to a predecessor, in which case its orders
// continue the drawing of the predecessor.  This is used to split long
// drawings across several graphics data records.
type Segment struct {
	Name        string
	Predecessor string
	Prolog      bool

	orders  []Order
	dataLen int
}

// Len returns the encoded length of the segment.
func (s *Segment) Len() int {
	return SegmentHeaderLength + s.dataLen
}

// Orders returns the drawing orders of the segment.
func (s *Segment) Orders() []Order {
	return s.orders
}

func (s *Segment) add(o Order) {
	s.orders = append(s.orders, o)
	s.dataLen += len(o)
}

// AppendEncoded appends the encoded segment to buf.
func (s *Segment) AppendEncoded(buf []byte, warn *afp.Warnings) []byte {
	name, w := afp.EncodeName(s.Name, SegmentNameLength)
	warn.Add(w...)

	flags := byte(flagAppendNew)
	link := name
	if s.Predecessor != "" {
		flags = flagAppendExisting
		link, w = afp.EncodeName(s.Predecessor, SegmentNameLength)
		warn.Add(w...)
	} else if s.Prolog {
		flags = flagProlog
	}

	buf = append(buf, 0x70, SegmentHeaderLength-2)
	buf = append(buf, name...)
	buf = append(buf, 0x00, flags)
	buf = binary.BigEndian.AppendUint16(buf, uint16(s.dataLen))
	buf = append(buf, link...)
	for _, o := range s.orders {
		buf = append(buf, o...)
	}
	return buf
}
