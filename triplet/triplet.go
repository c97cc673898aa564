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

// Package triplet implements MO:DCA triplets.
//
// A triplet is a self-describing extension record, consisting of a length
// byte, an identifier byte and up to 252 bytes of data.  Triplets follow
// the fixed part of many structured fields; their order on the wire is the
// order in which they were added.
package triplet

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/afp"
)

// ID identifies the type of a triplet.
type ID byte

// Triplet identifiers used by this library.
const (
	FullyQualifiedNameID          ID = 0x02
	MappingOptionID               ID = 0x04
	ObjectClassificationID        ID = 0x10
	FontDescriptorSpecificationID ID = 0x1F
	ResourceObjectTypeID          ID = 0x21
	ResourceLocalIdentifierID     ID = 0x24
	ResourceSectionNumberID       ID = 0x25
	CharacterRotationID           ID = 0x26
	AttributeValueID              ID = 0x36
	DescriptorPositionID          ID = 0x43
	MeasurementUnitsID            ID = 0x4B
	ObjectAreaSizeID              ID = 0x4C
	ObjectByteExtentID            ID = 0x57
	FontHorizontalScaleFactorID   ID = 0x5D
	CommentID                     ID = 0x65
)

// MaxDataLength is the maximal number of data bytes in a triplet.
const MaxDataLength = 252

// Triplet is a single triplet.
type Triplet struct {
	ID   ID
	Data []byte
}

// Len returns the encoded length of the triplet in bytes.
func (t Triplet) Len() int {
	return 2 + len(t.Data)
}

// AppendEncoded appends the encoded triplet to buf.
func (t Triplet) AppendEncoded(buf []byte) []byte {
	buf = append(buf, byte(t.Len()), byte(t.ID))
	return append(buf, t.Data...)
}

func (t Triplet) String() string {
	return fmt.Sprintf("triplet 0x%02X (%d bytes)", byte(t.ID), t.Len())
}

func newTriplet(id ID, data []byte) Triplet {
	if len(data) > MaxDataLength {
		data = data[:MaxDataLength]
	}
	return Triplet{ID: id, Data: data}
}

// MaxListLength is the maximal total length of the triplets in a list.
// This is the room left in a named structured field.
const MaxListLength = afp.MaxFieldLength - (afp.NamedHeaderLength - 1)

// List is an ordered list of triplets.  The zero value is an empty list
// ready to use.
//
// Once a list has been written, its triplets are discarded to reclaim
// memory.  Written lists cannot be queried any more.
type List struct {
	triplets []Triplet
	length   int
	written  bool
}

// Add appends triplets to the list.  If the triplets would overflow the
// length field of the enclosing structured field, no triplet is added and
// [afp.ErrMaximumSizeExceeded] is returned.
func (l *List) Add(t ...Triplet) error {
	if l.written {
		return afp.ErrAlreadyWritten
	}
	n := 0
	for _, ti := range t {
		n += ti.Len()
	}
	if l.length+n > MaxListLength {
		return afp.ErrMaximumSizeExceeded
	}
	l.triplets = append(l.triplets, t...)
	l.length += n
	return nil
}

// Len returns the number of triplets in the list.
func (l *List) Len() int {
	return len(l.triplets)
}

// DataLength returns the total encoded length of all triplets.
func (l *List) DataLength() int {
	return l.length
}

// Has reports whether the list contains a triplet with the given id.
func (l *List) Has(id ID) bool {
	return slices.IndexFunc(l.triplets, func(t Triplet) bool { return t.ID == id }) >= 0
}

// Get returns the first triplet with the given id.
func (l *List) Get(id ID) (Triplet, bool) {
	idx := slices.IndexFunc(l.triplets, func(t Triplet) bool { return t.ID == id })
	if idx < 0 {
		return Triplet{}, false
	}
	return l.triplets[idx], true
}

// AppendEncoded appends all triplets, in insertion order, to buf.
// This does not discard the triplets.
func (l *List) AppendEncoded(buf []byte) []byte {
	for _, t := range l.triplets {
		buf = t.AppendEncoded(buf)
	}
	return buf
}

// WriteTo writes all triplets, in insertion order, to w and then discards
// the list.  This implements the [io.WriterTo] interface.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	if l.written {
		return 0, errWritten
	}
	if len(l.triplets) == 0 {
		l.discard()
		return 0, nil
	}
	buf := l.AppendEncoded(make([]byte, 0, l.length))
	l.discard()
	n, err := w.Write(buf)
	return int64(n), err
}

// IsWritten reports whether the list has been written.
func (l *List) IsWritten() bool {
	return l.written
}

func (l *List) discard() {
	l.triplets = nil
	l.length = 0
	l.written = true
}

var errWritten = errors.New("triplets have already been written")
