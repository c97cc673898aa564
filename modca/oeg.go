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

// MapDataObject is a Map Image Object (MIO) or Map Graphics Object (MGO)
// record.  It specifies how the object data is mapped into the object
// area.
type MapDataObject struct {
	leaf

	// ID is either [afp.MIO] or [afp.MGO].
	ID afp.SFID

	Option triplet.MappingOption
}

// WriteToStream implements the [Streamable] interface.
func (m *MapDataObject) WriteToStream(w io.Writer) error {
	t := triplet.Mapping(m.Option)
	r := afp.NewRecord(m.ID, afp.HeaderLength+2)
	binary.BigEndian.PutUint16(r[afp.HeaderLength:], uint16(2+t.Len()))
	r.SetLength(t.Len())
	buf := t.AppendEncoded(r)
	_, err := w.Write(buf)
	return err
}

// ObjectEnvironmentGroup (BOG/EOG) describes the area, position and data
// layout of a data object.
type ObjectEnvironmentGroup struct {
	named
	leaf

	descriptor     *ObjectAreaDescriptor
	position       *ObjectAreaPosition
	mapping        *MapDataObject
	dataDescriptor Streamable
}

// SetObjectAreaDescriptor sets the size of the object area.
func (g *ObjectEnvironmentGroup) SetObjectAreaDescriptor(d *ObjectAreaDescriptor) {
	g.descriptor = d
}

// ObjectAreaDescriptor returns the object area descriptor, or nil.
func (g *ObjectEnvironmentGroup) ObjectAreaDescriptor() *ObjectAreaDescriptor {
	return g.descriptor
}

// SetObjectAreaPosition sets the position of the object area.
func (g *ObjectEnvironmentGroup) SetObjectAreaPosition(p *ObjectAreaPosition) {
	g.position = p
}

// ObjectAreaPosition returns the object area position, or nil.
func (g *ObjectEnvironmentGroup) ObjectAreaPosition() *ObjectAreaPosition {
	return g.position
}

// SetMapDataObject sets the mapping record.
func (g *ObjectEnvironmentGroup) SetMapDataObject(m *MapDataObject) {
	g.mapping = m
}

// SetDataDescriptor sets the image or graphics data descriptor.
func (g *ObjectEnvironmentGroup) SetDataDescriptor(d Streamable) {
	g.dataDescriptor = d
}

// DataDescriptor returns the data descriptor, or nil.
func (g *ObjectEnvironmentGroup) DataDescriptor() Streamable {
	return g.dataDescriptor
}

// WriteToStream implements the [Streamable] interface.
func (g *ObjectEnvironmentGroup) WriteToStream(w io.Writer) error {
	if err := writeNamed(w, &g.named, afp.BOG); err != nil {
		return err
	}
	parts := []Streamable{}
	if g.descriptor != nil {
		parts = append(parts, g.descriptor)
	}
	if g.position != nil {
		parts = append(parts, g.position)
	}
	if g.mapping != nil {
		parts = append(parts, g.mapping)
	}
	if g.dataDescriptor != nil {
		parts = append(parts, g.dataDescriptor)
	}
	for _, p := range parts {
		if err := p.WriteToStream(w); err != nil {
			return err
		}
	}
	return writeNamed(w, &g.named, afp.EOG)
}
