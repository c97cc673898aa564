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

const overlayGroupLength = 18

// MapPageOverlay (MPO) maps local identifiers to page overlays.
type MapPageOverlay struct {
	leaf

	groups     []byte
	count      int
	maxEntries int
	warn       *afp.Warnings
}

// Len returns the number of overlays in the record.
func (m *MapPageOverlay) Len() int {
	return m.count
}

// Add appends an overlay to the map.  If the record is full,
// [afp.ErrMaximumSizeExceeded] is returned and the record is unchanged.
func (m *MapPageOverlay) Add(name string, localID byte) error {
	if m.count >= m.maxEntries {
		return afp.ErrMaximumSizeExceeded
	}
	fqn, w := triplet.FullyQualifiedNameString(triplet.FQNBeginResourceObjectReference, name)
	m.warn.Add(w...)

	m.groups = binary.BigEndian.AppendUint16(m.groups, overlayGroupLength)
	m.groups = fqn.AppendEncoded(m.groups)
	m.groups = triplet.ResourceLocalIdentifier(triplet.LocalPageOverlay, localID).AppendEncoded(m.groups)
	m.count++
	return nil
}

// WriteToStream implements the [Streamable] interface.
func (m *MapPageOverlay) WriteToStream(w io.Writer) error {
	r := afp.NewRecord(afp.MPO, afp.HeaderLength)
	r.SetLength(len(m.groups))
	if _, err := w.Write(r); err != nil {
		return err
	}
	_, err := w.Write(m.groups)
	return err
}
