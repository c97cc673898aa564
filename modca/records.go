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
	"io"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/triplet"
)

// NoOperation (NOP) carries a comment which is ignored by printers.
type NoOperation struct {
	leaf
	Data []byte
}

// WriteToStream implements the [Streamable] interface.
func (n *NoOperation) WriteToStream(w io.Writer) error {
	data := n.Data
	if len(data) > afp.MaxFieldLength-(afp.HeaderLength-1) {
		data = data[:afp.MaxFieldLength-(afp.HeaderLength-1)]
	}
	r := afp.NewRecord(afp.NOP, afp.HeaderLength)
	r.SetLength(len(data))
	if _, err := w.Write(r); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// TagLogicalElement (TLE) attaches a name/value pair to a page or page
// group, for indexing.
type TagLogicalElement struct {
	leaf
	list triplet.List
}

// WriteToStream implements the [Streamable] interface.
func (t *TagLogicalElement) WriteToStream(w io.Writer) error {
	r := afp.NewRecord(afp.TLE, afp.HeaderLength)
	r.SetLength(t.list.DataLength())
	if _, err := w.Write(r); err != nil {
		return err
	}
	_, err := t.list.WriteTo(w)
	return err
}

// InvokeMediumMap (IMM) selects a medium map from the form definition for
// the following pages.
type InvokeMediumMap struct {
	named
	leaf
}

// WriteToStream implements the [Streamable] interface.
func (m *InvokeMediumMap) WriteToStream(w io.Writer) error {
	return writeNamed(w, &m.named, afp.IMM)
}
