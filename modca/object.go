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

// Package modca implements the object tree of a MO:DCA print file.
//
// Every object knows how to write its structured fields to an output
// stream.  Containers (documents, page groups, pages, overlays and resource
// groups) hold an ordered list of children and can be written
// incrementally: each call to WriteToStream emits the begin record once,
// then all leading children which are complete, and finally the end record
// once the container itself is complete.  Children are never written out of
// order, so that a caller can alternate between adding content and flushing
// whatever is ready.
//
// All objects are created through a [Factory], which assigns names and
// decides how data objects are placed on pages.
package modca

import (
	"io"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/triplet"
)

// Streamable is implemented by objects which can write their structured
// fields to an output stream.
//
// WriteToStream may be called several times.  Every call writes only the
// structured fields which have not been written before.  After an I/O
// error the output is unusable and the object must be discarded.
type Streamable interface {
	WriteToStream(w io.Writer) error
}

// Completable is implemented by objects which track whether they will
// receive any more content.
type Completable interface {
	IsComplete() bool
	SetComplete(complete bool)
}

// Nameable is implemented by objects with an eight-character name.
type Nameable interface {
	Name() string
	SetName(name string)
}

// TripletBearer is implemented by objects which carry triplets in their
// begin record.
type TripletBearer interface {
	AddTriplet(t ...triplet.Triplet) error
	Triplets() *triplet.List
}

// Object is an element of the object tree.
type Object interface {
	Streamable
	Completable
}

// Phase is the write state of an object.
type Phase int

// These are the write phases of an object.
const (
	PhaseNotStarted Phase = iota
	PhaseStarted
	PhaseContentWritten
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseStarted:
		return "started"
	case PhaseContentWritten:
		return "content written"
	case PhaseEnded:
		return "ended"
	default:
		return "invalid phase"
	}
}

type named struct {
	name string
	warn *afp.Warnings

	// enc caches the encoded name.  It is reset by SetName.
	enc []byte
}

// Name returns the name of the object.
func (n *named) Name() string {
	return n.name
}

// SetName changes the name of the object.  Names longer than eight
// characters are truncated when the object is written.
func (n *named) SetName(name string) {
	n.name = name
	n.enc = nil
}

// nameBytes returns the encoded name.  Problems with the name are reported
// when the name is first encoded.
func (n *named) nameBytes() []byte {
	if n.enc == nil {
		var w []afp.Warning
		n.enc, w = afp.EncodeName(n.name, afp.NameLength)
		n.warn.Add(w...)
	}
	return n.enc
}

// wireName returns the name as it appears in the output, for use in
// references to the object.
func wireName(o Nameable) string {
	enc, _ := afp.EncodeName(o.Name(), afp.NameLength)
	return afp.DecodeName(enc)
}

// namedRecord allocates a record of size bytes and stores the object name
// after the introducer.
func (n *named) namedRecord(id afp.SFID, size int) afp.Record {
	r := afp.NewRecord(id, size)
	r.SetName(n.nameBytes())
	return r
}

type completion struct {
	complete bool
}

// IsComplete reports whether the object has been marked complete.
func (c *completion) IsComplete() bool {
	return c.complete
}

// SetComplete marks the object as complete or incomplete.
func (c *completion) SetComplete(complete bool) {
	c.complete = complete
}

// leaf is embedded in single-record objects.  These are complete from the
// start.
type leaf struct{}

// IsComplete always returns true.
func (leaf) IsComplete() bool {
	return true
}

// SetComplete has no effect.
func (leaf) SetComplete(bool) {}

type triplets struct {
	list   triplet.List
	sealed bool
}

// AddTriplet appends triplets to the begin record of the object.  Triplets
// must be added before the object is first written.
func (t *triplets) AddTriplet(tt ...triplet.Triplet) error {
	if t.sealed {
		return afp.ErrAlreadyWritten
	}
	return t.list.Add(tt...)
}

// Triplets returns the triplets which have not been written yet.
func (t *triplets) Triplets() *triplet.List {
	return &t.list
}

// writeBegin writes a named begin record followed by the triplets.
func (t *triplets) writeBegin(w io.Writer, n *named, id afp.SFID) error {
	t.sealed = true
	r := n.namedRecord(id, afp.NamedHeaderLength)
	r.SetLength(t.list.DataLength())
	if _, err := w.Write(r); err != nil {
		return err
	}
	_, err := t.list.WriteTo(w)
	return err
}

// writeNamed writes a begin or end record without triplets.
func writeNamed(w io.Writer, n *named, id afp.SFID) error {
	_, err := w.Write(n.namedRecord(id, afp.NamedHeaderLength))
	return err
}
