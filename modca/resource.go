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

// ResourceGroup (BRG/ERG) holds resources which are referenced by name
// from pages.
type ResourceGroup struct {
	container
}

// Add appends a resource to the group.
func (g *ResourceGroup) Add(o Object) error {
	return g.add(o)
}

// ResourceObject (BRS/ERS) wraps a single object inside a resource group.
// It is complete when the wrapped object is complete.
type ResourceObject struct {
	named
	triplets

	object         Object
	started, ended bool
}

// Object returns the wrapped object.
func (r *ResourceObject) Object() Object {
	return r.object
}

// IsComplete implements the [Completable] interface.
func (r *ResourceObject) IsComplete() bool {
	return r.object.IsComplete()
}

// SetComplete implements the [Completable] interface.
func (r *ResourceObject) SetComplete(complete bool) {
	r.object.SetComplete(complete)
}

// WriteToStream implements the [Streamable] interface.
func (r *ResourceObject) WriteToStream(w io.Writer) error {
	if r.ended {
		return nil
	}
	if !r.started {
		r.started = true
		if err := r.writeBegin(w, &r.named, afp.BRS); err != nil {
			return err
		}
	}
	if err := r.object.WriteToStream(w); err != nil {
		return err
	}
	if !r.object.IsComplete() {
		return nil
	}
	r.ended = true
	return writeNamed(w, &r.named, afp.ERS)
}

func newResourceObject(name string, o Object, typ triplet.ResourceType, warn *afp.Warnings) *ResourceObject {
	r := &ResourceObject{
		named:  named{name: name, warn: warn},
		object: o,
	}
	// a fresh list has room for one triplet
	_ = r.AddTriplet(triplet.ResourceObjectType(typ))
	return r
}
