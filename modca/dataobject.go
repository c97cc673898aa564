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

// ObjectArea describes where and how large a data object appears on the
// page.
type ObjectArea struct {
	// X and Y give the position of the object area on the page.
	X, Y int

	Width, Height int

	// XRes and YRes give the units of the position and size, in units per
	// inch.
	XRes, YRes int

	// Rotation is the clockwise rotation in degrees.  This must be 0, 90,
	// 180 or 270.
	Rotation int
}

// Placeable is implemented by data objects which can be placed on a page.
type Placeable interface {
	Object
	Nameable

	// SetViewport sets up the object environment group for the given
	// object area.  If inline is false, the object is positioned by an
	// include record and the object area is placed at the origin.
	SetViewport(area ObjectArea, inline bool) error

	// ResourceType returns the type of the object when stored in a
	// resource group.
	ResourceType() triplet.ResourceType
}

// payload is implemented by the concrete data object types.
type payload interface {
	viewport(g *ObjectEnvironmentGroup, area *ObjectArea)
	writePayload(w io.Writer) error
}

// DataObject is the common part of image and graphics objects.
//
// A data object is written in three phases: the begin record with its
// triplets, the content (object environment group and object data) and the
// end record.  Content can be written several times while the object is
// being built; the end record is written once the object is complete.
type DataObject struct {
	named
	triplets
	completion

	factory *Factory
	body    payload

	begin, end afp.SFID
	resType    triplet.ResourceType

	oeg        *ObjectEnvironmentGroup
	oegWritten bool
	phase      Phase
}

// EnsureEnvironmentGroup returns the object environment group, creating it
// if needed.
func (d *DataObject) EnsureEnvironmentGroup() *ObjectEnvironmentGroup {
	if d.oeg == nil {
		d.oeg = d.factory.CreateObjectEnvironmentGroup()
	}
	return d.oeg
}

// EnvironmentGroup returns the object environment group, or nil if the
// object has none.
func (d *DataObject) EnvironmentGroup() *ObjectEnvironmentGroup {
	return d.oeg
}

// ResourceType implements the [Placeable] interface.
func (d *DataObject) ResourceType() triplet.ResourceType {
	return d.resType
}

// Phase returns the write phase of the object.
func (d *DataObject) Phase() Phase {
	return d.phase
}

// SetViewport implements the [Placeable] interface.
//
// The reference coordinate system of the object area is always
// page-segment relative.
func (d *DataObject) SetViewport(area ObjectArea, inline bool) error {
	if d.oegWritten {
		return afp.ErrAlreadyWritten
	}
	x, y := 0, 0
	if inline {
		x, y = area.X, area.Y
	}
	pos, err := d.factory.CreateObjectAreaPosition(x, y, area.Rotation)
	if err != nil {
		return err
	}

	g := d.EnsureEnvironmentGroup()
	g.SetObjectAreaDescriptor(d.factory.CreateObjectAreaDescriptor(
		area.Width, area.Height, area.XRes, area.YRes))
	g.SetObjectAreaPosition(pos)
	d.body.viewport(g, &area)
	return nil
}

// WriteToStream implements the [Streamable] interface.
func (d *DataObject) WriteToStream(w io.Writer) error {
	if d.phase == PhaseEnded {
		return nil
	}
	if d.phase == PhaseNotStarted {
		if err := d.writeStart(w); err != nil {
			return err
		}
	}
	if err := d.writeContent(w); err != nil {
		return err
	}
	if d.complete {
		return d.writeEnd(w)
	}
	return nil
}

func (d *DataObject) writeStart(w io.Writer) error {
	d.phase = PhaseStarted
	return d.writeBegin(w, &d.named, d.begin)
}

func (d *DataObject) writeContent(w io.Writer) error {
	if !d.oegWritten && d.oeg != nil {
		if err := d.oeg.WriteToStream(w); err != nil {
			return err
		}
	}
	d.oegWritten = true
	if err := d.body.writePayload(w); err != nil {
		return err
	}
	d.phase = PhaseContentWritten
	return nil
}

func (d *DataObject) writeEnd(w io.Writer) error {
	d.phase = PhaseEnded
	return writeNamed(w, &d.named, d.end)
}
