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
	"seehuhn.de/go/afp/goca"
	"seehuhn.de/go/afp/triplet"
)

// GraphicsObject (BGR/EGR) holds vector graphics.
//
// Drawing orders are added through the embedded [goca.Drawing].  Every
// call to WriteToStream writes the graphics data records which are full,
// so that long drawings need not be held in memory.
type GraphicsObject struct {
	DataObject
	*goca.Drawing
}

// IsComplete implements the [Completable] interface.
func (o *GraphicsObject) IsComplete() bool {
	return o.DataObject.IsComplete()
}

// SetComplete marks the object as complete.  All graphics data records are
// marked complete first.
func (o *GraphicsObject) SetComplete(complete bool) {
	o.Drawing.SetComplete(complete)
	o.DataObject.SetComplete(complete)
}

func (o *GraphicsObject) viewport(g *ObjectEnvironmentGroup, area *ObjectArea) {
	g.SetMapDataObject(&MapDataObject{ID: afp.MGO, Option: triplet.MapPosition})
	g.SetDataDescriptor(&GraphicsDataDescriptor{
		Width:  area.Width,
		Height: area.Height,
		XRes:   area.XRes,
		YRes:   area.YRes,
	})
}

func (o *GraphicsObject) writePayload(w io.Writer) error {
	return o.Drawing.Flush(w)
}
