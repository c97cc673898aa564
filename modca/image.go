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
	"seehuhn.de/go/afp/ioca"
	"seehuhn.de/go/afp/triplet"
)

// ImageObject (BIM/EIM) holds a raster image.
//
// The image data is written in a single pass, split into image picture
// data records.
type ImageObject struct {
	DataObject

	segment   *ioca.Segment
	maxRecord int
	written   bool
}

// SetContent sets the image.  The image data descriptor in the object
// environment group is derived from the image.
func (o *ImageObject) SetContent(c *ioca.Content) error {
	if o.phase != PhaseNotStarted {
		return afp.ErrAlreadyWritten
	}
	o.segment = &ioca.Segment{Name: segmentName(o.name), Content: c}
	o.EnsureEnvironmentGroup().SetDataDescriptor(&ImageDataDescriptor{
		Width:       c.Width,
		Height:      c.Height,
		XRes:        c.HRes,
		YRes:        c.VRes,
		FunctionSet: functionSet(c),
	})
	return nil
}

// Content returns the image, or nil if no image has been set.
func (o *ImageObject) Content() *ioca.Content {
	if o.segment == nil {
		return nil
	}
	return o.segment.Content
}

func functionSet(c *ioca.Content) byte {
	switch {
	case c.Structure != nil:
		return FunctionSet45
	case c.IDESize <= 1:
		return FunctionSet10
	default:
		return FunctionSet11
	}
}

// segmentName returns the last four characters of an object name.
func segmentName(name string) string {
	r := []rune(name)
	if len(r) > 4 {
		r = r[len(r)-4:]
	}
	return string(r)
}

func (o *ImageObject) viewport(g *ObjectEnvironmentGroup, _ *ObjectArea) {
	g.SetMapDataObject(&MapDataObject{ID: afp.MIO, Option: triplet.MapScaleToFill})
}

func (o *ImageObject) writePayload(w io.Writer) error {
	if o.segment == nil || o.written {
		return nil
	}
	o.written = true
	return o.segment.Encode(w, o.maxRecord, o.warn)
}
