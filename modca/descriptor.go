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

// ObjectAreaDescriptor (OBD) gives the size of the area occupied by a data
// object.
type ObjectAreaDescriptor struct {
	leaf

	// Width and Height give the size of the object area, in units of
	// 1/XRes and 1/YRes inch.
	Width, Height int
	XRes, YRes    int
}

// WriteToStream implements the [Streamable] interface.
func (d *ObjectAreaDescriptor) WriteToStream(w io.Writer) error {
	var tl triplet.List
	err := tl.Add(
		triplet.DescriptorPosition(1),
		triplet.MeasurementUnits(d.XRes, d.YRes),
		triplet.ObjectAreaSize(d.Width, d.Height),
	)
	if err != nil {
		return err
	}
	r := afp.NewRecord(afp.OBD, afp.HeaderLength)
	r.SetLength(tl.DataLength())
	if _, err := w.Write(r); err != nil {
		return err
	}
	_, err = tl.WriteTo(w)
	return err
}

// PageDescriptor (PGD) gives the size and resolution of a page or overlay.
type PageDescriptor struct {
	leaf

	Width, Height int
	XRes, YRes    int
}

// WriteToStream implements the [Streamable] interface.
func (d *PageDescriptor) WriteToStream(w io.Writer) error {
	r := afp.NewRecord(afp.PGD, 24)
	r[9] = triplet.UnitBaseTenInches
	r[10] = triplet.UnitBaseTenInches
	binary.BigEndian.PutUint16(r[11:], uint16(d.XRes*10))
	binary.BigEndian.PutUint16(r[13:], uint16(d.YRes*10))
	afp.PutUint24(r[15:], d.Width)
	afp.PutUint24(r[18:], d.Height)
	_, err := w.Write(r)
	return err
}

// PresentationTextDescriptor (PTD) gives the size of the presentation
// space for text on a page.
type PresentationTextDescriptor struct {
	leaf

	Width, Height int
	XRes, YRes    int
}

// WriteToStream implements the [Streamable] interface.
func (d *PresentationTextDescriptor) WriteToStream(w io.Writer) error {
	r := afp.NewRecord(afp.PTD, 23)
	r[9] = triplet.UnitBaseTenInches
	r[10] = triplet.UnitBaseTenInches
	binary.BigEndian.PutUint16(r[11:], uint16(d.XRes*10))
	binary.BigEndian.PutUint16(r[13:], uint16(d.YRes*10))
	afp.PutUint24(r[15:], d.Width)
	afp.PutUint24(r[18:], d.Height)
	_, err := w.Write(r)
	return err
}

// IOCA function sets, used in image data descriptors.
const (
	FunctionSet10 = 0x0A // bilevel, uncompressed or G3/G4
	FunctionSet11 = 0x0B // gray scale and colour
	FunctionSet45 = 0x2D // colour with IDE structure
)

// ImageDataDescriptor (IDD) gives the size and resolution of an image.
type ImageDataDescriptor struct {
	leaf

	// Width and Height give the image size in pixels.
	Width, Height int

	// XRes and YRes give the image resolution in pixels per inch.
	XRes, YRes int

	// FunctionSet is the IOCA function set used by the image.  If this is
	// zero, no function set is declared.
	FunctionSet byte
}

// WriteToStream implements the [Streamable] interface.
func (d *ImageDataDescriptor) WriteToStream(w io.Writer) error {
	n := 18
	if d.FunctionSet != 0 {
		n += 4
	}
	r := afp.NewRecord(afp.IDD, n)
	r[9] = triplet.UnitBaseTenInches
	binary.BigEndian.PutUint16(r[10:], uint16(d.XRes*10))
	binary.BigEndian.PutUint16(r[12:], uint16(d.YRes*10))
	binary.BigEndian.PutUint16(r[14:], uint16(d.Width))
	binary.BigEndian.PutUint16(r[16:], uint16(d.Height))
	if d.FunctionSet != 0 {
		copy(r[18:], []byte{0xF7, 0x02, 0x01, d.FunctionSet})
	}
	_, err := w.Write(r)
	return err
}

// GraphicsDataDescriptor (GDD) declares the drawing order subset and the
// graphics presentation space window of a graphics object.
type GraphicsDataDescriptor struct {
	leaf

	// Width and Height give the size of the presentation space window, in
	// units of 1/XRes and 1/YRes inch.
	Width, Height int
	XRes, YRes    int
}

// WriteToStream implements the [Streamable] interface.
func (d *GraphicsDataDescriptor) WriteToStream(w io.Writer) error {
	r := afp.NewRecord(afp.GDD, afp.HeaderLength+9+20)
	p := r[afp.HeaderLength:]

	// drawing order subset: GRS3, level 2, version 1
	copy(p, []byte{0xF7, 0x07, 0xB0, 0x00, 0x00, 0x02, 0x00, 0x01, 0x00})
	p = p[9:]

	// window specification
	p[0] = 0xF6
	p[1] = 18
	p[2] = 0x00 // flags
	p[3] = 0x00
	p[4] = 0x00 // coordinate format: 16-bit signed integers
	p[5] = triplet.UnitBaseTenInches
	binary.BigEndian.PutUint16(p[6:], uint16(d.XRes*10))
	binary.BigEndian.PutUint16(p[8:], uint16(d.YRes*10))
	binary.BigEndian.PutUint16(p[10:], uint16(max(d.XRes, d.YRes)*10))
	binary.BigEndian.PutUint16(p[12:], 0)
	binary.BigEndian.PutUint16(p[14:], uint16(max(d.Width-1, 0)))
	binary.BigEndian.PutUint16(p[16:], 0)
	binary.BigEndian.PutUint16(p[18:], uint16(max(d.Height-1, 0)))

	_, err := w.Write(r)
	return err
}
