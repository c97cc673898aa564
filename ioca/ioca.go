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

// Package ioca encodes raster images in the Image Object Content
// Architecture.
//
// An image is written as a single image segment.  The segment holds the
// image content: its size and resolution, the compression and pixel layout,
// and the image data.  The encoded segment is carried by one or more image
// picture data (IPD) structured fields.
package ioca

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/afp"
)

// Compression identifies the algorithm used to compress the image data.
type Compression byte

// These are the supported compression algorithms.
const (
	CompressionNone Compression = 0x03
	CompressionG3MH Compression = 0x80
	CompressionG3MR Compression = 0x81
	CompressionG4   Compression = 0x82
	CompressionJPEG Compression = 0x83
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionG3MH:
		return "G3 MH"
	case CompressionG3MR:
		return "G3 MR"
	case CompressionG4:
		return "G4 MMR"
	case CompressionJPEG:
		return "JPEG"
	default:
		return fmt.Sprintf("Compression(0x%02X)", byte(c))
	}
}

// ColorModel is the colour model of images with more than one component
// per pixel.
type ColorModel byte

// These are the IOCA colour models.
const (
	ColorModelRGB   ColorModel = 0x01
	ColorModelYCrCb ColorModel = 0x02
	ColorModelCMYK  ColorModel = 0x04
	ColorModelYCbCr ColorModel = 0x12
)

// IDEStructure describes the layout of image data elements with several
// components.
type IDEStructure struct {
	Model ColorModel

	// Subtractive is set if the component values give ink coverage rather
	// than light intensity.
	Subtractive bool

	// Gray is set for images which use gray coding.
	Gray bool

	// Bits gives the number of bits of every component.
	Bits []byte
}

func (s *IDEStructure) appendEncoded(buf []byte) []byte {
	var flags byte
	if s.Subtractive {
		flags |= 0x80
	}
	if s.Gray {
		flags |= 0x20
	}
	buf = append(buf, codeIDEStructure, byte(6+len(s.Bits)), flags, byte(s.Model), 0, 0, 0)
	return append(buf, s.Bits...)
}

// Content describes a single image.
type Content struct {
	// HRes and VRes give the resolution in pixels per inch.
	HRes, VRes int

	// Width and Height give the image size in pixels.
	Width, Height int

	Compression Compression

	// IDESize is the number of bits per pixel.  If this is zero, bilevel
	// data (one bit per pixel) is assumed.
	IDESize byte

	// Structure describes the pixel components for colour images.  It can
	// be nil for bilevel and gray images.
	Structure *IDEStructure

	// Data holds the (possibly compressed) image data.
	Data []byte
}

// Self-defining field codes.
const (
	codeBeginSegment      = 0x70
	codeEndSegment        = 0x71
	codeBeginImageContent = 0x91
	codeEndImageContent   = 0x93
	codeImageSize         = 0x94
	codeImageEncoding     = 0x95
	codeIDESize           = 0x96
	codeIDEStructure      = 0x9B
	codeImageDataPrefix   = 0xFE
	codeImageData         = 0x92
)

// recordingAlgorithm is "RIDIC": rows from left to right, top to bottom.
const recordingAlgorithm = 0x01

// MaxDataChunk is the largest amount of image data held by a single image
// data parameter.
const MaxDataChunk = 0xFFFF

var errSize = errors.New("ioca: image dimensions out of range")

func (c *Content) appendEncoded(buf []byte) ([]byte, error) {
	if c.Width <= 0 || c.Height <= 0 || c.Width > 0xFFFF || c.Height > 0xFFFF {
		return buf, errSize
	}
	if c.HRes < 0 || c.VRes < 0 || c.HRes*10 > 0xFFFF || c.VRes*10 > 0xFFFF {
		return buf, fmt.Errorf("ioca: invalid resolution %dx%d", c.HRes, c.VRes)
	}

	buf = append(buf, codeBeginImageContent, 0x01, 0xFF)

	// unit base 0x00: ten inches
	buf = append(buf, codeImageSize, 0x09, 0x00)
	buf = binary.BigEndian.AppendUint16(buf, uint16(c.HRes*10))
	buf = binary.BigEndian.AppendUint16(buf, uint16(c.VRes*10))
	buf = binary.BigEndian.AppendUint16(buf, uint16(c.Width))
	buf = binary.BigEndian.AppendUint16(buf, uint16(c.Height))

	comp := c.Compression
	if comp == 0 {
		comp = CompressionNone
	}
	buf = append(buf, codeImageEncoding, 0x02, byte(comp), recordingAlgorithm)

	ideSize := c.IDESize
	if ideSize == 0 {
		ideSize = 1
	}
	buf = append(buf, codeIDESize, 0x01, ideSize)

	if c.Structure != nil {
		buf = c.Structure.appendEncoded(buf)
	}

	if len(c.Data) > 0 {
		w := bytes.NewBuffer(buf)
		hdr := []byte{codeImageDataPrefix, codeImageData, 0, 0}
		err := afp.WriteChunks(w, c.Data, hdr, 2, len(hdr)+MaxDataChunk)
		if err != nil {
			return buf, err
		}
		buf = w.Bytes()
	}

	buf = append(buf, codeEndImageContent, 0x00)
	return buf, nil
}

// Segment is an IOCA image segment.
type Segment struct {
	// Name is the segment name.  Only the last four characters are used.
	Name string

	// Content is the image held by the segment.  If this is nil, the
	// segment is empty.
	Content *Content
}

// AppendEncoded appends the encoded segment to buf.
func (s *Segment) AppendEncoded(buf []byte, warn *afp.Warnings) ([]byte, error) {
	name, w := afp.EncodeName(s.Name, 4)
	warn.Add(w...)

	buf = append(buf, codeBeginSegment, 0x04)
	buf = append(buf, name...)
	if s.Content != nil {
		var err error
		buf, err = s.Content.appendEncoded(buf)
		if err != nil {
			return buf, err
		}
	}
	buf = append(buf, codeEndSegment, 0x00)
	return buf, nil
}

// DefaultMaxRecordLength is the default size limit for image picture data
// records, including the structured field introducer.
const DefaultMaxRecordLength = 8192

// Encode writes the segment to w as a sequence of image picture data
// records.  No record is longer than maxRecord bytes.  If maxRecord is
// zero, [DefaultMaxRecordLength] is used.
func (s *Segment) Encode(w io.Writer, maxRecord int, warn *afp.Warnings) error {
	if maxRecord == 0 {
		maxRecord = DefaultMaxRecordLength
	}
	maxRecord = min(maxRecord, afp.MaxFieldLength+1)

	data, err := s.AppendEncoded(nil, warn)
	if err != nil {
		return err
	}
	return afp.WriteChunks(w, data, afp.NewRecord(afp.IPD, afp.HeaderLength), 1, maxRecord)
}
