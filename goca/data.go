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

package goca

import (
	"io"

	"seehuhn.de/go/afp"
)

// DefaultMaxRecordLength is the default size limit for graphics data
// records, including the structured field introducer.
const DefaultMaxRecordLength = 8192

// MinRecordLength is the smallest allowed size limit for graphics data
// records.  A record of this size can hold any single drawing order in a
// fresh segment.
const MinRecordLength = afp.HeaderLength + SegmentHeaderLength + MaxOrderLength

// Data is a graphics data record (GAD structured field).
//
// The record holds a sequence of segments.  Drawing orders are always added
// to the last segment.  The encoded length of a record never exceeds its
// size limit.
type Data struct {
	segments []*Segment
	length   int
	max      int
	complete bool
}

func newData(maxLength int) *Data {
	return &Data{
		length: afp.HeaderLength,
		max:    maxLength,
	}
}

// Len returns the encoded length of the record, including the structured
// field introducer.
func (d *Data) Len() int {
	return d.length
}

// Segments returns the segments of the record.
func (d *Data) Segments() []*Segment {
	return d.segments
}

// CurrentSegment returns the last segment of the record, or nil if the
// record has no segments.
func (d *Data) CurrentSegment() *Segment {
	if len(d.segments) == 0 {
		return nil
	}
	return d.segments[len(d.segments)-1]
}

// fits reports whether o can be appended to the record.
func (d *Data) fits(o Order) bool {
	need := len(o)
	if d.CurrentSegment() == nil {
		need += SegmentHeaderLength
	}
	return d.length+need <= d.max
}

func (d *Data) addSegment(s *Segment) {
	d.segments = append(d.segments, s)
	d.length += s.Len()
}

func (d *Data) removeCurrentSegment() *Segment {
	s := d.CurrentSegment()
	if s == nil {
		return nil
	}
	d.segments = d.segments[:len(d.segments)-1]
	d.length -= s.Len()
	return s
}

func (d *Data) addOrder(o Order) {
	d.CurrentSegment().add(o)
	d.length += len(o)
}

// IsComplete reports whether the record will not receive any more orders.
func (d *Data) IsComplete() bool {
	return d.complete
}

// SetComplete marks the record as complete.
func (d *Data) SetComplete(complete bool) {
	d.complete = complete
}

// AppendEncoded appends the encoded record to buf.
func (d *Data) AppendEncoded(buf []byte, warn *afp.Warnings) []byte {
	start := len(buf)
	buf = append(buf, afp.NewRecord(afp.GAD, afp.HeaderLength)...)
	for _, s := range d.segments {
		buf = s.AppendEncoded(buf, warn)
	}
	afp.Record(buf[start:]).SetLength(0)
	return buf
}

// Encode writes the record to w.
func (d *Data) Encode(w io.Writer, warn *afp.Warnings) error {
	_, err := w.Write(d.AppendEncoded(make([]byte, 0, d.length), warn))
	return err
}
