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
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/afp"
)

// Options control the construction of a [Drawing].
type Options struct {
	// MaxRecordLength is the size limit for graphics data records,
	// including the structured field introducer.  Values smaller than
	// [MinRecordLength] are raised to this minimum.  If this is zero,
	// [DefaultMaxRecordLength] is used.
	MaxRecordLength int

	// Warnings receives encoding problems in text and segment names.
	Warnings *afp.Warnings
}

// Drawing collects drawing orders into graphics data records.
//
// Records which are full are marked complete and can be written with
// [Drawing.Flush] while drawing continues.  Redundant changes of the
// graphics state are suppressed.
type Drawing struct {
	State

	records []*Data
	current *Data

	maxRecord    int
	segmentCount int
	complete     bool

	warn *afp.Warnings
}

// NewDrawing allocates a new, empty drawing.
func NewDrawing(opt *Options) *Drawing {
	if opt == nil {
		opt = &Options{}
	}
	maxRecord := opt.MaxRecordLength
	if maxRecord == 0 {
		maxRecord = DefaultMaxRecordLength
	}
	maxRecord = max(maxRecord, MinRecordLength)
	maxRecord = min(maxRecord, afp.MaxFieldLength+1)

	return &Drawing{
		maxRecord: maxRecord,
		warn:      opt.Warnings,
	}
}

// Add appends a drawing order.
//
// If the current record cannot hold the order, the record is marked
// complete and a new record is started.  A segment which already holds
// orders is continued in the new record by a chained segment; an empty
// segment is moved to the new record under a fresh name.
//
// Orders longer than [MaxOrderLength] are truncated, and a warning is
// reported.  Empty orders are ignored.
func (d *Drawing) Add(o Order) {
	if len(o) == 0 {
		return
	}
	if len(o) > MaxOrderLength {
		d.warn.Add(afp.Warning{
			Kind: afp.WarnTruncated,
			Msg: fmt.Sprintf("%s truncated to %d bytes",
				o, MaxOrderLength),
		})
		o = long(o[0], o[2:MaxOrderLength]...)
	}

	if d.current == nil {
		d.newData()
	} else if !d.current.fits(o) {
		full := d.current
		open := full.CurrentSegment()
		full.SetComplete(true)
		d.newData()

		if open != nil && len(open.orders) == 0 {
			full.removeCurrentSegment()
			open.Name = d.nextSegmentName()
			d.current.addSegment(open)
		} else if open != nil {
			d.current.addSegment(&Segment{
				Name:        d.nextSegmentName(),
				Predecessor: open.Name,
			})
		}
	}
	if d.current.CurrentSegment() == nil {
		d.current.addSegment(&Segment{Name: d.nextSegmentName()})
	}
	d.current.addOrder(o)
}

func (d *Drawing) newData() *Data {
	d.current = newData(d.maxRecord)
	d.records = append(d.records, d.current)
	return d.current
}

func (d *Drawing) nextSegmentName() string {
	d.segmentCount++
	return fmt.Sprintf("%04d", d.segmentCount%10000)
}

// NewSegment starts a new, unchained segment.  Since a new segment does not
// inherit the line width, the cached line width is forgotten.
func (d *Drawing) NewSegment() *Segment {
	if d.current == nil || d.current.length+SegmentHeaderLength+MaxOrderLength > d.maxRecord {
		if d.current != nil {
			d.current.SetComplete(true)
		}
		d.newData()
	}
	s := &Segment{Name: d.nextSegmentName()}
	d.current.addSegment(s)
	d.Set &^= StateLineWidth | StateFractionalLineWidth
	return s
}

// Records returns the graphics data records which have not been written
// yet.
func (d *Drawing) Records() []*Data {
	return d.records
}

// IsComplete reports whether the drawing has been marked complete.
func (d *Drawing) IsComplete() bool {
	return d.complete
}

// SetComplete marks the drawing as complete.  All records are marked
// complete first.
func (d *Drawing) SetComplete(complete bool) {
	if complete {
		for _, r := range d.records {
			r.SetComplete(true)
		}
	}
	d.complete = complete
}

// Flush writes all leading complete records to w and releases them.
// Writing stops at the first incomplete record.
func (d *Drawing) Flush(w io.Writer) error {
	for len(d.records) > 0 {
		r := d.records[0]
		if !r.IsComplete() {
			break
		}
		if err := r.Encode(w, d.warn); err != nil {
			return err
		}
		d.records[0] = nil
		d.records = d.records[1:]
		if r == d.current {
			d.current = nil
		}
	}
	return nil
}

// MoveTo sets the current position.
func (d *Drawing) MoveTo(p Point) {
	d.Add(SetCurrentPosition(p))
}

// Line draws a polyline through the given points.  Long polylines are
// split into several orders.
func (d *Drawing) Line(points []Point) {
	d.addPoints(points, Line)
}

// Fillet draws a smooth curve controlled by the given points.
func (d *Drawing) Fillet(points []Point) {
	d.addPoints(points, Fillet)
}

func (d *Drawing) addPoints(points []Point, order func([]Point, bool) Order) {
	atCurrent := false
	for len(points) > 0 {
		n := min(len(points), maxPoints)
		d.Add(order(points[:n], atCurrent))
		points = points[n:]
		atCurrent = true
	}
}

// PointOf rounds v to the nearest graphics presentation space coordinates.
func PointOf(v vec.Vec2) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Polyline draws a polyline through the given points, rounded to the
// nearest graphics presentation space coordinates.
func (d *Drawing) Polyline(points []vec.Vec2) {
	pp := make([]Point, len(points))
	for i, v := range points {
		pp[i] = PointOf(v)
	}
	d.Line(pp)
}

// Box draws a rectangle with corners p0 and p1.
func (d *Drawing) Box(p0, p1 Point) {
	d.Add(Box(p0, p1))
}

// Rect draws the outline of r.
func (d *Drawing) Rect(r rect.Rect) {
	d.Box(PointOf(vec.Vec2{X: r.LLx, Y: r.LLy}), PointOf(vec.Vec2{X: r.URx, Y: r.URy}))
}

// SetArcParameters sets the transform used by subsequent arcs.  The unit
// circle is mapped to the ellipse with axis end points (p, s) and (r, q).
func (d *Drawing) SetArcParameters(p, q, r, s int) {
	d.Add(SetArcParameters(p, q, r, s))
}

// SetArcTransform sets the arc parameters from the linear part of m.  The
// translation part of m is ignored.
func (d *Drawing) SetArcTransform(m matrix.Matrix) {
	round := func(x float64) int { return int(math.Round(x)) }
	d.SetArcParameters(round(m[0]), round(m[3]), round(m[2]), round(m[1]))
}

// FullArc draws a full arc centred at p, using the current arc parameters
// scaled by multiplier.
func (d *Drawing) FullArc(p Point, multiplier float64) {
	mh := math.Floor(multiplier)
	mhr := math.Round((multiplier - mh) * 256)
	if mhr >= 256 {
		mh++
		mhr = 0
	}
	d.Add(FullArc(p, int(mh), int(mhr)))
}

// Ellipse draws the image of the unit circle under m.
func (d *Drawing) Ellipse(m matrix.Matrix) {
	d.SetArcTransform(m)
	d.FullArc(PointOf(vec.Vec2{X: m[4], Y: m[5]}), 1)
}

// Circle draws a circle with the given centre and radius.
func (d *Drawing) Circle(p Point, radius int) {
	r := float64(radius)
	d.Ellipse(matrix.Scale(r, r).Translate(float64(p.X), float64(p.Y)))
}

// BeginArea starts an area.  The orders up to the matching [Drawing.EndArea]
// define the boundary of the area, which is filled with the current
// pattern.
func (d *Drawing) BeginArea(drawBoundary bool) {
	d.Add(BeginArea(drawBoundary))
}

// EndArea ends an area.
func (d *Drawing) EndArea() {
	d.Add(EndArea())
}

// Text draws a string with its baseline starting at p.  The text is
// encoded in EBCDIC; long strings are continued at the current position.
func (d *Drawing) Text(s string, p Point) {
	enc, w := afp.EncodeText(s)
	d.warn.Add(w...)

	n := min(len(enc), maxStringLength)
	d.Add(CharacterString(p, enc[:n], false))
	enc = enc[n:]
	for len(enc) > 0 {
		n := min(len(enc), maxParams)
		d.Add(CharacterString(Point{}, enc[:n], true))
		enc = enc[n:]
	}
}

// Image draws an uncompressed bilevel image at p.  The data holds the rows
// of the image, each row padded to a whole number of bytes.
func (d *Drawing) Image(p Point, width, height int, data []byte) error {
	rowLen := (width + 7) / 8
	if rowLen > maxParams {
		return fmt.Errorf("image width %d exceeds %d pixels", width, maxParams*8)
	}
	if len(data) != rowLen*height {
		return fmt.Errorf("expected %d bytes of image data, got %d",
			rowLen*height, len(data))
	}
	d.Add(BeginImage(p, width, height))
	for y := 0; y < height; y++ {
		d.Add(ImageData(data[y*rowLen : (y+1)*rowLen]))
	}
	d.Add(EndImage())
	return nil
}

// Comment adds a comment.
func (d *Drawing) Comment(s string) {
	enc, w := afp.EncodeText(s)
	d.warn.Add(w...)
	d.Add(Comment(enc))
}

// EndProlog ends the prolog of the current segment.
func (d *Drawing) EndProlog() {
	d.Add(EndProlog())
	if s := d.currentSegment(); s != nil && s.Predecessor == "" {
		s.Prolog = true
	}
}

func (d *Drawing) currentSegment() *Segment {
	if d.current == nil {
		return nil
	}
	return d.current.CurrentSegment()
}
