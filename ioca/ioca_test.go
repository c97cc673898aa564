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

package ioca

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/afp"
)

func TestSegmentEncoding(t *testing.T) {
	s := &Segment{
		Name: "IMG1",
		Content: &Content{
			HRes:   300,
			VRes:   300,
			Width:  2,
			Height: 1,
			Data:   []byte{0xC0},
		},
	}
	got, err := s.AppendEncoded(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x70, 0x04, 0xC9, 0xD4, 0xC7, 0xF1,
		0x91, 0x01, 0xFF,
		0x94, 0x09, 0x00, 0x0B, 0xB8, 0x0B, 0xB8, 0x00, 0x02, 0x00, 0x01,
		0x95, 0x02, 0x03, 0x01,
		0x96, 0x01, 0x01,
		0xFE, 0x92, 0x00, 0x01, 0xC0,
		0x93, 0x00,
		0x71, 0x00,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestIDEStructure(t *testing.T) {
	s := &IDEStructure{Model: ColorModelCMYK, Subtractive: true, Bits: []byte{8, 8, 8, 8}}
	got := s.appendEncoded(nil)
	want := []byte{0x9B, 0x0A, 0x80, 0x04, 0, 0, 0, 8, 8, 8, 8}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestEmptySegment(t *testing.T) {
	s := &Segment{Name: "0001"}
	got, err := s.AppendEncoded(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x70, 0x04, 0xF0, 0xF0, 0xF0, 0xF1, 0x71, 0x00}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestLargeImageData(t *testing.T) {
	data := make([]byte, 2*MaxDataChunk+10)
	for i := range data {
		data[i] = byte(i)
	}
	c := &Content{HRes: 240, VRes: 240, Width: 1000, Height: 1000, IDESize: 8, Data: data}
	enc, err := c.appendEncoded(nil)
	if err != nil {
		t.Fatal(err)
	}

	// collect the image data parameters
	var got []byte
	var sizes []int
	pos := bytes.Index(enc, []byte{0xFE, 0x92})
	for pos >= 0 && pos+4 <= len(enc) && enc[pos] == 0xFE && enc[pos+1] == 0x92 {
		n := int(enc[pos+2])<<8 | int(enc[pos+3])
		sizes = append(sizes, n)
		got = append(got, enc[pos+4:pos+4+n]...)
		pos += 4 + n
	}
	if d := cmp.Diff([]int{MaxDataChunk, MaxDataChunk, 10}, sizes); d != "" {
		t.Errorf("unexpected chunk sizes (-want +got):\n%s", d)
	}
	if !bytes.Equal(got, data) {
		t.Error("image data not preserved")
	}
	if !bytes.Equal(enc[pos:], []byte{0x93, 0x00}) {
		t.Errorf("unexpected trailer % X", enc[pos:])
	}
}

func TestEncodeRecords(t *testing.T) {
	data := make([]byte, 30000)
	for i := range data {
		data[i] = byte(i * 7)
	}
	s := &Segment{
		Name:    "0001",
		Content: &Content{HRes: 300, VRes: 300, Width: 400, Height: 600, Data: data},
	}
	want, err := s.AppendEncoded(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = s.Encode(buf, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	fields, err := afp.ReadAll(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 4 {
		t.Errorf("got %d records, want 4", len(fields))
	}
	var got []byte
	for _, f := range fields {
		if f.ID != afp.IPD {
			t.Errorf("unexpected field %s", f.ID)
		}
		if afp.HeaderLength+len(f.Data) > DefaultMaxRecordLength {
			t.Errorf("record of %d bytes", afp.HeaderLength+len(f.Data))
		}
		got = append(got, f.Data...)
	}
	if !bytes.Equal(got, want) {
		t.Error("segment not preserved")
	}
}

func TestInvalidSize(t *testing.T) {
	s := &Segment{Content: &Content{Width: 0, Height: 10}}
	_, err := s.AppendEncoded(nil, nil)
	if !errors.Is(err, errSize) {
		t.Errorf("got %v, want %v", err, errSize)
	}
	s = &Segment{Content: &Content{Width: 70000, Height: 10}}
	err = s.Encode(&bytes.Buffer{}, 0, nil)
	if !errors.Is(err, errSize) {
		t.Errorf("got %v, want %v", err, errSize)
	}
}
