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

package triplet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/afp"
)

func TestListOrder(t *testing.T) {
	var l List
	err := l.Add(DescriptorPosition(1), MeasurementUnits(240, 240), ObjectAreaSize(100, 200))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 {
		t.Errorf("got %d triplets, want 3", l.Len())
	}
	if l.DataLength() != 3+8+9 {
		t.Errorf("data length %d, want %d", l.DataLength(), 3+8+9)
	}

	buf := &bytes.Buffer{}
	n, err := l.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 20 {
		t.Errorf("wrote %d bytes, want 20", n)
	}
	want := []byte{
		0x03, 0x43, 0x01,
		0x08, 0x4B, 0x00, 0x00, 0x09, 0x60, 0x09, 0x60,
		0x09, 0x4C, 0x02, 0x00, 0x00, 0x64, 0x00, 0x00, 0xC8,
	}
	if d := cmp.Diff(want, buf.Bytes()); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestListDiscardAfterWrite(t *testing.T) {
	var l List
	if err := l.Add(Mapping(MapScaleToFit)); err != nil {
		t.Fatal(err)
	}
	if !l.Has(MappingOptionID) {
		t.Fatal("triplet not found")
	}
	if _, err := l.WriteTo(&bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if l.Has(MappingOptionID) || l.Len() != 0 || l.DataLength() != 0 {
		t.Error("triplets still present after writing")
	}
	if !l.IsWritten() {
		t.Error("list not marked as written")
	}
	if err := l.Add(Mapping(MapPosition)); !errors.Is(err, afp.ErrAlreadyWritten) {
		t.Errorf("got %v, want ErrAlreadyWritten", err)
	}
}

func TestListGetFirstMatch(t *testing.T) {
	var l List
	c1, _ := Comment("first")
	c2, _ := Comment("second")
	_ = l.Add(c1, ResourceSectionNumber(0), c2)

	got, ok := l.Get(CommentID)
	if !ok {
		t.Fatal("comment not found")
	}
	if afp.DecodeText(got.Data) != "first" {
		t.Errorf("got %q, want first match", afp.DecodeText(got.Data))
	}
	if _, ok := l.Get(ObjectAreaSizeID); ok {
		t.Error("found a triplet which was never added")
	}
}

func TestListMaximumSize(t *testing.T) {
	var l List
	big := Triplet{ID: CommentID, Data: make([]byte, MaxDataLength)}
	var err error
	count := 0
	for err == nil {
		err = l.Add(big)
		count++
	}
	if !errors.Is(err, afp.ErrMaximumSizeExceeded) {
		t.Fatalf("got %v", err)
	}
	if l.DataLength() > MaxListLength {
		t.Errorf("list length %d exceeds %d", l.DataLength(), MaxListLength)
	}
	if l.Len() != count-1 {
		t.Errorf("list has %d entries, want %d", l.Len(), count-1)
	}
}

func TestFullyQualifiedName(t *testing.T) {
	tr, warnings := FullyQualifiedNameString(FQNBeginResourceObjectReference, "OVL1")
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings %v", warnings)
	}
	if tr.Len() != 12 {
		t.Errorf("length %d, want 12", tr.Len())
	}
	enc := tr.AppendEncoded(nil)
	if enc[0] != 12 || enc[1] != 0x02 || enc[2] != 0x84 || enc[3] != 0x00 {
		t.Errorf("unexpected header % X", enc[:4])
	}
	if afp.DecodeName(enc[4:]) != "OVL1" {
		t.Errorf("unexpected name %q", afp.DecodeName(enc[4:]))
	}

	tr, _ = FullyQualifiedNameString(FQNAttributeGID, "Invoice Number")
	if tr.Len() != 4+len("Invoice Number") {
		t.Errorf("free-form names are not padded, got length %d", tr.Len())
	}
}

func TestObjectClassification(t *testing.T) {
	tr, warnings := ObjectClassification(&Classification{
		Class:           ClassTimeInvariantPaginated,
		DataInContainer: true,
		ContainerHasOEG: false,
		DataInOCD:       true,
		TypeName:        "IOCA",
	})
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings %v", warnings)
	}
	enc := tr.AppendEncoded(nil)
	if len(enc) != ObjectClassificationLength || enc[0] != ObjectClassificationLength {
		t.Fatalf("length %d / %d", len(enc), enc[0])
	}
	if enc[3] != 0x01 {
		t.Errorf("class 0x%02X", enc[3])
	}
	if enc[6] != 0xDC {
		t.Errorf("structure flags 0x%02X, want 0xDC", enc[6])
	}
	if afp.DecodeName(enc[24:56]) != "IOCA" {
		t.Errorf("type name %q", afp.DecodeName(enc[24:56]))
	}
}

func TestCharacterRotation(t *testing.T) {
	enc := CharacterRotation(90).AppendEncoded(nil)
	if d := cmp.Diff([]byte{0x04, 0x26, 0x2D, 0x00}, enc); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestCommentTruncated(t *testing.T) {
	long := string(bytes.Repeat([]byte("x"), 400))
	tr, _ := Comment(long)
	if tr.Len() != MaxDataLength+2 {
		t.Errorf("length %d, want %d", tr.Len(), MaxDataLength+2)
	}
}
