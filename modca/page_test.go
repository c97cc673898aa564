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
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/goca"
	"seehuhn.de/go/afp/ioca"
	"seehuhn.de/go/afp/triplet"
)

func testImage(t *testing.T, f *Factory) *ImageObject {
	t.Helper()
	img := f.CreateImageObject()
	err := img.SetContent(&ioca.Content{
		HRes: 300, VRes: 300,
		Width: 8, Height: 8,
		Data: make([]byte, 8),
	})
	if err != nil {
		t.Fatal(err)
	}
	img.SetComplete(true)
	return img
}

var testArea = ObjectArea{
	X: 100, Y: 200,
	Width: 80, Height: 80,
	XRes: 300, YRes: 300,
}

func findField(fields []*afp.Field, id afp.SFID) *afp.Field {
	for _, f := range fields {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func TestInlinePlacement(t *testing.T) {
	f := NewFactory(&FactoryOptions{Placement: PlacementInline})
	page := f.CreatePage(2550, 3300, 300, 300)
	if err := page.AddDataObject(testImage(t, f), testArea); err != nil {
		t.Fatal(err)
	}
	page.SetComplete(true)

	buf := &bytes.Buffer{}
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	fields := readFields(t, buf)
	want := []string{
		"BPG", "BAG", "PGD", "PTD", "EAG",
		"BIM", "BOG", "OBD", "OBP", "MIO", "IDD", "EOG", "IPD", "EIM",
		"EPG",
	}
	if d := cmp.Diff(want, describe(fields)); d != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", d)
	}

	obp := findField(fields, afp.OBP)
	if x := afp.Uint24(obp.Data[2:]); x != 100 {
		t.Errorf("x = %d, want 100", x)
	}
	if y := afp.Uint24(obp.Data[5:]); y != 200 {
		t.Errorf("y = %d, want 200", y)
	}
	if obp.Data[23] != byte(RefCSysPageSegmentRelative) {
		t.Errorf("reference coordinate system 0x%02X", obp.Data[23])
	}
}

func TestResourcePlacement(t *testing.T) {
	f := NewFactory(&FactoryOptions{Placement: PlacementResource})
	page := f.CreatePage(2550, 3300, 300, 300)
	img := testImage(t, f)
	area := testArea
	area.Rotation = 90
	if err := page.AddDataObject(img, area); err != nil {
		t.Fatal(err)
	}
	page.SetComplete(true)

	buf := &bytes.Buffer{}
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	fields := readFields(t, buf)
	want := []string{
		"BPG",
		"BRG", "BRS",
		"BIM", "BOG", "OBD", "OBP", "MIO", "IDD", "EOG", "IPD", "EIM",
		"ERS", "ERG",
		"BAG", "PGD", "PTD", "EAG",
		"IOB",
		"EPG",
	}
	if d := cmp.Diff(want, describe(fields)); d != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", d)
	}

	obp := findField(fields, afp.OBP)
	if x, y := afp.Uint24(obp.Data[2:]), afp.Uint24(obp.Data[5:]); x != 0 || y != 0 {
		t.Errorf("object area at (%d, %d), want (0, 0)", x, y)
	}

	brs := findField(fields, afp.BRS)
	if brs.Name() != img.Name() {
		t.Errorf("resource name %q, want %q", brs.Name(), img.Name())
	}
	if brs.Data[8] != 0x0A || brs.Data[9] != 0x21 || brs.Data[10] != 0x06 {
		t.Errorf("unexpected resource object type triplet % X", brs.Data[8:])
	}

	iob := findField(fields, afp.IOB)
	if iob.Name() != img.Name() {
		t.Errorf("include name %q, want %q", iob.Name(), img.Name())
	}
	if iob.Data[9] != byte(IncludeTypeImage) {
		t.Errorf("object type 0x%02X", iob.Data[9])
	}
	if x, y := afp.Uint24(iob.Data[10:]), afp.Uint24(iob.Data[13:]); x != 100 || y != 200 {
		t.Errorf("object included at (%d, %d), want (100, 200)", x, y)
	}
	xo := binary.BigEndian.Uint16(iob.Data[16:])
	yo := binary.BigEndian.Uint16(iob.Data[18:])
	if xo != 0x2D00 || yo != 0x5A00 {
		t.Errorf("orientation %04X %04X, want 2D00 5A00", xo, yo)
	}
	// measurement units, object area size and mapping option
	tr := iob.Data[IncludeObjectLength-afp.HeaderLength:]
	wantTriplets := []byte{
		0x08, 0x4B, 0x00, 0x00, 0x0B, 0xB8, 0x0B, 0xB8,
		0x09, 0x4C, 0x02, 0x00, 0x00, 0x50, 0x00, 0x00, 0x50,
		0x03, 0x04, 0x60,
	}
	if d := cmp.Diff(wantTriplets, tr); d != "" {
		t.Errorf("unexpected triplets (-want +got):\n%s", d)
	}
}

func TestPageStreaming(t *testing.T) {
	f := NewFactory(nil)
	page := f.CreatePage(2550, 3300, 300, 300)
	g := f.CreateGraphicsObject()
	_ = page.AddDataObject(g, testArea)
	nop := f.CreateNoOperation("after")
	_ = page.Add(nop)

	buf := &bytes.Buffer{}
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	want := []string{"BPG", "BAG", "PGD", "PTD", "EAG"}
	if d := cmp.Diff(want, describe(readFields(t, buf))); d != "" {
		t.Errorf("unexpected fields (-want +got):\n%s", d)
	}

	g.Box(goca.Point{X: 1, Y: 1}, goca.Point{X: 50, Y: 50})
	g.SetComplete(true)
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	want = []string{
		"BGR", "BOG", "OBD", "OBP", "MGO", "GDD", "EOG", "GAD", "EGR",
		"NOP \x81\x86\xA3\x85\x99",
	}
	if d := cmp.Diff(want, describe(readFields(t, buf))); d != "" {
		t.Errorf("unexpected fields (-want +got):\n%s", d)
	}
}

func TestFonts(t *testing.T) {
	f := NewFactory(&FactoryOptions{MaxFontsPerMap: 2})
	page := f.CreatePage(2550, 3300, 300, 300)
	for i := 0; i < 5; i++ {
		id, err := page.CreateFont("T1V10500", "C0H200A0", 0)
		if err != nil {
			t.Fatal(err)
		}
		if id != byte(i+1) {
			t.Errorf("font %d has local id %d", i, id)
		}
	}
	if _, err := page.CreateOutlineFont("T1V10500", "CZH200", 0, 240); err != nil {
		t.Fatal(err)
	}
	if _, err := page.CreateFont("T1V10500", "C0H200A0", 45); !errors.Is(err, afp.ErrInvalidRotation) {
		t.Errorf("got %v, want %v", err, afp.ErrInvalidRotation)
	}

	maps := page.ActiveEnvironmentGroup().MapCodedFonts()
	var counts []int
	for _, m := range maps {
		counts = append(counts, m.Len())
	}
	if d := cmp.Diff([]int{2, 2, 2}, counts); d != "" {
		t.Errorf("unexpected map sizes (-want +got):\n%s", d)
	}

	page.SetComplete(true)
	buf := &bytes.Buffer{}
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	var sizes []int
	for _, fi := range readFields(t, buf) {
		if fi.ID == afp.MCF {
			sizes = append(sizes, len(fi.Data))
		}
	}
	if d := cmp.Diff([]int{68, 68, 34 + 58}, sizes); d != "" {
		t.Errorf("unexpected MCF sizes (-want +got):\n%s", d)
	}

	if _, err := page.CreateFont("A", "B", 0); !errors.Is(err, afp.ErrAlreadyWritten) {
		t.Errorf("got %v, want %v", err, afp.ErrAlreadyWritten)
	}
}

func TestFontGroupEncoding(t *testing.T) {
	font := &Font{LocalID: 3, CodePage: "T1V10500", CharacterSet: "C0H200A0", Rotation: 90}
	got, w := font.appendEncoded(nil)
	if len(w) != 0 {
		t.Errorf("unexpected warnings %v", w)
	}
	want := []byte{
		0x00, 0x22,
		0x0C, 0x02, 0x85, 0x00, 0xE3, 0xF1, 0xE5, 0xF1, 0xF0, 0xF5, 0xF0, 0xF0,
		0x0C, 0x02, 0x86, 0x00, 0xC3, 0xF0, 0xC8, 0xF2, 0xF0, 0xF0, 0xC1, 0xF0,
		0x04, 0x24, 0x05, 0x03,
		0x04, 0x26, 0x2D, 0x00,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestOverlays(t *testing.T) {
	f := NewFactory(&FactoryOptions{MaxOverlaysPerMap: 1})
	page := f.CreatePage(2550, 3300, 300, 300)
	for _, name := range []string{"OVL1", "OVL2", "OVL3"} {
		if err := page.IncludeOverlay(name, 10, 20, 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := page.IncludeOverlay("BAD", 0, 0, 10); !errors.Is(err, afp.ErrInvalidRotation) {
		t.Errorf("got %v, want %v", err, afp.ErrInvalidRotation)
	}
	page.SetComplete(true)

	buf := &bytes.Buffer{}
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	fields := readFields(t, buf)
	want := []string{
		"BPG", "BAG", "MPO", "MPO", "MPO", "PGD", "PTD", "EAG",
		"IPO", "IPO", "IPO", "EPG",
	}
	if d := cmp.Diff(want, describe(fields)); d != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", d)
	}

	mpo := fields[4]
	wantGroup := []byte{
		0x00, 0x12,
		0x0C, 0x02, 0x84, 0x00, 0xD6, 0xE5, 0xD3, 0xF3, 0x40, 0x40, 0x40, 0x40,
		0x04, 0x24, 0x02, 0x03,
	}
	if d := cmp.Diff(wantGroup, mpo.Data); d != "" {
		t.Errorf("unexpected MPO (-want +got):\n%s", d)
	}

	ipo := fields[9]
	if ipo.Name() != "OVL2" {
		t.Errorf("IPO name %q", ipo.Name())
	}
	if x, y := afp.Uint24(ipo.Data[8:]), afp.Uint24(ipo.Data[11:]); x != 10 || y != 20 {
		t.Errorf("overlay at (%d, %d)", x, y)
	}
}

func TestCapacityRecovery(t *testing.T) {
	ws := &afp.Warnings{}
	g := &ActiveEnvironmentGroup{named: named{warn: ws}}
	err := g.AddFont(Font{LocalID: 1, CodePage: "A", CharacterSet: "B"})
	if err != nil {
		t.Errorf("capacity problems must not be returned, got %v", err)
	}
	if ws.Len() != 1 || ws.List[0].Kind != afp.WarnCapacity {
		t.Errorf("unexpected warnings %v", ws.List)
	}
	if err := g.AddOverlay("X", 1); err != nil {
		t.Errorf("capacity problems must not be returned, got %v", err)
	}
	if ws.Len() != 2 {
		t.Errorf("unexpected warnings %v", ws.List)
	}
}

func TestOverlayResource(t *testing.T) {
	f := NewFactory(nil)
	doc := f.CreateDocument()
	ov := f.CreateOverlay(2550, 300, 300, 300)
	_ = ov.Add(f.CreateIncludePageSegment("S1", 0, 0))
	ov.SetComplete(true)
	res := f.CreateResourceObject(ov.Name(), ov, triplet.ResourceOverlay)
	if err := doc.EnsureResourceGroup().Add(res); err != nil {
		t.Fatal(err)
	}

	page := f.CreatePage(2550, 3300, 300, 300)
	_ = page.IncludeOverlay(ov.Name(), 0, 0, 0)
	imm := f.CreateInvokeMediumMap("MM1")
	_ = doc.Add(imm)
	_ = doc.Add(page)
	doc.SetComplete(true)

	buf := &bytes.Buffer{}
	if err := doc.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"BDT",
		"BRG", "BRS", "BMO", "BAG", "PGD", "PTD", "EAG", "IPS", "EMO", "ERS", "ERG",
		"IMM",
		"BPG", "BAG", "MPO", "PGD", "PTD", "EAG", "IPO", "EPG",
		"EDT",
	}
	if d := cmp.Diff(want, describe(readFields(t, buf))); d != "" {
		t.Errorf("unexpected fields (-want +got):\n%s", d)
	}
}

func TestLongNameResource(t *testing.T) {
	f := NewFactory(&FactoryOptions{Placement: PlacementResource})
	page := f.CreatePage(2550, 3300, 300, 300)
	img := testImage(t, f)
	img.SetName("PICTURE000042")
	if err := page.AddDataObject(img, testArea); err != nil {
		t.Fatal(err)
	}
	page.SetComplete(true)

	buf := &bytes.Buffer{}
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	fields := readFields(t, buf)
	for _, id := range []afp.SFID{afp.BRS, afp.BIM, afp.EIM, afp.ERS, afp.IOB} {
		fi := findField(fields, id)
		if fi == nil {
			t.Fatalf("%s missing", id)
		}
		if got := fi.Name(); got != "RE000042" {
			t.Errorf("%s: name %q, want %q", id, got, "RE000042")
		}
	}

	if f.Warnings.Len() != 1 || f.Warnings.List[0].Kind != afp.WarnNameTruncated {
		t.Errorf("unexpected warnings %v", f.Warnings.List)
	}
}

func TestSetNameResetsEncoding(t *testing.T) {
	f := NewFactory(nil)
	ov := f.CreateOverlay(100, 100, 300, 300)
	ov.SetName("FIRSTNAME")
	first := afp.DecodeName(ov.nameBytes())
	ov.SetName("OVL2")
	second := afp.DecodeName(ov.nameBytes())
	if first != "IRSTNAME" || second != "OVL2" {
		t.Errorf("got %q and %q", first, second)
	}
}

func TestIncludePageSegment(t *testing.T) {
	f := NewFactory(nil)
	page := f.CreatePage(2550, 3300, 300, 300)
	if err := page.IncludePageSegment("LOGO", 150, 75); err != nil {
		t.Fatal(err)
	}
	page.SetComplete(true)

	buf := &bytes.Buffer{}
	if err := page.WriteToStream(buf); err != nil {
		t.Fatal(err)
	}
	ips := findField(readFields(t, buf), afp.IPS)
	if ips == nil {
		t.Fatal("IPS missing")
	}
	if ips.Name() != "LOGO" {
		t.Errorf("name %q", ips.Name())
	}
	if x, y := afp.Uint24(ips.Data[8:]), afp.Uint24(ips.Data[11:]); x != 150 || y != 75 {
		t.Errorf("segment at (%d, %d), want (150, 75)", x, y)
	}
}

func TestIncludeTypes(t *testing.T) {
	cases := []struct {
		in   triplet.ResourceType
		want IncludeType
	}{
		{triplet.ResourceImage, IncludeTypeImage},
		{triplet.ResourceGraphics, IncludeTypeGraphics},
		{triplet.ResourcePageSegment, IncludeTypePageSegment},
		{triplet.ResourceOverlay, IncludeTypeOverlay},
		{triplet.ResourceBarcode, IncludeTypeOther},
	}
	for _, c := range cases {
		if got := includeTypeFor(c.in); got != c.want {
			t.Errorf("%v: got 0x%02X, want 0x%02X", c.in, byte(got), byte(c.want))
		}
	}
}
