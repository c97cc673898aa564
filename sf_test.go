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

package afp

import (
	"io"
	"log"
	"testing"
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestSFID(t *testing.T) {
	cases := []struct {
		id   SFID
		want uint32
		name string
	}{
		{BIM, 0xD3A8FB, "BIM"},
		{EIM, 0xD3A9FB, "EIM"},
		{BGR, 0xD3A8BB, "BGR"},
		{OBP, 0xD3AC6B, "OBP"},
		{IPD, 0xD3EEFB, "IPD"},
		{PTD, 0xD3B19B, "PTD"},
		{NewSFID(TypeTable, CategoryPage), 0xD3B0AF, "D3B0AF"},
	}
	for _, c := range cases {
		if uint32(c.id) != c.want {
			t.Errorf("%s: got %06X, want %06X", c.name, uint32(c.id), c.want)
		}
		if c.id.String() != c.name {
			t.Errorf("%06X: got name %q, want %q", c.want, c.id.String(), c.name)
		}
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord(BIM, NamedHeaderLength)
	if len(r) != 17 {
		t.Fatalf("got %d bytes", len(r))
	}
	if r[0] != 0x5A || r[3] != 0xD3 || r[4] != 0xA8 || r[5] != 0xFB {
		t.Errorf("wrong introducer % X", r[:9])
	}
	if r.Length() != 16 {
		t.Errorf("length %d, want 16", r.Length())
	}
	r.SetLength(10)
	if r.Length() != 26 {
		t.Errorf("length %d, want 26", r.Length())
	}
}

func TestOrientation(t *testing.T) {
	want := map[int]uint16{0: 0x0000, 90: 0x2D00, 180: 0x5A00, 270: 0x8700, 360: 0, -90: 0x8700}
	for rot, o := range want {
		if got := Orientation(rot); got != o {
			t.Errorf("Orientation(%d) = %04X, want %04X", rot, got, o)
		}
	}
}

func TestUint24(t *testing.T) {
	b := make([]byte, 3)
	for _, v := range []int{0, 1, 255, 256, 0x123456, 0xFFFFFF} {
		PutUint24(b, v)
		if got := Uint24(b); got != v {
			t.Errorf("got %d, want %d", got, v)
		}
	}
}

func TestCheckRotation(t *testing.T) {
	for _, rot := range []int{0, 90, 180, 270} {
		if err := CheckRotation(rot); err != nil {
			t.Errorf("rotation %d: unexpected error %v", rot, err)
		}
	}
	for _, rot := range []int{-90, 45, 360} {
		if err := CheckRotation(rot); err != ErrInvalidRotation {
			t.Errorf("rotation %d: got %v", rot, err)
		}
	}
}
