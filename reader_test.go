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
	"bytes"
	"errors"
	"testing"
)

func TestReader(t *testing.T) {
	buf := &bytes.Buffer{}
	name, _ := EncodeName("DOC1", NameLength)
	bdt := NewRecord(BDT, NamedHeaderLength)
	bdt.SetName(name)
	buf.Write(bdt)
	nop := NewRecord(NOP, HeaderLength+3)
	copy(nop[HeaderLength:], []byte{1, 2, 3})
	buf.Write(nop)
	edt := NewRecord(EDT, NamedHeaderLength)
	edt.SetName(name)
	buf.Write(edt)

	fields, err := ReadAll(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	if fields[0].ID != BDT || fields[0].Name() != "DOC1" {
		t.Errorf("unexpected first field %s", fields[0])
	}
	if fields[1].ID != NOP || !bytes.Equal(fields[1].Data, []byte{1, 2, 3}) {
		t.Errorf("unexpected second field %s", fields[1])
	}
	if fields[1].Name() != "" {
		t.Errorf("NOP fields have no name, got %q", fields[1].Name())
	}
	if fields[2].Pos != int64(len(bdt)+len(nop)) {
		t.Errorf("wrong position %d", fields[2].Pos)
	}
}

func TestReaderMalformed(t *testing.T) {
	cases := [][]byte{
		{0x5B, 0x00, 0x08, 0xD3, 0xEE, 0xEE, 0, 0, 0},
		{0x5A, 0x00, 0x10, 0xD3, 0xEE, 0xEE, 0, 0, 0},
		{0x5A, 0x00, 0x08, 0xD3},
		{0x5A, 0x00, 0x02, 0xD3, 0xEE, 0xEE, 0, 0, 0},
	}
	for i, data := range cases {
		_, err := ReadAll(bytes.NewReader(data))
		var mErr *MalformedFileError
		if !errors.As(err, &mErr) {
			t.Errorf("%d: expected MalformedFileError, got %v", i, err)
		}
	}
}
