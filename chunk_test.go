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
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + i/256)
	}
	return data
}

func TestWriteChunksRoundTrip(t *testing.T) {
	const M = 100
	for _, size := range []int{0, 1, M - 1, M, M + 1, 10 * M} {
		data := testData(size)
		buf := &bytes.Buffer{}
		header := NewRecord(IPD, HeaderLength)
		err := WriteChunks(buf, data, header, 1, M)
		if err != nil {
			t.Fatal(err)
		}

		fields, err := ReadAll(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		var got []byte
		for _, f := range fields {
			if f.ID != IPD {
				t.Errorf("size %d: unexpected field %s", size, f.ID)
			}
			if n := HeaderLength + len(f.Data); n > M {
				t.Errorf("size %d: record of %d bytes exceeds %d", size, n, M)
			}
			got = append(got, f.Data...)
		}
		if size == 0 && buf.Len() != 0 {
			t.Errorf("empty data produced %d bytes", buf.Len())
		}
		if d := cmp.Diff(data, got); size > 0 && d != "" {
			t.Errorf("size %d: data mismatch (-want +got):\n%s", size, d)
		}
	}
}

func TestWriteChunksTrailingLength(t *testing.T) {
	// image data chunks inside an image segment: FE 92 LLLL <data>
	header := []byte{0xFE, 0x92, 0x00, 0x00}
	data := testData(25)
	buf := &bytes.Buffer{}
	err := WriteChunks(buf, data, header, 2, 14)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	var got []byte
	var lengths []int
	for len(out) > 0 {
		if out[0] != 0xFE || out[1] != 0x92 {
			t.Fatalf("bad chunk header % X", out[:4])
		}
		n := int(binary.BigEndian.Uint16(out[2:]))
		lengths = append(lengths, n)
		got = append(got, out[4:4+n]...)
		out = out[4+n:]
	}
	if d := cmp.Diff([]int{10, 10, 5}, lengths); d != "" {
		t.Errorf("chunk lengths (-want +got):\n%s", d)
	}
	if !bytes.Equal(got, data) {
		t.Error("data mismatch")
	}
}

func TestWriteChunksTooSmall(t *testing.T) {
	err := WriteChunks(&bytes.Buffer{}, []byte{1}, make([]byte, 9), 1, 9)
	if err == nil {
		t.Error("expected an error")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errFail }

var errFail = errors.New("write failed")

func TestWriteChunksError(t *testing.T) {
	err := WriteChunks(failWriter{}, []byte{1, 2, 3}, make([]byte, 9), 1, 100)
	if !errors.Is(err, errFail) {
		t.Errorf("got %v, want %v", err, errFail)
	}
}
