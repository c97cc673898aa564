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
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// WriteChunks writes data as a sequence of records.  Every record consists
// of a copy of header followed by at most maxChunk-len(header) bytes of
// data, so that no record is longer than maxChunk bytes.
//
// The two-byte big-endian length field at lengthOffset inside the header is
// patched for every record.  If the length field is followed by further
// header bytes, its value counts the bytes from the length field to the end
// of the record, as for structured fields where the length field follows
// the carriage control byte.  If the length field ends the header, its
// value counts the data bytes only, as for the data chunks inside image
// segments.
//
// Nothing is written if data is empty.
func WriteChunks(w io.Writer, data, header []byte, lengthOffset, maxChunk int) error {
	if lengthOffset < 0 || lengthOffset+2 > len(header) {
		return fmt.Errorf("length offset %d out of range for %d-byte header",
			lengthOffset, len(header))
	}
	maxData := maxChunk - len(header)
	if maxData <= 0 {
		return fmt.Errorf("chunk size %d too small for %d-byte header",
			maxChunk, len(header))
	}

	overhead := len(header) - lengthOffset
	if overhead == 2 {
		overhead = 0
	}
	if overhead+maxData > 0xFFFF {
		maxData = 0xFFFF - overhead
	}

	hdr := slices.Clone(header)
	for len(data) > 0 {
		n := min(len(data), maxData)
		binary.BigEndian.PutUint16(hdr[lengthOffset:], uint16(overhead+n))
		if _, err := w.Write(hdr); err != nil {
			return err
		}
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
