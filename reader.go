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
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Field is a structured field read from an AFP file.
type Field struct {
	// Pos is the file offset of the carriage control byte.
	Pos int64

	ID    SFID
	Flags byte

	// Data holds the bytes following the introducer.  If the extension
	// flag is set, the extension is not included.
	Data []byte
}

// Flag bits in the structured field introducer.
const (
	FlagExtension    = 0x80
	FlagSegmented    = 0x20
	FlagPaddingExist = 0x08
)

// Name returns the object name for named structured fields, and the empty
// string otherwise.
func (f *Field) Name() string {
	if !f.ID.IsNamed() || len(f.Data) < NameLength {
		return ""
	}
	return DecodeName(f.Data[:NameLength])
}

func (f *Field) String() string {
	name := f.Name()
	if name != "" {
		return fmt.Sprintf("%08x %s %q, %d bytes", f.Pos, f.ID, name, len(f.Data))
	}
	return fmt.Sprintf("%08x %s, %d bytes", f.Pos, f.ID, len(f.Data))
}

// Reader reads the structured fields of an AFP file in order.
type Reader struct {
	r   *bufio.Reader
	pos int64
}

// NewReader returns a Reader which reads structured fields from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next structured field.  At the end of the input, Next
// returns [io.EOF].
func (r *Reader) Next() (*Field, error) {
	pos := r.pos

	var hdr [HeaderLength]byte
	n, err := io.ReadFull(r.r, hdr[:])
	r.pos += int64(n)
	if err == io.EOF {
		return nil, io.EOF
	} else if err == io.ErrUnexpectedEOF {
		return nil, &MalformedFileError{Pos: pos, Err: errTruncated}
	} else if err != nil {
		return nil, err
	}
	if hdr[0] != Carriage {
		return nil, &MalformedFileError{
			Pos: pos,
			Err: fmt.Errorf("expected carriage control 0x5A, got 0x%02X", hdr[0]),
		}
	}
	length := int(binary.BigEndian.Uint16(hdr[1:]))
	if length < HeaderLength-1 {
		return nil, &MalformedFileError{
			Pos: pos,
			Err: fmt.Errorf("invalid structured field length %d", length),
		}
	}

	data := make([]byte, length-(HeaderLength-1))
	n, err = io.ReadFull(r.r, data)
	r.pos += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &MalformedFileError{Pos: pos, Err: errTruncated}
	} else if err != nil {
		return nil, err
	}

	f := &Field{
		Pos:   pos,
		ID:    SFID(Uint24(hdr[3:6])),
		Flags: hdr[6],
		Data:  data,
	}
	if f.Flags&FlagExtension != 0 && len(f.Data) > 0 {
		extLen := int(f.Data[0])
		if extLen > len(f.Data) {
			return nil, &MalformedFileError{Pos: pos, Err: errors.New("invalid extension length")}
		}
		f.Data = f.Data[extLen:]
	}
	return f, nil
}

// ReadAll reads all structured fields from r.
func ReadAll(r io.Reader) ([]*Field, error) {
	rd := NewReader(r)
	var res []*Field
	for {
		f, err := rd.Next()
		if err == io.EOF {
			return res, nil
		} else if err != nil {
			return res, err
		}
		res = append(res, f)
	}
}

var errTruncated = errors.New("truncated structured field")
