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
	"errors"
	"strconv"
)

var (
	// ErrMaximumSizeExceeded indicates that a record cannot hold any more
	// entries.  Callers which can open a new record catch this error.
	ErrMaximumSizeExceeded = errors.New("maximum size exceeded")

	// ErrInvalidRotation is returned for rotations other than 0, 90, 180
	// and 270 degrees.
	ErrInvalidRotation = errors.New("rotation must be 0, 90, 180 or 270")

	// ErrComplete is returned when content is added to an object which has
	// already been marked as complete.
	ErrComplete = errors.New("object is already complete")

	// ErrAlreadyWritten is returned when an object is modified after it has
	// been written to the output stream.
	ErrAlreadyWritten = errors.New("object has already been written")
)

// MalformedFileError indicates that an AFP file could not be parsed.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid AFP file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// CheckRotation returns [ErrInvalidRotation] unless rot is one of the four
// rotations supported by the architecture.
func CheckRotation(rot int) error {
	switch rot {
	case 0, 90, 180, 270:
		return nil
	default:
		return ErrInvalidRotation
	}
}
