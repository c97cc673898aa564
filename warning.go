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
	"fmt"
	"log"
)

// WarningKind classifies a [Warning].
type WarningKind int

// These are the possible warning kinds.
const (
	// WarnNameTruncated is reported when an object name is longer than its
	// fixed-width field.  Only the trailing characters are kept.
	WarnNameTruncated WarningKind = iota + 1

	// WarnEncoding is reported when a character has no EBCDIC
	// representation and was substituted.
	WarnEncoding

	// WarnCapacity is reported when a new map record could not hold an
	// entry either.  The entry is dropped.
	WarnCapacity

	// WarnTruncated is reported when data had to be shortened to fit into
	// its record.
	WarnTruncated
)

func (k WarningKind) String() string {
	switch k {
	case WarnNameTruncated:
		return "name truncated"
	case WarnEncoding:
		return "encoding"
	case WarnCapacity:
		return "capacity"
	case WarnTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning describes a problem which was recovered from by substituting a
// best-effort value.  Warnings never abort the output.
type Warning struct {
	Kind WarningKind
	Msg  string
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Msg
}

// Warnings collects the warnings produced while building and writing a
// document.  A nil *Warnings discards everything.
type Warnings struct {
	List []Warning

	// If Log is not nil, every warning is also printed to this logger.
	Log *log.Logger
}

// Add records the given warnings.
func (ws *Warnings) Add(w ...Warning) {
	if ws == nil {
		return
	}
	ws.List = append(ws.List, w...)
	if ws.Log == nil {
		return
	}
	for _, wi := range w {
		if wi.Kind == WarnCapacity {
			ws.Log.Print("afp: error: ", wi)
		} else {
			ws.Log.Print("afp: warning: ", wi)
		}
	}
}

// Len returns the number of warnings recorded so far.
func (ws *Warnings) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.List)
}
