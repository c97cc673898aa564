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

// Package afp provides the low-level building blocks for writing files in
// IBM's Advanced Function Presentation (AFP) format.
//
// An AFP print file is a sequence of structured fields.  Every structured
// field starts with the carriage control byte 0x5A, followed by a two-byte
// big-endian length, a three-byte identifier, a flag byte and two reserved
// bytes:
//
//	5A LLLL D3TTCC FF 0000 <data>
//
// The length counts all bytes of the field except for the carriage control
// byte.  Most begin and end fields carry an eight-byte name, encoded in
// EBCDIC, directly after the introducer.
//
// This package implements the introducer, the fixed-width name encoding, a
// writer which splits large payloads into several structured fields, and a
// [Reader] which can be used to inspect the structured fields of a file.
// The object model of the MO:DCA architecture is implemented in the
// subpackage modca; graphics and image data are encoded by the subpackages
// goca and ioca.
package afp
