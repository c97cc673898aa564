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
)

// Carriage is the carriage control byte which starts every structured field.
const Carriage = 0x5A

// Class is the class code shared by all MO:DCA structured fields.
const Class = 0xD3

const (
	// HeaderLength is the length of a structured field introducer,
	// including the carriage control byte.
	HeaderLength = 9

	// NameLength is the length of MO:DCA object names.
	NameLength = 8

	// NamedHeaderLength is the length of a structured field introducer
	// followed by an object name.  Begin and end fields without triplets
	// have exactly this length.
	NamedHeaderLength = HeaderLength + NameLength

	// MaxFieldLength is the largest value allowed in the length field of a
	// structured field.
	MaxFieldLength = 32767
)

// Type is the second byte of a structured field identifier.
type Type byte

// These are the structured field types used by this library.
const (
	TypeAttribute  Type = 0xA0
	TypeCopyCount  Type = 0xA2
	TypeDescriptor Type = 0xA6
	TypeControl    Type = 0xA7
	TypeBegin      Type = 0xA8
	TypeEnd        Type = 0xA9
	TypeMap        Type = 0xAB
	TypePosition   Type = 0xAC
	TypeProcess    Type = 0xAD
	TypeInclude    Type = 0xAF
	TypeTable      Type = 0xB0
	TypeMigration  Type = 0xB1
	TypeVariable   Type = 0xB2
	TypeLink       Type = 0xB4
	TypeData       Type = 0xEE
)

// Category is the third byte of a structured field identifier.
type Category byte

// These are the structured field categories used by this library.
const (
	CategoryPageSegment              Category = 0x5F
	CategoryObjectArea               Category = 0x6B
	CategoryColorAttributeTable      Category = 0x77
	CategoryIMImage                  Category = 0x7B
	CategoryMedium                   Category = 0x88
	CategoryCodedFont                Category = 0x8A
	CategoryLogicalElement           Category = 0x90
	CategoryObjectContainer          Category = 0x92
	CategoryPresentationText         Category = 0x9B
	CategoryIndex                    Category = 0xA7
	CategoryDocument                 Category = 0xA8
	CategoryPageGroup                Category = 0xAD
	CategoryPage                     Category = 0xAF
	CategoryGraphics                 Category = 0xBB
	CategoryDataResource             Category = 0xC3
	CategoryDocumentEnvironmentGroup Category = 0xC4
	CategoryResourceGroup            Category = 0xC6
	CategoryObjectEnvironmentGroup   Category = 0xC7
	CategoryActiveEnvironmentGroup   Category = 0xC9
	CategoryMediumMap                Category = 0xCC
	CategoryFormMap                  Category = 0xCD
	CategoryNameResource             Category = 0xCE
	CategoryPageOverlay              Category = 0xD8
	CategoryResourceEnvironmentGroup Category = 0xD9
	CategoryOverlay                  Category = 0xDF
	CategoryDataSuppression          Category = 0xEA
	CategoryBarcode                  Category = 0xEB
	CategoryNoOperation              Category = 0xEE
	CategoryImage                    Category = 0xFB
)

// SFID is a three-byte structured field identifier.
type SFID uint32

// NewSFID returns the identifier of the MO:DCA structured field with the
// given type and category.
func NewSFID(t Type, c Category) SFID {
	return SFID(Class)<<16 | SFID(t)<<8 | SFID(c)
}

// Type returns the type byte of the identifier.
func (id SFID) Type() Type {
	return Type(id >> 8)
}

// Category returns the category byte of the identifier.
func (id SFID) Category() Category {
	return Category(id)
}

// Identifiers of the structured fields written by this library.
var (
	BAG = NewSFID(TypeBegin, CategoryActiveEnvironmentGroup)
	BDT = NewSFID(TypeBegin, CategoryDocument)
	BGR = NewSFID(TypeBegin, CategoryGraphics)
	BIM = NewSFID(TypeBegin, CategoryImage)
	BMO = NewSFID(TypeBegin, CategoryOverlay)
	BNG = NewSFID(TypeBegin, CategoryPageGroup)
	BOG = NewSFID(TypeBegin, CategoryObjectEnvironmentGroup)
	BPG = NewSFID(TypeBegin, CategoryPage)
	BRG = NewSFID(TypeBegin, CategoryResourceGroup)
	BRS = NewSFID(TypeBegin, CategoryNameResource)
	EAG = NewSFID(TypeEnd, CategoryActiveEnvironmentGroup)
	EDT = NewSFID(TypeEnd, CategoryDocument)
	EGR = NewSFID(TypeEnd, CategoryGraphics)
	EIM = NewSFID(TypeEnd, CategoryImage)
	EMO = NewSFID(TypeEnd, CategoryOverlay)
	ENG = NewSFID(TypeEnd, CategoryPageGroup)
	EOG = NewSFID(TypeEnd, CategoryObjectEnvironmentGroup)
	EPG = NewSFID(TypeEnd, CategoryPage)
	ERG = NewSFID(TypeEnd, CategoryResourceGroup)
	ERS = NewSFID(TypeEnd, CategoryNameResource)
	GAD = NewSFID(TypeData, CategoryGraphics)
	GDD = NewSFID(TypeDescriptor, CategoryGraphics)
	IDD = NewSFID(TypeDescriptor, CategoryImage)
	IMM = NewSFID(TypeMap, CategoryMediumMap)
	IOB = NewSFID(TypeInclude, CategoryDataResource)
	IPD = NewSFID(TypeData, CategoryImage)
	IPO = NewSFID(TypeInclude, CategoryPageOverlay)
	IPS = NewSFID(TypeInclude, CategoryPageSegment)
	MCF = NewSFID(TypeMap, CategoryCodedFont)
	MGO = NewSFID(TypeMap, CategoryGraphics)
	MIO = NewSFID(TypeMap, CategoryImage)
	MPO = NewSFID(TypeMap, CategoryPageOverlay)
	NOP = NewSFID(TypeData, CategoryNoOperation)
	OBD = NewSFID(TypeDescriptor, CategoryObjectArea)
	OBP = NewSFID(TypePosition, CategoryObjectArea)
	PGD = NewSFID(TypeDescriptor, CategoryPage)
	PTD = NewSFID(TypeMigration, CategoryPresentationText)
	TLE = NewSFID(TypeAttribute, CategoryLogicalElement)
)

var sfNames = map[SFID]string{
	BAG: "BAG", BDT: "BDT", BGR: "BGR", BIM: "BIM", BMO: "BMO",
	BNG: "BNG", BOG: "BOG", BPG: "BPG", BRG: "BRG", BRS: "BRS",
	EAG: "EAG", EDT: "EDT", EGR: "EGR", EIM: "EIM", EMO: "EMO",
	ENG: "ENG", EOG: "EOG", EPG: "EPG", ERG: "ERG", ERS: "ERS",
	GAD: "GAD", GDD: "GDD", IDD: "IDD", IMM: "IMM", IOB: "IOB",
	IPD: "IPD", IPO: "IPO", IPS: "IPS", MCF: "MCF", MGO: "MGO",
	MIO: "MIO", MPO: "MPO", NOP: "NOP", OBD: "OBD", OBP: "OBP",
	PGD: "PGD", PTD: "PTD", TLE: "TLE",
}

// String returns the three-letter mnemonic of the structured field, or the
// hexadecimal identifier for unknown fields.
func (id SFID) String() string {
	if name, ok := sfNames[id]; ok {
		return name
	}
	return fmt.Sprintf("%06X", uint32(id))
}

// IsNamed reports whether structured fields with this identifier start with
// an eight-byte name.
func (id SFID) IsNamed() bool {
	switch id.Type() {
	case TypeBegin, TypeEnd:
		return true
	}
	switch id {
	case IOB, IPO, IPS, IMM:
		return true
	}
	return false
}

// A Record holds the encoding of a single structured field, starting with
// the carriage control byte.
type Record []byte

// NewRecord allocates a structured field of n bytes, including the
// introducer, and fills in the introducer.  The length field is set to
// cover the whole record.
func NewRecord(id SFID, n int) Record {
	if n < HeaderLength {
		n = HeaderLength
	}
	r := make(Record, n)
	r[0] = Carriage
	r[3] = byte(id >> 16)
	r[4] = byte(id >> 8)
	r[5] = byte(id)
	r.SetLength(0)
	return r
}

// SetLength patches the length field.  The argument gives the number of
// bytes which will follow the record in the same structured field, for
// example triplets which are written separately.
func (r Record) SetLength(extra int) {
	binary.BigEndian.PutUint16(r[1:], uint16(len(r)-1+extra))
}

// Length returns the value of the length field.
func (r Record) Length() int {
	return int(binary.BigEndian.Uint16(r[1:]))
}

// SetName copies an encoded name into the record, directly after the
// introducer.
func (r Record) SetName(name []byte) {
	copy(r[HeaderLength:HeaderLength+NameLength], name)
}

// PutUint24 stores the lowest three bytes of v at the start of b,
// most significant byte first.
func PutUint24(b []byte, v int) {
	_ = b[2]
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// Uint24 decodes a three-byte big-endian unsigned integer.
func Uint24(b []byte) int {
	_ = b[2]
	return int(b[0])<<16 | int(b[1])<<8 | int(b[2])
}

// Orientation encodes a rotation in degrees as a two-byte MO:DCA
// orientation value.  The most significant nine bits give whole degrees,
// the remaining bits give minutes.
func Orientation(rot int) uint16 {
	rot %= 360
	if rot < 0 {
		rot += 360
	}
	return uint16(rot) << 7
}
