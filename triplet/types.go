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

package triplet

import (
	"encoding/binary"

	"seehuhn.de/go/afp"
)

// FQNType gives the meaning of a fully qualified name.
type FQNType byte

// These are the fully qualified name types.
const (
	FQNReplaceFirstGID              FQNType = 0x01
	FQNFontFamilyName               FQNType = 0x07
	FQNFontTypefaceName             FQNType = 0x08
	FQNMOCARef                      FQNType = 0x09
	FQNAttributeGID                 FQNType = 0x0B
	FQNProcessElementGID            FQNType = 0x0C
	FQNBeginPageGroupReference      FQNType = 0x0D
	FQNMediaTypeReference           FQNType = 0x11
	FQNBeginResourceObjectReference FQNType = 0x84
	FQNCodePageNameReference        FQNType = 0x85
	FQNFontCharacterSetNameRef      FQNType = 0x86
	FQNBeginPageReference           FQNType = 0x87
	FQNBeginMediumMapReference      FQNType = 0x8D
	FQNCodedFontNameReference       FQNType = 0x8E
	FQNBeginDocumentIndexReference  FQNType = 0x98
	FQNBeginOverlayReference        FQNType = 0xB0
	FQNDataObjectInternalResource   FQNType = 0xBE
	FQNIndexElementGID              FQNType = 0xCA
	FQNOtherObjectDataReference     FQNType = 0xCE
	FQNDataObjectExternalResource   FQNType = 0xDE
)

// FQNFormat gives the encoding of a fully qualified name.
type FQNFormat byte

// These are the fully qualified name formats.
const (
	FQNCharacterString FQNFormat = 0x00
	FQNOID             FQNFormat = 0x10
	FQNURL             FQNFormat = 0x20
)

// FullyQualifiedName returns a Fully Qualified Name triplet (X'02') with a
// pre-encoded name.
func FullyQualifiedName(typ FQNType, format FQNFormat, name []byte) Triplet {
	data := make([]byte, 0, 2+len(name))
	data = append(data, byte(typ), byte(format))
	data = append(data, name...)
	return newTriplet(FullyQualifiedNameID, data)
}

// FullyQualifiedNameString returns a Fully Qualified Name triplet (X'02')
// holding a character string name, encoded in EBCDIC.  Names of references
// to other objects are padded or truncated to eight bytes.
func FullyQualifiedNameString(typ FQNType, name string) (Triplet, []afp.Warning) {
	var enc []byte
	var warnings []afp.Warning
	switch typ {
	case FQNBeginResourceObjectReference, FQNCodePageNameReference,
		FQNFontCharacterSetNameRef, FQNCodedFontNameReference,
		FQNBeginOverlayReference, FQNBeginPageReference,
		FQNBeginMediumMapReference:
		enc, warnings = afp.EncodeName(name, afp.NameLength)
	default:
		enc, warnings = afp.EncodeText(name)
	}
	return FullyQualifiedName(typ, FQNCharacterString, enc), warnings
}

// MappingOption describes how a data object is mapped into its object area.
type MappingOption byte

// These are the supported mapping options.
const (
	MapPosition        MappingOption = 0x00
	MapPositionAndTrim MappingOption = 0x10
	MapScaleToFit      MappingOption = 0x20
	MapCenterAndTrim   MappingOption = 0x30
	MapScaleToFill     MappingOption = 0x60
)

// Mapping returns a Mapping Option triplet (X'04').
func Mapping(opt MappingOption) Triplet {
	return newTriplet(MappingOptionID, []byte{byte(opt)})
}

// ObjectClass is the object class in an Object Classification triplet.
type ObjectClass byte

// These are the object classes.
const (
	ClassTimeInvariantPaginated ObjectClass = 0x01
	ClassTimeVariant            ObjectClass = 0x10
	ClassExecutable             ObjectClass = 0x20
	ClassSetupFile              ObjectClass = 0x30
	ClassSecondaryResource      ObjectClass = 0x40
	ClassDataObjectFont         ObjectClass = 0x41
)

// Classification describes the contents of an Object Classification
// triplet.
type Classification struct {
	Class ObjectClass

	// RegisteredID is the BER encoding of the object identifier which was
	// registered for the object type.  At most 16 bytes are used.
	RegisteredID []byte

	DataInContainer bool
	ContainerHasOEG bool
	DataInOCD       bool

	TypeName string // at most 32 characters
	Level    string // at most 8 characters
	Company  string // at most 32 characters
}

// ObjectClassificationLength is the encoded length of an Object
// Classification triplet.
const ObjectClassificationLength = 96

// ObjectClassification returns an Object Classification triplet (X'10').
func ObjectClassification(c *Classification) (Triplet, []afp.Warning) {
	var warnings []afp.Warning
	data := make([]byte, ObjectClassificationLength-2)
	data[1] = byte(c.Class)

	var flags byte
	flags |= structFlag(c.DataInContainer) << 6
	flags |= structFlag(c.ContainerHasOEG) << 4
	flags |= structFlag(c.DataInOCD) << 2
	data[4] = flags

	copy(data[6:22], c.RegisteredID)

	fixed := func(s string, n int) []byte {
		if s == "" {
			return make([]byte, n)
		}
		enc, w := afp.EncodeName(s, n)
		warnings = append(warnings, w...)
		return enc
	}
	copy(data[22:54], fixed(c.TypeName, 32))
	copy(data[54:62], fixed(c.Level, 8))
	copy(data[62:94], fixed(c.Company, 32))

	return newTriplet(ObjectClassificationID, data), warnings
}

func structFlag(set bool) byte {
	if set {
		return 3
	}
	return 1
}

// ResourceType is the type of a resource in a Resource Object Type triplet.
type ResourceType byte

// These are the resource object types.
const (
	ResourceGraphics         ResourceType = 0x03
	ResourceBarcode          ResourceType = 0x05
	ResourceImage            ResourceType = 0x06
	ResourceFontCharacterSet ResourceType = 0x40
	ResourceCodePage         ResourceType = 0x41
	ResourceCodedFont        ResourceType = 0x42
	ResourceObjectContainer  ResourceType = 0x92
	ResourceDocument         ResourceType = 0xA8
	ResourcePageSegment      ResourceType = 0xFB
	ResourceOverlay          ResourceType = 0xFC
	ResourcePageDef          ResourceType = 0xFD
	ResourceFormDef          ResourceType = 0xFE
)

// ResourceObjectType returns a Resource Object Type triplet (X'21').
func ResourceObjectType(typ ResourceType) Triplet {
	data := make([]byte, 8)
	data[0] = byte(typ)
	return newTriplet(ResourceObjectTypeID, data)
}

// LocalType is the resource type in a Resource Local Identifier triplet.
type LocalType byte

// These are the local resource types.
const (
	LocalUsageDependent      LocalType = 0x00
	LocalPageOverlay         LocalType = 0x02
	LocalCodedFont           LocalType = 0x05
	LocalColorAttributeTable LocalType = 0x07
)

// ResourceLocalIdentifier returns a Resource Local Identifier triplet
// (X'24').
func ResourceLocalIdentifier(typ LocalType, id byte) Triplet {
	return newTriplet(ResourceLocalIdentifierID, []byte{byte(typ), id})
}

// ResourceSectionNumber returns a Resource Section Number triplet (X'25').
func ResourceSectionNumber(n byte) Triplet {
	return newTriplet(ResourceSectionNumberID, []byte{n})
}

// CharacterRotation returns a Character Rotation triplet (X'26').
func CharacterRotation(rot int) Triplet {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, afp.Orientation(rot))
	return newTriplet(CharacterRotationID, data)
}

// AttributeValue returns an Attribute Value triplet (X'36').
func AttributeValue(value string) (Triplet, []afp.Warning) {
	enc, warnings := afp.EncodeText(value)
	if len(enc) > MaxDataLength-2 {
		enc = enc[:MaxDataLength-2]
	}
	data := make([]byte, 2, 2+len(enc))
	data = append(data, enc...)
	return newTriplet(AttributeValueID, data), warnings
}

// DescriptorPosition returns a Descriptor Position triplet (X'43').
func DescriptorPosition(id byte) Triplet {
	return newTriplet(DescriptorPositionID, []byte{id})
}

// UnitBaseTenInches is the unit base used for all measurement units
// written by this library.  Resolutions are given in units per ten inches.
const UnitBaseTenInches = 0x00

// MeasurementUnits returns a Measurement Units triplet (X'4B') for the
// given resolutions in units per inch.
func MeasurementUnits(xRes, yRes int) Triplet {
	data := make([]byte, 6)
	data[0] = UnitBaseTenInches
	data[1] = UnitBaseTenInches
	binary.BigEndian.PutUint16(data[2:], uint16(xRes*10))
	binary.BigEndian.PutUint16(data[4:], uint16(yRes*10))
	return newTriplet(MeasurementUnitsID, data)
}

// ObjectAreaSize returns an Object Area Size triplet (X'4C').
func ObjectAreaSize(width, height int) Triplet {
	data := make([]byte, 7)
	data[0] = 0x02 // size type: object area size
	afp.PutUint24(data[1:], width)
	afp.PutUint24(data[4:], height)
	return newTriplet(ObjectAreaSizeID, data)
}

// ObjectByteExtent returns an Object Byte Extent triplet (X'57').
func ObjectByteExtent(n int) Triplet {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(n))
	return newTriplet(ObjectByteExtentID, data)
}

// FontDescriptorSpecification returns a Font Descriptor Specification
// triplet (X'1F').  Height and width are given in 1440ths of an inch.
func FontDescriptorSpecification(weightClass, widthClass byte, height, width int) Triplet {
	data := make([]byte, 18)
	data[0] = weightClass
	data[1] = widthClass
	binary.BigEndian.PutUint16(data[2:], uint16(height))
	binary.BigEndian.PutUint16(data[4:], uint16(width))
	return newTriplet(FontDescriptorSpecificationID, data)
}

// FontHorizontalScaleFactor returns a Font Horizontal Scale Factor triplet
// (X'5D').
func FontHorizontalScaleFactor(scale int) Triplet {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, uint16(scale))
	return newTriplet(FontHorizontalScaleFactorID, data)
}

// Comment returns a Comment triplet (X'65').  Overlong comments are
// truncated.
func Comment(text string) (Triplet, []afp.Warning) {
	enc, warnings := afp.EncodeText(text)
	return newTriplet(CommentID, enc), warnings
}
