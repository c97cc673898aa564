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

// Package goca encodes graphics data in the Graphics Object Content
// Architecture (GOCA).
//
// Drawing orders are collected into segments, and segments are collected
// into graphics data records (GAD structured fields) of bounded size.  A
// [Drawing] keeps track of the current graphics state and starts new records
// and chained segments as needed.
package goca

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
)

// An Order is a single encoded GOCA drawing order.
type Order []byte

// Code returns the order code.
func (o Order) Code() byte {
	return o[0]
}

func (o Order) String() string {
	return fmt.Sprintf("order 0x%02X (%d bytes)", o.Code(), len(o))
}

// MaxOrderLength is the length of the longest possible drawing order: an
// order code, a length byte and 255 bytes of parameters.
const MaxOrderLength = 2 + maxParams

const maxParams = 255

// Order codes.
const (
	CodeComment                byte = 0x01
	CodeSetColor               byte = 0x0A
	CodeSetFractionalLineWidth byte = 0x11
	CodeSetLineType            byte = 0x18
	CodeSetLineWidth           byte = 0x19
	CodeSetCurrentPosition     byte = 0x21
	CodeSetArcParameters       byte = 0x22
	CodeSetPatternSymbol       byte = 0x28
	CodeSetCharacterSet        byte = 0x38
	CodeEndProlog              byte = 0x3E
	CodeEndArea                byte = 0x60
	CodeBeginArea              byte = 0x68
	CodeLineAtCurrent          byte = 0x81
	CodeStringAtCurrent        byte = 0x83
	CodeFilletAtCurrent        byte = 0x85
	CodeImageData              byte = 0x92
	CodeEndImage               byte = 0x93
	CodeSetProcessColor        byte = 0xB2
	CodeBox                    byte = 0xC0
	CodeLine                   byte = 0xC1
	CodeString                 byte = 0xC3
	CodeFillet                 byte = 0xC5
	CodeFullArc                byte = 0xC7
	CodeBeginImage             byte = 0xD1
)

// Point is a position in graphics presentation space coordinates.
type Point struct {
	X, Y int
}

// maxPoints is the number of points which fit into a single line order.
const maxPoints = maxParams / 4

func long(code byte, params ...byte) Order {
	o := make(Order, 0, 2+len(params))
	o = append(o, code, byte(len(params)))
	return append(o, params...)
}

func appendCoord(buf []byte, v int) []byte {
	return binary.BigEndian.AppendUint16(buf, uint16(int16(clampCoord(v))))
}

func clampCoord(v int) int {
	return max(math.MinInt16, min(math.MaxInt16, v))
}

func appendPoints(buf []byte, points []Point) []byte {
	for _, p := range points {
		buf = appendCoord(buf, p.X)
		buf = appendCoord(buf, p.Y)
	}
	return buf
}

// ColorSpace identifies the colour space of a process colour.
type ColorSpace byte

// These are the supported colour spaces.
const (
	ColorSpaceRGB  ColorSpace = 0x01
	ColorSpaceCMYK ColorSpace = 0x04
)

// SetProcessColor returns a Set Process Color order.  CMYK colours are
// encoded in the CMYK colour space, all other colours in RGB.
func SetProcessColor(c color.Color) Order {
	var space ColorSpace
	var sizes [4]byte
	var values []byte
	switch c := c.(type) {
	case color.CMYK:
		space = ColorSpaceCMYK
		sizes = [4]byte{8, 8, 8, 8}
		values = []byte{c.C, c.M, c.Y, c.K}
	default:
		r, g, b, _ := c.RGBA()
		space = ColorSpaceRGB
		sizes = [4]byte{8, 8, 8, 0}
		values = []byte{byte(r >> 8), byte(g >> 8), byte(b >> 8)}
	}

	params := make([]byte, 10, 10+len(values))
	params[1] = byte(space)
	copy(params[6:], sizes[:])
	params = append(params, values...)
	return long(CodeSetProcessColor, params...)
}

// SetLineWidth returns a Set Line Width order.  The line width is given as
// a multiple of the standard line width.
func SetLineWidth(multiplier int) Order {
	return Order{CodeSetLineWidth, byte(max(0, min(255, multiplier)))}
}

// SetFractionalLineWidth returns a Set Fractional Line Width order.
func SetFractionalLineWidth(multiplier float64) Order {
	multiplier = max(0, min(255+255.0/256, multiplier))
	integral := math.Floor(multiplier)
	fraction := math.Round((multiplier - integral) * 256)
	if fraction >= 256 {
		integral++
		fraction = 0
	}
	return long(CodeSetFractionalLineWidth, byte(integral), byte(fraction))
}

// LineType selects the pattern used to stroke lines.
type LineType byte

// These are the GOCA line types.
const (
	LineTypeDefault       LineType = 0x00
	LineTypeDotted        LineType = 0x01
	LineTypeShortDashed   LineType = 0x02
	LineTypeDashDot       LineType = 0x03
	LineTypeDoubleDotted  LineType = 0x04
	LineTypeLongDashed    LineType = 0x05
	LineTypeDashDoubleDot LineType = 0x06
	LineTypeSolid         LineType = 0x07
	LineTypeInvisible     LineType = 0x08
)

// SetLineType returns a Set Line Type order.
func SetLineType(t LineType) Order {
	return Order{CodeSetLineType, byte(t)}
}

// PatternSymbol selects the pattern used to fill areas.
type PatternSymbol byte

// These are the GOCA pattern symbols.
const (
	PatternDefault       PatternSymbol = 0x00
	PatternDotted1       PatternSymbol = 0x01
	PatternDotted8       PatternSymbol = 0x08
	PatternVerticalLines PatternSymbol = 0x09
	PatternHorizontal    PatternSymbol = 0x0A
	PatternLeftDiagonal  PatternSymbol = 0x0B
	PatternRightDiagonal PatternSymbol = 0x0D
	PatternNoFill        PatternSymbol = 0x0F
	PatternSolidFill     PatternSymbol = 0x10
	PatternBlank         PatternSymbol = 0x40
)

// SetPatternSymbol returns a Set Pattern Symbol order.
func SetPatternSymbol(p PatternSymbol) Order {
	return Order{CodeSetPatternSymbol, byte(p)}
}

// SetCharacterSet returns a Set Character Set order, which selects the
// font with the given local identifier.
func SetCharacterSet(id byte) Order {
	return Order{CodeSetCharacterSet, id}
}

// SetCurrentPosition returns a Set Current Position order.
func SetCurrentPosition(p Point) Order {
	return long(CodeSetCurrentPosition, appendPoints(nil, []Point{p})...)
}

// SetArcParameters returns a Set Arc Parameters order.  The parameters
// p, q, r and s define the transform from the unit circle to an ellipse.
func SetArcParameters(p, q, r, s int) Order {
	var params []byte
	params = appendCoord(params, p)
	params = appendCoord(params, q)
	params = appendCoord(params, r)
	params = appendCoord(params, s)
	return long(CodeSetArcParameters, params...)
}

// Line returns a line order through the given points.  If atCurrent is
// true, the line starts at the current position.  At most 63 points fit
// into one order; extra points are ignored.
func Line(points []Point, atCurrent bool) Order {
	if len(points) > maxPoints {
		points = points[:maxPoints]
	}
	code := CodeLine
	if atCurrent {
		code = CodeLineAtCurrent
	}
	return long(code, appendPoints(nil, points)...)
}

// Fillet returns a fillet order, a smooth curve controlled by the given
// points.
func Fillet(points []Point, atCurrent bool) Order {
	if len(points) > maxPoints {
		points = points[:maxPoints]
	}
	code := CodeFillet
	if atCurrent {
		code = CodeFilletAtCurrent
	}
	return long(code, appendPoints(nil, points)...)
}

// Box returns a box order for the rectangle with corners p0 and p1.
func Box(p0, p1 Point) Order {
	params := []byte{0x20, 0x00}
	params = appendPoints(params, []Point{p0, p1})
	return long(CodeBox, params...)
}

// FullArc returns a full arc order centred at p.  The arc parameters are
// scaled by mh + mhr/256.
func FullArc(p Point, mh, mhr int) Order {
	params := appendPoints(nil, []Point{p})
	params = append(params, byte(mh), byte(mhr))
	return long(CodeFullArc, params...)
}

// maxStringLength is the number of EBCDIC characters which fit into a
// character string order with a position.
const maxStringLength = maxParams - 4

// CharacterString returns a character string order with EBCDIC text.  If
// atCurrent is true, the text starts at the current position and p is
// ignored.
func CharacterString(p Point, text []byte, atCurrent bool) Order {
	if atCurrent {
		if len(text) > maxParams {
			text = text[:maxParams]
		}
		return long(CodeStringAtCurrent, text...)
	}
	if len(text) > maxStringLength {
		text = text[:maxStringLength]
	}
	params := appendPoints(nil, []Point{p})
	return long(CodeString, append(params, text...)...)
}

// BeginArea returns a Begin Area order.  If drawBoundary is set, the
// boundary of the area is stroked in addition to filling it.
func BeginArea(drawBoundary bool) Order {
	flags := byte(0x80)
	if drawBoundary {
		flags |= 0x40
	}
	return Order{CodeBeginArea, flags}
}

// EndArea returns an End Area order.
func EndArea() Order {
	return long(CodeEndArea)
}

// BeginImage returns a Begin Image order for an uncompressed bilevel image
// of the given size, placed at p.
func BeginImage(p Point, width, height int) Order {
	params := appendPoints(nil, []Point{p})
	params = append(params, 0x00, 0x00)
	params = binary.BigEndian.AppendUint16(params, uint16(width))
	params = binary.BigEndian.AppendUint16(params, uint16(height))
	return long(CodeBeginImage, params...)
}

// ImageData returns an Image Data order holding one row of image data.
func ImageData(data []byte) Order {
	if len(data) > maxParams {
		data = data[:maxParams]
	}
	return long(CodeImageData, data...)
}

// EndImage returns an End Image order.
func EndImage() Order {
	return long(CodeEndImage)
}

// Comment returns a comment order.
func Comment(data []byte) Order {
	if len(data) > maxParams {
		data = data[:maxParams]
	}
	return long(CodeComment, data...)
}

// EndProlog returns an End Prolog order.
func EndProlog() Order {
	return long(CodeEndProlog)
}
