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

package goca

import (
	"bytes"
	"image/color"
	"math"
)

// State holds the graphics parameters which have been set by earlier
// drawing orders.
type State struct {
	Color               color.Color
	LineWidth           int
	FractionalLineWidth float64
	LineType            LineType
	PatternSymbol       PatternSymbol
	CharacterSet        byte

	// Set records which of the fields above hold a known value.
	Set StateBits

	colorOrder Order
}

// StateBits is a bit mask for the fields of the State struct.
type StateBits uint8

// Possible values for StateBits.
const (
	StateColor StateBits = 1 << iota
	StateLineWidth
	StateFractionalLineWidth
	StateLineType
	StatePatternSymbol
	StateCharacterSet

	AllStateBits = StateColor | StateLineWidth | StateFractionalLineWidth |
		StateLineType | StatePatternSymbol | StateCharacterSet
)

func (s *State) isSet(bits StateBits) bool {
	return s.Set&bits == bits
}

// SetColor sets the colour used for all subsequent drawing.
func (d *Drawing) SetColor(c color.Color) {
	o := SetProcessColor(c)
	if d.isSet(StateColor) && bytes.Equal(o, d.colorOrder) {
		return
	}
	d.Add(o)
	d.Color = c
	d.colorOrder = o
	d.Set |= StateColor
}

// SetLineWidth sets the line width as an integer multiple of the standard
// line width.
func (d *Drawing) SetLineWidth(multiplier int) {
	if d.isSet(StateLineWidth) && d.LineWidth == multiplier {
		return
	}
	d.Add(SetLineWidth(multiplier))
	d.LineWidth = multiplier
	d.Set |= StateLineWidth
	d.Set &^= StateFractionalLineWidth
}

// SetFractionalLineWidth sets the line width as a fractional multiple of
// the standard line width.
func (d *Drawing) SetFractionalLineWidth(multiplier float64) {
	if d.isSet(StateFractionalLineWidth) &&
		math.Abs(d.FractionalLineWidth-multiplier) < 1.0/512 {
		return
	}
	d.Add(SetFractionalLineWidth(multiplier))
	d.FractionalLineWidth = multiplier
	d.Set |= StateFractionalLineWidth
	d.Set &^= StateLineWidth
}

// SetLineType sets the line type.
func (d *Drawing) SetLineType(t LineType) {
	if d.isSet(StateLineType) && d.LineType == t {
		return
	}
	d.Add(SetLineType(t))
	d.LineType = t
	d.Set |= StateLineType
}

// SetPatternSymbol sets the fill pattern for areas.
func (d *Drawing) SetPatternSymbol(p PatternSymbol) {
	if d.isSet(StatePatternSymbol) && d.PatternSymbol == p {
		return
	}
	d.Add(SetPatternSymbol(p))
	d.PatternSymbol = p
	d.Set |= StatePatternSymbol
}

// SetCharacterSet selects the font for subsequent text.  The order is
// always emitted, since every text run must be preceded by an explicit
// character set selection.
func (d *Drawing) SetCharacterSet(id byte) {
	d.Add(SetCharacterSet(id))
	d.CharacterSet = id
	d.Set |= StateCharacterSet
}
