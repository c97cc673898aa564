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

package modca

import (
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/afp"
)

// ActiveEnvironmentGroup (BAG/EAG) holds the resource mappings and the
// descriptors of a page or overlay.
//
// The environment group is written before any content of its page, so all
// fonts and overlays must be added before the page is first written.
type ActiveEnvironmentGroup struct {
	named
	leaf

	page *PageDescriptor
	text *PresentationTextDescriptor

	fonts    []*MapCodedFont
	overlays []*MapPageOverlay

	maxFonts    int
	maxOverlays int
	written     bool
}

// SetPageDescriptor sets the page descriptor.
func (g *ActiveEnvironmentGroup) SetPageDescriptor(d *PageDescriptor) {
	g.page = d
}

// PageDescriptor returns the page descriptor, or nil.
func (g *ActiveEnvironmentGroup) PageDescriptor() *PageDescriptor {
	return g.page
}

// SetPresentationTextDescriptor sets the presentation text descriptor.
func (g *ActiveEnvironmentGroup) SetPresentationTextDescriptor(d *PresentationTextDescriptor) {
	g.text = d
}

// MapCodedFonts returns the font map records.
func (g *ActiveEnvironmentGroup) MapCodedFonts() []*MapCodedFont {
	return g.fonts
}

// MapPageOverlays returns the overlay map records.
func (g *ActiveEnvironmentGroup) MapPageOverlays() []*MapPageOverlay {
	return g.overlays
}

// AddFont adds a font mapping.  If the current map record is full, a new
// map record is started.
func (g *ActiveEnvironmentGroup) AddFont(f Font) error {
	if g.written {
		return afp.ErrAlreadyWritten
	}
	if err := afp.CheckRotation(f.Rotation); err != nil {
		return err
	}
	if len(g.fonts) > 0 {
		err := g.fonts[len(g.fonts)-1].Add(f)
		if !errors.Is(err, afp.ErrMaximumSizeExceeded) {
			return err
		}
	}
	m := &MapCodedFont{maxEntries: g.maxFonts, warn: g.warn}
	g.fonts = append(g.fonts, m)
	err := m.Add(f)
	if errors.Is(err, afp.ErrMaximumSizeExceeded) {
		g.warn.Add(afp.Warning{
			Kind: afp.WarnCapacity,
			Msg:  fmt.Sprintf("font %d dropped: %v", f.LocalID, err),
		})
		return nil
	}
	return err
}

// AddOverlay adds a page overlay mapping.  If the current map record is
// full, a new map record is started.
func (g *ActiveEnvironmentGroup) AddOverlay(name string, localID byte) error {
	if g.written {
		return afp.ErrAlreadyWritten
	}
	if len(g.overlays) > 0 {
		err := g.overlays[len(g.overlays)-1].Add(name, localID)
		if !errors.Is(err, afp.ErrMaximumSizeExceeded) {
			return err
		}
	}
	m := &MapPageOverlay{maxEntries: g.maxOverlays, warn: g.warn}
	g.overlays = append(g.overlays, m)
	if err := m.Add(name, localID); err != nil {
		g.warn.Add(afp.Warning{
			Kind: afp.WarnCapacity,
			Msg:  fmt.Sprintf("overlay %q dropped: %v", name, err),
		})
	}
	return nil
}

// WriteToStream implements the [Streamable] interface.  The environment
// group is written only once.
func (g *ActiveEnvironmentGroup) WriteToStream(w io.Writer) error {
	if g.written {
		return nil
	}
	g.written = true

	if err := writeNamed(w, &g.named, afp.BAG); err != nil {
		return err
	}
	for _, m := range g.fonts {
		if m.Len() == 0 {
			continue
		}
		if err := m.WriteToStream(w); err != nil {
			return err
		}
	}
	for _, m := range g.overlays {
		if m.Len() == 0 {
			continue
		}
		if err := m.WriteToStream(w); err != nil {
			return err
		}
	}
	if g.page != nil {
		if err := g.page.WriteToStream(w); err != nil {
			return err
		}
	}
	if g.text != nil {
		if err := g.text.WriteToStream(w); err != nil {
			return err
		}
	}
	return writeNamed(w, &g.named, afp.EAG)
}
