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
	"seehuhn.de/go/afp"
)

// pageBase is the common part of pages and overlays.
type pageBase struct {
	container

	factory *Factory
	aeg     *ActiveEnvironmentGroup

	Width, Height int
	XRes, YRes    int

	fontCount    int
	overlayCount int
}

// ActiveEnvironmentGroup returns the environment group of the page.
func (p *pageBase) ActiveEnvironmentGroup() *ActiveEnvironmentGroup {
	return p.aeg
}

// ResourceGroup returns the resource group of the page, or nil if the page
// has no resources.
func (p *pageBase) ResourceGroup() *ResourceGroup {
	return p.resources
}

// EnsureResourceGroup returns the resource group of the page, creating it
// if needed.
func (p *pageBase) EnsureResourceGroup() *ResourceGroup {
	if p.resources == nil {
		p.resources = p.factory.CreateResourceGroup()
	}
	return p.resources
}

// Add appends an object to the page.
func (p *pageBase) Add(o Object) error {
	return p.add(o)
}

// AddDataObject places an image or graphics object on the page.
//
// With inline placement, the object is added to the page content and
// positioned by its object environment group.  With resource placement,
// the object is stored in the resource group of the page, and an include
// object record in the page content gives its position.
func (p *pageBase) AddDataObject(o Placeable, area ObjectArea) error {
	if p.complete {
		return afp.ErrComplete
	}
	inline := p.factory.Placement() == PlacementInline
	if err := o.SetViewport(area, inline); err != nil {
		return err
	}
	if inline {
		return p.add(o)
	}

	name := wireName(o)
	iob, err := p.factory.CreateIncludeObject(name, o.ResourceType(), area)
	if err != nil {
		return err
	}
	ro := p.factory.CreateResourceObject(name, o, o.ResourceType())
	if err := p.EnsureResourceGroup().Add(ro); err != nil {
		return err
	}
	return p.add(iob)
}

// CreateFont maps a coded font for use on the page and returns its local
// identifier.
func (p *pageBase) CreateFont(codePage, charSet string, rotation int) (byte, error) {
	return p.addFont(Font{CodePage: codePage, CharacterSet: charSet, Rotation: rotation})
}

// CreateOutlineFont maps a scalable coded font of the given size, in
// 1/1440 inch, and returns its local identifier.
func (p *pageBase) CreateOutlineFont(codePage, charSet string, rotation, size int) (byte, error) {
	return p.addFont(Font{
		CodePage:     codePage,
		CharacterSet: charSet,
		Rotation:     rotation,
		Outline:      true,
		Size:         size,
	})
}

func (p *pageBase) addFont(f Font) (byte, error) {
	if p.fontCount >= MaxMapEntries {
		return 0, afp.ErrMaximumSizeExceeded
	}
	f.LocalID = byte(p.fontCount + 1)
	if err := p.aeg.AddFont(f); err != nil {
		return 0, err
	}
	p.fontCount++
	return f.LocalID, nil
}

// IncludeOverlay maps the named overlay and places it on the page.
func (p *pageBase) IncludeOverlay(name string, x, y, rotation int) error {
	if p.overlayCount >= MaxMapEntries {
		return afp.ErrMaximumSizeExceeded
	}
	ipo, err := p.factory.CreateIncludePageOverlay(name, x, y, rotation)
	if err != nil {
		return err
	}
	if err := p.aeg.AddOverlay(name, byte(p.overlayCount+1)); err != nil {
		return err
	}
	p.overlayCount++
	return p.add(ipo)
}

// IncludePageSegment places the named page segment on the page.
func (p *pageBase) IncludePageSegment(name string, x, y int) error {
	return p.add(p.factory.CreateIncludePageSegment(name, x, y))
}

// Page (BPG/EPG) is a single page of a document.
type Page struct {
	pageBase
}

// Overlay (BMO/EMO) is a page overlay, usually stored as a resource and
// included into pages with [Page.IncludeOverlay].
type Overlay struct {
	pageBase
}
