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
	"fmt"
	"log"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/goca"
	"seehuhn.de/go/afp/ioca"
	"seehuhn.de/go/afp/triplet"
)

// Placement selects how data objects are placed on pages.
type Placement int

// These are the supported placement policies.
const (
	// PlacementInline writes data objects into the page content.  The
	// object environment group gives the position on the page.
	PlacementInline Placement = iota

	// PlacementResource stores data objects in the resource group of the
	// page.  An include object record in the page content gives the
	// position on the page.
	PlacementResource
)

func (p Placement) String() string {
	switch p {
	case PlacementInline:
		return "inline"
	case PlacementResource:
		return "resource"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// FactoryOptions control the objects created by a [Factory].
type FactoryOptions struct {
	Placement Placement

	// MaxImageRecord is the size limit for image picture data records.
	// If this is zero, [ioca.DefaultMaxRecordLength] is used.
	MaxImageRecord int

	// MaxGraphicsRecord is the size limit for graphics data records.  If
	// this is zero, [goca.DefaultMaxRecordLength] is used.
	MaxGraphicsRecord int

	// MaxFontsPerMap and MaxOverlaysPerMap limit the number of entries in
	// a single map record.  If these are zero or larger than
	// [MaxMapEntries], MaxMapEntries is used.
	MaxFontsPerMap    int
	MaxOverlaysPerMap int

	// If Logger is not nil, all warnings are printed to this logger.
	Logger *log.Logger
}

// Factory creates the objects of a document.  It assigns unique names and
// implements the placement policy for data objects.
type Factory struct {
	// Warnings collects the problems which were repaired while building
	// and writing the document.
	Warnings *afp.Warnings

	opt    FactoryOptions
	counts map[string]int
}

// NewFactory returns a new factory.  If opt is nil, default options are
// used.
func NewFactory(opt *FactoryOptions) *Factory {
	if opt == nil {
		opt = &FactoryOptions{}
	}
	f := &Factory{
		Warnings: &afp.Warnings{Log: opt.Logger},
		opt:      *opt,
		counts:   make(map[string]int),
	}
	if f.opt.MaxFontsPerMap <= 0 || f.opt.MaxFontsPerMap > MaxMapEntries {
		f.opt.MaxFontsPerMap = MaxMapEntries
	}
	if f.opt.MaxOverlaysPerMap <= 0 || f.opt.MaxOverlaysPerMap > MaxMapEntries {
		f.opt.MaxOverlaysPerMap = MaxMapEntries
	}
	return f
}

// Placement returns the placement policy for data objects.
func (f *Factory) Placement() Placement {
	return f.opt.Placement
}

// nextName returns a fresh eight-character name with the given
// three-character prefix.
func (f *Factory) nextName(prefix string) string {
	f.counts[prefix]++
	return fmt.Sprintf("%s%05d", prefix, f.counts[prefix]%100000)
}

func (f *Factory) newNamed(prefix string) named {
	return named{name: f.nextName(prefix), warn: f.Warnings}
}

// CreateDocument returns a new, empty document.
func (f *Factory) CreateDocument() *Document {
	d := &Document{factory: f}
	d.named = f.newNamed("DOC")
	d.begin, d.end = afp.BDT, afp.EDT
	return d
}

// CreatePageGroup returns a new, empty page group.
func (f *Factory) CreatePageGroup() *PageGroup {
	g := &PageGroup{}
	g.named = f.newNamed("PGP")
	g.begin, g.end = afp.BNG, afp.ENG
	return g
}

// CreatePage returns a new page of the given size.  The size is given in
// units of 1/xRes and 1/yRes inch.
func (f *Factory) CreatePage(width, height, xRes, yRes int) *Page {
	p := &Page{}
	f.initPage(&p.pageBase, "PGN", afp.BPG, afp.EPG, width, height, xRes, yRes)
	return p
}

// CreateOverlay returns a new overlay of the given size.
func (f *Factory) CreateOverlay(width, height, xRes, yRes int) *Overlay {
	o := &Overlay{}
	f.initPage(&o.pageBase, "OVL", afp.BMO, afp.EMO, width, height, xRes, yRes)
	return o
}

func (f *Factory) initPage(p *pageBase, prefix string, begin, end afp.SFID, width, height, xRes, yRes int) {
	p.named = f.newNamed(prefix)
	p.begin, p.end = begin, end
	p.factory = f
	p.Width, p.Height = width, height
	p.XRes, p.YRes = xRes, yRes

	p.aeg = f.CreateActiveEnvironmentGroup()
	p.aeg.SetPageDescriptor(&PageDescriptor{
		Width: width, Height: height, XRes: xRes, YRes: yRes,
	})
	p.aeg.SetPresentationTextDescriptor(&PresentationTextDescriptor{
		Width: width, Height: height, XRes: xRes, YRes: yRes,
	})
	p.env = p.aeg
}

// CreateResourceGroup returns a new, empty resource group.
func (f *Factory) CreateResourceGroup() *ResourceGroup {
	g := &ResourceGroup{}
	g.named = f.newNamed("RES")
	g.begin, g.end = afp.BRG, afp.ERG
	return g
}

// CreateResourceObject wraps an object for storage in a resource group.
// The resource is referenced by the given name.
func (f *Factory) CreateResourceObject(name string, o Object, typ triplet.ResourceType) *ResourceObject {
	return newResourceObject(name, o, typ, f.Warnings)
}

// CreateImageObject returns a new image object without image data.
func (f *Factory) CreateImageObject() *ImageObject {
	o := &ImageObject{maxRecord: f.opt.MaxImageRecord}
	f.initDataObject(&o.DataObject, "IMG", afp.BIM, afp.EIM, triplet.ResourceImage, o)
	if o.maxRecord == 0 {
		o.maxRecord = ioca.DefaultMaxRecordLength
	}
	return o
}

// CreateGraphicsObject returns a new graphics object without drawing
// orders.
func (f *Factory) CreateGraphicsObject() *GraphicsObject {
	o := &GraphicsObject{
		Drawing: goca.NewDrawing(&goca.Options{
			MaxRecordLength: f.opt.MaxGraphicsRecord,
			Warnings:        f.Warnings,
		}),
	}
	f.initDataObject(&o.DataObject, "GRA", afp.BGR, afp.EGR, triplet.ResourceGraphics, o)
	return o
}

func (f *Factory) initDataObject(d *DataObject, prefix string, begin, end afp.SFID, typ triplet.ResourceType, body payload) {
	d.named = f.newNamed(prefix)
	d.factory = f
	d.body = body
	d.begin, d.end = begin, end
	d.resType = typ
}

// CreateObjectEnvironmentGroup returns a new, empty object environment
// group.
func (f *Factory) CreateObjectEnvironmentGroup() *ObjectEnvironmentGroup {
	return &ObjectEnvironmentGroup{named: f.newNamed("OEG")}
}

// CreateActiveEnvironmentGroup returns a new, empty active environment
// group.
func (f *Factory) CreateActiveEnvironmentGroup() *ActiveEnvironmentGroup {
	return &ActiveEnvironmentGroup{
		named:       f.newNamed("AEG"),
		maxFonts:    f.opt.MaxFontsPerMap,
		maxOverlays: f.opt.MaxOverlaysPerMap,
	}
}

// CreateObjectAreaDescriptor returns an object area descriptor.
func (f *Factory) CreateObjectAreaDescriptor(width, height, xRes, yRes int) *ObjectAreaDescriptor {
	return &ObjectAreaDescriptor{Width: width, Height: height, XRes: xRes, YRes: yRes}
}

// CreateObjectAreaPosition returns an object area position relative to the
// including page or page segment.
func (f *Factory) CreateObjectAreaPosition(x, y, rotation int) (*ObjectAreaPosition, error) {
	if err := afp.CheckRotation(rotation); err != nil {
		return nil, err
	}
	return &ObjectAreaPosition{
		X:        x,
		Y:        y,
		Rotation: rotation,
		RefCSys:  RefCSysPageSegmentRelative,
	}, nil
}

// CreateIncludeObject returns an include object record which places the
// named resource at the given object area.
func (f *Factory) CreateIncludeObject(name string, typ triplet.ResourceType, area ObjectArea) (*IncludeObject, error) {
	if err := afp.CheckRotation(area.Rotation); err != nil {
		return nil, err
	}
	o := &IncludeObject{
		named:    named{name: name, warn: f.Warnings},
		Type:     includeTypeFor(typ),
		X:        area.X,
		Y:        area.Y,
		Rotation: area.Rotation,
		RefCSys:  RefCSysPageRelative,
	}
	mapping := triplet.MapPosition
	if typ == triplet.ResourceImage {
		mapping = triplet.MapScaleToFill
	}
	err := o.AddTriplet(
		triplet.MeasurementUnits(area.XRes, area.YRes),
		triplet.ObjectAreaSize(area.Width, area.Height),
		triplet.Mapping(mapping),
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// CreateIncludePageOverlay returns a record which places the named overlay
// on a page.
func (f *Factory) CreateIncludePageOverlay(name string, x, y, rotation int) (*IncludePageOverlay, error) {
	if err := afp.CheckRotation(rotation); err != nil {
		return nil, err
	}
	return &IncludePageOverlay{
		named:    named{name: name, warn: f.Warnings},
		X:        x,
		Y:        y,
		Rotation: rotation,
	}, nil
}

// CreateIncludePageSegment returns a record which places the named page
// segment on a page.
func (f *Factory) CreateIncludePageSegment(name string, x, y int) *IncludePageSegment {
	return &IncludePageSegment{
		named: named{name: name, warn: f.Warnings},
		X:     x,
		Y:     y,
	}
}

// CreateNoOperation returns a no-operation record holding the given text.
func (f *Factory) CreateNoOperation(text string) *NoOperation {
	enc, w := afp.EncodeText(text)
	f.Warnings.Add(w...)
	return &NoOperation{Data: enc}
}

// CreateTagLogicalElement returns a tag logical element record.
func (f *Factory) CreateTagLogicalElement(name, value string) (*TagLogicalElement, error) {
	fqn, w := triplet.FullyQualifiedNameString(triplet.FQNAttributeGID, name)
	f.Warnings.Add(w...)
	av, w := triplet.AttributeValue(value)
	f.Warnings.Add(w...)

	t := &TagLogicalElement{}
	if err := t.list.Add(fqn, av); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateInvokeMediumMap returns a record which selects the named medium
// map.
func (f *Factory) CreateInvokeMediumMap(name string) *InvokeMediumMap {
	return &InvokeMediumMap{named: named{name: name, warn: f.Warnings}}
}
