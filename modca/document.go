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

// Document (BDT/EDT) is the root of the object tree.
type Document struct {
	container
	factory *Factory
}

// Add appends a page, a page group or any other object to the document.
func (d *Document) Add(o Object) error {
	return d.add(o)
}

// EnsureResourceGroup returns the document level resource group, creating
// it if needed.
func (d *Document) EnsureResourceGroup() *ResourceGroup {
	if d.resources == nil {
		d.resources = d.factory.CreateResourceGroup()
	}
	return d.resources
}

// PageGroup (BNG/ENG) groups consecutive pages of a document.
type PageGroup struct {
	container
}

// Add appends a page or a tag logical element to the group.
func (g *PageGroup) Add(o Object) error {
	return g.add(o)
}
