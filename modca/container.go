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
	"io"

	"seehuhn.de/go/afp"
)

// container is the common part of all objects which hold an ordered list
// of child objects.
type container struct {
	named
	triplets
	completion

	begin, end afp.SFID

	// children holds the objects which have not been written yet, in
	// insertion order.
	children []Object

	resources *ResourceGroup
	env       Streamable

	started, ended bool
}

func (c *container) add(o Object) error {
	if c.complete {
		return afp.ErrComplete
	}
	c.children = append(c.children, o)
	return nil
}

// Pending returns the number of child objects which have not been written
// yet.
func (c *container) Pending() int {
	return len(c.children)
}

// Phase returns the write phase of the container.
func (c *container) Phase() Phase {
	switch {
	case c.ended:
		return PhaseEnded
	case c.started:
		return PhaseStarted
	default:
		return PhaseNotStarted
	}
}

// WriteToStream implements the [Streamable] interface.
//
// The begin record is written on the first call.  Then the resource
// group, the environment group and all leading complete children are
// written.  Writing stops at the first child which is not complete, so
// that the order of the children is preserved in the output.  Once the
// container is complete, all remaining children are marked complete and
// written, followed by the end record.
func (c *container) WriteToStream(w io.Writer) error {
	if c.ended {
		return nil
	}
	if !c.started {
		c.started = true
		if err := c.writeBegin(w, &c.named, c.begin); err != nil {
			return err
		}
	}

	if c.resources != nil {
		if c.complete {
			c.resources.SetComplete(true)
		}
		if err := c.resources.WriteToStream(w); err != nil {
			return err
		}
		if !c.resources.ended {
			return nil
		}
	}

	if c.env != nil {
		if err := c.env.WriteToStream(w); err != nil {
			return err
		}
	}

	if err := c.drain(w); err != nil {
		return err
	}

	if !c.complete {
		return nil
	}
	c.ended = true
	return writeNamed(w, &c.named, c.end)
}

// drain writes and removes children from the front of the list, until an
// incomplete child is found.  If the container is complete, every child
// is written.
func (c *container) drain(w io.Writer) error {
	for len(c.children) > 0 {
		child := c.children[0]
		if !child.IsComplete() {
			if !c.complete {
				return nil
			}
			child.SetComplete(true)
		}
		if err := child.WriteToStream(w); err != nil {
			return err
		}
		c.children[0] = nil
		c.children = c.children[1:]
	}
	return nil
}
