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

package main

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/afp"
)

// Job describes the page layout.  Lengths are given in inches.
type Job struct {
	PageWidth  float64 `json:"pageWidth"`
	PageHeight float64 `json:"pageHeight"`
	Resolution int     `json:"resolution"`

	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width,omitempty"`
	Rotation int     `json:"rotation"`

	Placement string `json:"placement"`
	Bilevel   bool   `json:"bilevel,omitempty"`
	Frame     bool   `json:"frame,omitempty"`
	Overlay   string `json:"overlay,omitempty"`

	MaxImageRecord    int `json:"maxImageRecord,omitempty"`
	MaxGraphicsRecord int `json:"maxGraphicsRecord,omitempty"`

	Images []string `json:"images,omitempty"`
}

// defaultJob returns the layout for US letter paper at 300 dpi, with a
// one inch margin.
func defaultJob() *Job {
	return &Job{
		PageWidth:  8.5,
		PageHeight: 11,
		Resolution: 300,
		X:          1,
		Y:          1,
		Placement:  "inline",
	}
}

// override copies the fields set by the named command line flags from src
// to j.
func (j *Job) override(src *Job, flags map[string]bool) {
	if flags["page-width"] {
		j.PageWidth = src.PageWidth
	}
	if flags["page-height"] {
		j.PageHeight = src.PageHeight
	}
	if flags["dpi"] {
		j.Resolution = src.Resolution
	}
	if flags["x"] {
		j.X = src.X
	}
	if flags["y"] {
		j.Y = src.Y
	}
	if flags["w"] {
		j.Width = src.Width
	}
	if flags["rot"] {
		j.Rotation = src.Rotation
	}
	if flags["placement"] {
		j.Placement = src.Placement
	}
	if flags["bilevel"] {
		j.Bilevel = src.Bilevel
	}
	if flags["frame"] {
		j.Frame = src.Frame
	}
	if flags["overlay"] {
		j.Overlay = src.Overlay
	}
}

func (j *Job) check() error {
	if j.Resolution <= 0 || j.Resolution*10 > 0xFFFF {
		return fmt.Errorf("invalid resolution %d", j.Resolution)
	}
	if j.PageWidth <= 0 || j.PageHeight <= 0 {
		return errors.New("invalid page size")
	}
	if j.Width < 0 {
		return errors.New("invalid image width")
	}
	if err := afp.CheckRotation(j.Rotation); err != nil {
		return err
	}
	switch j.Placement {
	case "inline", "resource":
	default:
		return fmt.Errorf("unknown placement %q", j.Placement)
	}
	return nil
}

// inch converts a length in inches to page units.
func (j *Job) inch(x float64) int {
	return int(math.Round(x * float64(j.Resolution)))
}
