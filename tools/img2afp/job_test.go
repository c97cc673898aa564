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
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"sigs.k8s.io/yaml"

	"seehuhn.de/go/afp/goca"
	"seehuhn.de/go/afp/modca"
)

func TestJobFile(t *testing.T) {
	in := []byte("pageWidth: 8.27\npageHeight: 11.69\nresolution: 240\nplacement: resource\nimages: [a.png, b.tif]\n")

	j := defaultJob()
	if err := yaml.UnmarshalStrict(in, j); err != nil {
		t.Fatal(err)
	}
	flags := &Job{Resolution: 600, Rotation: 90}
	j.override(flags, map[string]bool{"dpi": true})

	want := &Job{
		PageWidth:  8.27,
		PageHeight: 11.69,
		Resolution: 600,
		X:          1,
		Y:          1,
		Placement:  "resource",
		Images:     []string{"a.png", "b.tif"},
	}
	if d := cmp.Diff(want, j); d != "" {
		t.Errorf("job mismatch (-want +got):\n%s", d)
	}
	if err := j.check(); err != nil {
		t.Error(err)
	}
	if got := j.inch(j.PageWidth); got != 4962 {
		t.Errorf("page width: got %d, want 4962", got)
	}
}

func TestJobUnknownField(t *testing.T) {
	j := defaultJob()
	err := yaml.UnmarshalStrict([]byte("colour: red\n"), j)
	if err == nil {
		t.Error("unknown field accepted")
	}
}

func TestJobCheck(t *testing.T) {
	for _, modify := range []func(*Job){
		func(j *Job) { j.Resolution = 0 },
		func(j *Job) { j.Resolution = 10000 },
		func(j *Job) { j.PageHeight = 0 },
		func(j *Job) { j.Width = -1 },
		func(j *Job) { j.Rotation = 45 },
		func(j *Job) { j.Placement = "overlay" },
	} {
		j := defaultJob()
		modify(j)
		if err := j.check(); err == nil {
			t.Errorf("invalid job accepted: %+v", j)
		}
	}
}

func TestPackBits(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Pix[0] = 0              // (0, 0)
	img.Pix[9] = 0              // (9, 0)
	img.Pix[img.Stride+1] = 100 // (1, 1)

	got := packBits(img)
	want := []byte{0x80, 0x40, 0x40, 0x00}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("packBits mismatch (-want +got):\n%s", d)
	}
}

func TestGrayBytes(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	copy(img.Pix, []byte{0, 128, 255})
	got := grayBytes(img)
	want := []byte{255, 127, 0}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("grayBytes mismatch (-want +got):\n%s", d)
	}
}

func TestFrame(t *testing.T) {
	f := modca.NewFactory(nil)
	area := modca.ObjectArea{Width: 100, Height: 50, XRes: 300, YRes: 300}
	g := frame(f, area)

	var got []goca.Order
	for _, r := range g.Records() {
		for _, s := range r.Segments() {
			got = append(got, s.Orders()...)
		}
	}
	want := []goca.Order{
		goca.SetLineWidth(2),
		goca.Box(goca.Point{X: 3, Y: 3}, goca.Point{X: 96, Y: 46}),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", d)
	}
	if !g.IsComplete() {
		t.Error("frame not complete")
	}
}
