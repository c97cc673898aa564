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
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/afp/ioca"
	"seehuhn.de/go/afp/modca"
)

// loadImage reads an image file and converts it to an uncompressed gray
// or bilevel IOCA image at the job resolution.
func loadImage(fname string, j *Job) (*ioca.Content, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	src, _, err := image.Decode(fd)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	if j.Width > 0 {
		width = max(j.inch(j.Width), 1)
		height = max(int(int64(b.Dy())*int64(width)/int64(b.Dx())), 1)
	}
	gray := image.NewGray(image.Rect(0, 0, width, height))
	if width == b.Dx() && height == b.Dy() {
		draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(gray, gray.Bounds(), src, b, draw.Src, nil)
	}

	c := &ioca.Content{
		HRes:        j.Resolution,
		VRes:        j.Resolution,
		Width:       width,
		Height:      height,
		Compression: ioca.CompressionNone,
	}
	if j.Bilevel {
		c.IDESize = 1
		c.Data = packBits(gray)
	} else {
		c.IDESize = 8
		c.Data = grayBytes(gray)
	}
	return c, nil
}

// grayBytes returns the pixels of img, one byte per pixel, with 0 for
// white.
func grayBytes(img *image.Gray) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	res := make([]byte, 0, w*h)
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for _, v := range row {
			res = append(res, 255-v)
		}
	}
	return res
}

// packBits thresholds img to one bit per pixel.  Set bits are black and
// every row starts on a byte boundary.
func packBits(img *image.Gray) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rowBytes := (w + 7) / 8
	res := make([]byte, rowBytes*h)
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		out := res[y*rowBytes : (y+1)*rowBytes]
		for x, v := range row {
			if v < 128 {
				out[x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return res
}

// frame returns a graphics object which draws a thin box along the edge of
// the object area.
func frame(f *modca.Factory, area modca.ObjectArea) *modca.GraphicsObject {
	// keep the line, 0.02 inch wide, inside the window
	inset := float64(area.XRes) / 100
	box := rect.Rect{
		URx: float64(area.Width - 1),
		URy: float64(area.Height - 1),
	}
	box.LLx += inset
	box.LLy += inset
	box.URx -= inset
	box.URy -= inset

	g := f.CreateGraphicsObject()
	g.SetLineWidth(2)
	g.Rect(box)
	g.SetComplete(true)
	return g
}
