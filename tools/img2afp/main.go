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
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"
	"sigs.k8s.io/yaml"

	"seehuhn.de/go/afp/modca"
	"seehuhn.de/go/afp/tools/internal/buildinfo"
	"seehuhn.de/go/afp/tools/internal/profile"
)

var (
	outArg      = flag.String("o", "", "write the AFP output to `file` (\"-\" for stdout)")
	jobArg      = flag.String("job", "", "read page layout from the YAML or JSON `file`")
	printJobArg = flag.Bool("print-job", false, "print the effective job as YAML and exit")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile  = flag.String("memprofile", "", "write memory profile to `file`")

	job = defaultJob()
)

func init() {
	flag.Float64Var(&job.PageWidth, "page-width", job.PageWidth, "page width in inches")
	flag.Float64Var(&job.PageHeight, "page-height", job.PageHeight, "page height in inches")
	flag.IntVar(&job.Resolution, "dpi", job.Resolution, "page and image resolution in dots per inch")
	flag.Float64Var(&job.X, "x", job.X, "horizontal image position in inches")
	flag.Float64Var(&job.Y, "y", job.Y, "vertical image position in inches")
	flag.Float64Var(&job.Width, "w", job.Width, "image width in inches (0 keeps one pixel per dot)")
	flag.IntVar(&job.Rotation, "rot", job.Rotation, "image rotation in degrees")
	flag.StringVar(&job.Placement, "placement", job.Placement, "data object placement (inline or resource)")
	flag.BoolVar(&job.Bilevel, "bilevel", job.Bilevel, "convert images to black and white")
	flag.BoolVar(&job.Frame, "frame", job.Frame, "draw a frame around every image")
	flag.StringVar(&job.Overlay, "overlay", job.Overlay, "include the named overlay on every page")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "img2afp \u2014 convert raster images to AFP\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("img2afp"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  img2afp [options] -o <out.afp> <image>...\n\n")
		fmt.Fprintf(os.Stderr, "Every image is placed on a page of its own.  PNG, JPEG, GIF,\n")
		fmt.Fprintf(os.Stderr, "TIFF and BMP images are supported.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  img2afp -o scan.afp -bilevel scan.png\n")
		fmt.Fprintf(os.Stderr, "  img2afp -job letter.yaml -o - photo.jpg | lpr\n")
	}
	flag.Parse()

	if *jobArg != "" {
		if err := loadJob(*jobArg); err != nil {
			log.Fatal(err)
		}
	}
	job.Images = append(job.Images, flag.Args()...)

	if *printJobArg {
		out, err := yaml.Marshal(job)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
		return
	}

	if len(job.Images) == 0 || *outArg == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadJob reads a job file.  Options given on the command line take
// precedence over the values from the file.
func loadJob(fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	fromFile := defaultJob()
	if err := yaml.UnmarshalStrict(data, fromFile); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	fromFile.override(job, explicit)
	job = fromFile
	return nil
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	if err := job.check(); err != nil {
		return err
	}

	var out io.Writer
	if *outArg == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write AFP data to a terminal")
		}
		out = os.Stdout
	} else {
		fd, err := os.Create(*outArg)
		if err != nil {
			return err
		}
		defer fd.Close()
		out = fd
	}
	w := bufio.NewWriter(out)

	placement := modca.PlacementInline
	if job.Placement == "resource" {
		placement = modca.PlacementResource
	}
	f := modca.NewFactory(&modca.FactoryOptions{
		Placement:         placement,
		MaxImageRecord:    job.MaxImageRecord,
		MaxGraphicsRecord: job.MaxGraphicsRecord,
		Logger:            log.New(os.Stderr, "img2afp: ", 0),
	})

	doc := f.CreateDocument()
	for _, fname := range job.Images {
		page, err := convert(f, fname)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
		if err := doc.Add(page); err != nil {
			return err
		}
		// pages which are done are written right away
		if err := doc.WriteToStream(w); err != nil {
			return err
		}
	}
	doc.SetComplete(true)
	if err := doc.WriteToStream(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n := f.Warnings.Len(); n > 0 {
		fmt.Fprintf(os.Stderr, "img2afp: %d warnings\n", n)
	}
	return nil
}

// convert places one image on a new page.  The page is complete on return.
func convert(f *modca.Factory, fname string) (*modca.Page, error) {
	content, err := loadImage(fname, job)
	if err != nil {
		return nil, err
	}

	res := job.Resolution
	page := f.CreatePage(job.inch(job.PageWidth), job.inch(job.PageHeight), res, res)
	if job.Overlay != "" {
		if err := page.IncludeOverlay(job.Overlay, 0, 0, 0); err != nil {
			return nil, err
		}
	}

	tle, err := f.CreateTagLogicalElement("Source", filepath.Base(fname))
	if err != nil {
		return nil, err
	}
	if err := page.Add(tle); err != nil {
		return nil, err
	}

	area := modca.ObjectArea{
		X:        job.inch(job.X),
		Y:        job.inch(job.Y),
		Width:    content.Width,
		Height:   content.Height,
		XRes:     res,
		YRes:     res,
		Rotation: job.Rotation,
	}

	img := f.CreateImageObject()
	if err := img.SetContent(content); err != nil {
		return nil, err
	}
	img.SetComplete(true)
	if err := page.AddDataObject(img, area); err != nil {
		return nil, err
	}

	if job.Frame {
		if err := page.AddDataObject(frame(f, area), area); err != nil {
			return nil, err
		}
	}

	if rg := page.ResourceGroup(); rg != nil {
		rg.SetComplete(true)
	}
	page.SetComplete(true)
	return page, nil
}
