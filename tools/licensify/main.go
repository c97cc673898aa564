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

// Licensify adds the license header from .newsrc/header.txt to all Go
// source files of the module which do not carry it yet.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/afp/tools/internal/buildinfo"
)

var (
	headerArg = flag.String("header", ".newsrc/header.txt", "read the license header from `file`")
	dryRun    = flag.Bool("n", false, "only list the files which need a header")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "licensify \u2014 add license headers to Go source files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("licensify"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  licensify [options] [dir]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	hdr, err := os.ReadFile(*headerArg)
	if err != nil {
		log.Fatal(err)
	}
	hdr = append(bytes.TrimRight(hdr, "\n"), '\n', '\n')

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			// skip _examples, testdata, .git and friends
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") {
			return nil
		}
		return fix(path, hdr)
	})
	if err != nil {
		log.Fatal(err)
	}
}

func fix(path string, hdr []byte) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if bytes.HasPrefix(body, hdr) {
		return nil
	}
	if !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("// Package ")) {
		fmt.Println("ATTENTION " + path)
		return nil
	}

	fmt.Println("updating " + path)
	if *dryRun {
		return nil
	}
	out := make([]byte, 0, len(hdr)+len(body))
	out = append(out, hdr...)
	out = append(out, body...)
	return os.WriteFile(path, out, 0o644)
}
