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
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/tools/internal/buildinfo"
	"seehuhn.de/go/afp/tools/internal/profile"
)

var (
	hexArg     = flag.Bool("x", false, "show a hex dump of the field data")
	summaryArg = flag.Bool("s", false, "only print the number of fields of each kind")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "afp-dump \u2014 list the structured fields of AFP files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("afp-dump"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  afp-dump [options] <file.afp>...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  afp-dump out.afp\n")
		fmt.Fprintf(os.Stderr, "  afp-dump -s *.afp\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	for _, fname := range flag.Args() {
		err := dump(fname)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	return nil
}

func dump(fname string) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()

	if flag.NArg() > 1 {
		fmt.Printf("# %s\n", fname)
	}

	counts := make(map[afp.SFID]int)
	depth := 0
	r := afp.NewReader(fd)
	for {
		f, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		counts[f.ID]++
		if *summaryArg {
			continue
		}

		if f.ID.Type() == afp.TypeEnd && depth > 0 {
			depth--
		}
		fmt.Println(strings.Repeat("  ", depth) + f.String())
		if *hexArg && len(f.Data) > 0 {
			fmt.Print(indent(hex.Dump(f.Data), depth+1))
		}
		if f.ID.Type() == afp.TypeBegin {
			depth++
		}
	}

	if *summaryArg {
		for _, id := range slices.Sorted(maps.Keys(counts)) {
			fmt.Printf("%-6s %d\n", id, counts[id])
		}
	}
	return nil
}

func indent(s string, depth int) string {
	prefix := strings.Repeat("  ", depth)
	lines := strings.SplitAfter(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "")
}
