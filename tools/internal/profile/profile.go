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

// Package profile collects CPU and heap profiles for the command line
// tools.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Start begins CPU profiling if cpuFile is not empty.  The returned
// function ends CPU profiling and, if heapFile is not empty, writes a heap
// profile.  Callers should defer the returned function.
func Start(cpuFile, heapFile string) (stop func(), err error) {
	var cpu *os.File
	if cpuFile != "" {
		cpu, err = startCPU(cpuFile)
		if err != nil {
			return nil, err
		}
	}

	stop = func() {
		if cpu != nil {
			pprof.StopCPUProfile()
			cpu.Close()
		}
		if heapFile != "" {
			if err := writeHeap(heapFile); err != nil {
				fmt.Fprintln(os.Stderr, "profile:", err)
			}
		}
	}
	return stop, nil
}

func startCPU(fname string) (*os.File, error) {
	fd, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		fd.Close()
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	return fd, nil
}

func writeHeap(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	runtime.GC()
	err = pprof.WriteHeapProfile(fd)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	return nil
}
