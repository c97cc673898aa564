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

// Package buildinfo reports the version of the command line tools.
package buildinfo

import (
	"runtime/debug"
)

// Version returns the module path and a version string for the running
// binary.  For development builds, the version is the abbreviated VCS
// revision, with "+dirty" appended for modified working trees.  If no
// version information is available, both strings are empty.
func Version() (path, version string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	path = info.Main.Path

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return path, v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	rev := settings["vcs.revision"]
	if rev == "" {
		return path, ""
	}
	rev = rev[:min(len(rev), 8)]
	if settings["vcs.modified"] == "true" {
		rev += "+dirty"
	}
	return path, rev
}

// Short returns a one-line description of a tool, for example
// "afp-dump (seehuhn.de/go/afp v0.2.0)".
func Short(toolName string) string {
	path, version := Version()
	if version == "" {
		return toolName
	}
	return toolName + " (" + path + " " + version + ")"
}
