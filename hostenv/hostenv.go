// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hostenv captures the host environment values that OS family
// classification runs on.
package hostenv

import (
	"os"
	"strings"
	"sync"
)

// Snapshot is an immutable capture of the host values used for
// classification. Name, Arch and Version are lowercase.
type Snapshot struct {
	// Name is the operating system name the way the host reports it,
	// e.g. "linux", "darwin" or "windows 11 pro".
	Name string
	// Arch is the machine architecture, e.g. "amd64" or "x86_64".
	Arch string
	// Version is the OS or kernel release string. Empty on platforms
	// that don't report one.
	Version string
	// PathListSeparator separates entries in path lists such as $PATH:
	// ":" on POSIX systems, ";" on Windows.
	PathListSeparator string
}

// New returns a Snapshot with name, arch and version lowercased. Use it to
// build synthetic snapshots for tests or to classify an environment other
// than the one the process runs in.
func New(name, arch, version, pathListSep string) Snapshot {
	return Snapshot{
		Name:              strings.ToLower(name),
		Arch:              strings.ToLower(arch),
		Version:           strings.ToLower(version),
		PathListSeparator: pathListSep,
	}
}

// currentOnce caches the snapshot for the lifetime of the process. The host
// values can't change underneath a running process, so capturing them once
// is both safe and enough; sync.OnceValue also guarantees concurrent first
// callers all observe the same fully-built value.
var currentOnce = sync.OnceValue(capture)

// Current returns the snapshot of the environment the process runs in. It is
// captured on first call and identical on every call after that.
func Current() Snapshot {
	return currentOnce()
}

func capture() Snapshot {
	name, arch, version := detect()
	return New(name, arch, version, string(os.PathListSeparator))
}
