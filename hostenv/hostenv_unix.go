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

//go:build unix

package hostenv

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// detect reads the kernel's uname values. Sysname carries the OS name the
// way the host reports it ("Linux", "Darwin", "OS/390"), which is the form
// the substring rules in package family are written against.
func detect() (name, arch, version string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS, runtime.GOARCH, ""
	}
	name = utsString(uts.Sysname[:])
	version = utsString(uts.Release[:])
	arch = utsString(uts.Machine[:])
	if name == "" {
		name = runtime.GOOS
	}
	if arch == "" {
		arch = runtime.GOARCH
	}
	return name, arch, version
}

// utsString converts a NUL-terminated utsname field to a string.
func utsString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
