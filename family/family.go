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

// Package family classifies an environment snapshot into OS families.
//
// The families form a fixed, closed set of 12 identifiers. Membership is
// decided by substring and path-separator heuristics rather than an
// enumeration of known OS names: the set of name strings hosts report is
// unbounded and keeps growing (OpenJDK reports "Darwin" for macOS, for
// example), so the rules trade precision for resilience to new names.
//
// Families deliberately overlap. A Windows NT-class host is "windows",
// "winnt" and, by the path-separator rule, "dos" all at once; a
// POSIX-enabled z/OS host is both "z/os" and "unix". Callers that need a
// single representative label use Resolve, which applies a documented
// precedence.
package family

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/osfamily/hostenv"
)

// Family is one of the 12 canonical OS family identifiers.
type Family string

// The canonical families. The literal spellings are part of the public
// contract: external configuration references families by these exact
// strings.
const (
	Windows Family = "windows"
	Win9x   Family = "win9x"
	WinNT   Family = "winnt"
	OS2     Family = "os/2"
	Netware Family = "netware"
	DOS     Family = "dos"
	Mac     Family = "mac"
	Tandem  Family = "tandem"
	Unix    Family = "unix"
	OpenVMS Family = "openvms"
	ZOS     Family = "z/os"
	OS400   Family = "os/400"
)

// ErrUnknownFamily is returned by Classify for tokens outside the registry.
var ErrUnknownFamily = errors.New("unknown os family")

// all is the registry in resolution priority order: families recognized by
// their reported name come before the two separator-derived families (unix,
// dos), so a z/OS host resolves to "z/os" rather than "unix" and a Windows
// host to "windows" rather than "dos". Windows precedes its winnt/win9x
// subfamilies so the representative label for any Windows host is plain
// "windows".
var all = []Family{
	Windows, WinNT, Win9x, OS2, Netware, OS400, OpenVMS, Tandem, ZOS, Mac,
	Unix, DOS,
}

// All returns the 12 families in resolution priority order. The caller owns
// the returned slice.
func All() []Family {
	return slices.Clone(all)
}

// IsValid reports whether f is one of the 12 canonical identifiers. It is a
// pure membership test: it never fails, and returns false for the empty
// string and any other unknown token.
func IsValid(f Family) bool {
	return slices.Contains(all, f)
}

// Classify reports whether snap belongs to family f. Families are evaluated
// independently, so a snapshot can belong to several at once. A token
// outside the registry is a caller defect and fails with ErrUnknownFamily;
// probe untrusted tokens with IsValid first.
func Classify(f Family, snap hostenv.Snapshot) (bool, error) {
	name := snap.Name
	switch f {
	case Windows:
		return isWindows(name), nil
	case Win9x:
		return isWindows(name) && is9x(name), nil
	case WinNT:
		return isWindows(name) && !is9x(name), nil
	case OS2:
		return strings.Contains(name, "os/2"), nil
	case Netware:
		return strings.Contains(name, "netware"), nil
	case DOS:
		return snap.PathListSeparator == ";" && !strings.Contains(name, "netware"), nil
	case Mac:
		return isMac(name), nil
	case Tandem:
		return strings.Contains(name, "nonstop_kernel"), nil
	case Unix:
		return snap.PathListSeparator == ":" &&
			!strings.Contains(name, "openvms") &&
			(!isMac(name) || strings.HasSuffix(name, "x") || strings.Contains(name, "darwin")), nil
	case ZOS:
		return strings.Contains(name, "z/os") || strings.Contains(name, "os/390"), nil
	case OS400:
		return strings.Contains(name, "os/400"), nil
	case OpenVMS:
		return strings.Contains(name, "openvms"), nil
	}
	return false, fmt.Errorf("%w %q", ErrUnknownFamily, string(f))
}

func isWindows(name string) bool {
	return strings.Contains(name, "windows")
}

// There are only four 9x-class name markers to look for. CE isn't really 9x
// but is crippled enough to count as one.
func is9x(name string) bool {
	return strings.Contains(name, "95") ||
		strings.Contains(name, "98") ||
		strings.Contains(name, "me") ||
		strings.Contains(name, "ce")
}

// Darwin counts as mac: that's the name a Mac-family kernel reports.
func isMac(name string) bool {
	return strings.Contains(name, "mac") || strings.Contains(name, "darwin")
}

// Resolve returns the first family in priority order that snap belongs to.
// ok is false when no family matched, which no real host should trigger.
//
// The result is a representative label for display and logging only.
// Because families overlap, "the" family of a host is a matter of the
// documented precedence on All; callers that need a precise membership
// answer should Classify the specific family they care about instead.
func Resolve(snap hostenv.Snapshot) (Family, bool) {
	for _, f := range all {
		if ok, err := Classify(f, snap); err == nil && ok {
			return f, true
		}
	}
	return "", false
}
