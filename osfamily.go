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

// Package osfamily answers boolean questions about the operating system the
// process runs on: does it belong to a given family, does its name,
// architecture or version match. It exists so that build-time conditional
// logic can branch on platform without hard-coding raw OS name strings.
//
// The package-level functions query the process environment, which is
// captured once and never changes. Callers that need to classify a
// different or synthetic environment use the family and condition
// subpackages directly with their own hostenv.Snapshot.
package osfamily

import (
	"sync"

	"github.com/google/osfamily/condition"
	"github.com/google/osfamily/family"
	"github.com/google/osfamily/hostenv"
)

// Family re-exports the canonical family type for single-import callers.
type Family = family.Family

// The 12 canonical family identifiers.
const (
	FamilyWindows = family.Windows
	FamilyWin9x   = family.Win9x
	FamilyWinNT   = family.WinNT
	FamilyOS2     = family.OS2
	FamilyNetware = family.Netware
	FamilyDOS     = family.DOS
	FamilyMac     = family.Mac
	FamilyTandem  = family.Tandem
	FamilyUnix    = family.Unix
	FamilyOpenVMS = family.OpenVMS
	FamilyZOS     = family.ZOS
	FamilyOS400   = family.OS400
)

// IsOS reports whether the current environment matches every non-empty
// criterion. With all four empty it returns false, never true. An unknown
// family token fails with family.ErrUnknownFamily.
func IsOS(familyTok, name, arch, version string) (bool, error) {
	return condition.Matches(condition.Criteria{
		Family:  familyTok,
		Name:    name,
		Arch:    arch,
		Version: version,
	}, hostenv.Current())
}

// IsFamily reports whether the current environment belongs to the given
// family. Unknown tokens fail; probe with IsValidFamily first when the
// token is untrusted.
func IsFamily(f string) (bool, error) {
	return IsOS(f, "", "", "")
}

// IsName reports whether the current OS name equals name, ignoring case.
// False for the empty string.
func IsName(name string) bool {
	ok, _ := IsOS("", name, "", "")
	return ok
}

// IsArch reports whether the current architecture equals arch, ignoring
// case. False for the empty string.
func IsArch(arch string) bool {
	ok, _ := IsOS("", "", arch, "")
	return ok
}

// IsVersion reports whether the current OS version equals version, ignoring
// case. False for the empty string.
func IsVersion(version string) bool {
	ok, _ := IsOS("", "", "", version)
	return ok
}

// IsValidFamily reports whether token is one of the 12 canonical family
// identifiers. It never fails, making it safe for untrusted input.
func IsValidFamily(token string) bool {
	return family.IsValid(family.Family(token))
}

// ValidFamilies returns the 12 canonical identifiers in resolution priority
// order.
func ValidFamilies() []Family {
	return family.All()
}

// The snapshot never changes, so neither can the resolved family.
var currentFamily = sync.OnceValues(func() (Family, bool) {
	return family.Resolve(hostenv.Current())
})

// CurrentFamily returns the representative family label of the current
// environment, resolved once per process. ok is false when no family
// matched; callers should treat that as an unsupported platform, not a
// fault. The label is informational — for precise branching, ask IsFamily
// about the specific family instead.
func CurrentFamily() (Family, bool) {
	return currentFamily()
}

// Snapshot returns the immutable environment snapshot of this process.
func Snapshot() hostenv.Snapshot {
	return hostenv.Current()
}
