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

// Package condition evaluates optional platform criteria against an
// environment snapshot.
package condition

import (
	"strings"

	"github.com/google/osfamily/family"
	"github.com/google/osfamily/hostenv"
)

// Criteria is a set of optional match criteria combined with logical AND.
// An empty field means "don't care". Family is matched through the family
// classifier; Name, Arch and Version are matched by case-insensitive
// equality against the corresponding snapshot field.
type Criteria struct {
	Family  string `toml:"family" yaml:"family"`
	Name    string `toml:"name" yaml:"name"`
	Arch    string `toml:"arch" yaml:"arch"`
	Version string `toml:"version" yaml:"version"`
}

// Matches reports whether snap satisfies every present criterion of c.
//
// Criteria with no fields set match nothing: the result is false, never
// true, so a configuration entry that forgot its criteria can't silently
// apply everywhere. An unknown family token fails with
// family.ErrUnknownFamily.
func Matches(c Criteria, snap hostenv.Snapshot) (bool, error) {
	if c.Family == "" && c.Name == "" && c.Arch == "" && c.Version == "" {
		return false, nil
	}
	if c.Family != "" {
		ok, err := family.Classify(family.Family(strings.ToLower(c.Family)), snap)
		if err != nil || !ok {
			return false, err
		}
	}
	if c.Name != "" && strings.ToLower(c.Name) != snap.Name {
		return false, nil
	}
	if c.Arch != "" && strings.ToLower(c.Arch) != snap.Arch {
		return false, nil
	}
	if c.Version != "" && strings.ToLower(c.Version) != snap.Version {
		return false, nil
	}
	return true, nil
}
