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

// Package cli defines the flag structure of the osfamily CLI and the loader
// for activation profile files.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/osfamily/condition"
	"github.com/google/osfamily/family"
	"gopkg.in/yaml.v3"
)

// Flags contains a field for all the cli flags that can be set.
type Flags struct {
	// Criteria for the check subcommand.
	Family  string
	Name    string
	Arch    string
	Version string
	// Path of the activation profile file for the activate subcommand.
	ProfilesFile string
	Verbose      bool
	PrintVersion bool
}

// Criteria returns the match criteria the flags describe.
func (f *Flags) Criteria() condition.Criteria {
	return condition.Criteria{
		Family:  f.Family,
		Name:    f.Name,
		Arch:    f.Arch,
		Version: f.Version,
	}
}

// ValidateCheckFlags makes sure the check subcommand's flags are usable:
// at least one criterion set, and the family token, if any, registered.
func ValidateCheckFlags(flags *Flags) error {
	if flags.Family == "" && flags.Name == "" && flags.Arch == "" && flags.Version == "" {
		return fmt.Errorf("at least one of -family, -name, -arch, -version must be set")
	}
	if flags.Family != "" && !family.IsValid(family.Family(strings.ToLower(flags.Family))) {
		return fmt.Errorf("unknown family %q, valid families are %v", flags.Family, family.All())
	}
	return nil
}

// ValidateActivateFlags makes sure the activate subcommand got a profile
// file path.
func ValidateActivateFlags(flags *Flags) error {
	if flags.ProfilesFile == "" {
		return fmt.Errorf("-profiles must be set")
	}
	return nil
}

// profileFile is the on-disk format of an activation profile file: named
// profiles, each holding one set of platform criteria, e.g.
//
//	[profiles.windows-x64]
//	family = "windows"
//	arch = "amd64"
//
//	[profiles.linux]
//	name = "linux"
type profileFile struct {
	Profiles map[string]condition.Criteria `toml:"profiles" yaml:"profiles"`
}

// LoadProfiles reads named activation profiles from a TOML or YAML file,
// chosen by file extension. Family tokens are checked against the registry
// up front so a typo fails at load time instead of at evaluation.
func LoadProfiles(path string) (map[string]condition.Criteria, error) {
	var pf profileFile
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &pf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile file extension %q, want .toml, .yaml or .yml", ext)
	}
	if len(pf.Profiles) == 0 {
		return nil, fmt.Errorf("%s defines no profiles", path)
	}
	for name, c := range pf.Profiles {
		if c.Family != "" && !family.IsValid(family.Family(strings.ToLower(c.Family))) {
			return nil, fmt.Errorf("profile %q: unknown family %q", name, c.Family)
		}
	}
	return pf.Profiles, nil
}
