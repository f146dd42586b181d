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

package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/osfamily/binary/cli"
	"github.com/google/osfamily/condition"
)

func TestValidateCheckFlags(t *testing.T) {
	testCases := []struct {
		desc    string
		flags   *cli.Flags
		wantErr error
	}{
		{
			desc:    "no criteria",
			flags:   &cli.Flags{},
			wantErr: cmpopts.AnyError,
		},
		{
			desc:  "family only",
			flags: &cli.Flags{Family: "unix"},
		},
		{
			desc:  "uppercase family token",
			flags: &cli.Flags{Family: "Windows"},
		},
		{
			desc:    "unknown family",
			flags:   &cli.Flags{Family: "linux"},
			wantErr: cmpopts.AnyError,
		},
		{
			desc:  "name only",
			flags: &cli.Flags{Name: "linux"},
		},
		{
			desc:  "arch and version",
			flags: &cli.Flags{Arch: "amd64", Version: "10.0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := cli.ValidateCheckFlags(tc.flags)
			if !cmp.Equal(err, tc.wantErr, cmpopts.EquateErrors()) {
				t.Errorf("cli.ValidateCheckFlags(%+v) error: %v, want: %v", tc.flags, err, tc.wantErr)
			}
		})
	}
}

func TestValidateActivateFlags(t *testing.T) {
	if err := cli.ValidateActivateFlags(&cli.Flags{}); err == nil {
		t.Error("cli.ValidateActivateFlags without -profiles returned no error")
	}
	if err := cli.ValidateActivateFlags(&cli.Flags{ProfilesFile: "p.toml"}); err != nil {
		t.Errorf("cli.ValidateActivateFlags with -profiles returned error: %v", err)
	}
}

func writeProfileFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadProfilesTOML(t *testing.T) {
	path := writeProfileFile(t, "build.toml", `
[profiles.windows-x64]
family = "windows"
arch = "amd64"

[profiles.linux]
name = "linux"
`)
	got, err := cli.LoadProfiles(path)
	if err != nil {
		t.Fatalf("cli.LoadProfiles(%s) returned error: %v", path, err)
	}
	want := map[string]condition.Criteria{
		"windows-x64": {Family: "windows", Arch: "amd64"},
		"linux":       {Name: "linux"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cli.LoadProfiles(%s) diff (-want +got):\n%s", path, diff)
	}
}

func TestLoadProfilesYAML(t *testing.T) {
	path := writeProfileFile(t, "build.yaml", `
profiles:
  mac:
    family: mac
  zos-posix:
    family: z/os
    version: "2.5"
`)
	got, err := cli.LoadProfiles(path)
	if err != nil {
		t.Fatalf("cli.LoadProfiles(%s) returned error: %v", path, err)
	}
	want := map[string]condition.Criteria{
		"mac":       {Family: "mac"},
		"zos-posix": {Family: "z/os", Version: "2.5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cli.LoadProfiles(%s) diff (-want +got):\n%s", path, diff)
	}
}

func TestLoadProfilesErrors(t *testing.T) {
	testCases := []struct {
		desc    string
		name    string
		content string
	}{
		{
			desc:    "unsupported extension",
			name:    "build.json",
			content: `{}`,
		},
		{
			desc:    "no profiles",
			name:    "empty.toml",
			content: ``,
		},
		{
			desc: "unknown family fails at load time",
			name: "bad.toml",
			content: `
[profiles.p]
family = "linux"
`,
		},
		{
			desc:    "malformed toml",
			name:    "malformed.toml",
			content: `profiles = [`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			path := writeProfileFile(t, tc.name, tc.content)
			if _, err := cli.LoadProfiles(path); err == nil {
				t.Errorf("cli.LoadProfiles(%s) returned no error", path)
			}
		})
	}
}
