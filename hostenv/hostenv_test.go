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

package hostenv_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/osfamily/hostenv"
)

func TestNewLowercases(t *testing.T) {
	got := hostenv.New("Windows 10", "AMD64", "10.0.19045", ";")
	want := hostenv.Snapshot{
		Name:              "windows 10",
		Arch:              "amd64",
		Version:           "10.0.19045",
		PathListSeparator: ";",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("hostenv.New() diff (-want +got):\n%s", diff)
	}
}

func TestCurrentIsIdempotent(t *testing.T) {
	first := hostenv.Current()
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, hostenv.Current()); diff != "" {
			t.Fatalf("hostenv.Current() changed between calls, diff (-first +later):\n%s", diff)
		}
	}
}

func TestCurrentValues(t *testing.T) {
	snap := hostenv.Current()
	if snap.Name == "" {
		t.Error("hostenv.Current().Name is empty")
	}
	if snap.Name != strings.ToLower(snap.Name) {
		t.Errorf("hostenv.Current().Name = %q, want lowercase", snap.Name)
	}
	if snap.Arch == "" {
		t.Error("hostenv.Current().Arch is empty")
	}
	if want := string(os.PathListSeparator); snap.PathListSeparator != want {
		t.Errorf("hostenv.Current().PathListSeparator = %q, want %q", snap.PathListSeparator, want)
	}
}
