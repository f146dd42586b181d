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

package hostenv

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows/registry"
)

// detect reads the product name and version from the CurrentVersion registry
// key, the same key winver uses. Falls back to the runtime values when the
// key can't be read, e.g. under a restricted token.
func detect() (name, arch, version string) {
	name, version = readCurrentVersionKey()
	if name == "" {
		name = runtime.GOOS
	}
	return name, runtime.GOARCH, version
}

func readCurrentVersionKey() (product, version string) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return "", ""
	}
	defer k.Close()

	if p, _, err := k.GetStringValue("ProductName"); err == nil {
		product = p
	}

	// Windows 10 and later store the real major/minor as DWORDs; the
	// CurrentVersion string value is frozen at 6.3 for compatibility.
	major, _, errMajor := k.GetIntegerValue("CurrentMajorVersionNumber")
	minor, _, errMinor := k.GetIntegerValue("CurrentMinorVersionNumber")
	if errMajor == nil && errMinor == nil {
		version = fmt.Sprintf("%d.%d", major, minor)
	} else if v, _, err := k.GetStringValue("CurrentVersion"); err == nil {
		version = v
	}
	if build, _, err := k.GetStringValue("CurrentBuildNumber"); err == nil && version != "" {
		version += "." + build
	}
	return product, version
}
