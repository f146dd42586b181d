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

// Package checkrunner provides the subcommand implementations for the
// osfamily binary and returns their process exit codes.
package checkrunner

import (
	"fmt"
	"slices"

	"github.com/google/osfamily"
	"github.com/google/osfamily/binary/cli"
	"github.com/google/osfamily/condition"
	"github.com/google/osfamily/hostenv"
	"github.com/google/osfamily/log"
	"github.com/google/osfamily/version"
)

// Exit codes: 0 match / any profile active, 1 no match, 2 usage or
// classification error.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func setup(flags *cli.Flags) {
	if flags.Verbose {
		log.SetLogger(&log.DefaultLogger{Verbose: true})
	}
}

// RunCurrent prints the current environment snapshot and its resolved
// family.
func RunCurrent(flags *cli.Flags) int {
	if flags.PrintVersion {
		log.Infof("osfamily v%s", version.CLIVersion)
		return exitMatch
	}
	setup(flags)
	snap := hostenv.Current()
	fam, ok := osfamily.CurrentFamily()
	if !ok {
		log.Warnf("No registered family matched this host; treating as unsupported platform")
		fam = "<none>"
	}
	fmt.Printf("family: %s\n", fam)
	fmt.Printf("name: %s\n", snap.Name)
	fmt.Printf("arch: %s\n", snap.Arch)
	fmt.Printf("version: %s\n", snap.Version)
	if !ok {
		return exitNoMatch
	}
	return exitMatch
}

// RunCheck evaluates the criteria flags against the current environment.
func RunCheck(flags *cli.Flags) int {
	setup(flags)
	if err := cli.ValidateCheckFlags(flags); err != nil {
		log.Errorf("Invalid check flags: %v", err)
		return exitError
	}
	ok, err := condition.Matches(flags.Criteria(), hostenv.Current())
	if err != nil {
		log.Errorf("Evaluating criteria: %v", err)
		return exitError
	}
	if !ok {
		log.Debugf("Criteria %+v did not match %+v", flags.Criteria(), hostenv.Current())
		return exitNoMatch
	}
	return exitMatch
}

// RunActivate loads an activation profile file and prints the names of the
// profiles whose criteria match the current environment, one per line.
func RunActivate(flags *cli.Flags) int {
	setup(flags)
	if err := cli.ValidateActivateFlags(flags); err != nil {
		log.Errorf("Invalid activate flags: %v", err)
		return exitError
	}
	profiles, err := cli.LoadProfiles(flags.ProfilesFile)
	if err != nil {
		log.Errorf("Loading profiles: %v", err)
		return exitError
	}
	log.Debugf("Loaded %d profiles from %s", len(profiles), flags.ProfilesFile)

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	active := 0
	snap := hostenv.Current()
	for _, name := range names {
		ok, err := condition.Matches(profiles[name], snap)
		if err != nil {
			// Family tokens were validated at load time.
			log.Errorf("Evaluating profile %q: %v", name, err)
			return exitError
		}
		if ok {
			fmt.Println(name)
			active++
		}
	}
	if active == 0 {
		return exitNoMatch
	}
	return exitMatch
}
