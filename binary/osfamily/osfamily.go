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

// The osfamily command wraps around the osfamily library to answer platform
// questions from shell scripts and build tooling.
//
//	osfamily current            print the host snapshot and its family
//	osfamily check -family unix -arch amd64
//	                            exit 0 if the host matches, 1 if not
//	osfamily activate -profiles build.toml
//	                            print the activation profiles matching the
//	                            host, exit 0 if any did
package main

import (
	"flag"
	"os"

	"github.com/google/osfamily/binary/checkrunner"
	"github.com/google/osfamily/binary/cli"
	"github.com/google/osfamily/log"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var subcommand string
	if len(args) >= 2 {
		subcommand = args[1]
	}
	switch subcommand {
	case "check":
		flags, err := parseCheckFlags(args[2:])
		if err != nil {
			log.Errorf("Error parsing CLI args: %v", err)
			return 2
		}
		return checkrunner.RunCheck(flags)
	case "activate":
		flags, err := parseActivateFlags(args[2:])
		if err != nil {
			log.Errorf("Error parsing CLI args: %v", err)
			return 2
		}
		return checkrunner.RunActivate(flags)
	default:
		// Assume 'current' if the subcommand is not recognized/specified.
		cmdArgs := args[1:]
		if subcommand == "current" {
			cmdArgs = args[2:]
		}
		flags, err := parseCurrentFlags(cmdArgs)
		if err != nil {
			log.Errorf("Error parsing CLI args: %v", err)
			return 2
		}
		return checkrunner.RunCurrent(flags)
	}
}

func parseCheckFlags(args []string) (*cli.Flags, error) {
	fs := flag.NewFlagSet("osfamily check", flag.ExitOnError)
	family := fs.String("family", "", `The OS family to check for, e.g. "windows", "unix", "mac", "z/os"`)
	name := fs.String("name", "", "The exact OS name to check for, case-insensitive")
	arch := fs.String("arch", "", "The exact machine architecture to check for, case-insensitive")
	version := fs.String("version", "", "The exact OS version to check for, case-insensitive")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cli.Flags{
		Family:  *family,
		Name:    *name,
		Arch:    *arch,
		Version: *version,
		Verbose: *verbose,
	}, nil
}

func parseActivateFlags(args []string) (*cli.Flags, error) {
	fs := flag.NewFlagSet("osfamily activate", flag.ExitOnError)
	profiles := fs.String("profiles", "", "Path of the activation profile file (.toml, .yaml or .yml)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cli.Flags{
		ProfilesFile: *profiles,
		Verbose:      *verbose,
	}, nil
}

func parseCurrentFlags(args []string) (*cli.Flags, error) {
	fs := flag.NewFlagSet("osfamily current", flag.ExitOnError)
	printVersion := fs.Bool("version", false, "Print the CLI version and exit")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cli.Flags{
		PrintVersion: *printVersion,
		Verbose:      *verbose,
	}, nil
}
