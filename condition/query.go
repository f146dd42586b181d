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

package condition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/osfamily/hostenv"
)

// ErrEmptyValue is returned by the Query setters when given an empty string.
var ErrEmptyValue = errors.New("empty value")

// Query accumulates criteria through setters and evaluates them against the
// process environment. It is a declarative convenience over Matches for
// callers that build a condition field by field. Each Query is an
// independent value; it is not meant to be mutated from multiple goroutines.
type Query struct {
	crit Criteria
}

// NewQuery returns a Query with no criteria set. Evaluating it as-is yields
// false.
func NewQuery() *Query {
	return &Query{}
}

// SetFamily stores the family criterion, lowercased. The token is not
// validated here; an unknown family surfaces as family.ErrUnknownFamily
// from Evaluate. Probe untrusted tokens with family.IsValid first.
func (q *Query) SetFamily(f string) error {
	if f == "" {
		return fmt.Errorf("%w for family", ErrEmptyValue)
	}
	q.crit.Family = strings.ToLower(f)
	return nil
}

// SetName stores the OS name criterion, lowercased.
func (q *Query) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w for name", ErrEmptyValue)
	}
	q.crit.Name = strings.ToLower(name)
	return nil
}

// SetArch stores the architecture criterion, lowercased.
func (q *Query) SetArch(arch string) error {
	if arch == "" {
		return fmt.Errorf("%w for arch", ErrEmptyValue)
	}
	q.crit.Arch = strings.ToLower(arch)
	return nil
}

// SetVersion stores the version criterion, lowercased.
func (q *Query) SetVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w for version", ErrEmptyValue)
	}
	q.crit.Version = strings.ToLower(version)
	return nil
}

// Evaluate runs the accumulated criteria against the environment the
// process runs in.
func (q *Query) Evaluate() (bool, error) {
	return Matches(q.crit, hostenv.Current())
}

// EvaluateOn runs the accumulated criteria against an explicit snapshot.
func (q *Query) EvaluateOn(snap hostenv.Snapshot) (bool, error) {
	return Matches(q.crit, snap)
}
