// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// Semantic is a major.minor.patch version.
type Semantic struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// The only difference here between Semantic and Application is that Semantic
// prepends "v" rather than "<name>/".
func (s *Semantic) String() string {
	return fmt.Sprintf(
		"v%d.%d.%d",
		s.Major,
		s.Minor,
		s.Patch,
	)
}

// Compare returns a positive number if s > o, 0 if s == o, or a negative
// number if s < o.
func (s *Semantic) Compare(o *Semantic) int {
	if s.Major != o.Major {
		return s.Major - o.Major
	}
	if s.Minor != o.Minor {
		return s.Minor - o.Minor
	}
	return s.Patch - o.Patch
}

// Application is a Semantic version of a named client.
type Application struct {
	Name  string `json:"name"`
	Major int    `json:"major"`
	Minor int    `json:"minor"`
	Patch int    `json:"patch"`
}

func (a *Application) String() string {
	return fmt.Sprintf(
		"%s/%d.%d.%d",
		a.Name,
		a.Major,
		a.Minor,
		a.Patch,
	)
}

func (a *Application) Semantic() *Semantic {
	return &Semantic{
		Major: a.Major,
		Minor: a.Minor,
		Patch: a.Patch,
	}
}

// Compare ignores the application name.
func (a *Application) Compare(o *Application) int {
	return a.Semantic().Compare(o.Semantic())
}
