// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// GitCommit is set in the build script at compile time
var GitCommit string

// String returns the human readable version line, including [commit] when it
// is set.
func String(commit string) string {
	format := "%s [module-format=%d, bundle-codec=%d"
	args := []interface{}{
		Current,
		ModuleFormat,
		BundleCodec,
	}
	if commit != "" {
		format += ", commit=%s"
		args = append(args, commit)
	}
	format += "]\n"
	return fmt.Sprintf(format, args...)
}
