// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version holds the version of corectl and the User-Agent it sends.
package version

import "fmt"

// Semantic version of corectl.
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

// PreRelease is appended to the version after a hyphen.  Release builds
// clear it with:
// '-ldflags "-X github.com/btcsuite/corejson/internal/version.PreRelease="'
var PreRelease = "beta"

// String returns the version, e.g. "0.1.0-beta".
func String() string {
	v := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if PreRelease != "" {
		v += "-" + PreRelease
	}
	return v
}

// UserAgent returns the value sent in the User-Agent header of requests, e.g.
// "corejson/0.1.0-beta".
func UserAgent() string {
	return "corejson/" + String()
}
