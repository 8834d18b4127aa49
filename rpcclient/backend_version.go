// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/corejson/btcjson"
)

// BackendVersion represents the version of the backend the client is currently
// connected to.
type BackendVersion uint8

const (
	// BitcoindPre19 represents a bitcoind version before 0.19.0.
	BitcoindPre19 BackendVersion = iota

	// BitcoindPre21 represents a bitcoind version equal to or greater than
	// 0.19.0 and smaller than 0.21.0.
	BitcoindPre21

	// BitcoindPre22 represents a bitcoind version equal to or greater than
	// 0.21.0 and smaller than 22.0.0.
	BitcoindPre22

	// BitcoindPre24 represents a bitcoind version equal to or greater than
	// 22.0.0 and smaller than 24.0.0.
	BitcoindPre24

	// BitcoindPre25 represents a bitcoind version equal to or greater than
	// 24.0.0 and smaller than 25.0.0.
	BitcoindPre25

	// BitcoindPre28 represents a bitcoind version equal to or greater than
	// 25.0.0 and smaller than 28.0.0.
	BitcoindPre28

	// BitcoindPost28 represents a bitcoind version equal to or greater than
	// 28.0.0.
	BitcoindPost28
)

// String returns a human-readable backend version.
func (b BackendVersion) String() string {
	switch b {
	case BitcoindPre19:
		return "bitcoind 0.19 and below"

	case BitcoindPre21:
		return "bitcoind v0.19.0-v0.21.0"

	case BitcoindPre22:
		return "bitcoind v0.21.0-v22.0.0"

	case BitcoindPre24:
		return "bitcoind v22.0.0-v24.0.0"

	case BitcoindPre25:
		return "bitcoind v24.0.0-v25.0.0"

	case BitcoindPre28:
		return "bitcoind v25.0.0-v28.0.0"

	case BitcoindPost28:
		return "bitcoind v28.0.0 and above"

	default:
		return "unknown"
	}
}

// SupportsDescriptors reports whether the backend knows descriptor wallets
// and the importdescriptors call.
func (b BackendVersion) SupportsDescriptors() bool {
	return b >= BitcoindPre22
}

const (
	// bitcoindVersionPrefix specifies the prefix included in every bitcoind
	// version exposed through GetNetworkInfo.
	bitcoindVersionPrefix = "/Satoshi:"

	// bitcoindVersionSuffix specifies the suffix included in every bitcoind
	// version exposed through GetNetworkInfo.
	bitcoindVersionSuffix = "/"
)

// versionThresholds maps the lowest numeric version of every backend version
// above BitcoindPre19, in ascending order.
var versionThresholds = []struct {
	min     int
	version BackendVersion
}{
	{versionNumber(0, 19, 0), BitcoindPre21},
	{versionNumber(0, 21, 0), BitcoindPre22},
	{versionNumber(22, 0, 0), BitcoindPre24},
	{versionNumber(24, 0, 0), BitcoindPre25},
	{versionNumber(25, 0, 0), BitcoindPre28},
	{versionNumber(28, 0, 0), BitcoindPost28},
}

// versionNumber orders the pre-22 "0.minor.patch" scheme below the later
// "major.minor.patch" one.
func versionNumber(major, minor, patch int) int {
	if major == 0 {
		return minor*100 + patch
	}
	return major*10000 + minor*100 + patch
}

// parseBitcoindVersion parses the bitcoind version from its string
// representation, e.g. "/Satoshi:27.0.0/".  Suffixes such as a release
// candidate tag or a comment are ignored.
func parseBitcoindVersion(version string) BackendVersion {
	// Trim the version of its prefix and suffix to determine the
	// appropriate version number.
	version = strings.TrimPrefix(
		strings.TrimSuffix(version, bitcoindVersionSuffix),
		bitcoindVersionPrefix,
	)
	if i := strings.IndexAny(version, "(/-"); i >= 0 {
		version = version[:i]
	}

	var parts [3]int
	for i, part := range strings.SplitN(version, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			break
		}
		parts[i] = n
	}
	number := versionNumber(parts[0], parts[1], parts[2])

	backend := BitcoindPre19
	for _, threshold := range versionThresholds {
		if number >= threshold.min {
			backend = threshold.version
		}
	}
	return backend
}

// BackendVersion retrieves the version of the backend the client is currently
// connected to.  The version is looked up with getnetworkinfo once and cached
// for the lifetime of the client.
func (c *Client) BackendVersion(ctx context.Context) (BackendVersion, error) {
	c.backend.mtx.Lock()
	defer c.backend.mtx.Unlock()

	if c.backend.version != nil {
		return *c.backend.version, nil
	}

	var info btcjson.GetNetworkInfoResult
	err := c.Call(ctx, btcjson.NewGetNetworkInfoCmd(), &info)
	if err != nil {
		return 0, fmt.Errorf("unable to detect backend version: %w", err)
	}

	version := parseBitcoindVersion(info.SubVersion)
	c.backend.version = &version
	log.Debugf("Detected %v (%s)", version, info.SubVersion)

	return version, nil
}

// requireDescriptors fails with ErrBackendVersion when the backend does not
// support descriptor wallets.
func (c *Client) requireDescriptors(ctx context.Context) error {
	version, err := c.BackendVersion(ctx)
	if err != nil {
		return err
	}
	if !version.SupportsDescriptors() {
		return fmt.Errorf("%w: %v does not support descriptor wallets",
			ErrBackendVersion, version)
	}
	return nil
}
