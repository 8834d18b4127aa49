// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sampleconfig provides a single constant that contains the contents of
the sample configuration file for corectl.  It is written the first time
corectl runs so the generated configuration file not only includes the
credentials taken from the node configuration, but also documents the other
options.
*/
package sampleconfig
