// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

// FileContents is a string containing the commented example config for
// corectl.
const FileContents = `[Application Options]

; ------------------------------------------------------------------------------
; Network settings
; ------------------------------------------------------------------------------

; Use testnet.
; testnet=1

; Use signet.
; signet=1

; Use the regression test network.
; regtest=1

; Connect via a SOCKS5 proxy.
; proxy=127.0.0.1:9050
; proxyuser=
; proxypass=


; ------------------------------------------------------------------------------
; RPC server options
; ------------------------------------------------------------------------------

; The node to connect to.  The default port of the selected network is used
; when none is given: 8332 for mainnet, 18332 for testnet, 38332 for signet
; and 18443 for regtest.
; rpcserver=localhost

; Username and password to authenticate with.  The password - prompts for it
; on the terminal.
; rpcuser=
; rpcpass=

; Without a username the cookie file of the node is read.  It is looked up in
; the data directory of the node, under the subdirectory of the network.
; datadir=~/.bitcoin                                ; Unix
; datadir=$APPDATA/Bitcoin                          ; Windows
; datadir=~/Library/Application Support/Bitcoin     ; macOS
; rpccookiefile=~/.bitcoin/regtest/.cookie

; Connect over TLS, e.g. through a reverse proxy, validating the server with
; the given certificate chain.
; tls=1
; rpccert=

; Send wallet commands to the named wallet of a multi-wallet node.
; wallet=

; Timeout of a single request.
; timeout=5m


; ------------------------------------------------------------------------------
; Debug
; ------------------------------------------------------------------------------

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical}
; debuglevel=warn

; Directory of the log files.
; logdir=~/.corectl/logs
`
