// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import "net/url"

// Cmd is implemented by every request type of this package.  A Cmd knows the
// RPC method it targets, how to validate its own fields and how to lay them
// out in the positional parameter order of that method.
type Cmd interface {
	// Method returns the name of the RPC method, e.g. "getbalance".
	Method() string

	// Validate checks every field of the command and returns a
	// ValidationErrors value describing all failures at once.
	Validate() error

	// Params returns the positional parameters in the documented order of
	// the RPC method.  Absent optional parameters are nil.
	Params() []interface{}
}

// WalletCmd is implemented by commands that may be routed to a single
// wallet of a multi-wallet node.
type WalletCmd interface {
	Cmd

	// WalletPath returns the HTTP path the command must be sent to.
	WalletPath() string
}

// WalletScope is embedded by wallet level commands.  When WalletName is set
// the request is sent to /wallet/<name> instead of the node root.
type WalletScope struct {
	WalletName *string `json:"wallet_name,omitempty"`
}

// WalletPath returns "/wallet/<name>" for a scoped command and "/" otherwise.
func (w WalletScope) WalletPath() string {
	if w.WalletName == nil || *w.WalletName == "" {
		return "/"
	}
	return "/wallet/" + url.PathEscape(*w.WalletName)
}

// SetWallet scopes the command to the named wallet.
func (w *WalletScope) SetWallet(name string) {
	w.WalletName = &name
}

// validateScope reports a malformed wallet name.
func (w WalletScope) validateScope(v *validator) {
	v.optWalletName("wallet_name", w.WalletName)
}

// defaulter is implemented by commands and results with optional fields
// whose documented default must be materialized, so an omitted field and an
// explicitly defaulted one are indistinguishable on the wire.
type defaulter interface {
	setDefaults()
}

// fullParams is implemented by commands whose every positional parameter has
// a hard default and must always be sent, so trailing parameters are never
// trimmed.
type fullParams interface {
	keepAllParams()
}

// irregularInput is implemented by commands whose documented inputs use the
// node's irregular key casing, e.g. "changeAddress".  Their input maps are
// normalized before decoding.
type irregularInput interface {
	normalizeInput()
}

// Result is implemented by every result type of this package.
type Result interface {
	// Validate checks the parsed fields and returns a ValidationErrors
	// value describing all failures at once.
	Validate() error
}

// listResult is implemented by results whose payload is a JSON array.  The
// array is wrapped under the key returned by listKey before field decoding.
type listResult interface {
	Result
	listKey() string
}

// stringResult is implemented by results that may also be returned as a bare
// JSON string, such as a transaction id or a hex encoded transaction.
type stringResult interface {
	Result
	setString(s string)
}
