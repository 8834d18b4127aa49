// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// Address length bounds.  The lower bound matches the shortest legacy base58
// address, the upper bound the longest bech32m address.
const (
	minAddressLen = 26
	maxAddressLen = 90

	maxWalletNameLen = 64
)

var (
	base58Pattern     = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)
	bech32Pattern     = regexp.MustCompile(`^[a-z0-9]+$`)
	hexPattern        = regexp.MustCompile(`^[a-fA-F0-9]*$`)
	walletNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// Messages shared by the validators.
const (
	msgRequired   = "can't be blank"
	msgAddress    = "is not a valid Bitcoin address"
	msgInvalid    = "is invalid"
	msgWalletName = "is not a valid wallet name"
)

// Allowed value sets for inclusion checks.  They are read-only after package
// initialization.
var (
	// AddressTypes lists the address types accepted by getnewaddress and
	// getrawchangeaddress.
	AddressTypes = []string{"legacy", "p2sh-segwit", "bech32", "bech32m"}

	// EstimateModes lists the fee estimation modes.
	EstimateModes = []string{"unset", "economical", "conservative"}

	// SigHashTypes lists the signature hash types accepted when signing.
	SigHashTypes = []string{
		"ALL", "NONE", "SINGLE",
		"ALL|ANYONECANPAY", "NONE|ANYONECANPAY", "SINGLE|ANYONECANPAY",
	}

	// LabelPurposes lists the purposes accepted by listlabels.
	LabelPurposes = []string{"send", "receive"}
)

// IsValidAddress reports whether s looks like a Bitcoin address.  Only the
// length and character set are checked; checksum and network validation is
// left to the node.
func IsValidAddress(s string) bool {
	if len(s) < minAddressLen || len(s) > maxAddressLen {
		return false
	}
	return base58Pattern.MatchString(s) || bech32Pattern.MatchString(s)
}

// IsValidHex reports whether s is a hex string of exactly n characters.
func IsValidHex(s string, n int) bool {
	return len(s) == n && hexPattern.MatchString(s)
}

// IsValidWalletName reports whether name is acceptable as a wallet name.
func IsValidWalletName(name string) bool {
	if len(name) == 0 || len(name) > maxWalletNameLen {
		return false
	}
	if name == "." || name == ".." {
		return false
	}
	if strings.HasPrefix(name, "-") {
		return false
	}
	if strings.HasSuffix(name, "-") || strings.HasSuffix(name, ".") {
		return false
	}
	return walletNamePattern.MatchString(name)
}

// required records a failure when the string is empty.
func (v *validator) required(field, s string) bool {
	if s == "" {
		v.add(field, KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
		return false
	}
	return true
}

// requiredPtr records a failure when p is nil.  An empty string behind the
// pointer is a present value.
func (v *validator) requiredPtr(field string, p *string) bool {
	if p == nil {
		v.add(field, KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
		return false
	}
	return true
}

// requiredInt validates an integer field that must be present.
func (v *validator) requiredInt(field string, n *int64, b bound) {
	if n == nil {
		v.add(field, KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
		return
	}
	v.number(field, float64(*n), b)
}

// requiredList records a failure when the list is empty.
func (v *validator) requiredList(field string, n int) bool {
	if n == 0 {
		v.add(field, KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
		return false
	}
	return true
}

// address validates a required address field.
func (v *validator) address(field, s string) {
	if !v.required(field, s) {
		return
	}
	v.addressFormat(field, s)
}

// addressFormat validates the format of an address that is known to be
// present.
func (v *validator) addressFormat(field, s string) {
	if !IsValidAddress(s) {
		v.add(field, KindFormat, msgAddress, map[string]interface{}{
			"validation": "format",
			"min":        minAddressLen,
			"max":        maxAddressLen,
		})
	}
}

// hex validates a required fixed length hex field.
func (v *validator) hex(field, s string, n int) {
	if !v.required(field, s) {
		return
	}
	v.hexFormat(field, s, n)
}

// hexFormat validates the format of a hex string that is known to be
// present.
func (v *validator) hexFormat(field, s string, n int) {
	if len(s) != n {
		v.add(field, KindLength,
			fmt.Sprintf("should be %d character(s)", n),
			map[string]interface{}{"validation": "length", "is": n})
		return
	}
	if !hexPattern.MatchString(s) {
		v.add(field, KindFormat, "has invalid format",
			map[string]interface{}{"validation": "format", "count": n})
	}
}

// txid validates a required transaction id or block hash.
func (v *validator) txid(field, s string) {
	v.hex(field, s, 64)
}

// rawHex validates a required hex blob of arbitrary even length, such as a
// serialized transaction.
func (v *validator) rawHex(field, s string) {
	if !v.required(field, s) {
		return
	}
	if len(s)%2 != 0 || !hexPattern.MatchString(s) {
		v.add(field, KindFormat, "has invalid format",
			map[string]interface{}{"validation": "format"})
	}
}

// walletName validates a wallet name that is known to be present.
func (v *validator) walletName(field, name string) {
	if len(name) > maxWalletNameLen {
		v.add(field, KindLength,
			fmt.Sprintf("should be at most %d character(s)",
				maxWalletNameLen),
			map[string]interface{}{"validation": "length",
				"max": maxWalletNameLen})
		return
	}
	if !IsValidWalletName(name) {
		v.add(field, KindFormat, msgWalletName,
			map[string]interface{}{"validation": "format"})
	}
}

// optWalletName validates an optional wallet name.
func (v *validator) optWalletName(field string, name *string) {
	if name != nil {
		v.walletName(field, *name)
	}
}

// bound describes numeric limits.  A nil limit is not checked.
type bound struct {
	gt, gte, lt, lte *float64
}

func gt(n float64) bound     { return bound{gt: &n} }
func gte(n float64) bound    { return bound{gte: &n} }
func between(lo, hi float64) bound {
	return bound{gte: &lo, lte: &hi}
}

// number validates n against the given bounds.
func (v *validator) number(field string, n float64, b bound) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		v.add(field, KindNumber, "is not a number",
			map[string]interface{}{"validation": "number"})
		return
	}

	check := func(ok bool, kind string, limit float64, msg string) bool {
		if ok {
			return true
		}
		v.add(field, KindNumber, fmt.Sprintf(msg, trimFloat(limit)),
			map[string]interface{}{
				"validation": "number",
				"kind":       kind,
				"number":     limit,
			})
		return false
	}

	switch {
	case b.gt != nil && !check(n > *b.gt, "greater_than", *b.gt,
		"must be greater than %s"):
	case b.gte != nil && !check(n >= *b.gte, "greater_than_or_equal_to",
		*b.gte, "must be greater than or equal to %s"):
	case b.lt != nil && !check(n < *b.lt, "less_than", *b.lt,
		"must be less than %s"):
	case b.lte != nil && !check(n <= *b.lte, "less_than_or_equal_to",
		*b.lte, "must be less than or equal to %s"):
	}
}

// optInt validates an optional integer field.
func (v *validator) optInt(field string, n *int64, b bound) {
	if n != nil {
		v.number(field, float64(*n), b)
	}
}

// optFloat validates an optional float field.
func (v *validator) optFloat(field string, n *float64, b bound) {
	if n != nil {
		v.number(field, *n, b)
	}
}

// inclusion validates that s is one of the allowed values.
func (v *validator) inclusion(field, s string, allowed []string) {
	for _, a := range allowed {
		if s == a {
			return
		}
	}
	v.add(field, KindInclusion, msgInvalid, map[string]interface{}{
		"validation": "inclusion",
		"enum":       allowed,
	})
}

// optInclusion validates an optional enum field.
func (v *validator) optInclusion(field string, s *string, allowed []string) {
	if s != nil {
		v.inclusion(field, *s, allowed)
	}
}

// amount validates a BTC amount that must be strictly positive and
// representable in satoshis.
func (v *validator) amount(field string, btc float64) {
	amt, err := btcutil.NewAmount(btc)
	if err != nil {
		v.add(field, KindNumber, "is not a valid amount",
			map[string]interface{}{"validation": "number"})
		return
	}
	if amt > btcutil.MaxSatoshi {
		v.add(field, KindNumber,
			fmt.Sprintf("must be less than or equal to %v",
				btcutil.Amount(btcutil.MaxSatoshi)),
			map[string]interface{}{"validation": "number",
				"kind": "less_than_or_equal_to"})
		return
	}
	if amt <= 0 {
		v.add(field, KindNumber, "must be greater than 0",
			map[string]interface{}{"validation": "number",
				"kind": "greater_than", "number": 0})
	}
}

// indices validates a list of output indices: every index must be
// non-negative and appear only once.
func (v *validator) indices(field string, idx []int64) {
	seen := make(map[int64]struct{}, len(idx))
	for i, n := range idx {
		name := indexField(field, i)
		if n < 0 {
			v.add(name, KindNumber,
				"must be greater than or equal to 0",
				map[string]interface{}{"validation": "number",
					"kind": "greater_than_or_equal_to", "number": 0})
			continue
		}
		if _, ok := seen[n]; ok {
			v.add(name, KindCrossField, "is duplicated",
				map[string]interface{}{"validation": "unique"})
			continue
		}
		seen[n] = struct{}{}
	}
}

// trimFloat formats a bound without a trailing fraction when it is integral.
func trimFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
