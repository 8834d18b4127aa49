// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import "fmt"

// irregularKeys maps the key names bitcoind uses on the wire that do not
// follow snake_case to their canonical form.  Keys that are already
// lower-case single words (txid, blockhash, walletconflicts, ...) are
// canonical as they are and therefore not listed.
//
// The table is closed: it encodes the historical naming quirks of the remote
// API and is never modified after package initialization.
var irregularKeys = map[string]string{
	"bip125-replaceable":     "bip125_replaceable",
	"scriptPubKey":           "script_pub_key",
	"reqSigs":                "req_sigs",
	"nTx":                    "n_tx",
	"fee reason":             "fee_reason",
	"redeemScript":           "redeem_script",
	"witnessScript":          "witness_script",
	"scriptSig":              "script_sig",
	"involvesWatchonly":      "involves_watchonly",
	"versionHex":             "version_hex",
	"effective-feerate":      "effective_feerate",
	"effective-includes":     "effective_includes",
	"reject-reason":          "reject_reason",
	"package-error":          "package_error",
	"other-wtxid":            "other_wtxid",
	"tx-results":             "tx_results",
	"replaced-transactions":  "replaced_transactions",
	"changeAddress":          "change_address",
	"changePosition":         "change_position",
	"includeWatching":        "include_watching",
	"lockUnspents":           "lock_unspents",
	"feeRate":                "fee_rate_btc_kvb",
	"subtractFeeFromOutputs": "subtract_fee_from_outputs",
	"hdmasterkeyid":          "hd_master_key_id",
	"hdMasterKeyId":          "hd_master_key_id",
}

func init() {
	// Two irregular spellings may share a canonical key only when they are
	// historical aliases of the same field, which is the case for the
	// master key id.  Everything else must be unique so normalization never
	// merges unrelated fields.
	aliases := map[string]bool{"hd_master_key_id": true}
	seen := make(map[string]string, len(irregularKeys))
	for from, to := range irregularKeys {
		if _, ok := irregularKeys[to]; ok {
			panic(fmt.Sprintf("canonical key %q is also an irregular "+
				"key", to))
		}
		if prev, ok := seen[to]; ok && !aliases[to] {
			panic(fmt.Sprintf("irregular keys %q and %q both map "+
				"to %q", prev, from, to))
		}
		seen[to] = from
	}
}

// CanonicalKey returns the canonical snake_case name of a wire key.  Keys
// that are not in the table of irregular names are returned unchanged.
func CanonicalKey(key string) string {
	if canonical, ok := irregularKeys[key]; ok {
		return canonical
	}
	return key
}

// NormalizeKeys returns a copy of m where every irregular key is renamed to
// its canonical form.  Values are not modified.  When m holds both an
// irregular key and its canonical spelling the canonical entry wins, which
// keeps the function idempotent.  Among several aliases of one canonical key
// the spelling that sorts first wins.
func NormalizeKeys(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}

	var renamed map[string]string
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		canonical := CanonicalKey(k)
		if canonical != k {
			if _, ok := m[canonical]; ok {
				continue
			}
			if prev, ok := renamed[canonical]; ok && prev < k {
				continue
			}
			if renamed == nil {
				renamed = make(map[string]string)
			}
			renamed[canonical] = k
		}
		out[canonical] = v
	}
	return out
}

// normalizeTree applies NormalizeKeys to every object found in v, descending
// into nested objects and arrays.  Scalars are returned as they are.
func normalizeTree(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := NormalizeKeys(t)
		for k, child := range m {
			m[k] = normalizeTree(child)
		}
		return m

	case []interface{}:
		out := make([]interface{}, len(t))
		for i, child := range t {
			out[i] = normalizeTree(child)
		}
		return out

	default:
		return v
	}
}
