// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"testing"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestCanonicalKey tests the irregular wire keys map to their canonical
// names while regular keys pass through.
func TestCanonicalKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"bip125-replaceable", "bip125_replaceable"},
		{"scriptPubKey", "script_pub_key"},
		{"reqSigs", "req_sigs"},
		{"nTx", "n_tx"},
		{"fee reason", "fee_reason"},
		{"redeemScript", "redeem_script"},
		{"witnessScript", "witness_script"},
		{"scriptSig", "script_sig"},
		{"involvesWatchonly", "involves_watchonly"},
		{"versionHex", "version_hex"},
		{"effective-feerate", "effective_feerate"},
		{"effective-includes", "effective_includes"},
		{"reject-reason", "reject_reason"},
		{"package-error", "package_error"},
		{"other-wtxid", "other_wtxid"},
		{"tx-results", "tx_results"},
		{"replaced-transactions", "replaced_transactions"},
		{"changeAddress", "change_address"},
		{"changePosition", "change_position"},
		{"includeWatching", "include_watching"},
		{"lockUnspents", "lock_unspents"},
		{"feeRate", "fee_rate_btc_kvb"},
		{"subtractFeeFromOutputs", "subtract_fee_from_outputs"},
		{"hdmasterkeyid", "hd_master_key_id"},
		{"hdMasterKeyId", "hd_master_key_id"},

		// Regular keys are already canonical.
		{"txid", "txid"},
		{"walletconflicts", "walletconflicts"},
		{"fee_rate", "fee_rate"},
		{"", ""},
	}

	for i, test := range tests {
		got := btcjson.CanonicalKey(test.in)
		if got != test.want {
			t.Errorf("CanonicalKey #%d (%q)\n got: %q want: %q", i,
				test.in, got, test.want)
		}
	}
}

// TestNormalizeKeys tests renaming of a flat map.
func TestNormalizeKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   map[string]interface{}
		want map[string]interface{}
	}{
		{
			name: "nil",
			in:   nil,
			want: nil,
		},
		{
			name: "empty",
			in:   map[string]interface{}{},
			want: map[string]interface{}{},
		},
		{
			name: "irregular and regular keys",
			in: map[string]interface{}{
				"txid":               "ab",
				"bip125-replaceable": "no",
				"scriptPubKey":       "0014",
			},
			want: map[string]interface{}{
				"txid":               "ab",
				"bip125_replaceable": "no",
				"script_pub_key":     "0014",
			},
		},
		{
			name: "canonical entry wins",
			in: map[string]interface{}{
				"feeRate":          0.0001,
				"fee_rate_btc_kvb": 0.0002,
			},
			want: map[string]interface{}{
				"fee_rate_btc_kvb": 0.0002,
			},
		},
		{
			name: "aliases resolve to the first spelling",
			in: map[string]interface{}{
				"hdmasterkeyid": "a",
				"hdMasterKeyId": "b",
			},
			want: map[string]interface{}{
				"hd_master_key_id": "b",
			},
		},
		{
			name: "nested values untouched",
			in: map[string]interface{}{
				"scriptSig": map[string]interface{}{"reqSigs": 1},
			},
			want: map[string]interface{}{
				"script_sig": map[string]interface{}{"reqSigs": 1},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// Repeat since the outcome must not depend on map
			// iteration order.
			for i := 0; i < 20; i++ {
				require.Equal(t, test.want,
					btcjson.NormalizeKeys(test.in))
			}
		})
	}
}

// keyGen draws keys from the irregular table, their canonical forms and a few
// regular names.
var keyGen = rapid.SampledFrom([]string{
	"bip125-replaceable", "bip125_replaceable", "scriptPubKey",
	"script_pub_key", "fee reason", "fee_reason", "feeRate",
	"fee_rate_btc_kvb", "fee_rate", "hdmasterkeyid", "hdMasterKeyId",
	"hd_master_key_id", "changeAddress", "txid", "amount", "label",
})

// TestNormalizeKeysProperties checks idempotency and that the output never
// holds an irregular key.
func TestNormalizeKeysProperties(t *testing.T) {
	t.Parallel()

	t.Run("idempotent", rapid.MakeCheck(func(t *rapid.T) {
		in := rapid.MapOf(keyGen, rapid.Int()).Draw(t, "fields")
		m := make(map[string]interface{}, len(in))
		for k, v := range in {
			m[k] = v
		}

		once := btcjson.NormalizeKeys(m)
		twice := btcjson.NormalizeKeys(once)
		require.Equal(t, once, twice)
	}))

	t.Run("only_canonical_keys", rapid.MakeCheck(func(t *rapid.T) {
		in := rapid.MapOf(keyGen, rapid.String()).Draw(t, "fields")
		m := make(map[string]interface{}, len(in))
		for k, v := range in {
			m[k] = v
		}

		for k := range btcjson.NormalizeKeys(m) {
			if btcjson.CanonicalKey(k) != k {
				t.Fatalf("irregular key %q survived", k)
			}
		}
	}))

	t.Run("deterministic", rapid.MakeCheck(func(t *rapid.T) {
		in := rapid.MapOf(keyGen, rapid.Int()).Draw(t, "fields")
		m := make(map[string]interface{}, len(in))
		for k, v := range in {
			m[k] = v
		}

		want := btcjson.NormalizeKeys(m)
		for i := 0; i < 5; i++ {
			require.Equal(t, want, btcjson.NormalizeKeys(m))
		}
	}))

	t.Run("input_untouched", rapid.MakeCheck(func(t *rapid.T) {
		in := rapid.MapOf(keyGen, rapid.Int()).Draw(t, "fields")
		m := make(map[string]interface{}, len(in))
		for k, v := range in {
			m[k] = v
		}
		before := len(m)

		btcjson.NormalizeKeys(m)
		require.Len(t, m, before)
	}))
}
