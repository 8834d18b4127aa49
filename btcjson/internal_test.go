// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/*
This test file is part of the btcjson package rather than than the
btcjson_test package so it can bridge access to the internals to properly test
cases which are either not possible or can't reliably be tested via the public
interface. The functions are only exported while the tests are being run.
*/

// TstNumErrorCodes makes the internal numErrorCodes parameter available to the
// test package.
const TstNumErrorCodes = numErrorCodes

// TestCastError ensures mapstructure failures are turned into field errors
// of the right kind.
func TestCastError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		msg   string
		field string
		kind  ValidationKind
		text  string
	}{
		{
			name:  "type mismatch",
			msg:   "'minconf' expected type 'int64', got unconvertible type 'string', value: 'x'",
			field: "minconf",
			kind:  KindCast,
			text:  msgInvalid,
		},
		{
			name:  "nested type mismatch",
			msg:   "'requests[0].active' expected type 'bool', got unconvertible type 'string', value: 'yes'",
			field: "requests[0].active",
			kind:  KindCast,
			text:  msgInvalid,
		},
		{
			name:  "hook format failure",
			msg:   "error decoding 'requests[1].range': " + errDescriptorRange.Error(),
			field: "requests[1].range",
			kind:  KindFormat,
			text:  errDescriptorRange.Error(),
		},
		{
			name:  "fractional integer",
			msg:   "error decoding 'count': expected an integer, got 1.5",
			field: "count",
			kind:  KindCast,
			text:  "expected an integer, got 1.5",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			fe := castError(test.msg)
			require.Equal(t, test.field, fe.Field)
			require.Equal(t, test.kind, fe.Kind)
			require.Equal(t, test.text, fe.Message)
		})
	}
}

// TestTrimParams ensures only trailing absent parameters are dropped.
func TestTrimParams(t *testing.T) {
	t.Parallel()

	var nilStrings []string
	var nilPtr *int64

	require.Equal(t, []interface{}{}, trimParams([]interface{}{nil, nil}))
	require.Equal(t, []interface{}{"a", nil, int64(1)},
		trimParams([]interface{}{"a", nil, int64(1), nil, nilPtr}))
	require.Equal(t, []interface{}{"a"},
		trimParams([]interface{}{"a", nilStrings}))
	require.Equal(t, []interface{}{"a", []string{}},
		trimParams([]interface{}{"a", []string{}}))
}

// TestNormalizeTree ensures nested objects inside arrays are normalized.
func TestNormalizeTree(t *testing.T) {
	t.Parallel()

	in := map[string]interface{}{
		"vout": []interface{}{
			map[string]interface{}{
				"scriptPubKey": map[string]interface{}{
					"reqSigs": float64(1),
				},
			},
		},
		"fee reason": "Fallback fee",
	}
	want := map[string]interface{}{
		"vout": []interface{}{
			map[string]interface{}{
				"script_pub_key": map[string]interface{}{
					"req_sigs": float64(1),
				},
			},
		},
		"fee_reason": "Fallback fee",
	}
	require.Equal(t, want, normalizeTree(in))

	// The input is left untouched.
	require.Contains(t, in, "fee reason")
}

// TestWithDefaults ensures encoding never writes defaults into the caller's
// command.
func TestWithDefaults(t *testing.T) {
	t.Parallel()

	cmd := &GetBalanceCmd{}
	cp, err := withDefaults(cmd)
	require.NoError(t, err)
	require.Nil(t, cmd.MinConf)

	got := cp.(*GetBalanceCmd)
	require.Equal(t, "*", *got.Dummy)
	require.Equal(t, int64(0), *got.MinConf)
	require.Equal(t, false, *got.IncludeWatchOnly)
	require.Equal(t, true, *got.AvoidReuse)
}
