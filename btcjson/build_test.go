// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"errors"
	"testing"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/stretchr/testify/require"
)

const (
	testAddr  = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	testAddr2 = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	testTxID  = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
)

// TestBuildFieldErrors ensures every failing field of an input map is
// reported with the expected kind.
func TestBuildFieldErrors(t *testing.T) {
	t.Parallel()

	type fieldKind struct {
		field string
		kind  btcjson.ValidationKind
	}

	tests := []struct {
		name   string
		method string
		fields map[string]interface{}
		want   []fieldKind
	}{
		{
			name:   "aggregated failures",
			method: "sendtoaddress",
			fields: map[string]interface{}{
				"address":       "not-an-address",
				"conf_target":   float64(2000),
				"estimate_mode": "fast",
			},
			want: []fieldKind{
				{"address", btcjson.KindFormat},
				{"amount", btcjson.KindRequired},
				{"conf_target", btcjson.KindNumber},
				{"estimate_mode", btcjson.KindInclusion},
			},
		},
		{
			name:   "unknown key",
			method: "getnewaddress",
			fields: map[string]interface{}{"labell": "x"},
			want: []fieldKind{
				{"labell", btcjson.KindUnknown},
			},
		},
		{
			name:   "string for integer",
			method: "getbalance",
			fields: map[string]interface{}{"minconf": "5"},
			want: []fieldKind{
				{"minconf", btcjson.KindCast},
			},
		},
		{
			name:   "fraction for integer",
			method: "getbalance",
			fields: map[string]interface{}{"minconf": 1.5},
			want: []fieldKind{
				{"minconf", btcjson.KindCast},
			},
		},
		{
			name:   "negative minconf",
			method: "getbalance",
			fields: map[string]interface{}{"minconf": float64(-1)},
			want: []fieldKind{
				{"minconf", btcjson.KindNumber},
			},
		},
		{
			name:   "wrong dummy",
			method: "getbalance",
			fields: map[string]interface{}{"dummy": "main"},
			want: []fieldKind{
				{"dummy", btcjson.KindInclusion},
			},
		},
		{
			name:   "fee rate with conf target",
			method: "sendtoaddress",
			fields: map[string]interface{}{
				"address":     testAddr,
				"amount":      0.1,
				"fee_rate":    float64(10),
				"conf_target": float64(6),
			},
			want: []fieldKind{
				{"fee_rate", btcjson.KindCrossField},
			},
		},
		{
			name:   "fee rate with estimate mode",
			method: "sendmany",
			fields: map[string]interface{}{
				"amounts":       map[string]interface{}{testAddr: 0.1},
				"fee_rate":      float64(10),
				"estimate_mode": "economical",
			},
			want: []fieldKind{
				{"fee_rate", btcjson.KindCrossField},
			},
		},
		{
			name:   "subtract fee from unknown address",
			method: "sendmany",
			fields: map[string]interface{}{
				"amounts":         map[string]interface{}{testAddr: 0.1},
				"subtractfeefrom": []interface{}{testAddr2},
			},
			want: []fieldKind{
				{"subtractfeefrom[0]", btcjson.KindCrossField},
			},
		},
		{
			name:   "zero amount",
			method: "sendtoaddress",
			fields: map[string]interface{}{
				"address": testAddr,
				"amount":  float64(0),
			},
			want: []fieldKind{
				{"amount", btcjson.KindNumber},
			},
		},
		{
			name:   "maxconf below minconf",
			method: "listunspent",
			fields: map[string]interface{}{
				"minconf": float64(10),
				"maxconf": float64(5),
			},
			want: []fieldKind{
				{"maxconf", btcjson.KindCrossField},
			},
		},
		{
			name:   "nested descriptor requests",
			method: "importdescriptors",
			fields: map[string]interface{}{
				"requests": []interface{}{
					map[string]interface{}{
						"desc":      "wpkh(tpub/0/*)",
						"timestamp": "now",
						"range":     []interface{}{float64(0), float64(100)},
					},
					map[string]interface{}{
						"timestamp": "later",
					},
					map[string]interface{}{
						"desc":      "wpkh(tpub/1/*)",
						"timestamp": float64(0),
						"internal":  true,
						"label":     "change",
					},
				},
			},
			want: []fieldKind{
				{"requests[1].desc", btcjson.KindRequired},
				{"requests[1].timestamp", btcjson.KindFormat},
				{"requests[2].label", btcjson.KindCrossField},
			},
		},
		{
			name:   "empty descriptor requests",
			method: "importdescriptors",
			fields: map[string]interface{}{
				"requests": []interface{}{},
			},
			want: []fieldKind{
				{"requests", btcjson.KindRequired},
			},
		},
		{
			name:   "bad wallet scope",
			method: "getwalletinfo",
			fields: map[string]interface{}{"wallet_name": "my wallet"},
			want: []fieldKind{
				{"wallet_name", btcjson.KindFormat},
			},
		},
		{
			name:   "passphrase timeout",
			method: "walletpassphrase",
			fields: map[string]interface{}{
				"passphrase": "secret",
				"timeout":    float64(100000001),
			},
			want: []fieldKind{
				{"timeout", btcjson.KindNumber},
			},
		},
		{
			name:   "missing label",
			method: "setlabel",
			fields: map[string]interface{}{"address": testAddr},
			want: []fieldKind{
				{"label", btcjson.KindRequired},
			},
		},
		{
			name:   "block height",
			method: "getblockhash",
			fields: map[string]interface{}{},
			want: []fieldKind{
				{"height", btcjson.KindRequired},
			},
		},
		{
			name:   "short txid",
			method: "gettransaction",
			fields: map[string]interface{}{"txid": "abcd"},
			want: []fieldKind{
				{"txid", btcjson.KindLength},
			},
		},
		{
			name:   "funding option combination",
			method: "fundrawtransaction",
			fields: map[string]interface{}{
				"hexstring": "0200",
				"options": map[string]interface{}{
					"feeRate":  0.0001,
					"fee_rate": float64(2),
				},
			},
			want: []fieldKind{
				{"options.fee_rate", btcjson.KindCrossField},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := btcjson.BuildCmd(test.method, test.fields)
			require.Error(t, err)
			require.Nil(t, cmd)
			require.True(t, errors.Is(err, btcjson.ErrValidation))

			verrs, ok := btcjson.AsValidationErrors(err)
			require.True(t, ok)
			for _, w := range test.want {
				require.Truef(t, verrs.Has(w.field, w.kind),
					"missing %s %s in %v", w.field, w.kind,
					verrs)
			}
			require.Len(t, verrs.Fields(), len(test.want),
				"unexpected fields %v", verrs.Fields())
		})
	}
}

// TestBuildResetsOnFailure ensures a failed build leaves the command zeroed.
func TestBuildResetsOnFailure(t *testing.T) {
	t.Parallel()

	cmd := btcjson.NewSendToAddressCmd(testAddr, 1000, nil, nil)
	err := btcjson.Build(cmd, map[string]interface{}{
		"address": "nope",
		"comment": "rent",
	})
	require.Error(t, err)
	require.Equal(t, &btcjson.SendToAddressCmd{}, cmd)
}

// TestBuildDefaults ensures omitted optional fields carry their documented
// defaults after a successful build.
func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	cmd := btcjson.MustBuildCmd("getbalance", nil).(*btcjson.GetBalanceCmd)
	require.Equal(t, "*", *cmd.Dummy)
	require.Equal(t, int64(0), *cmd.MinConf)
	require.False(t, *cmd.IncludeWatchOnly)
	require.True(t, *cmd.AvoidReuse)

	send := btcjson.MustBuildCmd("sendtoaddress", map[string]interface{}{
		"address": testAddr,
		"amount":  0.5,
	}).(*btcjson.SendToAddressCmd)
	require.Equal(t, btcjson.EstimateModeUnset, *send.EstimateMode)
	require.False(t, *send.SubtractFeeFromAmount)
	require.True(t, *send.AvoidReuse)
	require.False(t, *send.Verbose)
	require.Nil(t, send.ConfTarget)
	require.Nil(t, send.FeeRate)

	list := btcjson.MustBuildCmd("listunspent", nil).(*btcjson.ListUnspentCmd)
	require.Equal(t, int64(1), *list.MinConf)
	require.Equal(t, int64(9999999), *list.MaxConf)
	require.NotNil(t, list.Addresses)
	require.Empty(t, list.Addresses)
}

// TestBuildEmptyLabel ensures an empty label is a present value for setlabel.
func TestBuildEmptyLabel(t *testing.T) {
	t.Parallel()

	cmd, err := btcjson.BuildCmd("setlabel", map[string]interface{}{
		"address": testAddr,
		"label":   "",
	})
	require.NoError(t, err)

	setLabel := cmd.(*btcjson.SetLabelCmd)
	require.NotNil(t, setLabel.Label)
	require.Equal(t, "", *setLabel.Label)
}

// TestBuildScalars ensures the polymorphic scalars are decoded from their
// JSON forms.
func TestBuildScalars(t *testing.T) {
	t.Parallel()

	cmd := btcjson.MustBuildCmd("importdescriptors", map[string]interface{}{
		"requests": []interface{}{
			map[string]interface{}{
				"desc":      "wpkh(tpub/0/*)",
				"timestamp": "now",
				"range":     []interface{}{float64(0), float64(100)},
			},
			map[string]interface{}{
				"desc":      "wpkh(tpub/1/*)",
				"timestamp": float64(1600000000),
				"range":     float64(50),
				"internal":  true,
			},
		},
	}).(*btcjson.ImportDescriptorsCmd)

	require.Len(t, cmd.Requests, 2)
	require.Equal(t, btcjson.Now(), *cmd.Requests[0].Timestamp)
	require.Equal(t, btcjson.NewDescriptorRangePair(0, 100),
		*cmd.Requests[0].Range)
	require.Equal(t, btcjson.Timestamp(1600000000),
		*cmd.Requests[1].Timestamp)
	require.Equal(t, btcjson.NewDescriptorRangeEnd(50),
		*cmd.Requests[1].Range)
	require.True(t, *cmd.Requests[1].Internal)
}

// TestBuildIrregularInput ensures the node's camelCase option names are
// accepted for the commands that document them.
func TestBuildIrregularInput(t *testing.T) {
	t.Parallel()

	cmd := btcjson.MustBuildCmd("fundrawtransaction", map[string]interface{}{
		"hexstring": "0200",
		"options": map[string]interface{}{
			"changeAddress":          testAddr,
			"feeRate":                0.0001,
			"subtractFeeFromOutputs": []interface{}{float64(0)},
		},
	}).(*btcjson.FundRawTransactionCmd)

	require.NotNil(t, cmd.Options)
	require.Equal(t, testAddr, *cmd.Options.ChangeAddress)
	require.Equal(t, 0.0001, *cmd.Options.FeeRateBTCkvB)
	require.Nil(t, cmd.Options.FeeRate)
	require.Equal(t, []int64{0}, cmd.Options.SubtractFeeFromOutputs)

	b, err := btcjson.MarshalCmd(1, cmd)
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"1.0","method":"fundrawtransaction",`+
		`"params":["0200",{"changeAddress":"`+testAddr+`",`+
		`"feeRate":0.0001,"subtractFeeFromOutputs":[0]}],"id":1}`,
		string(b))
}

// TestBuildMisuse tests errors unrelated to the input values.
func TestBuildMisuse(t *testing.T) {
	t.Parallel()

	var nilCmd *btcjson.GetBalanceCmd
	err := btcjson.Build(nilCmd, nil)
	require.True(t, errors.Is(err, btcjson.Error{
		ErrorCode: btcjson.ErrInvalidType,
	}))

	_, err = btcjson.BuildCmd("nosuchmethod", nil)
	require.True(t, errors.Is(err, btcjson.Error{
		ErrorCode: btcjson.ErrUnregisteredMethod,
	}))

	require.Panics(t, func() {
		btcjson.MustBuildCmd("getblockhash", nil)
	})
	require.Panics(t, func() {
		btcjson.MustBuild(&btcjson.GetAddressInfoCmd{}, nil)
	})
}
