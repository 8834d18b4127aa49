// Copyright (c) 2015-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"sort"
	"testing"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/stretchr/testify/require"
)

// walletMethods lists the methods that may be routed to a single wallet.
var walletMethods = []string{
	"abandontransaction", "backupwallet", "bumpfee", "encryptwallet",
	"fundrawtransaction", "getaddressinfo", "getbalance", "getbalances",
	"getnewaddress", "getrawchangeaddress", "getreceivedbyaddress",
	"gettransaction", "getwalletinfo", "importdescriptors",
	"keypoolrefill", "listlabels", "listlockunspent", "listsinceblock",
	"listtransactions", "listunspent", "lockunspent", "rescanblockchain",
	"sendmany", "sendtoaddress", "setlabel", "signmessage",
	"signrawtransactionwithwallet", "walletcreatefundedpsbt", "walletlock",
	"walletpassphrase", "walletpassphrasechange", "walletprocesspsbt",
}

// nodeMethods lists the methods that always address the node.
var nodeMethods = []string{
	"createwallet", "listwallets", "loadwallet", "unloadwallet",
	"decoderawtransaction", "estimatesmartfee", "getbestblockhash",
	"getblockchaininfo", "getblockcount", "getblockhash",
	"getblockheader", "getmempoolentry", "getmempoolinfo",
	"getnetworkinfo", "getrawtransaction", "sendrawtransaction",
	"testmempoolaccept", "validateaddress",
}

// TestRegisteredCmdMethods ensures the catalogue is registered with the
// expected usage flags and every factory builds a command for its method.
func TestRegisteredCmdMethods(t *testing.T) {
	t.Parallel()

	methods := btcjson.RegisteredCmdMethods()
	require.True(t, sort.StringsAreSorted(methods))

	registered := make(map[string]bool, len(methods))
	for _, m := range methods {
		registered[m] = true
	}

	check := func(method string, want btcjson.UsageFlag) {
		require.Truef(t, registered[method], "%s not registered", method)

		flags, err := btcjson.MethodUsageFlags(method)
		require.NoError(t, err)
		require.Equalf(t, want, flags, "flags of %s", method)

		cmd, err := btcjson.NewCmd(method)
		require.NoError(t, err)
		require.Equal(t, method, cmd.Method())

		_, isWallet := cmd.(btcjson.WalletCmd)
		require.Equalf(t, want == btcjson.UFWalletOnly, isWallet,
			"wallet scope of %s", method)
	}
	for _, m := range walletMethods {
		check(m, btcjson.UFWalletOnly)
	}
	for _, m := range nodeMethods {
		check(m, 0)
	}
}

// TestNewCmdFresh ensures every call to NewCmd returns a distinct value.
func TestNewCmdFresh(t *testing.T) {
	t.Parallel()

	a, err := btcjson.NewCmd("getnewaddress")
	require.NoError(t, err)
	b, err := btcjson.NewCmd("getnewaddress")
	require.NoError(t, err)

	a.(*btcjson.GetNewAddressCmd).Label = btcjson.String("x")
	require.Nil(t, b.(*btcjson.GetNewAddressCmd).Label)
}

// registerTestCmd is a command used to exercise registration.
type registerTestCmd struct {
	Value string `json:"value"`
}

func (c *registerTestCmd) Method() string        { return "registertest" }
func (c *registerTestCmd) Params() []interface{} { return []interface{}{c.Value} }
func (c *registerTestCmd) Validate() error       { return nil }

// TestRegisterCmdErrors tests the error paths of RegisterCmd.
func TestRegisterCmdErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		factory func() btcjson.Cmd
		code    btcjson.ErrorCode
	}{
		{
			name:   "duplicate method",
			method: "getbalance",
			factory: func() btcjson.Cmd {
				return new(btcjson.GetBalanceCmd)
			},
			code: btcjson.ErrDuplicateMethod,
		},
		{
			name:    "nil factory",
			method:  "registertest-nil",
			factory: nil,
			code:    btcjson.ErrInvalidType,
		},
		{
			name:   "method mismatch",
			method: "registertest-other",
			factory: func() btcjson.Cmd {
				return new(registerTestCmd)
			},
			code: btcjson.ErrInvalidType,
		},
	}

	for _, test := range tests {
		err := btcjson.RegisterCmd(test.method, test.factory, 0)
		require.Errorf(t, err, test.name)

		jerr, ok := err.(btcjson.Error)
		require.Truef(t, ok, "%s: got %T", test.name, err)
		require.Equalf(t, test.code, jerr.ErrorCode, test.name)
	}

	_, err := btcjson.MethodUsageFlags("registertest-nil")
	require.Equal(t, btcjson.ErrUnregisteredMethod,
		err.(btcjson.Error).ErrorCode)
}

// TestRegisterCustomCmd ensures commands registered by other packages can be
// built and encoded like the built-in ones.
func TestRegisterCustomCmd(t *testing.T) {
	t.Parallel()

	require.NoError(t, btcjson.RegisterCmd("registertest", func() btcjson.Cmd {
		return new(registerTestCmd)
	}, 0))

	cmd, err := btcjson.BuildCmd("registertest", map[string]interface{}{
		"value": "hello",
	})
	require.NoError(t, err)

	b, err := btcjson.MarshalCmd("abc", cmd)
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"1.0","method":"registertest",`+
		`"params":["hello"],"id":"abc"}`, string(b))
}

// TestUsageFlagStringer tests the stringized output for the UsageFlag type.
func TestUsageFlagStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   btcjson.UsageFlag
		want string
	}{
		{0, "0x0"},
		{btcjson.UFWalletOnly, "UFWalletOnly"},
		{btcjson.UFWalletOnly | 1<<31, "UFWalletOnly|0x80000000"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
		}
	}
}
