// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/corejson/btcjson"
	"github.com/stretchr/testify/require"
)

// cmdTest describes a command built both from an input map and from its
// constructor, together with the request both must encode to.
type cmdTest struct {
	name       string
	method     string
	fields     map[string]interface{}
	staticCmd  func() btcjson.Cmd
	marshalled string
	path       string
}

// runCmdTests checks that both forms of every command encode to the
// expected request and path.
func runCmdTests(t *testing.T, tests []cmdTest) {
	t.Helper()

	testID := int(1)
	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Marshal the command as created by the static constructor.
		marshalled, err := btcjson.MarshalCmd(testID, test.staticCmd())
		if err != nil {
			t.Errorf("MarshalCmd #%d (%s) unexpected error: %v", i,
				test.name, err)
			continue
		}
		if !bytes.Equal(marshalled, []byte(test.marshalled)) {
			t.Errorf("Test #%d (%s) unexpected marshalled data - "+
				"got %s, want %s", i, test.name, marshalled,
				test.marshalled)
			continue
		}

		// Build the command from its input map and ensure it encodes
		// to the same request.
		cmd, err := btcjson.BuildCmd(test.method, test.fields)
		if err != nil {
			t.Errorf("BuildCmd #%d (%s) unexpected error: %v", i,
				test.name, err)
			continue
		}
		marshalled, err = btcjson.MarshalCmd(testID, cmd)
		if err != nil {
			t.Errorf("MarshalCmd #%d (%s) unexpected error: %v", i,
				test.name, err)
			continue
		}
		if !bytes.Equal(marshalled, []byte(test.marshalled)) {
			t.Errorf("Test #%d (%s) unexpected marshalled data of "+
				"built command - got %s, want %s", i, test.name,
				marshalled, test.marshalled)
			continue
		}

		req, err := btcjson.EncodeCmd(cmd)
		if err != nil {
			t.Errorf("EncodeCmd #%d (%s) unexpected error: %v", i,
				test.name, err)
			continue
		}
		want := test.path
		if want == "" {
			want = "/"
		}
		if req.Path != want {
			t.Errorf("Test #%d (%s) unexpected path - got %s, "+
				"want %s", i, test.name, req.Path, want)
		}
	}
}

// scoped sets the wallet of a wallet level command.
func scoped(cmd btcjson.Cmd, wallet string) btcjson.Cmd {
	cmd.(interface{ SetWallet(string) }).SetWallet(wallet)
	return cmd
}

// TestWalletSvrCmds tests all of the wallet commands encode into their
// positional wire form, including handling of optional fields being omitted
// or filled with their documented defaults.
func TestWalletSvrCmds(t *testing.T) {
	t.Parallel()

	tests := []cmdTest{
		{
			name:   "abandontransaction",
			method: "abandontransaction",
			fields: map[string]interface{}{"txid": testTxID},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewAbandonTransactionCmd(testTxID)
			},
			marshalled: `{"jsonrpc":"1.0","method":"abandontransaction","params":["` + testTxID + `"],"id":1}`,
		},
		{
			name:   "abandontransaction scoped",
			method: "abandontransaction",
			fields: map[string]interface{}{
				"txid":        testTxID,
				"wallet_name": "main",
			},
			staticCmd: func() btcjson.Cmd {
				return scoped(btcjson.NewAbandonTransactionCmd(testTxID), "main")
			},
			marshalled: `{"jsonrpc":"1.0","method":"abandontransaction","params":["` + testTxID + `"],"id":1}`,
			path:       "/wallet/main",
		},
		{
			name:   "backupwallet",
			method: "backupwallet",
			fields: map[string]interface{}{"destination": "/tmp/backup.dat"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewBackupWalletCmd("/tmp/backup.dat")
			},
			marshalled: `{"jsonrpc":"1.0","method":"backupwallet","params":["/tmp/backup.dat"],"id":1}`,
		},
		{
			name:   "bumpfee",
			method: "bumpfee",
			fields: map[string]interface{}{"txid": testTxID},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewBumpFeeCmd(testTxID, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"bumpfee","params":["` + testTxID + `"],"id":1}`,
		},
		{
			name:   "bumpfee options",
			method: "bumpfee",
			fields: map[string]interface{}{
				"txid": testTxID,
				"options": map[string]interface{}{
					"conf_target": float64(6),
					"replaceable": false,
				},
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewBumpFeeCmd(testTxID, &btcjson.BumpFeeOptions{
					ConfTarget:  btcjson.Int64(6),
					Replaceable: btcjson.Bool(false),
				})
			},
			marshalled: `{"jsonrpc":"1.0","method":"bumpfee","params":["` + testTxID + `",{"conf_target":6,"replaceable":false}],"id":1}`,
		},
		{
			name:   "createwallet",
			method: "createwallet",
			fields: map[string]interface{}{"wallet_name": "main"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewCreateWalletCmd("main", nil, nil, nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"createwallet","params":["main",false,false,"",false,true,null,false],"id":1}`,
		},
		{
			name:   "createwallet optional",
			method: "createwallet",
			fields: map[string]interface{}{
				"wallet_name":          "watch",
				"disable_private_keys": true,
				"blank":                true,
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewCreateWalletCmd("watch",
					btcjson.Bool(true), btcjson.Bool(true), nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"createwallet","params":["watch",true,true,"",false,true,null,false],"id":1}`,
		},
		{
			name:   "encryptwallet",
			method: "encryptwallet",
			fields: map[string]interface{}{"passphrase": "pass"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewEncryptWalletCmd("pass")
			},
			marshalled: `{"jsonrpc":"1.0","method":"encryptwallet","params":["pass"],"id":1}`,
		},
		{
			name:   "fundrawtransaction",
			method: "fundrawtransaction",
			fields: map[string]interface{}{
				"hexstring": "0200",
				"options": map[string]interface{}{
					"change_position": float64(1),
					"lock_unspents":   true,
				},
				"iswitness": true,
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewFundRawTransactionCmd([]byte{0x02, 0x00},
					&btcjson.FundingOptions{
						ChangePosition: btcjson.Int64(1),
						LockUnspents:   btcjson.Bool(true),
					}, btcjson.Bool(true))
			},
			marshalled: `{"jsonrpc":"1.0","method":"fundrawtransaction","params":["0200",{"changePosition":1,"lockUnspents":true},true],"id":1}`,
		},
		{
			name:   "getaddressinfo",
			method: "getaddressinfo",
			fields: map[string]interface{}{"address": testAddr},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetAddressInfoCmd(testAddr)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getaddressinfo","params":["` + testAddr + `"],"id":1}`,
		},
		{
			name:   "getbalance",
			method: "getbalance",
			fields: map[string]interface{}{},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetBalanceCmd(nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getbalance","params":["*",0,false,true],"id":1}`,
		},
		{
			name:   "getbalance explicit default",
			method: "getbalance",
			fields: map[string]interface{}{"minconf": float64(0)},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetBalanceCmd(btcjson.Int64(0), nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getbalance","params":["*",0,false,true],"id":1}`,
		},
		{
			name:   "getbalance optional",
			method: "getbalance",
			fields: map[string]interface{}{
				"minconf":           float64(6),
				"include_watchonly": true,
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetBalanceCmd(btcjson.Int64(6),
					btcjson.Bool(true))
			},
			marshalled: `{"jsonrpc":"1.0","method":"getbalance","params":["*",6,true,true],"id":1}`,
		},
		{
			name:   "getbalances",
			method: "getbalances",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetBalancesCmd()
			},
			marshalled: `{"jsonrpc":"1.0","method":"getbalances","params":[],"id":1}`,
		},
		{
			name:   "getnewaddress",
			method: "getnewaddress",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetNewAddressCmd(nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getnewaddress","params":[""],"id":1}`,
		},
		{
			name:   "getnewaddress optional",
			method: "getnewaddress",
			fields: map[string]interface{}{"address_type": "bech32m"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetNewAddressCmd(nil,
					btcjson.String(btcjson.AddressTypeBech32m))
			},
			marshalled: `{"jsonrpc":"1.0","method":"getnewaddress","params":["","bech32m"],"id":1}`,
		},
		{
			name:   "getrawchangeaddress",
			method: "getrawchangeaddress",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetRawChangeAddressCmd(nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getrawchangeaddress","params":[],"id":1}`,
		},
		{
			name:   "getreceivedbyaddress",
			method: "getreceivedbyaddress",
			fields: map[string]interface{}{"address": testAddr},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetReceivedByAddressCmd(testAddr, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getreceivedbyaddress","params":["` + testAddr + `",1,false],"id":1}`,
		},
		{
			name:   "gettransaction",
			method: "gettransaction",
			fields: map[string]interface{}{"txid": testTxID},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewGetTransactionCmd(testTxID, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"gettransaction","params":["` + testTxID + `",false,false],"id":1}`,
		},
		{
			name:   "getwalletinfo scoped",
			method: "getwalletinfo",
			fields: map[string]interface{}{"wallet_name": "cold.storage"},
			staticCmd: func() btcjson.Cmd {
				return scoped(btcjson.NewGetWalletInfoCmd(), "cold.storage")
			},
			marshalled: `{"jsonrpc":"1.0","method":"getwalletinfo","params":[],"id":1}`,
			path:       "/wallet/cold.storage",
		},
		{
			name:   "importdescriptors",
			method: "importdescriptors",
			fields: map[string]interface{}{
				"requests": []interface{}{
					map[string]interface{}{
						"desc":      "wpkh(tpub/0/*)",
						"active":    true,
						"range":     []interface{}{float64(0), float64(100)},
						"timestamp": "now",
					},
					map[string]interface{}{
						"desc":      "wpkh(tpub/1/*)",
						"timestamp": float64(1600000000),
						"internal":  true,
					},
				},
			},
			staticCmd: func() btcjson.Cmd {
				rng := btcjson.NewDescriptorRangePair(0, 100)
				now := btcjson.Now()
				ts := btcjson.Timestamp(1600000000)
				return btcjson.NewImportDescriptorsCmd([]btcjson.ImportDescriptorRequest{
					{
						Descriptor: "wpkh(tpub/0/*)",
						Active:     btcjson.Bool(true),
						Range:      &rng,
						Timestamp:  &now,
					},
					{
						Descriptor: "wpkh(tpub/1/*)",
						Timestamp:  &ts,
						Internal:   btcjson.Bool(true),
					},
				})
			},
			marshalled: `{"jsonrpc":"1.0","method":"importdescriptors","params":[[{"desc":"wpkh(tpub/0/*)","active":true,"range":[0,100],"timestamp":"now"},{"desc":"wpkh(tpub/1/*)","timestamp":1600000000,"internal":true}]],"id":1}`,
		},
		{
			name:   "keypoolrefill",
			method: "keypoolrefill",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewKeyPoolRefillCmd(nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"keypoolrefill","params":[100],"id":1}`,
		},
		{
			name:   "listlabels",
			method: "listlabels",
			fields: map[string]interface{}{"purpose": "receive"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewListLabelsCmd(btcjson.String("receive"))
			},
			marshalled: `{"jsonrpc":"1.0","method":"listlabels","params":["receive"],"id":1}`,
		},
		{
			name:   "listlockunspent",
			method: "listlockunspent",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewListLockUnspentCmd()
			},
			marshalled: `{"jsonrpc":"1.0","method":"listlockunspent","params":[],"id":1}`,
		},
		{
			name:   "listsinceblock",
			method: "listsinceblock",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewListSinceBlockCmd(nil, nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"listsinceblock","params":[null,1,false,true],"id":1}`,
		},
		{
			name:   "listsinceblock optional",
			method: "listsinceblock",
			fields: map[string]interface{}{
				"blockhash":            testTxID,
				"target_confirmations": float64(6),
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewListSinceBlockCmd(btcjson.String(testTxID),
					btcjson.Int64(6), nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"listsinceblock","params":["` + testTxID + `",6,false,true],"id":1}`,
		},
		{
			name:   "listtransactions",
			method: "listtransactions",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewListTransactionsCmd(nil, nil, nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"listtransactions","params":["*",10,0,false],"id":1}`,
		},
		{
			name:   "listunspent",
			method: "listunspent",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewListUnspentCmd(nil, nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"listunspent","params":[1,9999999,[],true],"id":1}`,
		},
		{
			name:   "listunspent query options",
			method: "listunspent",
			fields: map[string]interface{}{
				"addresses": []interface{}{testAddr},
				"query_options": map[string]interface{}{
					"minimum_amount": 0.5,
				},
			},
			staticCmd: func() btcjson.Cmd {
				cmd := btcjson.NewListUnspentCmd(nil, nil,
					[]string{testAddr})
				cmd.QueryOptions = &btcjson.ListUnspentQueryOptions{
					MinimumAmount: btcjson.Float64(0.5),
				}
				return cmd
			},
			marshalled: `{"jsonrpc":"1.0","method":"listunspent","params":[1,9999999,["` + testAddr + `"],true,{"minimumAmount":0.5}],"id":1}`,
		},
		{
			name:   "loadwallet",
			method: "loadwallet",
			fields: map[string]interface{}{"filename": "main"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewLoadWalletCmd("main")
			},
			marshalled: `{"jsonrpc":"1.0","method":"loadwallet","params":["main"],"id":1}`,
		},
		{
			name:   "lockunspent",
			method: "lockunspent",
			fields: map[string]interface{}{
				"unlock": true,
				"transactions": []interface{}{
					map[string]interface{}{
						"txid": testTxID,
						"vout": float64(1),
					},
				},
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewLockUnspentCmd(true,
					[]btcjson.TransactionInput{
						{Txid: testTxID, Vout: 1},
					})
			},
			marshalled: `{"jsonrpc":"1.0","method":"lockunspent","params":[true,[{"txid":"` + testTxID + `","vout":1}],false],"id":1}`,
		},
		{
			name:   "rescanblockchain",
			method: "rescanblockchain",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewRescanBlockchainCmd(nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"rescanblockchain","params":[0],"id":1}`,
		},
		{
			name:   "sendmany",
			method: "sendmany",
			fields: map[string]interface{}{
				"amounts": map[string]interface{}{testAddr: 0.5},
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewSendManyCmd(map[string]btcutil.Amount{
					testAddr: btcutil.Amount(50000000),
				}, nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"sendmany","params":["",{"` + testAddr + `":0.5},1,null,null,null,null,"unset",null,false],"id":1}`,
		},
		{
			name:   "sendtoaddress",
			method: "sendtoaddress",
			fields: map[string]interface{}{
				"address": testAddr,
				"amount":  0.1,
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewSendToAddressCmd(testAddr,
					btcutil.Amount(10000000), nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"sendtoaddress","params":["` + testAddr + `",0.1,null,null,false,null,null,"unset",true,null,false],"id":1}`,
		},
		{
			name:   "sendtoaddress fee rate",
			method: "sendtoaddress",
			fields: map[string]interface{}{
				"address":  testAddr,
				"amount":   0.1,
				"comment":  "rent",
				"fee_rate": float64(25),
			},
			staticCmd: func() btcjson.Cmd {
				cmd := btcjson.NewSendToAddressCmd(testAddr,
					btcutil.Amount(10000000),
					btcjson.String("rent"), nil)
				cmd.FeeRate = btcjson.Float64(25)
				return cmd
			},
			marshalled: `{"jsonrpc":"1.0","method":"sendtoaddress","params":["` + testAddr + `",0.1,"rent",null,false,null,null,"unset",true,25,false],"id":1}`,
		},
		{
			name:   "setlabel empty",
			method: "setlabel",
			fields: map[string]interface{}{
				"address": testAddr,
				"label":   "",
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewSetLabelCmd(testAddr, "")
			},
			marshalled: `{"jsonrpc":"1.0","method":"setlabel","params":["` + testAddr + `",""],"id":1}`,
		},
		{
			name:   "signmessage",
			method: "signmessage",
			fields: map[string]interface{}{
				"address": testAddr2,
				"message": "hello",
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewSignMessageCmd(testAddr2, "hello")
			},
			marshalled: `{"jsonrpc":"1.0","method":"signmessage","params":["` + testAddr2 + `","hello"],"id":1}`,
		},
		{
			name:   "signrawtransactionwithwallet",
			method: "signrawtransactionwithwallet",
			fields: map[string]interface{}{"hexstring": "0200"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewSignRawTransactionWithWalletCmd("0200", nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"signrawtransactionwithwallet","params":["0200",null,"ALL"],"id":1}`,
		},
		{
			name:   "signrawtransactionwithwallet prevtxs",
			method: "signrawtransactionwithwallet",
			fields: map[string]interface{}{
				"hexstring": "0200",
				"prevtxs": []interface{}{
					map[string]interface{}{
						"txid":         testTxID,
						"vout":         float64(0),
						"scriptPubKey": "0014ab",
						"amount":       0.1,
					},
				},
				"sighashtype": "ALL|ANYONECANPAY",
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewSignRawTransactionWithWalletCmd("0200",
					[]btcjson.PrevTx{{
						TxID:         testTxID,
						Vout:         btcjson.Int64(0),
						ScriptPubKey: "0014ab",
						Amount:       btcjson.Float64(0.1),
					}},
					btcjson.String(btcjson.SigHashAllAnyoneCanPay))
			},
			marshalled: `{"jsonrpc":"1.0","method":"signrawtransactionwithwallet","params":["0200",[{"txid":"` + testTxID + `","vout":0,"scriptPubKey":"0014ab","amount":0.1}],"ALL|ANYONECANPAY"],"id":1}`,
		},
		{
			name:   "unloadwallet",
			method: "unloadwallet",
			fields: map[string]interface{}{"wallet_name": "main"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewUnloadWalletCmd(btcjson.String("main"))
			},
			marshalled: `{"jsonrpc":"1.0","method":"unloadwallet","params":["main"],"id":1}`,
		},
		{
			name:   "listwallets",
			method: "listwallets",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewListWalletsCmd()
			},
			marshalled: `{"jsonrpc":"1.0","method":"listwallets","params":[],"id":1}`,
		},
		{
			name:   "walletcreatefundedpsbt",
			method: "walletcreatefundedpsbt",
			fields: map[string]interface{}{
				"outputs": []interface{}{
					map[string]interface{}{testAddr: 0.1},
					map[string]interface{}{"data": "00ff"},
				},
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewWalletCreateFundedPsbtCmd(nil,
					[]btcjson.PsbtOutput{
						btcjson.NewPsbtOutput(testAddr,
							btcutil.Amount(10000000)),
						btcjson.NewPsbtDataOutput([]byte{0x00, 0xff}),
					}, nil, nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"walletcreatefundedpsbt","params":[[],[{"` + testAddr + `":0.1},{"data":"00ff"}],0,null,true],"id":1}`,
		},
		{
			name:   "walletlock",
			method: "walletlock",
			fields: nil,
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewWalletLockCmd()
			},
			marshalled: `{"jsonrpc":"1.0","method":"walletlock","params":[],"id":1}`,
		},
		{
			name:   "walletpassphrase",
			method: "walletpassphrase",
			fields: map[string]interface{}{
				"passphrase": "pass",
				"timeout":    float64(60),
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewWalletPassphraseCmd("pass", 60)
			},
			marshalled: `{"jsonrpc":"1.0","method":"walletpassphrase","params":["pass",60],"id":1}`,
		},
		{
			name:   "walletpassphrasechange",
			method: "walletpassphrasechange",
			fields: map[string]interface{}{
				"oldpassphrase": "old",
				"newpassphrase": "new",
			},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewWalletPassphraseChangeCmd("old", "new")
			},
			marshalled: `{"jsonrpc":"1.0","method":"walletpassphrasechange","params":["old","new"],"id":1}`,
		},
		{
			name:   "walletprocesspsbt",
			method: "walletprocesspsbt",
			fields: map[string]interface{}{"psbt": "cHNidP8B"},
			staticCmd: func() btcjson.Cmd {
				return btcjson.NewWalletProcessPsbtCmd("cHNidP8B", nil, nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"walletprocesspsbt","params":["cHNidP8B",true,"ALL",true,true],"id":1}`,
		},
	}

	runCmdTests(t, tests)
}

// TestEncodeCmdLeavesCaller ensures encoding fills defaults on a copy.
func TestEncodeCmdLeavesCaller(t *testing.T) {
	t.Parallel()

	cmd := btcjson.NewGetBalanceCmd(nil, nil)
	req, err := btcjson.EncodeCmd(cmd)
	require.NoError(t, err)
	require.Len(t, req.Params, 4)
	require.Nil(t, req.ID)
	require.Equal(t, btcjson.RpcVersion1, req.Jsonrpc)

	require.Nil(t, cmd.Dummy)
	require.Nil(t, cmd.MinConf)
	require.Nil(t, cmd.IncludeWatchOnly)
	require.Nil(t, cmd.AvoidReuse)
}

// TestEncodeCmdInvalid ensures invalid commands never reach the wire.
func TestEncodeCmdInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cmd   btcjson.Cmd
		field string
	}{
		{
			name:  "bad address",
			cmd:   btcjson.NewSendToAddressCmd("nope", 1000, nil, nil),
			field: "address",
		},
		{
			name:  "zero amount",
			cmd:   btcjson.NewSendToAddressCmd(testAddr, 0, nil, nil),
			field: "amount",
		},
		{
			name:  "bad wallet",
			cmd:   scoped(btcjson.NewGetBalancesCmd(), "../other"),
			field: "wallet_name",
		},
		{
			name: "empty psbt output",
			cmd: btcjson.NewWalletCreateFundedPsbtCmd(nil,
				[]btcjson.PsbtOutput{{}}, nil, nil, nil),
			field: "outputs[0]",
		},
		{
			name: "duplicate subtract index",
			cmd: btcjson.NewFundRawTransactionCmd([]byte{0x02},
				&btcjson.FundingOptions{
					SubtractFeeFromOutputs: []int64{0, 0},
				}, nil),
			field: "options.subtract_fee_from_outputs[1]",
		},
	}

	for _, test := range tests {
		_, err := btcjson.EncodeCmd(test.cmd)
		require.Errorf(t, err, test.name)
		require.Truef(t, errors.Is(err, btcjson.ErrValidation), test.name)

		verrs, _ := btcjson.AsValidationErrors(err)
		require.NotEmptyf(t, verrs.ForField(test.field),
			"%s: got %v", test.name, verrs)
	}
}

// TestWalletPathEscaping ensures wallet names are escaped in request paths.
func TestWalletPathEscaping(t *testing.T) {
	t.Parallel()

	var scope btcjson.WalletScope
	require.Equal(t, "/", scope.WalletPath())

	scope.SetWallet("")
	require.Equal(t, "/", scope.WalletPath())

	scope.SetWallet("my.wallet")
	require.Equal(t, "/wallet/my.wallet", scope.WalletPath())

	scope.SetWallet("a b")
	require.Equal(t, "/wallet/a%20b", scope.WalletPath())
}
