// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file is intended to house the RPC commands that are supported by
// a chain server.

package btcjson

import (
	"encoding/hex"
)

// DecodeRawTransactionCmd defines the decoderawtransaction JSON-RPC command.
type DecodeRawTransactionCmd struct {
	HexTx     string `json:"hexstring"`
	IsWitness *bool  `json:"iswitness,omitempty"`
}

// NewDecodeRawTransactionCmd returns a new instance which can be used to issue
// a decoderawtransaction JSON-RPC command.
func NewDecodeRawTransactionCmd(hexTx string) *DecodeRawTransactionCmd {
	return &DecodeRawTransactionCmd{HexTx: hexTx}
}

func (c *DecodeRawTransactionCmd) Method() string { return "decoderawtransaction" }

func (c *DecodeRawTransactionCmd) Params() []interface{} {
	return []interface{}{c.HexTx, optBool(c.IsWitness)}
}

func (c *DecodeRawTransactionCmd) Validate() error {
	var v validator
	v.rawHex("hexstring", c.HexTx)
	return v.err()
}

// EstimateSmartFeeCmd defines the estimatesmartfee JSON-RPC command.
type EstimateSmartFeeCmd struct {
	ConfTarget   *int64  `json:"conf_target,omitempty"`
	EstimateMode *string `json:"estimate_mode,omitempty"`
}

// NewEstimateSmartFeeCmd returns a new instance which can be used to issue a
// estimatesmartfee JSON-RPC command.
func NewEstimateSmartFeeCmd(confTarget int64,
	mode *string) *EstimateSmartFeeCmd {

	return &EstimateSmartFeeCmd{
		ConfTarget:   Int64(confTarget),
		EstimateMode: mode,
	}
}

func (c *EstimateSmartFeeCmd) Method() string { return "estimatesmartfee" }

func (c *EstimateSmartFeeCmd) setDefaults() {
	setString(&c.EstimateMode, EstimateModeConservative)
}

func (c *EstimateSmartFeeCmd) Params() []interface{} {
	return []interface{}{optInt64(c.ConfTarget), optString(c.EstimateMode)}
}

func (c *EstimateSmartFeeCmd) Validate() error {
	var v validator
	if c.ConfTarget == nil {
		v.add("conf_target", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	} else {
		v.number("conf_target", float64(*c.ConfTarget),
			between(minConfTarget, maxConfTarget))
	}
	v.optInclusion("estimate_mode", c.EstimateMode, EstimateModes)
	return v.err()
}

// GetBestBlockHashCmd defines the getbestblockhash JSON-RPC command.
type GetBestBlockHashCmd struct{}

// NewGetBestBlockHashCmd returns a new instance which can be used to issue a
// getbestblockhash JSON-RPC command.
func NewGetBestBlockHashCmd() *GetBestBlockHashCmd {
	return &GetBestBlockHashCmd{}
}

func (c *GetBestBlockHashCmd) Method() string        { return "getbestblockhash" }
func (c *GetBestBlockHashCmd) Params() []interface{} { return nil }
func (c *GetBestBlockHashCmd) Validate() error       { return nil }

// GetBlockChainInfoCmd defines the getblockchaininfo JSON-RPC command.
type GetBlockChainInfoCmd struct{}

// NewGetBlockChainInfoCmd returns a new instance which can be used to issue a
// getblockchaininfo JSON-RPC command.
func NewGetBlockChainInfoCmd() *GetBlockChainInfoCmd {
	return &GetBlockChainInfoCmd{}
}

func (c *GetBlockChainInfoCmd) Method() string        { return "getblockchaininfo" }
func (c *GetBlockChainInfoCmd) Params() []interface{} { return nil }
func (c *GetBlockChainInfoCmd) Validate() error       { return nil }

// GetBlockCountCmd defines the getblockcount JSON-RPC command.
type GetBlockCountCmd struct{}

// NewGetBlockCountCmd returns a new instance which can be used to issue a
// getblockcount JSON-RPC command.
func NewGetBlockCountCmd() *GetBlockCountCmd {
	return &GetBlockCountCmd{}
}

func (c *GetBlockCountCmd) Method() string        { return "getblockcount" }
func (c *GetBlockCountCmd) Params() []interface{} { return nil }
func (c *GetBlockCountCmd) Validate() error       { return nil }

// GetBlockHashCmd defines the getblockhash JSON-RPC command.
type GetBlockHashCmd struct {
	Height *int64 `json:"height,omitempty"`
}

// NewGetBlockHashCmd returns a new instance which can be used to issue a
// getblockhash JSON-RPC command.
func NewGetBlockHashCmd(height int64) *GetBlockHashCmd {
	return &GetBlockHashCmd{Height: Int64(height)}
}

func (c *GetBlockHashCmd) Method() string { return "getblockhash" }

func (c *GetBlockHashCmd) Params() []interface{} {
	return []interface{}{optInt64(c.Height)}
}

func (c *GetBlockHashCmd) Validate() error {
	var v validator
	if c.Height == nil {
		v.add("height", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	} else {
		v.number("height", float64(*c.Height), gte(0))
	}
	return v.err()
}

// GetBlockHeaderCmd defines the getblockheader JSON-RPC command.
type GetBlockHeaderCmd struct {
	BlockHash string `json:"blockhash"`
	Verbose   *bool  `json:"verbose,omitempty"`
}

// NewGetBlockHeaderCmd returns a new instance which can be used to issue a
// getblockheader JSON-RPC command.
func NewGetBlockHeaderCmd(hash string, verbose *bool) *GetBlockHeaderCmd {
	return &GetBlockHeaderCmd{BlockHash: hash, Verbose: verbose}
}

func (c *GetBlockHeaderCmd) Method() string { return "getblockheader" }

func (c *GetBlockHeaderCmd) setDefaults() {
	setBool(&c.Verbose, true)
}

func (c *GetBlockHeaderCmd) Params() []interface{} {
	return []interface{}{c.BlockHash, optBool(c.Verbose)}
}

func (c *GetBlockHeaderCmd) Validate() error {
	var v validator
	v.txid("blockhash", c.BlockHash)
	return v.err()
}

// GetMempoolEntryCmd defines the getmempoolentry JSON-RPC command.
type GetMempoolEntryCmd struct {
	TxID string `json:"txid"`
}

// NewGetMempoolEntryCmd returns a new instance which can be used to issue a
// getmempoolentry JSON-RPC command.
func NewGetMempoolEntryCmd(txHash string) *GetMempoolEntryCmd {
	return &GetMempoolEntryCmd{TxID: txHash}
}

func (c *GetMempoolEntryCmd) Method() string { return "getmempoolentry" }

func (c *GetMempoolEntryCmd) Params() []interface{} {
	return []interface{}{c.TxID}
}

func (c *GetMempoolEntryCmd) Validate() error {
	var v validator
	v.txid("txid", c.TxID)
	return v.err()
}

// GetMempoolInfoCmd defines the getmempoolinfo JSON-RPC command.
type GetMempoolInfoCmd struct{}

// NewGetMempoolInfoCmd returns a new instance which can be used to issue a
// getmempool JSON-RPC command.
func NewGetMempoolInfoCmd() *GetMempoolInfoCmd {
	return &GetMempoolInfoCmd{}
}

func (c *GetMempoolInfoCmd) Method() string        { return "getmempoolinfo" }
func (c *GetMempoolInfoCmd) Params() []interface{} { return nil }
func (c *GetMempoolInfoCmd) Validate() error       { return nil }

// GetNetworkInfoCmd defines the getnetworkinfo JSON-RPC command.
type GetNetworkInfoCmd struct{}

// NewGetNetworkInfoCmd returns a new instance which can be used to issue a
// getnetworkinfo JSON-RPC command.
func NewGetNetworkInfoCmd() *GetNetworkInfoCmd {
	return &GetNetworkInfoCmd{}
}

func (c *GetNetworkInfoCmd) Method() string        { return "getnetworkinfo" }
func (c *GetNetworkInfoCmd) Params() []interface{} { return nil }
func (c *GetNetworkInfoCmd) Validate() error       { return nil }

// GetRawTransactionCmd defines the getrawtransaction JSON-RPC command.
type GetRawTransactionCmd struct {
	TxID      string  `json:"txid"`
	Verbose   *bool   `json:"verbose,omitempty"`
	BlockHash *string `json:"blockhash,omitempty"`
}

// NewGetRawTransactionCmd returns a new instance which can be used to issue a
// getrawtransaction JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewGetRawTransactionCmd(txHash string,
	verbose *bool) *GetRawTransactionCmd {

	return &GetRawTransactionCmd{TxID: txHash, Verbose: verbose}
}

func (c *GetRawTransactionCmd) Method() string { return "getrawtransaction" }

func (c *GetRawTransactionCmd) setDefaults() {
	setBool(&c.Verbose, false)
}

func (c *GetRawTransactionCmd) Params() []interface{} {
	return []interface{}{c.TxID, optBool(c.Verbose), optString(c.BlockHash)}
}

func (c *GetRawTransactionCmd) Validate() error {
	var v validator
	v.txid("txid", c.TxID)
	if c.BlockHash != nil {
		v.hexFormat("blockhash", *c.BlockHash, 64)
	}
	return v.err()
}

// SendRawTransactionCmd defines the sendrawtransaction JSON-RPC command.
type SendRawTransactionCmd struct {
	HexTx      string   `json:"hexstring"`
	MaxFeeRate *float64 `json:"maxfeerate,omitempty"`
}

// NewSendRawTransactionCmd returns a new instance which can be used to issue a
// sendrawtransaction JSON-RPC command.
func NewSendRawTransactionCmd(serializedTx []byte,
	maxFeeRate *float64) *SendRawTransactionCmd {

	return &SendRawTransactionCmd{
		HexTx:      hex.EncodeToString(serializedTx),
		MaxFeeRate: maxFeeRate,
	}
}

func (c *SendRawTransactionCmd) Method() string { return "sendrawtransaction" }

func (c *SendRawTransactionCmd) setDefaults() {
	setFloat64(&c.MaxFeeRate, defaultMaxFeeRate)
}

func (c *SendRawTransactionCmd) Params() []interface{} {
	return []interface{}{c.HexTx, optFloat64(c.MaxFeeRate)}
}

func (c *SendRawTransactionCmd) Validate() error {
	var v validator
	v.rawHex("hexstring", c.HexTx)
	v.optFloat("maxfeerate", c.MaxFeeRate, gte(0))
	return v.err()
}

// TestMempoolAcceptCmd defines the testmempoolaccept JSON-RPC command.
type TestMempoolAcceptCmd struct {
	// An array of hex strings of raw transactions.
	RawTxns []string `json:"rawtxs"`

	// Reject transactions whose fee rate is higher than the specified
	// value, expressed in BTC/kvB.  Set to 0 to accept any fee rate.
	MaxFeeRate *float64 `json:"maxfeerate,omitempty"`
}

// NewTestMempoolAcceptCmd returns a new instance which can be used to issue a
// testmempoolaccept JSON-RPC command.
func NewTestMempoolAcceptCmd(rawTxns []string,
	maxFeeRate *float64) *TestMempoolAcceptCmd {

	return &TestMempoolAcceptCmd{RawTxns: rawTxns, MaxFeeRate: maxFeeRate}
}

func (c *TestMempoolAcceptCmd) Method() string { return "testmempoolaccept" }

func (c *TestMempoolAcceptCmd) setDefaults() {
	setFloat64(&c.MaxFeeRate, defaultMaxFeeRate)
}

func (c *TestMempoolAcceptCmd) Params() []interface{} {
	return []interface{}{c.RawTxns, optFloat64(c.MaxFeeRate)}
}

func (c *TestMempoolAcceptCmd) Validate() error {
	var v validator
	if v.requiredList("rawtxs", len(c.RawTxns)) {
		for i, tx := range c.RawTxns {
			v.rawHex(indexField("rawtxs", i), tx)
		}
	}
	v.optFloat("maxfeerate", c.MaxFeeRate, gte(0))
	return v.err()
}

// ValidateAddressCmd defines the validateaddress JSON-RPC command.  The
// address is only checked for presence since judging it is the purpose of
// the call.
type ValidateAddressCmd struct {
	Address string `json:"address"`
}

// NewValidateAddressCmd returns a new instance which can be used to issue a
// validateaddress JSON-RPC command.
func NewValidateAddressCmd(address string) *ValidateAddressCmd {
	return &ValidateAddressCmd{Address: address}
}

func (c *ValidateAddressCmd) Method() string { return "validateaddress" }

func (c *ValidateAddressCmd) Params() []interface{} {
	return []interface{}{c.Address}
}

func (c *ValidateAddressCmd) Validate() error {
	var v validator
	v.required("address", c.Address)
	return v.err()
}

func init() {
	// No special flags for commands in this file.
	flags := UsageFlag(0)

	MustRegisterCmd("decoderawtransaction", func() Cmd { return new(DecodeRawTransactionCmd) }, flags)
	MustRegisterCmd("estimatesmartfee", func() Cmd { return new(EstimateSmartFeeCmd) }, flags)
	MustRegisterCmd("getbestblockhash", func() Cmd { return new(GetBestBlockHashCmd) }, flags)
	MustRegisterCmd("getblockchaininfo", func() Cmd { return new(GetBlockChainInfoCmd) }, flags)
	MustRegisterCmd("getblockcount", func() Cmd { return new(GetBlockCountCmd) }, flags)
	MustRegisterCmd("getblockhash", func() Cmd { return new(GetBlockHashCmd) }, flags)
	MustRegisterCmd("getblockheader", func() Cmd { return new(GetBlockHeaderCmd) }, flags)
	MustRegisterCmd("getmempoolentry", func() Cmd { return new(GetMempoolEntryCmd) }, flags)
	MustRegisterCmd("getmempoolinfo", func() Cmd { return new(GetMempoolInfoCmd) }, flags)
	MustRegisterCmd("getnetworkinfo", func() Cmd { return new(GetNetworkInfoCmd) }, flags)
	MustRegisterCmd("getrawtransaction", func() Cmd { return new(GetRawTransactionCmd) }, flags)
	MustRegisterCmd("sendrawtransaction", func() Cmd { return new(SendRawTransactionCmd) }, flags)
	MustRegisterCmd("testmempoolaccept", func() Cmd { return new(TestMempoolAcceptCmd) }, flags)
	MustRegisterCmd("validateaddress", func() Cmd { return new(ValidateAddressCmd) }, flags)
}
