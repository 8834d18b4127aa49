// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file is intended to house the RPC commands that are supported by
// the wallet of a bitcoind node.

package btcjson

import (
	"encoding/hex"
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
)

// Address types accepted by getnewaddress, getrawchangeaddress and the
// change_type funding option.
const (
	AddressTypeLegacy     = "legacy"
	AddressTypeP2SHSegwit = "p2sh-segwit"
	AddressTypeBech32     = "bech32"
	AddressTypeBech32m    = "bech32m"
)

// Fee estimation modes.
const (
	EstimateModeUnset        = "unset"
	EstimateModeEconomical   = "economical"
	EstimateModeConservative = "conservative"
)

// Signature hash types.
const (
	SigHashAll                = "ALL"
	SigHashNone               = "NONE"
	SigHashSingle             = "SINGLE"
	SigHashAllAnyoneCanPay    = "ALL|ANYONECANPAY"
	SigHashNoneAnyoneCanPay   = "NONE|ANYONECANPAY"
	SigHashSingleAnyoneCanPay = "SINGLE|ANYONECANPAY"
)

// Limits shared by several fee related parameters.
const (
	minConfTarget = 1
	maxConfTarget = 1008

	maxPassphraseTimeout = 100000000

	defaultMaxFeeRate = 0.10
)

// AbandonTransactionCmd defines the abandontransaction JSON-RPC command.
type AbandonTransactionCmd struct {
	WalletScope
	TxID string `json:"txid"`
}

// NewAbandonTransactionCmd returns a new instance which can be used to issue
// an abandontransaction JSON-RPC command.
func NewAbandonTransactionCmd(txID string) *AbandonTransactionCmd {
	return &AbandonTransactionCmd{TxID: txID}
}

func (c *AbandonTransactionCmd) Method() string { return "abandontransaction" }

func (c *AbandonTransactionCmd) Params() []interface{} {
	return []interface{}{c.TxID}
}

func (c *AbandonTransactionCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.txid("txid", c.TxID)
	return v.err()
}

// BackupWalletCmd defines the backupwallet JSON-RPC command.
type BackupWalletCmd struct {
	WalletScope
	Destination string `json:"destination"`
}

// NewBackupWalletCmd returns a new instance which can be used to issue a
// backupwallet JSON-RPC command.
func NewBackupWalletCmd(destination string) *BackupWalletCmd {
	return &BackupWalletCmd{Destination: destination}
}

func (c *BackupWalletCmd) Method() string { return "backupwallet" }

func (c *BackupWalletCmd) Params() []interface{} {
	return []interface{}{c.Destination}
}

func (c *BackupWalletCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.required("destination", c.Destination)
	return v.err()
}

// BumpFeeOptions represents the optional options object of the bumpfee
// command.
type BumpFeeOptions struct {
	ConfTarget   *int64   `json:"conf_target,omitempty"`
	FeeRate      *float64 `json:"fee_rate,omitempty"`
	Replaceable  *bool    `json:"replaceable,omitempty"`
	EstimateMode *string  `json:"estimate_mode,omitempty"`
}

// Validate checks the options.  A fee rate and a confirmation target are
// mutually exclusive.
func (o *BumpFeeOptions) Validate() error {
	var v validator
	v.optInt("conf_target", o.ConfTarget, between(minConfTarget,
		maxConfTarget))
	v.optFloat("fee_rate", o.FeeRate, gt(0))
	v.optInclusion("estimate_mode", o.EstimateMode, EstimateModes)
	if o.FeeRate != nil && o.ConfTarget != nil {
		v.addf("fee_rate", "can't be combined with conf_target")
	}
	return v.err()
}

// BumpFeeCmd defines the bumpfee JSON-RPC command.
type BumpFeeCmd struct {
	WalletScope
	TxID    string          `json:"txid"`
	Options *BumpFeeOptions `json:"options,omitempty"`
}

// NewBumpFeeCmd returns a new instance which can be used to issue a bumpfee
// JSON-RPC command.
func NewBumpFeeCmd(txID string, options *BumpFeeOptions) *BumpFeeCmd {
	return &BumpFeeCmd{TxID: txID, Options: options}
}

func (c *BumpFeeCmd) Method() string { return "bumpfee" }

func (c *BumpFeeCmd) Params() []interface{} {
	var options interface{}
	if c.Options != nil {
		options = c.Options
	}
	return []interface{}{c.TxID, options}
}

func (c *BumpFeeCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.txid("txid", c.TxID)
	if c.Options != nil {
		v.nest("options", c.Options.Validate())
	}
	return v.err()
}

// CreateWalletCmd defines the createwallet JSON-RPC command.
type CreateWalletCmd struct {
	WalletName         string  `json:"wallet_name"`
	DisablePrivateKeys *bool   `json:"disable_private_keys,omitempty"`
	Blank              *bool   `json:"blank,omitempty"`
	Passphrase         *string `json:"passphrase,omitempty"`
	AvoidReuse         *bool   `json:"avoid_reuse,omitempty"`
	Descriptors        *bool   `json:"descriptors,omitempty"`
	LoadOnStartup      *bool   `json:"load_on_startup,omitempty"`
	ExternalSigner     *bool   `json:"external_signer,omitempty"`
}

// NewCreateWalletCmd returns a new instance which can be used to issue a
// createwallet JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewCreateWalletCmd(walletName string, disablePrivateKeys *bool,
	blank *bool, passphrase *string, avoidReuse *bool) *CreateWalletCmd {

	return &CreateWalletCmd{
		WalletName:         walletName,
		DisablePrivateKeys: disablePrivateKeys,
		Blank:              blank,
		Passphrase:         passphrase,
		AvoidReuse:         avoidReuse,
	}
}

func (c *CreateWalletCmd) Method() string { return "createwallet" }

func (c *CreateWalletCmd) setDefaults() {
	setBool(&c.DisablePrivateKeys, false)
	setBool(&c.Blank, false)
	setString(&c.Passphrase, "")
	setBool(&c.AvoidReuse, false)
	setBool(&c.Descriptors, true)
	setBool(&c.ExternalSigner, false)
}

func (c *CreateWalletCmd) Params() []interface{} {
	return []interface{}{
		c.WalletName, optBool(c.DisablePrivateKeys), optBool(c.Blank),
		optString(c.Passphrase), optBool(c.AvoidReuse),
		optBool(c.Descriptors), optBool(c.LoadOnStartup),
		optBool(c.ExternalSigner),
	}
}

func (c *CreateWalletCmd) Validate() error {
	var v validator
	if v.required("wallet_name", c.WalletName) {
		v.walletName("wallet_name", c.WalletName)
	}
	return v.err()
}

// EncryptWalletCmd defines the encryptwallet JSON-RPC command.
type EncryptWalletCmd struct {
	WalletScope
	Passphrase string `json:"passphrase"`
}

// NewEncryptWalletCmd returns a new instance which can be used to issue a
// encryptwallet JSON-RPC command.
func NewEncryptWalletCmd(passphrase string) *EncryptWalletCmd {
	return &EncryptWalletCmd{Passphrase: passphrase}
}

func (c *EncryptWalletCmd) Method() string { return "encryptwallet" }

func (c *EncryptWalletCmd) Params() []interface{} {
	return []interface{}{c.Passphrase}
}

func (c *EncryptWalletCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.required("passphrase", c.Passphrase)
	return v.err()
}

// FundingOptions represents the options object shared by fundrawtransaction
// and walletcreatefundedpsbt.  Field names follow snake_case; the node's
// camelCase spellings are produced when the options are marshalled.
//
// FeeRate is expressed in sat/vB while FeeRateBTCkvB is the legacy feeRate
// option expressed in BTC/kvB.  At most one of them may be set.
type FundingOptions struct {
	ChangeAddress          *string  `json:"change_address,omitempty"`
	ChangePosition         *int64   `json:"change_position,omitempty"`
	ChangeType             *string  `json:"change_type,omitempty"`
	IncludeWatching        *bool    `json:"include_watching,omitempty"`
	LockUnspents           *bool    `json:"lock_unspents,omitempty"`
	FeeRate                *float64 `json:"fee_rate,omitempty"`
	FeeRateBTCkvB          *float64 `json:"fee_rate_btc_kvb,omitempty"`
	SubtractFeeFromOutputs []int64  `json:"subtract_fee_from_outputs,omitempty"`
	Replaceable            *bool    `json:"replaceable,omitempty"`
	ConfTarget             *int64   `json:"conf_target,omitempty"`
	EstimateMode           *string  `json:"estimate_mode,omitempty"`
	IncludeUnsafe          *bool    `json:"include_unsafe,omitempty"`
}

// fundingOptionsWire carries the node's spelling of every option.
type fundingOptionsWire struct {
	ChangeAddress          *string  `json:"changeAddress,omitempty"`
	ChangePosition         *int64   `json:"changePosition,omitempty"`
	ChangeType             *string  `json:"change_type,omitempty"`
	IncludeWatching        *bool    `json:"includeWatching,omitempty"`
	LockUnspents           *bool    `json:"lockUnspents,omitempty"`
	FeeRate                *float64 `json:"fee_rate,omitempty"`
	FeeRateBTCkvB          *float64 `json:"feeRate,omitempty"`
	SubtractFeeFromOutputs []int64  `json:"subtractFeeFromOutputs,omitempty"`
	Replaceable            *bool    `json:"replaceable,omitempty"`
	ConfTarget             *int64   `json:"conf_target,omitempty"`
	EstimateMode           *string  `json:"estimate_mode,omitempty"`
	IncludeUnsafe          *bool    `json:"include_unsafe,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for FundingOptions.
func (o FundingOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(fundingOptionsWire(o))
}

// Validate checks every option.  A sat/vB fee rate can't be combined with a
// BTC/kvB fee rate nor with a confirmation target.
func (o *FundingOptions) Validate() error {
	var v validator
	if o.ChangeAddress != nil {
		v.addressFormat("change_address", *o.ChangeAddress)
	}
	v.optInt("change_position", o.ChangePosition, gte(0))
	v.optInclusion("change_type", o.ChangeType, AddressTypes)
	v.optFloat("fee_rate", o.FeeRate, gt(0))
	v.optFloat("fee_rate_btc_kvb", o.FeeRateBTCkvB, gt(0))
	v.indices("subtract_fee_from_outputs", o.SubtractFeeFromOutputs)
	v.optInt("conf_target", o.ConfTarget, between(minConfTarget,
		maxConfTarget))
	v.optInclusion("estimate_mode", o.EstimateMode, EstimateModes)

	if o.FeeRate != nil && o.FeeRateBTCkvB != nil {
		v.addf("fee_rate", "can't be combined with fee_rate_btc_kvb")
	}
	if o.FeeRate != nil && o.ConfTarget != nil {
		v.addf("fee_rate", "can't be combined with conf_target")
	}
	return v.err()
}

// FundRawTransactionCmd defines the fundrawtransaction JSON-RPC command.
type FundRawTransactionCmd struct {
	WalletScope
	HexTx     string          `json:"hexstring"`
	Options   *FundingOptions `json:"options,omitempty"`
	IsWitness *bool           `json:"iswitness,omitempty"`
}

// NewFundRawTransactionCmd returns a new instance which can be used to issue
// a fundrawtransaction JSON-RPC command.
func NewFundRawTransactionCmd(serializedTx []byte, opts *FundingOptions,
	isWitness *bool) *FundRawTransactionCmd {

	return &FundRawTransactionCmd{
		HexTx:     hex.EncodeToString(serializedTx),
		Options:   opts,
		IsWitness: isWitness,
	}
}

func (c *FundRawTransactionCmd) Method() string { return "fundrawtransaction" }

func (c *FundRawTransactionCmd) normalizeInput() {}

func (c *FundRawTransactionCmd) Params() []interface{} {
	var options interface{}
	if c.Options != nil {
		options = c.Options
	}
	return []interface{}{c.HexTx, options, optBool(c.IsWitness)}
}

func (c *FundRawTransactionCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.rawHex("hexstring", c.HexTx)
	if c.Options != nil {
		v.nest("options", c.Options.Validate())
	}
	return v.err()
}

// GetAddressInfoCmd defines the getaddressinfo JSON-RPC command.
type GetAddressInfoCmd struct {
	WalletScope
	Address string `json:"address"`
}

// NewGetAddressInfoCmd returns a new instance which can be used to issue a
// getaddressinfo JSON-RPC command.
func NewGetAddressInfoCmd(address string) *GetAddressInfoCmd {
	return &GetAddressInfoCmd{Address: address}
}

func (c *GetAddressInfoCmd) Method() string { return "getaddressinfo" }

func (c *GetAddressInfoCmd) Params() []interface{} {
	return []interface{}{c.Address}
}

func (c *GetAddressInfoCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.address("address", c.Address)
	return v.err()
}

// GetBalanceCmd defines the getbalance JSON-RPC command.
//
// Every parameter has a hard default and all four are always sent.
type GetBalanceCmd struct {
	WalletScope
	Dummy            *string `json:"dummy,omitempty"`
	MinConf          *int64  `json:"minconf,omitempty"`
	IncludeWatchOnly *bool   `json:"include_watchonly,omitempty"`
	AvoidReuse       *bool   `json:"avoid_reuse,omitempty"`
}

// NewGetBalanceCmd returns a new instance which can be used to issue a
// getbalance JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewGetBalanceCmd(minConf *int64, includeWatchOnly *bool) *GetBalanceCmd {
	return &GetBalanceCmd{
		MinConf:          minConf,
		IncludeWatchOnly: includeWatchOnly,
	}
}

func (c *GetBalanceCmd) Method() string { return "getbalance" }

func (c *GetBalanceCmd) keepAllParams() {}

func (c *GetBalanceCmd) setDefaults() {
	setString(&c.Dummy, "*")
	setInt64(&c.MinConf, 0)
	setBool(&c.IncludeWatchOnly, false)
	setBool(&c.AvoidReuse, true)
}

func (c *GetBalanceCmd) Params() []interface{} {
	return []interface{}{
		optString(c.Dummy), optInt64(c.MinConf),
		optBool(c.IncludeWatchOnly), optBool(c.AvoidReuse),
	}
}

func (c *GetBalanceCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInclusion("dummy", c.Dummy, []string{"*"})
	v.optInt("minconf", c.MinConf, gte(0))
	return v.err()
}

// GetBalancesCmd defines the getbalances JSON-RPC command.
type GetBalancesCmd struct {
	WalletScope
}

// NewGetBalancesCmd returns a new instance which can be used to issue a
// getbalances JSON-RPC command.
func NewGetBalancesCmd() *GetBalancesCmd {
	return &GetBalancesCmd{}
}

func (c *GetBalancesCmd) Method() string        { return "getbalances" }
func (c *GetBalancesCmd) Params() []interface{} { return nil }

func (c *GetBalancesCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	return v.err()
}

// GetNewAddressCmd defines the getnewaddress JSON-RPC command.
type GetNewAddressCmd struct {
	WalletScope
	Label       *string `json:"label,omitempty"`
	AddressType *string `json:"address_type,omitempty"`
}

// NewGetNewAddressCmd returns a new instance which can be used to issue a
// getnewaddress JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewGetNewAddressCmd(label, addressType *string) *GetNewAddressCmd {
	return &GetNewAddressCmd{Label: label, AddressType: addressType}
}

func (c *GetNewAddressCmd) Method() string { return "getnewaddress" }

func (c *GetNewAddressCmd) setDefaults() {
	setString(&c.Label, "")
}

func (c *GetNewAddressCmd) Params() []interface{} {
	return []interface{}{optString(c.Label), optString(c.AddressType)}
}

func (c *GetNewAddressCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInclusion("address_type", c.AddressType, AddressTypes)
	return v.err()
}

// GetRawChangeAddressCmd defines the getrawchangeaddress JSON-RPC command.
type GetRawChangeAddressCmd struct {
	WalletScope
	AddressType *string `json:"address_type,omitempty"`
}

// NewGetRawChangeAddressCmd returns a new instance which can be used to issue
// a getrawchangeaddress JSON-RPC command.
func NewGetRawChangeAddressCmd(addressType *string) *GetRawChangeAddressCmd {
	return &GetRawChangeAddressCmd{AddressType: addressType}
}

func (c *GetRawChangeAddressCmd) Method() string { return "getrawchangeaddress" }

func (c *GetRawChangeAddressCmd) Params() []interface{} {
	return []interface{}{optString(c.AddressType)}
}

func (c *GetRawChangeAddressCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInclusion("address_type", c.AddressType, AddressTypes)
	return v.err()
}

// GetReceivedByAddressCmd defines the getreceivedbyaddress JSON-RPC command.
type GetReceivedByAddressCmd struct {
	WalletScope
	Address                 string `json:"address"`
	MinConf                 *int64 `json:"minconf,omitempty"`
	IncludeImmatureCoinbase *bool  `json:"include_immature_coinbase,omitempty"`
}

// NewGetReceivedByAddressCmd returns a new instance which can be used to issue
// a getreceivedbyaddress JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewGetReceivedByAddressCmd(address string,
	minConf *int64) *GetReceivedByAddressCmd {

	return &GetReceivedByAddressCmd{Address: address, MinConf: minConf}
}

func (c *GetReceivedByAddressCmd) Method() string { return "getreceivedbyaddress" }

func (c *GetReceivedByAddressCmd) setDefaults() {
	setInt64(&c.MinConf, 1)
	setBool(&c.IncludeImmatureCoinbase, false)
}

func (c *GetReceivedByAddressCmd) Params() []interface{} {
	return []interface{}{
		c.Address, optInt64(c.MinConf),
		optBool(c.IncludeImmatureCoinbase),
	}
}

func (c *GetReceivedByAddressCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.address("address", c.Address)
	v.optInt("minconf", c.MinConf, gte(0))
	return v.err()
}

// GetTransactionCmd defines the gettransaction JSON-RPC command.
type GetTransactionCmd struct {
	WalletScope
	TxID             string `json:"txid"`
	IncludeWatchOnly *bool  `json:"include_watchonly,omitempty"`
	Verbose          *bool  `json:"verbose,omitempty"`
}

// NewGetTransactionCmd returns a new instance which can be used to issue a
// gettransaction JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewGetTransactionCmd(txHash string,
	includeWatchOnly *bool) *GetTransactionCmd {

	return &GetTransactionCmd{
		TxID:             txHash,
		IncludeWatchOnly: includeWatchOnly,
	}
}

func (c *GetTransactionCmd) Method() string { return "gettransaction" }

func (c *GetTransactionCmd) setDefaults() {
	setBool(&c.IncludeWatchOnly, false)
	setBool(&c.Verbose, false)
}

func (c *GetTransactionCmd) Params() []interface{} {
	return []interface{}{
		c.TxID, optBool(c.IncludeWatchOnly), optBool(c.Verbose),
	}
}

func (c *GetTransactionCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.txid("txid", c.TxID)
	return v.err()
}

// GetWalletInfoCmd defines the getwalletinfo JSON-RPC command.
type GetWalletInfoCmd struct {
	WalletScope
}

// NewGetWalletInfoCmd returns a new instance which can be used to issue a
// getwalletinfo JSON-RPC command.
func NewGetWalletInfoCmd() *GetWalletInfoCmd {
	return &GetWalletInfoCmd{}
}

func (c *GetWalletInfoCmd) Method() string        { return "getwalletinfo" }
func (c *GetWalletInfoCmd) Params() []interface{} { return nil }

func (c *GetWalletInfoCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	return v.err()
}

// ImportDescriptorRequest defines one descriptor of an importdescriptors
// command.
type ImportDescriptorRequest struct {
	// Descriptor to import.
	Descriptor string `json:"desc"`

	// Set this descriptor to be the active descriptor for the
	// corresponding output type/externality.
	Active *bool `json:"active,omitempty"`

	// If the descriptor is ranged, this specifies the end or the range
	// (in the form [begin, end]) to import.
	Range *DescriptorRange `json:"range,omitempty"`

	// If the descriptor is ranged, this specifies the next index to
	// generate addresses from.
	NextIndex *int64 `json:"next_index,omitempty"`

	// Time from which to start rescanning the blockchain for this
	// descriptor, in UNIX epoch time.  "now" bypasses scanning.
	Timestamp *TimestampOrNow `json:"timestamp,omitempty"`

	// Whether matching outputs should be treated as not incoming
	// payments (e.g. change).
	Internal *bool `json:"internal,omitempty"`

	// Label to assign to the address, only allowed with Internal false.
	Label *string `json:"label,omitempty"`
}

// Validate checks the request.  A label is rejected on an internal
// descriptor.
func (r *ImportDescriptorRequest) Validate() error {
	var v validator
	v.required("desc", r.Descriptor)
	if r.Timestamp == nil {
		v.add("timestamp", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	} else if !r.Timestamp.Valid() {
		v.add("timestamp", KindFormat, errTimestamp.Error(),
			map[string]interface{}{"validation": "format"})
	}
	if r.Range != nil && !r.Range.Valid() {
		v.add("range", KindFormat, errDescriptorRange.Error(),
			map[string]interface{}{"validation": "format"})
	}
	v.optInt("next_index", r.NextIndex, gte(0))

	if r.Internal != nil && *r.Internal && r.Label != nil &&
		*r.Label != "" {

		v.addf("label", "can't be set on an internal descriptor")
	}
	return v.err()
}

// ImportDescriptorsCmd defines the importdescriptors JSON-RPC command.
type ImportDescriptorsCmd struct {
	WalletScope
	Requests []ImportDescriptorRequest `json:"requests"`
}

// NewImportDescriptorsCmd returns a new instance which can be used to issue
// an importdescriptors JSON-RPC command.
func NewImportDescriptorsCmd(
	requests []ImportDescriptorRequest) *ImportDescriptorsCmd {

	return &ImportDescriptorsCmd{Requests: requests}
}

func (c *ImportDescriptorsCmd) Method() string { return "importdescriptors" }

func (c *ImportDescriptorsCmd) Params() []interface{} {
	return []interface{}{c.Requests}
}

func (c *ImportDescriptorsCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	if v.requiredList("requests", len(c.Requests)) {
		for i := range c.Requests {
			v.nest(indexField("requests", i), c.Requests[i].Validate())
		}
	}
	return v.err()
}

// KeyPoolRefillCmd defines the keypoolrefill JSON-RPC command.
type KeyPoolRefillCmd struct {
	WalletScope
	NewSize *int64 `json:"newsize,omitempty"`
}

// NewKeyPoolRefillCmd returns a new instance which can be used to issue a
// keypoolrefill JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewKeyPoolRefillCmd(newSize *int64) *KeyPoolRefillCmd {
	return &KeyPoolRefillCmd{NewSize: newSize}
}

func (c *KeyPoolRefillCmd) Method() string { return "keypoolrefill" }

func (c *KeyPoolRefillCmd) setDefaults() {
	setInt64(&c.NewSize, 100)
}

func (c *KeyPoolRefillCmd) Params() []interface{} {
	return []interface{}{optInt64(c.NewSize)}
}

func (c *KeyPoolRefillCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInt("newsize", c.NewSize, gte(0))
	return v.err()
}

// ListLabelsCmd defines the listlabels JSON-RPC command.
type ListLabelsCmd struct {
	WalletScope
	Purpose *string `json:"purpose,omitempty"`
}

// NewListLabelsCmd returns a new instance which can be used to issue a
// listlabels JSON-RPC command.
func NewListLabelsCmd(purpose *string) *ListLabelsCmd {
	return &ListLabelsCmd{Purpose: purpose}
}

func (c *ListLabelsCmd) Method() string { return "listlabels" }

func (c *ListLabelsCmd) Params() []interface{} {
	return []interface{}{optString(c.Purpose)}
}

func (c *ListLabelsCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInclusion("purpose", c.Purpose, LabelPurposes)
	return v.err()
}

// ListLockUnspentCmd defines the listlockunspent JSON-RPC command.
type ListLockUnspentCmd struct {
	WalletScope
}

// NewListLockUnspentCmd returns a new instance which can be used to issue a
// listlockunspent JSON-RPC command.
func NewListLockUnspentCmd() *ListLockUnspentCmd {
	return &ListLockUnspentCmd{}
}

func (c *ListLockUnspentCmd) Method() string        { return "listlockunspent" }
func (c *ListLockUnspentCmd) Params() []interface{} { return nil }

func (c *ListLockUnspentCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	return v.err()
}

// ListSinceBlockCmd defines the listsinceblock JSON-RPC command.
type ListSinceBlockCmd struct {
	WalletScope
	BlockHash           *string `json:"blockhash,omitempty"`
	TargetConfirmations *int64  `json:"target_confirmations,omitempty"`
	IncludeWatchOnly    *bool   `json:"include_watchonly,omitempty"`
	IncludeRemoved      *bool   `json:"include_removed,omitempty"`
}

// NewListSinceBlockCmd returns a new instance which can be used to issue a
// listsinceblock JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewListSinceBlockCmd(blockHash *string, targetConfirms *int64,
	includeWatchOnly *bool) *ListSinceBlockCmd {

	return &ListSinceBlockCmd{
		BlockHash:           blockHash,
		TargetConfirmations: targetConfirms,
		IncludeWatchOnly:    includeWatchOnly,
	}
}

func (c *ListSinceBlockCmd) Method() string { return "listsinceblock" }

func (c *ListSinceBlockCmd) setDefaults() {
	setInt64(&c.TargetConfirmations, 1)
	setBool(&c.IncludeWatchOnly, false)
	setBool(&c.IncludeRemoved, true)
}

func (c *ListSinceBlockCmd) Params() []interface{} {
	return []interface{}{
		optString(c.BlockHash), optInt64(c.TargetConfirmations),
		optBool(c.IncludeWatchOnly), optBool(c.IncludeRemoved),
	}
}

func (c *ListSinceBlockCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	if c.BlockHash != nil {
		v.hexFormat("blockhash", *c.BlockHash, 64)
	}
	v.optInt("target_confirmations", c.TargetConfirmations, gte(1))
	return v.err()
}

// ListTransactionsCmd defines the listtransactions JSON-RPC command.
type ListTransactionsCmd struct {
	WalletScope
	Label            *string `json:"label,omitempty"`
	Count            *int64  `json:"count,omitempty"`
	Skip             *int64  `json:"skip,omitempty"`
	IncludeWatchOnly *bool   `json:"include_watchonly,omitempty"`
}

// NewListTransactionsCmd returns a new instance which can be used to issue a
// listtransactions JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewListTransactionsCmd(label *string, count, skip *int64,
	includeWatchOnly *bool) *ListTransactionsCmd {

	return &ListTransactionsCmd{
		Label:            label,
		Count:            count,
		Skip:             skip,
		IncludeWatchOnly: includeWatchOnly,
	}
}

func (c *ListTransactionsCmd) Method() string { return "listtransactions" }

func (c *ListTransactionsCmd) setDefaults() {
	setString(&c.Label, "*")
	setInt64(&c.Count, 10)
	setInt64(&c.Skip, 0)
	setBool(&c.IncludeWatchOnly, false)
}

func (c *ListTransactionsCmd) Params() []interface{} {
	return []interface{}{
		optString(c.Label), optInt64(c.Count), optInt64(c.Skip),
		optBool(c.IncludeWatchOnly),
	}
}

func (c *ListTransactionsCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInt("count", c.Count, gte(0))
	v.optInt("skip", c.Skip, gte(0))
	return v.err()
}

// ListUnspentQueryOptions represents the query_options object of the
// listunspent command.
type ListUnspentQueryOptions struct {
	MinimumAmount    *float64 `json:"minimum_amount,omitempty"`
	MaximumAmount    *float64 `json:"maximum_amount,omitempty"`
	MaximumCount     *int64   `json:"maximum_count,omitempty"`
	MinimumSumAmount *float64 `json:"minimum_sum_amount,omitempty"`
}

// listUnspentQueryOptionsWire carries the node's spelling of every option.
type listUnspentQueryOptionsWire struct {
	MinimumAmount    *float64 `json:"minimumAmount,omitempty"`
	MaximumAmount    *float64 `json:"maximumAmount,omitempty"`
	MaximumCount     *int64   `json:"maximumCount,omitempty"`
	MinimumSumAmount *float64 `json:"minimumSumAmount,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for
// ListUnspentQueryOptions.
func (o ListUnspentQueryOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(listUnspentQueryOptionsWire(o))
}

// Validate checks the query options.
func (o *ListUnspentQueryOptions) Validate() error {
	var v validator
	v.optFloat("minimum_amount", o.MinimumAmount, gte(0))
	v.optFloat("maximum_amount", o.MaximumAmount, gte(0))
	v.optInt("maximum_count", o.MaximumCount, gte(0))
	v.optFloat("minimum_sum_amount", o.MinimumSumAmount, gte(0))
	if o.MinimumAmount != nil && o.MaximumAmount != nil &&
		*o.MinimumAmount > *o.MaximumAmount {

		v.addf("maximum_amount", "must not be below minimum_amount")
	}
	return v.err()
}

// ListUnspentCmd defines the listunspent JSON-RPC command.
type ListUnspentCmd struct {
	WalletScope
	MinConf       *int64                   `json:"minconf,omitempty"`
	MaxConf       *int64                   `json:"maxconf,omitempty"`
	Addresses     []string                 `json:"addresses,omitempty"`
	IncludeUnsafe *bool                    `json:"include_unsafe,omitempty"`
	QueryOptions  *ListUnspentQueryOptions `json:"query_options,omitempty"`
}

// NewListUnspentCmd returns a new instance which can be used to issue a
// listunspent JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewListUnspentCmd(minConf, maxConf *int64,
	addresses []string) *ListUnspentCmd {

	return &ListUnspentCmd{
		MinConf:   minConf,
		MaxConf:   maxConf,
		Addresses: addresses,
	}
}

func (c *ListUnspentCmd) Method() string { return "listunspent" }

func (c *ListUnspentCmd) setDefaults() {
	setInt64(&c.MinConf, 1)
	setInt64(&c.MaxConf, 9999999)
	if c.Addresses == nil {
		c.Addresses = []string{}
	}
	setBool(&c.IncludeUnsafe, true)
}

func (c *ListUnspentCmd) Params() []interface{} {
	var options interface{}
	if c.QueryOptions != nil {
		options = c.QueryOptions
	}
	return []interface{}{
		optInt64(c.MinConf), optInt64(c.MaxConf), c.Addresses,
		optBool(c.IncludeUnsafe), options,
	}
}

func (c *ListUnspentCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInt("minconf", c.MinConf, gte(0))
	v.optInt("maxconf", c.MaxConf, gte(0))
	if c.MinConf != nil && c.MaxConf != nil && *c.MaxConf < *c.MinConf {
		v.addf("maxconf", "must not be below minconf")
	}
	for i, addr := range c.Addresses {
		v.address(indexField("addresses", i), addr)
	}
	if c.QueryOptions != nil {
		v.nest("query_options", c.QueryOptions.Validate())
	}
	return v.err()
}

// LoadWalletCmd defines the loadwallet JSON-RPC command.
type LoadWalletCmd struct {
	Filename      string `json:"filename"`
	LoadOnStartup *bool  `json:"load_on_startup,omitempty"`
}

// NewLoadWalletCmd returns a new instance which can be used to issue a
// loadwallet JSON-RPC command.
func NewLoadWalletCmd(walletName string) *LoadWalletCmd {
	return &LoadWalletCmd{Filename: walletName}
}

func (c *LoadWalletCmd) Method() string { return "loadwallet" }

func (c *LoadWalletCmd) Params() []interface{} {
	return []interface{}{c.Filename, optBool(c.LoadOnStartup)}
}

func (c *LoadWalletCmd) Validate() error {
	var v validator
	if v.required("filename", c.Filename) {
		v.walletName("filename", c.Filename)
	}
	return v.err()
}

// TransactionInput represents the inputs to a transaction.  Specifically a
// transaction hash and output number pair.
type TransactionInput struct {
	Txid string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// LockUnspentCmd defines the lockunspent JSON-RPC command.
type LockUnspentCmd struct {
	WalletScope
	Unlock       *bool              `json:"unlock,omitempty"`
	Transactions []TransactionInput `json:"transactions,omitempty"`
	Persistent   *bool              `json:"persistent,omitempty"`
}

// NewLockUnspentCmd returns a new instance which can be used to issue a
// lockunspent JSON-RPC command.
func NewLockUnspentCmd(unlock bool,
	transactions []TransactionInput) *LockUnspentCmd {

	return &LockUnspentCmd{
		Unlock:       Bool(unlock),
		Transactions: transactions,
	}
}

func (c *LockUnspentCmd) Method() string { return "lockunspent" }

func (c *LockUnspentCmd) setDefaults() {
	setBool(&c.Persistent, false)
}

func (c *LockUnspentCmd) Params() []interface{} {
	var txs interface{}
	if c.Transactions != nil {
		txs = c.Transactions
	}
	return []interface{}{optBool(c.Unlock), txs, optBool(c.Persistent)}
}

func (c *LockUnspentCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	if c.Unlock == nil {
		v.add("unlock", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	}
	for i, in := range c.Transactions {
		v.txid(joinField(indexField("transactions", i), "txid"),
			in.Txid)
	}
	return v.err()
}

// RescanBlockchainCmd defines the rescanblockchain JSON-RPC command.
type RescanBlockchainCmd struct {
	WalletScope
	StartHeight *int64 `json:"start_height,omitempty"`
	StopHeight  *int64 `json:"stop_height,omitempty"`
}

// NewRescanBlockchainCmd returns a new instance which can be used to issue a
// rescanblockchain JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewRescanBlockchainCmd(startHeight,
	stopHeight *int64) *RescanBlockchainCmd {

	return &RescanBlockchainCmd{
		StartHeight: startHeight,
		StopHeight:  stopHeight,
	}
}

func (c *RescanBlockchainCmd) Method() string { return "rescanblockchain" }

func (c *RescanBlockchainCmd) setDefaults() {
	setInt64(&c.StartHeight, 0)
}

func (c *RescanBlockchainCmd) Params() []interface{} {
	return []interface{}{optInt64(c.StartHeight), optInt64(c.StopHeight)}
}

func (c *RescanBlockchainCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInt("start_height", c.StartHeight, gte(0))
	v.optInt("stop_height", c.StopHeight, gte(0))
	if c.StartHeight != nil && c.StopHeight != nil &&
		*c.StopHeight < *c.StartHeight {

		v.addf("stop_height", "must not be below start_height")
	}
	return v.err()
}

// sendOptions holds the fee parameters shared by sendtoaddress and sendmany.
type sendOptions struct {
	Replaceable  *bool    `json:"replaceable,omitempty"`
	ConfTarget   *int64   `json:"conf_target,omitempty"`
	EstimateMode *string  `json:"estimate_mode,omitempty"`
	FeeRate      *float64 `json:"fee_rate,omitempty"`
	Verbose      *bool    `json:"verbose,omitempty"`
}

func (o *sendOptions) setDefaults() {
	setString(&o.EstimateMode, EstimateModeUnset)
	setBool(&o.Verbose, false)
}

func (o *sendOptions) validate(v *validator) {
	v.optInt("conf_target", o.ConfTarget, between(minConfTarget,
		maxConfTarget))
	v.optInclusion("estimate_mode", o.EstimateMode, EstimateModes)
	v.optFloat("fee_rate", o.FeeRate, gt(0))

	if o.FeeRate != nil && o.ConfTarget != nil {
		v.addf("fee_rate", "can't be combined with conf_target")
	}
	if o.FeeRate != nil && o.EstimateMode != nil &&
		*o.EstimateMode != EstimateModeUnset {

		v.addf("fee_rate", "can't be combined with estimate_mode")
	}
}

// SendManyCmd defines the sendmany JSON-RPC command.
type SendManyCmd struct {
	WalletScope
	sendOptions     `json:",squash"`
	Dummy           *string            `json:"dummy,omitempty"`
	Amounts         map[string]float64 `json:"amounts"` // In BTC
	MinConf         *int64             `json:"minconf,omitempty"`
	Comment         *string            `json:"comment,omitempty"`
	SubtractFeeFrom []string           `json:"subtractfeefrom,omitempty"`
}

// NewSendManyCmd returns a new instance which can be used to issue a sendmany
// JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewSendManyCmd(amounts map[string]btcutil.Amount, minConf *int64,
	comment *string) *SendManyCmd {

	btc := make(map[string]float64, len(amounts))
	for addr, amt := range amounts {
		btc[addr] = amt.ToBTC()
	}
	return &SendManyCmd{
		Amounts: btc,
		MinConf: minConf,
		Comment: comment,
	}
}

func (c *SendManyCmd) Method() string { return "sendmany" }

func (c *SendManyCmd) setDefaults() {
	setString(&c.Dummy, "")
	setInt64(&c.MinConf, 1)
	c.sendOptions.setDefaults()
}

func (c *SendManyCmd) Params() []interface{} {
	var subtract interface{}
	if c.SubtractFeeFrom != nil {
		subtract = c.SubtractFeeFrom
	}
	return []interface{}{
		optString(c.Dummy), c.Amounts, optInt64(c.MinConf),
		optString(c.Comment), subtract, optBool(c.Replaceable),
		optInt64(c.ConfTarget), optString(c.EstimateMode),
		optFloat64(c.FeeRate), optBool(c.Verbose),
	}
}

func (c *SendManyCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.optInclusion("dummy", c.Dummy, []string{""})
	if len(c.Amounts) == 0 {
		v.add("amounts", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	}
	for addr, amt := range c.Amounts {
		field := joinField("amounts", addr)
		v.addressFormat(field, addr)
		v.amount(field, amt)
	}
	v.optInt("minconf", c.MinConf, gte(0))
	for i, addr := range c.SubtractFeeFrom {
		if _, ok := c.Amounts[addr]; !ok {
			v.addf(indexField("subtractfeefrom", i),
				"must be one of the addresses in amounts")
		}
	}
	c.sendOptions.validate(&v)
	return v.err()
}

// SendToAddressCmd defines the sendtoaddress JSON-RPC command.
type SendToAddressCmd struct {
	WalletScope
	sendOptions           `json:",squash"`
	Address               string   `json:"address"`
	Amount                *float64 `json:"amount,omitempty"` // In BTC
	Comment               *string  `json:"comment,omitempty"`
	CommentTo             *string  `json:"comment_to,omitempty"`
	SubtractFeeFromAmount *bool    `json:"subtractfeefromamount,omitempty"`
	AvoidReuse            *bool    `json:"avoid_reuse,omitempty"`
}

// NewSendToAddressCmd returns a new instance which can be used to issue a
// sendtoaddress JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewSendToAddressCmd(address string, amount btcutil.Amount, comment,
	commentTo *string) *SendToAddressCmd {

	return &SendToAddressCmd{
		Address:   address,
		Amount:    Float64(amount.ToBTC()),
		Comment:   comment,
		CommentTo: commentTo,
	}
}

func (c *SendToAddressCmd) Method() string { return "sendtoaddress" }

func (c *SendToAddressCmd) setDefaults() {
	setBool(&c.SubtractFeeFromAmount, false)
	setBool(&c.AvoidReuse, true)
	c.sendOptions.setDefaults()
}

func (c *SendToAddressCmd) Params() []interface{} {
	return []interface{}{
		c.Address, optFloat64(c.Amount), optString(c.Comment),
		optString(c.CommentTo), optBool(c.SubtractFeeFromAmount),
		optBool(c.Replaceable), optInt64(c.ConfTarget),
		optString(c.EstimateMode), optBool(c.AvoidReuse),
		optFloat64(c.FeeRate), optBool(c.Verbose),
	}
}

func (c *SendToAddressCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.address("address", c.Address)
	if c.Amount == nil {
		v.add("amount", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	} else {
		v.amount("amount", *c.Amount)
	}
	c.sendOptions.validate(&v)
	return v.err()
}

// SetLabelCmd defines the setlabel JSON-RPC command.  An empty label is
// allowed and removes the label from the address.
type SetLabelCmd struct {
	WalletScope
	Address string  `json:"address"`
	Label   *string `json:"label,omitempty"`
}

// NewSetLabelCmd returns a new instance which can be used to issue a setlabel
// JSON-RPC command.
func NewSetLabelCmd(address, label string) *SetLabelCmd {
	return &SetLabelCmd{Address: address, Label: &label}
}

func (c *SetLabelCmd) Method() string { return "setlabel" }

func (c *SetLabelCmd) Params() []interface{} {
	return []interface{}{c.Address, optString(c.Label)}
}

func (c *SetLabelCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.address("address", c.Address)
	v.requiredPtr("label", c.Label)
	return v.err()
}

// SignMessageCmd defines the signmessage JSON-RPC command.
type SignMessageCmd struct {
	WalletScope
	Address string `json:"address"`
	Message string `json:"message"`
}

// NewSignMessageCmd returns a new instance which can be used to issue a
// signmessage JSON-RPC command.
func NewSignMessageCmd(address, message string) *SignMessageCmd {
	return &SignMessageCmd{Address: address, Message: message}
}

func (c *SignMessageCmd) Method() string { return "signmessage" }

func (c *SignMessageCmd) Params() []interface{} {
	return []interface{}{c.Address, c.Message}
}

func (c *SignMessageCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.address("address", c.Address)
	v.required("message", c.Message)
	return v.err()
}

// PrevTx describes a previous transaction output that a transaction being
// signed depends on but that the wallet may not know about.
type PrevTx struct {
	TxID          string   `json:"txid"`
	Vout          *int64   `json:"vout,omitempty"`
	ScriptPubKey  string   `json:"script_pub_key"`
	RedeemScript  *string  `json:"redeem_script,omitempty"`
	WitnessScript *string  `json:"witness_script,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
}

// prevTxWire carries the node's spelling of every field.
type prevTxWire struct {
	TxID          string   `json:"txid"`
	Vout          *int64   `json:"vout,omitempty"`
	ScriptPubKey  string   `json:"scriptPubKey"`
	RedeemScript  *string  `json:"redeemScript,omitempty"`
	WitnessScript *string  `json:"witnessScript,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for PrevTx.
func (p PrevTx) MarshalJSON() ([]byte, error) {
	return json.Marshal(prevTxWire(p))
}

// Validate checks the previous output.
func (p *PrevTx) Validate() error {
	var v validator
	v.txid("txid", p.TxID)
	if p.Vout == nil {
		v.add("vout", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	} else {
		v.number("vout", float64(*p.Vout), gte(0))
	}
	v.rawHex("script_pub_key", p.ScriptPubKey)
	if p.RedeemScript != nil {
		v.rawHex("redeem_script", *p.RedeemScript)
	}
	if p.WitnessScript != nil {
		v.rawHex("witness_script", *p.WitnessScript)
	}
	if p.Amount != nil {
		v.amount("amount", *p.Amount)
	}
	return v.err()
}

// SignRawTransactionWithWalletCmd defines the signrawtransactionwithwallet
// JSON-RPC command.
type SignRawTransactionWithWalletCmd struct {
	WalletScope
	HexTx       string   `json:"hexstring"`
	PrevTxs     []PrevTx `json:"prevtxs,omitempty"`
	SigHashType *string  `json:"sighashtype,omitempty"`
}

// NewSignRawTransactionWithWalletCmd returns a new instance which can be used
// to issue a signrawtransactionwithwallet JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewSignRawTransactionWithWalletCmd(hexEncodedTx string, prevTxs []PrevTx,
	sigHashType *string) *SignRawTransactionWithWalletCmd {

	return &SignRawTransactionWithWalletCmd{
		HexTx:       hexEncodedTx,
		PrevTxs:     prevTxs,
		SigHashType: sigHashType,
	}
}

func (c *SignRawTransactionWithWalletCmd) Method() string {
	return "signrawtransactionwithwallet"
}

func (c *SignRawTransactionWithWalletCmd) normalizeInput() {}

func (c *SignRawTransactionWithWalletCmd) setDefaults() {
	setString(&c.SigHashType, SigHashAll)
}

func (c *SignRawTransactionWithWalletCmd) Params() []interface{} {
	var prevTxs interface{}
	if c.PrevTxs != nil {
		prevTxs = c.PrevTxs
	}
	return []interface{}{c.HexTx, prevTxs, optString(c.SigHashType)}
}

func (c *SignRawTransactionWithWalletCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.rawHex("hexstring", c.HexTx)
	for i := range c.PrevTxs {
		v.nest(indexField("prevtxs", i), c.PrevTxs[i].Validate())
	}
	v.optInclusion("sighashtype", c.SigHashType, SigHashTypes)
	return v.err()
}

// UnloadWalletCmd defines the unloadwallet JSON-RPC command.  The wallet is
// named by the first parameter and the request is sent to the node root.
type UnloadWalletCmd struct {
	WalletName    *string `json:"wallet_name,omitempty"`
	LoadOnStartup *bool   `json:"load_on_startup,omitempty"`
}

// NewUnloadWalletCmd returns a new instance which can be used to issue a
// unloadwallet JSON-RPC command.
func NewUnloadWalletCmd(walletName *string) *UnloadWalletCmd {
	return &UnloadWalletCmd{WalletName: walletName}
}

func (c *UnloadWalletCmd) Method() string { return "unloadwallet" }

func (c *UnloadWalletCmd) Params() []interface{} {
	return []interface{}{optString(c.WalletName), optBool(c.LoadOnStartup)}
}

func (c *UnloadWalletCmd) Validate() error {
	var v validator
	v.optWalletName("wallet_name", c.WalletName)
	return v.err()
}

// ListWalletsCmd defines the listwallets JSON-RPC command.
type ListWalletsCmd struct{}

// NewListWalletsCmd returns a new instance which can be used to issue a
// listwallets JSON-RPC command.
func NewListWalletsCmd() *ListWalletsCmd {
	return &ListWalletsCmd{}
}

func (c *ListWalletsCmd) Method() string        { return "listwallets" }
func (c *ListWalletsCmd) Params() []interface{} { return nil }
func (c *ListWalletsCmd) Validate() error       { return nil }

// PsbtInput represents an input to include in the PSBT created by the
// WalletCreateFundedPsbtCmd command.
type PsbtInput struct {
	Txid     string  `json:"txid"`
	Vout     uint32  `json:"vout"`
	Sequence *uint32 `json:"sequence,omitempty"`
}

// PsbtOutput represents an output to include in the PSBT created by the
// WalletCreateFundedPsbtCmd command.  It maps either an address to an amount
// in BTC or the key "data" to a hex encoded payload.
type PsbtOutput map[string]interface{}

// NewPsbtOutput returns a new instance of a PSBT output to use with the
// WalletCreateFundedPsbtCmd command.
func NewPsbtOutput(address string, amount btcutil.Amount) PsbtOutput {
	return PsbtOutput{address: amount.ToBTC()}
}

// NewPsbtDataOutput returns a new instance of a PSBT data output to use with
// the WalletCreateFundedPsbtCmd command.
func NewPsbtDataOutput(data []byte) PsbtOutput {
	return PsbtOutput{"data": hex.EncodeToString(data)}
}

// validate checks the output entries against the two accepted forms.
func (o PsbtOutput) validate(v *validator, field string) {
	if len(o) == 0 {
		v.add(field, KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
		return
	}
	for key, val := range o {
		name := joinField(field, key)
		if key == "data" {
			s, ok := val.(string)
			if !ok {
				v.add(name, KindCast, msgInvalid,
					map[string]interface{}{"validation": "cast"})
				continue
			}
			v.rawHex(name, s)
			continue
		}

		v.addressFormat(name, key)
		switch amt := val.(type) {
		case float64:
			v.amount(name, amt)
		case btcutil.Amount:
			v.amount(name, amt.ToBTC())
		default:
			v.add(name, KindCast, msgInvalid,
				map[string]interface{}{"validation": "cast"})
		}
	}
}

// WalletCreateFundedPsbtCmd defines the walletcreatefundedpsbt JSON-RPC
// command.
type WalletCreateFundedPsbtCmd struct {
	WalletScope
	Inputs      []PsbtInput     `json:"inputs,omitempty"`
	Outputs     []PsbtOutput    `json:"outputs"`
	Locktime    *int64          `json:"locktime,omitempty"`
	Options     *FundingOptions `json:"options,omitempty"`
	Bip32Derivs *bool           `json:"bip32derivs,omitempty"`
}

// NewWalletCreateFundedPsbtCmd returns a new instance which can be used to
// issue a walletcreatefundedpsbt JSON-RPC command.
func NewWalletCreateFundedPsbtCmd(
	inputs []PsbtInput, outputs []PsbtOutput, locktime *int64,
	options *FundingOptions, bip32Derivs *bool,
) *WalletCreateFundedPsbtCmd {

	return &WalletCreateFundedPsbtCmd{
		Inputs:      inputs,
		Outputs:     outputs,
		Locktime:    locktime,
		Options:     options,
		Bip32Derivs: bip32Derivs,
	}
}

func (c *WalletCreateFundedPsbtCmd) Method() string {
	return "walletcreatefundedpsbt"
}

func (c *WalletCreateFundedPsbtCmd) normalizeInput() {}

func (c *WalletCreateFundedPsbtCmd) setDefaults() {
	if c.Inputs == nil {
		c.Inputs = []PsbtInput{}
	}
	setInt64(&c.Locktime, 0)
	setBool(&c.Bip32Derivs, true)
}

func (c *WalletCreateFundedPsbtCmd) Params() []interface{} {
	var options interface{}
	if c.Options != nil {
		options = c.Options
	}
	return []interface{}{
		c.Inputs, c.Outputs, optInt64(c.Locktime), options,
		optBool(c.Bip32Derivs),
	}
}

func (c *WalletCreateFundedPsbtCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	for i, in := range c.Inputs {
		v.txid(joinField(indexField("inputs", i), "txid"), in.Txid)
	}
	if v.requiredList("outputs", len(c.Outputs)) {
		for i, out := range c.Outputs {
			out.validate(&v, indexField("outputs", i))
		}
	}
	v.optInt("locktime", c.Locktime, between(0, 4294967295))
	if c.Options != nil {
		v.nest("options", c.Options.Validate())
	}
	return v.err()
}

// WalletLockCmd defines the walletlock JSON-RPC command.
type WalletLockCmd struct {
	WalletScope
}

// NewWalletLockCmd returns a new instance which can be used to issue a
// walletlock JSON-RPC command.
func NewWalletLockCmd() *WalletLockCmd {
	return &WalletLockCmd{}
}

func (c *WalletLockCmd) Method() string        { return "walletlock" }
func (c *WalletLockCmd) Params() []interface{} { return nil }

func (c *WalletLockCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	return v.err()
}

// WalletPassphraseCmd defines the walletpassphrase JSON-RPC command.
type WalletPassphraseCmd struct {
	WalletScope
	Passphrase string `json:"passphrase"`
	Timeout    *int64 `json:"timeout,omitempty"`
}

// NewWalletPassphraseCmd returns a new instance which can be used to issue a
// walletpassphrase JSON-RPC command.
func NewWalletPassphraseCmd(passphrase string,
	timeout int64) *WalletPassphraseCmd {

	return &WalletPassphraseCmd{
		Passphrase: passphrase,
		Timeout:    Int64(timeout),
	}
}

func (c *WalletPassphraseCmd) Method() string { return "walletpassphrase" }

func (c *WalletPassphraseCmd) Params() []interface{} {
	return []interface{}{c.Passphrase, optInt64(c.Timeout)}
}

func (c *WalletPassphraseCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.required("passphrase", c.Passphrase)
	if c.Timeout == nil {
		v.add("timeout", KindRequired, msgRequired,
			map[string]interface{}{"validation": "required"})
	} else {
		v.number("timeout", float64(*c.Timeout),
			between(0, maxPassphraseTimeout))
	}
	return v.err()
}

// WalletPassphraseChangeCmd defines the walletpassphrasechange JSON-RPC
// command.
type WalletPassphraseChangeCmd struct {
	WalletScope
	OldPassphrase string `json:"oldpassphrase"`
	NewPassphrase string `json:"newpassphrase"`
}

// NewWalletPassphraseChangeCmd returns a new instance which can be used to
// issue a walletpassphrasechange JSON-RPC command.
func NewWalletPassphraseChangeCmd(oldPassphrase,
	newPassphrase string) *WalletPassphraseChangeCmd {

	return &WalletPassphraseChangeCmd{
		OldPassphrase: oldPassphrase,
		NewPassphrase: newPassphrase,
	}
}

func (c *WalletPassphraseChangeCmd) Method() string {
	return "walletpassphrasechange"
}

func (c *WalletPassphraseChangeCmd) Params() []interface{} {
	return []interface{}{c.OldPassphrase, c.NewPassphrase}
}

func (c *WalletPassphraseChangeCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.required("oldpassphrase", c.OldPassphrase)
	v.required("newpassphrase", c.NewPassphrase)
	return v.err()
}

// WalletProcessPsbtCmd defines the walletprocesspsbt JSON-RPC command.
type WalletProcessPsbtCmd struct {
	WalletScope
	Psbt        string  `json:"psbt"`
	Sign        *bool   `json:"sign,omitempty"`
	SighashType *string `json:"sighashtype,omitempty"`
	Bip32Derivs *bool   `json:"bip32derivs,omitempty"`
	Finalize    *bool   `json:"finalize,omitempty"`
}

// NewWalletProcessPsbtCmd returns a new instance which can be used to issue a
// walletprocesspsbt JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewWalletProcessPsbtCmd(psbt string, sign *bool, sighashType *string,
	bip32Derivs *bool) *WalletProcessPsbtCmd {

	return &WalletProcessPsbtCmd{
		Psbt:        psbt,
		Sign:        sign,
		SighashType: sighashType,
		Bip32Derivs: bip32Derivs,
	}
}

func (c *WalletProcessPsbtCmd) Method() string { return "walletprocesspsbt" }

func (c *WalletProcessPsbtCmd) setDefaults() {
	setBool(&c.Sign, true)
	setString(&c.SighashType, SigHashAll)
	setBool(&c.Bip32Derivs, true)
	setBool(&c.Finalize, true)
}

func (c *WalletProcessPsbtCmd) Params() []interface{} {
	return []interface{}{
		c.Psbt, optBool(c.Sign), optString(c.SighashType),
		optBool(c.Bip32Derivs), optBool(c.Finalize),
	}
}

func (c *WalletProcessPsbtCmd) Validate() error {
	var v validator
	c.validateScope(&v)
	v.required("psbt", c.Psbt)
	v.optInclusion("sighashtype", c.SighashType, SigHashTypes)
	return v.err()
}

func init() {
	// The commands in this file are only usable with a wallet.
	flags := UFWalletOnly

	MustRegisterCmd("abandontransaction", func() Cmd { return new(AbandonTransactionCmd) }, flags)
	MustRegisterCmd("backupwallet", func() Cmd { return new(BackupWalletCmd) }, flags)
	MustRegisterCmd("bumpfee", func() Cmd { return new(BumpFeeCmd) }, flags)
	MustRegisterCmd("encryptwallet", func() Cmd { return new(EncryptWalletCmd) }, flags)
	MustRegisterCmd("fundrawtransaction", func() Cmd { return new(FundRawTransactionCmd) }, flags)
	MustRegisterCmd("getaddressinfo", func() Cmd { return new(GetAddressInfoCmd) }, flags)
	MustRegisterCmd("getbalance", func() Cmd { return new(GetBalanceCmd) }, flags)
	MustRegisterCmd("getbalances", func() Cmd { return new(GetBalancesCmd) }, flags)
	MustRegisterCmd("getnewaddress", func() Cmd { return new(GetNewAddressCmd) }, flags)
	MustRegisterCmd("getrawchangeaddress", func() Cmd { return new(GetRawChangeAddressCmd) }, flags)
	MustRegisterCmd("getreceivedbyaddress", func() Cmd { return new(GetReceivedByAddressCmd) }, flags)
	MustRegisterCmd("gettransaction", func() Cmd { return new(GetTransactionCmd) }, flags)
	MustRegisterCmd("getwalletinfo", func() Cmd { return new(GetWalletInfoCmd) }, flags)
	MustRegisterCmd("importdescriptors", func() Cmd { return new(ImportDescriptorsCmd) }, flags)
	MustRegisterCmd("keypoolrefill", func() Cmd { return new(KeyPoolRefillCmd) }, flags)
	MustRegisterCmd("listlabels", func() Cmd { return new(ListLabelsCmd) }, flags)
	MustRegisterCmd("listlockunspent", func() Cmd { return new(ListLockUnspentCmd) }, flags)
	MustRegisterCmd("listsinceblock", func() Cmd { return new(ListSinceBlockCmd) }, flags)
	MustRegisterCmd("listtransactions", func() Cmd { return new(ListTransactionsCmd) }, flags)
	MustRegisterCmd("listunspent", func() Cmd { return new(ListUnspentCmd) }, flags)
	MustRegisterCmd("lockunspent", func() Cmd { return new(LockUnspentCmd) }, flags)
	MustRegisterCmd("rescanblockchain", func() Cmd { return new(RescanBlockchainCmd) }, flags)
	MustRegisterCmd("sendmany", func() Cmd { return new(SendManyCmd) }, flags)
	MustRegisterCmd("sendtoaddress", func() Cmd { return new(SendToAddressCmd) }, flags)
	MustRegisterCmd("setlabel", func() Cmd { return new(SetLabelCmd) }, flags)
	MustRegisterCmd("signmessage", func() Cmd { return new(SignMessageCmd) }, flags)
	MustRegisterCmd("signrawtransactionwithwallet", func() Cmd { return new(SignRawTransactionWithWalletCmd) }, flags)
	MustRegisterCmd("walletcreatefundedpsbt", func() Cmd { return new(WalletCreateFundedPsbtCmd) }, flags)
	MustRegisterCmd("walletlock", func() Cmd { return new(WalletLockCmd) }, flags)
	MustRegisterCmd("walletpassphrase", func() Cmd { return new(WalletPassphraseCmd) }, flags)
	MustRegisterCmd("walletpassphrasechange", func() Cmd { return new(WalletPassphraseChangeCmd) }, flags)
	MustRegisterCmd("walletprocesspsbt", func() Cmd { return new(WalletProcessPsbtCmd) }, flags)

	// Wallet management commands address the node and name the wallet in
	// their parameters.
	MustRegisterCmd("createwallet", func() Cmd { return new(CreateWalletCmd) }, 0)
	MustRegisterCmd("listwallets", func() Cmd { return new(ListWalletsCmd) }, 0)
	MustRegisterCmd("loadwallet", func() Cmd { return new(LoadWalletCmd) }, 0)
	MustRegisterCmd("unloadwallet", func() Cmd { return new(UnloadWalletCmd) }, 0)
}
