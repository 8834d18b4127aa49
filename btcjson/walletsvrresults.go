// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"encoding/json"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Transaction categories reported by the wallet.
var TransactionCategories = []string{
	"send", "receive", "generate", "immature", "orphan",
}

var errScanning = errors.New("must be false or a scan progress object")

// setStrings materializes an empty list for an absent one.
func setStrings(p *[]string) {
	if *p == nil {
		*p = []string{}
	}
}

// optHash validates an optional hash field.
func (v *validator) optHash(field string, s *string) {
	if s != nil {
		v.hexFormat(field, *s, 64)
	}
}

// CreateWalletResult models the result of the createwallet and loadwallet
// commands.
type CreateWalletResult struct {
	Name     string   `json:"name"`
	Warning  string   `json:"warning"`
	Warnings []string `json:"warnings"`
}

func (r *CreateWalletResult) setDefaults() {
	setStrings(&r.Warnings)
}

func (r *CreateWalletResult) Validate() error {
	var v validator
	if r.Name != "" {
		v.walletName("name", r.Name)
	}
	return v.err()
}

// UnloadWalletResult models the result of the unloadwallet command.
type UnloadWalletResult struct {
	Warning  string   `json:"warning"`
	Warnings []string `json:"warnings"`
}

func (r *UnloadWalletResult) setDefaults() {
	setStrings(&r.Warnings)
}

func (r *UnloadWalletResult) Validate() error { return nil }

// EmbeddedAddressInfo includes all getaddressinfo output fields, excluding
// metadata and relation to the wallet.
//
// It represents the non-metadata/non-wallet fields for GetAddressInfo, as well
// as the precise fields for an embedded P2SH or P2WSH address.
type EmbeddedAddressInfo struct {
	Address             string   `json:"address"`
	ScriptPubKey        string   `json:"script_pub_key"`
	Solvable            bool     `json:"solvable"`
	Descriptor          *string  `json:"desc,omitempty"`
	ParentDescs         []string `json:"parent_descs"`
	IsScript            bool     `json:"isscript"`
	IsChange            bool     `json:"ischange"`
	IsWitness           bool     `json:"iswitness"`
	WitnessVersion      *int64   `json:"witness_version,omitempty"`
	WitnessProgram      *string  `json:"witness_program,omitempty"`
	Script              *string  `json:"script,omitempty"`
	Hex                 *string  `json:"hex,omitempty"`
	PubKeys             []string `json:"pubkeys"`
	SignaturesRequired  *int64   `json:"sigsrequired,omitempty"`
	PubKey              *string  `json:"pubkey,omitempty"`
	IsCompressed        *bool    `json:"iscompressed,omitempty"`
	HDMasterFingerprint *string  `json:"hdmasterfingerprint,omitempty"`
	Labels              []string `json:"labels"`
}

func (e *EmbeddedAddressInfo) setDefaults() {
	setStrings(&e.ParentDescs)
	setStrings(&e.PubKeys)
	setStrings(&e.Labels)
}

// Validate checks the address fields.
func (e *EmbeddedAddressInfo) Validate() error {
	var v validator
	v.address("address", e.Address)
	v.rawHex("script_pub_key", e.ScriptPubKey)
	if e.Hex != nil {
		v.rawHex("hex", *e.Hex)
	}
	v.optInt("witness_version", e.WitnessVersion, between(0, 16))
	return v.err()
}

// GetAddressInfoResult models the result of the getaddressinfo command. It
// contains information about a bitcoin address.
//
// Reference: https://bitcoincore.org/en/doc/25.0.0/rpc/wallet/getaddressinfo
//
// The GetAddressInfoResult has three segments:
//  1. General information about the address.
//  2. Metadata (Timestamp, HDKeyPath, HDSeedID) and wallet fields
//     (IsMine, IsWatchOnly).
//  3. Information about the embedded address in case of P2SH or P2WSH.
//     Same structure as (1).
type GetAddressInfoResult struct {
	EmbeddedAddressInfo `json:",squash"`
	IsMine              bool                 `json:"ismine"`
	IsWatchOnly         bool                 `json:"iswatchonly"`
	Timestamp           *int64               `json:"timestamp,omitempty"`
	HDKeyPath           *string              `json:"hdkeypath,omitempty"`
	HDSeedID            *string              `json:"hdseedid,omitempty"`
	HDMasterKeyID       *string              `json:"hd_master_key_id,omitempty"`
	Embedded            *EmbeddedAddressInfo `json:"embedded,omitempty"`
}

func (r *GetAddressInfoResult) setDefaults() {
	r.EmbeddedAddressInfo.setDefaults()
	if r.Embedded != nil {
		r.Embedded.setDefaults()
	}
}

func (r *GetAddressInfoResult) Validate() error {
	var v validator
	v.nest("", r.EmbeddedAddressInfo.Validate())
	v.optInt("timestamp", r.Timestamp, gte(0))
	if r.Embedded != nil {
		v.nest("embedded", r.Embedded.Validate())
	}
	return v.err()
}

// BalanceDetailsResult models the details data from the `getbalances` command.
type BalanceDetailsResult struct {
	Trusted          float64  `json:"trusted"`
	UntrustedPending float64  `json:"untrusted_pending"`
	Immature         float64  `json:"immature"`
	Used             *float64 `json:"used,omitempty"`
}

// Validate checks that no balance is negative.
func (b *BalanceDetailsResult) Validate() error {
	var v validator
	v.number("trusted", b.Trusted, gte(0))
	v.number("untrusted_pending", b.UntrustedPending, gte(0))
	v.number("immature", b.Immature, gte(0))
	v.optFloat("used", b.Used, gte(0))
	return v.err()
}

// LastProcessedBlock identifies the block a wallet state was computed at.
type LastProcessedBlock struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
}

// Validate checks the block reference.
func (b *LastProcessedBlock) Validate() error {
	var v validator
	v.txid("hash", b.Hash)
	v.number("height", float64(b.Height), gte(0))
	return v.err()
}

// GetBalancesResult models the data returned from the getbalances command.
type GetBalancesResult struct {
	Mine               BalanceDetailsResult  `json:"mine"`
	WatchOnly          *BalanceDetailsResult `json:"watchonly,omitempty"`
	LastProcessedBlock *LastProcessedBlock   `json:"lastprocessedblock,omitempty"`
}

func (r *GetBalancesResult) Validate() error {
	var v validator
	v.nest("mine", r.Mine.Validate())
	if r.WatchOnly != nil {
		v.nest("watchonly", r.WatchOnly.Validate())
	}
	if r.LastProcessedBlock != nil {
		v.nest("lastprocessedblock", r.LastProcessedBlock.Validate())
	}
	return v.err()
}

// GetTransactionDetailsResult models the details data from the gettransaction
// command.
//
// This models the "short" version of the ListTransactionsItem type, which
// excludes fields common to the transaction.  These common fields are instead
// part of the GetTransactionResult.
type GetTransactionDetailsResult struct {
	InvolvesWatchOnly bool     `json:"involves_watchonly,omitempty"`
	Address           string   `json:"address,omitempty"`
	Category          string   `json:"category"`
	Amount            float64  `json:"amount"`
	Label             *string  `json:"label,omitempty"`
	Vout              uint32   `json:"vout"`
	Fee               *float64 `json:"fee,omitempty"`
	Abandoned         *bool    `json:"abandoned,omitempty"`
	ParentDescs       []string `json:"parent_descs"`
}

// Validate checks a single detail entry.
func (d *GetTransactionDetailsResult) Validate() error {
	var v validator
	v.inclusion("category", d.Category, TransactionCategories)
	if d.Address != "" {
		v.addressFormat("address", d.Address)
	}
	return v.err()
}

// GetTransactionResult models the data from the gettransaction command.
type GetTransactionResult struct {
	Amount            float64                       `json:"amount"`
	Fee               *float64                      `json:"fee,omitempty"`
	Confirmations     int64                         `json:"confirmations"`
	Generated         bool                          `json:"generated,omitempty"`
	Trusted           *bool                         `json:"trusted,omitempty"`
	BlockHash         *string                       `json:"blockhash,omitempty"`
	BlockHeight       *int64                        `json:"blockheight,omitempty"`
	BlockIndex        *int64                        `json:"blockindex,omitempty"`
	BlockTime         *int64                        `json:"blocktime,omitempty"`
	TxID              string                        `json:"txid"`
	WTxID             string                        `json:"wtxid,omitempty"`
	WalletConflicts   []string                      `json:"walletconflicts"`
	ReplacedByTxID    *string                       `json:"replaced_by_txid,omitempty"`
	ReplacesTxID      *string                       `json:"replaces_txid,omitempty"`
	Comment           *string                       `json:"comment,omitempty"`
	To                *string                       `json:"to,omitempty"`
	Time              int64                         `json:"time"`
	TimeReceived      int64                         `json:"timereceived"`
	BIP125Replaceable string                        `json:"bip125_replaceable,omitempty"`
	Details           []GetTransactionDetailsResult `json:"details"`
	Hex               string                        `json:"hex"`
	Decoded           *TxRawResult                  `json:"decoded,omitempty"`
}

func (r *GetTransactionResult) setDefaults() {
	setStrings(&r.WalletConflicts)
	if r.Details == nil {
		r.Details = []GetTransactionDetailsResult{}
	}
	for i := range r.Details {
		setStrings(&r.Details[i].ParentDescs)
	}
	if r.Decoded != nil {
		r.Decoded.setDefaults()
	}
}

func (r *GetTransactionResult) Validate() error {
	var v validator
	v.txid("txid", r.TxID)
	v.optHash("blockhash", r.BlockHash)
	v.rawHex("hex", r.Hex)
	for i, txid := range r.WalletConflicts {
		v.txid(indexField("walletconflicts", i), txid)
	}
	for i := range r.Details {
		v.nest(indexField("details", i), r.Details[i].Validate())
	}
	if r.Decoded != nil {
		v.nest("decoded", r.Decoded.Validate())
	}
	return v.err()
}

// Hash returns the transaction id as a chainhash.Hash.
func (r *GetTransactionResult) Hash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.TxID)
}

// ScanProgress describes an ongoing wallet rescan.
type ScanProgress struct {
	Duration int64   `json:"duration"`
	Progress float64 `json:"progress"`
}

// ScanningOrFalse is the scanning field of getwalletinfo.  The node reports
// false when no scan is running and a progress object otherwise.
type ScanningOrFalse struct {
	Progress *ScanProgress
}

// IsScanning reports whether a rescan is in progress.
func (s ScanningOrFalse) IsScanning() bool {
	return s.Progress != nil
}

// MarshalJSON implements the json.Marshaler interface
func (s ScanningOrFalse) MarshalJSON() ([]byte, error) {
	if s.Progress == nil {
		return json.Marshal(false)
	}
	return json.Marshal(s.Progress)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *ScanningOrFalse) UnmarshalJSON(data []byte) error {
	var unmarshalled interface{}
	if err := json.Unmarshal(data, &unmarshalled); err != nil {
		return err
	}

	parsed, err := parseScanning(unmarshalled)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// parseScanning converts a decoded JSON value into a ScanningOrFalse.
func parseScanning(data interface{}) (ScanningOrFalse, error) {
	switch t := data.(type) {
	case ScanningOrFalse:
		return t, nil

	case bool:
		if t {
			return ScanningOrFalse{}, errScanning
		}
		return ScanningOrFalse{}, nil

	case map[string]interface{}:
		duration, ok := nonNegativeInt(t["duration"])
		if !ok {
			return ScanningOrFalse{}, errScanning
		}
		progress, ok := t["progress"].(float64)
		if !ok || progress < 0 || progress > 1 {
			return ScanningOrFalse{}, errScanning
		}
		return ScanningOrFalse{Progress: &ScanProgress{
			Duration: duration,
			Progress: progress,
		}}, nil
	}

	return ScanningOrFalse{}, errScanning
}

// GetWalletInfoResult models the result of the getwalletinfo command.
type GetWalletInfoResult struct {
	WalletName            string              `json:"walletname"`
	WalletVersion         int64               `json:"walletversion"`
	Format                string              `json:"format"`
	TransactionCount      int64               `json:"txcount"`
	KeyPoolOldest         *int64              `json:"keypoololdest,omitempty"`
	KeyPoolSize           int64               `json:"keypoolsize"`
	KeyPoolSizeHDInternal *int64              `json:"keypoolsize_hd_internal,omitempty"`
	UnlockedUntil         *int64              `json:"unlocked_until,omitempty"`
	PayTransactionFee     float64             `json:"paytxfee"`
	HDSeedID              *string             `json:"hdseedid,omitempty"`
	PrivateKeysEnabled    bool                `json:"private_keys_enabled"`
	AvoidReuse            bool                `json:"avoid_reuse"`
	Scanning              ScanningOrFalse     `json:"scanning"`
	Descriptors           bool                `json:"descriptors"`
	ExternalSigner        bool                `json:"external_signer"`
	LastProcessedBlock    *LastProcessedBlock `json:"lastprocessedblock,omitempty"`
}

func (r *GetWalletInfoResult) Validate() error {
	var v validator
	v.number("txcount", float64(r.TransactionCount), gte(0))
	v.number("keypoolsize", float64(r.KeyPoolSize), gte(0))
	v.optInt("unlocked_until", r.UnlockedUntil, gte(0))
	v.number("paytxfee", r.PayTransactionFee, gte(0))
	if r.LastProcessedBlock != nil {
		v.nest("lastprocessedblock", r.LastProcessedBlock.Validate())
	}
	return v.err()
}

// ImportDescriptorsItemResult models the outcome of one request of an
// importdescriptors command.
type ImportDescriptorsItemResult struct {
	Success  bool      `json:"success"`
	Warnings []string  `json:"warnings"`
	Error    *RPCError `json:"error,omitempty"`
}

// Validate requires an error object on every failed import.
func (r *ImportDescriptorsItemResult) Validate() error {
	var v validator
	if !r.Success && r.Error == nil {
		v.addf("error", "is required when success is false")
	}
	return v.err()
}

// ImportDescriptorsResult models the data from the importdescriptors command.
// The node returns a bare array with one entry per request.
type ImportDescriptorsResult struct {
	Results []ImportDescriptorsItemResult `json:"results"`
}

func (r *ImportDescriptorsResult) listKey() string { return "results" }

func (r *ImportDescriptorsResult) setDefaults() {
	if r.Results == nil {
		r.Results = []ImportDescriptorsItemResult{}
	}
	for i := range r.Results {
		setStrings(&r.Results[i].Warnings)
	}
}

func (r *ImportDescriptorsResult) Validate() error {
	var v validator
	for i := range r.Results {
		v.nest(indexField("results", i), r.Results[i].Validate())
	}
	return v.err()
}

// ListTransactionsItem models a single wallet transaction of the
// listtransactions and listsinceblock commands.
type ListTransactionsItem struct {
	InvolvesWatchOnly bool     `json:"involves_watchonly,omitempty"`
	Address           string   `json:"address,omitempty"`
	Category          string   `json:"category"`
	Amount            float64  `json:"amount"`
	Label             *string  `json:"label,omitempty"`
	Vout              uint32   `json:"vout"`
	Fee               *float64 `json:"fee,omitempty"`
	Confirmations     int64    `json:"confirmations"`
	Generated         bool     `json:"generated,omitempty"`
	Trusted           *bool    `json:"trusted,omitempty"`
	BlockHash         *string  `json:"blockhash,omitempty"`
	BlockHeight       *int64   `json:"blockheight,omitempty"`
	BlockIndex        *int64   `json:"blockindex,omitempty"`
	BlockTime         *int64   `json:"blocktime,omitempty"`
	TxID              string   `json:"txid"`
	WTxID             string   `json:"wtxid,omitempty"`
	WalletConflicts   []string `json:"walletconflicts"`
	ReplacedByTxID    *string  `json:"replaced_by_txid,omitempty"`
	ReplacesTxID      *string  `json:"replaces_txid,omitempty"`
	Comment           *string  `json:"comment,omitempty"`
	Time              int64    `json:"time"`
	TimeReceived      int64    `json:"timereceived"`
	BIP125Replaceable string   `json:"bip125_replaceable,omitempty"`
	Abandoned         *bool    `json:"abandoned,omitempty"`
	ParentDescs       []string `json:"parent_descs"`
}

func (t *ListTransactionsItem) setDefaults() {
	setStrings(&t.WalletConflicts)
	setStrings(&t.ParentDescs)
}

// Validate checks a single transaction entry.
func (t *ListTransactionsItem) Validate() error {
	var v validator
	v.txid("txid", t.TxID)
	v.inclusion("category", t.Category, TransactionCategories)
	v.optHash("blockhash", t.BlockHash)
	if t.Address != "" {
		v.addressFormat("address", t.Address)
	}
	return v.err()
}

// ListTransactionsResult models the data from the listtransactions command.
// The node returns a bare array of transactions.
type ListTransactionsResult struct {
	Transactions []ListTransactionsItem `json:"transactions"`
}

func (r *ListTransactionsResult) listKey() string { return "transactions" }

func (r *ListTransactionsResult) setDefaults() {
	r.Transactions = defaultItems(r.Transactions)
}

func (r *ListTransactionsResult) Validate() error {
	var v validator
	validateItems(&v, "transactions", r.Transactions)
	return v.err()
}

// defaultItems materializes an empty list and the list defaults of every
// item.
func defaultItems(items []ListTransactionsItem) []ListTransactionsItem {
	if items == nil {
		return []ListTransactionsItem{}
	}
	for i := range items {
		items[i].setDefaults()
	}
	return items
}

func validateItems(v *validator, field string, items []ListTransactionsItem) {
	for i := range items {
		v.nest(indexField(field, i), items[i].Validate())
	}
}

// ListSinceBlockResult models the data from the listsinceblock command.
type ListSinceBlockResult struct {
	Transactions []ListTransactionsItem `json:"transactions"`
	Removed      []ListTransactionsItem `json:"removed"`
	LastBlock    string                 `json:"lastblock"`
}

func (r *ListSinceBlockResult) setDefaults() {
	r.Transactions = defaultItems(r.Transactions)
	r.Removed = defaultItems(r.Removed)
}

func (r *ListSinceBlockResult) Validate() error {
	var v validator
	validateItems(&v, "transactions", r.Transactions)
	validateItems(&v, "removed", r.Removed)
	v.txid("lastblock", r.LastBlock)
	return v.err()
}

// ListUnspentItem models a single unspent output of the listunspent command.
type ListUnspentItem struct {
	TxID          string   `json:"txid"`
	Vout          uint32   `json:"vout"`
	Address       string   `json:"address,omitempty"`
	Label         *string  `json:"label,omitempty"`
	ScriptPubKey  string   `json:"script_pub_key"`
	Amount        float64  `json:"amount"`
	Confirmations int64    `json:"confirmations"`
	RedeemScript  *string  `json:"redeem_script,omitempty"`
	WitnessScript *string  `json:"witness_script,omitempty"`
	Spendable     bool     `json:"spendable"`
	Solvable      bool     `json:"solvable"`
	Reused        *bool    `json:"reused,omitempty"`
	Descriptor    *string  `json:"desc,omitempty"`
	ParentDescs   []string `json:"parent_descs"`
	Safe          bool     `json:"safe"`
}

// Validate checks a single unspent output.
func (u *ListUnspentItem) Validate() error {
	var v validator
	v.txid("txid", u.TxID)
	v.rawHex("script_pub_key", u.ScriptPubKey)
	v.number("amount", u.Amount, gte(0))
	v.number("confirmations", float64(u.Confirmations), gte(0))
	if u.RedeemScript != nil {
		v.rawHex("redeem_script", *u.RedeemScript)
	}
	if u.WitnessScript != nil {
		v.rawHex("witness_script", *u.WitnessScript)
	}
	return v.err()
}

// ListUnspentResult models a successful response from the listunspent
// request.  The node returns a bare array of outputs.
type ListUnspentResult struct {
	Unspent []ListUnspentItem `json:"unspent"`
}

func (r *ListUnspentResult) listKey() string { return "unspent" }

func (r *ListUnspentResult) setDefaults() {
	if r.Unspent == nil {
		r.Unspent = []ListUnspentItem{}
	}
	for i := range r.Unspent {
		setStrings(&r.Unspent[i].ParentDescs)
	}
}

func (r *ListUnspentResult) Validate() error {
	var v validator
	for i := range r.Unspent {
		v.nest(indexField("unspent", i), r.Unspent[i].Validate())
	}
	return v.err()
}

// ListLockUnspentResult models the data from the listlockunspent command.
// The node returns a bare array of outpoints.
type ListLockUnspentResult struct {
	Outpoints []TransactionInput `json:"outpoints"`
}

func (r *ListLockUnspentResult) listKey() string { return "outpoints" }

func (r *ListLockUnspentResult) setDefaults() {
	if r.Outpoints == nil {
		r.Outpoints = []TransactionInput{}
	}
}

func (r *ListLockUnspentResult) Validate() error {
	var v validator
	for i, op := range r.Outpoints {
		v.txid(joinField(indexField("outpoints", i), "txid"), op.Txid)
	}
	return v.err()
}

// SendResult models the data from the sendtoaddress and sendmany commands.
// The node returns the bare transaction id unless the call was made with
// verbose set, in which case an object carrying the fee reason is returned.
type SendResult struct {
	TxID      string  `json:"txid"`
	FeeReason *string `json:"fee_reason,omitempty"`
}

func (r *SendResult) setString(s string) { r.TxID = s }

func (r *SendResult) Validate() error {
	var v validator
	v.txid("txid", r.TxID)
	return v.err()
}

// Hash returns the transaction id as a chainhash.Hash.
func (r *SendResult) Hash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.TxID)
}

// SignRawTransactionError models the data that contains script verification
// errors from the signrawtransactionwithwallet request.
type SignRawTransactionError struct {
	TxID      string   `json:"txid"`
	Vout      uint32   `json:"vout"`
	Witness   []string `json:"witness"`
	ScriptSig string   `json:"script_sig"`
	Sequence  uint32   `json:"sequence"`
	Error     string   `json:"error"`
}

// SignRawTransactionWithWalletResult models the data from the
// signrawtransactionwithwallet command.
type SignRawTransactionWithWalletResult struct {
	Hex      string                    `json:"hex"`
	Complete bool                      `json:"complete"`
	Errors   []SignRawTransactionError `json:"errors"`
}

func (r *SignRawTransactionWithWalletResult) setDefaults() {
	if r.Errors == nil {
		r.Errors = []SignRawTransactionError{}
	}
	for i := range r.Errors {
		setStrings(&r.Errors[i].Witness)
	}
}

func (r *SignRawTransactionWithWalletResult) Validate() error {
	var v validator
	v.rawHex("hex", r.Hex)
	for i, e := range r.Errors {
		v.txid(joinField(indexField("errors", i), "txid"), e.TxID)
	}
	if r.Complete && len(r.Errors) > 0 {
		v.addf("complete", "can't be true when errors are reported")
	}
	return v.err()
}

// FundRawTransactionResult models the data from the fundrawtransaction
// command.
type FundRawTransactionResult struct {
	Hex       string  `json:"hex"`
	Fee       float64 `json:"fee"`
	ChangePos int64   `json:"changepos"`
}

func (r *FundRawTransactionResult) Validate() error {
	var v validator
	v.rawHex("hex", r.Hex)
	v.number("fee", r.Fee, gte(0))
	v.number("changepos", float64(r.ChangePos), gte(-1))
	return v.err()
}

// WalletCreateFundedPsbtResult models the data returned from the
// walletcreatefundedpsbt command.
type WalletCreateFundedPsbtResult struct {
	Psbt      string  `json:"psbt"`
	Fee       float64 `json:"fee"`
	ChangePos int64   `json:"changepos"`
}

func (r *WalletCreateFundedPsbtResult) Validate() error {
	var v validator
	v.required("psbt", r.Psbt)
	v.number("fee", r.Fee, gte(0))
	v.number("changepos", float64(r.ChangePos), gte(-1))
	return v.err()
}

// WalletProcessPsbtResult models the data returned from the
// walletprocesspsbt command.
type WalletProcessPsbtResult struct {
	Psbt     string  `json:"psbt"`
	Complete bool    `json:"complete"`
	Hex      *string `json:"hex,omitempty"`
}

func (r *WalletProcessPsbtResult) Validate() error {
	var v validator
	v.required("psbt", r.Psbt)
	if r.Hex != nil {
		v.rawHex("hex", *r.Hex)
	}
	return v.err()
}

// BumpFeeResult models the data returned from the bumpfee command.
type BumpFeeResult struct {
	TxID    string   `json:"txid"`
	OrigFee float64  `json:"origfee"`
	Fee     float64  `json:"fee"`
	Errors  []string `json:"errors"`
}

func (r *BumpFeeResult) setDefaults() {
	setStrings(&r.Errors)
}

func (r *BumpFeeResult) Validate() error {
	var v validator
	v.txid("txid", r.TxID)
	v.number("origfee", r.OrigFee, gte(0))
	v.number("fee", r.Fee, gte(0))
	return v.err()
}

// RescanBlockchainResult models the data returned from the rescanblockchain
// command.
type RescanBlockchainResult struct {
	StartHeight int64 `json:"start_height"`
	StopHeight  int64 `json:"stop_height"`
}

func (r *RescanBlockchainResult) Validate() error {
	var v validator
	v.number("start_height", float64(r.StartHeight), gte(0))
	v.number("stop_height", float64(r.StopHeight), gte(0))
	if r.StopHeight < r.StartHeight {
		v.addf("stop_height", "must not be below start_height")
	}
	return v.err()
}
