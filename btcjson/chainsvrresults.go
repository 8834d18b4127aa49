// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Chains lists the chain names reported by getblockchaininfo.
var Chains = []string{"main", "test", "testnet4", "signet", "regtest"}

// blockHeaderHexLen is the length of a hex encoded 80 byte block header.
const blockHeaderHexLen = 160

var errWarningList = errors.New("must be a string or a list of strings")

// WarningList holds the warnings of a node.  Nodes before v28 report a single
// string, later ones a list; both decode into a list and an empty string
// yields an empty list.
type WarningList []string

// UnmarshalJSON implements the json.Unmarshaler interface for WarningList.
func (w *WarningList) UnmarshalJSON(data []byte) error {
	var unmarshalled interface{}
	if err := json.Unmarshal(data, &unmarshalled); err != nil {
		return err
	}

	parsed, err := parseWarningList(unmarshalled)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// parseWarningList converts a decoded JSON value into a WarningList.
func parseWarningList(data interface{}) (WarningList, error) {
	switch t := data.(type) {
	case WarningList:
		return t, nil

	case string:
		if t == "" {
			return WarningList{}, nil
		}
		return WarningList{t}, nil

	case []interface{}:
		list := make(WarningList, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, errWarningList
			}
			list = append(list, s)
		}
		return list, nil
	}

	// Native string slices.
	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Slice &&
		rv.Type().Elem().Kind() == reflect.String {

		list := make(WarningList, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).String()
		}
		return list, nil
	}

	return nil, errWarningList
}

func setWarnings(p *WarningList) {
	if *p == nil {
		*p = WarningList{}
	}
}

// EstimateSmartFeeResult models the data returned from the estimatesmartfee
// command.  FeeRate is expressed in BTC/kvB and is absent when no estimate is
// available, in which case Errors explains why.
type EstimateSmartFeeResult struct {
	FeeRate *float64 `json:"feerate,omitempty"`
	Errors  []string `json:"errors"`
	Blocks  int64    `json:"blocks"`
}

func (r *EstimateSmartFeeResult) setDefaults() {
	setStrings(&r.Errors)
}

func (r *EstimateSmartFeeResult) Validate() error {
	var v validator
	v.optFloat("feerate", r.FeeRate, gt(0))
	v.number("blocks", float64(r.Blocks), gte(0))
	return v.err()
}

// Bip9Statuses lists the states of a BIP 9 deployment.
var Bip9Statuses = []string{"defined", "started", "locked_in", "active",
	"failed"}

// SoftForkTypes lists the kinds of soft-fork deployments.
var SoftForkTypes = []string{"buried", "bip9"}

// Bip9Statistics describes the signalling progress of a BIP 9 deployment.
// Threshold and Possible are only reported while the deployment is started.
type Bip9Statistics struct {
	Period    *int64 `json:"period"`
	Threshold *int64 `json:"threshold,omitempty"`
	Elapsed   *int64 `json:"elapsed"`
	Count     *int64 `json:"count"`
	Possible  *bool  `json:"possible,omitempty"`
}

func (s *Bip9Statistics) Validate() error {
	var v validator
	v.requiredInt("period", s.Period, gt(0))
	v.optInt("threshold", s.Threshold, gt(0))

	// Signalling blocks are counted within the elapsed part of the period.
	elapsed := gte(0)
	if s.Period != nil {
		elapsed = between(0, float64(*s.Period))
	}
	v.requiredInt("elapsed", s.Elapsed, elapsed)

	count := gte(0)
	if s.Elapsed != nil {
		count = between(0, float64(*s.Elapsed))
	}
	v.requiredInt("count", s.Count, count)
	return v.err()
}

// Bip9SoftForkDescription describes the state of a BIP 9 deployment.
type Bip9SoftForkDescription struct {
	Status              string          `json:"status"`
	Bit                 *int64          `json:"bit,omitempty"`
	StartTime           int64           `json:"start_time"`
	Timeout             int64           `json:"timeout"`
	Since               int64           `json:"since"`
	MinActivationHeight int64           `json:"min_activation_height"`
	Statistics          *Bip9Statistics `json:"statistics,omitempty"`
}

func (d *Bip9SoftForkDescription) Validate() error {
	var v validator
	v.inclusion("status", d.Status, Bip9Statuses)
	v.optInt("bit", d.Bit, between(0, 28))
	v.number("since", float64(d.Since), gte(0))
	v.number("min_activation_height", float64(d.MinActivationHeight),
		gte(0))
	if d.Statistics != nil {
		v.nest("statistics", d.Statistics.Validate())
	}
	return v.err()
}

// SoftForkDescription describes the current state of a soft-fork deployment.
// Buried deployments carry their activation height, BIP 9 ones their bip9
// state.
type SoftForkDescription struct {
	Type   string                   `json:"type"`
	Bip9   *Bip9SoftForkDescription `json:"bip9,omitempty"`
	Height *int64                   `json:"height,omitempty"`
	Active bool                     `json:"active"`
}

func (d *SoftForkDescription) Validate() error {
	var v validator
	v.inclusion("type", d.Type, SoftForkTypes)
	switch d.Type {
	case "buried":
		v.requiredInt("height", d.Height, gte(0))

	case "bip9":
		if d.Bip9 == nil {
			v.add("bip9", KindRequired, msgRequired,
				map[string]interface{}{"validation": "required"})
			break
		}
		v.nest("bip9", d.Bip9.Validate())
		v.optInt("height", d.Height, gte(0))
	}
	return v.err()
}

// GetBlockChainInfoResult models the data returned from the getblockchaininfo
// command.
type GetBlockChainInfoResult struct {
	Chain                string                         `json:"chain"`
	Blocks               int64                          `json:"blocks"`
	Headers              int64                          `json:"headers"`
	BestBlockHash        string                         `json:"bestblockhash"`
	Difficulty           float64                        `json:"difficulty"`
	Time                 int64                          `json:"time"`
	MedianTime           int64                          `json:"mediantime"`
	VerificationProgress float64                        `json:"verificationprogress"`
	InitialBlockDownload bool                           `json:"initialblockdownload"`
	ChainWork            string                         `json:"chainwork"`
	SizeOnDisk           int64                          `json:"size_on_disk"`
	Pruned               bool                           `json:"pruned"`
	PruneHeight          *int64                         `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool                          `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *int64                         `json:"prune_target_size,omitempty"`
	SoftForks            map[string]SoftForkDescription `json:"softforks,omitempty"`
	Warnings             WarningList                    `json:"warnings"`
}

func (r *GetBlockChainInfoResult) setDefaults() {
	setWarnings(&r.Warnings)
}

func (r *GetBlockChainInfoResult) Validate() error {
	var v validator
	v.inclusion("chain", r.Chain, Chains)
	v.number("blocks", float64(r.Blocks), gte(0))
	v.number("headers", float64(r.Headers), gte(0))
	v.txid("bestblockhash", r.BestBlockHash)
	v.number("verificationprogress", r.VerificationProgress, between(0, 1))
	if r.ChainWork != "" {
		v.hexFormat("chainwork", r.ChainWork, 64)
	}

	names := make([]string, 0, len(r.SoftForks))
	for name := range r.SoftForks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sf := r.SoftForks[name]
		v.nest("softforks."+name, sf.Validate())
	}
	return v.err()
}

// GetBlockHeaderResult models the data from the getblockheader command.  With
// verbose set the node returns an object and Verbose is true, otherwise only
// Hex is populated with the serialized header.
type GetBlockHeaderResult struct {
	Hex     string `json:"-"`
	Verbose bool   `json:"-"`

	Hash          string  `json:"hash"`
	Confirmations int64   `json:"confirmations"`
	Height        int64   `json:"height"`
	Version       int32   `json:"version"`
	VersionHex    string  `json:"version_hex"`
	MerkleRoot    string  `json:"merkleroot"`
	Time          int64   `json:"time"`
	MedianTime    int64   `json:"mediantime"`
	Nonce         uint32  `json:"nonce"`
	Bits          string  `json:"bits"`
	Difficulty    float64 `json:"difficulty"`
	ChainWork     string  `json:"chainwork"`
	NTx           int64   `json:"n_tx"`
	PreviousHash  *string `json:"previousblockhash,omitempty"`
	NextHash      *string `json:"nextblockhash,omitempty"`
}

func (r *GetBlockHeaderResult) setString(s string) {
	r.Hex = s
	r.Verbose = false
}

func (r *GetBlockHeaderResult) fromObject() { r.Verbose = true }

func (r *GetBlockHeaderResult) Validate() error {
	var v validator
	if !r.Verbose {
		v.hex("hex", r.Hex, blockHeaderHexLen)
		return v.err()
	}
	v.txid("hash", r.Hash)
	v.txid("merkleroot", r.MerkleRoot)
	v.number("height", float64(r.Height), gte(0))
	v.optHash("previousblockhash", r.PreviousHash)
	v.optHash("nextblockhash", r.NextHash)
	return v.err()
}

// BlockHash returns the hash of the header.  It is only available for
// verbose results.
func (r *GetBlockHeaderResult) BlockHash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.Hash)
}

// MempoolFees holds the fees of a mempool entry in BTC.
type MempoolFees struct {
	Base       float64 `json:"base"`
	Modified   float64 `json:"modified"`
	Ancestor   float64 `json:"ancestor"`
	Descendant float64 `json:"descendant"`
}

// GetMempoolEntryResult models the data returned from the getmempoolentry
// command.
type GetMempoolEntryResult struct {
	VSize             int64       `json:"vsize"`
	Weight            int64       `json:"weight"`
	Time              int64       `json:"time"`
	Height            int64       `json:"height"`
	DescendantCount   int64       `json:"descendantcount"`
	DescendantSize    int64       `json:"descendantsize"`
	AncestorCount     int64       `json:"ancestorcount"`
	AncestorSize      int64       `json:"ancestorsize"`
	WTxID             string      `json:"wtxid"`
	Fees              MempoolFees `json:"fees"`
	Depends           []string    `json:"depends"`
	SpentBy           []string    `json:"spentby"`
	BIP125Replaceable bool        `json:"bip125_replaceable"`
	Unbroadcast       bool        `json:"unbroadcast"`
}

func (r *GetMempoolEntryResult) setDefaults() {
	setStrings(&r.Depends)
	setStrings(&r.SpentBy)
}

func (r *GetMempoolEntryResult) Validate() error {
	var v validator
	v.number("vsize", float64(r.VSize), gt(0))
	v.txid("wtxid", r.WTxID)
	v.number("fees.base", r.Fees.Base, gte(0))
	for i, txid := range r.Depends {
		v.txid(indexField("depends", i), txid)
	}
	for i, txid := range r.SpentBy {
		v.txid(indexField("spentby", i), txid)
	}
	return v.err()
}

// GetMempoolInfoResult models the data returned from the getmempoolinfo
// command.
type GetMempoolInfoResult struct {
	Loaded              bool    `json:"loaded"`
	Size                int64   `json:"size"`
	Bytes               int64   `json:"bytes"`
	Usage               int64   `json:"usage"`
	TotalFee            float64 `json:"total_fee"`
	MaxMempool          int64   `json:"maxmempool"`
	MempoolMinFee       float64 `json:"mempoolminfee"`
	MinRelayTxFee       float64 `json:"minrelaytxfee"`
	IncrementalRelayFee float64 `json:"incrementalrelayfee"`
	UnbroadcastCount    int64   `json:"unbroadcastcount"`
	FullRBF             bool    `json:"fullrbf"`
}

func (r *GetMempoolInfoResult) Validate() error {
	var v validator
	v.number("size", float64(r.Size), gte(0))
	v.number("bytes", float64(r.Bytes), gte(0))
	v.number("usage", float64(r.Usage), gte(0))
	v.number("mempoolminfee", r.MempoolMinFee, gte(0))
	v.number("minrelaytxfee", r.MinRelayTxFee, gte(0))
	return v.err()
}

// LocalAddressesResult models the localaddresses data from the getnetworkinfo
// command.
type LocalAddressesResult struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Score   int32  `json:"score"`
}

// NetworksResult models the networks data from the getnetworkinfo command.
type NetworksResult struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// GetNetworkInfoResult models the data returned from the getnetworkinfo
// command.
type GetNetworkInfoResult struct {
	Version            int32                  `json:"version"`
	SubVersion         string                 `json:"subversion"`
	ProtocolVersion    int32                  `json:"protocolversion"`
	LocalServices      string                 `json:"localservices"`
	LocalServicesNames []string               `json:"localservicesnames"`
	LocalRelay         bool                   `json:"localrelay"`
	TimeOffset         int64                  `json:"timeoffset"`
	NetworkActive      bool                   `json:"networkactive"`
	Connections        int32                  `json:"connections"`
	ConnectionsIn      int32                  `json:"connections_in"`
	ConnectionsOut     int32                  `json:"connections_out"`
	Networks           []NetworksResult       `json:"networks"`
	RelayFee           float64                `json:"relayfee"`
	IncrementalFee     float64                `json:"incrementalfee"`
	LocalAddresses     []LocalAddressesResult `json:"localaddresses"`
	Warnings           WarningList            `json:"warnings"`
}

func (r *GetNetworkInfoResult) setDefaults() {
	setStrings(&r.LocalServicesNames)
	if r.Networks == nil {
		r.Networks = []NetworksResult{}
	}
	if r.LocalAddresses == nil {
		r.LocalAddresses = []LocalAddressesResult{}
	}
	setWarnings(&r.Warnings)
}

func (r *GetNetworkInfoResult) Validate() error {
	var v validator
	v.number("version", float64(r.Version), gt(0))
	v.required("subversion", r.SubVersion)
	v.number("connections", float64(r.Connections), gte(0))
	v.number("relayfee", r.RelayFee, gte(0))
	return v.err()
}

// ScriptPubKeyResult models the scriptPubKey data of a tx script.  It is
// defined separately since it is used by multiple commands.
type ScriptPubKeyResult struct {
	Asm       string   `json:"asm"`
	Desc      string   `json:"desc,omitempty"`
	Hex       string   `json:"hex,omitempty"`
	ReqSigs   int32    `json:"req_sigs,omitempty"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}

// ScriptSig models a signature script.  It is defined separately since it only
// applies to non-coinbase.  Therefore the field in the Vin structure needs
// to be a pointer.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// Vin models parts of the tx data.  It is defined separately since
// getrawtransaction, decoderawtransaction and gettransaction use the same
// structure.
type Vin struct {
	Coinbase  string     `json:"coinbase"`
	Txid      string     `json:"txid"`
	Vout      uint32     `json:"vout"`
	ScriptSig *ScriptSig `json:"script_sig"`
	Witness   []string   `json:"txinwitness"`
	Sequence  uint32     `json:"sequence"`
}

// IsCoinBase returns a bool to show if a Vin is a Coinbase one or not.
func (v *Vin) IsCoinBase() bool {
	return len(v.Coinbase) > 0
}

// HasWitness returns a bool to show if a Vin has any witness data associated
// with it or not.
func (v *Vin) HasWitness() bool {
	return len(v.Witness) > 0
}

// MarshalJSON provides a custom Marshal method for Vin using the node's key
// names.
func (v *Vin) MarshalJSON() ([]byte, error) {
	if v.IsCoinBase() {
		coinbaseStruct := struct {
			Coinbase string   `json:"coinbase"`
			Witness  []string `json:"txinwitness,omitempty"`
			Sequence uint32   `json:"sequence"`
		}{
			Coinbase: v.Coinbase,
			Witness:  v.Witness,
			Sequence: v.Sequence,
		}
		return json.Marshal(coinbaseStruct)
	}

	txStruct := struct {
		Txid      string     `json:"txid"`
		Vout      uint32     `json:"vout"`
		ScriptSig *ScriptSig `json:"scriptSig"`
		Witness   []string   `json:"txinwitness,omitempty"`
		Sequence  uint32     `json:"sequence"`
	}{
		Txid:      v.Txid,
		Vout:      v.Vout,
		ScriptSig: v.ScriptSig,
		Witness:   v.Witness,
		Sequence:  v.Sequence,
	}
	return json.Marshal(txStruct)
}

// Validate checks the input reference.
func (v *Vin) Validate() error {
	var val validator
	if !v.IsCoinBase() {
		val.txid("txid", v.Txid)
	}
	return val.err()
}

// Vout models parts of the tx data.  It is defined separately since both
// getrawtransaction and decoderawtransaction use the same structure.
type Vout struct {
	Value        float64            `json:"value"`
	N            uint32             `json:"n"`
	ScriptPubKey ScriptPubKeyResult `json:"script_pub_key"`
}

// Validate checks the output value.
func (v *Vout) Validate() error {
	var val validator
	val.number("value", v.Value, gte(0))
	return val.err()
}

// TxRawResult models the data from the getrawtransaction and
// decoderawtransaction commands.  Block related fields are only set for
// confirmed transactions looked up by getrawtransaction.
type TxRawResult struct {
	Hex           string `json:"hex,omitempty"`
	Txid          string `json:"txid"`
	Hash          string `json:"hash,omitempty"`
	Size          int64  `json:"size,omitempty"`
	Vsize         int64  `json:"vsize,omitempty"`
	Weight        int64  `json:"weight,omitempty"`
	Version       int32  `json:"version"`
	LockTime      uint32 `json:"locktime"`
	Vin           []Vin  `json:"vin"`
	Vout          []Vout `json:"vout"`
	BlockHash     string `json:"blockhash,omitempty"`
	Confirmations uint64 `json:"confirmations,omitempty"`
	Time          int64  `json:"time,omitempty"`
	Blocktime     int64  `json:"blocktime,omitempty"`
}

func (r *TxRawResult) setDefaults() {
	if r.Vin == nil {
		r.Vin = []Vin{}
	}
	if r.Vout == nil {
		r.Vout = []Vout{}
	}
}

func (r *TxRawResult) Validate() error {
	var v validator
	v.txid("txid", r.Txid)
	if r.Hash != "" {
		v.hexFormat("hash", r.Hash, 64)
	}
	if r.Hex != "" {
		v.rawHex("hex", r.Hex)
	}
	if r.BlockHash != "" {
		v.hexFormat("blockhash", r.BlockHash, 64)
	}
	for i := range r.Vin {
		v.nest(indexField("vin", i), r.Vin[i].Validate())
	}
	for i := range r.Vout {
		v.nest(indexField("vout", i), r.Vout[i].Validate())
	}
	return v.err()
}

// TxHash returns the transaction id as a chainhash.Hash.
func (r *TxRawResult) TxHash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(r.Txid)
}

// GetRawTransactionResult models the data from the getrawtransaction command.
// With verbose set the node returns a TxRawResult object and Verbose is true,
// otherwise only Hex is populated with the serialized transaction.
type GetRawTransactionResult struct {
	TxRawResult `json:",squash"`
	Verbose     bool `json:"-"`
}

func (r *GetRawTransactionResult) setString(s string) {
	r.Hex = s
	r.Verbose = false
}

func (r *GetRawTransactionResult) fromObject() { r.Verbose = true }

func (r *GetRawTransactionResult) setDefaults() {
	if r.Verbose {
		r.TxRawResult.setDefaults()
	}
}

func (r *GetRawTransactionResult) Validate() error {
	if !r.Verbose {
		var v validator
		v.rawHex("hex", r.Hex)
		return v.err()
	}
	return r.TxRawResult.Validate()
}

// TestMempoolAcceptFees holds the fees of an accepted transaction.
type TestMempoolAcceptFees struct {
	// Base is the transaction fee in BTC.
	Base float64 `json:"base"`

	// EffectiveFeeRate is the effective feerate in BTC per KvB.
	EffectiveFeeRate float64 `json:"effective_feerate"`

	// EffectiveIncludes lists the wtxids of transactions whose fees and
	// vsizes are included in the effective feerate.
	EffectiveIncludes []string `json:"effective_includes"`
}

// TestMempoolAcceptItem models the data of one transaction of a
// testmempoolaccept call.
type TestMempoolAcceptItem struct {
	// TxID is the transaction hash in hex.
	TxID string `json:"txid"`

	// Wtxid is the transaction witness hash in hex.
	Wtxid string `json:"wtxid"`

	// PackageError is the package validation error, if any (only possible
	// if rawtxs had more than 1 transaction).
	PackageError *string `json:"package_error,omitempty"`

	// Allowed specifies whether this tx would be accepted to the mempool
	// and pass client-specified maxfeerate.  If not present, the tx was
	// not fully validated due to a failure in another tx in the list.
	Allowed *bool `json:"allowed,omitempty"`

	// Vsize is the virtual transaction size as defined in BIP 141.
	Vsize *int64 `json:"vsize,omitempty"`

	// Fees specifies the transaction fees (only present if 'allowed' is
	// true).
	Fees *TestMempoolAcceptFees `json:"fees,omitempty"`

	// RejectReason is the rejection string (only present when 'allowed'
	// is false).
	RejectReason *string `json:"reject_reason,omitempty"`
}

// Validate checks the entry.
func (r *TestMempoolAcceptItem) Validate() error {
	var v validator
	v.txid("txid", r.TxID)
	if r.Wtxid != "" {
		v.hexFormat("wtxid", r.Wtxid, 64)
	}
	v.optInt("vsize", r.Vsize, gt(0))
	return v.err()
}

// TestMempoolAcceptResult models the data from the testmempoolaccept command.
// The node returns a bare array with one entry per transaction.
type TestMempoolAcceptResult struct {
	Results []TestMempoolAcceptItem `json:"results"`
}

func (r *TestMempoolAcceptResult) listKey() string { return "results" }

func (r *TestMempoolAcceptResult) setDefaults() {
	if r.Results == nil {
		r.Results = []TestMempoolAcceptItem{}
	}
	for i := range r.Results {
		if fees := r.Results[i].Fees; fees != nil {
			setStrings(&fees.EffectiveIncludes)
		}
	}
}

func (r *TestMempoolAcceptResult) Validate() error {
	var v validator
	for i := range r.Results {
		v.nest(indexField("results", i), r.Results[i].Validate())
	}
	return v.err()
}

// ValidateAddressResult models the data returned by the validateaddress
// command.
type ValidateAddressResult struct {
	IsValid        bool    `json:"isvalid"`
	Address        string  `json:"address,omitempty"`
	ScriptPubKey   string  `json:"script_pub_key,omitempty"`
	IsScript       *bool   `json:"isscript,omitempty"`
	IsWitness      *bool   `json:"iswitness,omitempty"`
	WitnessVersion *int64  `json:"witness_version,omitempty"`
	WitnessProgram *string `json:"witness_program,omitempty"`
	Error          string  `json:"error,omitempty"`
	ErrorLocations []int64 `json:"error_locations"`
}

func (r *ValidateAddressResult) setDefaults() {
	if r.ErrorLocations == nil {
		r.ErrorLocations = []int64{}
	}
}

func (r *ValidateAddressResult) Validate() error {
	var v validator
	if r.IsValid {
		v.required("address", r.Address)
		if r.ScriptPubKey != "" {
			v.rawHex("script_pub_key", r.ScriptPubKey)
		}
	}
	v.optInt("witness_version", r.WitnessVersion, between(0, 16))
	return v.err()
}
