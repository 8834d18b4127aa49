// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/corejson/btcjson"
)

const (
	// defaultMaxFeeRate is the default maximum fee rate in BTC/kvB enforced
	// by bitcoind v0.19.0 or after for transaction broadcast and mempool
	// acceptance.
	defaultMaxFeeRate = 0.1
)

// FutureGetRawTransactionResult is a future promise to deliver the result of a
// GetRawTransactionAsync or GetRawTransactionVerboseAsync RPC invocation (or
// an applicable error).
type FutureGetRawTransactionResult chan *Response

// Receive waits for the response promised by the future and returns the
// transaction, either serialized or verbose depending on the request.
func (r FutureGetRawTransactionResult) Receive() (*btcjson.GetRawTransactionResult, error) {
	return receiveResult[btcjson.GetRawTransactionResult](r)
}

// GetRawTransactionAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetRawTransaction for the blocking version and more details.
func (c *Client) GetRawTransactionAsync(ctx context.Context,
	txHash *chainhash.Hash) FutureGetRawTransactionResult {

	cmd := btcjson.NewGetRawTransactionCmd(txHash.String(),
		btcjson.Bool(false))
	return c.SendCmd(ctx, cmd)
}

// GetRawTransaction returns a transaction given its hash with only the Hex
// field of the result set.  Transactions outside the mempool are only found
// by nodes running with -txindex.
//
// See GetRawTransactionVerbose to obtain additional information about the
// transaction.
func (c *Client) GetRawTransaction(ctx context.Context,
	txHash *chainhash.Hash) (*btcjson.GetRawTransactionResult, error) {

	return c.GetRawTransactionAsync(ctx, txHash).Receive()
}

// GetRawTransactionVerboseAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetRawTransactionVerbose for the blocking version and more details.
func (c *Client) GetRawTransactionVerboseAsync(ctx context.Context,
	txHash *chainhash.Hash) FutureGetRawTransactionResult {

	cmd := btcjson.NewGetRawTransactionCmd(txHash.String(),
		btcjson.Bool(true))
	return c.SendCmd(ctx, cmd)
}

// GetRawTransactionVerbose returns information about a transaction given
// its hash.
//
// See GetRawTransaction to obtain only the transaction already deserialized.
func (c *Client) GetRawTransactionVerbose(ctx context.Context,
	txHash *chainhash.Hash) (*btcjson.GetRawTransactionResult, error) {

	return c.GetRawTransactionVerboseAsync(ctx, txHash).Receive()
}

// FutureDecodeRawTransactionResult is a future promise to deliver the result
// of a DecodeRawTransactionAsync RPC invocation (or an applicable error).
type FutureDecodeRawTransactionResult chan *Response

// Receive waits for the response promised by the future and returns information
// about a transaction given its serialized bytes.
func (r FutureDecodeRawTransactionResult) Receive() (*btcjson.TxRawResult, error) {
	return receiveResult[btcjson.TxRawResult](r)
}

// DecodeRawTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See DecodeRawTransaction for the blocking version and more details.
func (c *Client) DecodeRawTransactionAsync(ctx context.Context,
	serializedTx []byte) FutureDecodeRawTransactionResult {

	txHex := hex.EncodeToString(serializedTx)
	cmd := btcjson.NewDecodeRawTransactionCmd(txHex)
	return c.SendCmd(ctx, cmd)
}

// DecodeRawTransaction returns information about a transaction given its
// serialized bytes.
func (c *Client) DecodeRawTransaction(ctx context.Context,
	serializedTx []byte) (*btcjson.TxRawResult, error) {

	return c.DecodeRawTransactionAsync(ctx, serializedTx).Receive()
}

// FutureSendRawTransactionResult is a future promise to deliver the result
// of a SendRawTransactionAsync RPC invocation (or an applicable error).
type FutureSendRawTransactionResult chan *Response

// Receive waits for the response promised by the future and returns the result
// of submitting the encoded transaction to the server which then relays it to
// the network.
func (r FutureSendRawTransactionResult) Receive() (*chainhash.Hash, error) {
	return receiveHash(r)
}

// SendRawTransactionAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See SendRawTransaction for the blocking version and more details.
func (c *Client) SendRawTransactionAsync(ctx context.Context,
	serializedTx []byte, allowHighFees bool) FutureSendRawTransactionResult {

	// Using a 0 MaxFeeRate is interpreted as a maximum fee rate not
	// being enforced by bitcoind.
	maxFeeRate := defaultMaxFeeRate
	if allowHighFees {
		maxFeeRate = 0
	}

	cmd := btcjson.NewSendRawTransactionCmd(serializedTx,
		btcjson.Float64(maxFeeRate))
	return c.SendCmd(ctx, cmd)
}

// SendRawTransaction submits the encoded transaction to the server which will
// then relay it to the network.  A rejected transaction yields an error
// matching both ErrVerify and the BitcoindRPCErr of its reject reason.
func (c *Client) SendRawTransaction(ctx context.Context, serializedTx []byte,
	allowHighFees bool) (*chainhash.Hash, error) {

	return c.SendRawTransactionAsync(ctx, serializedTx,
		allowHighFees).Receive()
}

// FutureTestMempoolAcceptResult is a future promise to deliver the result
// of a TestMempoolAccept RPC invocation (or an applicable error).
type FutureTestMempoolAcceptResult chan *Response

// Receive waits for the response promised by the future and returns the
// response from TestMempoolAccept.
func (r FutureTestMempoolAcceptResult) Receive() (*btcjson.TestMempoolAcceptResult, error) {
	return receiveResult[btcjson.TestMempoolAcceptResult](r)
}

// TestMempoolAcceptAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See TestMempoolAccept for the blocking version and more details.
func (c *Client) TestMempoolAcceptAsync(ctx context.Context, txns [][]byte,
	maxFeeRate float64) FutureTestMempoolAcceptResult {

	// Exit early if an empty array of transactions is provided.
	if len(txns) == 0 {
		err := fmt.Errorf("%w: no transactions provided",
			ErrInvalidParam)
		return newFutureError(err)
	}

	rawTxns := make([]string, 0, len(txns))
	for _, tx := range txns {
		rawTxns = append(rawTxns, hex.EncodeToString(tx))
	}

	// Use 0 to signal there's no max fee rate.
	cmd := btcjson.NewTestMempoolAcceptCmd(rawTxns,
		btcjson.Float64(maxFeeRate))
	return c.SendCmd(ctx, cmd)
}

// TestMempoolAccept returns result of mempool acceptance tests indicating if
// raw transaction(s) would be accepted by mempool.
//
// If multiple transactions are passed in, parents must come before children
// and package policies apply: the transactions cannot conflict with any
// mempool transactions or each other.
//
// If one transaction fails, other transactions may not be fully validated
// (the 'allowed' key will be blank).
//
// The maximum number of transactions allowed is 25.
//
// NOTE: maxFeeRate is in BTC/kvB.  Use MapRejectReason on the reject reason
// of an item to match it against the BitcoindRPCErr values.
func (c *Client) TestMempoolAccept(ctx context.Context, txns [][]byte,
	maxFeeRate float64) (*btcjson.TestMempoolAcceptResult, error) {

	return c.TestMempoolAcceptAsync(ctx, txns, maxFeeRate).Receive()
}
