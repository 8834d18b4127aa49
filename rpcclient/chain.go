// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/corejson/btcjson"
)

// FutureGetBestBlockHashResult is a future promise to deliver the result of a
// GetBestBlockAsync RPC invocation (or an applicable error).
type FutureGetBestBlockHashResult chan *Response

// Receive waits for the response promised by the future and returns the hash of
// the best block in the longest block chain.
func (r FutureGetBestBlockHashResult) Receive() (*chainhash.Hash, error) {
	return receiveHash(r)
}

// GetBestBlockHashAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetBestBlockHash for the blocking version and more details.
func (c *Client) GetBestBlockHashAsync(ctx context.Context) FutureGetBestBlockHashResult {
	cmd := btcjson.NewGetBestBlockHashCmd()
	return c.SendCmd(ctx, cmd)
}

// GetBestBlockHash returns the hash of the best block in the longest block
// chain.
func (c *Client) GetBestBlockHash(ctx context.Context) (*chainhash.Hash, error) {
	return c.GetBestBlockHashAsync(ctx).Receive()
}

// FutureGetBlockCountResult is a future promise to deliver the result of a
// GetBlockCountAsync RPC invocation (or an applicable error).
type FutureGetBlockCountResult chan *Response

// Receive waits for the response promised by the future and returns the number
// of blocks in the longest block chain.
func (r FutureGetBlockCountResult) Receive() (int64, error) {
	raw, err := ReceiveFuture(r)
	if err != nil {
		return 0, err
	}
	return btcjson.ParseInt64(raw)
}

// GetBlockCountAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBlockCount for the blocking version and more details.
func (c *Client) GetBlockCountAsync(ctx context.Context) FutureGetBlockCountResult {
	cmd := btcjson.NewGetBlockCountCmd()
	return c.SendCmd(ctx, cmd)
}

// GetBlockCount returns the number of blocks in the longest block chain.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	return c.GetBlockCountAsync(ctx).Receive()
}

// FutureGetBlockHashResult is a future promise to deliver the result of a
// GetBlockHashAsync RPC invocation (or an applicable error).
type FutureGetBlockHashResult chan *Response

// Receive waits for the response promised by the future and returns the hash of
// the block in the best block chain at the given height.
func (r FutureGetBlockHashResult) Receive() (*chainhash.Hash, error) {
	return receiveHash(r)
}

// GetBlockHashAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBlockHash for the blocking version and more details.
func (c *Client) GetBlockHashAsync(ctx context.Context,
	blockHeight int64) FutureGetBlockHashResult {

	cmd := btcjson.NewGetBlockHashCmd(blockHeight)
	return c.SendCmd(ctx, cmd)
}

// GetBlockHash returns the hash of the block in the best block chain at the
// given height.
func (c *Client) GetBlockHash(ctx context.Context,
	blockHeight int64) (*chainhash.Hash, error) {

	return c.GetBlockHashAsync(ctx, blockHeight).Receive()
}

// FutureGetBlockHeaderResult is a future promise to deliver the result of a
// GetBlockHeaderAsync or GetBlockHeaderVerboseAsync RPC invocation (or an
// applicable error).
type FutureGetBlockHeaderResult chan *Response

// Receive waits for the response promised by the future and returns the
// header, either serialized or verbose depending on the request.
func (r FutureGetBlockHeaderResult) Receive() (*btcjson.GetBlockHeaderResult, error) {
	return receiveResult[btcjson.GetBlockHeaderResult](r)
}

// GetBlockHeaderAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBlockHeader for the blocking version and more details.
func (c *Client) GetBlockHeaderAsync(ctx context.Context,
	blockHash *chainhash.Hash) FutureGetBlockHeaderResult {

	cmd := btcjson.NewGetBlockHeaderCmd(blockHash.String(),
		btcjson.Bool(false))
	return c.SendCmd(ctx, cmd)
}

// GetBlockHeader returns the serialized blockheader from the server given its
// hash in the Hex field of the result.
//
// See GetBlockHeaderVerbose to retrieve a data structure with information about
// the block instead.
func (c *Client) GetBlockHeader(ctx context.Context,
	blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderResult, error) {

	return c.GetBlockHeaderAsync(ctx, blockHash).Receive()
}

// GetBlockHeaderVerboseAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetBlockHeaderVerbose for the blocking version and more details.
func (c *Client) GetBlockHeaderVerboseAsync(ctx context.Context,
	blockHash *chainhash.Hash) FutureGetBlockHeaderResult {

	cmd := btcjson.NewGetBlockHeaderCmd(blockHash.String(),
		btcjson.Bool(true))
	return c.SendCmd(ctx, cmd)
}

// GetBlockHeaderVerbose returns a data structure with information about the
// blockheader from the server given its hash.
//
// See GetBlockHeader to retrieve a blockheader instead.
func (c *Client) GetBlockHeaderVerbose(ctx context.Context,
	blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderResult, error) {

	return c.GetBlockHeaderVerboseAsync(ctx, blockHash).Receive()
}

// FutureGetBlockChainInfoResult is a promise to deliver the result of a
// GetBlockChainInfoAsync RPC invocation (or an applicable error).
type FutureGetBlockChainInfoResult chan *Response

// Receive waits for the response promised by the future and returns chain info
// result provided by the server.
func (r FutureGetBlockChainInfoResult) Receive() (*btcjson.GetBlockChainInfoResult, error) {
	return receiveResult[btcjson.GetBlockChainInfoResult](r)
}

// GetBlockChainInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetBlockChainInfo for the blocking version and more details.
func (c *Client) GetBlockChainInfoAsync(ctx context.Context) FutureGetBlockChainInfoResult {
	cmd := btcjson.NewGetBlockChainInfoCmd()
	return c.SendCmd(ctx, cmd)
}

// GetBlockChainInfo returns information related to the processing state of
// various chain-specific details such as the current difficulty from the tip
// of the main chain.
func (c *Client) GetBlockChainInfo(ctx context.Context) (*btcjson.GetBlockChainInfoResult, error) {
	return c.GetBlockChainInfoAsync(ctx).Receive()
}

// FutureGetMempoolEntryResult is a future promise to deliver the result of a
// GetMempoolEntryAsync RPC invocation (or an applicable error).
type FutureGetMempoolEntryResult chan *Response

// Receive waits for the response promised by the future and returns a data
// structure with information about the transaction in the memory pool given
// its hash.
func (r FutureGetMempoolEntryResult) Receive() (*btcjson.GetMempoolEntryResult, error) {
	return receiveResult[btcjson.GetMempoolEntryResult](r)
}

// GetMempoolEntryAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetMempoolEntry for the blocking version and more details.
func (c *Client) GetMempoolEntryAsync(ctx context.Context,
	txHash *chainhash.Hash) FutureGetMempoolEntryResult {

	cmd := btcjson.NewGetMempoolEntryCmd(txHash.String())
	return c.SendCmd(ctx, cmd)
}

// GetMempoolEntry returns a data structure with information about the
// transaction in the memory pool given its hash.
func (c *Client) GetMempoolEntry(ctx context.Context,
	txHash *chainhash.Hash) (*btcjson.GetMempoolEntryResult, error) {

	return c.GetMempoolEntryAsync(ctx, txHash).Receive()
}

// FutureGetMempoolInfoResult is a future promise to deliver the result of a
// GetMempoolInfoAsync RPC invocation (or an applicable error).
type FutureGetMempoolInfoResult chan *Response

// Receive waits for the response promised by the future and returns the
// state of the memory pool.
func (r FutureGetMempoolInfoResult) Receive() (*btcjson.GetMempoolInfoResult, error) {
	return receiveResult[btcjson.GetMempoolInfoResult](r)
}

// GetMempoolInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetMempoolInfo for the blocking version and more details.
func (c *Client) GetMempoolInfoAsync(ctx context.Context) FutureGetMempoolInfoResult {
	cmd := btcjson.NewGetMempoolInfoCmd()
	return c.SendCmd(ctx, cmd)
}

// GetMempoolInfo returns the size, usage and fee floors of the memory pool.
func (c *Client) GetMempoolInfo(ctx context.Context) (*btcjson.GetMempoolInfoResult, error) {
	return c.GetMempoolInfoAsync(ctx).Receive()
}

// FutureGetNetworkInfoResult is a future promise to deliver the result of a
// GetNetworkInfoAsync RPC invocation (or an applicable error).
type FutureGetNetworkInfoResult chan *Response

// Receive waits for the response promised by the future and returns data about
// the current network.
func (r FutureGetNetworkInfoResult) Receive() (*btcjson.GetNetworkInfoResult, error) {
	return receiveResult[btcjson.GetNetworkInfoResult](r)
}

// GetNetworkInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetNetworkInfo for the blocking version and more details.
func (c *Client) GetNetworkInfoAsync(ctx context.Context) FutureGetNetworkInfoResult {
	cmd := btcjson.NewGetNetworkInfoCmd()
	return c.SendCmd(ctx, cmd)
}

// GetNetworkInfo returns data about the current network.
func (c *Client) GetNetworkInfo(ctx context.Context) (*btcjson.GetNetworkInfoResult, error) {
	return c.GetNetworkInfoAsync(ctx).Receive()
}

// FutureEstimateSmartFeeResult is a future promise to deliver the result of a
// EstimateSmartFeeAsync RPC invocation (or an applicable error).
type FutureEstimateSmartFeeResult chan *Response

// Receive waits for the response promised by the future and returns the
// estimated fee.
func (r FutureEstimateSmartFeeResult) Receive() (*btcjson.EstimateSmartFeeResult, error) {
	return receiveResult[btcjson.EstimateSmartFeeResult](r)
}

// EstimateSmartFeeAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See EstimateSmartFee for the blocking version and more details.
func (c *Client) EstimateSmartFeeAsync(ctx context.Context, confTarget int64,
	mode *string) FutureEstimateSmartFeeResult {

	cmd := btcjson.NewEstimateSmartFeeCmd(confTarget, mode)
	return c.SendCmd(ctx, cmd)
}

// EstimateSmartFee requests the server to estimate a fee level based on the
// given parameters.  The mode is one of "unset", "economical" or
// "conservative".
func (c *Client) EstimateSmartFee(ctx context.Context, confTarget int64,
	mode *string) (*btcjson.EstimateSmartFeeResult, error) {

	return c.EstimateSmartFeeAsync(ctx, confTarget, mode).Receive()
}

// FutureValidateAddressResult is a future promise to deliver the result of a
// ValidateAddressAsync RPC invocation (or an applicable error).
type FutureValidateAddressResult chan *Response

// Receive waits for the response promised by the future and returns information
// about the given bitcoin address.
func (r FutureValidateAddressResult) Receive() (*btcjson.ValidateAddressResult, error) {
	return receiveResult[btcjson.ValidateAddressResult](r)
}

// ValidateAddressAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ValidateAddress for the blocking version and more details.
func (c *Client) ValidateAddressAsync(ctx context.Context,
	address string) FutureValidateAddressResult {

	cmd := btcjson.NewValidateAddressCmd(address)
	return c.SendCmd(ctx, cmd)
}

// ValidateAddress returns information about the given bitcoin address as
// checked by the node.
func (c *Client) ValidateAddress(ctx context.Context,
	address string) (*btcjson.ValidateAddressResult, error) {

	return c.ValidateAddressAsync(ctx, address).Receive()
}
