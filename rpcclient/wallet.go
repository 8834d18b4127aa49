// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/corejson/btcjson"
)

// *****************************
// Transaction Listing Functions
// *****************************

// FutureGetTransactionResult is a future promise to deliver the result
// of a GetTransactionAsync RPC invocation (or an applicable error).
type FutureGetTransactionResult chan *Response

// Receive waits for the response promised by the future and returns detailed
// information about a wallet transaction.
func (r FutureGetTransactionResult) Receive() (*btcjson.GetTransactionResult, error) {
	return receiveResult[btcjson.GetTransactionResult](r)
}

// GetTransactionAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetTransaction for the blocking version and more details.
func (c *Client) GetTransactionAsync(ctx context.Context, txHash *chainhash.Hash,
	includeWatchOnly *bool) FutureGetTransactionResult {

	hash := ""
	if txHash != nil {
		hash = txHash.String()
	}

	cmd := btcjson.NewGetTransactionCmd(hash, includeWatchOnly)
	return c.SendCmd(ctx, cmd)
}

// GetTransaction returns detailed information about a wallet transaction.
//
// See GetRawTransaction to return the raw transaction instead.
func (c *Client) GetTransaction(ctx context.Context, txHash *chainhash.Hash,
	includeWatchOnly *bool) (*btcjson.GetTransactionResult, error) {

	return c.GetTransactionAsync(ctx, txHash, includeWatchOnly).Receive()
}

// FutureListTransactionsResult is a future promise to deliver the result of a
// ListTransactionsAsync RPC invocation (or an applicable error).
type FutureListTransactionsResult chan *Response

// Receive waits for the response promised by the future and returns a list of
// the most recent transactions.
func (r FutureListTransactionsResult) Receive() (*btcjson.ListTransactionsResult, error) {
	return receiveResult[btcjson.ListTransactionsResult](r)
}

// ListTransactionsAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ListTransactions for the blocking version and more details.
func (c *Client) ListTransactionsAsync(ctx context.Context, label *string,
	count, skip *int64, includeWatchOnly *bool) FutureListTransactionsResult {

	cmd := btcjson.NewListTransactionsCmd(label, count, skip,
		includeWatchOnly)
	return c.SendCmd(ctx, cmd)
}

// ListTransactions returns a list of the most recent transactions, optionally
// limited to the passed label.  The node defaults to the "*" label, 10
// entries and no skipped entries.
func (c *Client) ListTransactions(ctx context.Context, label *string,
	count, skip *int64,
	includeWatchOnly *bool) (*btcjson.ListTransactionsResult, error) {

	return c.ListTransactionsAsync(ctx, label, count, skip,
		includeWatchOnly).Receive()
}

// FutureListUnspentResult is a future promise to deliver the result of a
// ListUnspentAsync RPC invocation (or an applicable error).
type FutureListUnspentResult chan *Response

// Receive waits for the response promised by the future and returns all
// unspent wallet transaction outputs returned by the RPC call.
func (r FutureListUnspentResult) Receive() (*btcjson.ListUnspentResult, error) {
	return receiveResult[btcjson.ListUnspentResult](r)
}

// ListUnspentAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ListUnspent for the blocking version and more details.
func (c *Client) ListUnspentAsync(ctx context.Context, minConf, maxConf *int64,
	addresses []btcutil.Address) FutureListUnspentResult {

	var addrStrs []string
	for _, a := range addresses {
		addrStrs = append(addrStrs, a.EncodeAddress())
	}

	cmd := btcjson.NewListUnspentCmd(minConf, maxConf, addrStrs)
	return c.SendCmd(ctx, cmd)
}

// ListUnspent returns the unspent transaction outputs known to the wallet,
// optionally limited to the passed addresses.
func (c *Client) ListUnspent(ctx context.Context, minConf, maxConf *int64,
	addresses []btcutil.Address) (*btcjson.ListUnspentResult, error) {

	return c.ListUnspentAsync(ctx, minConf, maxConf, addresses).Receive()
}

// FutureListSinceBlockResult is a future promise to deliver the result of a
// ListSinceBlockAsync RPC invocation (or an applicable error).
type FutureListSinceBlockResult chan *Response

// Receive waits for the response promised by the future and returns all
// transactions added in blocks since the specified block hash, or all
// transactions if it is nil.
func (r FutureListSinceBlockResult) Receive() (*btcjson.ListSinceBlockResult, error) {
	return receiveResult[btcjson.ListSinceBlockResult](r)
}

// ListSinceBlockAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ListSinceBlock for the blocking version and more details.
func (c *Client) ListSinceBlockAsync(ctx context.Context,
	blockHash *chainhash.Hash, targetConfirms *int64,
	includeWatchOnly *bool) FutureListSinceBlockResult {

	var hash *string
	if blockHash != nil {
		hash = btcjson.String(blockHash.String())
	}

	cmd := btcjson.NewListSinceBlockCmd(hash, targetConfirms,
		includeWatchOnly)
	return c.SendCmd(ctx, cmd)
}

// ListSinceBlock returns all transactions added in blocks since the specified
// block hash, or all transactions if it is nil.
func (c *Client) ListSinceBlock(ctx context.Context, blockHash *chainhash.Hash,
	targetConfirms *int64,
	includeWatchOnly *bool) (*btcjson.ListSinceBlockResult, error) {

	return c.ListSinceBlockAsync(ctx, blockHash, targetConfirms,
		includeWatchOnly).Receive()
}

// **************************
// Transaction Send Functions
// **************************

// FutureLockUnspentResult is a future promise to deliver the result of a
// LockUnspentAsync RPC invocation (or an applicable error).
type FutureLockUnspentResult chan *Response

// Receive waits for the response promised by the future and returns whether
// the outpoints were locked or unlocked.
func (r FutureLockUnspentResult) Receive() (bool, error) {
	raw, err := ReceiveFuture(r)
	if err != nil {
		return false, err
	}
	return btcjson.ParseBool(raw)
}

// LockUnspentAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See LockUnspent for the blocking version and more details.
func (c *Client) LockUnspentAsync(ctx context.Context, unlock bool,
	ops []btcjson.TransactionInput) FutureLockUnspentResult {

	cmd := btcjson.NewLockUnspentCmd(unlock, ops)
	return c.SendCmd(ctx, cmd)
}

// LockUnspent marks outputs as locked or unlocked, depending on the value of
// the unlock bool.  When locked, the unspent output will not be selected as
// input for newly created, non-raw transactions, and will not be returned in
// future ListUnspent results, until the output is marked unlocked again.
//
// If unlock is false, each outpoint in ops will be marked locked.  If unlocked
// is true and specific outputs are specified in ops (len != 0), exactly those
// outputs will be marked unlocked.  If unlocked is true and no outpoints are
// specified, all previous locked outputs are marked unlocked.
func (c *Client) LockUnspent(ctx context.Context, unlock bool,
	ops []btcjson.TransactionInput) (bool, error) {

	return c.LockUnspentAsync(ctx, unlock, ops).Receive()
}

// FutureListLockUnspentResult is a future promise to deliver the result of a
// ListLockUnspentAsync RPC invocation (or an applicable error).
type FutureListLockUnspentResult chan *Response

// Receive waits for the response promised by the future and returns the
// result of all currently locked unspent outputs.
func (r FutureListLockUnspentResult) Receive() (*btcjson.ListLockUnspentResult, error) {
	return receiveResult[btcjson.ListLockUnspentResult](r)
}

// ListLockUnspentAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ListLockUnspent for the blocking version and more details.
func (c *Client) ListLockUnspentAsync(ctx context.Context) FutureListLockUnspentResult {
	cmd := btcjson.NewListLockUnspentCmd()
	return c.SendCmd(ctx, cmd)
}

// ListLockUnspent returns a slice of outpoints for all unspent outputs marked
// as locked by a wallet.  Unspent outputs may be marked locked using
// LockOutput.
func (c *Client) ListLockUnspent(ctx context.Context) (*btcjson.ListLockUnspentResult, error) {
	return c.ListLockUnspentAsync(ctx).Receive()
}

// FutureSendResult is a future promise to deliver the result of a
// SendToAddressAsync or SendManyAsync RPC invocation (or an applicable
// error).
type FutureSendResult chan *Response

// Receive waits for the response promised by the future and returns the
// transaction id of the sent transaction.
func (r FutureSendResult) Receive() (*btcjson.SendResult, error) {
	return receiveResult[btcjson.SendResult](r)
}

// SendToAddressAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SendToAddress for the blocking version and more details.
func (c *Client) SendToAddressAsync(ctx context.Context, address btcutil.Address,
	amount btcutil.Amount, comment, commentTo *string) FutureSendResult {

	addr := address.EncodeAddress()
	cmd := btcjson.NewSendToAddressCmd(addr, amount, comment, commentTo)
	return c.SendCmd(ctx, cmd)
}

// SendToAddress sends the passed amount to the given address.  The comments
// are stored in the wallet only.
//
// NOTE: This function requires the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SendToAddress(ctx context.Context, address btcutil.Address,
	amount btcutil.Amount, comment, commentTo *string) (*btcjson.SendResult, error) {

	return c.SendToAddressAsync(ctx, address, amount, comment,
		commentTo).Receive()
}

// SendManyAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SendMany for the blocking version and more details.
func (c *Client) SendManyAsync(ctx context.Context,
	amounts map[btcutil.Address]btcutil.Amount, minConf *int64,
	comment *string) FutureSendResult {

	convertedAmounts := make(map[string]btcutil.Amount, len(amounts))
	for addr, amount := range amounts {
		convertedAmounts[addr.EncodeAddress()] = amount
	}

	cmd := btcjson.NewSendManyCmd(convertedAmounts, minConf, comment)
	return c.SendCmd(ctx, cmd)
}

// SendMany sends multiple amounts to multiple addresses using the default
// account in a single transaction.
//
// NOTE: This function requires the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SendMany(ctx context.Context,
	amounts map[btcutil.Address]btcutil.Amount, minConf *int64,
	comment *string) (*btcjson.SendResult, error) {

	return c.SendManyAsync(ctx, amounts, minConf, comment).Receive()
}

// FutureBumpFeeResult is a future promise to deliver the result of a
// BumpFeeAsync RPC invocation (or an applicable error).
type FutureBumpFeeResult chan *Response

// Receive waits for the response promised by the future and returns the
// replacement transaction and its fees.
func (r FutureBumpFeeResult) Receive() (*btcjson.BumpFeeResult, error) {
	return receiveResult[btcjson.BumpFeeResult](r)
}

// BumpFeeAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See BumpFee for the blocking version and more details.
func (c *Client) BumpFeeAsync(ctx context.Context, txHash *chainhash.Hash,
	options *btcjson.BumpFeeOptions) FutureBumpFeeResult {

	cmd := btcjson.NewBumpFeeCmd(txHash.String(), options)
	return c.SendCmd(ctx, cmd)
}

// BumpFee replaces an unconfirmed, replaceable wallet transaction by one
// paying a higher fee.
func (c *Client) BumpFee(ctx context.Context, txHash *chainhash.Hash,
	options *btcjson.BumpFeeOptions) (*btcjson.BumpFeeResult, error) {

	return c.BumpFeeAsync(ctx, txHash, options).Receive()
}

// FutureAbandonTransactionResult is a future promise to deliver the result of
// an AbandonTransactionAsync RPC invocation (or an applicable error).
type FutureAbandonTransactionResult chan *Response

// Receive waits for the response promised by the future.
func (r FutureAbandonTransactionResult) Receive() error {
	return receiveNull(r)
}

// AbandonTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See AbandonTransaction for the blocking version and more details.
func (c *Client) AbandonTransactionAsync(ctx context.Context,
	txHash *chainhash.Hash) FutureAbandonTransactionResult {

	cmd := btcjson.NewAbandonTransactionCmd(txHash.String())
	return c.SendCmd(ctx, cmd)
}

// AbandonTransaction marks an unconfirmed wallet transaction and its
// descendants as abandoned, releasing their inputs.
func (c *Client) AbandonTransaction(ctx context.Context,
	txHash *chainhash.Hash) error {

	return c.AbandonTransactionAsync(ctx, txHash).Receive()
}

// *************************
// Address/Account Functions
// *************************

// FutureAddressResult is a future promise to deliver the result of a
// GetNewAddressAsync or GetRawChangeAddressAsync RPC invocation (or an
// applicable error).
type FutureAddressResult chan *Response

// Receive waits for the response promised by the future and returns the
// address as a string.  The address is not decoded since the network of the
// node is not known to the client.
func (r FutureAddressResult) Receive() (string, error) {
	addr, err := receiveString(r)
	if err != nil {
		return "", err
	}
	if !btcjson.IsValidAddress(addr) {
		return "", fmt.Errorf("%w: malformed address %q", ErrInvalidParam,
			addr)
	}
	return addr, nil
}

// GetNewAddressAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetNewAddress for the blocking version and more details.
func (c *Client) GetNewAddressAsync(ctx context.Context, label,
	addressType *string) FutureAddressResult {

	cmd := btcjson.NewGetNewAddressCmd(label, addressType)
	return c.SendCmd(ctx, cmd)
}

// GetNewAddress returns a new address for receiving payments, optionally
// labeled and of the passed type ("legacy", "p2sh-segwit", "bech32" or
// "bech32m").
func (c *Client) GetNewAddress(ctx context.Context, label,
	addressType *string) (string, error) {

	return c.GetNewAddressAsync(ctx, label, addressType).Receive()
}

// GetRawChangeAddressAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetRawChangeAddress for the blocking version and more details.
func (c *Client) GetRawChangeAddressAsync(ctx context.Context,
	addressType *string) FutureAddressResult {

	cmd := btcjson.NewGetRawChangeAddressCmd(addressType)
	return c.SendCmd(ctx, cmd)
}

// GetRawChangeAddress returns a new address for receiving change that will be
// used with raw transactions.  It is not added to the address book.
func (c *Client) GetRawChangeAddress(ctx context.Context,
	addressType *string) (string, error) {

	return c.GetRawChangeAddressAsync(ctx, addressType).Receive()
}

// FutureSetLabelResult is a future promise to deliver the result of a
// SetLabelAsync RPC invocation (or an applicable error).
type FutureSetLabelResult chan *Response

// Receive waits for the response promised by the future.
func (r FutureSetLabelResult) Receive() error {
	return receiveNull(r)
}

// SetLabelAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SetLabel for the blocking version and more details.
func (c *Client) SetLabelAsync(ctx context.Context, address btcutil.Address,
	label string) FutureSetLabelResult {

	cmd := btcjson.NewSetLabelCmd(address.EncodeAddress(), label)
	return c.SendCmd(ctx, cmd)
}

// SetLabel sets the label associated with the passed address.
func (c *Client) SetLabel(ctx context.Context, address btcutil.Address,
	label string) error {

	return c.SetLabelAsync(ctx, address, label).Receive()
}

// FutureListLabelsResult is a future promise to deliver the result of a
// ListLabelsAsync RPC invocation (or an applicable error).
type FutureListLabelsResult chan *Response

// Receive waits for the response promised by the future and returns the
// labels of the wallet.
func (r FutureListLabelsResult) Receive() ([]string, error) {
	raw, err := ReceiveFuture(r)
	if err != nil {
		return nil, err
	}
	return btcjson.ParseStrings(raw)
}

// ListLabelsAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See ListLabels for the blocking version and more details.
func (c *Client) ListLabelsAsync(ctx context.Context,
	purpose *string) FutureListLabelsResult {

	cmd := btcjson.NewListLabelsCmd(purpose)
	return c.SendCmd(ctx, cmd)
}

// ListLabels returns the labels of the wallet, optionally only those used
// for the passed purpose ("send" or "receive").
func (c *Client) ListLabels(ctx context.Context, purpose *string) ([]string, error) {
	return c.ListLabelsAsync(ctx, purpose).Receive()
}

// FutureGetAddressInfoResult is a future promise to deliver the result of an
// GetAddressInfoAsync RPC invocation (or an applicable error).
type FutureGetAddressInfoResult chan *Response

// Receive waits for the response promised by the future and returns the
// information about the given bitcoin address.
func (r FutureGetAddressInfoResult) Receive() (*btcjson.GetAddressInfoResult, error) {
	return receiveResult[btcjson.GetAddressInfoResult](r)
}

// GetAddressInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetAddressInfo for the blocking version and more details.
func (c *Client) GetAddressInfoAsync(ctx context.Context,
	address string) FutureGetAddressInfoResult {

	cmd := btcjson.NewGetAddressInfoCmd(address)
	return c.SendCmd(ctx, cmd)
}

// GetAddressInfo returns information about the given bitcoin address.
func (c *Client) GetAddressInfo(ctx context.Context,
	address string) (*btcjson.GetAddressInfoResult, error) {

	return c.GetAddressInfoAsync(ctx, address).Receive()
}

// FutureKeyPoolRefillResult is a future promise to deliver the result of a
// KeyPoolRefillAsync RPC invocation (or an applicable error).
type FutureKeyPoolRefillResult chan *Response

// Receive waits for the response promised by the future.
func (r FutureKeyPoolRefillResult) Receive() error {
	return receiveNull(r)
}

// KeyPoolRefillAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See KeyPoolRefill for the blocking version and more details.
func (c *Client) KeyPoolRefillAsync(ctx context.Context,
	newSize *int64) FutureKeyPoolRefillResult {

	cmd := btcjson.NewKeyPoolRefillCmd(newSize)
	return c.SendCmd(ctx, cmd)
}

// KeyPoolRefill fills the key pool as necessary to reach the passed size, or
// the default size of the node when it is nil.
func (c *Client) KeyPoolRefill(ctx context.Context, newSize *int64) error {
	return c.KeyPoolRefillAsync(ctx, newSize).Receive()
}

// ************************
// Balance Related Functions
// ************************

// FutureGetBalanceResult is a future promise to deliver the result of a
// GetBalanceAsync or GetReceivedByAddressAsync RPC invocation (or an
// applicable error).
type FutureGetBalanceResult chan *Response

// Receive waits for the response promised by the future and returns the
// available balance from the server.
func (r FutureGetBalanceResult) Receive() (btcutil.Amount, error) {
	return receiveAmount(r)
}

// GetBalanceAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBalance for the blocking version and more details.
func (c *Client) GetBalanceAsync(ctx context.Context, minConf *int64,
	includeWatchOnly *bool) FutureGetBalanceResult {

	cmd := btcjson.NewGetBalanceCmd(minConf, includeWatchOnly)
	return c.SendCmd(ctx, cmd)
}

// GetBalance returns the available balance of the wallet counting outputs
// with at least minConf confirmations.
//
// See GetBalances for the trusted, pending and immature split.
func (c *Client) GetBalance(ctx context.Context, minConf *int64,
	includeWatchOnly *bool) (btcutil.Amount, error) {

	return c.GetBalanceAsync(ctx, minConf, includeWatchOnly).Receive()
}

// GetReceivedByAddressAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetReceivedByAddress for the blocking version and more details.
func (c *Client) GetReceivedByAddressAsync(ctx context.Context,
	address btcutil.Address, minConf *int64) FutureGetBalanceResult {

	addr := address.EncodeAddress()
	cmd := btcjson.NewGetReceivedByAddressCmd(addr, minConf)
	return c.SendCmd(ctx, cmd)
}

// GetReceivedByAddress returns the total amount received by the specified
// address with at least minConf confirmations.
func (c *Client) GetReceivedByAddress(ctx context.Context,
	address btcutil.Address, minConf *int64) (btcutil.Amount, error) {

	return c.GetReceivedByAddressAsync(ctx, address, minConf).Receive()
}

// FutureGetBalancesResult is a future promise to deliver the result of a
// GetBalancesAsync RPC invocation (or an applicable error).
type FutureGetBalancesResult chan *Response

// Receive waits for the response promised by the future and returns the
// available balances from the server.
func (r FutureGetBalancesResult) Receive() (*btcjson.GetBalancesResult, error) {
	return receiveResult[btcjson.GetBalancesResult](r)
}

// GetBalancesAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBalances for the blocking version and more details.
func (c *Client) GetBalancesAsync(ctx context.Context) FutureGetBalancesResult {
	cmd := btcjson.NewGetBalancesCmd()
	return c.SendCmd(ctx, cmd)
}

// GetBalances returns the available balances from the server.
func (c *Client) GetBalances(ctx context.Context) (*btcjson.GetBalancesResult, error) {
	return c.GetBalancesAsync(ctx).Receive()
}

// ****************************
// Raw Transaction Functions
// ****************************

// FutureFundRawTransactionResult is a future promise to deliver the result
// of a FundRawTransactionAsync RPC invocation (or an applicable error).
type FutureFundRawTransactionResult chan *Response

// Receive waits for the response promised by the future and returns
// information about a funding attempt.
func (r FutureFundRawTransactionResult) Receive() (*btcjson.FundRawTransactionResult, error) {
	return receiveResult[btcjson.FundRawTransactionResult](r)
}

// FundRawTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See FundRawTransaction for the blocking version and more details.
func (c *Client) FundRawTransactionAsync(ctx context.Context, serializedTx []byte,
	opts *btcjson.FundingOptions,
	isWitness *bool) FutureFundRawTransactionResult {

	cmd := btcjson.NewFundRawTransactionCmd(serializedTx, opts, isWitness)
	return c.SendCmd(ctx, cmd)
}

// FundRawTransaction adds inputs to the serialized transaction until it pays
// its outputs, adding a change output when needed.
func (c *Client) FundRawTransaction(ctx context.Context, serializedTx []byte,
	opts *btcjson.FundingOptions,
	isWitness *bool) (*btcjson.FundRawTransactionResult, error) {

	return c.FundRawTransactionAsync(ctx, serializedTx, opts,
		isWitness).Receive()
}

// FutureSignRawTransactionWithWalletResult is a future promise to deliver
// the result of the SignRawTransactionWithWalletAsync RPC invocation (or
// an applicable error).
type FutureSignRawTransactionWithWalletResult chan *Response

// Receive waits for the response promised by the future and returns the
// signed transaction as well as whether or not all inputs are now signed.
func (r FutureSignRawTransactionWithWalletResult) Receive() (*btcjson.SignRawTransactionWithWalletResult, error) {
	return receiveResult[btcjson.SignRawTransactionWithWalletResult](r)
}

// SignRawTransactionWithWalletAsync returns an instance of a type that can be
// used to get the result of the RPC at some future time by invoking the
// Receive function on the returned instance.
//
// See SignRawTransactionWithWallet for the blocking version and more
// details.
func (c *Client) SignRawTransactionWithWalletAsync(ctx context.Context,
	hexTx string, prevTxs []btcjson.PrevTx,
	sigHashType *string) FutureSignRawTransactionWithWalletResult {

	cmd := btcjson.NewSignRawTransactionWithWalletCmd(hexTx, prevTxs,
		sigHashType)
	return c.SendCmd(ctx, cmd)
}

// SignRawTransactionWithWallet signs inputs for the passed transaction using
// the keys of the wallet.  Outputs the wallet does not know must be passed in
// prevTxs.
//
// NOTE: This function requires the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SignRawTransactionWithWallet(ctx context.Context, hexTx string,
	prevTxs []btcjson.PrevTx,
	sigHashType *string) (*btcjson.SignRawTransactionWithWalletResult, error) {

	return c.SignRawTransactionWithWalletAsync(ctx, hexTx, prevTxs,
		sigHashType).Receive()
}

// FutureWalletCreateFundedPsbtResult is a future promise to deliver the
// result of a WalletCreateFundedPsbt RPC invocation (or an applicable error).
type FutureWalletCreateFundedPsbtResult chan *Response

// Receive waits for the response promised by the future and returns the
// funded PSBT with its fee and change position.
func (r FutureWalletCreateFundedPsbtResult) Receive() (*btcjson.WalletCreateFundedPsbtResult, error) {
	return receiveResult[btcjson.WalletCreateFundedPsbtResult](r)
}

// WalletCreateFundedPsbtAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See WalletCreateFundedPsbt for the blocking version and more details.
func (c *Client) WalletCreateFundedPsbtAsync(ctx context.Context,
	inputs []btcjson.PsbtInput, outputs []btcjson.PsbtOutput,
	locktime *int64, options *btcjson.FundingOptions,
	bip32Derivs *bool) FutureWalletCreateFundedPsbtResult {

	cmd := btcjson.NewWalletCreateFundedPsbtCmd(inputs, outputs, locktime,
		options, bip32Derivs)
	return c.SendCmd(ctx, cmd)
}

// WalletCreateFundedPsbt creates and funds a transaction in the Partially
// Signed Transaction format.  Inputs will be added if supplied inputs are not
// enough.
func (c *Client) WalletCreateFundedPsbt(ctx context.Context,
	inputs []btcjson.PsbtInput, outputs []btcjson.PsbtOutput,
	locktime *int64, options *btcjson.FundingOptions,
	bip32Derivs *bool) (*btcjson.WalletCreateFundedPsbtResult, error) {

	return c.WalletCreateFundedPsbtAsync(ctx, inputs, outputs, locktime,
		options, bip32Derivs).Receive()
}

// FutureWalletProcessPsbtResult is a future promise to deliver the result of
// a WalletProcessPsbt RPC invocation (or an applicable error).
type FutureWalletProcessPsbtResult chan *Response

// Receive waits for the response promised by the future and returns the
// updated PSBT and whether it is complete.
func (r FutureWalletProcessPsbtResult) Receive() (*btcjson.WalletProcessPsbtResult, error) {
	return receiveResult[btcjson.WalletProcessPsbtResult](r)
}

// WalletProcessPsbtAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See WalletProcessPsbt for the blocking version and more details.
func (c *Client) WalletProcessPsbtAsync(ctx context.Context, psbt string,
	sign *bool, sighashType *string,
	bip32Derivs *bool) FutureWalletProcessPsbtResult {

	cmd := btcjson.NewWalletProcessPsbtCmd(psbt, sign, sighashType,
		bip32Derivs)
	return c.SendCmd(ctx, cmd)
}

// WalletProcessPsbt updates a PSBT with input information from the wallet
// and then signs inputs.
func (c *Client) WalletProcessPsbt(ctx context.Context, psbt string,
	sign *bool, sighashType *string,
	bip32Derivs *bool) (*btcjson.WalletProcessPsbtResult, error) {

	return c.WalletProcessPsbtAsync(ctx, psbt, sign, sighashType,
		bip32Derivs).Receive()
}

// **************************
// Wallet Management Functions
// **************************

// CreateWalletOpt defines a functional-opt to be used with CreateWallet.
type CreateWalletOpt func(*btcjson.CreateWalletCmd)

// WithCreateWalletDisablePrivateKeys disables the possibility of private keys
// to be used with a wallet created using the CreateWallet method.
func WithCreateWalletDisablePrivateKeys() CreateWalletOpt {
	return func(c *btcjson.CreateWalletCmd) {
		c.DisablePrivateKeys = btcjson.Bool(true)
	}
}

// WithCreateWalletBlank specifies creation of a blank wallet.
func WithCreateWalletBlank() CreateWalletOpt {
	return func(c *btcjson.CreateWalletCmd) {
		c.Blank = btcjson.Bool(true)
	}
}

// WithCreateWalletPassphrase specifies a passphrase to encrypt the wallet
// with.
func WithCreateWalletPassphrase(value string) CreateWalletOpt {
	return func(c *btcjson.CreateWalletCmd) {
		c.Passphrase = btcjson.String(value)
	}
}

// WithCreateWalletAvoidReuse specifies keeping track of coin reuse, and
// treat dirty and clean coins differently with privacy considerations in mind.
func WithCreateWalletAvoidReuse() CreateWalletOpt {
	return func(c *btcjson.CreateWalletCmd) {
		c.AvoidReuse = btcjson.Bool(true)
	}
}

// WithCreateWalletLoadOnStartup adds the wallet to the list of wallets the
// node loads on startup.
func WithCreateWalletLoadOnStartup(load bool) CreateWalletOpt {
	return func(c *btcjson.CreateWalletCmd) {
		c.LoadOnStartup = btcjson.Bool(load)
	}
}

// WithCreateWalletLegacy creates a legacy wallet instead of a descriptor
// wallet.
func WithCreateWalletLegacy() CreateWalletOpt {
	return func(c *btcjson.CreateWalletCmd) {
		c.Descriptors = btcjson.Bool(false)
	}
}

// FutureCreateWalletResult is a future promise to deliver the result of a
// CreateWalletAsync or LoadWalletAsync RPC invocation (or an applicable
// error).
type FutureCreateWalletResult chan *Response

// Receive waits for the response promised by the future and returns the name
// of the wallet and the warnings of the node.
func (r FutureCreateWalletResult) Receive() (*btcjson.CreateWalletResult, error) {
	return receiveResult[btcjson.CreateWalletResult](r)
}

// CreateWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See CreateWallet for the blocking version and more details.
func (c *Client) CreateWalletAsync(ctx context.Context, name string,
	opts ...CreateWalletOpt) FutureCreateWalletResult {

	cmd := btcjson.NewCreateWalletCmd(name, nil, nil, nil, nil)

	// Apply each specified option to mutate the default command.
	for _, opt := range opts {
		opt(cmd)
	}

	if cmd.Descriptors == nil || *cmd.Descriptors {
		if err := c.requireDescriptors(ctx); err != nil {
			return newFutureError(err)
		}
	}

	return c.SendCmd(ctx, cmd)
}

// CreateWallet creates and loads a new wallet.  Descriptor wallets are
// created unless WithCreateWalletLegacy is passed, which requires bitcoind
// v0.21 or newer.
func (c *Client) CreateWallet(ctx context.Context, name string,
	opts ...CreateWalletOpt) (*btcjson.CreateWalletResult, error) {

	return c.CreateWalletAsync(ctx, name, opts...).Receive()
}

// LoadWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See LoadWallet for the blocking version and more details.
func (c *Client) LoadWalletAsync(ctx context.Context,
	walletName string) FutureCreateWalletResult {

	cmd := btcjson.NewLoadWalletCmd(walletName)
	return c.SendCmd(ctx, cmd)
}

// LoadWallet loads a wallet from a wallet file or directory.
func (c *Client) LoadWallet(ctx context.Context,
	walletName string) (*btcjson.CreateWalletResult, error) {

	return c.LoadWalletAsync(ctx, walletName).Receive()
}

// FutureUnloadWalletResult is a future promise to deliver the result of an
// UnloadWalletAsync RPC invocation (or an applicable error).
type FutureUnloadWalletResult chan *Response

// Receive waits for the response promised by the future and returns the
// warnings of the node.
func (r FutureUnloadWalletResult) Receive() (*btcjson.UnloadWalletResult, error) {
	return receiveResult[btcjson.UnloadWalletResult](r)
}

// UnloadWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See UnloadWallet for the blocking version and more details.
func (c *Client) UnloadWalletAsync(ctx context.Context,
	walletName *string) FutureUnloadWalletResult {

	if walletName == nil && c.wallet != "" {
		walletName = btcjson.String(c.wallet)
	}

	cmd := btcjson.NewUnloadWalletCmd(walletName)
	return c.SendCmd(ctx, cmd)
}

// UnloadWallet unloads the named wallet.  A nil name unloads the wallet of
// the client, or the only loaded wallet of the node.
func (c *Client) UnloadWallet(ctx context.Context,
	walletName *string) (*btcjson.UnloadWalletResult, error) {

	return c.UnloadWalletAsync(ctx, walletName).Receive()
}

// FutureListWalletsResult is a future promise to deliver the result of a
// ListWalletsAsync RPC invocation (or an applicable error).
type FutureListWalletsResult chan *Response

// Receive waits for the response promised by the future and returns the names
// of the loaded wallets.
func (r FutureListWalletsResult) Receive() ([]string, error) {
	raw, err := ReceiveFuture(r)
	if err != nil {
		return nil, err
	}
	return btcjson.ParseStrings(raw)
}

// ListWalletsAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See ListWallets for the blocking version and more details.
func (c *Client) ListWalletsAsync(ctx context.Context) FutureListWalletsResult {
	cmd := btcjson.NewListWalletsCmd()
	return c.SendCmd(ctx, cmd)
}

// ListWallets returns the names of the loaded wallets.
func (c *Client) ListWallets(ctx context.Context) ([]string, error) {
	return c.ListWalletsAsync(ctx).Receive()
}

// FutureGetWalletInfoResult is a future promise to deliver the result of an
// GetWalletInfoAsync RPC invocation (or an applicable error).
type FutureGetWalletInfoResult chan *Response

// Receive waits for the response promised by the future and returns the result
// of wallet state info.
func (r FutureGetWalletInfoResult) Receive() (*btcjson.GetWalletInfoResult, error) {
	return receiveResult[btcjson.GetWalletInfoResult](r)
}

// GetWalletInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetWalletInfo for the blocking version and more details.
func (c *Client) GetWalletInfoAsync(ctx context.Context) FutureGetWalletInfoResult {
	cmd := btcjson.NewGetWalletInfoCmd()
	return c.SendCmd(ctx, cmd)
}

// GetWalletInfo returns various wallet state info.
func (c *Client) GetWalletInfo(ctx context.Context) (*btcjson.GetWalletInfoResult, error) {
	return c.GetWalletInfoAsync(ctx).Receive()
}

// FutureBackupWalletResult is a future promise to deliver the result of an
// BackupWalletAsync RPC invocation (or an applicable error).
type FutureBackupWalletResult chan *Response

// Receive waits for the response promised by the future.
func (r FutureBackupWalletResult) Receive() error {
	return receiveNull(r)
}

// BackupWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See BackupWallet for the blocking version and more details.
func (c *Client) BackupWalletAsync(ctx context.Context,
	destination string) FutureBackupWalletResult {

	return c.SendCmd(ctx, btcjson.NewBackupWalletCmd(destination))
}

// BackupWallet safely copies the current wallet file to the specified
// destination, which can either be a directory or a path with a filename.
// The destination is a path on the host of the node.
func (c *Client) BackupWallet(ctx context.Context, destination string) error {
	return c.BackupWalletAsync(ctx, destination).Receive()
}

// FutureRescanBlockchainResult is a future promise to deliver the result of a
// RescanBlockchainAsync RPC invocation (or an applicable error).
type FutureRescanBlockchainResult chan *Response

// Receive waits for the response promised by the future and returns the
// heights the rescan started and stopped at.
func (r FutureRescanBlockchainResult) Receive() (*btcjson.RescanBlockchainResult, error) {
	return receiveResult[btcjson.RescanBlockchainResult](r)
}

// RescanBlockchainAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See RescanBlockchain for the blocking version and more details.
func (c *Client) RescanBlockchainAsync(ctx context.Context,
	startHeight, stopHeight *int64) FutureRescanBlockchainResult {

	cmd := btcjson.NewRescanBlockchainCmd(startHeight, stopHeight)
	return c.SendCmd(ctx, cmd)
}

// RescanBlockchain rescans the blocks between the passed heights for wallet
// transactions.  The call blocks until the rescan is finished, so the client
// timeout must cover it.
func (c *Client) RescanBlockchain(ctx context.Context,
	startHeight, stopHeight *int64) (*btcjson.RescanBlockchainResult, error) {

	return c.RescanBlockchainAsync(ctx, startHeight, stopHeight).Receive()
}

// FutureImportDescriptorsResult is a future promise to deliver the result of
// an ImportDescriptorsAsync RPC invocation (or an applicable error).
type FutureImportDescriptorsResult chan *Response

// Receive waits for the response promised by the future and returns the
// outcome of every imported descriptor.
func (r FutureImportDescriptorsResult) Receive() (*btcjson.ImportDescriptorsResult, error) {
	return receiveResult[btcjson.ImportDescriptorsResult](r)
}

// ImportDescriptorsAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ImportDescriptors for the blocking version and more details.
func (c *Client) ImportDescriptorsAsync(ctx context.Context,
	requests []btcjson.ImportDescriptorRequest) FutureImportDescriptorsResult {

	if err := c.requireDescriptors(ctx); err != nil {
		return newFutureError(err)
	}

	cmd := btcjson.NewImportDescriptorsCmd(requests)
	return c.SendCmd(ctx, cmd)
}

// ImportDescriptors imports descriptors into a descriptor wallet.  It
// requires bitcoind v0.21 or newer.
func (c *Client) ImportDescriptors(ctx context.Context,
	requests []btcjson.ImportDescriptorRequest) (*btcjson.ImportDescriptorsResult, error) {

	return c.ImportDescriptorsAsync(ctx, requests).Receive()
}

// *********************
// Wallet Lock Functions
// *********************

// FutureEncryptWalletResult is a future promise to deliver the result of an
// EncryptWalletAsync RPC invocation (or an applicable error).
type FutureEncryptWalletResult chan *Response

// Receive waits for the response promised by the future and returns the
// message of the node.  Nodes before v0.21 reply with null and an empty
// message.
func (r FutureEncryptWalletResult) Receive() (string, error) {
	raw, err := ReceiveFuture(r)
	if err != nil {
		return "", err
	}
	if isNull(raw) {
		return "", nil
	}
	return btcjson.ParseString(raw)
}

// EncryptWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See EncryptWallet for the blocking version and more details.
func (c *Client) EncryptWalletAsync(ctx context.Context,
	passphrase string) FutureEncryptWalletResult {

	return c.SendCmd(ctx, btcjson.NewEncryptWalletCmd(passphrase))
}

// EncryptWallet encrypts the wallet with the passed passphrase.  The wallet
// is locked afterwards.
func (c *Client) EncryptWallet(ctx context.Context, passphrase string) (string, error) {
	return c.EncryptWalletAsync(ctx, passphrase).Receive()
}

// FutureWalletLockResult is a future promise to deliver the result of a
// WalletLockAsync RPC invocation (or an applicable error).
type FutureWalletLockResult chan *Response

// Receive waits for the response promised by the future and returns the result
// of locking the wallet.
func (r FutureWalletLockResult) Receive() error {
	return receiveNull(r)
}

// WalletLockAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See WalletLock for the blocking version and more details.
func (c *Client) WalletLockAsync(ctx context.Context) FutureWalletLockResult {
	cmd := btcjson.NewWalletLockCmd()
	return c.SendCmd(ctx, cmd)
}

// WalletLock locks the wallet by removing the encryption key from memory.
//
// After calling this function, the WalletPassphrase function must be used to
// unlock the wallet prior to calling any other function which requires the
// wallet to be unlocked.
func (c *Client) WalletLock(ctx context.Context) error {
	return c.WalletLockAsync(ctx).Receive()
}

// WalletPassphrase unlocks the wallet by using the passphrase to derive the
// decryption key which is then stored in memory for the specified timeout
// (in seconds).
func (c *Client) WalletPassphrase(ctx context.Context, passphrase string,
	timeoutSecs int64) error {

	cmd := btcjson.NewWalletPassphraseCmd(passphrase, timeoutSecs)
	return receiveNull(c.SendCmd(ctx, cmd))
}

// FutureWalletPassphraseChangeResult is a future promise to deliver the result
// of a WalletPassphraseChangeAsync RPC invocation (or an applicable error).
type FutureWalletPassphraseChangeResult chan *Response

// Receive waits for the response promised by the future and returns the result
// of changing the wallet passphrase.
func (r FutureWalletPassphraseChangeResult) Receive() error {
	return receiveNull(r)
}

// WalletPassphraseChangeAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See WalletPassphraseChange for the blocking version and more details.
func (c *Client) WalletPassphraseChangeAsync(ctx context.Context, old,
	new string) FutureWalletPassphraseChangeResult {

	cmd := btcjson.NewWalletPassphraseChangeCmd(old, new)
	return c.SendCmd(ctx, cmd)
}

// WalletPassphraseChange changes the wallet passphrase from the specified old
// to new passphrase.
func (c *Client) WalletPassphraseChange(ctx context.Context, old,
	new string) error {

	return c.WalletPassphraseChangeAsync(ctx, old, new).Receive()
}

// *************************
// Message Signing Functions
// *************************

// FutureSignMessageResult is a future promise to deliver the result of a
// SignMessageAsync RPC invocation (or an applicable error).
type FutureSignMessageResult chan *Response

// Receive waits for the response promised by the future and returns the
// message signed with the private key of the specified address.
func (r FutureSignMessageResult) Receive() (string, error) {
	return receiveString(r)
}

// SignMessageAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SignMessage for the blocking version and more details.
func (c *Client) SignMessageAsync(ctx context.Context, address btcutil.Address,
	message string) FutureSignMessageResult {

	addr := address.EncodeAddress()
	cmd := btcjson.NewSignMessageCmd(addr, message)
	return c.SendCmd(ctx, cmd)
}

// SignMessage signs a message with the private key of the specified address.
// Only legacy addresses can sign messages.
//
// NOTE: This function requires the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SignMessage(ctx context.Context, address btcutil.Address,
	message string) (string, error) {

	return c.SignMessageAsync(ctx, address, message).Receive()
}
