// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/corejson/btcjson"
)

var (
	// ErrBackendVersion is returned when running against a bitcoind that
	// is older than the minimum version supported by a call.
	ErrBackendVersion = errors.New("backend version too low")

	// ErrInvalidParam is returned when the caller provides an invalid
	// parameter to an RPC method.
	ErrInvalidParam = errors.New("invalid param")

	// ErrUndefined is used when an error returned by the node is not
	// recognized.
	ErrUndefined = errors.New("undefined")
)

// Errors mapped from the numeric code of an RPC error object.
var (
	// ErrWallet is returned for unspecified wallet failures.
	ErrWallet = errors.New("wallet error")

	// ErrWalletNotFound is returned when the wallet named in the request
	// path does not exist or is not loaded.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletNotSpecified is returned by a multi-wallet node when a
	// wallet call is sent without a wallet path.
	ErrWalletNotSpecified = errors.New("wallet not specified")

	// ErrWalletAlreadyLoaded is returned when loading a loaded wallet.
	ErrWalletAlreadyLoaded = errors.New("wallet already loaded")

	// ErrWalletAlreadyExists is returned when creating an existing wallet.
	ErrWalletAlreadyExists = errors.New("wallet already exists")

	// ErrWalletUnlockNeeded is returned when the wallet must be unlocked
	// with walletpassphrase first.
	ErrWalletUnlockNeeded = errors.New("wallet unlock needed")

	// ErrWalletPassphraseIncorrect is returned for a wrong passphrase.
	ErrWalletPassphraseIncorrect = errors.New("wallet passphrase incorrect")

	// ErrWalletWrongEncState is returned when the command does not apply
	// to the encryption state of the wallet.
	ErrWalletWrongEncState = errors.New("wallet in wrong encryption state")

	// ErrKeypoolRanOut is returned when the keypool is exhausted.
	ErrKeypoolRanOut = errors.New("keypool ran out")

	// ErrInsufficientFunds is returned when the wallet can't fund a
	// transaction.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAddressOrKey is returned for an unknown address, key or
	// transaction.
	ErrInvalidAddressOrKey = errors.New("invalid address or key")

	// ErrInvalidParameter is returned when the node rejects a parameter.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDeserialization is returned when the node can't decode a
	// transaction or PSBT.
	ErrDeserialization = errors.New("deserialization error")

	// ErrVerify is returned when the node rejects a transaction or block.
	ErrVerify = errors.New("verification failed")

	// ErrInWarmup is returned while the node is still starting up.
	ErrInWarmup = errors.New("node in warmup")

	// ErrInInitialDownload is returned while the node is syncing.
	ErrInInitialDownload = errors.New("node in initial block download")

	// ErrMethodNotFound is returned for an RPC method the node does not
	// know, e.g. a wallet call to a node built without wallet support.
	ErrMethodNotFound = errors.New("method not found")
)

// rpcErrCodes maps the codes of RPC error objects to their errors.
var rpcErrCodes = map[btcjson.RPCErrorCode]error{
	btcjson.ErrRPCWallet:                    ErrWallet,
	btcjson.ErrRPCWalletNotFound:            ErrWalletNotFound,
	btcjson.ErrRPCWalletNotSpecified:        ErrWalletNotSpecified,
	btcjson.ErrRPCWalletAlreadyLoaded:       ErrWalletAlreadyLoaded,
	btcjson.ErrRPCWalletAlreadyExists:       ErrWalletAlreadyExists,
	btcjson.ErrRPCWalletUnlockNeeded:        ErrWalletUnlockNeeded,
	btcjson.ErrRPCWalletPassphraseIncorrect: ErrWalletPassphraseIncorrect,
	btcjson.ErrRPCWalletWrongEncState:       ErrWalletWrongEncState,
	btcjson.ErrRPCWalletKeypoolRanOut:       ErrKeypoolRanOut,
	btcjson.ErrRPCWalletInsufficientFunds:   ErrInsufficientFunds,
	btcjson.ErrRPCInvalidAddressOrKey:       ErrInvalidAddressOrKey,
	btcjson.ErrRPCInvalidParameter:          ErrInvalidParameter,
	btcjson.ErrRPCDeserialization:           ErrDeserialization,
	btcjson.ErrRPCVerify:                    ErrVerify,
	btcjson.ErrRPCVerifyRejected:            ErrVerify,
	btcjson.ErrRPCVerifyAlreadyInChain:      ErrVerify,
	btcjson.ErrRPCInWarmup:                  ErrInWarmup,
	btcjson.ErrRPCClientInInitialDownload:   ErrInInitialDownload,
	btcjson.ErrRPCCodeMethodNotFound:        ErrMethodNotFound,
}

// BitcoindRPCErr represents an error returned by bitcoind's RPC server when
// it rejects a transaction, as reported by sendrawtransaction and in the
// reject reason of testmempoolaccept.
type BitcoindRPCErr uint32

// BitcoindRPCErr's are constants that map to the reject reasons of bitcoind.
const (
	// ErrMissingInputs is returned when the inputs of the transaction
	// never existed or were already spent.
	ErrMissingInputs BitcoindRPCErr = iota

	// ErrDustOutput is returned when an output is below the dust limit.
	ErrDustOutput

	// ErrMinRelayFeeNotMet is returned when the fee rate is below the
	// minimum relay fee.
	ErrMinRelayFeeNotMet

	// ErrMempoolMinFeeNotMet is returned when the fee rate is below the
	// dynamic minimum of a full mempool.
	ErrMempoolMinFeeNotMet

	// ErrInsufficientFee is returned when a replacement does not pay
	// enough fees.
	ErrInsufficientFee

	// ErrTxAlreadyKnown is returned when the transaction is already in the
	// mempool or the chain.
	ErrTxAlreadyKnown

	// ErrTxAlreadyInMempool is returned when the transaction is already in
	// the mempool.
	ErrTxAlreadyInMempool

	// ErrTxAlreadyConfirmed is returned when the transaction is already
	// confirmed.
	ErrTxAlreadyConfirmed

	// ErrMempoolConflict is returned when the transaction spends an input
	// already spent in the mempool by a non-replaceable transaction.
	ErrMempoolConflict

	// ErrTooManyReplacements is returned when a replacement evicts more
	// transactions than permitted.
	ErrTooManyReplacements

	// ErrNonFinal is returned for a transaction that is not final yet.
	ErrNonFinal

	// ErrNonBIP68Final is returned when the sequence locks of the inputs
	// are not met.
	ErrNonBIP68Final

	// ErrMaxFeeExceeded is returned when the fee exceeds the maxfeerate
	// of the call.
	ErrMaxFeeExceeded

	// ErrTxSize is returned for a transaction over the standard size.
	ErrTxSize

	// ErrScriptVerifyFailed is returned when a script fails validation.
	ErrScriptVerifyFailed

	// errSentinel is used to indicate the end of the error list.  This
	// should always be the last error code.
	errSentinel
)

// Error implements the error interface.  It returns the error message of the
// node with dashes replaced by spaces.
func (r BitcoindRPCErr) Error() string {
	switch r {
	case ErrMissingInputs:
		return "missing inputs"

	case ErrDustOutput:
		return "dust"

	case ErrMinRelayFeeNotMet:
		return "min relay fee not met"

	case ErrMempoolMinFeeNotMet:
		return "mempool min fee not met"

	case ErrInsufficientFee:
		return "insufficient fee"

	case ErrTxAlreadyKnown:
		return "txn already known"

	case ErrTxAlreadyInMempool:
		return "txn already in mempool"

	case ErrTxAlreadyConfirmed:
		return "transaction already in block chain"

	case ErrMempoolConflict:
		return "txn mempool conflict"

	case ErrTooManyReplacements:
		return "too many potential replacements"

	case ErrNonFinal:
		return "non final"

	case ErrNonBIP68Final:
		return "non bip68 final"

	case ErrMaxFeeExceeded:
		return "max fee exceeded"

	case ErrTxSize:
		return "tx size"

	case ErrScriptVerifyFailed:
		return "mandatory script verify flag failed"
	}

	return "unknown error"
}

// matchErrStr takes an error returned from the node and matches it against
// the specified string.  Dashes are replaced by spaces and both are compared
// in lower case.
func matchErrStr(err error, s string) bool {
	target := strings.ToLower(strings.ReplaceAll(s, "-", " "))
	msg := strings.ToLower(strings.ReplaceAll(err.Error(), "-", " "))
	return strings.Contains(msg, target)
}

// MapRejectReason maps a reject reason of the node, such as the one reported
// by testmempoolaccept, to a BitcoindRPCErr.  It returns ErrUndefined when
// the reason is not known.
func MapRejectReason(reason string) error {
	err := errors.New(reason)
	for i := uint32(0); i < uint32(errSentinel); i++ {
		if matchErrStr(err, BitcoindRPCErr(i).Error()) {
			return BitcoindRPCErr(i)
		}
	}

	return fmt.Errorf("%w: %v", ErrUndefined, reason)
}

// MapRPCErr takes an error returned from calling RPC methods and maps it to
// the errors of this package.  An RPC error object keeps being reachable with
// errors.As, its code is reachable with errors.Is on the mapped error and a
// rejected transaction additionally matches the BitcoindRPCErr of its reject
// reason.  Errors that are not recognized are wrapped in ErrUndefined.
func MapRPCErr(rpcErr error) error {
	if rpcErr == nil {
		return nil
	}

	var (
		jsonErr *btcjson.RPCError
		mapped  error
	)
	if errors.As(rpcErr, &jsonErr) {
		mapped = rpcErrCodes[jsonErr.Code]
	}

	if mapped == nil || mapped == ErrVerify {
		for i := uint32(0); i < uint32(errSentinel); i++ {
			bitcoindErr := BitcoindRPCErr(i)
			if !matchErrStr(rpcErr, bitcoindErr.Error()) {
				continue
			}
			if mapped == nil {
				return fmt.Errorf("%w: %w", bitcoindErr, rpcErr)
			}
			return fmt.Errorf("%w: %w: %w", mapped, bitcoindErr,
				rpcErr)
		}
	}

	if mapped != nil {
		return fmt.Errorf("%w: %w", mapped, rpcErr)
	}

	return fmt.Errorf("%w: %w", ErrUndefined, rpcErr)
}
