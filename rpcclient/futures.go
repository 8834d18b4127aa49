// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bytes"
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/corejson/btcjson"
)

// receiveResult waits for the reply of the future and parses it into a new
// value of the result type T.
func receiveResult[T any, PT interface {
	*T
	btcjson.Result
}](f chan *Response) (*T, error) {

	raw, err := ReceiveFuture(f)
	if err != nil {
		return nil, err
	}

	res := PT(new(T))
	if err := btcjson.Parse(raw, res); err != nil {
		return nil, err
	}
	return (*T)(res), nil
}

// receiveNull waits for the reply of a call the node answers with null.
func receiveNull(f chan *Response) error {
	_, err := ReceiveFuture(f)
	return err
}

// receiveHash waits for a reply holding a transaction id or block hash.
func receiveHash(f chan *Response) (*chainhash.Hash, error) {
	raw, err := ReceiveFuture(f)
	if err != nil {
		return nil, err
	}
	return btcjson.ParseHash(raw)
}

// receiveString waits for a reply holding a bare string.
func receiveString(f chan *Response) (string, error) {
	raw, err := ReceiveFuture(f)
	if err != nil {
		return "", err
	}
	return btcjson.ParseString(raw)
}

// receiveAmount waits for a reply holding an amount in BTC.
func receiveAmount(f chan *Response) (btcutil.Amount, error) {
	raw, err := ReceiveFuture(f)
	if err != nil {
		return 0, err
	}
	return btcjson.ParseAmount(raw)
}

// isNull reports whether the raw result is a JSON null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
