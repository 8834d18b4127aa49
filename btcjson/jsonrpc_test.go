// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/stretchr/testify/require"
)

// TestNewRequest tests the requests built for methods without a command.
func TestNewRequest(t *testing.T) {
	t.Parallel()

	errInvalid := btcjson.Error{ErrorCode: btcjson.ErrInvalidType}

	tests := []struct {
		name     string
		method   string
		params   []json.RawMessage
		path     string
		wantBody string
		wantPath string
		wantErr  bool
	}{
		{
			name:     "nil params",
			method:   "getdeploymentinfo",
			wantBody: `{"jsonrpc":"1.0","method":"getdeploymentinfo","params":[],"id":1}`,
			wantPath: "/",
		},
		{
			name:   "wallet path",
			method: "getwalletinfo",
			params: []json.RawMessage{
				json.RawMessage(`true`),
			},
			path:     "/wallet/w1",
			wantBody: `{"jsonrpc":"1.0","method":"getwalletinfo","params":[true],"id":1}`,
			wantPath: "/wallet/w1",
		},
		{
			name:    "empty method",
			wantErr: true,
		},
		{
			name:    "relative path",
			method:  "getbalance",
			path:    "wallet/w1",
			wantErr: true,
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		req, err := btcjson.NewRequest(test.method, test.params,
			test.path)
		if test.wantErr {
			require.True(t, errors.Is(err, errInvalid), test.name)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.wantPath, req.Path, test.name)

		req, err = req.WithID(1)
		require.NoError(t, err, test.name)

		body, err := json.Marshal(req)
		require.NoError(t, err, test.name)
		require.JSONEq(t, test.wantBody, string(body), test.name)
	}
}

// TestMarshalResponse tests the reply envelopes and that they decode back
// through ParseResponse.
func TestMarshalResponse(t *testing.T) {
	t.Parallel()

	body, err := btcjson.MarshalResponse(uint64(3), json.RawMessage(`5`),
		nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"result":5,"error":null,"id":3}`, string(body))

	var resp btcjson.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	height, err := btcjson.ParseInt64(resp.Result)
	require.NoError(t, err)
	require.Equal(t, int64(5), height)

	// A reply carrying an error has a null result.
	rpcErr := btcjson.NewRPCError(btcjson.ErrRPCWalletNotFound,
		"Requested wallet does not exist or is not loaded")
	body, err = btcjson.MarshalResponse("x", json.RawMessage(`5`), rpcErr)
	require.NoError(t, err)
	require.JSONEq(t, `{"result":null,"error":{"code":-18,"message":`+
		`"Requested wallet does not exist or is not loaded"},"id":"x"}`,
		string(body))

	resp = btcjson.Response{}
	require.NoError(t, json.Unmarshal(body, &resp))
	err = btcjson.ParseResponse(&resp, nil)
	var gotErr *btcjson.RPCError
	require.True(t, errors.As(err, &gotErr))
	require.Equal(t, btcjson.ErrRPCWalletNotFound, gotErr.Code)

	body, err = btcjson.MarshalResponse(nil, nil, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"result":null,"error":null,"id":null}`,
		string(body))

	_, err = btcjson.MarshalResponse([]int{1}, nil, nil)
	require.True(t, errors.Is(err, btcjson.Error{
		ErrorCode: btcjson.ErrInvalidType,
	}))
}
