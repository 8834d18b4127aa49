// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"encoding/json"
	"fmt"
)

// RPCVersion is the value of the jsonrpc member of an envelope.
type RPCVersion string

// RpcVersion1 is the JSON-RPC version Bitcoin Core speaks.  Requests are sent
// with it and replies carry no version at all.
const RpcVersion1 RPCVersion = "1.0"

// IsValid reports whether the version is one bitcoind accepts in a request.
func (r RPCVersion) IsValid() bool {
	return r == RpcVersion1 || r == "2.0"
}

// String returns the version as it appears on the wire.
func (r RPCVersion) String() string {
	return string(r)
}

// RPCErrorCode represents an error code to be used as a part of an RPCError
// which is in turn used in a JSON-RPC Response object.
//
// A specific type is used to help ensure the wrong errors aren't used.
type RPCErrorCode int

// RPCError represents an error that is used as a part of a JSON-RPC Response
// object.
type RPCError struct {
	Code    RPCErrorCode `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Guarantee RPCError satisfies the builtin error interface.
var _, _ error = RPCError{}, (*RPCError)(nil)

// Error returns a string describing the RPC error.  This satisfies the
// builtin error interface.
func (e RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewRPCError constructs and returns a new JSON-RPC error that is suitable
// for use in a JSON-RPC Response object.
func NewRPCError(code RPCErrorCode, message string) *RPCError {
	return &RPCError{
		Code:    code,
		Message: message,
	}
}

// IsValidIDType checks that the ID field (which can go in any of the JSON-RPC
// requests, responses, or notifications) is valid.  JSON-RPC 1.0 allows any
// valid JSON type.  JSON-RPC 2.0 (which bitcoind follows for some parts) only
// allows string, number, or null, so this function restricts the allowed types
// to that list.  This function is only provided in case the caller is manually
// marshalling for some reason.    The functions which accept an ID in this
// package already call this function to ensure the provided id is valid.
func IsValidIDType(id interface{}) bool {
	switch id.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		string,
		nil:
		return true
	default:
		return false
	}
}

// Request is a type for raw JSON-RPC 1.0 requests.  The Method field identifies
// the specific command type which in turns leads to different parameters.
// Requests are normally produced by EncodeCmd, which fills in every field but
// the ID.  The ID is assigned by the transport right before sending.
//
// Path is not part of the JSON envelope.  It is the HTTP path the request must
// be posted to: "/" for node level calls and "/wallet/<name>" for calls scoped
// to a single loaded wallet.
type Request struct {
	Jsonrpc RPCVersion        `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      interface{}       `json:"id"`
	Path    string            `json:"-"`
}

// WithID returns a shallow copy of the request carrying the given id.
func (request *Request) WithID(id interface{}) (*Request, error) {
	if !IsValidIDType(id) {
		str := fmt.Sprintf("the id of type '%T' is invalid", id)
		return nil, makeError(ErrInvalidType, str)
	}
	r := *request
	r.ID = id
	return &r, nil
}

// UnmarshalJSON is a custom unmarshal func for the Request struct. The param
// field defaults to an empty json.RawMessage array it is omitted by the request
// or nil if the supplied value is invalid.
func (request *Request) UnmarshalJSON(b []byte) error {
	// Step 1: Create a type alias of the original struct.
	type Alias Request

	// Step 2: Create an anonymous struct with raw replacements for the special
	// fields.
	aux := &struct {
		Jsonrpc string        `json:"jsonrpc"`
		Params  []interface{} `json:"params"`
		*Alias
	}{
		Alias: (*Alias)(request),
	}

	// Step 3: Unmarshal the data into the anonymous struct.
	err := json.Unmarshal(b, &aux)
	if err != nil {
		return err
	}

	// Step 4: Convert the raw fields to the desired types

	version := RPCVersion(aux.Jsonrpc)
	if version.IsValid() {
		request.Jsonrpc = version
	}

	rawParams := make([]json.RawMessage, 0)

	for _, param := range aux.Params {
		marshalledParam, err := json.Marshal(param)
		if err != nil {
			return err
		}

		rawMessage := json.RawMessage(marshalledParam)
		rawParams = append(rawParams, rawMessage)
	}

	request.Params = rawParams
	if request.Path == "" {
		request.Path = "/"
	}

	return nil
}

// NewRequest returns a JSON-RPC 1.0 request for method with already encoded
// params, posted to path.  It is the way to reach methods this package has no
// command for; known methods go through EncodeCmd.  Nil params are sent as an
// empty array and an empty path selects the node level endpoint "/".
func NewRequest(method string, params []json.RawMessage,
	path string) (*Request, error) {

	if method == "" {
		return nil, makeError(ErrInvalidType, "empty method")
	}
	if path == "" {
		path = "/"
	}
	if path[0] != '/' {
		str := fmt.Sprintf("request path %q is not absolute", path)
		return nil, makeError(ErrInvalidType, str)
	}
	if params == nil {
		params = []json.RawMessage{}
	}

	return &Request{
		Jsonrpc: RpcVersion1,
		Method:  method,
		Params:  params,
		Path:    path,
	}, nil
}

// Response is the general form of a JSON-RPC response.  The shape of the
// result varies from one command to the next, so it is kept raw until parsed
// with ParseResponse.  The ID field is a pointer to tell a null id apart from
// a missing one.
type Response struct {
	Jsonrpc RPCVersion      `json:"jsonrpc,omitempty"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      *interface{}    `json:"id"`
}

// MarshalResponse produces the reply envelope bitcoind sends for the request
// with the given id: the raw result and a null error on success, a null
// result and the error object on failure.  A nil result is sent as null.
func MarshalResponse(id interface{}, result json.RawMessage,
	rpcErr *RPCError) ([]byte, error) {

	if !IsValidIDType(id) {
		str := fmt.Sprintf("the id of type '%T' is invalid", id)
		return nil, makeError(ErrInvalidType, str)
	}
	if rpcErr != nil || result == nil {
		result = json.RawMessage("null")
	}

	return json.Marshal(&Response{
		Result: result,
		Error:  rpcErr,
		ID:     &id,
	})
}

// ParseResponse parses the result of a decoded response into res.  A response
// carrying a non-null error object is never parsed: the RPC error is returned
// instead so callers can inspect its code.  A nil res only checks the error
// object.
func ParseResponse(resp *Response, res Result) error {
	if resp == nil {
		return makeError(ErrInvalidType, "nil response")
	}
	if resp.Error != nil {
		return resp.Error
	}
	if res == nil {
		return nil
	}
	return Parse(resp.Result, res)
}
