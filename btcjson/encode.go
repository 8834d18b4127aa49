// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// EncodeCmd validates the command and produces the JSON-RPC 1.0 request for
// it.  Unset optional parameters are filled in with their documented defaults
// on a copy of cmd, so the caller's value is not modified.
//
// Trailing absent parameters are trimmed from the params array while absent
// parameters followed by a present one are sent as null, except for methods
// whose every position has a hard default.  The ID of the returned request is
// left for the transport to assign.
func EncodeCmd(cmd Cmd) (*Request, error) {
	cmd, err := withDefaults(cmd)
	if err != nil {
		return nil, err
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	params := cmd.Params()
	if _, ok := cmd.(fullParams); !ok {
		params = trimParams(params)
	}

	rawParams := make([]json.RawMessage, 0, len(params))
	for i, param := range params {
		marshalled, err := json.Marshal(param)
		if err != nil {
			str := fmt.Sprintf("%s: failed to marshal parameter %d: %v",
				cmd.Method(), i, err)
			return nil, makeError(ErrEncode, str)
		}
		rawParams = append(rawParams, marshalled)
	}

	path := "/"
	if wc, ok := cmd.(WalletCmd); ok {
		path = wc.WalletPath()
	}

	return NewRequest(cmd.Method(), rawParams, path)
}

// MarshalCmd marshals the passed command to a JSON-RPC 1.0 request byte slice
// that is suitable for transmission to an RPC server.  The request path is
// not part of the returned bytes, see EncodeCmd.
func MarshalCmd(id interface{}, cmd Cmd) ([]byte, error) {
	req, err := EncodeCmd(cmd)
	if err != nil {
		return nil, err
	}
	req, err = req.WithID(id)
	if err != nil {
		return nil, err
	}
	return json.Marshal(req)
}

// withDefaults returns a shallow copy of cmd with its defaults filled in.
// Commands without defaults are returned as they are.
func withDefaults(cmd Cmd) (Cmd, error) {
	if _, ok := cmd.(defaulter); !ok {
		return cmd, nil
	}

	rv := reflect.ValueOf(cmd)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		str := fmt.Sprintf("command must be a non-nil pointer, got %T",
			cmd)
		return nil, makeError(ErrInvalidType, str)
	}

	cp := reflect.New(rv.Elem().Type())
	cp.Elem().Set(rv.Elem())
	c := cp.Interface().(Cmd)
	c.(defaulter).setDefaults()
	return c, nil
}

// trimParams drops absent parameters from the end of params.
func trimParams(params []interface{}) []interface{} {
	n := len(params)
	for n > 0 && isAbsent(params[n-1]) {
		n--
	}
	return params[:n]
}

// isAbsent reports whether a parameter is nil or a typed nil.
func isAbsent(param interface{}) bool {
	if param == nil {
		return true
	}
	rv := reflect.ValueOf(param)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
