// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// objectResult is implemented by polymorphic results that need to know they
// were decoded from a JSON object rather than from a bare string.
type objectResult interface {
	fromObject()
}

// jsonKind names the top-level kind of a raw JSON value for error messages.
func jsonKind(raw []byte) string {
	if len(raw) == 0 {
		return "empty"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// shapeMismatch returns the error used when a result arrives with a JSON kind
// the result type does not accept.
func shapeMismatch(res interface{}, raw []byte) error {
	str := fmt.Sprintf("%T can't be parsed from a JSON %s", res,
		jsonKind(raw))
	return makeError(ErrShapeMismatch, str)
}

// Parse decodes the raw result of an RPC call into res and validates it.
//
// The top-level JSON kind selects the decoding path.  Objects have their keys
// normalized at every depth and are decoded field by field.  Arrays are only
// accepted by list results and bare strings only by results that may be
// returned as a string.  Any other kind yields an Error with the
// ErrShapeMismatch code.
//
// Unknown keys are ignored so newer servers that add fields remain readable.
// Every failing field is reported in a single ValidationErrors value and res
// is reset to its zero value when an error is returned.
func Parse(raw json.RawMessage, res Result) error {
	rv := reflect.ValueOf(res)
	if res == nil || rv.Kind() != reflect.Ptr || rv.IsNil() ||
		rv.Elem().Kind() != reflect.Struct {

		str := fmt.Sprintf("result must be a non-nil pointer to a "+
			"struct, got %T", res)
		return makeError(ErrInvalidType, str)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return shapeMismatch(res, trimmed)
	}

	var (
		errs ValidationErrors
		err  error
	)
	switch trimmed[0] {
	case '{':
		if _, ok := res.(listResult); ok {
			return shapeMismatch(res, trimmed)
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return makeError(ErrShapeMismatch, err.Error())
		}
		fields, _ = normalizeTree(fields).(map[string]interface{})
		errs, err = decodeFields(res, fields, false)
		if o, ok := res.(objectResult); ok {
			o.fromObject()
		}

	case '[':
		lr, ok := res.(listResult)
		if !ok {
			return shapeMismatch(res, trimmed)
		}
		var items []interface{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return makeError(ErrShapeMismatch, err.Error())
		}
		fields := map[string]interface{}{
			lr.listKey(): normalizeTree(items),
		}
		errs, err = decodeFields(res, fields, false)

	case '"':
		sr, ok := res.(stringResult)
		if !ok {
			return shapeMismatch(res, trimmed)
		}
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return makeError(ErrShapeMismatch, err.Error())
		}
		sr.setString(s)

	default:
		return shapeMismatch(res, trimmed)
	}
	if err != nil {
		resetValue(rv)
		return err
	}

	if d, ok := res.(defaulter); ok {
		d.setDefaults()
	}

	if err := mergeValidation(errs, res.Validate()); err != nil {
		resetValue(rv)
		return err
	}
	return nil
}

// MustParse performs the same function as Parse except it panics if the
// result can't be parsed.  It is intended for fixtures in tests.
func MustParse(raw json.RawMessage, res Result) {
	if err := Parse(raw, res); err != nil {
		panic(fmt.Sprintf("invalid %T result: %v", res, err))
	}
}

// mergeValidation combines decoding failures with the errors returned by a
// validation pass.  Fields that failed to decode are not reported twice.
func mergeValidation(errs ValidationErrors, verr error) error {
	if verr != nil {
		verrs, ok := AsValidationErrors(verr)
		if !ok {
			return verr
		}
		failed := make(map[string]struct{}, len(errs))
		for _, e := range errs {
			failed[e.Field] = struct{}{}
		}
		for _, e := range verrs {
			if _, ok := failed[e.Field]; !ok {
				errs = append(errs, e)
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// resultField is the field name used for errors of scalar results.
const resultField = "result"

// unmarshalScalar decodes a scalar result after checking its JSON kind.
func unmarshalScalar(raw json.RawMessage, kind string, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if jsonKind(trimmed) != kind {
		str := fmt.Sprintf("%T can't be parsed from a JSON %s", out,
			jsonKind(trimmed))
		return makeError(ErrShapeMismatch, str)
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return makeError(ErrShapeMismatch, err.Error())
	}
	return nil
}

// ParseString parses a result that is a bare JSON string, such as the address
// returned by getnewaddress.
func ParseString(raw json.RawMessage) (string, error) {
	var s string
	if err := unmarshalScalar(raw, "string", &s); err != nil {
		return "", err
	}
	return s, nil
}

// ParseHash parses a result that is a hex encoded hash in byte-reversed
// order, such as a transaction id or a block hash.
func ParseHash(raw json.RawMessage) (*chainhash.Hash, error) {
	s, err := ParseString(raw)
	if err != nil {
		return nil, err
	}

	var v validator
	v.txid(resultField, s)
	if err := v.err(); err != nil {
		return nil, err
	}
	return chainhash.NewHashFromStr(s)
}

// ParseAmount parses a result that is an amount in BTC, such as the balance
// returned by getbalance.
func ParseAmount(raw json.RawMessage) (btcutil.Amount, error) {
	var f float64
	if err := unmarshalScalar(raw, "number", &f); err != nil {
		return 0, err
	}
	amt, err := btcutil.NewAmount(f)
	if err != nil {
		return 0, ValidationErrors{{
			Field:   resultField,
			Kind:    KindNumber,
			Message: "is not a valid amount",
			Meta:    map[string]interface{}{"validation": "number"},
		}}
	}
	return amt, nil
}

// ParseInt64 parses a result that is an integer, such as the height returned
// by getblockcount.
func ParseInt64(raw json.RawMessage) (int64, error) {
	var f float64
	if err := unmarshalScalar(raw, "number", &f); err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, ValidationErrors{{
			Field:   resultField,
			Kind:    KindCast,
			Message: msgInvalid,
			Meta:    map[string]interface{}{"validation": "cast"},
		}}
	}
	return int64(f), nil
}

// ParseStrings parses a result that is an array of strings, such as the names
// returned by listwallets.  An empty array yields an empty, non-nil slice.
func ParseStrings(raw json.RawMessage) ([]string, error) {
	list := []string{}
	if err := unmarshalScalar(raw, "array", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseBool parses a result that is a JSON boolean, such as the answer of
// lockunspent.
func ParseBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := unmarshalScalar(raw, "boolean", &b); err != nil {
		return false, err
	}
	return b, nil
}
