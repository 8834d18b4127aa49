// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// errNotInteger starts the message of a fractional number given for an
// integer field.
const errNotInteger = "expected an integer"

var (
	descriptorRangeType = reflect.TypeOf(DescriptorRange{})
	timestampType       = reflect.TypeOf(TimestampOrNow{})
	scanningType        = reflect.TypeOf(ScanningOrFalse{})
	warningListType     = reflect.TypeOf(WarningList{})

	// quotedName extracts the field name mapstructure puts in quotes at
	// the start of its error messages.
	quotedName = regexp.MustCompile(`'([^']*)'`)

	// hookError matches the wrapping mapstructure applies to errors
	// returned by a decode hook.
	hookError = regexp.MustCompile(`^error decoding '([^']*)': (.*)$`)

	// mapKey matches the brackets mapstructure puts around map keys.
	// Numeric brackets are slice indices and stay as they are.
	mapKey = regexp.MustCompile(`\[([^\]]*[^0-9\]][^\]]*)\]`)
)

// decodedField converts a field path reported by mapstructure to the dotted
// form used by validation, so softforks[taproot].bip9 becomes
// softforks.taproot.bip9.
func decodedField(name string) string {
	return mapKey.ReplaceAllString(name, ".$1")
}

// Build decodes the input fields into cmd, fills in the documented defaults
// and validates the result.  Keys of fields are the snake_case parameter
// names of the command; values are what encoding/json produces when decoding
// into an interface{} (or native Go values of the same shape).
//
// Every failing field is reported in a single ValidationErrors value.  The
// call is all-or-nothing: when an error is returned cmd is reset to its zero
// value.
func Build(cmd Cmd, fields map[string]interface{}) error {
	rv := reflect.ValueOf(cmd)
	if rv.Kind() != reflect.Ptr || rv.IsNil() ||
		rv.Elem().Kind() != reflect.Struct {

		str := fmt.Sprintf("command must be a non-nil pointer to a "+
			"struct, got %T", cmd)
		return makeError(ErrInvalidType, str)
	}

	if _, ok := cmd.(irregularInput); ok {
		fields, _ = normalizeTree(fields).(map[string]interface{})
	}

	errs, err := decodeFields(cmd, fields, true)
	if err != nil {
		resetValue(rv)
		return err
	}

	if d, ok := cmd.(defaulter); ok {
		d.setDefaults()
	}

	if err := mergeValidation(errs, cmd.Validate()); err != nil {
		resetValue(rv)
		return err
	}
	return nil
}

// MustBuild performs the same function as Build except it panics if the
// input fails validation.  It is intended for inputs whose validity is
// guaranteed by construction, such as literals in tests.
func MustBuild(cmd Cmd, fields map[string]interface{}) {
	if err := Build(cmd, fields); err != nil {
		panic(fmt.Sprintf("invalid %s command: %v", cmd.Method(), err))
	}
}

// BuildCmd builds a new command for the registered method from the input
// fields.
func BuildCmd(method string, fields map[string]interface{}) (Cmd, error) {
	cmd, err := NewCmd(method)
	if err != nil {
		return nil, err
	}
	if err := Build(cmd, fields); err != nil {
		return nil, err
	}
	return cmd, nil
}

// MustBuildCmd performs the same function as BuildCmd except it panics if
// there is an error.
func MustBuildCmd(method string, fields map[string]interface{}) Cmd {
	cmd, err := BuildCmd(method, fields)
	if err != nil {
		panic(fmt.Sprintf("invalid %s command: %v", method, err))
	}
	return cmd
}

// decodeFields decodes the map into out, which must be a pointer to a
// struct.  Type mismatches are returned as KindCast field errors and, when
// strict is set, keys that do not name a field as KindUnknown field errors.
// The returned error is only set for failures unrelated to the input.
func decodeFields(out interface{}, fields map[string]interface{},
	strict bool) (ValidationErrors, error) {

	var md mapstructure.Metadata
	config := &mapstructure.DecoderConfig{
		DecodeHook: scalarDecodeHook,
		Result:     out,
		TagName:    "json",
		Squash:     true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	}
	if strict {
		config.Metadata = &md
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return nil, makeError(ErrInvalidType, err.Error())
	}

	var errs ValidationErrors
	if err := decoder.Decode(fields); err != nil {
		var merr *mapstructure.Error
		messages := []string{err.Error()}
		if errors.As(err, &merr) {
			messages = merr.Errors
		}
		for _, msg := range messages {
			errs = append(errs, castError(msg))
		}
	}

	unused := append([]string(nil), md.Unused...)
	sort.Strings(unused)
	for _, key := range unused {
		errs = append(errs, FieldError{
			Field:   key,
			Kind:    KindUnknown,
			Message: "is not a known parameter",
			Meta:    map[string]interface{}{"validation": "unknown"},
		})
	}

	return errs, nil
}

// castError converts a mapstructure error message into a field error.
// Failures reported by scalarDecodeHook keep their own message.
func castError(msg string) FieldError {
	if m := hookError.FindStringSubmatch(msg); m != nil {
		kind := KindFormat
		if strings.HasPrefix(m[2], errNotInteger) {
			kind = KindCast
		}
		return FieldError{
			Field:   decodedField(m[1]),
			Kind:    kind,
			Message: m[2],
			Meta:    map[string]interface{}{"validation": string(kind)},
		}
	}

	field := ""
	if m := quotedName.FindStringSubmatch(msg); m != nil {
		field = decodedField(m[1])
	}
	return FieldError{
		Field:   field,
		Kind:    KindCast,
		Message: "is invalid",
		Meta: map[string]interface{}{
			"validation": "cast",
			"reason":     msg,
		},
	}
}

// scalarDecodeHook converts values that need more than a type cast: the
// polymorphic scalars of this package and integer fields, which must not
// silently truncate fractional JSON numbers.
func scalarDecodeHook(from, to reflect.Type,
	data interface{}) (interface{}, error) {

	switch to {
	case descriptorRangeType:
		return ParseDescriptorRange(data)

	case timestampType:
		return ParseTimestampOrNow(data)

	case scanningType:
		return parseScanning(data)

	case warningListType:
		return parseWarningList(data)
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:

		switch n := data.(type) {
		case float64:
			// The largest int64, used by the node for deployments
			// without timeout, decodes rounded up to 2^63.
			if n == math.MaxInt64 && to.Kind() == reflect.Int64 {
				return int64(math.MaxInt64), nil
			}
			if n != math.Trunc(n) || n >= math.MaxInt64 ||
				n < math.MinInt64 {

				return nil, fmt.Errorf("%s, got %v",
					errNotInteger, n)
			}
		case json.Number:
			if _, err := n.Int64(); err != nil {
				return nil, fmt.Errorf("%s, got %v",
					errNotInteger, n)
			}
		}
	}

	return data, nil
}

// resetValue sets the value pointed to by rv back to its zero value.
func resetValue(rv reflect.Value) {
	elem := rv.Elem()
	elem.Set(reflect.Zero(elem.Type()))
}
