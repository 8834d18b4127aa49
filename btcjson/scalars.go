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
)

var (
	errDescriptorRange = errors.New("must be a non-negative integer end " +
		"or a [begin, end] pair of non-negative integers with begin <= end")

	errTimestamp = errors.New(`must be a non-negative integer unix ` +
		`time or the string "now"`)
)

// DescriptorRange specifies the limits of a ranged descriptor.
//
// Descriptors are typically ranged when specified in the form of generic HD
// chain paths.
//
//	Example of a ranged descriptor: pkh(tpub.../*)
//
// The value is either the end of the range, encoded as a single integer, or
// the range itself, encoded as [begin, end].
type DescriptorRange struct {
	Begin  int64
	End    int64
	IsPair bool
}

// NewDescriptorRangeEnd returns a range given only by its end.
func NewDescriptorRangeEnd(end int64) DescriptorRange {
	return DescriptorRange{End: end}
}

// NewDescriptorRangePair returns a range given as [begin, end].
func NewDescriptorRangePair(begin, end int64) DescriptorRange {
	return DescriptorRange{Begin: begin, End: end, IsPair: true}
}

// Valid reports whether the range is acceptable.
func (r DescriptorRange) Valid() bool {
	if r.End < 0 || r.Begin < 0 {
		return false
	}
	return !r.IsPair || r.Begin <= r.End
}

// MarshalJSON implements the json.Marshaler interface for DescriptorRange.
func (r DescriptorRange) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, errDescriptorRange
	}
	if r.IsPair {
		return json.Marshal([2]int64{r.Begin, r.End})
	}
	return json.Marshal(r.End)
}

// UnmarshalJSON implements the json.Unmarshaler interface for DescriptorRange.
func (r *DescriptorRange) UnmarshalJSON(data []byte) error {
	var unmarshalled interface{}
	if err := json.Unmarshal(data, &unmarshalled); err != nil {
		return err
	}

	parsed, err := ParseDescriptorRange(unmarshalled)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseDescriptorRange converts a decoded JSON value (or a native Go integer
// or integer slice) into a DescriptorRange.
func ParseDescriptorRange(v interface{}) (DescriptorRange, error) {
	switch t := v.(type) {
	case DescriptorRange:
		if !t.Valid() {
			return DescriptorRange{}, errDescriptorRange
		}
		return t, nil

	case []interface{}:
		if len(t) != 2 {
			return DescriptorRange{}, errDescriptorRange
		}
		begin, ok := nonNegativeInt(t[0])
		if !ok {
			return DescriptorRange{}, errDescriptorRange
		}
		end, ok := nonNegativeInt(t[1])
		if !ok || begin > end {
			return DescriptorRange{}, errDescriptorRange
		}
		return NewDescriptorRangePair(begin, end), nil
	}

	// Native integer slices such as []int or [2]int64.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]interface{}, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return ParseDescriptorRange(items)
	}

	end, ok := nonNegativeInt(v)
	if !ok {
		return DescriptorRange{}, errDescriptorRange
	}
	return NewDescriptorRangeEnd(end), nil
}

// TimestampOrNow defines a type to represent a timestamp value in seconds,
// since epoch.
//
// The value can either be a non-negative integer, or the string "now".
//
// NOTE: Interpretation of the timestamp value depends upon the specific
// JSON-RPC command, where it is used.
type TimestampOrNow struct {
	Unix int64
	Now  bool
}

// Now returns the timestamp encoded as "now".
func Now() TimestampOrNow {
	return TimestampOrNow{Now: true}
}

// Timestamp returns a timestamp for the given unix time.
func Timestamp(unix int64) TimestampOrNow {
	return TimestampOrNow{Unix: unix}
}

// Valid reports whether the timestamp is acceptable.
func (t TimestampOrNow) Valid() bool {
	return t.Now || t.Unix >= 0
}

// MarshalJSON implements the json.Marshaler interface for TimestampOrNow.
func (t TimestampOrNow) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, errTimestamp
	}
	if t.Now {
		return json.Marshal("now")
	}
	return json.Marshal(t.Unix)
}

// UnmarshalJSON implements the json.Unmarshaler interface for TimestampOrNow.
func (t *TimestampOrNow) UnmarshalJSON(data []byte) error {
	var unmarshalled interface{}
	if err := json.Unmarshal(data, &unmarshalled); err != nil {
		return err
	}

	parsed, err := ParseTimestampOrNow(unmarshalled)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimestampOrNow converts a decoded JSON value (or a native Go integer)
// into a TimestampOrNow.
func ParseTimestampOrNow(v interface{}) (TimestampOrNow, error) {
	switch t := v.(type) {
	case TimestampOrNow:
		if !t.Valid() {
			return TimestampOrNow{}, errTimestamp
		}
		return t, nil

	case string:
		if t != "now" {
			return TimestampOrNow{}, errTimestamp
		}
		return Now(), nil
	}

	unix, ok := nonNegativeInt(v)
	if !ok {
		return TimestampOrNow{}, errTimestamp
	}
	return Timestamp(unix), nil
}

// nonNegativeInt extracts a non-negative integer from a JSON number or a
// native Go integer.  Floats with a fractional part are rejected.
func nonNegativeInt(v interface{}) (int64, bool) {
	var n int64
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) ||
			t >= math.MaxInt64 {

			return 0, false
		}
		n = int64(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case uint32:
		n = int64(t)
	default:
		return 0, false
	}
	return n, n >= 0
}

// String returns the JSON form of the range.
func (r DescriptorRange) String() string {
	if r.IsPair {
		return fmt.Sprintf("[%d,%d]", r.Begin, r.End)
	}
	return fmt.Sprintf("%d", r.End)
}
