// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

// Bool is a helper routine that allocates a new bool value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func Bool(v bool) *bool {
	p := new(bool)
	*p = v
	return p
}

// Int64 is a helper routine that allocates a new int64 value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func Int64(v int64) *int64 {
	p := new(int64)
	*p = v
	return p
}

// Float64 is a helper routine that allocates a new float64 value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func Float64(v float64) *float64 {
	p := new(float64)
	*p = v
	return p
}

// String is a helper routine that allocates a new string value to store v and
// returns a pointer to it.  This is useful when assigning optional parameters.
func String(v string) *string {
	p := new(string)
	*p = v
	return p
}

// setBool stores def in *p when the field is unset.
func setBool(p **bool, def bool) {
	if *p == nil {
		*p = Bool(def)
	}
}

// setInt64 stores def in *p when the field is unset.
func setInt64(p **int64, def int64) {
	if *p == nil {
		*p = Int64(def)
	}
}

// setFloat64 stores def in *p when the field is unset.
func setFloat64(p **float64, def float64) {
	if *p == nil {
		*p = Float64(def)
	}
}

// setString stores def in *p when the field is unset.
func setString(p **string, def string) {
	if *p == nil {
		*p = String(def)
	}
}

// optBool and its siblings return the value behind an optional pointer
// parameter, or nil when it is unset, so an absent parameter becomes a real
// nil in Params.
func optBool(p *bool) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func optInt64(p *int64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func optFloat64(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func optString(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
