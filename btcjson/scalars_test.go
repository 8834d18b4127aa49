// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson_test

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestParseDescriptorRange tests the accepted and rejected range values.
func TestParseDescriptorRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		want    btcjson.DescriptorRange
		wantErr bool
	}{
		{
			name: "end only",
			in:   float64(5),
			want: btcjson.NewDescriptorRangeEnd(5),
		},
		{
			name: "zero end",
			in:   float64(0),
			want: btcjson.NewDescriptorRangeEnd(0),
		},
		{
			name: "pair",
			in:   []interface{}{float64(0), float64(10)},
			want: btcjson.NewDescriptorRangePair(0, 10),
		},
		{
			name: "equal bounds",
			in:   []interface{}{float64(7), float64(7)},
			want: btcjson.NewDescriptorRangePair(7, 7),
		},
		{
			name: "native int",
			in:   1000,
			want: btcjson.NewDescriptorRangeEnd(1000),
		},
		{
			name: "native slice",
			in:   []int{1, 2},
			want: btcjson.NewDescriptorRangePair(1, 2),
		},
		{
			name: "json number",
			in:   json.Number("42"),
			want: btcjson.NewDescriptorRangeEnd(42),
		},
		{name: "reversed pair", in: []interface{}{float64(10), float64(0)}, wantErr: true},
		{name: "negative end", in: float64(-1), wantErr: true},
		{name: "negative begin", in: []interface{}{float64(-1), float64(3)}, wantErr: true},
		{name: "string", in: "5", wantErr: true},
		{name: "fraction", in: 1.5, wantErr: true},
		{name: "single element", in: []interface{}{float64(1)}, wantErr: true},
		{name: "three elements", in: []interface{}{float64(1), float64(2), float64(3)}, wantErr: true},
		{name: "nil", in: nil, wantErr: true},
	}

	for _, test := range tests {
		got, err := btcjson.ParseDescriptorRange(test.in)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", test.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %+v, want %+v", test.name, got,
				test.want)
		}
	}
}

// TestDescriptorRangeJSON tests the wire form of ranges.
func TestDescriptorRangeJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(btcjson.NewDescriptorRangeEnd(5))
	require.NoError(t, err)
	require.Equal(t, "5", string(b))

	b, err = json.Marshal(btcjson.NewDescriptorRangePair(0, 10))
	require.NoError(t, err)
	require.Equal(t, "[0,10]", string(b))

	_, err = json.Marshal(btcjson.NewDescriptorRangePair(10, 0))
	require.Error(t, err)

	var r btcjson.DescriptorRange
	require.NoError(t, json.Unmarshal([]byte("[3,4]"), &r))
	require.Equal(t, btcjson.NewDescriptorRangePair(3, 4), r)
	require.Equal(t, "[3,4]", r.String())

	require.Error(t, json.Unmarshal([]byte(`"5"`), &r))

	t.Run("pair_round_trip", rapid.MakeCheck(func(t *rapid.T) {
		begin := rapid.Int64Range(0, 1<<31).Draw(t, "begin")
		end := rapid.Int64Range(begin, 1<<32).Draw(t, "end")
		want := btcjson.NewDescriptorRangePair(begin, end)

		b, err := json.Marshal(want)
		require.NoError(t, err)

		var got btcjson.DescriptorRange
		require.NoError(t, json.Unmarshal(b, &got))
		require.Equal(t, want, got)
	}))
}

// TestParseTimestampOrNow tests the accepted and rejected timestamp values.
func TestParseTimestampOrNow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		want    btcjson.TimestampOrNow
		wantErr bool
	}{
		{name: "zero", in: float64(0), want: btcjson.Timestamp(0)},
		{name: "unix", in: float64(1700000000), want: btcjson.Timestamp(1700000000)},
		{name: "native", in: int64(12), want: btcjson.Timestamp(12)},
		{name: "now", in: "now", want: btcjson.Now()},
		{name: "later", in: "later", wantErr: true},
		{name: "negative", in: float64(-1), wantErr: true},
		{name: "fraction", in: 0.5, wantErr: true},
		{name: "bool", in: true, wantErr: true},
	}

	for _, test := range tests {
		got, err := btcjson.ParseTimestampOrNow(test.in)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", test.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %+v, want %+v", test.name, got,
				test.want)
		}
	}
}

// TestTimestampOrNowJSON tests the wire form of timestamps.
func TestTimestampOrNowJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(btcjson.Now())
	require.NoError(t, err)
	require.Equal(t, `"now"`, string(b))

	b, err = json.Marshal(btcjson.Timestamp(1500000000))
	require.NoError(t, err)
	require.Equal(t, "1500000000", string(b))

	_, err = json.Marshal(btcjson.Timestamp(-5))
	require.Error(t, err)

	var ts btcjson.TimestampOrNow
	require.NoError(t, json.Unmarshal([]byte(`"now"`), &ts))
	require.True(t, ts.Now)
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
