package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/btcsuite/corejson/rpcclient"
	"github.com/stretchr/testify/require"
)

// TestParseArgs checks the decoding of key=value arguments.
func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		stdin  string
		fields map[string]interface{}
		err    string
	}{
		{
			name:   "no args",
			fields: map[string]interface{}{},
		},
		{
			name: "json values",
			args: []string{"amount=0.5", "subtract_fee=true",
				`options={"change_position":1}`, "minconf=6"},
			fields: map[string]interface{}{
				"amount":       0.5,
				"subtract_fee": true,
				"options": map[string]interface{}{
					"change_position": float64(1),
				},
				"minconf": float64(6),
			},
		},
		{
			name: "strings",
			args: []string{"label=rent", `comment="42"`, "x=a=b"},
			fields: map[string]interface{}{
				"label":   "rent",
				"comment": "42",
				"x":       "a=b",
			},
		},
		{
			name:  "stdin",
			args:  []string{"hexstring=-", "maxfeerate=-"},
			stdin: "0200\n0.2\n",
			fields: map[string]interface{}{
				"hexstring":  "0200",
				"maxfeerate": 0.2,
			},
		},
		{
			name: "empty value",
			args: []string{"label="},
			fields: map[string]interface{}{
				"label": "",
			},
		},
		{
			name: "positional",
			args: []string{"rent"},
			err:  "not of the form key=value",
		},
		{
			name: "no key",
			args: []string{"=1"},
			err:  "not of the form key=value",
		},
		{
			name: "duplicate",
			args: []string{"a=1", "a=2"},
			err:  "given twice",
		},
		{
			name:  "stdin exhausted",
			args:  []string{"a=-", "b=-"},
			stdin: "1\n",
			err:   "not enough lines",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			stdin := bufio.NewReader(strings.NewReader(test.stdin))
			fields, err := parseArgs(test.args, stdin)
			if test.err != "" {
				require.ErrorContains(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.fields, fields)
		})
	}
}

// TestBuildCmdErrors checks the messages shown for invalid commands.
func TestBuildCmdErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		args   []string
		want   []string
	}{
		{
			name:   "unknown method",
			method: "getinfo",
			want:   []string{"Unrecognized command 'getinfo'"},
		},
		{
			name:   "missing field",
			method: "getblockhash",
			want: []string{
				"Invalid parameters for getblockhash:",
				"  height: can't be blank",
			},
		},
		{
			name:   "bad argument",
			method: "getblockhash",
			args:   []string{"height"},
			want:   []string{"not of the form key=value"},
		},
		{
			name:   "unknown field",
			method: "getblockcount",
			args:   []string{"verbose=true"},
			want:   []string{"  verbose: is not a known parameter"},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		var buf bytes.Buffer
		cmd, err := buildCmd(&buf, test.method, test.args,
			bufio.NewReader(strings.NewReader("")))
		require.ErrorIs(t, err, errReported, test.name)
		require.Nil(t, cmd, test.name)
		for _, want := range test.want {
			require.Contains(t, buf.String(), want, test.name)
		}
	}
}

// TestPrintResult checks the display of each kind of result.
func TestPrintResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result string
		want   string
	}{
		{
			name:   "object",
			result: `{"a":1,"b":[true]}`,
			want:   "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ]\n}\n",
		},
		{
			name:   "array",
			result: `[]`,
			want:   "[]\n",
		},
		{
			name:   "string",
			result: `"bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080"`,
			want:   "bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080\n",
		},
		{
			name:   "number",
			result: `0.25`,
			want:   "0.25\n",
		},
		{
			name:   "null",
			result: `null`,
			want:   "",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		var buf bytes.Buffer
		err := printResult(&buf, json.RawMessage(test.result), false)
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, buf.String(), test.name)
	}

	var buf bytes.Buffer
	err := printResult(&buf, json.RawMessage(`{"txid":"ab"}`), true)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `(string) (len=2) "ab"`)
}

// TestExecute sends commands to a test node and checks what is printed.
func TestExecute(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "user" || pass != "pass" {
				t.Errorf("unexpected credentials %q:%q", user, pass)
			}

			var req struct {
				ID     interface{}   `json:"id"`
				Method string        `json:"method"`
				Params []interface{} `json:"params"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("unable to decode request: %v", err)
			}

			reply := func(status int, result json.RawMessage,
				rpcErr *btcjson.RPCError) {

				body, err := btcjson.MarshalResponse(req.ID, result,
					rpcErr)
				if err != nil {
					t.Errorf("unable to marshal reply: %v", err)
				}
				w.WriteHeader(status)
				_, _ = w.Write(body)
			}
			switch {
			case req.Method == "getbalance" &&
				r.URL.Path == "/wallet/alice":

				reply(http.StatusOK, json.RawMessage("1.5"), nil)

			case req.Method == "getblockhash" && r.URL.Path == "/" &&
				len(req.Params) == 1 && req.Params[0] == float64(1):

				reply(http.StatusInternalServerError, nil,
					btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter,
						"Block height out of range"))

			default:
				t.Errorf("unexpected %s to %s", req.Method,
					r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		},
	))
	t.Cleanup(srv.Close)

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:       srv.Listener.Addr().String(),
		User:       "user",
		Pass:       "pass",
		Wallet:     "alice",
		DisableTLS: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Shutdown)

	ctx := context.Background()
	cfg := &config{RPCServer: srv.Listener.Addr().String()}
	stdin := bufio.NewReader(strings.NewReader(""))

	var out, errOut bytes.Buffer
	err = execute(ctx, client, cfg, "getbalance", []string{"minconf=1"},
		stdin, &out, &errOut)
	require.NoError(t, err)
	require.Equal(t, "1.5\n", out.String())
	require.Empty(t, errOut.String())

	out.Reset()
	err = execute(ctx, client, cfg, "getblockhash", []string{"height=1"},
		stdin, &out, &errOut)
	require.ErrorIs(t, err, errReported)
	require.Empty(t, out.String())
	require.Equal(t, "getblockhash: error code -8: Block height out "+
		"of range\n", errOut.String())

	// Printing the request does not need the node.
	out.Reset()
	errOut.Reset()
	cfg.PrintJSON = true
	err = execute(ctx, client, cfg, "getbalance", nil, stdin, &out,
		&errOut)
	require.NoError(t, err)
	require.Contains(t, out.String(), `"method":"getbalance"`)
}
