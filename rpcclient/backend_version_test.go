package rpcclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

// TestParseBitcoindVersion checks that the correct version from bitcoind's
// `getnetworkinfo` RPC call is parsed.
func TestParseBitcoindVersion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		rpcVersion    string
		parsedVersion BackendVersion
	}{
		{
			name:          "parse version 0.19 and below",
			rpcVersion:    "/Satoshi:0.18.0/",
			parsedVersion: BitcoindPre19,
		},
		{
			name:          "parse version 0.19",
			rpcVersion:    "/Satoshi:0.19.0/",
			parsedVersion: BitcoindPre21,
		},
		{
			name:          "parse version 0.19 - 0.21",
			rpcVersion:    "/Satoshi:0.20.1/",
			parsedVersion: BitcoindPre21,
		},
		{
			name:          "parse version 0.21",
			rpcVersion:    "/Satoshi:0.21.2/",
			parsedVersion: BitcoindPre22,
		},
		{
			name:          "parse version 22.0",
			rpcVersion:    "/Satoshi:22.0.0/",
			parsedVersion: BitcoindPre24,
		},
		{
			name:          "parse version 22.0 - 24.0",
			rpcVersion:    "/Satoshi:23.1.0/",
			parsedVersion: BitcoindPre24,
		},
		{
			name:          "parse version 24.0",
			rpcVersion:    "/Satoshi:24.0.0/",
			parsedVersion: BitcoindPre25,
		},
		{
			name:          "parse version 25.0",
			rpcVersion:    "/Satoshi:25.0.0/",
			parsedVersion: BitcoindPre28,
		},
		{
			name:          "parse version 27.1 with comment",
			rpcVersion:    "/Satoshi:27.1.0(node-a)/",
			parsedVersion: BitcoindPre28,
		},
		{
			name:          "parse release candidate",
			rpcVersion:    "/Satoshi:28.0.0-rc1/",
			parsedVersion: BitcoindPost28,
		},
		{
			name:          "parse version 28.0 and above",
			rpcVersion:    "/Satoshi:29.0.0/",
			parsedVersion: BitcoindPost28,
		},
		{
			name:          "parse garbage",
			rpcVersion:    "/Knots/",
			parsedVersion: BitcoindPre19,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			version := parseBitcoindVersion(tc.rpcVersion)
			require.Equal(t, tc.parsedVersion, version)
		})
	}
}

// TestBackendVersionString checks that every backend version has a name.
func TestBackendVersionString(t *testing.T) {
	t.Parallel()

	for v := BitcoindPre19; v <= BitcoindPost28; v++ {
		require.NotEqual(t, "unknown", v.String())
	}
	require.Equal(t, "unknown", BackendVersion(255).String())

	require.False(t, BitcoindPre21.SupportsDescriptors())
	require.True(t, BitcoindPre22.SupportsDescriptors())
	require.True(t, BitcoindPost28.SupportsDescriptors())
}

// TestBackendVersionCached checks that the version is looked up once.
func TestBackendVersionCached(t *testing.T) {
	t.Parallel()

	client, mock := newTestClient(t, nil)
	mock.RegisterResponder(http.MethodPost, testRootURL,
		rpcResponder(t, "getnetworkinfo", networkInfoJSON(
			"/Satoshi:26.0.0/")))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		version, err := client.BackendVersion(ctx)
		require.NoError(t, err)
		require.Equal(t, BitcoindPre28, version)
	}
	require.Equal(t, 1, mock.GetTotalCallCount())
}

// TestBackendVersionRequired checks that descriptor calls are refused by old
// nodes without being sent.
func TestBackendVersionRequired(t *testing.T) {
	t.Parallel()

	client, mock := newTestClient(t, nil)
	mock.RegisterResponder(http.MethodPost, testRootURL,
		rpcResponder(t, "getnetworkinfo", networkInfoJSON(
			"/Satoshi:0.20.1/")))

	ctx := context.Background()
	_, err := client.ImportDescriptors(ctx, nil)
	require.ErrorIs(t, err, ErrBackendVersion)

	_, err = client.CreateWallet(ctx, "w")
	require.ErrorIs(t, err, ErrBackendVersion)

	// Legacy wallets are still created.
	mock.RegisterResponder(http.MethodPost, testRootURL,
		func(req *http.Request) (*http.Response, error) {
			rec := decodeRequest(t, req)
			require.Equal(t, "createwallet", rec.Method)
			require.Equal(t, false, rec.params[5])

			return httpmock.NewStringResponse(http.StatusOK,
				`{"result":{"name":"w","warning":""},`+
					`"error":null,"id":1}`), nil
		},
	)
	res, err := client.CreateWallet(ctx, "w", WithCreateWalletLegacy())
	require.NoError(t, err)
	require.Equal(t, "w", res.Name)
	require.Equal(t, []string{}, res.Warnings)

	// One getnetworkinfo and one createwallet.
	require.Equal(t, 2, mock.GetTotalCallCount())
}

// networkInfoJSON returns a getnetworkinfo result with the passed subversion.
func networkInfoJSON(subversion string) string {
	return `{"version":260000,"subversion":"` + subversion + `",` +
		`"protocolversion":70016,"localservices":"0000000000000409",` +
		`"localservicesnames":["NETWORK","WITNESS"],"localrelay":true,` +
		`"timeoffset":0,"networkactive":true,"connections":8,` +
		`"connections_in":0,"connections_out":8,"networks":[],` +
		`"relayfee":0.00001,"incrementalfee":0.00001,` +
		`"localaddresses":[],"warnings":""}`
}
