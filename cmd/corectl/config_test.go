package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/corejson/sampleconfig"
	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

// TestNormalizeAddress checks that the default port of each network is added
// to addresses without one.
func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr   string
		params network
		want   string
	}{
		{"localhost", mainNet, "localhost:8332"},
		{"localhost", testNet, "localhost:18332"},
		{"localhost", sigNet, "localhost:38332"},
		{"localhost", regTest, "localhost:18443"},
		{"127.0.0.1:1234", regTest, "127.0.0.1:1234"},
		{"::1", mainNet, "[::1]:8332"},
		{"[::1]:18443", mainNet, "[::1]:18443"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		got := normalizeAddress(test.addr, test.params)
		require.Equal(t, test.want, got, "test #%d", i)
	}
}

// TestSelectNetwork checks the network flags.
func TestSelectNetwork(t *testing.T) {
	t.Parallel()

	params, err := selectNetwork(&config{})
	require.NoError(t, err)
	require.Equal(t, mainNet, params)

	params, err = selectNetwork(&config{SigNet: true})
	require.NoError(t, err)
	require.Equal(t, sigNet, params)

	_, err = selectNetwork(&config{TestNet: true, RegTest: true})
	require.Error(t, err)
}

// TestFinishConfig checks the values derived from the parsed options.
func TestFinishConfig(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()

	// Without credentials the cookie of the network is used.
	cfg := &config{
		DataDir:    dataDir,
		RPCServer:  "localhost",
		LogDir:     dataDir,
		DebugLevel: "info",
		RegTest:    true,
		Wallet:     "alice",
	}
	require.NoError(t, finishConfig(cfg))
	require.Equal(t, "localhost:18443", cfg.RPCServer)
	require.Equal(t, filepath.Join(dataDir, "regtest", ".cookie"),
		cfg.RPCCookie)

	connCfg, err := connConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, cfg.RPCCookie, connCfg.CookiePath)
	require.Equal(t, "alice", connCfg.Wallet)
	require.True(t, connCfg.DisableTLS)
	require.Contains(t, connCfg.ExtraHeaders["User-Agent"], "corejson/")

	// The mainnet cookie is in the data directory itself.
	cfg = &config{
		DataDir:    dataDir,
		RPCServer:  "localhost",
		LogDir:     dataDir,
		DebugLevel: "info",
	}
	require.NoError(t, finishConfig(cfg))
	require.Equal(t, filepath.Join(dataDir, ".cookie"), cfg.RPCCookie)

	// Credentials disable the cookie.
	cfg = &config{
		DataDir:     dataDir,
		RPCServer:   "node:1",
		RPCUser:     "user",
		RPCPassword: "pass",
		RPCCookie:   "/tmp/.cookie",
		LogDir:      dataDir,
		DebugLevel:  "info",
	}
	require.NoError(t, finishConfig(cfg))
	connCfg, err = connConfig(cfg)
	require.NoError(t, err)
	require.Empty(t, connCfg.CookiePath)
	require.Equal(t, "user", connCfg.User)
	require.Equal(t, "node:1", connCfg.Host)

	// Invalid options are refused.
	cfg = &config{DataDir: dataDir, DebugLevel: "loud"}
	require.Error(t, finishConfig(cfg))

	cfg = &config{DataDir: dataDir, DebugLevel: "info", Wallet: "-alice"}
	require.Error(t, finishConfig(cfg))
}

// TestCreateDefaultConfigFile checks that the sample config is written with
// the credentials of the node configuration.
func TestCreateDefaultConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nodeConfig := filepath.Join(dir, "bitcoin.conf")
	dest := filepath.Join(dir, "corectl", "corectl.conf")

	// The sample is written as is without a node configuration.
	require.NoError(t, createDefaultConfigFile(dest, nodeConfig))
	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, sampleconfig.FileContents, string(content))

	// Or with only a username.
	require.NoError(t, os.WriteFile(nodeConfig,
		[]byte("server=1\nregtest=1\nrpcuser=alice\n"), 0600))
	require.NoError(t, createDefaultConfigFile(dest, nodeConfig))
	content, err = os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, sampleconfig.FileContents, string(content))

	require.NoError(t, os.WriteFile(nodeConfig,
		[]byte("server=1\nrpcuser=alice\n  rpcpassword=s3cret\n"), 0600))
	require.NoError(t, createDefaultConfigFile(dest, nodeConfig))
	content, err = os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(content), "\nrpcuser=alice\n")
	require.Contains(t, string(content), "\nrpcpass=s3cret\n")
	require.NotContains(t, string(content), "; rpcuser=")

	// The written file is a valid config file.
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	require.NoError(t, flags.NewIniParser(parser).ParseFile(dest))
	require.Equal(t, "alice", cfg.RPCUser)
	require.Equal(t, "s3cret", cfg.RPCPassword)
}

// TestCleanAndExpandPath checks the expansion of environment variables.
func TestCleanAndExpandPath(t *testing.T) {
	t.Setenv("CORECTL_TEST_DIR", "/data")

	require.Equal(t, "/data/node", cleanAndExpandPath("$CORECTL_TEST_DIR/node"))
	require.Equal(t, "/a/c", cleanAndExpandPath("/a/b/../c"))
}
