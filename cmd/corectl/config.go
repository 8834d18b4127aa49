// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/corejson/btcjson"
	"github.com/btcsuite/corejson/internal/log"
	"github.com/btcsuite/corejson/internal/version"
	"github.com/btcsuite/corejson/rpcclient"
	"github.com/btcsuite/corejson/sampleconfig"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	defaultConfigFilename = "corectl.conf"
	defaultLogFilename    = "corectl.log"
	defaultLogLevel       = "warn"
	defaultRPCServer      = "localhost"
	defaultTimeout        = 5 * time.Minute

	// promptSecret is the value of a secret option which asks for it on
	// the terminal.
	promptSecret = "-"
)

var (
	bitcoindHomeDir   = btcutil.AppDataDir("bitcoin", false)
	corectlHomeDir    = btcutil.AppDataDir("corectl", false)
	defaultConfigFile = filepath.Join(corectlHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(corectlHomeDir, "logs")
)

// network identifies the chain the node runs on.  It selects the default
// port and the cookie file subdirectory.
type network struct {
	name         string
	port         string
	cookieSubdir string
}

var (
	mainNet = network{name: "mainnet", port: "8332"}
	testNet = network{name: "testnet", port: "18332", cookieSubdir: "testnet3"}
	sigNet  = network{name: "signet", port: "38332", cookieSubdir: "signet"}
	regTest = network{name: "regtest", port: "18443", cookieSubdir: "regtest"}
)

// listCommands categorizes and lists all of the usable commands.
func listCommands() {
	const (
		categoryChain uint8 = iota
		categoryWallet
		numCategories
	)

	// Get a list of registered commands and categorize them.
	cmdMethods := btcjson.RegisteredCmdMethods()
	categorized := make([][]string, numCategories)
	for _, method := range cmdMethods {
		flags, err := btcjson.MethodUsageFlags(method)
		if err != nil {
			// This should never happen since the method was just
			// returned from the package, but be safe.
			continue
		}

		// Categorize the command based on the usage flags.
		category := categoryChain
		if flags&btcjson.UFWalletOnly != 0 {
			category = categoryWallet
		}
		categorized[category] = append(categorized[category], method)
	}

	// Display the command according to their categories.
	categoryTitles := make([]string, numCategories)
	categoryTitles[categoryChain] = "Node Commands:"
	categoryTitles[categoryWallet] = "Wallet Commands (--wallet):"
	for category := uint8(0); category < numCategories; category++ {
		fmt.Println(categoryTitles[category])
		for _, method := range categorized[category] {
			fmt.Println("  " + method)
		}
		fmt.Println()
	}
}

// config defines the configuration options for corectl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion   bool          `short:"V" long:"version" description:"Display version information and exit"`
	ListCommands  bool          `short:"l" long:"listcommands" description:"List all of the supported commands and exit"`
	ConfigFile    string        `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir       string        `long:"datadir" description:"Data directory of the node, used to find its cookie file"`
	RPCUser       string        `short:"u" long:"rpcuser" description:"RPC username"`
	RPCPassword   string        `short:"P" long:"rpcpass" default-mask:"-" description:"RPC password, - to prompt for it"`
	RPCCookie     string        `long:"rpccookiefile" description:"Cookie file used for authentication when no RPC username is set"`
	RPCServer     string        `short:"s" long:"rpcserver" description:"RPC server to connect to"`
	RPCCert       string        `short:"c" long:"rpccert" description:"RPC server certificate chain for validation"`
	TLS           bool          `long:"tls" description:"Connect to the RPC server over TLS"`
	Wallet        string        `short:"w" long:"wallet" description:"Send wallet commands to the named wallet"`
	Proxy         string        `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser     string        `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass     string        `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	TestNet       bool          `long:"testnet" description:"Connect to testnet"`
	SigNet        bool          `long:"signet" description:"Connect to signet"`
	RegTest       bool          `long:"regtest" description:"Connect to the regression test network"`
	Timeout       time.Duration `long:"timeout" description:"Timeout of a single request"`
	PrintJSON     bool          `short:"j" long:"json" description:"Print the json request sent"`
	Dump          bool          `long:"dump" description:"Dump the parsed result instead of the raw json"`
	Terminal      bool          `short:"t" long:"terminal" description:"Start an interactive terminal"`
	LogDir        string        `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool          `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string        `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	net network
}

// normalizeAddress returns addr with the default port of the network
// appended if there is not already a port specified.
func normalizeAddress(addr string, params network) string {
	_, _, err := net.SplitHostPort(addr)
	if err != nil {
		return net.JoinHostPort(addr, params.port)
	}
	return addr
}

// cookiePath returns the cookie file written by a node using dataDir on the
// passed network.
func cookiePath(dataDir string, params network) string {
	return filepath.Join(dataDir, params.cookieSubdir, ".cookie")
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// selectNetwork returns the network picked by the flags.  Multiple networks
// can't be selected simultaneously.
func selectNetwork(cfg *config) (network, error) {
	numNets := 0
	params := mainNet
	if cfg.TestNet {
		numNets++
		params = testNet
	}
	if cfg.SigNet {
		numNets++
		params = sigNet
	}
	if cfg.RegTest {
		numNets++
		params = regTest
	}
	if numNets > 1 {
		return network{}, errors.New("the testnet, signet and regtest " +
			"params can't be used together -- choose one of the three")
	}
	return params, nil
}

// readSecret prompts for a secret on the terminal without echoing it.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("unable to read secret: %w", err)
	}
	return string(secret), nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		DataDir:    bitcoindHomeDir,
		RPCServer:  defaultRPCServer,
		Timeout:    defaultTimeout,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file, the version flag, or the list commands flag was specified.  Any
	// errors aside from the help message error can be ignored here since
	// they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			fmt.Fprintln(os.Stdout, "")
			fmt.Fprintln(os.Stdout, "Parameters are given as "+
				"key=value pairs.  Values are decoded as json "+
				"when possible\nand used as strings otherwise.  "+
				"The value - reads the next line from standard "+
				"input.")
			os.Exit(0)
		}
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show options", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version.String())
		os.Exit(0)
	}

	// Show the available commands and exit if the associated flag was
	// specified.
	if preCfg.ListCommands {
		listCommands()
		os.Exit(0)
	}

	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if !fileExists(configFile) {
		err := createDefaultConfigFile(configFile,
			filepath.Join(bitcoindHomeDir, "bitcoin.conf"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config "+
				"file: %v\n", err)
		}
	}

	// Load additional config from file.  A missing config file is not an
	// error.
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(configFile)
	if err != nil {
		var perr *os.PathError
		if !errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n",
				err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	if err := finishConfig(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Prompt for the secrets given as -.
	if cfg.RPCPassword == promptSecret {
		cfg.RPCPassword, err = readSecret("RPC password: ")
		if err != nil {
			return nil, nil, err
		}
	}
	if cfg.ProxyPass == promptSecret {
		cfg.ProxyPass, err = readSecret("Proxy password: ")
		if err != nil {
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}

// finishConfig validates the parsed options and fills in the values derived
// from them.
func finishConfig(cfg *config) error {
	params, err := selectNetwork(cfg)
	if err != nil {
		return fmt.Errorf("loadConfig: %w", err)
	}
	cfg.net = params

	if !log.ValidLogLevel(cfg.DebugLevel) {
		return fmt.Errorf("loadConfig: invalid debug level %q",
			cfg.DebugLevel)
	}

	if cfg.Wallet != "" && !btcjson.IsValidWalletName(cfg.Wallet) {
		return fmt.Errorf("loadConfig: invalid wallet name %q",
			cfg.Wallet)
	}

	// Handle environment variable expansion in paths.
	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	if cfg.RPCCert != "" {
		cfg.RPCCert = cleanAndExpandPath(cfg.RPCCert)
	}

	// Without credentials the cookie file written by the node is used.
	if cfg.RPCUser == "" && cfg.RPCPassword == "" {
		if cfg.RPCCookie == "" {
			cfg.RPCCookie = cookiePath(cfg.DataDir, cfg.net)
		}
		cfg.RPCCookie = cleanAndExpandPath(cfg.RPCCookie)
	}

	// Add default port to RPC server based on the network if needed.
	cfg.RPCServer = normalizeAddress(cfg.RPCServer, cfg.net)

	return nil
}

// connConfig returns the client configuration described by cfg.
func connConfig(cfg *config) (*rpcclient.ConnConfig, error) {
	connCfg := &rpcclient.ConnConfig{
		Host:       cfg.RPCServer,
		User:       cfg.RPCUser,
		Pass:       cfg.RPCPassword,
		CookiePath: cfg.RPCCookie,
		Wallet:     cfg.Wallet,
		DisableTLS: !cfg.TLS,
		Proxy:      cfg.Proxy,
		ProxyUser:  cfg.ProxyUser,
		ProxyPass:  cfg.ProxyPass,
		Timeout:    cfg.Timeout,
		ExtraHeaders: map[string]string{
			"User-Agent": version.UserAgent(),
		},
	}
	if cfg.RPCUser != "" || cfg.RPCPassword != "" {
		connCfg.CookiePath = ""
	}

	if cfg.TLS && cfg.RPCCert != "" {
		pem, err := os.ReadFile(cfg.RPCCert)
		if err != nil {
			return nil, err
		}
		connCfg.Certificates = pem
	}

	return connCfg, nil
}

// Regular expressions extracting the credentials of a node configuration
// file and locating them in the sample configuration.
var (
	rpcUserRegexp       = regexp.MustCompile(`(?m)^\s*rpcuser=([^\s]+)`)
	rpcPassRegexp       = regexp.MustCompile(`(?m)^\s*rpcpassword=([^\s]+)`)
	sampleRPCUserRegexp = regexp.MustCompile(`(?m)^;\s*rpcuser=[^\s]*$`)
	sampleRPCPassRegexp = regexp.MustCompile(`(?m)^;\s*rpcpass=[^\s]*$`)
)

// createDefaultConfigFile writes the sample config file at the given
// destination path.  The RPC user and password of the bitcoin.conf at
// nodeConfigPath are filled in when it has them.
func createDefaultConfigFile(destinationPath, nodeConfigPath string) error {
	contents := sampleconfig.FileContents

	if fileExists(nodeConfigPath) {
		content, err := os.ReadFile(nodeConfigPath)
		if err != nil {
			return err
		}

		userSubmatches := rpcUserRegexp.FindSubmatch(content)
		passSubmatches := rpcPassRegexp.FindSubmatch(content)
		if userSubmatches != nil && passSubmatches != nil {
			contents = sampleRPCUserRegexp.ReplaceAllLiteralString(
				contents, "rpcuser="+string(userSubmatches[1]))
			contents = sampleRPCPassRegexp.ReplaceAllLiteralString(
				contents, "rpcpass="+string(passSubmatches[1]))
		}
	}

	// Create the destination directory if it does not exists
	err := os.MkdirAll(filepath.Dir(destinationPath), 0700)
	if err != nil {
		return err
	}

	return os.WriteFile(destinationPath, []byte(contents), 0600)
}
