// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/btcsuite/corejson/internal/log"
	"github.com/btcsuite/corejson/rpcclient"
	"github.com/davecgh/go-spew/spew"
)

const (
	showHelpMessage = "Specify -h to show available options"
	listCmdMessage  = "Specify -l to list available commands"

	// stdinValue is the value of a parameter which is read from the next
	// line of standard input.
	stdinValue = "-"
)

var (
	// errNoCommand is returned when no method is given.
	errNoCommand = errors.New("no command specified")

	// errReported is returned once the failure was already shown to the
	// user.
	errReported = errors.New("error reported")
)

// usage displays the general usage when the help flag is not displayed and
// and an invalid command was specified.
func usage(errorMessage string) {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	fmt.Fprintln(os.Stderr, errorMessage)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] <command> [key=value ...]\n\n",
		appName)
	fmt.Fprintln(os.Stderr, showHelpMessage)
	fmt.Fprintln(os.Stderr, listCmdMessage)
}

// decodeValue returns the json value held by s, or s itself when it is not
// valid json.
func decodeValue(s string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// parseArgs turns key=value arguments into the input fields of a command.
//
// Since some parameters, such as raw transactions, can involve data which is
// too large for the Operating System to allow as a normal command line
// parameter, the value - reads the value from the next line of stdin.
func parseArgs(args []string, stdin *bufio.Reader) (map[string]interface{},
	error) {

	fields := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not of the form "+
				"key=value", arg)
		}
		if _, ok := fields[key]; ok {
			return nil, fmt.Errorf("parameter %q given twice", key)
		}

		if value == stdinValue {
			line, err := stdin.ReadString('\n')
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read data "+
					"from stdin: %w", err)
			}
			if err == io.EOF && len(line) == 0 {
				return nil, errors.New("not enough lines " +
					"provided on stdin")
			}
			value = strings.TrimRight(line, "\r\n")
		}

		fields[key] = decodeValue(value)
	}

	return fields, nil
}

// printValidationErrors shows every failing field of the command on its own
// line.
func printValidationErrors(w io.Writer, method string,
	verrs btcjson.ValidationErrors) {

	fmt.Fprintf(w, "Invalid parameters for %s:\n", method)
	for _, field := range verrs.Fields() {
		for _, ferr := range verrs.ForField(field) {
			name := ferr.Field
			if name == "" {
				name = "(command)"
			}
			fmt.Fprintf(w, "  %s: %s\n", name, ferr.Message)
		}
	}
}

// buildCmd creates the command for method from the key=value arguments.
// Failures are shown on w.
func buildCmd(w io.Writer, method string, args []string,
	stdin *bufio.Reader) (btcjson.Cmd, error) {

	if _, err := btcjson.MethodUsageFlags(method); err != nil {
		fmt.Fprintf(w, "Unrecognized command '%s'\n", method)
		fmt.Fprintln(w, listCmdMessage)
		return nil, errReported
	}

	fields, err := parseArgs(args, stdin)
	if err != nil {
		fmt.Fprintf(w, "%s command: %v\n", method, err)
		return nil, errReported
	}

	cmd, err := btcjson.BuildCmd(method, fields)
	if err != nil {
		if verrs, ok := btcjson.AsValidationErrors(err); ok {
			printValidationErrors(w, method, verrs)
			return nil, errReported
		}

		// Show the error along with its error code when it's a
		// btcjson.Error.
		var jerr btcjson.Error
		if errors.As(err, &jerr) {
			fmt.Fprintf(w, "%s command: %v (code: %s)\n", method,
				err, jerr.ErrorCode)
			return nil, errReported
		}

		fmt.Fprintf(w, "%s command: %v\n", method, err)
		return nil, errReported
	}

	return cmd, nil
}

// printResult writes the raw result of a command to w.  Objects and arrays
// are indented, strings are printed without quotes and null is omitted.
func printResult(w io.Writer, result json.RawMessage, dump bool) error {
	if dump {
		var v interface{}
		if err := json.Unmarshal(result, &v); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
		spew.Fdump(w, v)
		return nil
	}

	// Choose how to display the result based on its type.
	strResult := string(bytes.TrimSpace(result))
	switch {
	case strings.HasPrefix(strResult, "{") ||
		strings.HasPrefix(strResult, "["):

		var dst bytes.Buffer
		if err := json.Indent(&dst, result, "", "  "); err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(w, dst.String())

	case strings.HasPrefix(strResult, `"`):
		var str string
		if err := json.Unmarshal(result, &str); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
		fmt.Fprintln(w, str)

	case strResult != "null" && strResult != "":
		fmt.Fprintln(w, strResult)
	}

	return nil
}

// execute builds the command for method, sends it and prints its result to
// out.  Errors are shown on errOut.
func execute(ctx context.Context, client *rpcclient.Client, cfg *config,
	method string, args []string, stdin *bufio.Reader, out,
	errOut io.Writer) error {

	cmd, err := buildCmd(errOut, method, args, stdin)
	if err != nil {
		return err
	}

	if cfg.PrintJSON {
		marshalled, err := btcjson.MarshalCmd(client.NextID(), cmd)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return errReported
		}
		fmt.Fprintln(out, string(marshalled))
	}

	log.CtlLog.Debugf("Sending %s to %s", method, cfg.RPCServer)
	result, err := rpcclient.ReceiveFuture(client.SendCmd(ctx, cmd))
	if err != nil {
		var rerr *btcjson.RPCError
		if errors.As(err, &rerr) {
			fmt.Fprintf(errOut, "%s: error code %d: %s\n", method,
				rerr.Code, rerr.Message)
			return errReported
		}
		fmt.Fprintf(errOut, "%s: %v\n", method, err)
		return errReported
	}

	if err := printResult(out, result, cfg.Dump); err != nil {
		fmt.Fprintln(errOut, err)
		return errReported
	}
	return nil
}

// corectlMain is the real main function for corectl.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func corectlMain() error {
	cfg, args, err := loadConfig()
	if err != nil {
		return err
	}

	// Log to the rotated file unless disabled.
	if !cfg.NoFileLogging {
		rotator, err := log.InitLogRotator(filepath.Join(cfg.LogDir,
			defaultLogFilename))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer rotator.Close()
	}
	log.SetLogLevels(cfg.DebugLevel)

	if !cfg.Terminal && len(args) < 1 {
		usage("No command specified")
		return errNoCommand
	}

	connCfg, err := connConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	client, err := rpcclient.New(connCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer client.Shutdown()
	log.CtlLog.Debugf("Connecting to %s on %s", cfg.RPCServer, cfg.net.name)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if cfg.Terminal {
		return startTerminal(ctx, client, cfg)
	}

	return execute(ctx, client, cfg, args[0], args[1:],
		bufio.NewReader(os.Stdin), os.Stdout, os.Stderr)
}

func main() {
	if err := corectlMain(); err != nil {
		os.Exit(1)
	}
}
