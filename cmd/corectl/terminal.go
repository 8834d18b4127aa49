// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/corejson/rpcclient"
	"golang.org/x/crypto/ssh/terminal"
)

// terminalSession holds the state of an interactive terminal.
type terminalSession struct {
	client *rpcclient.Client
	cfg    *config

	// protected hides the typed input, e.g. for passphrases.
	protected bool

	// clear resets the command history.
	clear bool
}

// printHelp shows the commands of the interactive terminal.
func printHelp(w io.Writer) {
	fmt.Fprintf(w, "[h]elp          print this message\n")
	fmt.Fprintf(w, "[l]ist          list all available commands\n")
	fmt.Fprintf(w, "[p]rotect       toggle protected mode (for passwords)\n")
	fmt.Fprintf(w, "[c]lear         clear command history\n")
	fmt.Fprintf(w, "[q]uit/ctrl+d   exit\n")
	fmt.Fprintf(w, "Enter commands with key=value arguments to execute "+
		"them.\n")
}

// execute runs a single line of input and reports whether the terminal
// should quit.
func (s *terminalSession) execute(ctx context.Context, line string) bool {
	switch line {
	case "h", "help":
		printHelp(os.Stdout)
	case "l", "list":
		listCommands()
	case "q", "quit":
		return true
	case "p", "protect":
		s.protected = !s.protected
	case "c", "clear":
		s.clear = true
	case "":
	default:
		args := strings.Fields(line)

		// Errors were already shown, the terminal carries on.
		_ = execute(ctx, s.client, s.cfg, args[0], args[1:],
			bufio.NewReader(os.Stdin), os.Stdout, os.Stderr)
	}
	return false
}

// startTerminal reads commands from the terminal until the user quits.
func startTerminal(ctx context.Context, client *rpcclient.Client,
	cfg *config) error {

	s := &terminalSession{client: client, cfg: cfg}

	fmt.Println("Starting terminal mode.")
	fmt.Println("Enter h for [h]elp.")
	fmt.Println("Enter l for [l]ist of commands.")
	fmt.Println("Enter q for [q]uit.")

	fd := int(os.Stdin.Fd())
	termState, err := terminal.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode on STDIN: %v\n",
			err)
		return err
	}
	n := terminal.NewTerminal(os.Stdin, "> ")
	for ctx.Err() == nil {
		var ln string
		if !s.protected {
			ln, err = n.ReadLine()
		} else {
			ln, err = n.ReadPassword(">*")
		}
		terminal.Restore(fd, termState)
		if err != nil {
			break
		}

		if s.execute(ctx, strings.TrimSpace(ln)) {
			break
		}

		termState, err = terminal.MakeRaw(fd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set raw mode on "+
				"STDIN: %v\n", err)
			return err
		}
		if s.clear {
			fmt.Println("Clearing history...")
			n = terminal.NewTerminal(os.Stdin, "> ")
			s.clear = false
		}
	}
	terminal.Restore(fd, termState)
	fmt.Println("exiting...")

	return nil
}
