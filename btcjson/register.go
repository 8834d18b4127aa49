// Copyright (c) 2014-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"fmt"
	"sort"
	"sync"
)

// UsageFlag define flags that specify additional properties about the
// circumstances under which a command can be used.
type UsageFlag uint32

const (
	// UFWalletOnly indicates that the command can only be used with a
	// loaded wallet.  Such commands may be routed to /wallet/<name>.
	UFWalletOnly UsageFlag = 1 << iota

	// highestUsageFlagBit is the maximum usage flag bit and is used in the
	// stringer and tests to ensure all of the above constants have been
	// tested.
	highestUsageFlagBit
)

// Map of UsageFlag values back to their constant names for pretty printing.
var usageFlagStrings = map[UsageFlag]string{
	UFWalletOnly: "UFWalletOnly",
}

// String returns the UsageFlag in human-readable form.
func (fl UsageFlag) String() string {
	// No flags are set.
	if fl == 0 {
		return "0x0"
	}

	// Add individual bit flags.
	s := ""
	for flag := UFWalletOnly; flag < highestUsageFlagBit; flag <<= 1 {
		if fl&flag == flag {
			s += usageFlagStrings[flag] + "|"
			fl -= flag
		}
	}

	// Add remaining value as raw hex.
	s = s[:len(s)-1]
	if fl != 0 {
		s += "|0x" + fmt.Sprintf("%x", uint32(fl))
	}

	return s
}

// methodInfo keeps track of information about each registered method.
type methodInfo struct {
	factory func() Cmd
	flags   UsageFlag
}

var (
	// These fields are used to map the registered types to method names.
	registerLock sync.RWMutex
	methodToInfo = make(map[string]methodInfo)
)

// RegisterCmd registers a new command that will be automatically built from
// input maps by BuildCmd.  The factory must return a pointer to a fresh zero
// value of the command type, and the method it reports must match.
//
// The intended use is for packages that extend the catalogue with commands
// this package does not ship.
func RegisterCmd(method string, factory func() Cmd, flags UsageFlag) error {
	registerLock.Lock()
	defer registerLock.Unlock()

	if _, ok := methodToInfo[method]; ok {
		str := fmt.Sprintf("method %q is already registered", method)
		return makeError(ErrDuplicateMethod, str)
	}

	if factory == nil {
		str := fmt.Sprintf("method %q has a nil factory", method)
		return makeError(ErrInvalidType, str)
	}
	if got := factory().Method(); got != method {
		str := fmt.Sprintf("factory for %q builds a %q command", method,
			got)
		return makeError(ErrInvalidType, str)
	}

	methodToInfo[method] = methodInfo{factory: factory, flags: flags}
	return nil
}

// MustRegisterCmd performs the same function as RegisterCmd except it panics
// if there is an error.  This should only be called from package init
// functions.
func MustRegisterCmd(method string, factory func() Cmd, flags UsageFlag) {
	if err := RegisterCmd(method, factory, flags); err != nil {
		panic(fmt.Sprintf("failed to register type %q: %v\n", method,
			err))
	}
}

// RegisteredCmdMethods returns a sorted list of methods for all registered
// commands.
func RegisteredCmdMethods() []string {
	registerLock.RLock()
	defer registerLock.RUnlock()

	methods := make([]string, 0, len(methodToInfo))
	for k := range methodToInfo {
		methods = append(methods, k)
	}

	sort.Strings(methods)
	return methods
}

// MethodUsageFlags returns the usage flags for the passed command method.  The
// provided method must be associated with a registered type.  All commands
// provided by this package are registered by default.
func MethodUsageFlags(method string) (UsageFlag, error) {
	registerLock.RLock()
	info, ok := methodToInfo[method]
	registerLock.RUnlock()
	if !ok {
		str := fmt.Sprintf("%q is not registered", method)
		return 0, makeError(ErrUnregisteredMethod, str)
	}

	return info.flags, nil
}

// NewCmd returns a fresh zero value command for the given method.
func NewCmd(method string) (Cmd, error) {
	registerLock.RLock()
	info, ok := methodToInfo[method]
	registerLock.RUnlock()
	if !ok {
		str := fmt.Sprintf("%q is not registered", method)
		return nil, makeError(ErrUnregisteredMethod, str)
	}

	return info.factory(), nil
}
