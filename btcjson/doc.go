// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package btcjson provides typed requests and results for the Bitcoin Core
JSON-RPC API.

Overview

Every RPC method supported by this package has a command type implementing
Cmd and, where the reply is structured, a result type implementing Result.
Commands are validated before anything is put on the wire and results are
validated after they are decoded, so a caller never sees a half-valid value.

Building Commands

Commands can be created with their New<Foo>Cmd constructors or built from a
map of snake_case field names, as a CLI or a web handler would receive them:

	cmd, err := btcjson.BuildCmd("sendtoaddress", map[string]interface{}{
		"address": "bc1q...",
		"amount":  0.1,
	})

Build decodes the map, fills in the documented defaults and validates the
result.  All failing fields are reported at once in a ValidationErrors value,
each FieldError carrying the field name, a ValidationKind and the violated
constraint values.  Unknown keys and values of the wrong JSON type are
reported the same way.

Encoding Commands

EncodeCmd turns a command into a JSON-RPC 1.0 Request.  Parameters are laid
out in the positional order of the node.  Trailing parameters that are unset
are dropped while unset parameters followed by a set one are sent as null.
Commands of a single wallet of a multi-wallet node carry the path
/wallet/<name> in Request.Path.

Parsing Results

Parse decodes a raw result into a result type.  Keys the node spells
irregularly, such as "scriptPubKey" or "bip125-replaceable", are normalized to
snake_case first.  Results the node returns as bare arrays or bare strings
are handled by the result types that expect them; any other mismatch of the
top-level JSON kind is reported as an Error with the ErrShapeMismatch code.

Errors

There are three categories of errors returned by this package:

  - ValidationErrors for input or output values that violate a constraint
  - Error for misuse of the package and unexpected result shapes
  - RPCError for error objects returned by the node

The first category can be detected with errors.Is(err, ErrValidation).  The
second can be inspected with a type assertion and the ErrorCode field, and
the third carries the numeric RPCErrorCode of the node.
*/
package btcjson
