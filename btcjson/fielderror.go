// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationKind describes which class of constraint a field failed.  It is
// carried in FieldError so callers can build their own (possibly localized)
// messages instead of relying on the English Message text.
type ValidationKind string

const (
	// KindRequired is used when a mandatory field is missing or blank.
	KindRequired ValidationKind = "required"

	// KindFormat is used when a string does not match the expected
	// pattern, such as an address, a hex string or a wallet name.
	KindFormat ValidationKind = "format"

	// KindLength is used when a string or list is too short or too long.
	KindLength ValidationKind = "length"

	// KindNumber is used when a number falls outside its bounds.
	KindNumber ValidationKind = "number"

	// KindInclusion is used when a value is not part of an allowed set.
	KindInclusion ValidationKind = "inclusion"

	// KindCast is used when an input value has the wrong JSON type for the
	// field, e.g. a string where an integer is expected.
	KindCast ValidationKind = "cast"

	// KindUnknown is used for input keys that do not name a parameter.
	KindUnknown ValidationKind = "unknown"

	// KindCrossField is used when a combination of fields is rejected even
	// though every field is valid on its own.
	KindCrossField ValidationKind = "cross_field"
)

// ErrValidation is the sentinel matched by errors.Is for every
// ValidationErrors value.
var ErrValidation = errors.New("validation failed")

// FieldError describes a single field that failed validation.
type FieldError struct {
	// Field is the canonical (snake_case) name of the field.  Nested
	// fields are joined with a dot and list elements carry their index,
	// e.g. "requests[1].label".
	Field string

	// Kind is the class of constraint that failed.
	Kind ValidationKind

	// Message is a short English description, e.g. "is invalid".
	Message string

	// Meta carries the constraint values that were violated, e.g. the
	// allowed set of an inclusion check or the bounds of a number check.
	Meta map[string]interface{}
}

// String returns the field error formatted as "field: message".
func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// ValidationErrors is the aggregate of all field errors produced by a single
// build or parse call.  A nil or empty ValidationErrors never escapes this
// package as an error.
type ValidationErrors []FieldError

// Error returns every field error joined by a semicolon.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}

// Is reports whether the target is ErrValidation.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Fields returns the sorted, de-duplicated names of all failing fields.
func (v ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(v))
	fields := make([]string, 0, len(v))
	for _, e := range v {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		fields = append(fields, e.Field)
	}
	sort.Strings(fields)
	return fields
}

// ForField returns the errors reported for the named field.
func (v ValidationErrors) ForField(field string) []FieldError {
	var errs []FieldError
	for _, e := range v {
		if e.Field == field {
			errs = append(errs, e)
		}
	}
	return errs
}

// Has reports whether the named field failed with the given kind.
func (v ValidationErrors) Has(field string, kind ValidationKind) bool {
	for _, e := range v {
		if e.Field == field && e.Kind == kind {
			return true
		}
	}
	return false
}

// AsValidationErrors extracts the ValidationErrors from err, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// validator accumulates field errors during a single validation pass.
type validator struct {
	errs ValidationErrors
}

// add records a failure for the given field.
func (v *validator) add(field string, kind ValidationKind, msg string,
	meta map[string]interface{}) {

	v.errs = append(v.errs, FieldError{
		Field:   field,
		Kind:    kind,
		Message: msg,
		Meta:    meta,
	})
}

// addf records a cross field failure using a formatted message.
func (v *validator) addf(field string, format string, args ...interface{}) {
	v.add(field, KindCrossField, fmt.Sprintf(format, args...),
		map[string]interface{}{"validation": string(KindCrossField)})
}

// nest merges the errors of an embedded entity below prefix.  Errors that
// are not ValidationErrors are recorded against the prefix itself.
func (v *validator) nest(prefix string, err error) {
	if err == nil {
		return
	}
	verrs, ok := AsValidationErrors(err)
	if !ok {
		v.add(prefix, KindFormat, err.Error(), nil)
		return
	}
	for _, e := range verrs {
		e.Field = joinField(prefix, e.Field)
		v.errs = append(v.errs, e)
	}
}

// err returns the accumulated errors or nil when the pass succeeded.
func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// joinField joins a parent and a child field name.  Index suffixes are
// appended without a separating dot.
func joinField(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	case strings.HasPrefix(field, "["):
		return prefix + field
	default:
		return prefix + "." + field
	}
}

// indexField returns the name of the i-th element of a list field.
func indexField(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
