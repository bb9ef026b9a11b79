// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"strings"
)

var (
	// ErrMalformedSchema indicates a violated structural invariant of the schema.
	ErrMalformedSchema = errors.New("malformed schema")

	// ErrUnresolvedType indicates a reference to a type missing from the schema's type list.
	ErrUnresolvedType = errors.New("unresolved type")
)

// MalformedSchemaError reports a structural invariant violation.
type MalformedSchemaError struct {
	Type    string // type name, if applicable
	Field   string // field name, if applicable
	Message string
}

// Error implements the error interface.
func (e *MalformedSchemaError) Error() string {
	var b strings.Builder
	b.WriteString("malformed schema")
	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is ErrMalformedSchema.
func (e *MalformedSchemaError) Is(target error) bool {
	return target == ErrMalformedSchema
}

// NewMalformedSchemaError creates a new MalformedSchemaError.
func NewMalformedSchemaError(typeName, fieldName, message string) *MalformedSchemaError {
	return &MalformedSchemaError{Type: typeName, Field: fieldName, Message: message}
}

// UnresolvedTypeError reports a type reference whose leaf name is not declared.
type UnresolvedTypeError struct {
	Name     string // the missing type name
	Referrer string // where the reference was found, e.g. "User.friends"
}

// Error implements the error interface.
func (e *UnresolvedTypeError) Error() string {
	if e.Referrer == "" {
		return "unresolved type " + e.Name
	}
	return "unresolved type " + e.Name + " referenced by " + e.Referrer
}

// Is reports whether target is ErrUnresolvedType.
func (e *UnresolvedTypeError) Is(target error) bool {
	return target == ErrUnresolvedType
}
