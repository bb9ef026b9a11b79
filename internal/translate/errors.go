// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNameCollision indicates two wire names normalized to the same identifier in one scope.
var ErrNameCollision = errors.New("name collision")

// NameCollisionError reports two distinct wire identifiers mapping to the
// same target identifier within the same scope.
type NameCollisionError struct {
	Scope      string // "package", "file" or a construct name
	Identifier string // the colliding target identifier
	First      string // wire name that claimed the identifier first
	Second     string // wire name that collided with it
}

// Error implements the error interface.
func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("name collision in %s: %q and %q both map to %s", e.Scope, e.First, e.Second, e.Identifier)
}

// Is reports whether target is ErrNameCollision.
func (e *NameCollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

// WarningKind classifies non-fatal diagnostics.
type WarningKind string

// Warning kinds.
const (
	// UnsupportedKind: a type kind this generator does not model; the type is skipped.
	UnsupportedKind WarningKind = "unsupported-kind"
	// UnknownScalar: a custom scalar without a mapping; it is passed through as string.
	UnknownScalar WarningKind = "unknown-scalar"
	// DegradedUnion: a union whose possible types were not fetched.
	DegradedUnion WarningKind = "degraded-union"
	// CovariantField: an interface field narrowed by an implementor, left out of the interface method set.
	CovariantField WarningKind = "covariant-field"
)

// Warning is a diagnostic that does not stop generation.
type Warning struct {
	Kind    WarningKind
	Subject string // type or type.field the warning is about
	Message string
}

// String returns the warning in "kind: subject: message" form.
func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(string(w.Kind))
	if w.Subject != "" {
		b.WriteString(": ")
		b.WriteString(w.Subject)
	}
	if w.Message != "" {
		b.WriteString(": ")
		b.WriteString(w.Message)
	}
	return b.String()
}

// IsNameCollision reports whether err is or wraps a NameCollisionError.
func IsNameCollision(err error) bool {
	var nc *NameCollisionError
	return errors.As(err, &nc)
}
