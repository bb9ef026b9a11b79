// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dacolabs/gqlscaffold/internal/schema"
)

// CanonicalType is a type reference with its wrappers collapsed.
//
// Nullable describes the outermost level. ElementNullable describes the
// innermost element of a list and equals Nullable when ListDepth is zero.
// Nullability of intermediate list levels is not kept.
type CanonicalType struct {
	BaseName        string
	BaseKind        schema.Kind
	ListDepth       int
	Nullable        bool
	ElementNullable bool
}

// GoRef is a named Go type: Path is the import path, empty for builtins and
// types of the generated package.
type GoRef struct {
	Path string
	Name string
}

// String renders the reference as it would be written in source.
func (r GoRef) String() string {
	if r.Path == "" {
		return r.Name
	}
	return r.Path[strings.LastIndex(r.Path, "/")+1:] + "." + r.Name
}

// ParseGoRef parses "string", "time.Time" or "github.com/shopspring/decimal.Decimal".
func ParseGoRef(s string) (GoRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GoRef{}, errors.New("empty Go type")
	}
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return GoRef{Name: s}, nil
	}
	if i == 0 || i == len(s)-1 || strings.HasSuffix(s[:i], "/") {
		return GoRef{}, fmt.Errorf("invalid Go type %q", s)
	}
	return GoRef{Path: s[:i], Name: s[i+1:]}, nil
}

// DefaultScalars maps built-in and common custom scalars to Go types.
func DefaultScalars() map[string]GoRef {
	return map[string]GoRef{
		"String":   {Name: "string"},
		"Int":      {Name: "int"},
		"Float":    {Name: "float64"},
		"Boolean":  {Name: "bool"},
		"ID":       {Name: "string"},
		"DateTime": {Path: "time", Name: "Time"},
		"Time":     {Path: "time", Name: "Time"},
		"JSON":     {Path: "encoding/json", Name: "RawMessage"},
	}
}

// fallbackScalar is used for scalars without a mapping.
var fallbackScalar = GoRef{Name: "string"}

// Resolver collapses type references and maps scalars to Go types.
// It is safe for concurrent use once constructed.
type Resolver struct {
	index    *schema.Index
	scalars  map[string]GoRef
	warnings []Warning
}

// NewResolver creates a Resolver. Overrides replace or extend DefaultScalars.
// Scalars declared by the schema without a mapping are reported once each
// through Warnings.
func NewResolver(idx *schema.Index, overrides map[string]GoRef) *Resolver {
	scalars := DefaultScalars()
	for name, ref := range overrides {
		scalars[name] = ref
	}

	r := &Resolver{index: idx, scalars: scalars}
	for _, t := range idx.Schema().Types {
		if t.Kind != schema.KindScalar {
			continue
		}
		if _, ok := scalars[t.Name]; !ok {
			r.warnings = append(r.warnings, Warning{
				Kind:    UnknownScalar,
				Subject: t.Name,
				Message: "no Go mapping, passed through as string",
			})
		}
	}
	return r
}

// Warnings returns the diagnostics collected while building the resolver.
func (r *Resolver) Warnings() []Warning {
	return r.warnings
}

// Resolve walks a wrapped type reference down to its named leaf.
func (r *Resolver) Resolve(ref *schema.TypeRef) (CanonicalType, error) {
	ct := CanonicalType{Nullable: true}
	nonNull := false
	for n := ref; ; n = n.OfType {
		if n == nil {
			return CanonicalType{}, schema.NewMalformedSchemaError("", "", "type reference ends without a named type")
		}
		if n.Name != "" {
			t, ok := r.index.Lookup(n.Name)
			if !ok {
				return CanonicalType{}, &schema.UnresolvedTypeError{Name: n.Name}
			}
			if ct.ListDepth == 0 {
				ct.Nullable = !nonNull
			}
			ct.ElementNullable = !nonNull
			ct.BaseName = t.Name
			ct.BaseKind = t.Kind
			return ct, nil
		}
		switch n.Kind {
		case schema.KindNonNull:
			nonNull = true
		case schema.KindList:
			if ct.ListDepth == 0 {
				ct.Nullable = !nonNull
			}
			ct.ListDepth++
			nonNull = false
		default:
			return CanonicalType{}, schema.NewMalformedSchemaError("", "", fmt.Sprintf("%s type reference without a name", n.Kind))
		}
	}
}

// Scalar returns the Go type of a scalar, falling back to string.
func (r *Resolver) Scalar(name string) GoRef {
	if ref, ok := r.scalars[name]; ok {
		return ref
	}
	return fallbackScalar
}
