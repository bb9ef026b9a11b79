// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema provides the in-memory model of a GraphQL introspection result.
//
// Types reference each other by name only. The model never embeds one type in
// another, so self-referential and mutually recursive schemas need no special
// handling: every cross-type reference goes through an Index lookup.
package schema

import "strings"

// Kind is the __TypeKind of a type or type reference.
type Kind string

// Type kinds defined by the GraphQL specification.
const (
	KindScalar      Kind = "SCALAR"
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"
	KindEnum        Kind = "ENUM"
	KindInputObject Kind = "INPUT_OBJECT"
	KindList        Kind = "LIST"
	KindNonNull     Kind = "NON_NULL"
)

// IsWrapper reports whether k is a modifier (LIST or NON_NULL) rather than a named kind.
func (k Kind) IsWrapper() bool {
	return k == KindList || k == KindNonNull
}

// Known reports whether k is one of the named kinds this package models.
func (k Kind) Known() bool {
	switch k {
	case KindScalar, KindObject, KindInterface, KindUnion, KindEnum, KindInputObject:
		return true
	}
	return false
}

// Schema is the __schema object of an introspection response.
type Schema struct {
	QueryType        *NamedRef `json:"queryType"`
	MutationType     *NamedRef `json:"mutationType,omitempty"`
	SubscriptionType *NamedRef `json:"subscriptionType,omitempty"`
	Types            []*Type   `json:"types"`
}

// NamedRef is a reference to a type by name.
type NamedRef struct {
	Name string `json:"name"`
}

// Type is one named GraphQL type.
//
// Which of Fields, EnumValues and InputFields is populated depends on Kind.
// PossibleTypes is nil when the introspection query did not request it,
// which is distinct from an empty list.
type Type struct {
	Kind          Kind          `json:"kind"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Interfaces    []NamedRef    `json:"interfaces,omitempty"`
	PossibleTypes []NamedRef    `json:"possibleTypes,omitempty"`
	EnumValues    []EnumValue   `json:"enumValues,omitempty"`
	Fields        []*Field      `json:"fields,omitempty"`
	InputFields   []*InputValue `json:"inputFields,omitempty"`
}

// IsMeta reports whether t is one of the introspection types (__Schema, __Type, ...).
func (t *Type) IsMeta() bool {
	return IsMetaName(t.Name)
}

// IsMetaName reports whether name is reserved for introspection.
func IsMetaName(name string) bool {
	return strings.HasPrefix(name, "__")
}

// Field is an output field of an OBJECT or INTERFACE type.
type Field struct {
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Type              *TypeRef      `json:"type"`
	Args              []*InputValue `json:"args,omitempty"`
	IsDeprecated      bool          `json:"isDeprecated,omitempty"`
	DeprecationReason string        `json:"deprecationReason,omitempty"`
}

// InputValue is a field argument or an input object field.
type InputValue struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue,omitempty"`
}

// EnumValue is one value of an ENUM type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	IsDeprecated      bool   `json:"isDeprecated,omitempty"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
}

// TypeRef is a possibly wrapped reference to a named type.
// Wrappers (LIST, NON_NULL) carry OfType; the innermost node carries Name.
type TypeRef struct {
	Kind   Kind     `json:"kind"`
	Name   string   `json:"name,omitempty"`
	OfType *TypeRef `json:"ofType,omitempty"`
}

// String renders the reference in GraphQL notation, e.g. "[String!]!".
func (r *TypeRef) String() string {
	var prefix, suffix []string
	for n := r; n != nil; n = n.OfType {
		switch {
		case n.Name != "":
			return strings.Join(prefix, "") + n.Name + reverseJoin(suffix)
		case n.Kind == KindList:
			prefix = append(prefix, "[")
			suffix = append(suffix, "]")
		case n.Kind == KindNonNull:
			suffix = append(suffix, "!")
		}
	}
	return strings.Join(prefix, "") + "?" + reverseJoin(suffix)
}

func reverseJoin(parts []string) string {
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}

// Named returns a reference to the named type of the given kind.
func Named(kind Kind, name string) *TypeRef {
	return &TypeRef{Kind: kind, Name: name}
}

// NonNull wraps ref in a NON_NULL modifier.
func NonNull(ref *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindNonNull, OfType: ref}
}

// ListOf wraps ref in a LIST modifier.
func ListOf(ref *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindList, OfType: ref}
}
