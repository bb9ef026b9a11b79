// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/gqlscaffold/internal/schema"

// Plan is the complete input passed to an emitter.
type Plan struct {
	Constructs []Construct  // in schema declaration order
	Context    *ContextPlan // the client entry point
}

// Ident pairs a target identifier with the wire name it came from.
type Ident struct {
	Name string // Go identifier, e.g. "UserName"
	Wire string // GraphQL name, e.g. "user_name"
}

// Construct is one planned schema type. The concrete type is one of
// *ObjectConstruct, *InterfaceConstruct, *EnumConstruct, *InputConstruct
// or *UnionConstruct.
type Construct interface {
	// Ident returns the construct's identifier and GraphQL type name.
	Ident() Ident
	// Kind returns the GraphQL kind the construct was planned from.
	Kind() schema.Kind
	// Doc returns the GraphQL description, if any.
	Doc() string

	construct()
}

// TypeUse is a resolved reference to a type from a member.
type TypeUse struct {
	CanonicalType
	Go      GoRef  // named Go type of the base: mapped scalar or generated type
	GraphQL string // reference in GraphQL notation, e.g. "[String!]!"
	Carrier string // decoding type of an interface or union base, e.g. "CharacterValue"
}

// Property is a field, argument or input field.
type Property struct {
	Ident
	Description string
	Deprecated  bool
	Reason      string  // deprecation reason
	Type        TypeUse
	Default     *string // GraphQL literal of the default value, arguments and input fields only
}

// Method is a field with arguments.
type Method struct {
	Ident
	Description string
	Deprecated  bool
	Reason      string
	Type        TypeUse
	Args        []Property
	ArgsType    Ident // the generated arguments struct
}

// Getter is an accessor an object provides for one of its interfaces.
type Getter struct {
	Name     string   // e.g. "GetName"
	Property Property // the object's own property
}

// ObjectConstruct plans an OBJECT type.
type ObjectConstruct struct {
	Name        Ident
	Description string
	Properties  []Property
	Methods     []Method
	Interfaces  []Ident // implemented interfaces
	Unions      []Ident // unions listing this object
	Getters     []Getter
}

// InterfaceConstruct plans an INTERFACE type.
type InterfaceConstruct struct {
	Name         Ident
	Description  string
	Properties   []Property
	Methods      []Method
	Shared       []Getter // properties exposed in the interface method set
	Implementors []Ident
	Carrier      Ident // struct selecting every implementor by inline fragment
}

// EnumCase is one value of an enum.
type EnumCase struct {
	Ident
	Description string
	Deprecated  bool
	Reason      string
}

// EnumConstruct plans an ENUM type.
type EnumConstruct struct {
	Name        Ident
	Description string
	Cases       []EnumCase
}

// InputConstruct plans an INPUT_OBJECT type.
type InputConstruct struct {
	Name        Ident
	Description string
	Properties  []Property
}

// UnionConstruct plans a UNION type.
type UnionConstruct struct {
	Name        Ident
	Description string
	Members     []Ident
	Degraded    bool  // possibleTypes was not fetched
	Carrier     Ident // struct selecting every member by inline fragment
}

func (c *ObjectConstruct) Ident() Ident    { return c.Name }
func (c *InterfaceConstruct) Ident() Ident { return c.Name }
func (c *EnumConstruct) Ident() Ident      { return c.Name }
func (c *InputConstruct) Ident() Ident     { return c.Name }
func (c *UnionConstruct) Ident() Ident     { return c.Name }

func (c *ObjectConstruct) Kind() schema.Kind    { return schema.KindObject }
func (c *InterfaceConstruct) Kind() schema.Kind { return schema.KindInterface }
func (c *EnumConstruct) Kind() schema.Kind      { return schema.KindEnum }
func (c *InputConstruct) Kind() schema.Kind     { return schema.KindInputObject }
func (c *UnionConstruct) Kind() schema.Kind     { return schema.KindUnion }

func (c *ObjectConstruct) Doc() string    { return c.Description }
func (c *InterfaceConstruct) Doc() string { return c.Description }
func (c *EnumConstruct) Doc() string      { return c.Description }
func (c *InputConstruct) Doc() string     { return c.Description }
func (c *UnionConstruct) Doc() string     { return c.Description }

func (*ObjectConstruct) construct()    {}
func (*InterfaceConstruct) construct() {}
func (*EnumConstruct) construct()      {}
func (*InputConstruct) construct()     {}
func (*UnionConstruct) construct()     {}

// OperationKind is a root operation type.
type OperationKind string

// Root operation kinds.
const (
	OperationQuery        OperationKind = "query"
	OperationMutation     OperationKind = "mutation"
	OperationSubscription OperationKind = "subscription"
)

// Operation is one entry-point family of the context.
type Operation struct {
	Kind OperationKind
	Root Ident // the root object type
}

// ContextPlan describes the client entry point.
type ContextPlan struct {
	Name          Ident  // e.g. {QueryContext, Query}
	Constructor   string // e.g. NewQueryContext
	EndpointConst string // e.g. DefaultQueryContextEndpoint
	Endpoint      string // endpoint captured at generation time
	Operations    []Operation
}

// Has reports whether the context exposes the given operation family.
func (c *ContextPlan) Has(kind OperationKind) bool {
	for _, op := range c.Operations {
		if op.Kind == kind {
			return true
		}
	}
	return false
}

// RuntimeNames are package-level identifiers owned by the generated runtime helpers.
var RuntimeNames = []string{"Optional", "Some", "Null", "Selection", "Variable", "Var"}
