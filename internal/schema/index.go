// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "fmt"

// Index is the name-keyed lookup table of a schema, built once per run.
type Index struct {
	schema *Schema
	byName map[string]*Type
	order  map[string]int
}

// NewIndex validates s and builds its lookup table.
// It fails with a MalformedSchemaError when a structural invariant is violated
// and with an UnresolvedTypeError when a root operation type is not declared.
func NewIndex(s *Schema) (*Index, error) {
	if s == nil {
		return nil, NewMalformedSchemaError("", "", "schema is nil")
	}

	idx := &Index{
		schema: s,
		byName: make(map[string]*Type, len(s.Types)),
		order:  make(map[string]int, len(s.Types)),
	}

	for i, t := range s.Types {
		if t == nil || t.Name == "" {
			return nil, NewMalformedSchemaError("", "", fmt.Sprintf("type at position %d has no name", i))
		}
		if _, dup := idx.byName[t.Name]; dup {
			return nil, NewMalformedSchemaError(t.Name, "", "declared more than once")
		}
		if err := validateType(t); err != nil {
			return nil, err
		}
		idx.byName[t.Name] = t
		idx.order[t.Name] = i
	}

	if s.QueryType == nil || s.QueryType.Name == "" {
		return nil, NewMalformedSchemaError("", "", "no query root type")
	}
	for _, root := range []*NamedRef{s.QueryType, s.MutationType, s.SubscriptionType} {
		if root == nil || root.Name == "" {
			continue
		}
		t, ok := idx.byName[root.Name]
		if !ok {
			return nil, &UnresolvedTypeError{Name: root.Name, Referrer: "__schema"}
		}
		if t.Kind != KindObject {
			return nil, NewMalformedSchemaError(t.Name, "", "root operation type must be an OBJECT")
		}
	}

	return idx, nil
}

func validateType(t *Type) error {
	switch t.Kind {
	case KindObject, KindInterface:
		if len(t.Fields) == 0 {
			return NewMalformedSchemaError(t.Name, "", fmt.Sprintf("%s type has no fields", t.Kind))
		}
		if len(t.EnumValues) > 0 || len(t.InputFields) > 0 {
			return NewMalformedSchemaError(t.Name, "", fmt.Sprintf("%s type carries enum values or input fields", t.Kind))
		}
		for _, f := range t.Fields {
			if f.Name == "" || f.Type == nil {
				return NewMalformedSchemaError(t.Name, f.Name, "field without name or type")
			}
			for _, a := range f.Args {
				if a.Name == "" || a.Type == nil {
					return NewMalformedSchemaError(t.Name, f.Name, "argument without name or type")
				}
			}
		}
	case KindEnum:
		if len(t.EnumValues) == 0 {
			return NewMalformedSchemaError(t.Name, "", "ENUM type has no values")
		}
		if len(t.Fields) > 0 || len(t.InputFields) > 0 {
			return NewMalformedSchemaError(t.Name, "", "ENUM type carries fields")
		}
	case KindInputObject:
		if len(t.InputFields) == 0 {
			return NewMalformedSchemaError(t.Name, "", "INPUT_OBJECT type has no input fields")
		}
		if len(t.Fields) > 0 || len(t.EnumValues) > 0 {
			return NewMalformedSchemaError(t.Name, "", "INPUT_OBJECT type carries output fields or enum values")
		}
		for _, f := range t.InputFields {
			if f.Name == "" || f.Type == nil {
				return NewMalformedSchemaError(t.Name, f.Name, "input field without name or type")
			}
		}
	case KindScalar, KindUnion:
		if len(t.Fields) > 0 || len(t.EnumValues) > 0 || len(t.InputFields) > 0 {
			return NewMalformedSchemaError(t.Name, "", fmt.Sprintf("%s type carries members", t.Kind))
		}
	}
	// Unknown kinds are left to the planner, which skips them with a warning.
	return nil
}

// Schema returns the indexed schema.
func (idx *Index) Schema() *Schema {
	return idx.schema
}

// Lookup returns the type with the given name.
func (idx *Index) Lookup(name string) (*Type, bool) {
	t, ok := idx.byName[name]
	return t, ok
}

// Position returns the declaration position of the named type, or -1.
func (idx *Index) Position(name string) int {
	if i, ok := idx.order[name]; ok {
		return i
	}
	return -1
}

// Implementors returns the OBJECT types declaring the named interface, in declaration order.
func (idx *Index) Implementors(iface string) []*Type {
	var out []*Type
	for _, t := range idx.schema.Types {
		if t.Kind != KindObject {
			continue
		}
		for _, ref := range t.Interfaces {
			if ref.Name == iface {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// UnionsContaining returns the UNION types listing the named object among their possible types.
func (idx *Index) UnionsContaining(object string) []*Type {
	var out []*Type
	for _, t := range idx.schema.Types {
		if t.Kind != KindUnion {
			continue
		}
		for _, ref := range t.PossibleTypes {
			if ref.Name == object {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
