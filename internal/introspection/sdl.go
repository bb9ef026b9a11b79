// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package introspection

import (
	"fmt"
	"sort"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/dacolabs/gqlscaffold/internal/schema"
)

// defaultDeprecationReason is the default of @deprecated(reason:).
const defaultDeprecationReason = "No longer supported"

// FromSDL parses SDL sources into the introspection model. Built-in scalars
// come first, sorted by name, followed by the declared types in source order.
func FromSDL(sources ...*ast.Source) (*schema.Schema, error) {
	doc, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := &converter{doc: doc, sources: make(map[*ast.Source]int, len(sources))}
	for i, src := range sources {
		c.sources[src] = i
	}
	return c.schema(), nil
}

type converter struct {
	doc     *ast.Schema
	sources map[*ast.Source]int
}

func (c *converter) schema() *schema.Schema {
	defs := make([]*ast.Definition, 0, len(c.doc.Types))
	for _, d := range c.doc.Types {
		if !schema.IsMetaName(d.Name) {
			defs = append(defs, d)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return c.before(defs[i], defs[j]) })

	s := &schema.Schema{
		QueryType:        root(c.doc.Query),
		MutationType:     root(c.doc.Mutation),
		SubscriptionType: root(c.doc.Subscription),
		Types:            make([]*schema.Type, 0, len(defs)),
	}
	for _, d := range defs {
		s.Types = append(s.Types, c.typ(d))
	}
	return s
}

// before orders built-ins by name ahead of declared types, which keep their
// position in the sources.
func (c *converter) before(a, b *ast.Definition) bool {
	if a.BuiltIn != b.BuiltIn {
		return a.BuiltIn
	}
	if a.BuiltIn {
		return a.Name < b.Name
	}
	sa, pa := c.position(a)
	sb, pb := c.position(b)
	if sa != sb {
		return sa < sb
	}
	if pa != pb {
		return pa < pb
	}
	return a.Name < b.Name
}

func (c *converter) position(d *ast.Definition) (int, int) {
	if d.Position == nil {
		return len(c.sources), 0
	}
	src, ok := c.sources[d.Position.Src]
	if !ok {
		src = len(c.sources)
	}
	return src, d.Position.Start
}

func (c *converter) typ(d *ast.Definition) *schema.Type {
	t := &schema.Type{
		Kind:        schema.Kind(d.Kind),
		Name:        d.Name,
		Description: d.Description,
	}
	switch d.Kind {
	case ast.Object:
		t.Interfaces = refs(d.Interfaces)
		t.Fields = c.fields(d.Fields)
	case ast.Interface:
		t.Fields = c.fields(d.Fields)
		possible := c.doc.GetPossibleTypes(d)
		t.PossibleTypes = make([]schema.NamedRef, len(possible))
		for i, p := range possible {
			t.PossibleTypes[i] = schema.NamedRef{Name: p.Name}
		}
	case ast.Union:
		t.PossibleTypes = refs(d.Types)
	case ast.Enum:
		for _, v := range d.EnumValues {
			deprecated, reason := deprecation(v.Directives)
			t.EnumValues = append(t.EnumValues, schema.EnumValue{
				Name:              v.Name,
				Description:       v.Description,
				IsDeprecated:      deprecated,
				DeprecationReason: reason,
			})
		}
	case ast.InputObject:
		for _, f := range d.Fields {
			t.InputFields = append(t.InputFields, c.inputValue(f.Name, f.Description, f.Type, f.DefaultValue))
		}
	}
	return t
}

func (c *converter) fields(list ast.FieldList) []*schema.Field {
	fields := make([]*schema.Field, 0, len(list))
	for _, f := range list {
		if schema.IsMetaName(f.Name) {
			continue
		}
		deprecated, reason := deprecation(f.Directives)
		field := &schema.Field{
			Name:              f.Name,
			Description:       f.Description,
			Type:              c.typeRef(f.Type),
			IsDeprecated:      deprecated,
			DeprecationReason: reason,
		}
		for _, a := range f.Arguments {
			field.Args = append(field.Args, c.inputValue(a.Name, a.Description, a.Type, a.DefaultValue))
		}
		fields = append(fields, field)
	}
	return fields
}

func (c *converter) inputValue(name, description string, t *ast.Type, def *ast.Value) *schema.InputValue {
	v := &schema.InputValue{
		Name:        name,
		Description: description,
		Type:        c.typeRef(t),
	}
	if def != nil {
		s := def.String()
		v.DefaultValue = &s
	}
	return v
}

func (c *converter) typeRef(t *ast.Type) *schema.TypeRef {
	var ref *schema.TypeRef
	if t.Elem != nil {
		ref = schema.ListOf(c.typeRef(t.Elem))
	} else {
		kind := schema.KindScalar
		if d, ok := c.doc.Types[t.NamedType]; ok {
			kind = schema.Kind(d.Kind)
		}
		ref = schema.Named(kind, t.NamedType)
	}
	if t.NonNull {
		ref = schema.NonNull(ref)
	}
	return ref
}

func deprecation(directives ast.DirectiveList) (bool, string) {
	d := directives.ForName("deprecated")
	if d == nil {
		return false, ""
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return true, arg.Value.Raw
	}
	return true, defaultDeprecationReason
}

func refs(names []string) []schema.NamedRef {
	out := make([]schema.NamedRef, len(names))
	for i, n := range names {
		out[i] = schema.NamedRef{Name: n}
	}
	return out
}

func root(d *ast.Definition) *schema.NamedRef {
	if d == nil {
		return nil
	}
	return &schema.NamedRef{Name: d.Name}
}
