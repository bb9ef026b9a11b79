// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"fmt"
	"strings"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// document is the template data of SCHEMA.md.
type document struct {
	Package    string
	Endpoint   string
	Context    string
	Operations []string
	Sections   []section
}

// section documents one construct.
type section struct {
	Title       string
	Anchor      string
	Kind        string
	Wire        string
	Description string
	Columns     []string
	Rows        [][]string
	Notes       []string
}

func newDocument(plan *translate.Plan, opts translate.EmitOptions) document {
	doc := document{
		Package:  opts.Package,
		Endpoint: plan.Context.Endpoint,
		Context:  translate.ContextFullName(opts.Namespace, plan.Context.Name.Name),
	}
	for _, op := range plan.Context.Operations {
		doc.Operations = append(doc.Operations, fmt.Sprintf("%s (`%s`)", op.Kind, op.Root.Wire))
	}
	for _, c := range plan.Constructs {
		doc.Sections = append(doc.Sections, newSection(c))
	}
	return doc
}

func newSection(c translate.Construct) section {
	id := c.Ident()
	s := section{
		Title:       id.Name,
		Anchor:      strings.ToLower(id.Name),
		Kind:        string(c.Kind()),
		Wire:        id.Wire,
		Description: c.Doc(),
	}

	switch c := c.(type) {
	case *translate.ObjectConstruct:
		s.Columns = []string{"Field", "Go", "Type", "Notes"}
		s.Rows = memberRows(c.Properties, c.Methods)
		if names := idents(c.Interfaces); names != "" {
			s.Notes = append(s.Notes, "Implements "+names+".")
		}
		if names := idents(c.Unions); names != "" {
			s.Notes = append(s.Notes, "Member of "+names+".")
		}
	case *translate.InterfaceConstruct:
		s.Columns = []string{"Field", "Go", "Type", "Notes"}
		s.Rows = memberRows(c.Properties, c.Methods)
		if names := idents(c.Implementors); names != "" {
			s.Notes = append(s.Notes, "Implemented by "+names+".")
		}
	case *translate.EnumConstruct:
		s.Columns = []string{"Value", "Go", "Notes"}
		for _, v := range c.Cases {
			s.Rows = append(s.Rows, []string{code(v.Wire), code(v.Name), notes(v.Description, v.Deprecated, v.Reason)})
		}
	case *translate.InputConstruct:
		s.Columns = []string{"Field", "Go", "Type", "Default"}
		for _, p := range c.Properties {
			def := ""
			if p.Default != nil {
				def = code(*p.Default)
			}
			s.Rows = append(s.Rows, []string{code(p.Wire), code(p.Name), code(p.Type.GraphQL), def})
		}
	case *translate.UnionConstruct:
		if c.Degraded {
			s.Notes = append(s.Notes, "Possible types were not part of the schema snapshot.")
		} else if names := idents(c.Members); names != "" {
			s.Notes = append(s.Notes, "One of "+names+".")
		}
	}
	return s
}

func memberRows(props []translate.Property, methods []translate.Method) [][]string {
	rows := make([][]string, 0, len(props)+len(methods))
	for _, p := range props {
		rows = append(rows, []string{code(p.Wire), code(p.Name), code(p.Type.GraphQL), notes(p.Description, p.Deprecated, p.Reason)})
	}
	for _, m := range methods {
		args := make([]string, len(m.Args))
		for i, a := range m.Args {
			args[i] = a.Wire + ": " + a.Type.GraphQL
		}
		n := "Arguments: " + code(strings.Join(args, ", "))
		if extra := notes(m.Description, m.Deprecated, m.Reason); extra != "" {
			n += "<br>" + extra
		}
		rows = append(rows, []string{code(m.Wire), code(m.Name + "(" + m.ArgsType.Name + ")"), code(m.Type.GraphQL), n})
	}
	return rows
}

func notes(description string, deprecated bool, reason string) string {
	n := cell(description)
	if deprecated {
		d := "**Deprecated**"
		if reason != "" {
			d += ": " + cell(reason)
		}
		if n != "" {
			n += "<br>"
		}
		n += d
	}
	return n
}

func idents(ids []translate.Ident) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = code(id.Name)
	}
	return strings.Join(names, ", ")
}

func code(s string) string {
	return "`" + strings.ReplaceAll(s, "|", "\\|") + "`"
}

// cell flattens text for a table cell.
func cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
