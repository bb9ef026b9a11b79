// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes renders a generation plan as a Go client package.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

//go:embed runtime.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "runtime.go.tmpl"))

// File names of the fixed artifacts.
const (
	runtimeFile = "graphql_runtime.go"
	typesFile   = "types.go"
)

// Emitter renders plans as Go source.
type Emitter struct{}

// New returns the Go emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name returns the emitter identifier.
func (e *Emitter) Name() string {
	return "go"
}

// Emit renders the runtime helpers, the constructs and the context.
func (e *Emitter) Emit(plan *translate.Plan, opts translate.EmitOptions) (*translate.Output, error) {
	if plan.Context == nil {
		return nil, fmt.Errorf("plan has no context")
	}
	out := &translate.Output{}

	runtime, err := renderRuntime(opts.Package, runtimeFile)
	if err != nil {
		return nil, err
	}
	out.Artifacts = append(out.Artifacts, translate.Artifact{Path: opts.Join(runtimeFile), Content: runtime})

	if opts.Layout == translate.LayoutSingleFile {
		f := newFile(opts.Package)
		for _, c := range plan.Constructs {
			if err := genConstruct(f, c); err != nil {
				return nil, err
			}
		}
		a, err := render(f, opts.Join(typesFile))
		if err != nil {
			return nil, err
		}
		out.Artifacts = append(out.Artifacts, a)
	} else {
		for _, c := range plan.Constructs {
			f := newFile(opts.Package)
			if err := genConstruct(f, c); err != nil {
				return nil, err
			}
			a, err := render(f, opts.Join(fileName(c.Ident().Name)))
			if err != nil {
				return nil, err
			}
			out.Artifacts = append(out.Artifacts, a)
		}
	}

	f := newFile(opts.Package)
	f.PackageComment(fmt.Sprintf("Package %s is a typed GraphQL client for %s.", opts.Package, plan.Context.Endpoint))
	genContext(f, plan.Context)
	a, err := render(f, opts.Join(fileName(plan.Context.Name.Name)))
	if err != nil {
		return nil, err
	}
	out.Artifacts = append(out.Artifacts, a)

	return out, nil
}

// newFile creates a new Jennifer file with the header comment.
func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by gqlscaffold. DO NOT EDIT.")
	f.ImportName(clientPkg, "graphql")
	return f
}

func render(f *jen.File, path string) (translate.Artifact, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return translate.Artifact{}, fmt.Errorf("render %s: %w", path, err)
	}
	return translate.Artifact{Path: path, Content: buf.Bytes()}, nil
}

func renderRuntime(pkg, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "runtime.go.tmpl", map[string]string{"Package": pkg}); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	formatted, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return formatted, nil
}
