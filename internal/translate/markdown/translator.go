// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders a generation plan as a Markdown reference.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// FileName is the artifact written next to the generated client.
const FileName = "SCHEMA.md"

//go:embed schema.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"join": strings.Join,
}

var tmpl = template.Must(template.New("schema.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "schema.md.tmpl"))

// Emitter renders plans as Markdown documentation.
type Emitter struct{}

// New returns the Markdown emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name returns the emitter identifier.
func (e *Emitter) Name() string {
	return "markdown"
}

// Emit renders one SCHEMA.md covering every construct of the plan.
func (e *Emitter) Emit(plan *translate.Plan, opts translate.EmitOptions) (*translate.Output, error) {
	if plan.Context == nil {
		return nil, fmt.Errorf("plan has no context")
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "schema.md.tmpl", newDocument(plan, opts)); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return &translate.Output{Artifacts: []translate.Artifact{
		{Path: opts.Join(FileName), Content: buf.Bytes()},
	}}, nil
}
