// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// InitValues are the answers of the init form.
type InitValues struct {
	FromFile   bool
	Endpoint   string
	TokenEnv   string
	SchemaFile string
	Namespace  string
	Context    string
	Output     string
	Layout     string
	Docs       bool
}

// RunInitForm runs the interactive form for the init command.
// It fills v with user input.
func RunInitForm(v *InitValues) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Schema source").
				Options(
					huh.NewOption("Introspect a live endpoint", false),
					huh.NewOption("Read a schema file", true),
				).
				Value(&v.FromFile),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("GraphQL endpoint").
				Placeholder("https://api.example.com/graphql").
				Validate(endpointValidator).
				Value(&v.Endpoint),
			huh.NewInput().
				Title("Token environment variable").
				Description("Leave empty when the endpoint needs no authentication").
				Value(&v.TokenEnv),
		).WithHideFunc(func() bool { return v.FromFile }),
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file").
				Placeholder("schema.graphql").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("schema file is required")
					}
					return nil
				}).
				Value(&v.SchemaFile),
		).WithHideFunc(func() bool { return !v.FromFile }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Validate(requiredValidator("output directory")).
				Value(&v.Output),
			huh.NewInput().
				Title("Package namespace").
				Value(&v.Namespace),
			huh.NewInput().
				Title("Context name").
				Validate(identifierValidator).
				Value(&v.Context),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("File layout").
				Options(
					huh.NewOption("One file per type", "per-type"),
					huh.NewOption("Single types.go", "single-file"),
				).
				Value(&v.Layout),
			huh.NewConfirm().
				Title("Also write SCHEMA.md?").
				Value(&v.Docs),
		),
	).WithTheme(Theme()).Run()
}
