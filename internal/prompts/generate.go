// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// GenerateValues are the generate command inputs a form may fill.
type GenerateValues struct {
	Endpoint  string
	Output    string
	Namespace string
	Context   string
}

// RunGenerateForm prompts for the values still missing. askEndpoint is false
// when the schema comes from a file; askOutput is false when --output was set.
func RunGenerateForm(v *GenerateValues, askEndpoint, askOutput bool) error {
	var groups []*huh.Group

	if askEndpoint && v.Endpoint == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("GraphQL endpoint").
				Placeholder("https://api.example.com/graphql").
				Validate(endpointValidator).
				Value(&v.Endpoint),
		))
	}
	if askOutput {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Value(&v.Output),
			huh.NewInput().
				Title("Package namespace").
				Description("Directory below the output directory, empty for none").
				Value(&v.Namespace),
		))
	}
	if v.Context == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Context name").
				Placeholder("Query").
				Validate(identifierValidator).
				Value(&v.Context),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
