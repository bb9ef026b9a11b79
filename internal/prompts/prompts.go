// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"net/url"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// Banner prints the welcome line of the generate command.
func Banner() {
	fmt.Println(boldStyle.Render("Welcome to the GraphQL client scaffolding tool"))
	fmt.Println()
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	check := successStyle.Render("✓")

	fmt.Println()
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", check, labelStyle.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Println(successStyle.Render("\n" + successMsg))
	}
}

// PrintWarnings lists generation warnings, if any.
func PrintWarnings(warnings []translate.Warning) {
	if len(warnings) == 0 {
		return
	}
	mark := warnStyle.Render("!")
	fmt.Println()
	fmt.Println(warnStyle.Render(fmt.Sprintf("%d warning(s):", len(warnings))))
	for _, w := range warnings {
		fmt.Printf("%s %s %s\n", mark, labelStyle.Render(string(w.Kind)+":"), w.Subject+": "+w.Message)
	}
}

// identifierValidator accepts GraphQL names: a letter or underscore followed
// by letters, digits and underscores.
func identifierValidator(s string) error {
	if s == "" {
		return errors.New("name is required")
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return errors.New("must start with letter or underscore")
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return errors.New("must contain only letters, numbers, underscores")
		}
	}
	return nil
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func endpointValidator(s string) error {
	if s == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an http(s) URL")
	}
	return nil
}
