// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/gqlscaffold/internal/commands"
	"github.com/dacolabs/gqlscaffold/internal/translate"
	"github.com/dacolabs/gqlscaffold/internal/translate/gotypes"
	"github.com/dacolabs/gqlscaffold/internal/translate/markdown"
)

// RegisterEmitters makes the built-in emitters available to the commands.
func RegisterEmitters() {
	translate.Register(gotypes.New())
	translate.Register(markdown.New())
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	RegisterEmitters()
	rootCmd := commands.NewRootCmd(getenv)
	return rootCmd.ExecuteContext(ctx)
}
