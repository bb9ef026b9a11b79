// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/gqlscaffold/internal/session"
	"github.com/dacolabs/gqlscaffold/internal/version"
)

// NewRootCmd creates and returns the root command for the CLI. getenv
// resolves the token environment variable named in gqlscaffold.yaml.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   version.Name,
		Short: "Scaffold strongly typed Go clients for GraphQL services",
		Long: `Scaffold strongly typed Go clients for GraphQL services.

The schema is read by introspecting a live endpoint or from a local
introspection JSON or SDL file. Settings may be stored in gqlscaffold.yaml;
flags override them.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: session.PreRunLoad,
	}

	registerGenerateCmd(rootCmd, getenv)
	registerIntrospectCmd(rootCmd, getenv)
	registerInitCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerGenerateCmd(parent *cobra.Command, getenv func(string) string) {
	parent.AddCommand(newGenerateCmd(getenv))
}

func registerIntrospectCmd(parent *cobra.Command, getenv func(string) string) {
	parent.AddCommand(newIntrospectCmd(getenv))
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	})
}
