// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type introspectOptions struct {
	output     string
	token      string
	schemaFile string
	timeout    time.Duration
}

func newIntrospectCmd(getenv func(string) string) *cobra.Command {
	opts := &introspectOptions{}

	cmd := &cobra.Command{
		Use:   "introspect [endpoint]",
		Short: "Save the introspection result of a GraphQL service",
		Long: `Run the introspection query against a GraphQL service and print the
result as JSON. The output can be passed to "generate --schema" later.

With --schema, an SDL file is converted to the same JSON form instead.`,
		Example: `  # Print to stdout
  gqlscaffold introspect https://api.example.com/graphql

  # Save for offline generation
  gqlscaffold introspect https://api.example.com/graphql -t "$TOKEN" -o schema.json

  # Convert SDL to introspection JSON
  gqlscaffold introspect --schema schema.graphql -o schema.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntrospect(cmd, getenv, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.token, "token", "t", "", "Bearer token sent with the introspection request")
	cmd.Flags().StringVar(&opts.schemaFile, "schema", "", "Convert this SDL or JSON file instead of introspecting")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort after this duration (e.g. 30s)")

	return cmd
}

func runIntrospect(cmd *cobra.Command, getenv func(string) string, args []string, opts *introspectOptions) error {
	src := resolveSource(cmd, getenv, args, opts.schemaFile, opts.token)

	ctx, cancel := withTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	fsys := afero.NewOsFs()
	s, err := src.load(ctx, fsys)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(map[string]any{
		"data": map[string]any{"__schema": s},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	data = append(data, '\n')

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := afero.WriteFile(fsys, opts.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Schema with %d types written to %s\n", len(s.Types), opts.output)
	return nil
}
