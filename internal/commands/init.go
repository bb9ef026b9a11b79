// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/gqlscaffold/internal/config"
	"github.com/dacolabs/gqlscaffold/internal/generate"
	"github.com/dacolabs/gqlscaffold/internal/prompts"
	"github.com/dacolabs/gqlscaffold/internal/translate"
)

type initOptions struct {
	endpoint       string
	tokenEnv       string
	schemaFile     string
	namespace      string
	contextName    string
	output         string
	layout         string
	docs           bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gqlscaffold project",
		Long: `Initialize a new gqlscaffold project with a gqlscaffold.yaml configuration file.
The file records the schema source and generation settings so that
"gqlscaffold generate" can run without flags.`,
		Example: `  # Interactive mode
  gqlscaffold init

  # Non-interactive
  gqlscaffold init --endpoint https://api.example.com/graphql --token-env API_TOKEN --output client --non-interactive
  gqlscaffold init --schema schema.graphql --output client --namespace api --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.endpoint, "endpoint", "e", "", "GraphQL endpoint to introspect")
	cmd.Flags().StringVar(&opts.tokenEnv, "token-env", "", "Environment variable holding the bearer token")
	cmd.Flags().StringVarP(&opts.schemaFile, "schema", "s", "", "Schema file used instead of an endpoint")
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "Package namespace below the output directory")
	cmd.Flags().StringVarP(&opts.contextName, "context", "c", generate.DefaultContextName, "Name of the generated client context")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "client", "Output directory")
	cmd.Flags().StringVar(&opts.layout, "layout", string(translate.LayoutPerType), "File layout (per-type or single-file)")
	cmd.Flags().BoolVar(&opts.docs, "docs", false, "Also write a markdown schema reference")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --endpoint or --schema)")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", config.FileName)
	}

	if opts.nonInteractive {
		if opts.endpoint == "" && opts.schemaFile == "" {
			return errors.New("non-interactive mode requires either --endpoint or --schema")
		}
	} else {
		values := prompts.InitValues{
			FromFile:   opts.schemaFile != "",
			Endpoint:   opts.endpoint,
			TokenEnv:   opts.tokenEnv,
			SchemaFile: opts.schemaFile,
			Namespace:  opts.namespace,
			Context:    opts.contextName,
			Output:     opts.output,
			Layout:     opts.layout,
			Docs:       opts.docs,
		}
		if err := prompts.RunInitForm(&values); err != nil {
			return err
		}
		opts.endpoint, opts.tokenEnv, opts.schemaFile = values.Endpoint, values.TokenEnv, values.SchemaFile
		if values.FromFile {
			opts.endpoint, opts.tokenEnv = "", ""
		} else {
			opts.schemaFile = ""
		}
		opts.namespace, opts.contextName, opts.output = values.Namespace, values.Context, values.Output
		opts.layout, opts.docs = values.Layout, values.Docs
	}

	cfg := config.Config{
		Version:    config.CurrentConfigVersion,
		Endpoint:   opts.endpoint,
		TokenEnv:   opts.tokenEnv,
		SchemaFile: opts.schemaFile,
		Namespace:  opts.namespace,
		Context:    opts.contextName,
		Output:     opts.output,
		Layout:     opts.layout,
		Docs:       opts.docs,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Initialization completed")
	return nil
}
