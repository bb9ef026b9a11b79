// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dacolabs/gqlscaffold/internal/generate"
	"github.com/dacolabs/gqlscaffold/internal/prompts"
	"github.com/dacolabs/gqlscaffold/internal/schema"
	"github.com/dacolabs/gqlscaffold/internal/session"
	"github.com/dacolabs/gqlscaffold/internal/translate"
)

type generateOptions struct {
	output         string
	namespace      string
	contextName    string
	token          string
	schemaFile     string
	layout         string
	targets        []string
	scalars        map[string]string
	docs           bool
	noNormalize    bool
	verbose        bool
	nonInteractive bool
	timeout        time.Duration
}

func newGenerateCmd(getenv func(string) string) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [endpoint]",
		Short: "Generate a typed Go client for a GraphQL service",
		Long: fmt.Sprintf(`Generate a typed Go client for a GraphQL service.

The schema is introspected from endpoint, or read from --schema. Values not
given as flags are taken from gqlscaffold.yaml when present.

Available targets: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode
  gqlscaffold generate

  # Introspect a live service
  gqlscaffold generate https://api.example.com/graphql -o ./client -n api

  # Authenticated endpoint with a custom context name
  gqlscaffold generate https://api.example.com/graphql -t "$TOKEN" -c Shop

  # Offline, from an SDL file, with a markdown reference
  gqlscaffold generate --schema schema.graphql -o ./client --docs --non-interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, getenv, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "Package namespace, a directory below the output directory")
	cmd.Flags().StringVarP(&opts.contextName, "context", "c", generate.DefaultContextName, "Name of the generated client context")
	cmd.Flags().StringVarP(&opts.token, "token", "t", "", "Bearer token sent with the introspection request")
	cmd.Flags().StringVar(&opts.schemaFile, "schema", "", "Read the schema from an introspection JSON or SDL file")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "File layout (per-type or single-file)")
	cmd.Flags().StringSliceVar(&opts.targets, "targets", nil, fmt.Sprintf("Emitters to run (%s)", strings.Join(translate.Available(), ", ")))
	cmd.Flags().StringToStringVar(&opts.scalars, "scalar", nil, "Map a custom scalar to a Go type, e.g. Decimal=github.com/shopspring/decimal.Decimal")
	cmd.Flags().BoolVar(&opts.docs, "docs", false, "Also write a markdown schema reference")
	cmd.Flags().BoolVar(&opts.noNormalize, "no-normalize", false, "Keep schema names instead of Go casing")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts or spinners")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort after this duration (e.g. 30s)")

	return cmd
}

// generateSettings is the merged result of flags and gqlscaffold.yaml.
type generateSettings struct {
	source  schemaSource
	options generate.Options
}

func resolveGenerateSettings(cmd *cobra.Command, getenv func(string) string, args []string, opts *generateOptions) *generateSettings {
	flags := cmd.Flags()
	s := &generateSettings{
		source: resolveSource(cmd, getenv, args, opts.schemaFile, opts.token),
		options: generate.Options{
			Namespace:       opts.namespace,
			OutputDirectory: opts.output,
			ContextName:     opts.contextName,
			NormalizeCasing: !opts.noNormalize,
			Layout:          translate.Layout(opts.layout),
			Targets:         opts.targets,
			Scalars:         opts.scalars,
		},
	}
	docs := opts.docs

	if sess := session.FromCommand(cmd); sess != nil {
		cfg := sess.Config
		if !flags.Changed("output") && cfg.Output != "" {
			s.options.OutputDirectory = sess.Resolve(cfg.Output)
		}
		if !flags.Changed("namespace") {
			s.options.Namespace = cfg.Namespace
		}
		if !flags.Changed("context") && cfg.Context != "" {
			s.options.ContextName = cfg.Context
		}
		if !flags.Changed("no-normalize") {
			s.options.NormalizeCasing = cfg.NormalizeCasingEnabled()
		}
		if !flags.Changed("layout") {
			s.options.Layout = translate.Layout(cfg.Layout)
		}
		if !flags.Changed("docs") {
			docs = cfg.Docs
		}
		if len(cfg.Scalars) > 0 {
			merged := make(map[string]string, len(cfg.Scalars)+len(opts.scalars))
			for k, v := range cfg.Scalars {
				merged[k] = v
			}
			for k, v := range opts.scalars {
				merged[k] = v
			}
			s.options.Scalars = merged
		}
	}

	if docs {
		if len(s.options.Targets) == 0 {
			s.options.Targets = []string{"go"}
		}
		if !slices.Contains(s.options.Targets, "markdown") {
			s.options.Targets = append(slices.Clone(s.options.Targets), "markdown")
		}
	}
	return s
}

func runGenerate(cmd *cobra.Command, getenv func(string) string, args []string, opts *generateOptions) error {
	settings := resolveGenerateSettings(cmd, getenv, args, opts)
	interactive := !opts.nonInteractive && prompts.Interactive()

	if interactive {
		prompts.Banner()
		values := prompts.GenerateValues{
			Endpoint:  settings.source.endpoint,
			Output:    settings.options.OutputDirectory,
			Namespace: settings.options.Namespace,
			Context:   settings.options.ContextName,
		}
		askOutput := !cmd.Flags().Changed("output") && settings.options.OutputDirectory == ""
		if err := prompts.RunGenerateForm(&values, settings.source.file == "", askOutput); err != nil {
			return err
		}
		settings.source.endpoint = values.Endpoint
		settings.options.OutputDirectory = values.Output
		settings.options.Namespace = values.Namespace
		settings.options.ContextName = values.Context
	}

	if settings.source.endpoint == "" && settings.source.file == "" {
		return errNoSource
	}

	output, err := filepath.Abs(settings.options.OutputDirectory)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}
	settings.options.OutputDirectory = output
	settings.options.Logger = newLogger(cmd.ErrOrStderr(), opts.verbose)

	ctx, cancel := withTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scaffolding GraphQL client code for %s to %s\n", settings.source.label(), output)

	fsys := afero.NewOsFs()
	var s *schema.Schema
	err = prompts.RunWithStatus(ctx, "Performing introspection", interactive, func(ctx context.Context) error {
		if settings.source.file == "" {
			fmt.Fprintln(out, "Running introspection query ...")
		} else {
			fmt.Fprintln(out, "Reading schema file ...")
		}
		var loadErr error
		s, loadErr = settings.source.load(ctx, fsys)
		return loadErr
	})
	if err != nil {
		return err
	}

	var result *generate.Result
	err = prompts.RunWithStatus(ctx, "Scaffolding GraphQL client code "+settings.source.label(), interactive, func(ctx context.Context) error {
		var genErr error
		result, genErr = generate.GenerateClient(ctx, s, settings.source.endpoint, settings.options, fsys)
		return genErr
	})
	if err != nil {
		return err
	}

	if interactive {
		prompts.PrintResult([]prompts.ResultField{
			{Label: "Source", Value: settings.source.label()},
			{Label: "Output", Value: output},
			{Label: "Files", Value: strconv.Itoa(len(result.Artifacts))},
			{Label: "Context", Value: result.ContextFullName},
		}, "")
		prompts.PrintWarnings(result.Warnings)
	}
	fmt.Fprintln(out, "Scaffolding complete")
	fmt.Fprintf(out, "Use %s to run strongly typed queries\n", result.ContextFullName)
	return nil
}

// newLogger writes logfmt to w, warnings and up unless verbose.
func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowWarn())
}
