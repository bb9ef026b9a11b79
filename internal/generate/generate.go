// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate sequences schema indexing, planning, emission and writing
// into one client generation run.
package generate

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/dacolabs/gqlscaffold/internal/schema"
	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// Result describes a successful generation run.
type Result struct {
	// ContextFullName is the namespace-qualified context identifier.
	ContextFullName string
	Artifacts       []translate.Artifact
	Warnings        []translate.Warning
}

// GenerateClient renders the client for s and writes it to
// opts.OutputDirectory on fsys. Nothing is written when any step fails.
func GenerateClient(ctx context.Context, s *schema.Schema, endpoint string, opts Options, fsys afero.Fs) (*Result, error) {
	res, err := Render(ctx, s, endpoint, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Write(fsys, opts.OutputDirectory, res.Artifacts); err != nil {
		return nil, err
	}

	logger := loggerOf(opts)
	level.Info(logger).Log("msg", "client generated", "context", res.ContextFullName, "artifacts", len(res.Artifacts), "dir", opts.OutputDirectory)
	return res, nil
}

// Render runs every step of GenerateClient except writing.
func Render(ctx context.Context, s *schema.Schema, endpoint string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	idx, err := schema.NewIndex(s)
	if err != nil {
		return nil, err
	}
	level.Debug(logger).Log("msg", "schema indexed", "types", len(s.Types))

	overrides, err := opts.scalarOverrides()
	if err != nil {
		return nil, err
	}
	resolver := translate.NewResolver(idx, overrides)
	planner, err := translate.NewPlanner(idx, resolver, translate.NewNamer(opts.NormalizeCasing))
	if err != nil {
		return nil, err
	}

	constructs, warnings, err := planAll(ctx, planner, s.Types, opts.Workers)
	if err != nil {
		return nil, err
	}
	warnings = append(resolver.Warnings(), warnings...)

	plan := &translate.Plan{
		Constructs: constructs,
		Context:    planner.PlanContext(opts.ContextName, endpoint),
	}
	if err := translate.CheckNames(plan); err != nil {
		return nil, err
	}
	level.Debug(logger).Log("msg", "types planned", "constructs", len(constructs), "context", plan.Context.Name.Name)

	emitOpts := translate.EmitOptions{
		Namespace: opts.Namespace,
		Package:   translate.PackageName(opts.Namespace, opts.OutputDirectory),
		Layout:    opts.Layout,
	}
	var artifacts []translate.Artifact
	for _, target := range opts.Targets {
		e, err := translate.Get(target)
		if err != nil {
			return nil, err
		}
		out, err := e.Emit(plan, emitOpts)
		if err != nil {
			return nil, fmt.Errorf("emit %s: %w", target, err)
		}
		level.Debug(logger).Log("msg", "emitted", "target", target, "artifacts", len(out.Artifacts))
		artifacts = append(artifacts, out.Artifacts...)
	}
	if err := translate.CheckArtifacts(artifacts); err != nil {
		return nil, err
	}

	for _, w := range warnings {
		level.Warn(logger).Log("msg", w.Message, "kind", string(w.Kind), "subject", w.Subject)
	}

	return &Result{
		ContextFullName: translate.ContextFullName(opts.Namespace, plan.Context.Name.Name),
		Artifacts:       artifacts,
		Warnings:        warnings,
	}, nil
}

// planned is the outcome of planning one type.
type planned struct {
	construct translate.Construct
	warnings  []translate.Warning
	err       error
}

// planAll plans every type on a bounded worker group. Results are slotted by
// declaration index and every planning error is reported, not just the first.
func planAll(ctx context.Context, p *translate.Planner, types []*schema.Type, workers int) ([]translate.Construct, []translate.Warning, error) {
	results := make([]planned, len(types))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, t := range types {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			c, w, err := p.Plan(t)
			results[i] = planned{construct: c, warnings: w, err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		constructs []translate.Construct
		warnings   []translate.Warning
		errs       *multierror.Error
	)
	for _, r := range results {
		if r.err != nil {
			errs = multierror.Append(errs, r.err)
			continue
		}
		warnings = append(warnings, r.warnings...)
		if r.construct != nil {
			constructs = append(constructs, r.construct)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		if len(errs.Errors) == 1 {
			return nil, nil, errs.Errors[0]
		}
		return nil, nil, err
	}
	return constructs, warnings, nil
}

func loggerOf(opts Options) log.Logger {
	if opts.Logger == nil {
		return log.NewNopLogger()
	}
	return opts.Logger
}
