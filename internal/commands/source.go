// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dacolabs/gqlscaffold/internal/introspection"
	"github.com/dacolabs/gqlscaffold/internal/schema"
	"github.com/dacolabs/gqlscaffold/internal/session"
)

// schemaSource says where a schema comes from. Exactly one of endpoint and
// file drives loading; endpoint is still baked into generated code when both
// are set.
type schemaSource struct {
	endpoint string
	file     string
	token    string
}

// errNoSource is returned when neither flags nor gqlscaffold.yaml name a schema.
var errNoSource = errors.New("no schema source: pass an endpoint, --schema, or set endpoint or schemaFile in gqlscaffold.yaml")

// resolveSource merges the endpoint argument and the --schema, --token flags
// with the project configuration. Flags win.
func resolveSource(cmd *cobra.Command, getenv func(string) string, args []string, schemaFile, token string) schemaSource {
	src := schemaSource{file: schemaFile, token: token}
	if len(args) > 0 {
		src.endpoint = args[0]
	}

	sess := session.FromCommand(cmd)
	if sess == nil {
		return src
	}
	cfg := sess.Config
	if src.endpoint == "" && src.file == "" {
		src.endpoint = cfg.Endpoint
		src.file = sess.Resolve(cfg.SchemaFile)
	}
	if src.token == "" && cfg.TokenEnv != "" && getenv != nil {
		src.token = getenv(cfg.TokenEnv)
	}
	return src
}

// label names the source in status messages.
func (s schemaSource) label() string {
	if s.file != "" {
		return s.file
	}
	return s.endpoint
}

func (s schemaSource) load(ctx context.Context, fsys afero.Fs) (*schema.Schema, error) {
	if s.file != "" {
		return introspection.LoadFile(fsys, s.file)
	}
	if s.endpoint == "" {
		return nil, errNoSource
	}
	var opts []introspection.Option
	if s.token != "" {
		opts = append(opts, introspection.WithToken(s.token))
	}
	return introspection.Fetch(ctx, s.endpoint, opts...)
}

// withTimeout bounds ctx when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
