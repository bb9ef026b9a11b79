// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/go-kit/log"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// DefaultContextName is the context name used when none is configured.
const DefaultContextName = "Query"

// Options configures one generation run.
type Options struct {
	// Namespace is the slash-separated directory of the generated package
	// below OutputDirectory. Empty means the output directory itself.
	Namespace string
	// OutputDirectory receives the artifacts.
	OutputDirectory string
	// ContextName names the context construct, "Query" by default.
	ContextName string
	// NormalizeCasing rewrites schema names to Go casing.
	NormalizeCasing bool
	Layout          translate.Layout
	// Targets are emitter names, "go" by default.
	Targets []string
	// Scalars maps custom scalar names to Go types, e.g. "Decimal": "github.com/shopspring/decimal.Decimal".
	Scalars map[string]string
	// Workers bounds parallel planning. Zero means GOMAXPROCS.
	Workers int
	Logger  log.Logger
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	o := Options{NormalizeCasing: true}
	o.applyDefaults()
	return o
}

func (o *Options) applyDefaults() {
	if o.ContextName == "" {
		o.ContextName = DefaultContextName
	}
	if o.Layout == "" {
		o.Layout = translate.LayoutPerType
	}
	if len(o.Targets) == 0 {
		o.Targets = []string{"go"}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = log.NewNopLogger()
	}
}

// Validate applies defaults and checks the options.
func (o *Options) Validate() error {
	o.applyDefaults()

	if o.OutputDirectory == "" {
		return errors.New("output directory is required")
	}
	if !o.Layout.Valid() {
		return fmt.Errorf("unknown layout %q (expected %s or %s)", o.Layout, translate.LayoutPerType, translate.LayoutSingleFile)
	}
	if o.Namespace != "" {
		ns := path.Clean(o.Namespace)
		if path.IsAbs(ns) || ns == ".." || strings.HasPrefix(ns, "../") || strings.Contains(o.Namespace, "\\") {
			return fmt.Errorf("namespace %q must be a relative slash-separated path", o.Namespace)
		}
	}
	if !validName(o.ContextName) {
		return fmt.Errorf("invalid context name %q", o.ContextName)
	}
	for _, target := range o.Targets {
		if _, err := translate.Get(target); err != nil {
			return err
		}
	}
	if _, err := o.scalarOverrides(); err != nil {
		return err
	}
	return nil
}

func (o *Options) scalarOverrides() (map[string]translate.GoRef, error) {
	if len(o.Scalars) == 0 {
		return nil, nil
	}
	refs := make(map[string]translate.GoRef, len(o.Scalars))
	for name, goType := range o.Scalars {
		ref, err := translate.ParseGoRef(goType)
		if err != nil {
			return nil, fmt.Errorf("scalar %s: %w", name, err)
		}
		refs[name] = ref
	}
	return refs, nil
}

// validName reports whether s is a GraphQL name: [_A-Za-z][_0-9A-Za-z]*.
func validName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
