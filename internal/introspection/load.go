// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package introspection

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/dacolabs/gqlscaffold/internal/schema"
)

// SDLExtensions are the file extensions read as GraphQL SDL.
var SDLExtensions = []string{".graphql", ".graphqls", ".gql"}

// LoadFile reads a schema from an introspection JSON file or an SDL file,
// chosen by extension.
func LoadFile(fsys afero.Fs, name string) (*schema.Schema, error) {
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case ext == ".json":
		s, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return s, nil
	case slices.Contains(SDLExtensions, ext):
		return FromSDL(&ast.Source{Name: name, Input: string(data)})
	default:
		return nil, fmt.Errorf("%s: unsupported schema file extension %q (expected .json, %s)", name, ext, strings.Join(SDLExtensions, ", "))
	}
}
