// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns an indexed GraphQL schema into a language-neutral
// generation plan and hands that plan to registered emitters.
package translate

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

// Layout selects how emitters split constructs into files.
type Layout string

// Supported layouts.
const (
	LayoutPerType    Layout = "per-type"
	LayoutSingleFile Layout = "single-file"
)

// Valid reports whether l is a known layout. The empty layout means per-type.
func (l Layout) Valid() bool {
	switch l {
	case "", LayoutPerType, LayoutSingleFile:
		return true
	}
	return false
}

// Artifact is one rendered output file.
type Artifact struct {
	Path    string // slash-separated, relative to the output directory
	Content []byte
}

// EmitOptions carries the packaging decisions shared by all emitters of one run.
type EmitOptions struct {
	Namespace string // slash-separated package path below the output directory, may be empty
	Package   string // package name of the generated code
	Layout    Layout
}

// Dir returns the artifact directory relative to the output directory.
func (o EmitOptions) Dir() string {
	if o.Namespace == "" {
		return ""
	}
	return path.Clean(o.Namespace)
}

// Join returns the artifact path of file within the namespace directory.
func (o EmitOptions) Join(file string) string {
	if dir := o.Dir(); dir != "" {
		return path.Join(dir, file)
	}
	return file
}

// Output is what an emitter returns for one plan.
type Output struct {
	Artifacts []Artifact
}

// Emitter renders a plan into artifacts of one target format.
type Emitter interface {
	// Name returns the emitter's identifier (e.g., "go", "markdown")
	Name() string

	// Emit renders the plan. It must not touch the filesystem and must be
	// deterministic for equal inputs.
	Emit(plan *Plan, opts EmitOptions) (*Output, error)
}

var (
	mu       sync.RWMutex
	emitters = make(map[string]Emitter)
)

// Register adds an emitter to the registry.
func Register(e Emitter) {
	mu.Lock()
	defer mu.Unlock()
	emitters[e.Name()] = e
}

// Get retrieves an emitter by name.
func Get(name string) (Emitter, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := emitters[name]
	if !ok {
		return nil, fmt.Errorf("unknown emitter: %s (available: %s)", name, strings.Join(availableLocked(), ", "))
	}
	return e, nil
}

// Available returns all registered emitter names, sorted.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()
	return availableLocked()
}

func availableLocked() []string {
	names := make([]string, 0, len(emitters))
	for name := range emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PackageName derives the package name of generated code from the namespace,
// falling back to the base name of the output directory.
func PackageName(namespace, outputDir string) string {
	candidate := ""
	if namespace != "" {
		candidate = path.Base(path.Clean(namespace))
	} else if outputDir != "" {
		candidate = path.Base(strings.ReplaceAll(outputDir, "\\", "/"))
	}
	var b strings.Builder
	for _, r := range strings.ToLower(candidate) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9' && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "client"
	}
	return b.String()
}

// ContextFullName returns the fully qualified context name for a namespace.
func ContextFullName(namespace, contextIdent string) string {
	if namespace == "" {
		return contextIdent
	}
	return namespace + "." + contextIdent
}

// CheckArtifacts fails with a NameCollisionError when two artifacts share a path.
func CheckArtifacts(artifacts []Artifact) error {
	scope := NewScope("file")
	for _, a := range artifacts {
		if err := scope.Claim(strings.ToLower(a.Path), a.Path); err != nil {
			return err
		}
	}
	return nil
}
