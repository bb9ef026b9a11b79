// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

const stagingPrefix = ".gqlscaffold-"

// move records one artifact moved into place.
type move struct {
	target string
	backup string
}

// Write stores artifacts below dir, all or nothing. Artifacts are first
// written to a staging directory inside dir, then moved into place; when a
// move fails, moved files are removed, replaced files are restored and
// created directories are deleted.
func Write(fsys afero.Fs, dir string, artifacts []translate.Artifact) (err error) {
	for _, a := range artifacts {
		if err := checkPath(a.Path); err != nil {
			return err
		}
	}

	created, err := mkdirAll(fsys, dir)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var (
		moved   []move
		staging string
	)
	defer func() {
		if err != nil {
			err = errors.Join(err, rollback(fsys, moved, created))
		}
		if staging != "" {
			fsys.RemoveAll(staging) //nolint:errcheck
		}
	}()

	staging, err = afero.TempDir(fsys, dir, stagingPrefix)
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}

	for _, a := range artifacts {
		name := filepath.Join(staging, "new", filepath.FromSlash(a.Path))
		if err := fsys.MkdirAll(filepath.Dir(name), 0o750); err != nil {
			return fmt.Errorf("stage %s: %w", a.Path, err)
		}
		if err := afero.WriteFile(fsys, name, a.Content, 0o644); err != nil { //nolint:gosec // generated sources are world-readable
			return fmt.Errorf("stage %s: %w", a.Path, err)
		}
	}

	for _, a := range artifacts {
		rel := filepath.FromSlash(a.Path)
		target := filepath.Join(dir, rel)

		dirs, err := mkdirAll(fsys, filepath.Dir(target))
		if err != nil {
			return fmt.Errorf("write %s: %w", a.Path, err)
		}
		created = append(created, dirs...)

		m := move{target: target}
		if _, err := fsys.Stat(target); err == nil {
			m.backup = filepath.Join(staging, "old", rel)
			if err := fsys.MkdirAll(filepath.Dir(m.backup), 0o750); err != nil {
				return fmt.Errorf("write %s: %w", a.Path, err)
			}
			if err := fsys.Rename(target, m.backup); err != nil {
				return fmt.Errorf("write %s: %w", a.Path, err)
			}
		}
		if err := fsys.Rename(filepath.Join(staging, "new", rel), target); err != nil {
			if m.backup != "" {
				moved = append(moved, move{backup: m.backup, target: target})
			}
			return fmt.Errorf("write %s: %w", a.Path, err)
		}
		moved = append(moved, m)
	}
	return nil
}

// rollback undoes moves in reverse order and removes created directories.
func rollback(fsys afero.Fs, moved []move, created []string) error {
	var errs []error
	for i := len(moved) - 1; i >= 0; i-- {
		m := moved[i]
		if err := fsys.Remove(m.target); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
		if m.backup != "" {
			if err := fsys.Rename(m.backup, m.target); err != nil {
				errs = append(errs, fmt.Errorf("restore %s: %w", m.target, err))
			}
		}
	}
	for i := len(created) - 1; i >= 0; i-- {
		if err := fsys.RemoveAll(created[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// mkdirAll creates dir and returns the directories it created, outermost first.
func mkdirAll(fsys afero.Fs, dir string) ([]string, error) {
	var missing []string
	for d := filepath.Clean(dir); ; d = filepath.Dir(d) {
		if _, err := fsys.Stat(d); err == nil {
			break
		} else if !os.IsNotExist(err) {
			return nil, err
		}
		missing = append(missing, d)
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}
	if err := fsys.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	for i, j := 0, len(missing)-1; i < j; i, j = i+1, j-1 {
		missing[i], missing[j] = missing[j], missing[i]
	}
	return missing, nil
}

func checkPath(p string) error {
	clean := path.Clean(p)
	if p == "" || clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, stagingPrefix) {
		return fmt.Errorf("invalid artifact path %q", p)
	}
	return nil
}
