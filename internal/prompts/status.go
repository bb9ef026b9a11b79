// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"context"
	"os"

	"github.com/charmbracelet/huh/spinner"
)

// Interactive reports whether stdout is a terminal.
func Interactive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// RunWithStatus runs fn behind a spinner titled title. Without a terminal fn
// runs directly.
func RunWithStatus(ctx context.Context, title string, interactive bool, fn func(context.Context) error) error {
	if !interactive {
		return fn(ctx)
	}

	var err error
	if spinErr := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() { err = fn(ctx) }).
		Run(); spinErr != nil {
		return spinErr
	}
	return err
}
