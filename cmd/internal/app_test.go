// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

func TestRegisterEmitters(t *testing.T) {
	RegisterEmitters()
	assert.Equal(t, []string{"go", "markdown"}, translate.Available())
}

func TestRun_Version(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	args := os.Args
	os.Args = []string{"gqlscaffold", "version"}
	t.Cleanup(func() { os.Args = args })

	assert.NoError(t, Run(context.Background(), func(string) string { return "" }))
}
