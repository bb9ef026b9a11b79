// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierValidator(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{"Query", ""},
		{"_ctx2", ""},
		{"", "name is required"},
		{"2Query", "must start with letter or underscore"},
		{"Query-Context", "must contain only letters, numbers, underscores"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := identifierValidator(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestEndpointValidator(t *testing.T) {
	assert.NoError(t, endpointValidator("https://api.example.com/graphql"))
	assert.NoError(t, endpointValidator("http://localhost:8080/query"))
	assert.Error(t, endpointValidator(""))
	assert.Error(t, endpointValidator("ftp://example.com"))
	assert.Error(t, endpointValidator("api.example.com/graphql"))
}

func TestRequiredValidator(t *testing.T) {
	v := requiredValidator("output directory")
	assert.NoError(t, v("gen"))
	assert.EqualError(t, v(""), "output directory is required")
}

func TestRunWithStatus_NonInteractive(t *testing.T) {
	called := false
	err := RunWithStatus(context.Background(), "Working", false, func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	err = RunWithStatus(context.Background(), "Working", false, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestRunGenerateForm_NothingToAsk(t *testing.T) {
	v := &GenerateValues{Endpoint: "https://example.com/graphql", Context: "Query"}
	require.NoError(t, RunGenerateForm(v, true, false))
	assert.Equal(t, "Query", v.Context)
}
