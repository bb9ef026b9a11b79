// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package introspection obtains the schema of a GraphQL service, either by
// running the introspection query against it or by loading a local file.
package introspection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	graphql "github.com/llehouerou/go-graphql-client"

	"github.com/dacolabs/gqlscaffold/internal/schema"
	"github.com/dacolabs/gqlscaffold/internal/version"
)

// ErrEmptyResponse is returned when the response carries no __schema.
var ErrEmptyResponse = errors.New("response body not understood")

// FetchError wraps a failed introspection request.
type FetchError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("introspection of %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

type fetchOptions struct {
	token      string
	httpClient *http.Client
	userAgent  string
}

// Option configures Fetch.
type Option func(*fetchOptions)

// WithToken sends token as a bearer credential.
func WithToken(token string) Option {
	return func(o *fetchOptions) { o.token = token }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(o *fetchOptions) { o.httpClient = c }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *fetchOptions) { o.userAgent = ua }
}

// Fetch posts Query to endpoint and decodes the schema from the response.
func Fetch(ctx context.Context, endpoint string, opts ...Option) (*schema.Schema, error) {
	o := fetchOptions{userAgent: version.UserAgent()}
	for _, opt := range opts {
		opt(&o)
	}

	client := graphql.NewClient(endpoint, o.httpClient).WithRequestModifier(func(r *http.Request) {
		r.Header.Set("User-Agent", o.userAgent)
		if o.token != "" {
			r.Header.Set("Authorization", "Bearer "+o.token)
		}
	})

	data, err := client.ExecRaw(ctx, Query, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	s, err := Decode(data)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	return s, nil
}

// Decode reads an introspection result. It accepts the full response
// ({"data": {"__schema": ...}}), its data member ({"__schema": ...}) and a
// bare __schema object.
func Decode(data []byte) (*schema.Schema, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptyResponse
	}

	var envelope struct {
		Data   *json.RawMessage `json:"data"`
		Schema *schema.Schema   `json:"__schema"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode introspection result: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("introspection returned errors: %s", envelope.Errors[0].Message)
	}
	if envelope.Data != nil {
		return Decode(*envelope.Data)
	}
	if envelope.Schema != nil {
		return envelope.Schema, nil
	}

	var bare schema.Schema
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("decode introspection result: %w", err)
	}
	if bare.QueryType == nil && len(bare.Types) == 0 {
		return nil, ErrEmptyResponse
	}
	return &bare, nil
}
