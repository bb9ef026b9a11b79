// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/gqlscaffold/internal/schema"
)

func scalarIndex(t *testing.T, extra ...*schema.Type) *schema.Index {
	t.Helper()
	types := []*schema.Type{
		{Kind: schema.KindObject, Name: "Query", Fields: []*schema.Field{
			{Name: "ok", Type: schema.Named(schema.KindScalar, "Boolean")},
		}},
		{Kind: schema.KindScalar, Name: "String"},
		{Kind: schema.KindScalar, Name: "Boolean"},
		{Kind: schema.KindScalar, Name: "ID"},
	}
	types = append(types, extra...)
	idx, err := schema.NewIndex(&schema.Schema{QueryType: &schema.NamedRef{Name: "Query"}, Types: types})
	require.NoError(t, err)
	return idx
}

func TestResolve_WrapperNesting(t *testing.T) {
	str := func() *schema.TypeRef { return schema.Named(schema.KindScalar, "String") }

	tests := []struct {
		name string
		ref  *schema.TypeRef
		want CanonicalType
	}{
		{
			name: "bare",
			ref:  str(),
			want: CanonicalType{Nullable: true, ElementNullable: true},
		},
		{
			name: "non-null",
			ref:  schema.NonNull(str()),
			want: CanonicalType{Nullable: false, ElementNullable: false},
		},
		{
			name: "nullable list of nullable",
			ref:  schema.ListOf(str()),
			want: CanonicalType{ListDepth: 1, Nullable: true, ElementNullable: true},
		},
		{
			name: "non-null list of non-null",
			ref:  schema.NonNull(schema.ListOf(schema.NonNull(str()))),
			want: CanonicalType{ListDepth: 1, Nullable: false, ElementNullable: false},
		},
		{
			name: "non-null list of nullable",
			ref:  schema.NonNull(schema.ListOf(str())),
			want: CanonicalType{ListDepth: 1, Nullable: false, ElementNullable: true},
		},
		{
			name: "nullable list of non-null",
			ref:  schema.ListOf(schema.NonNull(str())),
			want: CanonicalType{ListDepth: 1, Nullable: true, ElementNullable: false},
		},
		{
			name: "nested lists",
			ref:  schema.ListOf(schema.NonNull(schema.ListOf(schema.NonNull(str())))),
			want: CanonicalType{ListDepth: 2, Nullable: true, ElementNullable: false},
		},
	}

	r := NewResolver(scalarIndex(t), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.BaseName = "String"
			tt.want.BaseKind = schema.KindScalar

			got, err := r.Resolve(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_DeeperThanIntrospectionQuery(t *testing.T) {
	ref := schema.Named(schema.KindScalar, "ID")
	for range 10 {
		ref = schema.NonNull(schema.ListOf(ref))
	}

	got, err := NewResolver(scalarIndex(t), nil).Resolve(ref)
	require.NoError(t, err)

	assert.Equal(t, 10, got.ListDepth)
	assert.False(t, got.Nullable)
	assert.True(t, got.ElementNullable)
	assert.Equal(t, "ID", got.BaseName)
}

func TestResolve_Errors(t *testing.T) {
	r := NewResolver(scalarIndex(t), nil)

	_, err := r.Resolve(schema.NonNull(schema.Named(schema.KindObject, "Missing")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrUnresolvedType))

	_, err = r.Resolve(schema.NonNull(schema.ListOf(nil)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrMalformedSchema))

	_, err = r.Resolve(&schema.TypeRef{Kind: schema.KindObject})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrMalformedSchema))
}

func TestScalar_Mapping(t *testing.T) {
	idx := scalarIndex(t,
		&schema.Type{Kind: schema.KindScalar, Name: "DateTime"},
		&schema.Type{Kind: schema.KindScalar, Name: "Decimal"},
		&schema.Type{Kind: schema.KindScalar, Name: "URI"},
	)
	r := NewResolver(idx, map[string]GoRef{
		"Decimal": {Path: "github.com/shopspring/decimal", Name: "Decimal"},
	})

	assert.Equal(t, GoRef{Name: "string"}, r.Scalar("ID"))
	assert.Equal(t, GoRef{Name: "string"}, r.Scalar("String"))
	assert.Equal(t, GoRef{Name: "bool"}, r.Scalar("Boolean"))
	assert.Equal(t, GoRef{Path: "time", Name: "Time"}, r.Scalar("DateTime"))
	assert.Equal(t, GoRef{Path: "github.com/shopspring/decimal", Name: "Decimal"}, r.Scalar("Decimal"))
	assert.Equal(t, GoRef{Name: "string"}, r.Scalar("URI"))

	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, UnknownScalar, r.Warnings()[0].Kind)
	assert.Equal(t, "URI", r.Warnings()[0].Subject)
}

func TestParseGoRef(t *testing.T) {
	tests := []struct {
		in      string
		want    GoRef
		wantErr bool
	}{
		{in: "string", want: GoRef{Name: "string"}},
		{in: "time.Time", want: GoRef{Path: "time", Name: "Time"}},
		{in: "github.com/shopspring/decimal.Decimal", want: GoRef{Path: "github.com/shopspring/decimal", Name: "Decimal"}},
		{in: "", wantErr: true},
		{in: "time.", wantErr: true},
		{in: ".Time", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGoRef(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoRef_String(t *testing.T) {
	assert.Equal(t, "int", GoRef{Name: "int"}.String())
	assert.Equal(t, "json.RawMessage", GoRef{Path: "encoding/json", Name: "RawMessage"}.String())
}
