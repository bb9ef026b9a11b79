// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/gqlscaffold/internal/schema"
	"github.com/dacolabs/gqlscaffold/internal/translate"
)

func testSchema() *schema.Schema {
	str := schema.Named(schema.KindScalar, "String")
	id := schema.NonNull(schema.Named(schema.KindScalar, "ID"))
	return &schema.Schema{
		QueryType: &schema.NamedRef{Name: "Query"},
		Types: []*schema.Type{
			{Kind: schema.KindObject, Name: "Query", Fields: []*schema.Field{
				{Name: "hero", Type: schema.Named(schema.KindInterface, "Character"), Args: []*schema.InputValue{
					{Name: "episode", Type: schema.Named(schema.KindEnum, "Episode")},
				}},
				{Name: "human", Type: schema.Named(schema.KindObject, "Human"), Args: []*schema.InputValue{
					{Name: "id", Type: id},
				}},
			}},
			{Kind: schema.KindInterface, Name: "Character", Description: "A character in the saga.", Fields: []*schema.Field{
				{Name: "id", Type: id},
				{Name: "name", Type: str},
			}},
			{Kind: schema.KindObject, Name: "Human", Interfaces: []schema.NamedRef{{Name: "Character"}}, Fields: []*schema.Field{
				{Name: "id", Type: id},
				{Name: "name", Type: str},
				{Name: "appears_in", Type: schema.NonNull(schema.ListOf(schema.Named(schema.KindEnum, "Episode")))},
				{Name: "born_at", Type: schema.Named(schema.KindScalar, "DateTime"), IsDeprecated: true},
			}},
			{Kind: schema.KindEnum, Name: "Episode", EnumValues: []schema.EnumValue{
				{Name: "NEW_HOPE", Description: "Released in 1977."}, {Name: "EMPIRE"},
			}},
			{Kind: schema.KindInputObject, Name: "ReviewInput", InputFields: []*schema.InputValue{
				{Name: "stars", Type: schema.NonNull(schema.Named(schema.KindScalar, "Int"))},
				{Name: "commentary", Type: str},
			}},
			{Kind: schema.KindUnion, Name: "SearchResult", PossibleTypes: []schema.NamedRef{{Name: "Human"}}},
			{Kind: schema.KindScalar, Name: "ID"},
			{Kind: schema.KindScalar, Name: "String"},
			{Kind: schema.KindScalar, Name: "Int"},
			{Kind: schema.KindScalar, Name: "DateTime"},
		},
	}
}

func buildPlan(t *testing.T, s *schema.Schema) *translate.Plan {
	t.Helper()
	idx, err := schema.NewIndex(s)
	require.NoError(t, err)
	p, err := translate.NewPlanner(idx, translate.NewResolver(idx, nil), translate.NewNamer(true))
	require.NoError(t, err)

	plan := &translate.Plan{Context: p.PlanContext("Query", "https://swapi.example/graphql")}
	for _, typ := range s.Types {
		c, _, err := p.Plan(typ)
		require.NoError(t, err)
		if c != nil {
			plan.Constructs = append(plan.Constructs, c)
		}
	}
	return plan
}

func emit(t *testing.T, s *schema.Schema, layout translate.Layout) map[string]string {
	t.Helper()
	out, err := New().Emit(buildPlan(t, s), translate.EmitOptions{Namespace: "starwars", Package: "starwars", Layout: layout})
	require.NoError(t, err)

	files := make(map[string]string, len(out.Artifacts))
	for _, a := range out.Artifacts {
		_, perr := parser.ParseFile(token.NewFileSet(), a.Path, a.Content, parser.ParseComments)
		require.NoError(t, perr, "artifact %s does not parse:\n%s", a.Path, a.Content)
		files[a.Path] = string(a.Content)
	}
	return files
}

func TestEmit_PerTypeLayout(t *testing.T) {
	files := emit(t, testSchema(), translate.LayoutPerType)

	var paths []string
	for p := range files {
		paths = append(paths, p)
	}
	assert.ElementsMatch(t, []string{
		"starwars/graphql_runtime.go",
		"starwars/query.go",
		"starwars/character.go",
		"starwars/human.go",
		"starwars/episode.go",
		"starwars/review_input.go",
		"starwars/search_result.go",
		"starwars/query_context.go",
	}, paths)

	for path, content := range files {
		assert.True(t, strings.HasPrefix(content, "// Code generated by gqlscaffold. DO NOT EDIT."), path)
		assert.Contains(t, content, "package starwars", path)
	}
}

func TestEmit_Object(t *testing.T) {
	human := emit(t, testSchema(), translate.LayoutPerType)["starwars/human.go"]

	assert.Contains(t, human, "type Human struct {")
	assert.Regexp(t, `ID\s+string\s+`+"`"+`graphql:"id" json:"id"`+"`", human)
	assert.Regexp(t, `Name\s+\*string\s+`, human)
	assert.Regexp(t, `AppearsIn\s+\[\]\*Episode\s+`+"`"+`graphql:"appears_in" json:"appears_in"`+"`", human)
	assert.Regexp(t, `BornAt\s+\*time\.Time`, human)
	assert.Contains(t, human, "// Deprecated: No longer supported.")
	assert.Contains(t, human, `"time"`)

	assert.Contains(t, human, "func (Human) isCharacter() {}")
	assert.Contains(t, human, "func (Human) isSearchResult() {}")
	assert.Contains(t, human, "func (v Human) GetID() string {")
	assert.Contains(t, human, "func (v Human) GetName() *string {")
}

func TestEmit_Methods(t *testing.T) {
	query := emit(t, testSchema(), translate.LayoutPerType)["starwars/query.go"]

	assert.Contains(t, query, "type QueryHeroArgs struct {")
	assert.Regexp(t, `Episode\s+Optional\[Episode\]\s+`+"`"+`json:"episode"`+"`", query)
	assert.Contains(t, query, "func (Query) Hero(args QueryHeroArgs) Selection[*CharacterValue] {")
	assert.Contains(t, query, `Field:     "hero"`)
	assert.Contains(t, query, "func (a QueryHeroArgs) Variables() map[string]any {")
	assert.Contains(t, query, "if a.Episode.IsSet() {")
	assert.Contains(t, query, `v["episode"] = Var("Episode", a.Episode)`)

	// Required arguments are plain values, always sent.
	assert.Regexp(t, `ID\s+string\s+`+"`"+`json:"id"`+"`", query)
	assert.Contains(t, query, `"id": Var("ID!", a.ID)`)
	assert.Contains(t, query, "func (Query) Human(args QueryHumanArgs) Selection[*Human] {")
}

func TestEmit_VariablesCarrySchemaTypes(t *testing.T) {
	s := testSchema()
	s.Types[0].Fields = append(s.Types[0].Fields, &schema.Field{
		Name: "reviews",
		Type: schema.NonNull(schema.ListOf(schema.Named(schema.KindObject, "Human"))),
		Args: []*schema.InputValue{
			{Name: "episodes", Type: schema.NonNull(schema.ListOf(schema.NonNull(schema.Named(schema.KindEnum, "Episode"))))},
			{Name: "filter", Type: schema.Named(schema.KindInputObject, "ReviewInput")},
			{Name: "since", Type: schema.NonNull(schema.Named(schema.KindScalar, "DateTime"))},
		},
	})
	query := emit(t, s, translate.LayoutPerType)["starwars/query.go"]

	assert.Contains(t, query, `"episodes": Var("[Episode!]!", a.Episodes)`)
	assert.Contains(t, query, `"since":    Var("DateTime!", a.Since)`)
	assert.Contains(t, query, `v["filter"] = Var("ReviewInput", a.Filter)`)
}

func TestEmit_ArgumentWithDefaultIsOptional(t *testing.T) {
	s := testSchema()
	ten := "10"
	s.Types[0].Fields = append(s.Types[0].Fields, &schema.Field{
		Name: "humans",
		Type: schema.NonNull(schema.ListOf(schema.NonNull(schema.Named(schema.KindObject, "Human")))),
		Args: []*schema.InputValue{
			{Name: "first", Type: schema.NonNull(schema.Named(schema.KindScalar, "Int")), DefaultValue: &ten},
		},
	})
	query := emit(t, s, translate.LayoutPerType)["starwars/query.go"]

	assert.Regexp(t, `First\s+Optional\[int\]\s+`+"`"+`json:"first"`+"`", query)
	assert.Contains(t, query, "// Defaults to 10.")
	assert.Contains(t, query, "if a.First.IsSet() {")
	assert.Contains(t, query, `v["first"] = Var("Int!", a.First)`)
	assert.NotContains(t, query, `"first": Var(`)
}

func TestEmit_Carriers(t *testing.T) {
	s := testSchema()
	s.Types = append(s.Types, &schema.Type{Kind: schema.KindObject, Name: "Review", Fields: []*schema.Field{
		{Name: "author", Type: schema.NonNull(schema.Named(schema.KindInterface, "Character"))},
		{Name: "related", Type: schema.ListOf(schema.Named(schema.KindUnion, "SearchResult"))},
	}})
	files := emit(t, s, translate.LayoutPerType)

	character := files["starwars/character.go"]
	assert.Contains(t, character, "type CharacterValue struct {")
	assert.Regexp(t, `Typename\s+string\s+`+"`"+`graphql:"__typename" json:"__typename"`+"`", character)
	assert.Regexp(t, `Human\s+Human\s+`+"`"+`graphql:"... on Human"`+"`", character)
	assert.Contains(t, character, "func (v CharacterValue) Value() Character {")
	assert.Contains(t, character, `case "Human":`)
	assert.Contains(t, character, "return v.Human")

	union := files["starwars/search_result.go"]
	assert.Contains(t, union, "type SearchResultValue struct {")
	assert.Contains(t, union, "func (v SearchResultValue) Value() SearchResult {")

	review := files["starwars/review.go"]
	assert.Regexp(t, `Author\s+\*CharacterValue\s+`, review)
	assert.Regexp(t, `Related\s+\[\]\*SearchResultValue\s+`, review)
}

func TestEmit_DegradedUnionCarrier(t *testing.T) {
	s := testSchema()
	for _, typ := range s.Types {
		if typ.Name == "SearchResult" {
			typ.PossibleTypes = nil
		}
	}
	union := emit(t, s, translate.LayoutPerType)["starwars/search_result.go"]

	assert.Contains(t, union, "type SearchResultValue struct {")
	assert.NotContains(t, union, "... on")
	assert.NotContains(t, union, "switch")
	assert.Contains(t, union, "return nil")
}

func TestEmit_Runtime(t *testing.T) {
	runtime := emit(t, testSchema(), translate.LayoutPerType)["starwars/graphql_runtime.go"]

	assert.Contains(t, runtime, "package starwars")
	assert.Contains(t, runtime, "func Var(typ string, value any) any {")
	assert.Contains(t, runtime, "func (v Variable) GetGraphQLType() string {")
	assert.Contains(t, runtime, "func (s Selection[T]) As(alias string) Selection[T] {")
	assert.Contains(t, runtime, "func (s Selection[T]) Variables() map[string]any {")
}

func TestEmit_InterfaceEnumInputUnion(t *testing.T) {
	files := emit(t, testSchema(), translate.LayoutPerType)

	character := files["starwars/character.go"]
	assert.Contains(t, character, "// A character in the saga.")
	assert.Contains(t, character, "type Character interface {")
	assert.Contains(t, character, "isCharacter()")
	assert.Contains(t, character, "GetID() string")
	assert.Contains(t, character, "GetName() *string")

	episode := files["starwars/episode.go"]
	assert.Contains(t, episode, "type Episode string")
	assert.Regexp(t, `EpisodeNewHope\s+Episode = "NEW_HOPE"`, episode)
	assert.Regexp(t, `EpisodeEmpire\s+Episode = "EMPIRE"`, episode)
	assert.Contains(t, episode, "// Released in 1977.")
	assert.Contains(t, episode, "func (e Episode) IsValid() bool {")

	input := files["starwars/review_input.go"]
	assert.Regexp(t, `Stars\s+Optional\[int\]\s+`+"`"+`json:"stars"`+"`", input)
	assert.Regexp(t, `Commentary\s+Optional\[string\]`, input)
	assert.Contains(t, input, "func (v ReviewInput) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, input, `m["stars"] = v.Stars`)

	union := files["starwars/search_result.go"]
	assert.Contains(t, union, "type SearchResult interface {")
	assert.Contains(t, union, "isSearchResult()")
	assert.Contains(t, union, "//   - Human")
}

func TestEmit_ContextQueryOnly(t *testing.T) {
	ctx := emit(t, testSchema(), translate.LayoutPerType)["starwars/query_context.go"]

	assert.Contains(t, ctx, "// Package starwars is a typed GraphQL client for https://swapi.example/graphql.")
	assert.Contains(t, ctx, `const DefaultQueryContextEndpoint = "https://swapi.example/graphql"`)
	assert.Contains(t, ctx, "func NewQueryContext(endpoint, token string) *QueryContext {")
	assert.Contains(t, ctx, `"github.com/llehouerou/go-graphql-client"`)
	assert.Contains(t, ctx, "graphql.NewClient(endpoint, nil)")
	assert.Contains(t, ctx, `r.Header.Set("Authorization", "Bearer "+token)`)
	assert.Contains(t, ctx, "func (c *QueryContext) Query(ctx context.Context, v any, variables map[string]any) error {")
	assert.Contains(t, ctx, "func (c *QueryContext) QueryRaw(ctx context.Context, v any, variables map[string]any) ([]byte, error) {")

	assert.NotContains(t, ctx, "Mutate")
	assert.NotContains(t, ctx, "Subscribe")
	assert.NotContains(t, ctx, "SubscriptionClient")
}

func TestEmit_ContextAllFamilies(t *testing.T) {
	s := testSchema()
	s.MutationType = &schema.NamedRef{Name: "Mutation"}
	s.SubscriptionType = &schema.NamedRef{Name: "Subscription"}
	s.Types = append(s.Types,
		&schema.Type{Kind: schema.KindObject, Name: "Mutation", Fields: []*schema.Field{
			{Name: "createReview", Type: schema.Named(schema.KindScalar, "String"), Args: []*schema.InputValue{
				{Name: "review", Type: schema.NonNull(schema.Named(schema.KindInputObject, "ReviewInput"))},
			}},
		}},
		&schema.Type{Kind: schema.KindObject, Name: "Subscription", Fields: []*schema.Field{
			{Name: "reviewAdded", Type: schema.Named(schema.KindScalar, "String")},
		}},
	)

	ctx := emit(t, s, translate.LayoutPerType)["starwars/query_context.go"]

	assert.Contains(t, ctx, "func (c *QueryContext) Query(")
	assert.Contains(t, ctx, "func (c *QueryContext) Mutate(ctx context.Context, v any, variables map[string]any) error {")
	assert.Contains(t, ctx, "func (c *QueryContext) MutateRaw(")
	assert.Contains(t, ctx, "func (c *QueryContext) Subscribe(v any, variables map[string]any, handler func(message []byte, err error) error) (string, error) {")
	assert.Contains(t, ctx, "func (c *QueryContext) RunSubscriptions() error {")
	assert.Contains(t, ctx, "func (c *QueryContext) CloseSubscriptions() error {")
	assert.Contains(t, ctx, "graphql.NewSubscriptionClient(endpoint)")
}

func TestEmit_SingleFileLayout(t *testing.T) {
	files := emit(t, testSchema(), translate.LayoutSingleFile)

	require.Len(t, files, 3)
	types := files["starwars/types.go"]
	assert.Contains(t, types, "type Human struct {")
	assert.Contains(t, types, "type Episode string")
	assert.Contains(t, types, "type ReviewInput struct {")
	assert.Less(t, strings.Index(types, "type Query struct"), strings.Index(types, "type Human struct"))
}

func TestEmit_Deterministic(t *testing.T) {
	first := emit(t, testSchema(), translate.LayoutPerType)
	second := emit(t, testSchema(), translate.LayoutPerType)
	assert.Equal(t, first, second)
}

func TestEmit_EmptyNamespace(t *testing.T) {
	out, err := New().Emit(buildPlan(t, testSchema()), translate.EmitOptions{Package: "client"})
	require.NoError(t, err)
	for _, a := range out.Artifacts {
		assert.NotContains(t, a.Path, "/")
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "review_input.go", fileName("ReviewInput"))
	assert.Equal(t, "unit_test_gen.go", fileName("UnitTest"))
	assert.Equal(t, "server_linux_gen.go", fileName("ServerLinux"))
	assert.Equal(t, "windows.go", fileName("Windows"))
}
