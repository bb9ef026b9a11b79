// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// checkProgram runs the generated starwars package against the endpoint given
// as its first argument.
const checkProgram = `package main

import (
	"context"
	"fmt"
	"maps"
	"os"

	"scaffoldcheck/starwars"
)

func main() {
	c := starwars.NewQueryContext(os.Args[1], "")
	ctx := context.Background()

	hero := starwars.Query{}.Hero(starwars.QueryHeroArgs{Episode: starwars.Some(starwars.EpisodeEmpire)})
	var character starwars.CharacterValue
	q := [][2]any{{hero.Tag(), &character}}
	if err := c.Query(ctx, &q, hero.Variables()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	human, ok := character.Value().(starwars.Human)
	if !ok {
		fmt.Fprintf(os.Stderr, "hero is %T\n", character.Value())
		os.Exit(1)
	}
	fmt.Println("hero", character.Typename, human.ID, *human.Name)

	luke := starwars.Query{}.Human(starwars.QueryHumanArgs{ID: "1000"}).As("luke")
	leia := starwars.Query{}.Human(starwars.QueryHumanArgs{ID: "1003"}).As("leia")
	vars := luke.Variables()
	maps.Copy(vars, leia.Variables())
	var a, b starwars.Human
	q2 := [][2]any{{luke.Tag(), &a}, {leia.Tag(), &b}}
	if err := c.Query(ctx, &q2, vars); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("luke", *a.Name)
	fmt.Println("leia", *b.Name)
}
`

type operation struct {
	Query     string          `json:"query"`
	Variables json.RawMessage `json:"variables"`
}

// starWarsServer answers the hero and aliased human operations of
// checkProgram and records every operation it receives.
func starWarsServer(t *testing.T) (*httptest.Server, func() []operation) {
	t.Helper()
	var (
		mu  sync.Mutex
		ops []operation
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var op operation
		if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		ops = append(ops, op)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(op.Query, "hero") {
			fmt.Fprint(w, `{"data":{"hero":{"__typename":"Human","id":"1000","name":"Luke Skywalker","appears_in":["NEW_HOPE","EMPIRE"],"born_at":null}}}`)
			return
		}
		fmt.Fprint(w, `{"data":{"luke":{"id":"1000","name":"Luke Skywalker","appears_in":[],"born_at":null},"leia":{"id":"1003","name":"Leia Organa","appears_in":["EMPIRE"],"born_at":null}}}`)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []operation {
		mu.Lock()
		defer mu.Unlock()
		return append([]operation(nil), ops...)
	}
}

// clientVersion returns the version of the client module this repository requires.
func clientVersion(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		f, err := os.Open(filepath.Join(dir, "go.mod"))
		if err == nil {
			defer f.Close()
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(sc.Text()), "require "))
				if len(fields) >= 2 && fields[0] == clientPkg {
					return fields[1]
				}
			}
			t.Fatalf("%s does not require %s", f.Name(), clientPkg)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("go.mod not found")
		}
		dir = parent
	}
}

func goCmd(ctx context.Context, dir string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOFLAGS=-mod=mod", "GOWORK=off")
	return cmd
}

func TestEmit_GeneratedPackageRuns(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a module with the go tool")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not found")
	}

	dir := t.TempDir()
	out, err := New().Emit(buildPlan(t, testSchema()), translate.EmitOptions{
		Namespace: "starwars",
		Package:   "starwars",
		Layout:    translate.LayoutPerType,
	})
	require.NoError(t, err)
	for _, a := range out.Artifacts {
		path := filepath.Join(dir, filepath.FromSlash(a.Path))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, a.Content, 0o644))
	}
	gomod := fmt.Sprintf("module scaffoldcheck\n\ngo 1.21\n\nrequire %s %s\n", clientPkg, clientVersion(t))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte(checkProgram), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if b, err := goCmd(ctx, dir, "mod", "tidy").CombinedOutput(); err != nil {
		t.Skipf("client module unavailable: %s", b)
	}
	b, err := goCmd(ctx, dir, "build", "./...").CombinedOutput()
	require.NoError(t, err, "generated package does not build:\n%s", b)

	srv, operations := starWarsServer(t)
	b, err = goCmd(ctx, dir, "run", ".", srv.URL).CombinedOutput()
	require.NoError(t, err, "check program failed:\n%s", b)

	assert.Equal(t, "hero Human 1000 Luke Skywalker\nluke Luke Skywalker\nleia Leia Organa\n", string(b))

	ops := operations()
	require.Len(t, ops, 2)

	assert.Contains(t, ops[0].Query, "($episode:Episode)")
	assert.Contains(t, ops[0].Query, "hero(episode: $episode){__typename,... on Human{id,name,appears_in,born_at}}")
	assert.JSONEq(t, `{"episode":"EMPIRE"}`, string(ops[0].Variables))

	assert.Contains(t, ops[1].Query, "($leia_id:ID!$luke_id:ID!)")
	assert.Contains(t, ops[1].Query, "luke: human(id: $luke_id){id,name,appears_in,born_at}")
	assert.Contains(t, ops[1].Query, "leia: human(id: $leia_id){id,name,appears_in,born_at}")
	assert.JSONEq(t, `{"luke_id":"1000","leia_id":"1003"}`, string(ops[1].Variables))
}
