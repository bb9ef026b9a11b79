// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// clientPkg is the GraphQL client the generated code runs on.
const clientPkg = "github.com/llehouerou/go-graphql-client"

// baseType returns the named Go type of a reference.
func baseType(r translate.GoRef) *jen.Statement {
	if r.Path == "" {
		return jen.Id(r.Name)
	}
	return jen.Qual(r.Path, r.Name)
}

// elemType returns the Go type of the base of a use: the carrier struct for
// interfaces and unions, the named type otherwise.
func elemType(u translate.TypeUse) *jen.Statement {
	if u.Carrier != "" {
		return jen.Id(u.Carrier)
	}
	return baseType(u.Go)
}

// goType returns the Go type of an output member: lists become slices,
// nullable values become pointers. Single carriers are always pointers so
// that objects and carriers may refer to each other.
func goType(u translate.TypeUse) *jen.Statement {
	if u.ListDepth == 0 {
		if u.Nullable || u.Carrier != "" {
			return jen.Op("*").Add(elemType(u))
		}
		return elemType(u)
	}
	return listType(u)
}

// valueType is goType without the outer pointer, for values wrapped in Optional.
func valueType(u translate.TypeUse) *jen.Statement {
	if u.ListDepth == 0 {
		return elemType(u)
	}
	return listType(u)
}

func listType(u translate.TypeUse) *jen.Statement {
	s := jen.Index()
	for i := 1; i < u.ListDepth; i++ {
		s = s.Index()
	}
	if u.ElementNullable {
		s = s.Op("*")
	}
	return s.Add(elemType(u))
}

// optionalType wraps the value type in the generated Optional helper.
func optionalType(u translate.TypeUse) *jen.Statement {
	return jen.Id("Optional").Types(valueType(u))
}

// optionalArg reports whether an argument may be left out of an operation:
// it is nullable or the schema gives it a default.
func optionalArg(p translate.Property) bool {
	return p.Type.Nullable || p.Default != nil
}

// argType is the field type of an argument: required arguments are plain
// values, optional ones may be left unset.
func argType(p translate.Property) *jen.Statement {
	if optionalArg(p) {
		return optionalType(p.Type)
	}
	return goType(p.Type)
}

// reservedSuffixes are file name suffixes the Go tool treats specially.
var reservedSuffixes = map[string]bool{
	"test": true,
	// GOOS
	"aix": true, "android": true, "darwin": true, "dragonfly": true, "freebsd": true,
	"hurd": true, "illumos": true, "ios": true, "js": true, "linux": true, "netbsd": true,
	"openbsd": true, "plan9": true, "solaris": true, "wasip1": true, "windows": true, "zos": true,
	// GOARCH
	"386": true, "amd64": true, "arm": true, "arm64": true, "loong64": true, "mips": true,
	"mipsle": true, "mips64": true, "mips64le": true, "ppc64": true, "ppc64le": true,
	"riscv64": true, "s390x": true, "wasm": true,
}

// fileName returns the source file name of an identifier.
func fileName(ident string) string {
	name := translate.ToSnakeCase(ident)
	if i := strings.LastIndex(name, "_"); i > 0 && reservedSuffixes[name[i+1:]] {
		name += "_gen"
	}
	return name + ".go"
}

// docLines splits a description into comment lines.
func docLines(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// comment adds a doc comment to f: a summary line, the description and a
// deprecation notice.
func comment(f *jen.Group, summary, description string, deprecated bool, reason string) {
	f.Comment(summary)
	if lines := docLines(description); len(lines) > 0 {
		f.Comment("//")
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				f.Comment("//")
				continue
			}
			// jennifer writes lines starting with a comment marker verbatim
			if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
				line = " " + line
			}
			f.Comment(line)
		}
	}
	if deprecated {
		if reason == "" {
			reason = "No longer supported."
		}
		f.Comment("//")
		f.Comment("Deprecated: " + reason)
	}
}
