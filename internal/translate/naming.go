// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms are words rendered fully uppercased in identifiers.
var initialisms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"html": "HTML",
	"ip":   "IP",
	"tcp":  "TCP",
	"udp":  "UDP",
	"tls":  "TLS",
	"ssl":  "SSL",
	"ssh":  "SSH",
	"cpu":  "CPU",
	"uri":  "URI",
	"uuid": "UUID",
}

// maxNormalizePasses bounds the fixed-point iteration in Normalize.
const maxNormalizePasses = 5

// Normalize converts a wire name to an exported PascalCase identifier.
//
// Words are split on separators, lower-to-upper transitions and the end of
// uppercase runs. Known initialisms stay uppercased. The conversion is
// repeated until it is stable, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	out := pascal(s)
	for range maxNormalizePasses {
		next := pascal(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

// Export makes a wire name an exported identifier without changing its casing otherwise.
func Export(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	id := b.String()
	if id == "" {
		return "X"
	}
	first := []rune(id)[0]
	if !unicode.IsLetter(first) {
		return "X" + id
	}
	return string(unicode.ToUpper(first)) + id[len(string(first)):]
}

// ToSnakeCase converts a name to a valid snake_case identifier.
// It splits words like Normalize does, lowercases each part,
// and prefixes with underscore if the result starts with a digit.
func ToSnakeCase(s string) string {
	parts := splitWords(s)
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	result := strings.Join(parts, "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

func pascal(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return "X"
	}
	// Casers hold state and are not safe for concurrent use.
	title := cases.Title(language.Und)

	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(caseWord(title, w))
	}
	return sb.String()
}

func caseWord(title cases.Caser, w string) string {
	lower := strings.ToLower(w)
	if acronym, ok := initialisms[lower]; ok {
		return acronym
	}
	if len(w) > 1 && w == strings.ToUpper(w) && composedOfInitialisms(lower) {
		return w
	}
	return title.String(lower)
}

// composedOfInitialisms reports whether s is a concatenation of known initialisms.
func composedOfInitialisms(s string) bool {
	ok := make([]bool, len(s)+1)
	ok[0] = true
	for i := 1; i <= len(s); i++ {
		for j := 0; j < i; j++ {
			if ok[j] {
				if _, found := initialisms[s[j:i]]; found {
					ok[i] = true
					break
				}
			}
		}
	}
	return ok[len(s)]
}

// splitWords breaks a name into words. Digits stay attached to the word before them.
func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Namer applies the casing policy of one generation run.
type Namer struct {
	normalize bool
}

// NewNamer creates a Namer. With normalize false, wire names are only made exported.
func NewNamer(normalize bool) Namer {
	return Namer{normalize: normalize}
}

// Type returns the identifier of a named type.
func (n Namer) Type(wire string) string {
	return n.ident(wire)
}

// Member returns the identifier of a field, argument or input field.
func (n Namer) Member(wire string) string {
	return n.ident(wire)
}

// EnumCase returns the identifier of an enum value, prefixed with its type identifier.
func (n Namer) EnumCase(typeIdent, wire string) string {
	if n.normalize {
		return typeIdent + Normalize(wire)
	}
	return typeIdent + "_" + wire
}

// Args returns the identifier of the arguments type of a field.
func (n Namer) Args(typeIdent, memberIdent string) string {
	return typeIdent + memberIdent + "Args"
}

// Getter returns the identifier of an interface accessor for a member.
func (n Namer) Getter(memberIdent string) string {
	return "Get" + memberIdent
}

// Carrier returns the identifier of the struct decoding an interface or union.
func (n Namer) Carrier(typeIdent string) string {
	return typeIdent + "Value"
}

// Context returns the identifier of the client context type.
func (n Namer) Context(contextName string) string {
	return n.ident(contextName) + "Context"
}

func (n Namer) ident(wire string) string {
	if n.normalize {
		return Normalize(wire)
	}
	return Export(wire)
}

// Scope tracks the identifiers claimed in one naming scope.
type Scope struct {
	name   string
	claims map[string]string
}

// NewScope creates an empty scope. The name appears in collision errors.
func NewScope(name string) *Scope {
	return &Scope{name: name, claims: make(map[string]string)}
}

// Claim records ident as taken by wire. It fails with a NameCollisionError
// when ident was already claimed.
func (s *Scope) Claim(ident, wire string) error {
	if prev, ok := s.claims[ident]; ok {
		return &NameCollisionError{Scope: s.name, Identifier: ident, First: prev, Second: wire}
	}
	s.claims[ident] = wire
	return nil
}
