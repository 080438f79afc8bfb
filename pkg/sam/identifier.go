// Package sam implements the alias-composition engine, variable-dependency
// resolver, and choice-resolution protocol at the core of SAM (shell alias
// management and execution).
package sam

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierPartRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Identifier names an alias or variable, optionally scoped to a namespace.
// Two identifiers are equal only when both their name and namespace match;
// an unnamespaced identifier is never equal to a namespaced one sharing its
// name.
type Identifier struct {
	Name      string
	Namespace string
}

// NewIdentifier builds an unnamespaced identifier.
func NewIdentifier(name string) Identifier {
	return Identifier{Name: name}
}

// NewIdentifierWithNamespace builds a namespaced identifier. An empty
// namespace is equivalent to NewIdentifier.
func NewIdentifierWithNamespace(name, namespace string) Identifier {
	return Identifier{Name: name, Namespace: namespace}
}

// HasNamespace reports whether id carries an explicit namespace.
func (id Identifier) HasNamespace() bool {
	return id.Namespace != ""
}

// String renders the lexical form: "name" or "namespace::name".
func (id Identifier) String() string {
	if id.HasNamespace() {
		return id.Namespace + "::" + id.Name
	}
	return id.Name
}

// ParseIdentifier parses the lexical form "name" or "namespace::name".
func ParseIdentifier(s string) (Identifier, error) {
	return ParseIdentifierWithDefaultNamespace(s, "")
}

// ParseIdentifierWithDefaultNamespace parses s, applying defaultNamespace
// when s has no explicit namespace of its own.
func ParseIdentifierWithDefaultNamespace(s, defaultNamespace string) (Identifier, error) {
	parts := strings.Split(s, "::")
	switch len(parts) {
	case 1:
		name := parts[0]
		if !identifierPartRe.MatchString(name) {
			return Identifier{}, fmt.Errorf("sam: invalid identifier %q: name must match [A-Za-z0-9_]+", s)
		}
		return Identifier{Name: name, Namespace: defaultNamespace}, nil
	case 2:
		namespace, name := parts[0], parts[1]
		if !identifierPartRe.MatchString(namespace) {
			return Identifier{}, fmt.Errorf("sam: invalid identifier %q: namespace must match [A-Za-z0-9_]+", s)
		}
		if !identifierPartRe.MatchString(name) {
			return Identifier{}, fmt.Errorf("sam: invalid identifier %q: name must match [A-Za-z0-9_]+", s)
		}
		return Identifier{Name: name, Namespace: namespace}, nil
	default:
		return Identifier{}, fmt.Errorf("sam: invalid identifier %q: more than one '::' separator", s)
	}
}

// lessIdentifier orders identifiers lexicographically by namespace then
// name, used to break ties when ordering an execution sequence.
func lessIdentifier(a, b Identifier) bool {
	if a.Namespace != b.Namespace {
		return a.Namespace < b.Namespace
	}
	return a.Name < b.Name
}
